// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Database      DatabaseConfig      `yaml:"database"`
	Baxus         BaxusConfig         `yaml:"baxus"`
	Scan          ScanConfig          `yaml:"scan"`
	Schedule      ScheduleConfig      `yaml:"schedule"`
	Alerts        AlertsConfig        `yaml:"alerts"`
	Notifications NotificationsConfig `yaml:"notifications"`
	Logging       LoggingConfig       `yaml:"logging"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// DatabaseConfig defines PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
	PoolSize int    `yaml:"pool_size"`
}

// DSN returns a PostgreSQL connection string.
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=%s",
		d.Host, d.Port, d.Name, d.User, d.Password, d.SSLMode,
	)
}

// BaxusConfig defines BAXUS catalog API settings.
type BaxusConfig struct {
	ListingsURL  string          `yaml:"listings_url"`
	AuthURL      string          `yaml:"auth_url"`
	APIToken     string          `yaml:"api_token"`
	RefreshToken string          `yaml:"refresh_token"`
	PageSize     int             `yaml:"page_size"`
	MaxPages     int             `yaml:"max_pages"`
	RateLimit    RateLimitConfig `yaml:"rate_limit"`
}

// RateLimitConfig defines catalog API rate limiting settings.
type RateLimitConfig struct {
	PerMinute float64 `yaml:"per_minute"`
	Burst     int     `yaml:"burst"`
}

// ScanConfig defines page scanning settings.
type ScanConfig struct {
	Targets      []string      `yaml:"targets"`
	FetchTimeout time.Duration `yaml:"fetch_timeout"`
	UserAgent    string        `yaml:"user_agent"`
	MaxBodyBytes int64         `yaml:"max_body_bytes"`
}

// ScheduleConfig defines cron intervals for recurring scans.
type ScheduleConfig struct {
	ScanInterval  time.Duration `yaml:"scan_interval"`
	StaggerOffset time.Duration `yaml:"stagger_offset"`
}

// NotificationsConfig defines notification targets.
type NotificationsConfig struct {
	Discord DiscordConfig `yaml:"discord"`
}

// DiscordConfig defines Discord webhook settings.
type DiscordConfig struct {
	Enabled    bool   `yaml:"enabled"`
	WebhookURL string `yaml:"webhook_url"`
}

// AlertsConfig defines savings alert behavior.
type AlertsConfig struct {
	Enabled       bool    `yaml:"enabled"`
	MinSavingsUSD float64 `yaml:"min_savings_usd"`
	MinSavingsPct float64 `yaml:"min_savings_pct"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables in the YAML content.
	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applyDatabaseDefaults(&cfg.Database)
	applyBaxusDefaults(&cfg.Baxus)
	applyScanDefaults(&cfg.Scan)
	applyScheduleDefaults(&cfg.Schedule)
	applyAlertsDefaults(&cfg.Alerts)
	applyLoggingDefaults(&cfg.Logging)
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 30 * time.Second
	}
}

func applyDatabaseDefaults(d *DatabaseConfig) {
	if d.Port == 0 {
		d.Port = 5432
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}
	if d.PoolSize == 0 {
		d.PoolSize = 10
	}
}

func applyBaxusDefaults(b *BaxusConfig) {
	if b.ListingsURL == "" {
		b.ListingsURL = "https://services.baxus.co/api/search/listings"
	}
	if b.AuthURL == "" {
		b.AuthURL = "https://services.baxus.co/api/auth/refresh"
	}
	if b.PageSize == 0 {
		b.PageSize = 20
	}
	if b.MaxPages == 0 {
		b.MaxPages = 50
	}
	applyRateLimitDefaults(&b.RateLimit)
}

func applyRateLimitDefaults(r *RateLimitConfig) {
	if r.PerMinute == 0 {
		r.PerMinute = 30
	}
	if r.Burst == 0 {
		r.Burst = 5
	}
}

func applyScanDefaults(s *ScanConfig) {
	if s.FetchTimeout == 0 {
		s.FetchTimeout = 20 * time.Second
	}
	if s.UserAgent == "" {
		s.UserAgent = "baxus-price-checker/1.0"
	}
	if s.MaxBodyBytes == 0 {
		s.MaxBodyBytes = 10 << 20
	}
}

func applyScheduleDefaults(s *ScheduleConfig) {
	if s.ScanInterval == 0 {
		s.ScanInterval = 30 * time.Minute
	}
	if s.StaggerOffset == 0 {
		s.StaggerOffset = 30 * time.Second
	}
}

func applyAlertsDefaults(a *AlertsConfig) {
	if a.MinSavingsUSD == 0 {
		a.MinSavingsUSD = 10
	}
	if a.MinSavingsPct == 0 {
		a.MinSavingsPct = 5
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

func validate(cfg *Config) error {
	var errs []error

	if cfg.Database.Host == "" {
		errs = append(errs, fmt.Errorf("database.host is required"))
	}
	if cfg.Database.Name == "" {
		errs = append(errs, fmt.Errorf("database.name is required"))
	}
	if cfg.Database.User == "" {
		errs = append(errs, fmt.Errorf("database.user is required"))
	}

	for i, target := range cfg.Scan.Targets {
		u, err := url.Parse(target)
		if err != nil || u.Scheme == "" || u.Host == "" {
			errs = append(
				errs,
				fmt.Errorf("scan.targets[%d] is not an absolute URL: %q", i, target),
			)
		}
	}

	if cfg.Notifications.Discord.Enabled &&
		cfg.Notifications.Discord.WebhookURL == "" {
		errs = append(
			errs,
			fmt.Errorf("notifications.discord.webhook_url is required when discord is enabled"),
		)
	}

	return errors.Join(errs...)
}
