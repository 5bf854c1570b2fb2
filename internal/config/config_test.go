package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		yaml      string
		envVars   map[string]string
		wantErr   string
		checkFunc func(t *testing.T, cfg *Config)
	}{
		{
			name: "valid minimal config",
			yaml: `
database:
  host: localhost
  name: testdb
  user: testuser
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "localhost", cfg.Database.Host)
				assert.Equal(t, "testdb", cfg.Database.Name)
				assert.Equal(t, "testuser", cfg.Database.User)
			},
		},
		{
			name: "defaults applied for optional fields",
			yaml: `
database:
  host: localhost
  name: testdb
  user: testuser
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "0.0.0.0", cfg.Server.Host)
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
				assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout)
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "disable", cfg.Database.SSLMode)
				assert.Equal(t, 10, cfg.Database.PoolSize)
				assert.Equal(t, "https://services.baxus.co/api/search/listings", cfg.Baxus.ListingsURL)
				assert.Equal(t, 20, cfg.Baxus.PageSize)
				assert.Equal(t, 50, cfg.Baxus.MaxPages)
				assert.InDelta(t, 30.0, cfg.Baxus.RateLimit.PerMinute, 0.001)
				assert.Equal(t, 5, cfg.Baxus.RateLimit.Burst)
				assert.Equal(t, 20*time.Second, cfg.Scan.FetchTimeout)
				assert.Equal(t, 30*time.Minute, cfg.Schedule.ScanInterval)
				assert.Equal(t, 30*time.Second, cfg.Schedule.StaggerOffset)
				assert.InDelta(t, 10.0, cfg.Alerts.MinSavingsUSD, 0.001)
				assert.InDelta(t, 5.0, cfg.Alerts.MinSavingsPct, 0.001)
				assert.Equal(t, "info", cfg.Logging.Level)
				assert.Equal(t, "text", cfg.Logging.Format)
			},
		},
		{
			name: "env var substitution",
			yaml: `
database:
  host: localhost
  name: testdb
  user: testuser
  password: "${TEST_DB_PASSWORD}"
baxus:
  api_token: "${TEST_BAXUS_TOKEN}"
`,
			envVars: map[string]string{
				"TEST_DB_PASSWORD": "secret123",
				"TEST_BAXUS_TOKEN": "tok456",
			},
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "secret123", cfg.Database.Password)
				assert.Equal(t, "tok456", cfg.Baxus.APIToken)
			},
		},
		{
			name: "missing required database.host",
			yaml: `
database:
  name: testdb
  user: testuser
`,
			wantErr: "database.host is required",
		},
		{
			name: "missing required database.name",
			yaml: `
database:
  host: localhost
  user: testuser
`,
			wantErr: "database.name is required",
		},
		{
			name: "missing required database.user",
			yaml: `
database:
  host: localhost
  name: testdb
`,
			wantErr: "database.user is required",
		},
		{
			name: "invalid scan target",
			yaml: `
database:
  host: localhost
  name: testdb
  user: testuser
scan:
  targets:
    - "https://shop.example/whisky"
    - "not a url"
`,
			wantErr: "scan.targets[1] is not an absolute URL",
		},
		{
			name: "discord enabled without webhook url",
			yaml: `
database:
  host: localhost
  name: testdb
  user: testuser
notifications:
  discord:
    enabled: true
`,
			wantErr: "notifications.discord.webhook_url is required",
		},
		{
			name:    "invalid YAML",
			yaml:    `{{{not valid yaml`,
			wantErr: "parsing config YAML",
		},
		{
			name: "full config with overrides",
			yaml: `
server:
  host: "127.0.0.1"
  port: 9090
  read_timeout: 60s
  write_timeout: 60s
database:
  host: db.example.com
  port: 5433
  name: checker_prod
  user: admin
  password: pass
  sslmode: require
  pool_size: 25
baxus:
  listings_url: http://localhost:9999/listings
  auth_url: http://localhost:9999/auth/refresh
  refresh_token: rt-1
  page_size: 40
  max_pages: 10
  rate_limit:
    per_minute: 60
    burst: 10
scan:
  targets:
    - "https://shop.example/whisky"
  fetch_timeout: 45s
  user_agent: custom-agent/2.0
schedule:
  scan_interval: 1h
alerts:
  enabled: true
  min_savings_usd: 25
  min_savings_pct: 10
logging:
  level: debug
  format: json
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "127.0.0.1", cfg.Server.Host)
				assert.Equal(t, 9090, cfg.Server.Port)
				assert.Equal(t, "require", cfg.Database.SSLMode)
				assert.Equal(t, 25, cfg.Database.PoolSize)
				assert.Equal(t, "http://localhost:9999/listings", cfg.Baxus.ListingsURL)
				assert.Equal(t, "rt-1", cfg.Baxus.RefreshToken)
				assert.Equal(t, 40, cfg.Baxus.PageSize)
				assert.Equal(t, 10, cfg.Baxus.MaxPages)
				assert.InDelta(t, 60.0, cfg.Baxus.RateLimit.PerMinute, 0.001)
				assert.Equal(t, []string{"https://shop.example/whisky"}, cfg.Scan.Targets)
				assert.Equal(t, 45*time.Second, cfg.Scan.FetchTimeout)
				assert.Equal(t, "custom-agent/2.0", cfg.Scan.UserAgent)
				assert.Equal(t, time.Hour, cfg.Schedule.ScanInterval)
				assert.True(t, cfg.Alerts.Enabled)
				assert.InDelta(t, 25.0, cfg.Alerts.MinSavingsUSD, 0.001)
				assert.InDelta(t, 10.0, cfg.Alerts.MinSavingsPct, 0.001)
				assert.Equal(t, "debug", cfg.Logging.Level)
				assert.Equal(t, "json", cfg.Logging.Format)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0o600))

			cfg, err := Load(path)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			if tt.checkFunc != nil {
				tt.checkFunc(t, cfg)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestDatabaseDSN(t *testing.T) {
	d := DatabaseConfig{
		Host:     "db.example.com",
		Port:     5433,
		Name:     "checker",
		User:     "admin",
		Password: "pass",
		SSLMode:  "require",
	}
	assert.Equal(
		t,
		"host=db.example.com port=5433 dbname=checker user=admin password=pass sslmode=require",
		d.DSN(),
	)
}
