package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/Ebun22/baxus-price-checker/api/openapi"
	"github.com/Ebun22/baxus-price-checker/internal/api/handlers"
	mw "github.com/Ebun22/baxus-price-checker/internal/api/middleware"
	"github.com/Ebun22/baxus-price-checker/internal/baxus"
	"github.com/Ebun22/baxus-price-checker/internal/config"
	"github.com/Ebun22/baxus-price-checker/internal/engine"
	"github.com/Ebun22/baxus-price-checker/internal/fetch"
	"github.com/Ebun22/baxus-price-checker/internal/notify"
	"github.com/Ebun22/baxus-price-checker/internal/store"
	"github.com/Ebun22/baxus-price-checker/pkg/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server and scan scheduler",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	st, err := store.NewPostgresStore(ctx, cfg.Database.DSN())
	cancel()
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer st.Close()

	catalog := buildCatalogClient(cfg)

	fetcher := fetch.New(
		fetch.WithHTTPClient(&http.Client{Timeout: cfg.Scan.FetchTimeout}),
		fetch.WithUserAgent(cfg.Scan.UserAgent),
		fetch.WithMaxBodyBytes(cfg.Scan.MaxBodyBytes),
	)

	var notifier notify.Notifier = notify.NewNoOpNotifier(log)
	if cfg.Notifications.Discord.Enabled {
		notifier = notify.NewDiscordNotifier(cfg.Notifications.Discord.WebhookURL)
		log.Info("discord notifications enabled")
	}

	eng := engine.NewEngine(st, catalog, fetcher, notifier,
		engine.WithLogger(log),
		engine.WithCatalogPaging(cfg.Baxus.PageSize, cfg.Baxus.MaxPages),
		engine.WithAlertPolicy(engine.AlertPolicy{
			Enabled:       cfg.Alerts.Enabled,
			MinSavingsUSD: cfg.Alerts.MinSavingsUSD,
			MinSavingsPct: cfg.Alerts.MinSavingsPct,
		}),
	)

	if len(cfg.Scan.Targets) > 0 {
		sched, err := engine.NewScheduler(
			eng,
			cfg.Scan.Targets,
			cfg.Schedule.ScanInterval,
			cfg.Schedule.StaggerOffset,
			log,
		)
		if err != nil {
			return fmt.Errorf("creating scheduler: %w", err)
		}

		sched.Start()
		defer func() {
			<-sched.Stop().Done()
		}()
	}

	e := buildServer(cfg, log, st, eng, catalog)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info("starting server", "addr", addr)

	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	log.Info("server stopped")
	return nil
}

// buildCatalogClient assembles the BAXUS listings client with rate limiting
// and whichever token scheme the config carries. A static API token wins
// over a refresh token; with neither, requests go out unauthenticated.
func buildCatalogClient(cfg *config.Config) baxus.CatalogClient {
	opts := []baxus.ListingsOption{
		baxus.WithListingsURL(cfg.Baxus.ListingsURL),
		baxus.WithRateLimiter(baxus.NewRateLimiter(
			cfg.Baxus.RateLimit.PerMinute,
			cfg.Baxus.RateLimit.Burst,
		)),
	}

	switch {
	case cfg.Baxus.APIToken != "":
		opts = append(opts, baxus.WithTokenProvider(
			baxus.StaticTokenProvider(cfg.Baxus.APIToken),
		))
	case cfg.Baxus.RefreshToken != "":
		opts = append(opts, baxus.WithTokenProvider(
			baxus.NewRefreshTokenProvider(
				cfg.Baxus.RefreshToken,
				baxus.WithAuthURL(cfg.Baxus.AuthURL),
			),
		))
	}

	return baxus.NewListingsClient(opts...)
}

func buildServer(
	cfg *config.Config,
	log *slog.Logger,
	st store.Store,
	eng *engine.Engine,
	catalog baxus.CatalogClient,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(mw.Recovery(log))
	e.Use(mw.RequestLog(log))
	e.Use(mw.Metrics())

	health := handlers.NewHealthHandler(st)
	e.GET("/healthz", health.Healthz)
	e.GET("/readyz", health.Readyz)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := humaecho.New(e, huma.DefaultConfig("BAXUS Price Checker API", Version))

	handlers.RegisterCompareRoutes(api,
		handlers.NewCompareHandler(catalog, cfg.Baxus.PageSize, cfg.Baxus.MaxPages))
	handlers.RegisterScanRoutes(api, handlers.NewScansHandler(eng, st))
	handlers.RegisterResultRoutes(api, handlers.NewResultsHandler(st))
	handlers.RegisterCatalogRoutes(api,
		handlers.NewCatalogHandler(catalog, cfg.Baxus.PageSize, cfg.Baxus.MaxPages))

	openapi.RegisterRoutes(e)

	return e
}
