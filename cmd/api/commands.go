package main

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

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/emilythestrangee/qa-forum/backend/internal/config"
	"github.com/emilythestrangee/qa-forum/backend/internal/database"
	"github.com/emilythestrangee/qa-forum/backend/internal/logger"
	"github.com/emilythestrangee/qa-forum/backend/internal/metrics"
	"github.com/emilythestrangee/qa-forum/backend/internal/profile"
	"github.com/emilythestrangee/qa-forum/backend/internal/server"
	"github.com/emilythestrangee/qa-forum/backend/internal/telemetry"
)

var (
	variantFlag   string
	portFlag      string
	skipMigration bool

	rootCmd = &cobra.Command{
		Use:           "qa-forum",
		Short:         "Community Q&A backend with voting, search and an AI assistant",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API until interrupted",
		RunE:  runServe,
	}

	migrateCmd = &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema and exit",
		RunE:  runMigrate,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&variantFlag, "variant", "", "site variant (generic or immigration); overrides QA_VARIANT")
	serveCmd.Flags().StringVar(&portFlag, "port", "", "listen port; overrides PORT")
	serveCmd.Flags().BoolVar(&skipMigration, "skip-migrate", false, "do not migrate the schema on startup")

	rootCmd.AddCommand(serveCmd, migrateCmd)
}

func loadConfig() (config.Config, profile.Profile, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, profile.Profile{}, fmt.Errorf("load config: %w", err)
	}
	if variantFlag != "" {
		cfg.Variant = variantFlag
	}
	if portFlag != "" {
		cfg.Port = portFlag
	}

	p, err := profile.Lookup(cfg.Variant)
	if err != nil {
		return config.Config{}, profile.Profile{}, err
	}
	return cfg, p, nil
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	logger.Setup(cfg)

	db, err := database.New(cfg.DB)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		return err
	}
	slog.InfoContext(cmd.Context(), "schema migrated")
	return nil
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, p, err := loadConfig()
	if err != nil {
		return err
	}

	// Tracing must be installed before the first traced log line.
	tel, err := telemetry.Setup(ctx, cfg.OTel, p.Name)
	if err != nil {
		return fmt.Errorf("initialize telemetry: %w", err)
	}
	logger.Setup(cfg)
	if tel != nil {
		slog.InfoContext(ctx, "otel initialized", "endpoint", cfg.OTel.Endpoint)
	}

	slog.InfoContext(ctx, "qa-forum starting", "env", cfg.Env, "variant", p.Name, "service", p.ServiceName)

	db, err := database.New(cfg.DB)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()
	if !skipMigration {
		if err := db.Migrate(); err != nil {
			return err
		}
	}
	slog.InfoContext(ctx, "database connected")

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New()
	}

	services, err := server.NewServices(cfg, p, db.GetDB(), m)
	if err != nil {
		return err
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	httpServer := server.New(cfg, p, server.Deps{Services: services, Health: db, Metrics: m}).HTTPServer()

	errCh := make(chan error, 1)
	go func() {
		slog.InfoContext(ctx, "http server starting", "addr", httpServer.Addr, "chat_path", "/api"+p.ChatPath)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("http server: %w", err)
		}
	case <-quit:
	}

	slog.InfoContext(ctx, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(shutdownCtx, "http server shutdown error", "error", err)
	}
	if err := tel.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(shutdownCtx, "otel shutdown error", "error", err)
	}

	slog.InfoContext(shutdownCtx, "shutdown complete")
	return nil
}
