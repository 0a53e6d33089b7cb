// Command server runs the maintenance tracking HTTP API.
//
//	@title			Maintenance Backend API
//	@version		1.0
//	@description	Equipment, technician and maintenance work-order tracking.
//	@BasePath		/api/v1
package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	_ "github.com/tbourn/go-maintenance-backend/docs"
	"github.com/tbourn/go-maintenance-backend/internal/config"
	httpapi "github.com/tbourn/go-maintenance-backend/internal/http"
	"github.com/tbourn/go-maintenance-backend/internal/observability"
	"github.com/tbourn/go-maintenance-backend/internal/repo"
	"github.com/tbourn/go-maintenance-backend/internal/sysutil"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// .env is optional; real environment variables win.
	_ = godotenv.Load()

	cfg := config.MustLoad()
	version := sysutil.FirstNonEmpty(os.Getenv("APP_VERSION"), "dev")

	lg := sysutil.SetupLogger(os.Stdout, cfg.LogLevel, cfg.LogPretty, cfg.OTEL.ServiceName)
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := observability.SetupOTel(ctx, cfg.OTEL, version)
	if err != nil {
		lg.Fatal().Err(err).Msg("otel setup failed")
	}

	dsn := cfg.DBPath
	if cfg.DBDriver == repo.DriverPostgres {
		dsn = cfg.DatabaseURL
	}
	db, err := repo.Open(cfg.DBDriver, dsn)
	if err != nil {
		lg.Fatal().Err(err).Str("driver", cfg.DBDriver).Msg("open database")
	}
	if err := observability.InstrumentDB(db, prometheus.DefaultRegisterer, "maintenance"); err != nil {
		lg.Fatal().Err(err).Msg("instrument database")
	}
	if err := repo.AutoMigrate(db); err != nil {
		lg.Fatal().Err(err).Msg("migrate database")
	}

	r := gin.New()
	httpapi.RegisterRoutes(r, db, cfg)

	srv := &http.Server{
		Addr:              net.JoinHostPort("", cfg.Port),
		Handler:           r,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}

	errCh := make(chan error, 1)
	go func() {
		lg.Info().
			Str("addr", srv.Addr).
			Str("version", version).
			Str("db_driver", cfg.DBDriver).
			Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		lg.Info().Msg("shutdown signal received")
	case err := <-errCh:
		if err != nil {
			lg.Error().Err(err).Msg("server error")
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		lg.Error().Err(err).Msg("http shutdown")
	}
	if err := repo.Close(db); err != nil {
		lg.Error().Err(err).Msg("close database")
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		lg.Warn().Err(err).Msg("tracer shutdown")
	}
	lg.Info().Msg("server stopped")
}
