// The api binary serves the article read API: paginated listing with
// category and saved filters, article detail, saved/read flag updates,
// store statistics, plus /health and /metrics.
package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	hhttp "cfo-pulse/internal/handler/http"
	harticle "cfo-pulse/internal/handler/http/article"
	"cfo-pulse/internal/handler/http/requestid"
	pgRepo "cfo-pulse/internal/infra/adapter/persistence/postgres"
	"cfo-pulse/internal/infra/db"
	"cfo-pulse/internal/observability/logging"
	"cfo-pulse/internal/pkg/config"
	artUC "cfo-pulse/internal/usecase/article"
)

func main() {
	_ = godotenv.Load()

	logger := logging.NewLogger()
	slog.SetDefault(logger)

	database := initDatabase(logger)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	handler := buildHandler(logger, database)
	runServer(logger, handler)
}

func initDatabase(logger *slog.Logger) *sql.DB {
	database := db.Open()
	if err := db.MigrateUp(database); err != nil {
		logger.Error("migration failed", slog.Any("error", err))
		os.Exit(1)
	}
	return database
}

func buildHandler(logger *slog.Logger, database *sql.DB) http.Handler {
	articleSvc := &artUC.Service{Repo: pgRepo.NewArticleRepo(database)}

	mux := http.NewServeMux()
	harticle.Register(mux, articleSvc, logger)
	mux.Handle("GET /health", hhttp.HealthHandler{DB: database})
	mux.Handle("GET /metrics", promhttp.Handler())

	return hhttp.Chain(mux,
		requestid.Middleware,
		hhttp.Recover(logger),
		hhttp.Logging(logger),
		hhttp.Metrics(),
	)
}

func runServer(logger *slog.Logger, handler http.Handler) {
	addr := config.GetEnvString("API_ADDR", ":8080")
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	errChan := make(chan error, 1)
	go func() {
		logger.Info("api server starting", slog.String("addr", addr))
		if err := server.ListenAndServe(); err != nil {
			errChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer shutdownCancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown failed", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("api server stopped")
	case err := <-errChan:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("api server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}
}
