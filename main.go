package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/ekaya-inc/ekaya-querydesc/pkg/config"
	"github.com/ekaya-inc/ekaya-querydesc/pkg/describe"
	"github.com/ekaya-inc/ekaya-querydesc/pkg/handlers"
	"github.com/ekaya-inc/ekaya-querydesc/pkg/middleware"
	"github.com/ekaya-inc/ekaya-querydesc/pkg/naming"
)

// Version is set at build time via ldflags
var Version = "dev"

const shutdownTimeout = 10 * time.Second

func main() {
	// Load configuration
	cfg, err := config.Load(Version)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := newLogger(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	names := naming.Default()
	if cfg.Describe.DictionaryPath != "" {
		custom, err := naming.LoadFile(cfg.Describe.DictionaryPath)
		if err != nil {
			logger.Fatal("Failed to load dictionary", zap.Error(err))
		}
		names = names.Merge(custom)
	}
	tables, fields := names.Len()

	logger.Info("Configuration loaded",
		zap.String("env", cfg.Env),
		zap.String("listen_addr", cfg.ListenAddr()),
		zap.Bool("tls", cfg.TLSEnabled()),
		zap.String("dictionary_path", cfg.Describe.DictionaryPath),
		zap.Int("dictionary_tables", tables),
		zap.Int("dictionary_fields", fields),
		zap.Int64("max_sql_bytes", cfg.Describe.MaxSQLBytes))

	mux := http.NewServeMux()

	// Register handlers
	healthHandler := handlers.NewHealthHandler(cfg, names, logger)
	healthHandler.RegisterRoutes(mux)

	translator := describe.NewTranslator(names, logger)
	describeHandler := handlers.NewDescribeHandler(translator, cfg.Describe, logger.Named("describe-handler"))
	describeHandler.RegisterRoutes(mux)

	server := &http.Server{
		Addr:              cfg.ListenAddr(),
		Handler:           middleware.RequestID(middleware.RequestLogger(logger)(mux)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting ekaya-querydesc",
			zap.String("addr", server.Addr),
			zap.String("version", cfg.Version))
		if cfg.TLSEnabled() {
			errCh <- server.ListenAndServeTLS(cfg.TLSCertPath, cfg.TLSKeyPath)
			return
		}
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed", zap.Error(err))
		}
	case <-ctx.Done():
		logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("Graceful shutdown failed", zap.Error(err))
		}
	}
}

// newLogger returns a development logger for local runs and a JSON
// production logger everywhere else.
func newLogger(env string) (*zap.Logger, error) {
	if env == "local" {
		logConfig := zap.NewDevelopmentConfig()
		return logConfig.Build()
	}
	return zap.NewProduction()
}
