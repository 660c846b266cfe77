package main

import (
	"context"
	"database/sql"
	"errors"
	"file-intake/internal/adapters/eventbroker/nats"
	"file-intake/internal/adapters/handlers/http/chi"
	"file-intake/internal/adapters/handlers/http/chi/v1/journal"
	"file-intake/internal/adapters/handlers/http/chi/v1/upload"
	"file-intake/internal/adapters/handlers/http/chi/web"
	"file-intake/internal/adapters/metrics"
	"file-intake/internal/adapters/repository/postgres"
	"file-intake/internal/adapters/storage"
	"file-intake/internal/config"
	"file-intake/internal/core/destination"
	"file-intake/internal/core/port"
	"file-intake/internal/core/service/intake"
	journalservice "file-intake/internal/core/service/journal"
	"file-intake/internal/telemetry"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
)

func main() {

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	shutdownTracing, err := telemetry.Setup(ctx, cfg.Telemetry, cfg.Env.Env, logger)
	if err != nil {
		logger.Error("failed to init tracing", "error", err)
		os.Exit(1)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(shutdownCtx)
	}()

	//storage
	store, err := storage.NewFromConfig(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to init storage", "error", err, "backend", cfg.Storage.Backend)
		os.Exit(1)
	}
	logger.Info("storage initialized", "backend", store.Name())

	//events
	var publisher port.EventPublisher
	if cfg.NATS.Enabled() {
		natsPublisher, err := nats.NewNATSPublisher(ctx, cfg.NATS, logger)
		if err != nil {
			logger.Error("failed to create NATS publisher", "error", err)
			os.Exit(1)
		}
		defer func() {
			if err := natsPublisher.Close(); err != nil {
				logger.Error("failed to close NATS publisher", "error", err)
			}
		}()
		publisher = natsPublisher
		logger.Info("NATS publisher initialized", "subject", cfg.NATS.Subject)
	}

	//journal (optional)
	var journalHandler *journal.HandlerV1
	if cfg.Database.Enabled() {
		db, err := initDB(cfg.Database)
		if err != nil {
			logger.Error("failed to init database", "error", err)
			os.Exit(1)
		}
		defer func(db *sql.DB) {
			if err := db.Close(); err != nil {
				logger.Error("failed to close database", "error", err)
			}
		}(db)
		logger.Info("db connection established")

		journalService := journalservice.NewJournalService(postgres.NewSqlJournalRepository(db), logger)
		journalHandler = journal.NewJournalHandlerV1(journalService, logger)
	}

	//pipeline
	opts, err := intake.OptionsFromConfig(cfg.Storage)
	if err != nil {
		logger.Error("invalid storage configuration", "error", err)
		os.Exit(1)
	}
	recorder := metrics.New()
	resolver := destination.NewResolver(cfg.Storage.NamespaceRoot)
	intakeService := intake.NewIntakeService(store, resolver, publisher, recorder, opts, logger)

	//http
	pageHandler := web.NewHandler(intakeService, recorder, opts.VolumesEnabled, logger)
	uploadHandler := upload.NewUploadHandlerV1(intakeService, logger)

	routerOpts := chi.RouterOptions{
		Env:           cfg.Env.Env,
		MaxUploadSize: cfg.Storage.MaxUploadSize,
		Metrics:       recorder,
	}
	if pinger, ok := store.(chi.Pinger); ok {
		routerOpts.Health = pinger
	}

	router := chi.NewRouter(logger, pageHandler, uploadHandler, journalHandler, routerOpts)
	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		logger.Info("starting server", "host", cfg.Server.Host, "port", cfg.Server.Port, "location", opts.Location)
		servErr := server.ListenAndServe()
		if servErr != nil && !errors.Is(servErr, http.ErrServerClosed) {
			logger.Error("failed to start server", "error", servErr)
			stop()
		}
	}()

	//wait for context cancel
	<-ctx.Done()
	logger.Info("gracefully shutting down app")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shutdown server", "error", err)
	} else {
		logger.Info("server gracefully shutdown complete")
	}

	wg.Wait()
	logger.Info("app shutdown complete")

}

func initDB(cfg config.DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenCons)
	db.SetMaxIdleConns(cfg.MaxIdleCons)
	db.SetConnMaxLifetime(cfg.ConMaxLifeTime)

	return db, nil
}
