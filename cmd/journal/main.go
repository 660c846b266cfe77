package main

import (
	"context"
	"database/sql"
	"file-intake/internal/adapters/eventbroker/nats"
	"file-intake/internal/adapters/repository/postgres"
	"file-intake/internal/config"
	"file-intake/internal/core/port"
	"file-intake/internal/core/service/cleanup"
	"file-intake/internal/core/service/journal"
	"fmt"
	"log/slog"
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

	// Load config
	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if !cfg.NATS.Enabled() || !cfg.Database.Enabled() {
		logger.Error("journal worker requires NATS_URL and DB_HOST")
		os.Exit(1)
	}

	// Initialize database
	db, err := initDB(cfg.Database)
	if err != nil {
		logger.Error("failed to init database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()
	logger.Info("db connection established")

	// Initialize services
	journalRepo := postgres.NewSqlJournalRepository(db)
	journalService := journal.NewJournalService(journalRepo, logger)
	cleanupService := cleanup.NewCleanupService(journalRepo, cfg.Journal.Retention, logger)

	// Initialize NATS consumer
	natsConsumer, err := nats.NewNATSConsumer(cfg.NATS, logger)
	if err != nil {
		logger.Error("failed to create NATS consumer", "error", err)
		os.Exit(1)
	}
	logger.Info("NATS consumer initialized")

	// Subscribe to NATS
	if err := natsConsumer.Subscribe(ctx, journalService); err != nil {
		logger.Error("failed to subscribe to NATS", "error", err)
		_ = natsConsumer.Close()
		os.Exit(1)
	}
	logger.Info("NATS subscription active", "stream", cfg.NATS.StreamName, "consumer", cfg.NATS.ConsumerName)

	// init cleanup task
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		initCleanupTask(ctx, cleanupService, cfg.Journal.CleanupEvery, logger)
	}()

	// Wait for termination signal
	<-ctx.Done()
	logger.Info("gracefully shutting down journal worker")

	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := natsConsumer.Close(); err != nil {
			logger.Error("failed to close NATS consumer during shutdown", "error", err)
		}
	}()

	select {
	case <-done:
	case <-time.After(10 * time.Second):
		logger.Warn("shutdown timeout exceeded")
	}

	wg.Wait()

	logger.Info("journal worker shutdown complete")
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

func initCleanupTask(ctx context.Context, service port.CleanupService, every time.Duration, logger *slog.Logger) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	logger.Info("cleanup task initialized", "interval", every)

	for {
		select {
		case <-ticker.C:
			logger.Info("cleanup task starting")
			_, err := service.CleanupExpiredEntries(ctx, time.Now().UTC())
			if err != nil {
				logger.Error("failed to cleanup expired journal entries", "error", err)
			} else {
				logger.Info("cleanup task completed successfully")
			}
		case <-ctx.Done():
			logger.Info("cleanup task stopped")
			return
		}
	}

}
