package main

import (
	"context"
	"file-intake/internal/adapters/eventbroker/nats"
	"file-intake/internal/adapters/storage"
	"file-intake/internal/config"
	"file-intake/internal/core/destination"
	"file-intake/internal/core/port"
	"file-intake/internal/core/service/intake"
	"log/slog"
	"os"
)

// pipeline builds the intake service from the environment.
// The returned close function releases the event publisher, if any.
func pipeline(ctx context.Context) (port.IntakeService, func(), error) {
	level := slog.LevelWarn
	if verboseFlag {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	store, err := storage.NewFromConfig(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	opts, err := intake.OptionsFromConfig(cfg.Storage)
	if err != nil {
		return nil, nil, err
	}

	closeFn := func() {}
	var publisher port.EventPublisher
	if cfg.NATS.Enabled() {
		natsPublisher, err := nats.NewNATSPublisher(ctx, cfg.NATS, logger)
		if err != nil {
			return nil, nil, err
		}
		publisher = natsPublisher
		closeFn = func() { _ = natsPublisher.Close() }
	}

	resolver := destination.NewResolver(cfg.Storage.NamespaceRoot)
	return intake.NewIntakeService(store, resolver, publisher, nil, opts, logger), closeFn, nil
}
