package port

import (
	"context"
	"file-intake/internal/core/domain"
)

// EventPublisher publishes upload events (nats, ...)
type EventPublisher interface {
	PublishUpload(ctx context.Context, event domain.UploadEvent) error
}

// EventConsumer is an interface to define an event consumer (kafka, nats, ...)
type EventConsumer interface {
	Subscribe(ctx context.Context, handler MessageService) error
	Close() error
}

// MessageService is an interface to define message handling
type MessageService interface {
	HandleMessage(ctx context.Context, data []byte) error
}
