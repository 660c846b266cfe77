package port

import (
	"context"
	"file-intake/internal/core/domain"
)

// StorageWriter writes a whole file to a path
type StorageWriter interface {
	Write(ctx context.Context, path string, content []byte, overwrite bool) error
}

// StorageLister lists the files directly inside a directory
type StorageLister interface {
	List(ctx context.Context, dir string) ([]domain.StoredFile, error)
}

// Storage is a storage backend (local filesystem, minio, s3)
type Storage interface {
	StorageWriter
	StorageLister
	Name() string
}
