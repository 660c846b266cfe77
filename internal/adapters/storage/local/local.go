package local

import (
	"context"
	"errors"
	"file-intake/internal/core/domain"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
)

// Adapter writes uploads to the local filesystem
type Adapter struct {
	jail   string
	logger *slog.Logger
}

// NewAdapter returns Adapter. When jail is set every path is written below it,
// so /Volumes/a/b/c/x.txt lands in <jail>/Volumes/a/b/c/x.txt.
func NewAdapter(jail string, logger *slog.Logger) *Adapter {
	return &Adapter{jail: jail, logger: logger}
}

// Name returns the backend name
func (a *Adapter) Name() string {
	return "local"
}

func (a *Adapter) fsPath(p string) string {
	if a.jail == "" {
		return filepath.Clean(filepath.FromSlash(p))
	}
	return filepath.Join(a.jail, filepath.FromSlash(p))
}

// Write writes content to p, creating missing parent directories
func (a *Adapter) Write(ctx context.Context, p string, content []byte, overwrite bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	fullPath := a.fsPath(p)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !overwrite {
		flags = os.O_WRONLY | os.O_CREATE | os.O_EXCL
	}

	file, err := os.OpenFile(fullPath, flags, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%w: %s", domain.ErrAlreadyExists, p)
		}
		return fmt.Errorf("failed to create file: %w", err)
	}

	written, err := file.Write(content)
	if err != nil {
		_ = file.Close()
		return fmt.Errorf("failed to write file: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close file: %w", err)
	}

	a.logger.Debug("file written", slog.String("path", fullPath), slog.Int("bytes", written))
	return nil
}

// List returns the regular files directly inside dir. A missing dir yields no files.
func (a *Adapter) List(ctx context.Context, dir string) ([]domain.StoredFile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fullDir := a.fsPath(dir)
	entries, err := os.ReadDir(fullDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []domain.StoredFile{}, nil
		}
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	files := make([]domain.StoredFile, 0, len(entries))
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			// removed between ReadDir and Info
			continue
		}

		contentType := "application/octet-stream"
		if mtype, err := mimetype.DetectFile(filepath.Join(fullDir, entry.Name())); err == nil {
			contentType = mtype.String()
		}

		files = append(files, domain.StoredFile{
			Name:        entry.Name(),
			SizeBytes:   info.Size(),
			ContentType: contentType,
			ModifiedAt:  info.ModTime(),
		})
	}
	return files, nil
}

// Ping checks that the jail directory is usable
func (a *Adapter) Ping(ctx context.Context) error {
	if a.jail == "" {
		return ctx.Err()
	}
	info, err := os.Stat(a.jail)
	if err != nil {
		return fmt.Errorf("failed to stat storage root: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("storage root %s is not a directory", a.jail)
	}
	return nil
}
