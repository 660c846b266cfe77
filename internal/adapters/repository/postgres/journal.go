package postgres

import (
	"context"
	"database/sql"
	"errors"
	"file-intake/internal/core/domain"
	"file-intake/internal/core/port"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
)

type sqlJournalRepository struct {
	db SQLQuerier
}

// NewSqlJournalRepository creates sqlJournalRepository that implements port.JournalRepository
func NewSqlJournalRepository(db SQLQuerier) port.JournalRepository {
	return &sqlJournalRepository{
		db: db,
	}
}

// Create inserts an entry, reporting false when the id is already journaled
func (s *sqlJournalRepository) Create(ctx context.Context, entry domain.JournalEntry) (bool, error) {
	query := `
		INSERT INTO upload_journal
			(id, path, filename, size_bytes, content_type, checksum_sha256, backend, occurred_at, recorded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO NOTHING`

	result, err := s.db.ExecContext(ctx, query,
		entry.ID,
		entry.Path,
		entry.Filename,
		entry.SizeBytes,
		entry.ContentType,
		entry.ChecksumSHA256,
		entry.Backend,
		entry.OccurredAt,
		entry.RecordedAt,
	)
	if err != nil {
		return false, fmt.Errorf("insert journal entry %s: %w", entry.ID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

// FindByID returns a single journal entry
func (s *sqlJournalRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.JournalEntry, error) {
	query := `
		SELECT id, path, filename, size_bytes, content_type, checksum_sha256, backend, occurred_at, recorded_at
		FROM upload_journal
		WHERE id = $1`

	entry, err := scanEntry(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("journal entry %s : %w", id, domain.ErrJournalEntryNotFound)
		}
		return nil, err
	}
	return entry, nil
}

// ListRecent returns the latest entries, newest first
func (s *sqlJournalRepository) ListRecent(ctx context.Context, limit int) ([]domain.JournalEntry, error) {
	query := `
		SELECT id, path, filename, size_bytes, content_type, checksum_sha256, backend, occurred_at, recorded_at
		FROM upload_journal
		ORDER BY occurred_at DESC, id
		LIMIT $1`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]domain.JournalEntry, 0, limit)
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// DeleteOlderThan removes entries that occurred before the given time
func (s *sqlJournalRepository) DeleteOlderThan(ctx context.Context, before time.Time) (int64, error) {
	query := `DELETE FROM upload_journal WHERE occurred_at < $1`

	result, err := s.db.ExecContext(ctx, query, before)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (*domain.JournalEntry, error) {
	var entry domain.JournalEntry
	err := row.Scan(
		&entry.ID,
		&entry.Path,
		&entry.Filename,
		&entry.SizeBytes,
		&entry.ContentType,
		&entry.ChecksumSHA256,
		&entry.Backend,
		&entry.OccurredAt,
		&entry.RecordedAt,
	)
	if err != nil {
		return nil, err
	}
	entry.OccurredAt = entry.OccurredAt.UTC()
	entry.RecordedAt = entry.RecordedAt.UTC()
	return &entry, nil
}
