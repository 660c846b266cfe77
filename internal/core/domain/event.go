package domain

import (
	"time"

	"github.com/google/uuid"
)

// UploadEvent is emitted after a file has been written
type UploadEvent struct {
	ID             uuid.UUID `json:"id"`
	Path           string    `json:"path"`
	Filename       string    `json:"filename"`
	SizeBytes      int64     `json:"size_bytes"`
	ContentType    string    `json:"content_type"`
	ChecksumSHA256 string    `json:"checksum_sha256"`
	Backend        string    `json:"backend"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// JournalEntry represents an upload event recorded in the journal
type JournalEntry struct {
	ID             uuid.UUID
	Path           string
	Filename       string
	SizeBytes      int64
	ContentType    string
	ChecksumSHA256 string
	Backend        string
	OccurredAt     time.Time
	RecordedAt     time.Time
}
