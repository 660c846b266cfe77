package domain

import "time"

// StoredFile is a file found at a storage location
type StoredFile struct {
	Name        string
	SizeBytes   int64
	ContentType string
	ModifiedAt  time.Time
}
