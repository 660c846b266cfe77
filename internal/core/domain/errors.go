package domain

import "errors"

// ErrNoFileSelected is an error thrown when the request carries no filename or no content
var ErrNoFileSelected = errors.New("no file selected")

// ErrDisallowedType is an error thrown when the file extension is not in the allow-list
var ErrDisallowedType = errors.New("disallowed file type")

// ErrInvalidDestinationFormat is an error thrown when a destination spec cannot be parsed
var ErrInvalidDestinationFormat = errors.New("invalid destination format")

// ErrVolumesDisabled is an error thrown when a structured destination is used while volumes are disabled
var ErrVolumesDisabled = errors.New("volume destinations are disabled")

// ErrStorage is an error thrown when the storage writer fails
var ErrStorage = errors.New("storage error")

// ErrAlreadyExists is an error thrown when a write without overwrite hits an existing file
var ErrAlreadyExists = errors.New("already exists")

// ErrJournalEntryNotFound is an error thrown when a journal entry is not found
var ErrJournalEntryNotFound = errors.New("journal entry not found")

// ErrInvalidUploadEvent is an error thrown when an upload event message cannot be recorded
var ErrInvalidUploadEvent = errors.New("invalid upload event")
