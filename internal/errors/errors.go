// Package errors defines the sentinel errors shared across adr commands.
// Callers wrap them with fmt.Errorf("...: %w", err) and match with errors.Is.
package errors

import "errors"

var (
	// ErrInvalidCommand is returned when the argument list does not name a command.
	ErrInvalidCommand = errors.New("the first argument must be a command like [list|new|init]")

	// ErrMarkerMissing is returned when the marker file is absent or unreadable.
	ErrMarkerMissing = errors.New("adr marker file not found")

	// ErrAlreadyInitialized guards init against running twice in one directory.
	ErrAlreadyInitialized = errors.New("already tracking adrs")

	// ErrDirectoryList is returned when the storage location cannot be enumerated.
	ErrDirectoryList = errors.New("cannot list adr directory")

	ErrConfig = errors.New("invalid configuration")
)
