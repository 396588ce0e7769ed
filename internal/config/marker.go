package config

import (
	"fmt"

	adrerrors "github.com/bitlake/adr/internal/errors"
	"github.com/bitlake/adr/internal/fsops"
)

// LocationStore persists the single ADR storage location.
type LocationStore interface {
	// Exists reports whether a location has been recorded.
	Exists() (bool, error)

	// Load returns the recorded location. It wraps ErrMarkerMissing when
	// nothing has been recorded or the record cannot be read.
	Load() (string, error)

	// Save records location.
	Save(location string) error
}

// MarkerStore keeps the location in a marker file. The file holds the raw
// bytes of the path with no trailing newline.
type MarkerStore struct {
	fs   fsops.Filesystem
	path string
}

// NewMarkerStore creates a MarkerStore backed by the marker file at path.
func NewMarkerStore(fs fsops.Filesystem, path string) *MarkerStore {
	return &MarkerStore{fs: fs, path: path}
}

func (s *MarkerStore) Exists() (bool, error) {
	ok, err := s.fs.Exists(s.path)
	if err != nil {
		return false, fmt.Errorf("checking %s: %w", s.path, err)
	}
	return ok, nil
}

func (s *MarkerStore) Load() (string, error) {
	content, err := s.fs.ReadFile(s.path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w: %w", s.path, adrerrors.ErrMarkerMissing, err)
	}
	return string(content), nil
}

func (s *MarkerStore) Save(location string) error {
	if err := s.fs.WriteFile(s.path, []byte(location)); err != nil {
		return fmt.Errorf("writing %s: %w", s.path, err)
	}
	return nil
}

// MemoryStore is an in-memory LocationStore for tests.
type MemoryStore struct {
	Location string
	Recorded bool

	// Saves counts calls to Save.
	Saves int
}

func (m *MemoryStore) Exists() (bool, error) {
	return m.Recorded, nil
}

func (m *MemoryStore) Load() (string, error) {
	if !m.Recorded {
		return "", adrerrors.ErrMarkerMissing
	}
	return m.Location, nil
}

func (m *MemoryStore) Save(location string) error {
	m.Location = location
	m.Recorded = true
	m.Saves++
	return nil
}
