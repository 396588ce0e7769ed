package ui

import (
	"context"
	"errors"
	"io"

	"github.com/charmbracelet/huh"
)

// ErrUserAborted reports that the user left a prompt without answering.
var ErrUserAborted = errors.New("user aborted")

// NormalizeAbort maps the ways a prompt can be abandoned (Esc or Ctrl+C in
// huh, Ctrl+D or closed stdin, a cancelled context) to ErrUserAborted.
// Other errors pass through unchanged.
func NormalizeAbort(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, huh.ErrUserAborted), errors.Is(err, io.EOF), errors.Is(err, context.Canceled):
		return ErrUserAborted
	default:
		return err
	}
}

// IsAbort reports whether err came from an abandoned prompt.
func IsAbort(err error) bool {
	return errors.Is(err, ErrUserAborted)
}
