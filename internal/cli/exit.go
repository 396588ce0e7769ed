package cli

import (
	"errors"

	"github.com/bitlake/adr/internal/config"
	adrerrors "github.com/bitlake/adr/internal/errors"
)

// ExitCode maps an error returned by Execute to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return config.ExitSuccess
	case errors.Is(err, adrerrors.ErrInvalidCommand):
		return config.ExitInvalidArguments
	case errors.Is(err, adrerrors.ErrMarkerMissing):
		return config.ExitMarkerMissing
	case errors.Is(err, adrerrors.ErrAlreadyInitialized):
		return config.ExitAlreadyInitialized
	case errors.Is(err, adrerrors.ErrDirectoryList):
		return config.ExitDirectoryListFailed
	case errors.Is(err, adrerrors.ErrConfig):
		return config.ExitConfigurationError
	default:
		return config.ExitGeneralError
	}
}
