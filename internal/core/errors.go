package core

import (
	"errors"

	"github.com/jmreicha/awsp/internal/profiles"
	"github.com/jmreicha/awsp/internal/selector"
)

var (
	// ErrMissingHome is returned when HOME is unset or empty.
	ErrMissingHome = errors.New("HOME is not set, please set a HOME environment variable")

	// ErrConfig marks an invalid awsp configuration file or flag.
	ErrConfig = errors.New("invalid awsp configuration")

	// ErrNoConfigFound is returned when no AWS shared file has content.
	ErrNoConfigFound = profiles.ErrNoConfigFound

	// ErrNoProfilesFound is returned when the AWS shared files declare no profiles.
	ErrNoProfilesFound = profiles.ErrNoProfilesFound

	// ErrCancelled is returned when the user aborts the selector.
	ErrCancelled = selector.ErrCancelled
)

// ExitCode is the process exit status of awsp.
type ExitCode int

const (
	// ExitSuccess is a normal exit, including a cancelled selection.
	ExitSuccess ExitCode = 0
	// ExitGeneral is any error without a dedicated code.
	ExitGeneral ExitCode = 1
	// ExitMissingHome means HOME was not set.
	ExitMissingHome ExitCode = 2
	// ExitNoConfig means neither AWS shared file had content.
	ExitNoConfig ExitCode = 3
	// ExitNoProfiles means the AWS shared files declared no profiles.
	ExitNoProfiles ExitCode = 4
)

// MapExitCode returns the exit code for err. A cancelled selection is a
// successful exit because the user expressed no intent.
func MapExitCode(err error) ExitCode {
	if err == nil {
		return ExitSuccess
	}
	switch {
	case errors.Is(err, ErrCancelled):
		return ExitSuccess
	case errors.Is(err, ErrMissingHome):
		return ExitMissingHome
	case errors.Is(err, ErrNoConfigFound):
		return ExitNoConfig
	case errors.Is(err, ErrNoProfilesFound):
		return ExitNoProfiles
	default:
		return ExitGeneral
	}
}
