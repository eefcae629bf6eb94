package cli

import (
	"errors"
	"io/fs"
)

// Exit codes for gomdkit.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitFailure indicates that some files failed to render, that a
	// crosscheck found differences, or another runtime error.
	ExitFailure = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

var (
	// ErrRenderFailed is returned when at least one file failed to render.
	// The failures have already been reported.
	ErrRenderFailed = errors.New("render failed")

	// ErrMismatches is returned when a crosscheck found differences.
	ErrMismatches = errors.New("output differs from reference")

	// ErrConfig wraps configuration errors.
	ErrConfig = errors.New("invalid configuration")

	// ErrUsage wraps invalid flag values and arguments.
	ErrUsage = errors.New("invalid usage")
)

// ExitCodeFor maps an error returned by a command to the process exit code.
func ExitCodeFor(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrRenderFailed), errors.Is(err, ErrMismatches):
		return ExitFailure
	case errors.Is(err, ErrConfig):
		return ExitConfigError
	case errors.Is(err, ErrUsage):
		return ExitInvalidUsage
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, fs.ErrPermission):
		return ExitIOError
	default:
		return ExitFailure
	}
}

// IsReported reports whether err only signals an exit code: its details
// were already written by the command.
func IsReported(err error) bool {
	return errors.Is(err, ErrRenderFailed) || errors.Is(err, ErrMismatches)
}
