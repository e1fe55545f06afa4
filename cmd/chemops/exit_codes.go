package main

import (
	"errors"
	"os"

	chemops "github.com/moleculab/go-chemops"
	"github.com/moleculab/go-chemops/internal/config"
	"github.com/moleculab/go-chemops/internal/hints"
)

// Exit codes for the chemops CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful operation
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitEngine  = 4 // Chemistry engine errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Engine errors (exit 4)
	if errors.Is(err, chemops.ErrEngineStart) ||
		errors.Is(err, chemops.ErrEngineProtocol) ||
		errors.Is(err, chemops.ErrParse) ||
		errors.Is(err, chemops.ErrProtonation) ||
		errors.Is(err, chemops.ErrRender) {
		return ExitEngine
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadInput) ||
		errors.Is(err, ErrWriteOutput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, chemops.ErrEmptyStructure) ||
		errors.Is(err, chemops.ErrEmptyFormat) ||
		errors.Is(err, chemops.ErrInvalidImageFormat) ||
		errors.Is(err, chemops.ErrInvalidDimensions) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrTooManyInputs) ||
		errors.Is(err, ErrInvalidTimeout) ||
		errors.Is(err, ErrInvalidRef) ||
		errors.Is(err, ErrInvalidColor) ||
		errors.Is(err, ErrInvalidSpec) {
		return ExitUsage
	}

	return ExitGeneral
}

// withHints appends actionable hints to known failure modes.
func withHints(err error) string {
	msg := err.Error()
	switch {
	case errors.Is(err, chemops.ErrEngineStart):
		msg += hints.ForEngineStart()
	case errors.Is(err, chemops.ErrEngineProtocol):
		msg += hints.ForTimeout()
	case errors.Is(err, config.ErrConfigNotFound):
		msg += hints.ForConfigNotFound()
	case errors.Is(err, ErrWriteOutput):
		msg += hints.ForOutputFile()
	}
	return msg
}
