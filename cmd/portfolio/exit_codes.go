package main

import (
	"errors"
	"os"

	"github.com/theamazingmrb/portfolio-sub000"
	"github.com/theamazingmrb/portfolio-sub000/internal/config"
)

// Exit codes for the portfolio CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess  = 0 // Command completed
	ExitGeneral  = 1 // General/unexpected error
	ExitUsage    = 2 // Invalid flags, config, or invalid posts
	ExitIO       = 3 // Content unreadable, export not writable
	ExitNotFound = 4 // Requested post does not exist
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, portfolio.ErrNotFound) {
		return ExitNotFound
	}

	// I/O errors (exit 3)
	if errors.Is(err, portfolio.ErrContentUnreadable) ||
		errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrWriteExport) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrInvalidPosts) ||
		errors.Is(err, portfolio.ErrMissingRequiredField) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrOutOfRange) ||
		errors.Is(err, config.ErrInvalidValue) {
		return ExitUsage
	}

	return ExitGeneral
}
