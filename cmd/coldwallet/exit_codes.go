package main

import (
	"errors"
	"os"

	coldwallet "github.com/mkvtvseries/cold-wallet-generator"
	"github.com/mkvtvseries/cold-wallet-generator/internal/dateutil"
)

// Exit codes for the coldwallet CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess  = 0 // Document rendered and written
	ExitGeneral  = 1 // General/unexpected error
	ExitUsage    = 2 // Invalid flags, config, or input records
	ExitIO       = 3 // File not found, permission denied
	ExitEncoding = 4 // QR capacity exceeded
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Encoding errors (exit 4)
	if errors.Is(err, coldwallet.ErrEncodeFailed) {
		return ExitEncoding
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadInput) ||
		errors.Is(err, ErrReadStdin) ||
		errors.Is(err, ErrReadNotes) {
		return ExitIO
	}

	// Usage and validation errors (exit 2)
	if errors.Is(err, ErrTooManyArgs) ||
		errors.Is(err, ErrConfigNotFound) ||
		errors.Is(err, ErrEmptyConfigName) ||
		errors.Is(err, ErrConfigParse) ||
		errors.Is(err, coldwallet.ErrMalformedRecord) ||
		errors.Is(err, coldwallet.ErrEmptyAddress) ||
		errors.Is(err, dateutil.ErrInvalidDateFormat) {
		return ExitUsage
	}

	return ExitGeneral
}
