// Package qrutil wraps QR code generation to isolate the external dependency.
// This allows swapping the underlying QR library without modifying callers.
package qrutil

import (
	"errors"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// PNGSize is the pixel width/height of generated QR images. Fixed so wallet
// sheets print at a consistent physical size.
const PNGSize = 256

// ErrEmptyContent indicates an attempt to encode an empty string.
var ErrEmptyContent = errors.New("qrutil: empty content")

// Level selects the error-correction strength of a generated code.
type Level int

const (
	// LevelMedium tolerates roughly 15% damage. Used for addresses, which
	// can be re-derived if a scan fails.
	LevelMedium Level = iota

	// LevelHigh tolerates roughly 30% damage. Used for private keys, which
	// are unrecoverable if misscanned.
	LevelHigh
)

// recovery maps a Level to the library's recovery constant.
func (l Level) recovery() qrcode.RecoveryLevel {
	if l == LevelHigh {
		return qrcode.Highest
	}
	return qrcode.Medium
}

// EncodePNG renders content as a QR code PNG at the fixed module size.
// Returns an error if the content exceeds the format's capacity at the
// chosen error-correction level.
func EncodePNG(content string, level Level) ([]byte, error) {
	if content == "" {
		return nil, ErrEmptyContent
	}

	png, err := qrcode.Encode(content, level.recovery(), PNGSize)
	if err != nil {
		return nil, fmt.Errorf("qrutil: %w", err)
	}
	return png, nil
}
