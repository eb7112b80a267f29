package coldwallet

import (
	"fmt"
	"time"

	"github.com/mkvtvseries/cold-wallet-generator/internal/qrutil"
)

// isoDateFormat is the default footer date layout.
const isoDateFormat = "2006-01-02"

// Service orchestrates the parse, transform, encode and render stages.
type Service struct {
	now func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the time source used for the footer date.
// Intended for tests that need a deterministic date.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// NewService creates a Service with default configuration.
func NewService(opts ...Option) *Service {
	s := &Service{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generate runs the full pipeline and returns the rendered document.
// Rendering is all-or-nothing: on any error the returned string is empty,
// so callers can safely write the result straight to stdout.
func (s *Service) Generate(input Input) (string, error) {
	records, err := ParseRecords(input.Lines)
	if err != nil {
		return "", fmt.Errorf("parsing records: %w", err)
	}

	for i := range records {
		records[i].Address = TransformAddress(records[i].Address, input.Options)
	}

	// Typeset mode defers barcode rendering to the document compiler,
	// so images exist only in hypertext mode.
	if input.Options.Hypertext {
		if err := encodeImages(records, input.Options); err != nil {
			return "", err
		}
	}

	date := input.Date
	if date == "" {
		date = s.now().Format(isoDateFormat)
	}

	doc := Document{
		Records: records,
		Options: input.Options,
		Date:    date,
		Notes:   input.Notes,
	}

	if input.Options.Hypertext {
		return RenderHypertext(doc)
	}
	return RenderTypeset(doc)
}

// encodeImages populates the QR images on each record. The address code
// uses medium error correction; the private-key code uses high correction
// since a misscanned key is unrecoverable. Keys excluded from the output
// are never encoded.
func encodeImages(records []WalletRecord, opts Options) error {
	for i := range records {
		png, err := qrutil.EncodePNG(records[i].Address, qrutil.LevelMedium)
		if err != nil {
			return fmt.Errorf("%w: record %d address: %v", ErrEncodeFailed, i+1, err)
		}
		records[i].AddressImage = png

		if opts.ExcludePrivateKeys {
			continue
		}

		png, err = qrutil.EncodePNG(records[i].PrivateKey, qrutil.LevelHigh)
		if err != nil {
			return fmt.Errorf("%w: record %d private key: %v", ErrEncodeFailed, i+1, err)
		}
		records[i].PrivateKeyImage = png
	}
	return nil
}
