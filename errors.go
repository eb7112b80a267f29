package coldwallet

import "errors"

// Sentinel errors for library operations.
var (
	ErrMalformedRecord = errors.New("malformed record: missing ':' separator")
	ErrEmptyAddress    = errors.New("record has empty address")
	ErrEncodeFailed    = errors.New("QR encoding failed")
	ErrTemplateRender  = errors.New("template rendering failed")
	ErrNotesRender     = errors.New("notes rendering failed")
)
