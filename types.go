package coldwallet

// AddressPlaceholder replaces the address text when addresses are excluded.
const AddressPlaceholder = "[address hidden]"

// elideTailLen is how many trailing characters an elided address keeps.
const elideTailLen = 8

// WalletRecord is one address/private-key pair plus its display artifacts.
// Image fields are populated only in hypertext mode.
type WalletRecord struct {
	Address         string
	PrivateKey      string
	AddressImage    []byte // PNG, medium error correction
	PrivateKeyImage []byte // PNG, high error correction
}

// Options controls field visibility across both output modes.
type Options struct {
	ExcludePrivateKeys    bool // omit private-key barcode and text
	ExcludePrivateKeyText bool // omit private-key text only
	ExcludeAddresses      bool // replace address text with AddressPlaceholder
	ElideAddresses        bool // shorten address to first char + "..." + last 8
	Hypertext             bool // render the HTML template instead of TeX
}

// Input contains generation parameters for Service.Generate.
type Input struct {
	Lines   []string // raw input lines, one record each (required)
	Options Options
	Date    string // footer date, preformatted ("" = today in ISO format)
	Notes   string // optional Markdown appended after the last record
}

// Document is the fully prepared parameter set consumed by the renderers.
type Document struct {
	Records []WalletRecord
	Options Options
	Date    string
	Notes   string // Markdown source; each renderer converts as needed
}
