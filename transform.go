package coldwallet

// TransformAddress applies the address visibility policy. Redaction wins
// over elision when both are requested; the private key is never touched
// here (its visibility is a render-time concern).
func TransformAddress(addr string, opts Options) string {
	switch {
	case opts.ExcludeAddresses:
		return AddressPlaceholder
	case opts.ElideAddresses:
		return elideAddress(addr)
	default:
		return addr
	}
}

// elideAddress shortens an address to its first character, a literal
// ellipsis, and its last 8 characters. Addresses too short to elide are
// returned unchanged.
func elideAddress(addr string) string {
	runes := []rune(addr)
	if len(runes) <= elideTailLen+1 {
		return addr
	}
	return string(runes[0]) + "..." + string(runes[len(runes)-elideTailLen:])
}
