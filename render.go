package coldwallet

import "strings"

// pageBreakEvery forces a page break after every Nth entry in typeset mode,
// matching the multi-column print layout's capacity per page.
const pageBreakEvery = 5

const upperhex = "0123456789ABCDEF"

// percentEncode renders raw bytes with RFC 3986 percent-encoding, keeping
// only unreserved characters literal. Used to inline PNG data in data URIs
// without an external image file.
func percentEncode(data []byte) string {
	var b strings.Builder
	b.Grow(len(data) * 3)
	for _, c := range data {
		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&0x0f])
	}
	return b.String()
}

// isUnreserved reports whether c is an RFC 3986 unreserved character.
func isUnreserved(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '-' || c == '.' || c == '_' || c == '~':
		return true
	}
	return false
}

// dataURI wraps PNG bytes in an inline data URI.
func dataURI(png []byte) string {
	return "data:image/png," + percentEncode(png)
}

// entrySeparator decides what follows entry i of n (both 1-based counts):
// nothing after the last entry, a forced page break after every 5th, and a
// horizontal rule otherwise.
func entrySeparator(i, n int) (rule, pageBreak bool) {
	if i >= n {
		return false, false
	}
	if i%pageBreakEvery == 0 {
		return false, true
	}
	return true, false
}
