package coldwallet

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/mkvtvseries/cold-wallet-generator/internal/assets"
)

// texDocument is the parameter set consumed by the typeset template.
type texDocument struct {
	Entries     []texEntry
	ShowKeyCode bool
	ShowKeyText bool
	Notes       string
	Date        string
}

// texEntry is one wallet block in the typeset template. Exactly one of
// Rule/PageBreak is set between consecutive entries; both are false after
// the last one.
type texEntry struct {
	Number     int
	Address    string
	PrivateKey string
	Rule       bool
	PageBreak  bool
}

// typesetTmpl is parsed once from embedded assets.
var typesetTmpl = mustLoadTypesetTemplate()

// mustLoadTypesetTemplate loads and parses the embedded typeset template.
// Panics if the template cannot be loaded or parsed (programmer error).
func mustLoadTypesetTemplate() *template.Template {
	content, err := assets.LoadTemplate("typeset")
	if err != nil {
		panic("failed to load typeset template: " + err.Error())
	}

	tmpl, err := template.New("typeset").Parse(content)
	if err != nil {
		panic("failed to parse typeset template: " + err.Error())
	}

	return tmpl
}

// RenderTypeset renders the document as TeX source for an external document
// compiler. Barcode rendering is deferred downstream: the template embeds
// the literal address/key text inside barcode macros, so no images are
// generated in this mode.
func RenderTypeset(doc Document) (string, error) {
	n := len(doc.Records)
	entries := make([]texEntry, n)
	for i, rec := range doc.Records {
		rule, pageBreak := entrySeparator(i+1, n)
		entries[i] = texEntry{
			Number:     i + 1,
			Address:    texEscape(rec.Address),
			PrivateKey: texEscape(rec.PrivateKey),
			Rule:       rule,
			PageBreak:  pageBreak,
		}
	}

	view := texDocument{
		Entries:     entries,
		ShowKeyCode: !doc.Options.ExcludePrivateKeys,
		ShowKeyText: !doc.Options.ExcludePrivateKeys && !doc.Options.ExcludePrivateKeyText,
		Notes:       texEscape(doc.Notes),
		Date:        doc.Date,
	}

	var buf bytes.Buffer
	if err := typesetTmpl.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("%w: %v", ErrTemplateRender, err)
	}
	return buf.String(), nil
}

// texEscape escapes TeX-special characters so arbitrary address/key text
// cannot break the generated document.
func texEscape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\textbackslash{}`)
		case '#', '$', '%', '&', '_', '{', '}':
			b.WriteByte('\\')
			b.WriteRune(r)
		case '~':
			b.WriteString(`\textasciitilde{}`)
		case '^':
			b.WriteString(`\textasciicircum{}`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
