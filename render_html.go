package coldwallet

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"

	"github.com/mkvtvseries/cold-wallet-generator/internal/assets"
)

// htmlDocument is the parameter set consumed by the hypertext template.
type htmlDocument struct {
	Entries     []htmlEntry
	ShowKeyCode bool
	ShowKeyText bool
	Notes       template.HTML
	Date        string
	Style       template.CSS
}

// htmlEntry is one wallet block in the hypertext template. Image fields are
// data URIs; template.URL keeps html/template from rejecting the data scheme.
type htmlEntry struct {
	Number          int
	Address         string
	PrivateKey      string
	AddressImage    template.URL
	PrivateKeyImage template.URL
}

// hypertextTmpl and sheetStyle are loaded once from embedded assets.
var (
	hypertextTmpl = mustLoadHypertextTemplate()
	sheetStyle    = mustLoadSheetStyle()
)

// mustLoadHypertextTemplate loads and parses the embedded hypertext template.
// Panics if the template cannot be loaded or parsed (programmer error).
func mustLoadHypertextTemplate() *template.Template {
	content, err := assets.LoadTemplate("hypertext")
	if err != nil {
		panic("failed to load hypertext template: " + err.Error())
	}

	tmpl, err := template.New("hypertext").Parse(content)
	if err != nil {
		panic("failed to parse hypertext template: " + err.Error())
	}

	return tmpl
}

// mustLoadSheetStyle loads the embedded wallet sheet stylesheet.
func mustLoadSheetStyle() string {
	style, err := assets.LoadStyle("sheet")
	if err != nil {
		panic("failed to load sheet style: " + err.Error())
	}
	return style
}

// notesMarkdown converts Markdown notes to an HTML fragment.
var notesMarkdown = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM, // Tables, strikethrough, autolinks, task lists
	),
	goldmark.WithRendererOptions(
		gmhtml.WithXHTML(), // Self-closing tags
	),
)

// RenderHypertext renders the document as a self-contained HTML page with
// QR images inlined as percent-encoded data URIs. Records must already
// carry their images (see Service.Generate); entries for which the private
// key is excluded carry no key image.
func RenderHypertext(doc Document) (string, error) {
	showKeyCode := !doc.Options.ExcludePrivateKeys

	entries := make([]htmlEntry, len(doc.Records))
	for i, rec := range doc.Records {
		entries[i] = htmlEntry{
			Number:       i + 1,
			Address:      rec.Address,
			PrivateKey:   rec.PrivateKey,
			AddressImage: template.URL(dataURI(rec.AddressImage)), // #nosec G203 -- payload is percent-encoded PNG bytes we generated
		}
		if showKeyCode {
			entries[i].PrivateKeyImage = template.URL(dataURI(rec.PrivateKeyImage)) // #nosec G203
		}
	}

	notes, err := renderNotes(doc.Notes)
	if err != nil {
		return "", err
	}

	view := htmlDocument{
		Entries:     entries,
		ShowKeyCode: showKeyCode,
		ShowKeyText: showKeyCode && !doc.Options.ExcludePrivateKeyText,
		Notes:       notes,
		Date:        doc.Date,
		Style:       template.CSS(sheetStyle), // #nosec G203 -- embedded asset, not user input
	}

	var buf bytes.Buffer
	if err := hypertextTmpl.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("%w: %v", ErrTemplateRender, err)
	}
	return buf.String(), nil
}

// renderNotes converts the optional Markdown notes block to HTML.
func renderNotes(md string) (template.HTML, error) {
	if md == "" {
		return "", nil
	}

	var buf bytes.Buffer
	if err := notesMarkdown.Convert([]byte(md), &buf); err != nil {
		return "", fmt.Errorf("%w: %v", ErrNotesRender, err)
	}
	return template.HTML(buf.String()), nil // #nosec G203 -- goldmark escapes raw HTML by default
}
