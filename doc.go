// Package coldwallet renders printable paper-wallet sheets from
// address/private-key pairs.
//
// # Quick Start
//
// Parse records, build a document, and render:
//
//	svc := coldwallet.NewService()
//	out, err := svc.Generate(coldwallet.Input{
//	    Lines: []string{"1BoatSLRHtKNngkdXEeobR76b53LETtpyT:5Kb8kLf9zgWQ..."},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.Stdout.WriteString(out)
//
// # Pipeline
//
// Generation follows these stages:
//
//  1. Record parsing (one "address:privateKey" pair per line)
//  2. Address transformation (optional redaction or elision)
//  3. QR encoding (hypertext mode only, via go-qrcode)
//  4. Template rendering (typeset TeX or self-contained HTML)
//
// The typeset output defers barcode rendering to the downstream document
// compiler; the hypertext output embeds QR images inline as percent-encoded
// data URIs and is viewable directly in a browser.
//
// # Key Material
//
// The package never writes key material anywhere except the rendered
// document string it returns. Rendering is all-or-nothing: on any error the
// returned document is empty.
package coldwallet
