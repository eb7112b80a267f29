package main

import (
	"fmt"
	"io"
)

// usageText is the full help output for the coldwallet command.
const usageText = `coldwallet - render printable paper-wallet sheets

Usage:
  coldwallet [flags] [input-file]

Reads colon-separated "address:privateKey" pairs, one per line, from the
input file or standard input, and writes a printable document to standard
output: TeX source by default (compile with your document processor), or a
self-contained HTML page with --html.

Flags:
  -x, --exclude-private-keys       omit private-key barcodes and text
      --exclude-private-key-text   omit private-key text only
  -a, --exclude-addresses          replace address text with a placeholder
  -e, --elide-addresses            shorten addresses to first char + last 8
      --html                       render self-contained HTML instead of TeX
      --notes FILE                 markdown file appended as an instructions block
      --date-format FORMAT         footer date format or preset (iso, european, us, long)
  -c, --config NAME|PATH           config file name or path
      --version                    print version and exit
  -h, --help                       show this help

Examples:
  coldwallet wallets.txt > wallets.tex
  coldwallet --html -e wallets.txt > wallets.html
  generate-keys | coldwallet -x --html > addresses-only.html
`

// printUsage writes the help text to w.
func printUsage(w io.Writer) {
	fmt.Fprint(w, usageText)
}
