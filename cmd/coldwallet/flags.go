package main

import (
	flag "github.com/spf13/pflag"
)

// visibilityFlags holds flags controlling which fields appear in the output.
type visibilityFlags struct {
	excludePrivateKeys    bool
	excludePrivateKeyText bool
	excludeAddresses      bool
	elideAddresses        bool
}

// outputFlags holds flags controlling the output document.
type outputFlags struct {
	html       bool
	dateFormat string
	notes      string
}

// cliFlags holds all flags for the coldwallet command.
type cliFlags struct {
	config     string
	version    bool
	visibility visibilityFlags
	output     outputFlags
}

// addVisibilityFlags adds field visibility flags to a FlagSet.
func addVisibilityFlags(fs *flag.FlagSet, f *visibilityFlags) {
	fs.BoolVarP(&f.excludePrivateKeys, "exclude-private-keys", "x", false, "omit private-key barcodes and text")
	fs.BoolVar(&f.excludePrivateKeyText, "exclude-private-key-text", false, "omit private-key text only (barcode still shown)")
	fs.BoolVarP(&f.excludeAddresses, "exclude-addresses", "a", false, "replace address text with a placeholder")
	fs.BoolVarP(&f.elideAddresses, "elide-addresses", "e", false, "shorten addresses to first char + last 8")
}

// addOutputFlags adds output document flags to a FlagSet.
func addOutputFlags(fs *flag.FlagSet, f *outputFlags) {
	fs.BoolVar(&f.html, "html", false, "render self-contained HTML instead of TeX")
	fs.StringVar(&f.dateFormat, "date-format", "", "footer date format or preset (iso, european, us, long)")
	fs.StringVar(&f.notes, "notes", "", "markdown file appended as an instructions block")
}

// parseFlags parses command-line flags and returns the flags, the FlagSet
// (for Changed lookups when merging config), and positional arguments.
func parseFlags(args []string) (*cliFlags, *flag.FlagSet, []string, error) {
	fs := flag.NewFlagSet("coldwallet", flag.ContinueOnError)
	f := &cliFlags{}

	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	addVisibilityFlags(fs, &f.visibility)
	addOutputFlags(fs, &f.output)

	fs.Usage = func() {}

	if err := fs.Parse(args); err != nil {
		return nil, nil, nil, err
	}

	return f, fs, fs.Args(), nil
}
