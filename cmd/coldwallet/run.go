package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	flag "github.com/spf13/pflag"

	coldwallet "github.com/mkvtvseries/cold-wallet-generator"
	"github.com/mkvtvseries/cold-wallet-generator/internal/dateutil"
)

// Sentinel errors for CLI operations.
var (
	ErrReadInput   = errors.New("failed to read input file")
	ErrReadStdin   = errors.New("failed to read standard input")
	ErrReadNotes   = errors.New("failed to read notes file")
	ErrTooManyArgs = errors.New("expected at most one input file argument")
)

// generator is the interface for the wallet sheet service.
type generator interface {
	Generate(input coldwallet.Input) (string, error)
}

// run parses arguments, reads the input source, and delegates to the
// service. The rendered document goes to stdout only on success; nothing is
// written there on any failure.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer, svc generator) error {
	flags, fs, positional, err := parseFlags(args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printUsage(stderr)
			return nil
		}
		return err
	}

	if flags.version {
		fmt.Fprintf(stdout, "coldwallet %s\n", Version)
		return nil
	}

	if len(positional) > 1 {
		return fmt.Errorf("%w: got %d", ErrTooManyArgs, len(positional))
	}

	cfg, err := resolveConfig(flags.config)
	if err != nil {
		return err
	}
	opts, output := mergeConfig(cfg, flags, fs)

	date, err := dateutil.FormatDate(output.dateFormat, time.Now())
	if err != nil {
		return err
	}

	notes, err := readNotes(output.notes)
	if err != nil {
		return err
	}

	lines, err := readLines(positional, stdin)
	if err != nil {
		return err
	}

	doc, err := svc.Generate(coldwallet.Input{
		Lines:   lines,
		Options: opts,
		Date:    date,
		Notes:   notes,
	})
	if err != nil {
		return err
	}

	_, err = io.WriteString(stdout, doc)
	return err
}

// resolveConfig loads the named config file, or defaults when none given.
func resolveConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return DefaultConfig(), nil
	}
	return LoadConfig(nameOrPath)
}

// mergeConfig layers explicit CLI flags over config file values. A flag
// wins only if it was actually set on the command line, so config values
// act as defaults.
func mergeConfig(cfg *Config, flags *cliFlags, fs *flag.FlagSet) (coldwallet.Options, outputFlags) {
	opts := coldwallet.Options{
		ExcludePrivateKeys:    cfg.Visibility.ExcludePrivateKeys,
		ExcludePrivateKeyText: cfg.Visibility.ExcludePrivateKeyText,
		ExcludeAddresses:      cfg.Visibility.ExcludeAddresses,
		ElideAddresses:        cfg.Visibility.ElideAddresses,
		Hypertext:             cfg.Output.HTML,
	}
	output := outputFlags{
		dateFormat: cfg.Output.DateFormat,
		notes:      cfg.Output.Notes,
	}

	if fs.Changed("exclude-private-keys") {
		opts.ExcludePrivateKeys = flags.visibility.excludePrivateKeys
	}
	if fs.Changed("exclude-private-key-text") {
		opts.ExcludePrivateKeyText = flags.visibility.excludePrivateKeyText
	}
	if fs.Changed("exclude-addresses") {
		opts.ExcludeAddresses = flags.visibility.excludeAddresses
	}
	if fs.Changed("elide-addresses") {
		opts.ElideAddresses = flags.visibility.elideAddresses
	}
	if fs.Changed("html") {
		opts.Hypertext = flags.output.html
	}
	if fs.Changed("date-format") {
		output.dateFormat = flags.output.dateFormat
	}
	if fs.Changed("notes") {
		output.notes = flags.output.notes
	}

	return opts, output
}

// readNotes reads the optional Markdown notes file.
func readNotes(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	content, err := os.ReadFile(path) // #nosec G304 -- notes path is user-provided
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrReadNotes, err)
	}
	return string(content), nil
}

// readLines reads all record lines from the named file, or from stdin when
// no file argument was given.
func readLines(positional []string, stdin io.Reader) ([]string, error) {
	var data []byte
	var err error

	if len(positional) == 1 {
		data, err = os.ReadFile(positional[0]) // #nosec G304 -- input path is user-provided
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrReadInput, err)
		}
	} else {
		data, err = io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrReadStdin, err)
		}
	}

	return splitLines(string(data)), nil
}

// splitLines splits input text into lines, tolerating CRLF endings.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
