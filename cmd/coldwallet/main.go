package main

import (
	"fmt"
	"os"

	"go.uber.org/automaxprocs/maxprocs"

	coldwallet "github.com/mkvtvseries/cold-wallet-generator"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	svc := coldwallet.NewService()
	if err := run(os.Args, os.Stdin, os.Stdout, os.Stderr, svc); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCodeFor(err))
	}
}
