package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// ErrInvalidWorkerCount is returned for a negative or oversized --workers.
var ErrInvalidWorkerCount = errors.New("invalid worker count")

// maxWorkerFlag bounds --workers; beyond this, rendering is disk bound anyway.
const maxWorkerFlag = 64

// buildFlags holds all command-line flags.
type buildFlags struct {
	quiet     bool
	verbose   bool
	workers   int
	assetPath string
	version   bool
	help      bool
}

// parseFlags parses args (without the program name) and returns positional args.
func parseFlags(args []string, stderr io.Writer) (*buildFlags, []string, error) {
	fs := flag.NewFlagSet("md2site", flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &buildFlags{}

	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show per-page progress and timing")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel renders (0 = auto)")
	fs.StringVar(&f.assetPath, "asset-path", "", "directory overriding built-in templates and styles")
	fs.BoolVar(&f.version, "version", false, "show version information")
	fs.BoolVarP(&f.help, "help", "h", false, "show this help")

	fs.Usage = func() { printUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrUsage, err)
	}
	if err := validateWorkers(f.workers); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// validateWorkers checks --workers bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > maxWorkerFlag {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, maxWorkerFlag)
	}
	return nil
}
