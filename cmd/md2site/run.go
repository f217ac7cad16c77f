package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"go.uber.org/automaxprocs/maxprocs"

	md2site "github.com/alnah/go-md2site"
	"github.com/alnah/go-md2site/internal/config"
	"github.com/alnah/go-md2site/internal/hints"
	"github.com/alnah/go-md2site/internal/markdown"
	"github.com/alnah/go-md2site/internal/metafile"
)

// runMain parses args, builds the site and returns the process exit code.
func runMain(args []string, env *Environment) int {
	flags, positional, err := parseFlags(args, env.Stderr)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}

	if flags.help {
		printUsage(env.Stdout)
		return ExitSuccess
	}
	if flags.version {
		printVersion(env.Stdout)
		return ExitSuccess
	}
	// Both directories are required; without them there is nothing to do.
	if len(positional) < 2 {
		printUsage(env.Stdout)
		return ExitSuccess
	}
	contentDir, outputDir := positional[0], positional[1]

	logger := newLogger(env.Stderr, flags.quiet, flags.verbose)

	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...any) {
		logger.Debug(fmt.Sprintf(format, args...))
	}))

	ctx, stop := notifyContext(context.Background())
	defer stop()

	if err := build(ctx, contentDir, outputDir, flags, logger, env); err != nil {
		fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err, contentDir))
		return exitCodeFor(err)
	}
	return ExitSuccess
}

func build(ctx context.Context, contentDir, outputDir string, flags *buildFlags, logger *slog.Logger, env *Environment) error {
	builder, err := md2site.NewBuilder(
		md2site.WithLogger(logger),
		md2site.WithWorkers(flags.workers),
		md2site.WithAssetPath(flags.assetPath),
	)
	if err != nil {
		return err
	}
	logger.Debug("starting build",
		slog.String("content", contentDir),
		slog.String("output", outputDir),
		slog.Int("workers", builder.Workers()))

	start := env.Now()
	res, err := builder.Build(ctx, contentDir, outputDir)
	if err != nil {
		return err
	}

	if !flags.quiet {
		fmt.Fprintf(env.Stdout, "Built %d posts and %d projects (%d files) into %s",
			res.Posts, res.Projects, res.Files, outputDir)
		if flags.verbose {
			fmt.Fprintf(env.Stdout, " in %s", env.Now().Sub(start).Round(time.Millisecond))
		}
		fmt.Fprintln(env.Stdout)
	}
	return nil
}

// notifyContext returns a context canceled on interrupt or termination.
func notifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, stopSignals...)
}

// newLogger writes text records to w. quiet keeps errors only and verbose
// adds debug records.
func newLogger(w io.Writer, quiet, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	switch {
	case quiet:
		level = slog.LevelError
	case verbose:
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// hintFor returns an actionable hint for well-known errors, or "".
func hintFor(err error, contentDir string) string {
	switch {
	case errors.Is(err, md2site.ErrUnknownLanguage):
		return hints.ForUnknownLanguage(markdown.DefaultLanguageMap().Tags())
	case errors.Is(err, md2site.ErrUnknownTheme):
		return hints.ForUnknownTheme(markdown.Themes())
	case errors.Is(err, md2site.ErrUnknownFormat):
		return hints.ForUnknownFormat()
	case errors.Is(err, md2site.ErrInvalidDate):
		return hints.ForInvalidDate()
	case errors.Is(err, md2site.ErrConfigNotFound):
		searched := make([]string, 0, len(metafile.Extensions))
		for _, ext := range metafile.Extensions {
			searched = append(searched, filepath.Join(contentDir, config.ConfigBase+ext))
		}
		return hints.ForConfigNotFound(searched)
	case errors.Is(err, md2site.ErrMetadataNotFound):
		return hints.ForMetadataNotFound()
	case errors.Is(err, md2site.ErrUnsafeOutputDir), errors.Is(err, os.ErrPermission):
		return hints.ForOutputDirectory()
	default:
		return ""
	}
}
