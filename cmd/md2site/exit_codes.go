package main

import (
	"context"
	"errors"
	"os"

	md2site "github.com/alnah/go-md2site"
)

// Exit codes for md2site CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0   // Site built
	ExitGeneral = 1   // General/unexpected error
	ExitUsage   = 2   // Invalid flags, config, or content
	ExitIO      = 3   // File not found, permission denied
	ExitSignal  = 130 // Interrupted
)

// ErrUsage wraps flag parsing errors.
var ErrUsage = errors.New("invalid usage")

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, context.Canceled) {
		return ExitSignal
	}

	// Usage/config/content validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, md2site.ErrInvalidArgument) ||
		errors.Is(err, md2site.ErrUnsafeOutputDir) ||
		errors.Is(err, md2site.ErrConfigNotFound) ||
		errors.Is(err, md2site.ErrConfigParse) ||
		errors.Is(err, md2site.ErrConfigInvalid) ||
		errors.Is(err, md2site.ErrConfigMissing) ||
		errors.Is(err, md2site.ErrFieldTooLong) ||
		errors.Is(err, md2site.ErrMetadataNotFound) ||
		errors.Is(err, md2site.ErrMetadataParse) ||
		errors.Is(err, md2site.ErrMissingField) ||
		errors.Is(err, md2site.ErrInvalidPath) ||
		errors.Is(err, md2site.ErrInvalidDate) ||
		errors.Is(err, md2site.ErrUnknownLanguage) ||
		errors.Is(err, md2site.ErrUnknownFormat) ||
		errors.Is(err, md2site.ErrUnknownTheme) ||
		errors.Is(err, md2site.ErrInvalidAssetPath) ||
		errors.Is(err, md2site.ErrTemplateParse) ||
		errors.Is(err, md2site.ErrOutputConflict) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, md2site.ErrContentRoot) ||
		errors.Is(err, md2site.ErrAssetNotFound) {
		return ExitIO
	}

	return ExitGeneral
}
