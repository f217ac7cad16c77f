package assets

import "errors"

// Theme loading errors.
var (
	ErrStyleNotFound    = errors.New("theme stylesheet not found")
	ErrTemplateNotFound = errors.New("theme template not found")

	// ErrInvalidAssetName is returned for names outside [a-z0-9_-].
	ErrInvalidAssetName = errors.New("invalid theme asset name")

	// ErrInvalidBasePath is returned when --asset-path is not a readable directory.
	ErrInvalidBasePath = errors.New("invalid asset path")

	ErrAssetRead = errors.New("reading theme asset")

	// ErrPathTraversal is returned when a theme file resolves outside the asset path.
	ErrPathTraversal = errors.New("theme asset escapes asset path")
)
