package md2site

import (
	"errors"

	"github.com/alnah/go-md2site/internal/assets"
	"github.com/alnah/go-md2site/internal/compose"
	"github.com/alnah/go-md2site/internal/config"
	"github.com/alnah/go-md2site/internal/content"
	"github.com/alnah/go-md2site/internal/dateutil"
	"github.com/alnah/go-md2site/internal/markdown"
	"github.com/alnah/go-md2site/internal/metafile"
)

// Sentinel errors for build operations.
var (
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrContentRoot      = errors.New("content root is not a directory")
	ErrUnsafeOutputDir  = errors.New("unsafe output directory")
	ErrAssetNotFound    = errors.New("referenced asset not found")
	ErrInvalidAssetPath = errors.New("invalid asset path")
	ErrOutputConflict   = errors.New("two files map to the same output path")
)

// Errors surfaced from site content. They are the values the internal
// packages return, so errors.Is works on anything Build returns.
var (
	// Metadata errors.
	ErrMetadataNotFound = metafile.ErrNotFound
	ErrMetadataParse    = metafile.ErrParse
	ErrMissingField     = content.ErrMissingField
	ErrInvalidPath      = content.ErrInvalidPath
	ErrInvalidDate      = dateutil.ErrInvalidDate

	// Rendering errors.
	ErrUnknownLanguage = markdown.ErrUnknownLanguage
	ErrUnknownTheme    = markdown.ErrUnknownTheme
	ErrHighlight       = markdown.ErrHighlight
	ErrUnknownFormat   = content.ErrUnknownFormat

	// Site config errors.
	ErrConfigNotFound = config.ErrConfigNotFound
	ErrConfigParse    = config.ErrConfigParse
	ErrConfigInvalid  = config.ErrInvalidField
	ErrConfigMissing  = config.ErrMissingField
	ErrFieldTooLong   = config.ErrFieldTooLong

	// Asset and template errors.
	ErrStyleNotFound    = assets.ErrStyleNotFound
	ErrTemplateNotFound = assets.ErrTemplateNotFound
	ErrTemplateParse    = compose.ErrTemplateParse
	ErrTemplateExecute  = compose.ErrTemplateExecute
)
