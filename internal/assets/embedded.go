package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
)

// theme is the built-in site theme.
//
//go:embed styles templates
var theme embed.FS

// EmbeddedLoader serves the built-in theme compiled into the binary.
type EmbeddedLoader struct {
	fsys fs.FS
}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{fsys: theme}
}

// LoadStyle returns a built-in stylesheet by name, without the .css extension.
func (e *EmbeddedLoader) LoadStyle(name string) (string, error) {
	return e.load(styleKind, name)
}

// LoadTemplate returns a built-in page template by name, without the .html extension.
func (e *EmbeddedLoader) LoadTemplate(name string) (string, error) {
	return e.load(templateKind, name)
}

func (e *EmbeddedLoader) load(kind assetKind, name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	content, err := fs.ReadFile(e.fsys, kind.file(name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", kind.missing(name)
		}
		return "", fmt.Errorf("%w: %w", ErrAssetRead, err)
	}
	return string(content), nil
}

var _ AssetLoader = (*EmbeddedLoader)(nil)
