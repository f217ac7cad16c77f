package assets

import (
	"fmt"
	"path"
)

// AssetLoader is the source of a site theme: one stylesheet and the page
// templates named in TemplateNames.
type AssetLoader interface {
	// LoadStyle returns styles/<name>.css, or ErrStyleNotFound.
	LoadStyle(name string) (string, error)

	// LoadTemplate returns templates/<name>.html, or ErrTemplateNotFound.
	LoadTemplate(name string) (string, error)
}

// assetKind locates one class of theme file inside a theme directory.
type assetKind struct {
	dir      string
	ext      string
	notFound error
}

var (
	styleKind    = assetKind{dir: "styles", ext: ".css", notFound: ErrStyleNotFound}
	templateKind = assetKind{dir: "templates", ext: ".html", notFound: ErrTemplateNotFound}
)

// file returns the slash-separated path of name relative to the theme root.
func (k assetKind) file(name string) string {
	return path.Join(k.dir, name+k.ext)
}

func (k assetKind) missing(name string) error {
	return fmt.Errorf("%w: %q", k.notFound, name)
}
