package md2site

import (
	"fmt"

	"github.com/alnah/go-md2site/internal/assets"
)

// Asset names for the built-in stylesheet and page templates.
const (
	DefaultStyle = assets.DefaultStyleName

	TemplateIndex         = assets.TemplateIndex
	TemplateBlogIndex     = assets.TemplateBlogIndex
	TemplatePost          = assets.TemplatePost
	TemplateProjectsIndex = assets.TemplateProjectsIndex
	TemplateProject       = assets.TemplateProject
	TemplateAnalytics     = assets.TemplateAnalytics
)

// AssetLoader defines the contract for loading the stylesheet and page
// templates. Implement this interface to serve a theme from somewhere other
// than the local filesystem.
type AssetLoader interface {
	// LoadStyle loads a CSS style by name (without .css extension).
	// Returns ErrStyleNotFound if the style doesn't exist.
	LoadStyle(name string) (string, error)

	// LoadTemplate loads an HTML template by name (without .html extension).
	// Returns ErrTemplateNotFound if the template doesn't exist.
	LoadTemplate(name string) (string, error)
}

// NewAssetLoader creates an AssetLoader for the given base path.
// If basePath is empty, returns a loader using only embedded assets.
// If basePath is set, custom assets take precedence with fallback to embedded.
//
// The basePath directory should contain:
//   - styles/styles.css for the stylesheet
//   - templates/{name}.html for page templates
//
// Returns ErrInvalidAssetPath if basePath is set but not a valid, readable directory.
func NewAssetLoader(basePath string) (AssetLoader, error) {
	resolver, err := assets.NewAssetResolver(basePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAssetPath, err)
	}
	return resolver, nil
}
