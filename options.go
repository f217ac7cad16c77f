package md2site

import (
	"log/slog"
)

// Option configures a Builder.
type Option func(*Builder)

// WithLogger sets the structured logger. The default discards all records.
func WithLogger(l *slog.Logger) Option {
	return func(b *Builder) {
		if l != nil {
			b.logger = l
		}
	}
}

// WithWorkers sets how many items are rendered concurrently.
// Zero or a negative value selects ResolveWorkers(0).
func WithWorkers(n int) Option {
	return func(b *Builder) {
		b.workers = n
	}
}

// WithAssetPath overrides built-in templates and the stylesheet with files
// from dir (see NewAssetLoader for the layout). Missing files fall back to
// the built-in ones.
func WithAssetPath(dir string) Option {
	return func(b *Builder) {
		b.assetPath = dir
	}
}

// WithAssetLoader sets a custom asset loader. It takes precedence over
// WithAssetPath.
func WithAssetLoader(l AssetLoader) Option {
	return func(b *Builder) {
		b.loader = l
	}
}

// WithLanguageMap adds or replaces code block tag mappings on top of the
// default language map. Values are highlighter grammar names such as "Go".
func WithLanguageMap(m map[string]string) Option {
	return func(b *Builder) {
		b.extraLangs = m
	}
}
