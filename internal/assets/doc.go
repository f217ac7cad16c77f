// Package assets provides the site stylesheet and HTML page templates.
//
// # Loader Architecture
//
// The package implements a layered loading system:
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (built-in theme)
//	    ├── FilesystemLoader  - loads from custom directory on disk
//	    └── AssetResolver     - combines both with custom-first fallback
//
// AssetResolver is the loader used by the site builder. It tries the
// custom FilesystemLoader first, falling back to EmbeddedLoader if the asset
// is not found. This allows overriding a single template while keeping the
// rest of the built-in theme.
//
// # Directory Structure
//
//	{basePath}/
//	├── styles/
//	│   └── styles.css
//	└── templates/
//	    ├── index.html
//	    ├── blog_index.html
//	    ├── post.html
//	    ├── projects_index.html
//	    ├── project.html
//	    └── analytics.html       # partial, rendered before the pages
//
// # Security
//
// Asset names are validated to prevent path traversal attacks.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets
