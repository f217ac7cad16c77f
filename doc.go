// Package md2site builds a static personal website (home page, blog and
// projects) from a directory of Markdown and HTML content.
//
// # Quick Start
//
//	b, err := md2site.NewBuilder(md2site.WithLogger(slog.Default()))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res, err := b.Build(ctx, "site", "dist")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%d posts, %d projects\n", res.Posts, res.Projects)
//
// # Content Layout
//
//	site/
//	├── config.toml                   # portrait_path, analytics_tracking_id
//	├── blog/posts/<slug>/
//	│   ├── metadata.toml             # title, date, format, publish
//	│   └── post.md
//	└── projects/<slug>/
//	    ├── metadata.toml             # title, filename, format, publish, js_file
//	    └── <filename>
//
// Metadata and config files may also be written in YAML (.yaml or .yml).
// Items with publish = false are skipped.
//
// # Output Layout
//
//	dist/
//	├── index.html
//	├── styles.css
//	├── <portrait>
//	├── blog/index.html
//	├── blog/<slug>/index.html
//	├── projects/index.html
//	├── projects/<slug>/index.html    # plus the copied js_file, if any
//	└── apps/
//
// The output directory is regenerated from scratch on every build.
//
// # Code Blocks
//
// Fenced code blocks are highlighted at build time. The fence's language tag
// must appear in the language map; an unknown tag fails the build with
// ErrUnknownLanguage rather than guessing. Extend the map with
// WithLanguageMap.
//
// # Errors
//
// Build is fail-fast: the first error aborts it. Returned errors wrap the
// sentinels in this package (ErrMetadataNotFound, ErrMetadataParse,
// ErrMissingField, ErrUnknownLanguage, ErrUnknownFormat, ...) and can be
// matched with errors.Is. Filesystem errors wrap the os errors.
package md2site
