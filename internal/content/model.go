// Package content discovers posts and projects in a content directory and
// turns their metadata files into ordered, immutable records.
package content

import (
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2site/internal/metafile"
)

// Sentinel errors for content discovery.
var (
	ErrUnknownFormat = errors.New("unknown content format")
	ErrMissingField  = errors.New("missing required metadata field")
	ErrInvalidPath   = errors.New("invalid content path")
)

// Format is the markup of an item's body file.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
)

// ParseFormat validates a metadata format value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.TrimSpace(s)); f {
	case FormatMarkdown, FormatHTML:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q (want %q or %q)", ErrUnknownFormat, s, FormatMarkdown, FormatHTML)
	}
}

// Content tree layout.
const (
	MetadataBase = "metadata"
	PostBodyFile = "post.md"

	PostURLPrefix    = "/blog/"
	ProjectURLPrefix = "/projects/"
)

// PostsDir and ProjectsDir are relative to the content root.
var (
	PostsDir    = filepath.Join("blog", "posts")
	ProjectsDir = "projects"
)

// PostMetadata is the decoded form of a post's metadata file.
type PostMetadata struct {
	Title   string             `yaml:"title" toml:"title"`
	Date    metafile.Timestamp `yaml:"date" toml:"date"`
	Format  string             `yaml:"format" toml:"format"`
	Publish *bool              `yaml:"publish" toml:"publish"`
}

// Published reports whether the post should be built. Absent means true.
func (m PostMetadata) Published() bool {
	return m.Publish == nil || *m.Publish
}

// ProjectMetadata is the decoded form of a project's metadata file.
type ProjectMetadata struct {
	Title    string `yaml:"title" toml:"title"`
	Filename string `yaml:"filename" toml:"filename"`
	Format   string `yaml:"format" toml:"format"`
	Publish  *bool  `yaml:"publish" toml:"publish"`
	JSFile   string `yaml:"js_file" toml:"js_file"`
}

// Published reports whether the project should be built. Absent means true.
func (m ProjectMetadata) Published() bool {
	return m.Publish == nil || *m.Publish
}

// Post is a discovered, published blog post.
type Post struct {
	Title      string
	Date       string // YYYY-MM-DD
	URL        string // "/blog/<slug>/"
	Slug       string
	ContentDir string
	Format     Format
}

// BodyPath returns the path of the post's body file.
func (p Post) BodyPath() string {
	return filepath.Join(p.ContentDir, PostBodyFile)
}

// Project is a discovered, published project.
type Project struct {
	Title      string
	URL        string // "/projects/<slug>/"
	Slug       string
	ContentDir string
	Filename   string
	Format     Format
	JSFile     string // optional
}

// BodyPath returns the path of the project's body file.
func (p Project) BodyPath() string {
	return filepath.Join(p.ContentDir, p.Filename)
}

// JSPath returns the path of the project's extra script, or "" if none.
func (p Project) JSPath() string {
	if p.JSFile == "" {
		return ""
	}
	return filepath.Join(p.ContentDir, p.JSFile)
}

// itemURL builds the public URL for a slug. The output location of an item
// is derived from the same value (see OutputPath).
func itemURL(prefix, slug string) string {
	return prefix + slug + "/"
}

// OutputPath maps a site-relative URL to the index.html it is served from
// under outputDir.
func OutputPath(outputDir, url string) string {
	rel := strings.Trim(path.Clean("/"+url), "/")
	return filepath.Join(outputDir, filepath.FromSlash(rel), "index.html")
}

// localFile checks that name stays inside its item directory.
func localFile(field, name string) error {
	if !filepath.IsLocal(filepath.FromSlash(name)) {
		return fmt.Errorf("%w: %s %q must be a file inside the item directory", ErrInvalidPath, field, name)
	}
	return nil
}
