// Package compose builds page contexts and renders them through the site's
// html/template set.
//
// Shared fragments (the analytics snippet) are rendered to a string first and
// spliced into every page context as an ordinary field, instead of being
// included as nested partials. Page templates therefore only ever reference
// plain fields.
package compose

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"path"
	"path/filepath"

	"github.com/alnah/go-md2site/internal/assets"
	"github.com/alnah/go-md2site/internal/config"
	"github.com/alnah/go-md2site/internal/content"
	"github.com/alnah/go-md2site/internal/dateutil"
)

// Sentinel errors for template composition.
var (
	ErrTemplateParse   = errors.New("failed to parse template")
	ErrTemplateExecute = errors.New("failed to execute template")
	ErrUnknownTemplate = errors.New("unknown template")
)

// Context is the data handed to a page template.
type Context map[string]any

// Shared holds fragments rendered once per build and spliced into every page.
type Shared struct {
	Analytics template.HTML
}

// PostEntry is a post as listed on an index page.
type PostEntry struct {
	Title       string
	URL         string
	Date        string
	DisplayDate string
}

// ProjectEntry is a project as listed on an index page.
type ProjectEntry struct {
	Title string
	URL   string
}

// Composer renders named templates loaded from an asset loader.
// It is safe for concurrent use once constructed.
type Composer struct {
	templates  map[string]*template.Template
	dateFormat string
}

// New loads and parses every site template from loader.
// dateFormat is a dateutil layout or preset used for display dates.
func New(loader assets.AssetLoader, dateFormat string) (*Composer, error) {
	if _, err := dateutil.ResolveFormat(dateFormat); err != nil {
		return nil, err
	}

	c := &Composer{
		templates:  make(map[string]*template.Template, len(assets.TemplateNames)),
		dateFormat: dateFormat,
	}
	for _, name := range assets.TemplateNames {
		src, err := loader.LoadTemplate(name)
		if err != nil {
			return nil, err
		}
		tmpl, err := template.New(name).Option("missingkey=error").Parse(src)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrTemplateParse, name, err)
		}
		c.templates[name] = tmpl
	}
	return c, nil
}

// Render executes the named template with ctx.
func (c *Composer) Render(name string, ctx Context) (string, error) {
	tmpl, ok := c.templates[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownTemplate, name)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, ctx); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrTemplateExecute, name, err)
	}
	return buf.String(), nil
}

// RenderShared pre-renders the fragments every page embeds.
func (c *Composer) RenderShared(cfg *config.SiteConfig) (Shared, error) {
	analytics, err := c.Render(assets.TemplateAnalytics, Context{
		"TrackingID": cfg.AnalyticsTrackingID,
	})
	if err != nil {
		return Shared{}, err
	}
	// #nosec G203 -- output of our own html/template execution
	return Shared{Analytics: template.HTML(analytics)}, nil
}

// IndexContext builds the context for the site home page.
func (c *Composer) IndexContext(shared Shared, cfg *config.SiteConfig, posts []content.Post, projects []content.Project) Context {
	return Context{
		"Analytics": shared.Analytics,
		"Portrait":  PortraitURL(cfg.PortraitPath),
		"Posts":     c.postEntries(posts),
		"Projects":  projectEntries(projects),
	}
}

// BlogIndexContext builds the context for the blog listing.
func (c *Composer) BlogIndexContext(shared Shared, posts []content.Post) Context {
	return Context{
		"Analytics": shared.Analytics,
		"Posts":     c.postEntries(posts),
	}
}

// PostContext builds the context for a single post. body is trusted HTML.
func (c *Composer) PostContext(shared Shared, post content.Post, body string) Context {
	return Context{
		"Analytics":   shared.Analytics,
		"Title":       post.Title,
		"Date":        post.Date,
		"DisplayDate": c.displayDate(post.Date),
		"URL":         post.URL,
		"Body":        template.HTML(body), // #nosec G203 -- rendered from site content
	}
}

// ProjectsIndexContext builds the context for the projects listing.
func (c *Composer) ProjectsIndexContext(shared Shared, projects []content.Project) Context {
	return Context{
		"Analytics": shared.Analytics,
		"Projects":  projectEntries(projects),
	}
}

// ProjectContext builds the context for a single project. body is trusted HTML.
func (c *Composer) ProjectContext(shared Shared, project content.Project, body string) Context {
	return Context{
		"Analytics": shared.Analytics,
		"Title":     project.Title,
		"URL":       project.URL,
		"Body":      template.HTML(body), // #nosec G203 -- rendered from site content
		"Script":    ScriptURL(project),
	}
}

func (c *Composer) postEntries(posts []content.Post) []PostEntry {
	entries := make([]PostEntry, len(posts))
	for i, p := range posts {
		entries[i] = PostEntry{
			Title:       p.Title,
			URL:         p.URL,
			Date:        p.Date,
			DisplayDate: c.displayDate(p.Date),
		}
	}
	return entries
}

func projectEntries(projects []content.Project) []ProjectEntry {
	entries := make([]ProjectEntry, len(projects))
	for i, p := range projects {
		entries[i] = ProjectEntry{Title: p.Title, URL: p.URL}
	}
	return entries
}

// displayDate falls back to the sortable date if it cannot be reformatted.
// Dates are validated at discovery, so this only happens for hand-built posts.
func (c *Composer) displayDate(date string) string {
	formatted, err := dateutil.FormatCalendarDate(date, c.dateFormat)
	if err != nil {
		return date
	}
	return formatted
}

// PortraitURL is the site-absolute URL of the copied portrait.
func PortraitURL(portraitPath string) string {
	return "/" + path.Base(filepath.ToSlash(portraitPath))
}

// ScriptURL is the site-absolute URL of a project's copied js_file, or "".
func ScriptURL(project content.Project) string {
	if project.JSFile == "" {
		return ""
	}
	return project.URL + path.Base(filepath.ToSlash(project.JSFile))
}
