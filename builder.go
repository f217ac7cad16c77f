package md2site

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/alnah/go-md2site/internal/assets"
	"github.com/alnah/go-md2site/internal/compose"
	"github.com/alnah/go-md2site/internal/config"
	"github.com/alnah/go-md2site/internal/content"
	"github.com/alnah/go-md2site/internal/fileutil"
	"github.com/alnah/go-md2site/internal/markdown"
)

// Output tree names that are not derived from content.
const (
	StylesFile = "styles.css"
	AppsDir    = "apps"
)

// Result summarizes a completed build.
type Result struct {
	Posts    int
	Projects int
	Files    int
	Duration time.Duration
}

// Builder generates a static site from a content directory.
// A Builder is safe for concurrent use; each Build call is independent.
type Builder struct {
	logger     *slog.Logger
	workers    int
	assetPath  string
	loader     AssetLoader
	extraLangs map[string]string
}

// NewBuilder creates a Builder. Returns ErrInvalidAssetPath if WithAssetPath
// names a directory that cannot be read.
func NewBuilder(opts ...Option) (*Builder, error) {
	b := &Builder{
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(b)
	}

	if b.loader == nil {
		loader, err := NewAssetLoader(b.assetPath)
		if err != nil {
			return nil, err
		}
		b.loader = loader
	}
	b.workers = ResolveWorkers(b.workers)

	return b, nil
}

// Workers returns the number of items rendered concurrently.
func (b *Builder) Workers() int {
	return b.workers
}

// site is everything loaded from the content root before rendering starts.
type site struct {
	root     string
	cfg      *config.SiteConfig
	posts    []content.Post
	projects []content.Project
	renderer *markdown.Renderer
	composer *compose.Composer
	shared   compose.Shared
}

// output is one file of the generated site. Exactly one of data and src is set.
type output struct {
	rel  string // path relative to the output directory
	data []byte
	src  string
}

// Build reads contentRoot and regenerates outputDir from it.
//
// Loading, discovery and rendering all complete in memory before the output
// directory is touched, so a build that fails on bad content leaves the
// previous output in place. The first error aborts the build.
func (b *Builder) Build(ctx context.Context, contentRoot, outputDir string) (*Result, error) {
	start := time.Now()

	if err := checkDirs(contentRoot, outputDir); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s, err := b.load(contentRoot)
	if err != nil {
		return nil, err
	}
	b.logger.Info("discovered content",
		slog.Int("posts", len(s.posts)),
		slog.Int("projects", len(s.projects)))

	files, err := b.render(ctx, s)
	if err != nil {
		return nil, err
	}

	if err := b.write(ctx, outputDir, files); err != nil {
		return nil, err
	}

	res := &Result{
		Posts:    len(s.posts),
		Projects: len(s.projects),
		Files:    len(files),
		Duration: time.Since(start),
	}
	b.logger.Debug("site built",
		slog.String("path", outputDir),
		slog.Int("files", res.Files),
		slog.Duration("duration", res.Duration))
	return res, nil
}

func checkDirs(contentRoot, outputDir string) error {
	if contentRoot == "" {
		return fmt.Errorf("%w: content directory is empty", ErrInvalidArgument)
	}
	if outputDir == "" {
		return fmt.Errorf("%w: output directory is empty", ErrInvalidArgument)
	}

	info, err := os.Stat(contentRoot)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrContentRoot, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrContentRoot, contentRoot)
	}

	// The output directory is wiped on every build, so the two trees must not overlap.
	if fileutil.IsWithin(contentRoot, outputDir) {
		return fmt.Errorf("%w: %s contains the content directory %s", ErrUnsafeOutputDir, outputDir, contentRoot)
	}
	if fileutil.IsWithin(outputDir, contentRoot) {
		return fmt.Errorf("%w: %s is inside the content directory %s", ErrUnsafeOutputDir, outputDir, contentRoot)
	}
	return nil
}

// load reads the site config, builds the renderers and discovers content.
func (b *Builder) load(root string) (*site, error) {
	cfg, err := config.LoadSiteConfig(root)
	if err != nil {
		return nil, err
	}
	b.logger.Debug("loaded site config",
		slog.String("theme", cfg.CodeTheme),
		slog.String("date_format", cfg.DateFormat))

	hl, err := markdown.NewChromaHighlighter(cfg.CodeTheme)
	if err != nil {
		return nil, err
	}
	langs := markdown.DefaultLanguageMap().Merge(b.extraLangs)
	renderer, err := markdown.NewRenderer(
		markdown.WithLanguageMap(langs),
		markdown.WithHighlighter(hl),
	)
	if err != nil {
		return nil, err
	}

	composer, err := compose.New(b.loader, cfg.DateFormat)
	if err != nil {
		return nil, err
	}

	posts, err := content.DiscoverPosts(root)
	if err != nil {
		return nil, err
	}
	projects, err := content.DiscoverProjects(root)
	if err != nil {
		return nil, err
	}

	shared, err := composer.RenderShared(cfg)
	if err != nil {
		return nil, err
	}

	return &site{
		root:     root,
		cfg:      cfg,
		posts:    posts,
		projects: projects,
		renderer: renderer,
		composer: composer,
		shared:   shared,
	}, nil
}

// render produces every output file in memory.
// Posts and projects render concurrently; index pages are built from the
// already sorted lists, so ordering never depends on render completion.
func (b *Builder) render(ctx context.Context, s *site) ([]output, error) {
	var files []output

	style, err := b.loader.LoadStyle(DefaultStyle)
	if err != nil {
		return nil, err
	}
	files = append(files, output{rel: StylesFile, data: []byte(style)})

	portrait, err := assetFile(s.root, s.cfg.PortraitPath)
	if err != nil {
		return nil, fmt.Errorf("portrait_path: %w", err)
	}
	files = append(files, output{rel: path.Base(filepath.ToSlash(s.cfg.PortraitPath)), src: portrait})

	c := s.composer
	pages := []struct {
		url, name string
		ctx       compose.Context
	}{
		{"/", TemplateIndex, c.IndexContext(s.shared, s.cfg, s.posts, s.projects)},
		{content.PostURLPrefix, TemplateBlogIndex, c.BlogIndexContext(s.shared, s.posts)},
		{content.ProjectURLPrefix, TemplateProjectsIndex, c.ProjectsIndexContext(s.shared, s.projects)},
	}
	for _, p := range pages {
		html, err := c.Render(p.name, p.ctx)
		if err != nil {
			return nil, err
		}
		files = append(files, output{rel: content.OutputPath("", p.url), data: []byte(html)})
	}

	postFiles := make([]output, len(s.posts))
	projectFiles := make([][]output, len(s.projects))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.workers)

	for i, post := range s.posts {
		g.Go(func() error {
			out, err := b.renderPost(gctx, s, post)
			if err != nil {
				return fmt.Errorf("post %q: %w", post.Slug, err)
			}
			postFiles[i] = out
			return nil
		})
	}
	for i, project := range s.projects {
		g.Go(func() error {
			outs, err := b.renderProject(gctx, s, project)
			if err != nil {
				return fmt.Errorf("project %q: %w", project.Slug, err)
			}
			projectFiles[i] = outs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	files = append(files, postFiles...)
	for _, outs := range projectFiles {
		files = append(files, outs...)
	}
	return files, nil
}

func (b *Builder) renderPost(ctx context.Context, s *site, post content.Post) (output, error) {
	body, err := b.renderBody(ctx, s, post.BodyPath(), post.Format)
	if err != nil {
		return output{}, err
	}
	html, err := s.composer.Render(TemplatePost, s.composer.PostContext(s.shared, post, body))
	if err != nil {
		return output{}, err
	}

	rel := content.OutputPath("", post.URL)
	b.logger.Debug("rendered", slog.String("kind", "post"), slog.String("slug", post.Slug), slog.String("path", rel))
	return output{rel: rel, data: []byte(html)}, nil
}

func (b *Builder) renderProject(ctx context.Context, s *site, project content.Project) ([]output, error) {
	body, err := b.renderBody(ctx, s, project.BodyPath(), project.Format)
	if err != nil {
		return nil, err
	}
	html, err := s.composer.Render(TemplateProject, s.composer.ProjectContext(s.shared, project, body))
	if err != nil {
		return nil, err
	}

	rel := content.OutputPath("", project.URL)
	outs := []output{{rel: rel, data: []byte(html)}}

	if project.JSFile != "" {
		src := project.JSPath()
		if !fileutil.FileExists(src) {
			return nil, fmt.Errorf("js_file: %w: %s", ErrAssetNotFound, src)
		}
		outs = append(outs, output{
			rel: filepath.Join(filepath.Dir(rel), path.Base(filepath.ToSlash(project.JSFile))),
			src: src,
		})
	}

	b.logger.Debug("rendered", slog.String("kind", "project"), slog.String("slug", project.Slug), slog.String("path", rel))
	return outs, nil
}

// renderBody reads an item body and converts it to HTML. HTML bodies are
// used as written.
func (b *Builder) renderBody(ctx context.Context, s *site, bodyPath string, format content.Format) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	raw, err := os.ReadFile(bodyPath) // #nosec G304 -- path built from discovered content
	if err != nil {
		return "", fmt.Errorf("reading body: %w", err)
	}

	switch format {
	case content.FormatMarkdown:
		return s.renderer.Render(ctx, string(raw))
	case content.FormatHTML:
		return string(raw), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// write resets outputDir and writes every file into it, followed by the
// empty apps directory.
func (b *Builder) write(ctx context.Context, outputDir string, files []output) error {
	seen := make(map[string]struct{}, len(files))
	for _, f := range files {
		key := filepath.Clean(f.rel)
		if _, dup := seen[key]; dup {
			return fmt.Errorf("%w: %s", ErrOutputConflict, key)
		}
		seen[key] = struct{}{}
	}

	if err := fileutil.ResetDir(outputDir); err != nil {
		return err
	}

	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return err
		}

		dst := filepath.Join(outputDir, f.rel)
		var err error
		if f.src != "" {
			err = fileutil.CopyFile(f.src, dst)
		} else {
			err = fileutil.WriteFile(dst, f.data)
		}
		if err != nil {
			return err
		}
		b.logger.Debug("wrote", slog.String("path", dst))
	}

	return fileutil.EnsureDir(filepath.Join(outputDir, AppsDir))
}

// assetFile resolves a content-relative asset and checks it exists.
func assetFile(root, rel string) (string, error) {
	p := filepath.Join(root, filepath.FromSlash(rel))
	if !fileutil.FileExists(p) {
		return "", fmt.Errorf("%w: %s", ErrAssetNotFound, p)
	}
	return p, nil
}

// Compile-time interface check.
var _ AssetLoader = (*assets.AssetResolver)(nil)
