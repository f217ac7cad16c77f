package content

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/alnah/go-md2site/internal/dateutil"
	"github.com/alnah/go-md2site/internal/metafile"
)

// DiscoverPosts loads every published post under <root>/blog/posts and
// returns them newest first (see SortPosts).
// A missing or malformed metadata file aborts discovery.
func DiscoverPosts(root string) ([]Post, error) {
	dir := filepath.Join(root, PostsDir)
	slugs, err := listItemDirs(dir)
	if err != nil {
		return nil, err
	}

	posts := make([]Post, 0, len(slugs))
	for _, slug := range slugs {
		itemDir := filepath.Join(dir, slug)

		var meta PostMetadata
		metaPath, err := metafile.Load(itemDir, MetadataBase, &meta)
		if err != nil {
			return nil, fmt.Errorf("post %q: %w", slug, err)
		}
		if !meta.Published() {
			continue
		}

		post, err := newPost(slug, itemDir, meta)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", metaPath, err)
		}
		posts = append(posts, post)
	}

	SortPosts(posts)
	return posts, nil
}

func newPost(slug, dir string, meta PostMetadata) (Post, error) {
	if meta.Title == "" {
		return Post{}, fmt.Errorf("%w: title", ErrMissingField)
	}
	if meta.Date == "" {
		return Post{}, fmt.Errorf("%w: date", ErrMissingField)
	}
	if meta.Format == "" {
		return Post{}, fmt.Errorf("%w: format", ErrMissingField)
	}

	date, err := dateutil.CalendarDate(meta.Date.String())
	if err != nil {
		return Post{}, err
	}
	format, err := ParseFormat(meta.Format)
	if err != nil {
		return Post{}, err
	}

	return Post{
		Title:      meta.Title,
		Date:       date,
		URL:        itemURL(PostURLPrefix, slug),
		Slug:       slug,
		ContentDir: dir,
		Format:     format,
	}, nil
}

// DiscoverProjects loads every published project under <root>/projects,
// ordered by slug.
func DiscoverProjects(root string) ([]Project, error) {
	dir := filepath.Join(root, ProjectsDir)
	slugs, err := listItemDirs(dir)
	if err != nil {
		return nil, err
	}

	projects := make([]Project, 0, len(slugs))
	for _, slug := range slugs {
		itemDir := filepath.Join(dir, slug)

		var meta ProjectMetadata
		metaPath, err := metafile.Load(itemDir, MetadataBase, &meta)
		if err != nil {
			return nil, fmt.Errorf("project %q: %w", slug, err)
		}
		if !meta.Published() {
			continue
		}

		project, err := newProject(slug, itemDir, meta)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", metaPath, err)
		}
		projects = append(projects, project)
	}

	return projects, nil
}

func newProject(slug, dir string, meta ProjectMetadata) (Project, error) {
	if meta.Title == "" {
		return Project{}, fmt.Errorf("%w: title", ErrMissingField)
	}
	if meta.Filename == "" {
		return Project{}, fmt.Errorf("%w: filename", ErrMissingField)
	}
	if meta.Format == "" {
		return Project{}, fmt.Errorf("%w: format", ErrMissingField)
	}
	if err := localFile("filename", meta.Filename); err != nil {
		return Project{}, err
	}
	if meta.JSFile != "" {
		if err := localFile("js_file", meta.JSFile); err != nil {
			return Project{}, err
		}
	}

	format, err := ParseFormat(meta.Format)
	if err != nil {
		return Project{}, err
	}

	return Project{
		Title:      meta.Title,
		URL:        itemURL(ProjectURLPrefix, slug),
		Slug:       slug,
		ContentDir: dir,
		Filename:   meta.Filename,
		Format:     format,
		JSFile:     meta.JSFile,
	}, nil
}

// SortPosts orders posts by date, newest first. Posts sharing a date are
// ordered by slug so output is stable across runs.
func SortPosts(posts []Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		if posts[i].Date != posts[j].Date {
			return posts[i].Date > posts[j].Date
		}
		return posts[i].Slug < posts[j].Slug
	})
}

// listItemDirs returns the names of the immediate subdirectories of dir in
// lexical order. Regular files are ignored.
func listItemDirs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading content directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}
