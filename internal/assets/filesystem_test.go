package assets

import (
	"errors"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewFilesystemLoader(t *testing.T) {
	t.Parallel()

	theme := setupAssetDir(t, map[string]string{"styles/styles.css": "body{}"})
	file := filepath.Join(theme, "styles", "styles.css")

	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{"theme directory", theme, nil},
		{"empty directory", t.TempDir(), nil},
		{"empty path", "", ErrInvalidBasePath},
		{"missing directory", filepath.Join(theme, "missing"), ErrInvalidBasePath},
		{"stylesheet instead of directory", file, ErrInvalidBasePath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			loader, err := NewFilesystemLoader(tt.path)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("NewFilesystemLoader(%q) error = %v, want %v", tt.path, err, tt.wantErr)
			}
			if tt.wantErr == nil && loader == nil {
				t.Fatal("NewFilesystemLoader() returned nil loader")
			}
		})
	}
}

// A post.html override from the asset path is parsed and executed with the
// same fields the composer passes to the built-in template.
func TestFilesystemLoader_PostOverrideExecutes(t *testing.T) {
	t.Parallel()

	theme := setupAssetDir(t, map[string]string{
		"templates/post.html": `<main data-date="{{.Date}}"><h1>{{.Title}}</h1>` +
			`<small>{{.DisplayDate}}</small>{{.Body}}</main>{{.Analytics}}`,
	})
	loader, err := NewFilesystemLoader(theme)
	if err != nil {
		t.Fatalf("NewFilesystemLoader() error = %v", err)
	}

	src, err := loader.LoadTemplate(TemplatePost)
	if err != nil {
		t.Fatalf("LoadTemplate(post) error = %v", err)
	}
	tmpl, err := template.New(TemplatePost).Option("missingkey=error").Parse(src)
	if err != nil {
		t.Fatalf("override does not parse: %v", err)
	}

	var out strings.Builder
	err = tmpl.Execute(&out, map[string]any{
		"Title":       "Fish & Chips",
		"Date":        "2022-03-01",
		"DisplayDate": "March 1, 2022",
		"Body":        template.HTML(`<div class="code"><pre>x</pre></div>`),
		"Analytics":   template.HTML(`<script>gtag()</script>`),
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	got := out.String()
	for _, want := range []string{
		`data-date="2022-03-01"`,
		"<h1>Fish &amp; Chips</h1>",
		"<small>March 1, 2022</small>",
		`<div class="code"><pre>x</pre></div>`,
		`<script>gtag()</script>`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("rendered override missing %q:\n%s", want, got)
		}
	}
}

func TestFilesystemLoader_Stylesheet(t *testing.T) {
	t.Parallel()

	css := ".code pre { overflow-x: auto; }"
	loader, err := NewFilesystemLoader(setupAssetDir(t, map[string]string{"styles/styles.css": css}))
	if err != nil {
		t.Fatalf("NewFilesystemLoader() error = %v", err)
	}

	got, err := loader.LoadStyle(DefaultStyleName)
	if err != nil {
		t.Fatalf("LoadStyle() error = %v", err)
	}
	if got != css {
		t.Errorf("LoadStyle() = %q, want %q", got, css)
	}
}

// A partial theme reports every page it lacks as not found, which is what
// lets the resolver fill the gaps from the built-in theme.
func TestFilesystemLoader_PartialTheme(t *testing.T) {
	t.Parallel()

	loader, err := NewFilesystemLoader(setupAssetDir(t, map[string]string{
		"templates/post.html": "{{.Body}}",
	}))
	if err != nil {
		t.Fatalf("NewFilesystemLoader() error = %v", err)
	}

	for _, name := range TemplateNames {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := loader.LoadTemplate(name)
			if name == TemplatePost {
				if err != nil {
					t.Errorf("LoadTemplate(%q) error = %v", name, err)
				}
				return
			}
			if !errors.Is(err, ErrTemplateNotFound) {
				t.Errorf("LoadTemplate(%q) error = %v, want ErrTemplateNotFound", name, err)
			}
		})
	}

	if _, err := loader.LoadStyle(DefaultStyleName); !errors.Is(err, ErrStyleNotFound) {
		t.Errorf("LoadStyle() error = %v, want ErrStyleNotFound", err)
	}
}

func TestFilesystemLoader_InvalidNames(t *testing.T) {
	t.Parallel()

	loader, err := NewFilesystemLoader(setupAssetDir(t, map[string]string{
		"templates/post.html": "{{.Body}}",
	}))
	if err != nil {
		t.Fatalf("NewFilesystemLoader() error = %v", err)
	}

	for _, name := range []string{"", "../post", `..\post`, "post.html", "Post"} {
		if _, err := loader.LoadTemplate(name); !errors.Is(err, ErrInvalidAssetName) {
			t.Errorf("LoadTemplate(%q) error = %v, want ErrInvalidAssetName", name, err)
		}
		if _, err := loader.LoadStyle(name); !errors.Is(err, ErrInvalidAssetName) {
			t.Errorf("LoadStyle(%q) error = %v, want ErrInvalidAssetName", name, err)
		}
	}
}

func TestFilesystemLoader_SymlinkOutsideTheme(t *testing.T) {
	t.Parallel()

	theme := setupAssetDir(t, map[string]string{"styles/styles.css": "body{}"})
	outside := setupAssetDir(t, map[string]string{"post.html": "<p>not part of the theme</p>"})

	if err := os.MkdirAll(filepath.Join(theme, "templates"), 0o755); err != nil {
		t.Fatal(err)
	}
	link := filepath.Join(theme, "templates", "post.html")
	if err := os.Symlink(filepath.Join(outside, "post.html"), link); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	loader, err := NewFilesystemLoader(theme)
	if err != nil {
		t.Fatalf("NewFilesystemLoader() error = %v", err)
	}
	if _, err := loader.LoadTemplate(TemplatePost); !errors.Is(err, ErrPathTraversal) {
		t.Errorf("LoadTemplate(post) error = %v, want ErrPathTraversal", err)
	}
}
