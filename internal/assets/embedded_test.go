package assets

import (
	"errors"
	"html/template"
	"strings"
	"testing"
)

func TestEmbeddedLoader_LoadStyle(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	tests := []struct {
		name        string
		styleName   string
		wantErr     error
		wantContain string
	}{
		{
			name:        "built-in stylesheet",
			styleName:   DefaultStyleName,
			wantContain: ".code",
		},
		{
			name:      "nonexistent style",
			styleName: "nonexistent-style-xyz",
			wantErr:   ErrStyleNotFound,
		},
		{
			name:      "traversal",
			styleName: "../secret",
			wantErr:   ErrInvalidAssetName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := loader.LoadStyle(tt.styleName)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("LoadStyle(%q) error = %v, want %v", tt.styleName, err, tt.wantErr)
			}
			if !strings.Contains(got, tt.wantContain) {
				t.Errorf("LoadStyle(%q) missing %q", tt.styleName, tt.wantContain)
			}
		})
	}
}

// Every page template must exist and parse, and reference the fields the
// composer provides.
func TestEmbeddedLoader_LoadTemplate(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	wantFields := map[string][]string{
		TemplateIndex:         {"{{.Analytics}}", ".Portrait", ".Posts", ".Projects"},
		TemplateBlogIndex:     {"{{.Analytics}}", "range .Posts"},
		TemplatePost:          {"{{.Analytics}}", "{{.Body}}", ".DisplayDate"},
		TemplateProjectsIndex: {"{{.Analytics}}", "range .Projects"},
		TemplateProject:       {"{{.Analytics}}", "{{.Body}}", ".Script"},
		TemplateAnalytics:     {".TrackingID"},
	}

	for _, name := range TemplateNames {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			src, err := loader.LoadTemplate(name)
			if err != nil {
				t.Fatalf("LoadTemplate(%q) error = %v", name, err)
			}
			if _, err := template.New(name).Parse(src); err != nil {
				t.Fatalf("template %q does not parse: %v", name, err)
			}
			for _, field := range wantFields[name] {
				if !strings.Contains(src, field) {
					t.Errorf("template %q missing %q", name, field)
				}
			}
		})
	}
}

func TestEmbeddedLoader_LoadTemplate_NotFound(t *testing.T) {
	t.Parallel()

	_, err := NewEmbeddedLoader().LoadTemplate("cover")
	if !errors.Is(err, ErrTemplateNotFound) {
		t.Errorf("LoadTemplate() error = %v, want ErrTemplateNotFound", err)
	}
}

func TestPackageLoaders(t *testing.T) {
	t.Parallel()

	if _, err := LoadStyle(DefaultStyleName); err != nil {
		t.Errorf("LoadStyle() error = %v", err)
	}
	if _, err := LoadTemplate(TemplatePost); err != nil {
		t.Errorf("LoadTemplate() error = %v", err)
	}
}
