package fileutil_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alnah/go-md2site/internal/fileutil"
)

// ---------------------------------------------------------------------------
// TestWriteFile - Atomic writes into the output tree
// ---------------------------------------------------------------------------

func TestWriteFile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		rel     string
		content string
	}{
		{"top level", "index.html", "<html></html>"},
		{"nested", filepath.Join("blog", "hello", "index.html"), "<p>hi</p>"},
		{"empty content", "empty.txt", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			path := filepath.Join(dir, tt.rel)
			if err := fileutil.WriteFile(path, []byte(tt.content)); err != nil {
				t.Fatalf("WriteFile() error = %v", err)
			}

			got, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("ReadFile() error = %v", err)
			}
			if string(got) != tt.content {
				t.Errorf("content = %q, want %q", got, tt.content)
			}

			info, err := os.Stat(path)
			if err != nil {
				t.Fatal(err)
			}
			if info.Mode().Perm() != fileutil.FilePerm {
				t.Errorf("perm = %v, want %v", info.Mode().Perm(), fileutil.FilePerm)
			}

			entries, err := os.ReadDir(filepath.Dir(path))
			if err != nil {
				t.Fatal(err)
			}
			if len(entries) != 1 {
				t.Errorf("directory holds %d entries, want 1 (temp file left behind?)", len(entries))
			}
		})
	}
}

func TestWriteFile_Overwrites(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "index.html")
	if err := fileutil.WriteFile(path, []byte("old content that is longer")); err != nil {
		t.Fatal(err)
	}
	if err := fileutil.WriteFile(path, []byte("new")); err != nil {
		t.Fatal(err)
	}
	got, _ := os.ReadFile(path)
	if string(got) != "new" {
		t.Errorf("content = %q, want %q", got, "new")
	}
}

func TestWriteFile_EmptyPath(t *testing.T) {
	t.Parallel()

	if err := fileutil.WriteFile("", nil); !errors.Is(err, fileutil.ErrEmptyPath) {
		t.Errorf("WriteFile(\"\") error = %v, want ErrEmptyPath", err)
	}
}

// ---------------------------------------------------------------------------
// TestCopyFile - Asset copying
// ---------------------------------------------------------------------------

func TestCopyFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := filepath.Join(dir, "app.js")
	if err := os.WriteFile(src, []byte("console.log(1)"), 0o600); err != nil {
		t.Fatal(err)
	}

	dst := filepath.Join(dir, "out", "projects", "demo", "app.js")
	if err := fileutil.CopyFile(src, dst); err != nil {
		t.Fatalf("CopyFile() error = %v", err)
	}

	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "console.log(1)" {
		t.Errorf("content = %q", got)
	}
}

func TestCopyFile_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	tests := []struct {
		name    string
		src     string
		dst     string
		wantErr error
	}{
		{"missing source", filepath.Join(dir, "missing.jpg"), filepath.Join(dir, "x"), os.ErrNotExist},
		{"directory source", dir, filepath.Join(dir, "y"), fileutil.ErrNotRegular},
		{"empty source", "", filepath.Join(dir, "z"), fileutil.ErrEmptyPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if err := fileutil.CopyFile(tt.src, tt.dst); !errors.Is(err, tt.wantErr) {
				t.Errorf("CopyFile() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestResetDir - Output directory regeneration
// ---------------------------------------------------------------------------

func TestResetDir(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "dist")
	stale := filepath.Join(out, "blog", "old", "index.html")
	if err := os.MkdirAll(filepath.Dir(stale), 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(stale, []byte("stale"), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := fileutil.ResetDir(out); err != nil {
		t.Fatalf("ResetDir() error = %v", err)
	}

	entries, err := os.ReadDir(out)
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("directory holds %d entries after reset, want 0", len(entries))
	}
}

func TestResetDir_CreatesMissing(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "a", "b")
	if err := fileutil.ResetDir(out); err != nil {
		t.Fatalf("ResetDir() error = %v", err)
	}
	if info, err := os.Stat(out); err != nil || !info.IsDir() {
		t.Errorf("Stat() = %v, %v; want directory", info, err)
	}
}

func TestResetDir_Refuses(t *testing.T) {
	t.Parallel()

	for _, dir := range []string{"", ".", string(filepath.Separator)} {
		if err := fileutil.ResetDir(dir); err == nil {
			t.Errorf("ResetDir(%q) error = nil, want refusal", dir)
		}
	}
}

// ---------------------------------------------------------------------------
// TestFileExists / TestIsWithin
// ---------------------------------------------------------------------------

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "f.txt")
	if err := os.WriteFile(file, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"regular file", file, true},
		{"directory", dir, false},
		{"missing", filepath.Join(dir, "missing"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := fileutil.FileExists(tt.path); got != tt.want {
				t.Errorf("FileExists(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestIsWithin(t *testing.T) {
	t.Parallel()

	base := filepath.Join(string(filepath.Separator), "site")

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"same", base, true},
		{"child", filepath.Join(base, "dist"), true},
		{"sibling prefix", base + "-dist", false},
		{"parent", string(filepath.Separator), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := fileutil.IsWithin(tt.path, base); got != tt.want {
				t.Errorf("IsWithin(%q, %q) = %v, want %v", tt.path, base, got, tt.want)
			}
		})
	}
}
