// Package metafile decodes small structured metadata files (TOML or YAML)
// and isolates the parsing libraries from callers.
package metafile

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-yaml"
)

// MaxInputSize limits metadata input to prevent memory exhaustion (default 1MB).
var MaxInputSize = 1 << 20

var (
	ErrNilData           = errors.New("metafile: nil or empty data")
	ErrNilDestination    = errors.New("metafile: nil destination pointer")
	ErrInputTooLarge     = errors.New("metafile: input exceeds maximum size")
	ErrUnsupportedFormat = errors.New("metafile: unsupported file extension")
	ErrNotFound          = errors.New("metadata file not found")
	ErrParse             = errors.New("failed to parse metadata")
)

// Extensions lists the accepted file extensions in lookup order.
var Extensions = []string{".toml", ".yaml", ".yml"}

func validateInput(data []byte, v any) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return ErrNilData
	}
	if len(data) > MaxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	}
	if v == nil {
		return ErrNilDestination
	}
	return nil
}

// Unmarshal decodes data according to ext (".toml", ".yaml" or ".yml").
// Unknown keys are ignored.
func Unmarshal(ext string, data []byte, v any) error {
	return unmarshal(ext, data, v, false)
}

// UnmarshalStrict is Unmarshal but rejects unknown keys.
func UnmarshalStrict(ext string, data []byte, v any) error {
	return unmarshal(ext, data, v, true)
}

func unmarshal(ext string, data []byte, v any, strict bool) error {
	if err := validateInput(data, v); err != nil {
		return err
	}

	switch strings.ToLower(ext) {
	case ".toml":
		md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(v)
		if err != nil {
			return fmt.Errorf("metafile: %w", err)
		}
		if undecoded := md.Undecoded(); strict && len(undecoded) > 0 {
			return fmt.Errorf("metafile: unknown field %q", undecoded[0].String())
		}
	case ".yaml", ".yml":
		var opts []yaml.DecodeOption
		if strict {
			opts = append(opts, yaml.Strict())
		}
		if err := yaml.UnmarshalWithOptions(data, v, opts...); err != nil {
			return fmt.Errorf("metafile: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return nil
}

// Find returns the path of base+ext inside dir for the first extension in
// Extensions that exists as a regular file.
// Returns ErrNotFound listing the tried paths otherwise.
func Find(dir, base string) (string, error) {
	tried := make([]string, 0, len(Extensions))
	for _, ext := range Extensions {
		path := filepath.Join(dir, base+ext)
		info, err := os.Stat(path)
		if err == nil && !info.IsDir() {
			return path, nil
		}
		tried = append(tried, path)
	}
	return "", fmt.Errorf("%w: tried %s", ErrNotFound, strings.Join(tried, ", "))
}

// Load finds base in dir, reads it, and decodes it into v.
// Returns the decoded file's path. Parse failures wrap ErrParse.
func Load(dir, base string, v any) (string, error) {
	return load(dir, base, v, false)
}

// LoadStrict is Load but rejects unknown keys.
func LoadStrict(dir, base string, v any) (string, error) {
	return load(dir, base, v, true)
}

func load(dir, base string, v any, strict bool) (string, error) {
	path, err := Find(dir, base)
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(path) // #nosec G304 -- path built from content root
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}

	if err := unmarshal(filepath.Ext(path), data, v, strict); err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrParse, path, err)
	}
	return path, nil
}
