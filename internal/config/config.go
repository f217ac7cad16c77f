package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2site/internal/dateutil"
	"github.com/alnah/go-md2site/internal/metafile"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
	ErrFieldTooLong   = errors.New("field exceeds maximum length")
	ErrMissingField   = errors.New("missing required config field")
	ErrInvalidField   = errors.New("invalid config field")
)

// ConfigBase is the config file name at the content root, without extension.
const ConfigBase = "config"

// Defaults for optional fields.
const (
	DefaultCodeTheme  = "monokai"
	DefaultDateFormat = "iso"
)

// Field length limits.
const (
	MaxPathLength       = 1024
	MaxTrackingIDLength = 64 // "G-XXXXXXXXXX", "UA-000000-1"
	MaxThemeLength      = 50 // chroma style names
	MaxDateFormatLength = dateutil.MaxDateFormatLength
)

// SiteConfig holds the site-wide settings read from the content root.
type SiteConfig struct {
	PortraitPath        string `yaml:"portrait_path" toml:"portrait_path"`
	AnalyticsTrackingID string `yaml:"analytics_tracking_id" toml:"analytics_tracking_id"`
	CodeTheme           string `yaml:"code_theme" toml:"code_theme"`   // Optional, chroma style name
	DateFormat          string `yaml:"date_format" toml:"date_format"` // Optional, display only
}

// Validate checks required fields, lengths, and path safety.
func (c *SiteConfig) Validate() error {
	if c.PortraitPath == "" {
		return fmt.Errorf("%w: portrait_path", ErrMissingField)
	}
	if c.AnalyticsTrackingID == "" {
		return fmt.Errorf("%w: analytics_tracking_id", ErrMissingField)
	}

	if err := validateFieldLength("portrait_path", c.PortraitPath, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("analytics_tracking_id", c.AnalyticsTrackingID, MaxTrackingIDLength); err != nil {
		return err
	}
	if err := validateFieldLength("code_theme", c.CodeTheme, MaxThemeLength); err != nil {
		return err
	}
	if err := validateFieldLength("date_format", c.DateFormat, MaxDateFormatLength); err != nil {
		return err
	}

	// The portrait is copied from inside the content root only.
	if !filepath.IsLocal(filepath.FromSlash(c.PortraitPath)) {
		return fmt.Errorf("%w: portrait_path %q must be a relative path inside the content directory", ErrInvalidField, c.PortraitPath)
	}
	if strings.ContainsAny(c.AnalyticsTrackingID, "'\"<> ") {
		return fmt.Errorf("%w: analytics_tracking_id %q", ErrInvalidField, c.AnalyticsTrackingID)
	}
	if _, err := dateutil.ResolveFormat(c.DateFormat); err != nil {
		return fmt.Errorf("%w: date_format: %w", ErrInvalidField, err)
	}

	return nil
}

// applyDefaults fills optional fields left empty.
func (c *SiteConfig) applyDefaults() {
	if c.CodeTheme == "" {
		c.CodeTheme = DefaultCodeTheme
	}
	if c.DateFormat == "" {
		c.DateFormat = DefaultDateFormat
	}
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadSiteConfig reads config.toml, config.yaml or config.yml from the
// content root. Unknown fields are rejected.
// Returns error if the file is not found (no silent fallback).
func LoadSiteConfig(contentRoot string) (*SiteConfig, error) {
	var cfg SiteConfig
	if _, err := metafile.LoadStrict(contentRoot, ConfigBase, &cfg); err != nil {
		if errors.Is(err, metafile.ErrNotFound) {
			return nil, fmt.Errorf("%w: %w", ErrConfigNotFound, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrConfigParse, err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
