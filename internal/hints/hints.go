// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"
)

// ForUnknownLanguage lists the code block tags the site knows about.
func ForUnknownLanguage(known []string) string {
	hint := "add the tag to the language map or fix the fence"
	if len(known) > 0 {
		hint += "; known tags: " + strings.Join(quoteEmpty(known), ", ")
	}
	return format(hint)
}

// ForMetadataNotFound returns hints for a content item without metadata.
func ForMetadataNotFound() string {
	return format("every item directory needs metadata.toml, metadata.yaml or metadata.yml")
}

// ForUnknownFormat returns hints for an unsupported content format.
func ForUnknownFormat() string {
	return format(`format must be "markdown" or "html"`)
}

// ForInvalidDate returns hints for a post date that is not a calendar date.
func ForInvalidDate() string {
	return format("use an ISO-8601 date such as 2022-03-01 or 2022-03-01T09:00:00Z")
}

// ForConfigNotFound returns hints for a missing site config file.
// searchedPaths are the locations that were tried.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "create config.toml at the content root with portrait_path and analytics_tracking_id"
	if len(searchedPaths) > 0 {
		hint += "; looked for " + strings.Join(searchedPaths, ", ")
	}
	return format(hint)
}

// ForOutputDirectory returns hints for output directory errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable; the output and content directories must not overlap")
}

// ForUnknownTheme returns hints for an unknown code highlighting theme.
func ForUnknownTheme(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// quoteEmpty renders the empty tag visibly.
func quoteEmpty(tags []string) []string {
	out := make([]string, len(tags))
	for i, tag := range tags {
		if tag == "" {
			tag = `""`
		}
		out[i] = tag
	}
	return out
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
