package markdown

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownLanguage indicates a code block tag has no entry in the language map.
var ErrUnknownLanguage = errors.New("language not in language map")

// LanguageMap maps a fenced code block tag to a highlighter grammar name.
// The empty tag is the key used for untagged blocks.
type LanguageMap map[string]string

// DefaultLanguageMap returns the built-in tag table. Grammar names are
// chroma lexer names.
func DefaultLanguageMap() LanguageMap {
	return LanguageMap{
		"":           "plaintext",
		"bash":       "Bash",
		"javascript": "JavaScript",
		"html":       "HTML",
		"json":       "JSON",
		"toml":       "plaintext",
		"rust":       "Rust",
		"css":        "CSS",
		"python":     "Python",
	}
}

// Lookup returns the grammar for tag.
// Returns ErrUnknownLanguage naming the tag if it is not mapped.
func (m LanguageMap) Lookup(tag string) (string, error) {
	grammar, ok := m[tag]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownLanguage, tag)
	}
	return grammar, nil
}

// Tags returns the mapped tags in sorted order.
func (m LanguageMap) Tags() []string {
	tags := make([]string, 0, len(m))
	for tag := range m {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// Merge returns a copy of m with the entries of other added or replaced.
func (m LanguageMap) Merge(other LanguageMap) LanguageMap {
	merged := make(LanguageMap, len(m)+len(other))
	for tag, grammar := range m {
		merged[tag] = grammar
	}
	for tag, grammar := range other {
		merged[tag] = grammar
	}
	return merged
}
