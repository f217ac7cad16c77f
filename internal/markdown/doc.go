// Package markdown renders Markdown documents to HTML fragments with
// syntax-highlighted code blocks.
//
// Goldmark parses the document and walks the resulting tree. Every code
// block on that walk is turned into a short event sequence:
//
//	EventCodeStart{Lang} -> EventText(line)... -> EventCodeEnd
//
// and each event is passed through Step, a transformation over an explicit
// State value (Normal or InCodeBlock). Step diverts code text into the state
// buffer, resolves the language tag through a LanguageMap, and emits the
// highlighted block as a single raw HTML event when the block ends. All other
// nodes are serialized by goldmark's default HTML renderer, unchanged.
//
// A tag missing from the LanguageMap is an error (ErrUnknownLanguage). There
// is no fallback grammar.
package markdown
