package markdown

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// DefaultTheme is the chroma style used when none is configured.
const DefaultTheme = "monokai"

// Sentinel errors for highlighting.
var (
	ErrUnknownTheme   = errors.New("unknown highlight theme")
	ErrUnknownGrammar = errors.New("unknown highlight grammar")
	ErrHighlight      = errors.New("highlighting failed")
)

// Highlighter turns raw code into highlighted HTML for a named grammar.
type Highlighter interface {
	Highlight(code, grammar string) (string, error)
}

// ChromaHighlighter highlights code with chroma, emitting inline styles.
type ChromaHighlighter struct {
	style     *chroma.Style
	formatter *chromahtml.Formatter
}

// NewChromaHighlighter creates a highlighter for the named chroma style.
// An empty theme selects DefaultTheme.
// Returns ErrUnknownTheme if the style is not registered.
func NewChromaHighlighter(theme string) (*ChromaHighlighter, error) {
	if theme == "" {
		theme = DefaultTheme
	}
	style, ok := styles.Registry[theme]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTheme, theme)
	}
	return &ChromaHighlighter{
		style:     style,
		formatter: chromahtml.New(chromahtml.TabWidth(4)),
	}, nil
}

// Highlight tokenises code with the lexer named by grammar.
// Returns ErrUnknownGrammar if chroma has no such lexer.
func (h *ChromaHighlighter) Highlight(code, grammar string) (string, error) {
	lexer := lexers.Get(grammar)
	if lexer == nil {
		return "", fmt.Errorf("%w: %q", ErrUnknownGrammar, grammar)
	}

	iterator, err := chroma.Coalesce(lexer).Tokenise(nil, code)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrHighlight, err)
	}

	var sb strings.Builder
	if err := h.formatter.Format(&sb, h.style, iterator); err != nil {
		return "", fmt.Errorf("%w: %v", ErrHighlight, err)
	}
	return sb.String(), nil
}

// Themes returns the names of all registered chroma styles.
func Themes() []string {
	return styles.Names()
}

// Compile-time interface check.
var _ Highlighter = (*ChromaHighlighter)(nil)
