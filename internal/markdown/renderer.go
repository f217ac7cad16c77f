package markdown

import (
	"bytes"
	"context"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

// codeBlockPriority wins over goldmark's HTML renderer (priority 1000).
const codeBlockPriority = 100

// Renderer converts Markdown to an HTML fragment.
// A Renderer is safe for concurrent use: each Render call gets its own
// goldmark engine and code block state.
type Renderer struct {
	langs LanguageMap
	hl    Highlighter
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithLanguageMap replaces the language map.
func WithLanguageMap(m LanguageMap) Option {
	return func(r *Renderer) {
		r.langs = m
	}
}

// WithHighlighter replaces the highlighting engine.
func WithHighlighter(h Highlighter) Option {
	return func(r *Renderer) {
		r.hl = h
	}
}

// NewRenderer creates a Renderer with DefaultLanguageMap and a
// ChromaHighlighter using DefaultTheme unless overridden by options.
func NewRenderer(opts ...Option) (*Renderer, error) {
	r := &Renderer{langs: DefaultLanguageMap()}
	for _, opt := range opts {
		opt(r)
	}
	if r.hl == nil {
		hl, err := NewChromaHighlighter(DefaultTheme)
		if err != nil {
			return nil, err
		}
		r.hl = hl
	}
	return r, nil
}

// Render converts markdown to an HTML fragment (no html or body wrapper).
func (r *Renderer) Render(ctx context.Context, markdown string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	blocks := &codeBlockRenderer{langs: r.langs, hl: r.hl}
	md := newEngine(renderer.WithNodeRenderers(util.Prioritized(blocks, codeBlockPriority)))

	var buf bytes.Buffer
	if err := md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return buf.String(), nil
}

// newEngine builds the goldmark engine shared by Render and its tests.
// Raw HTML passes through; GFM and heading IDs are enabled.
func newEngine(extra ...renderer.Option) goldmark.Markdown {
	rendererOptions := []renderer.Option{html.WithUnsafe()}
	rendererOptions = append(rendererOptions, extra...)

	return goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(rendererOptions...),
	)
}

// codeBlockRenderer turns goldmark's code block nodes into events and feeds
// them through Step. It holds the state for one document.
type codeBlockRenderer struct {
	langs LanguageMap
	hl    Highlighter
	state State
}

func (r *codeBlockRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindFencedCodeBlock, r.renderFencedCodeBlock)
	reg.Register(ast.KindCodeBlock, r.renderCodeBlock)
}

func (r *codeBlockRenderer) renderFencedCodeBlock(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*ast.FencedCodeBlock)
	return r.render(w, source, n, string(n.Language(source)), entering)
}

// renderCodeBlock handles indented blocks, which carry no tag.
func (r *codeBlockRenderer) renderCodeBlock(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	return r.render(w, source, node, "", entering)
}

func (r *codeBlockRenderer) render(w util.BufWriter, source []byte, node ast.Node, lang string, entering bool) (ast.WalkStatus, error) {
	if !entering {
		if err := r.feed(w, Event{Kind: EventCodeEnd}); err != nil {
			return ast.WalkStop, err
		}
		return ast.WalkContinue, nil
	}

	if err := r.feed(w, Event{Kind: EventCodeStart, Lang: lang}); err != nil {
		return ast.WalkStop, err
	}
	lines := node.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		if err := r.feed(w, Event{Kind: EventText, Text: string(line.Value(source))}); err != nil {
			return ast.WalkStop, err
		}
	}
	return ast.WalkContinue, nil
}

func (r *codeBlockRenderer) feed(w util.BufWriter, ev Event) error {
	next, out, err := Step(r.state, ev, r.langs, r.hl)
	if err != nil {
		return err
	}
	r.state = next
	return writeEvent(w, out)
}
