package markdown

import (
	"errors"
	"fmt"
	"io"

	"github.com/yuin/goldmark/util"
)

// ErrCodeBlockState indicates a code block event arrived in the wrong state,
// such as an end without a start or a start inside an open block.
var ErrCodeBlockState = errors.New("code block event out of order")

// Code container markup wrapped around every highlighted block.
const (
	CodeOpenTag  = `<div class="code">`
	CodeCloseTag = `</div>`
)

// EventKind identifies the kind of an Event.
type EventKind int

const (
	// EventText carries text to be escaped on output.
	EventText EventKind = iota
	// EventHTML carries raw HTML written as is.
	EventHTML
	// EventCodeStart opens a code block tagged with Lang.
	EventCodeStart
	// EventCodeEnd closes the open code block.
	EventCodeEnd
)

// Event is one element of a rendered document's event sequence.
type Event struct {
	Kind EventKind
	Text string
	Lang string
}

// State is the renderer's code block state. The zero value is Normal.
// Buffer is non-empty only while InCodeBlock is true.
type State struct {
	InCodeBlock bool
	Syntax      string
	Buffer      string
}

// Step consumes one event and returns the next state and the event to emit.
//
// In Normal, every event except EventCodeStart passes through. EventCodeStart
// resolves the tag through langs and emits CodeOpenTag. In InCodeBlock, text
// is appended to the buffer and an empty text event is emitted in its place;
// EventCodeEnd highlights the buffer and emits it, followed by CodeCloseTag,
// as one HTML event.
func Step(st State, ev Event, langs LanguageMap, hl Highlighter) (State, Event, error) {
	switch ev.Kind {
	case EventCodeStart:
		if st.InCodeBlock {
			return st, Event{}, fmt.Errorf("%w: code block opened inside code block", ErrCodeBlockState)
		}
		syntax, err := langs.Lookup(ev.Lang)
		if err != nil {
			return st, Event{}, err
		}
		return State{InCodeBlock: true, Syntax: syntax}, Event{Kind: EventHTML, Text: CodeOpenTag}, nil

	case EventCodeEnd:
		if !st.InCodeBlock {
			return st, Event{}, fmt.Errorf("%w: code block closed without being opened", ErrCodeBlockState)
		}
		highlighted, err := hl.Highlight(st.Buffer, st.Syntax)
		if err != nil {
			return st, Event{}, err
		}
		return State{}, Event{Kind: EventHTML, Text: highlighted + CodeCloseTag}, nil

	case EventText:
		if st.InCodeBlock {
			st.Buffer += ev.Text
			return st, Event{Kind: EventText}, nil
		}
	}

	return st, ev, nil
}

// transform maps a whole event sequence through Step, preserving order.
// It is the batch form of what codeBlockRenderer.feed does per node.
// A sequence that ends inside a code block is an error.
func transform(events []Event, langs LanguageMap, hl Highlighter) ([]Event, error) {
	var st State
	out := make([]Event, 0, len(events))
	for _, ev := range events {
		next, emitted, err := Step(st, ev, langs, hl)
		if err != nil {
			return nil, err
		}
		st = next
		out = append(out, emitted)
	}
	if st.InCodeBlock {
		return nil, fmt.Errorf("%w: unterminated code block", ErrCodeBlockState)
	}
	return out, nil
}

// writeEvents serializes events in order. Text is HTML-escaped, HTML is
// written verbatim. Code block markers are never serialized; transform the
// sequence first.
func writeEvents(w io.Writer, events []Event) error {
	for _, ev := range events {
		if err := writeEvent(w, ev); err != nil {
			return err
		}
	}
	return nil
}

func writeEvent(w io.Writer, ev Event) error {
	var err error
	switch ev.Kind {
	case EventText:
		if ev.Text != "" {
			_, err = w.Write(util.EscapeHTML([]byte(ev.Text)))
		}
	case EventHTML:
		_, err = io.WriteString(w, ev.Text)
	default:
		err = fmt.Errorf("%w: untransformed code block event", ErrCodeBlockState)
	}
	return err
}
