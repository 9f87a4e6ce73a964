package editor

import (
	"fmt"
	"io"
	"strings"

	"github.com/valpere/logreturn/internal"
	"github.com/valpere/logreturn/internal/buffer"
)

// FileHost serves a document loaded from disk, with a cursor line and an
// optional selection as given on the command line.
type FileHost struct {
	doc     *buffer.Document
	span    Span
	notices io.Writer
}

// NewFileHost resolves the active span of doc. A non-empty selection wins
// over the cursor line. A nil doc yields a host with no active editor.
func NewFileHost(doc *buffer.Document, line int, selection internal.Range, notices io.Writer) (*FileHost, error) {
	h := &FileHost{doc: doc, notices: notices}
	if doc == nil {
		return h, nil
	}

	if !selection.IsEmpty() {
		text, err := doc.Text(selection)
		if err != nil {
			return nil, fmt.Errorf("invalid selection %s: %w", selection, err)
		}
		h.span = Span{Text: text, Range: selection, Selected: text != ""}
		return h, nil
	}

	r, err := doc.LineRange(line)
	if err != nil {
		return nil, fmt.Errorf("invalid line: %w", err)
	}
	text, err := doc.Text(r)
	if err != nil {
		return nil, err
	}
	h.span = Span{Text: text, Range: r}
	return h, nil
}

func (h *FileHost) ActiveSpan() (Span, bool) {
	if h.doc == nil {
		return Span{}, false
	}
	return h.span, true
}

func (h *FileHost) Replace(r internal.Range, text string) error {
	return h.doc.Replace(r, text)
}

func (h *FileHost) Info(msg string) {
	fmt.Fprintln(h.notices, msg)
}

// StreamHost treats a whole piped input as the span, the way editors filter
// a selection through an external command. One trailing line terminator is
// kept out of the span and restored on output.
type StreamHost struct {
	doc      *buffer.Document
	tail     string
	lineMode bool
	notices  io.Writer
}

// NewStreamHost wraps input. In line mode the input is the current line
// rather than an explicit selection, so bare expressions are not wrapped.
func NewStreamHost(input string, lineMode bool, notices io.Writer) *StreamHost {
	body, tail := input, ""
	switch {
	case strings.HasSuffix(body, "\r\n"):
		body, tail = body[:len(body)-2], "\r\n"
	case strings.HasSuffix(body, "\n"):
		body, tail = body[:len(body)-1], "\n"
	}
	return &StreamHost{doc: buffer.New(body), tail: tail, lineMode: lineMode, notices: notices}
}

func (h *StreamHost) ActiveSpan() (Span, bool) {
	last := h.doc.LineCount() - 1
	end, err := h.doc.LineRange(last)
	if err != nil {
		return Span{}, false
	}
	r := internal.Range{End: end.End}
	text, err := h.doc.Text(r)
	if err != nil {
		return Span{}, false
	}
	return Span{Text: text, Range: r, Selected: !h.lineMode && text != ""}, true
}

func (h *StreamHost) Replace(r internal.Range, text string) error {
	return h.doc.Replace(r, text)
}

func (h *StreamHost) Info(msg string) {
	fmt.Fprintln(h.notices, msg)
}

// Output returns the span after the command ran, or the unchanged input
// when nothing was toggled.
func (h *StreamHost) Output() string {
	return h.doc.Content() + h.tail
}
