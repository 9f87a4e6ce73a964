// Package buffer holds a text document in memory and edits it by
// line/character ranges, the way an editor buffer does. Lines end at "\n";
// a "\r" before it belongs to the terminator, not to the line.
package buffer

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"

	"github.com/valpere/logreturn/internal"
)

var (
	// ErrOutOfRange is returned for positions outside the document.
	ErrOutOfRange = errors.New("position out of range")
	// ErrInvalidEncoding is returned by Load for files that are not UTF-8.
	ErrInvalidEncoding = errors.New("file is not valid UTF-8")
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Document is an editable text buffer, optionally backed by a file.
type Document struct {
	path    string
	mode    os.FileMode
	bom     bool
	content string
	changed bool
}

// New returns an unsaved document holding content.
func New(content string) *Document {
	return &Document{content: content, mode: 0644}
}

// Load reads path into a document. A leading UTF-8 byte order mark is
// removed from the content and written back by Save.
func Load(path string) (*Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	doc := &Document{path: path, mode: info.Mode().Perm()}
	if bytes.HasPrefix(data, utf8BOM) {
		data, err = unicode.UTF8BOM.NewDecoder().Bytes(data)
		if err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", path, err)
		}
		doc.bom = true
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%s: %w", path, ErrInvalidEncoding)
	}
	doc.content = string(data)
	return doc, nil
}

// Path returns the backing file, or "" for documents made with New.
func (d *Document) Path() string { return d.path }

// Content returns the current text without any byte order mark.
func (d *Document) Content() string { return d.content }

// Changed reports whether Replace has modified the content.
func (d *Document) Changed() bool { return d.changed }

// LineCount returns the number of lines. A trailing newline starts a final
// empty line.
func (d *Document) LineCount() int {
	return strings.Count(d.content, "\n") + 1
}

// line returns the byte offset where line starts and the line text without
// its terminator.
func (d *Document) line(n int) (int, string, error) {
	if n < 0 {
		return 0, "", fmt.Errorf("line %d: %w", n+1, ErrOutOfRange)
	}
	start := 0
	for i := 0; i < n; i++ {
		idx := strings.IndexByte(d.content[start:], '\n')
		if idx < 0 {
			return 0, "", fmt.Errorf("line %d: %w", n+1, ErrOutOfRange)
		}
		start += idx + 1
	}
	text := d.content[start:]
	if idx := strings.IndexByte(text, '\n'); idx >= 0 {
		text = text[:idx]
	}
	return start, strings.TrimSuffix(text, "\r"), nil
}

// LineRange returns the range covering line n, excluding its terminator.
func (d *Document) LineRange(n int) (internal.Range, error) {
	_, text, err := d.line(n)
	if err != nil {
		return internal.Range{}, err
	}
	return internal.Range{
		Start: internal.Position{Line: n},
		End:   internal.Position{Line: n, Character: utf8.RuneCountInString(text)},
	}, nil
}

// Offset converts pos to a byte offset into Content. The position just past
// the last character of a line is valid.
func (d *Document) Offset(pos internal.Position) (int, error) {
	start, text, err := d.line(pos.Line)
	if err != nil {
		return 0, err
	}
	if pos.Character < 0 {
		return 0, fmt.Errorf("%s: %w", pos, ErrOutOfRange)
	}
	n := 0
	for i := range text {
		if n == pos.Character {
			return start + i, nil
		}
		n++
	}
	if n == pos.Character {
		return start + len(text), nil
	}
	return 0, fmt.Errorf("%s: %w", pos, ErrOutOfRange)
}

func (d *Document) offsets(r internal.Range) (int, int, error) {
	if r.End.Before(r.Start) {
		return 0, 0, fmt.Errorf("range %s ends before it starts: %w", r, ErrOutOfRange)
	}
	start, err := d.Offset(r.Start)
	if err != nil {
		return 0, 0, err
	}
	end, err := d.Offset(r.End)
	if err != nil {
		return 0, 0, err
	}
	return start, end, nil
}

// Text returns the content inside r.
func (d *Document) Text(r internal.Range) (string, error) {
	start, end, err := d.offsets(r)
	if err != nil {
		return "", err
	}
	return d.content[start:end], nil
}

// Replace swaps the content inside r for text. The document is left
// untouched when r is invalid.
func (d *Document) Replace(r internal.Range, text string) error {
	start, end, err := d.offsets(r)
	if err != nil {
		return err
	}
	if d.content[start:end] == text {
		return nil
	}
	d.content = d.content[:start] + text + d.content[end:]
	d.changed = true
	return nil
}

// Bytes returns the encoded document, restoring a byte order mark that was
// present when the file was loaded.
func (d *Document) Bytes() ([]byte, error) {
	if !d.bom {
		return []byte(d.content), nil
	}
	out, err := unicode.UTF8BOM.NewEncoder().Bytes([]byte(d.content))
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	return out, nil
}

// Save writes the document back to its file with the original permissions.
func (d *Document) Save() error {
	if d.path == "" {
		return errors.New("document has no backing file")
	}
	out, err := d.Bytes()
	if err != nil {
		return err
	}
	if err := os.WriteFile(d.path, out, d.mode); err != nil {
		return fmt.Errorf("failed to write %s: %w", d.path, err)
	}
	d.changed = false
	return nil
}
