// Package editor runs the log-return-value command against a host that owns
// the document. The host supplies the span to transform and applies the
// replacement; the transformation itself lives in package logwrap.
package editor

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/valpere/logreturn/internal"
	"github.com/valpere/logreturn/internal/logwrap"
)

// CommandName is the name editors bind the command under.
const CommandName = "extension.logReturnValue"

// Notices shown to the user. Neither is an error.
const (
	MsgNoEditor = "No editor open!"
	MsgNoMatch  = "No return statement detected!"
)

// ErrNoMatch is reported by Outcome.Err when nothing could be toggled.
var ErrNoMatch = errors.New("no return statement detected")

// Span is the text a command reads: the selection when there is one,
// otherwise the whole current line.
type Span struct {
	Text     string
	Range    internal.Range
	Selected bool
}

// Indentation returns the leading whitespace of the span.
func (s Span) Indentation() string {
	for i, r := range s.Text {
		if r != ' ' && r != '\t' {
			return s.Text[:i]
		}
	}
	return s.Text
}

// Host is the editor side of the command.
type Host interface {
	// ActiveSpan returns the span under the cursor. ok is false when no
	// editor is active.
	ActiveSpan() (span Span, ok bool)
	// Replace swaps the text inside r for text, all or nothing.
	Replace(r internal.Range, text string) error
	// Info shows an informational message.
	Info(msg string)
}

// Outcome describes what a command run did.
type Outcome struct {
	Kind  logwrap.Kind
	Range internal.Range
	Text  string
}

// Err returns ErrNoMatch when the run left the document alone.
func (o Outcome) Err() error {
	if o.Kind == logwrap.NoMatch {
		return ErrNoMatch
	}
	return nil
}

// LogReturnValue toggles the logging wrapper on the host's active span.
// No-match cases are reported through host.Info and never as errors; the
// returned error is only set when the host fails to apply the replacement.
func LogReturnValue(host Host, log logrus.FieldLogger) (Outcome, error) {
	span, ok := host.ActiveSpan()
	if !ok {
		host.Info(MsgNoEditor)
		return Outcome{Kind: logwrap.NoMatch}, nil
	}

	res := logwrap.Toggle(span.Text, span.Selected)
	log = log.WithFields(logrus.Fields{
		"command":     CommandName,
		"range":       span.Range.String(),
		"selected":    span.Selected,
		"wrapped":     logwrap.IsWrapped(span.Text),
		"indentation": len(span.Indentation()),
		"kind":        res.Kind.String(),
	})

	if res.Kind == logwrap.NoMatch {
		log.Debug("nothing to toggle")
		host.Info(MsgNoMatch)
		return Outcome{Kind: logwrap.NoMatch, Range: span.Range}, nil
	}

	if err := host.Replace(span.Range, res.Text); err != nil {
		return Outcome{}, fmt.Errorf("failed to apply %s: %w", res.Kind, err)
	}
	log.Debug("span replaced")

	return Outcome{Kind: res.Kind, Range: span.Range, Text: res.Text}, nil
}
