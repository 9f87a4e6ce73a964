// Package logwrap toggles a debug-logging wrapper around a JavaScript
// expression. Wrapping turns `return x;` into
// `return (a => console.log(a) || a)(x);`, which logs the value and then
// returns it unchanged. Reverting strips the wrapper again.
//
// Matching is purely textual: two anchored regular expressions over the
// whole span. Semicolons inside string literals, or marker text inside a
// literal, are not understood.
package logwrap

import (
	"regexp"
)

const (
	// MarkerOpen is the text placed before a wrapped expression.
	MarkerOpen = "(a => console.log(a) || a)("
	// MarkerClose is the text placed after a wrapped expression.
	MarkerClose = ")"
)

var (
	// wrapped span: optional indentation and `return`, the marker around an
	// inner expression, then optional whitespace and semicolons.
	// Flags: s = dot matches newline.
	reWrapped = regexp.MustCompile(
		`(?s)^(\s*(?:return\s+)?)` + regexp.QuoteMeta(MarkerOpen) + `(.+)` + regexp.QuoteMeta(MarkerClose) + `([\s;]*)$`,
	)

	// return statement: indentation, `return`, a greedy non-empty body and
	// the terminating semicolon.
	reReturn = regexp.MustCompile(`(?s)^(\s*)return\s+(.+);\s*$`)
)

// Kind tags the outcome of Toggle.
type Kind int

const (
	NoMatch Kind = iota
	Wrap
	Revert
)

func (k Kind) String() string {
	switch k {
	case Wrap:
		return "wrap"
	case Revert:
		return "revert"
	default:
		return "no-match"
	}
}

// Result is the replacement produced by Toggle. Text is empty for NoMatch.
type Result struct {
	Kind Kind
	Text string
}

// Toggle decides whether text is already wrapped and returns the
// replacement for it. In order:
//  1. A wrapped span is reverted, keeping everything around the marker.
//  2. A `return <expr>;` statement has its expression wrapped.
//  3. A non-empty explicit selection is wrapped verbatim.
//  4. Anything else is NoMatch.
func Toggle(text string, hasSelection bool) Result {
	if m := reWrapped.FindStringSubmatch(text); m != nil {
		return Result{Kind: Revert, Text: m[1] + m[2] + m[3]}
	}

	if m := reReturn.FindStringSubmatch(text); m != nil {
		return Result{Kind: Wrap, Text: m[1] + "return " + WrapExpr(m[2]) + ";"}
	}

	if hasSelection && text != "" {
		return Result{Kind: Wrap, Text: WrapExpr(text)}
	}

	return Result{Kind: NoMatch}
}

// WrapExpr surrounds expr with the logging marker.
func WrapExpr(expr string) string {
	return MarkerOpen + expr + MarkerClose
}

// IsWrapped reports whether Toggle would revert text.
func IsWrapped(text string) bool {
	return reWrapped.MatchString(text)
}
