package internal

import "fmt"

// Position is a 0-based location in a document. Character counts Unicode
// code points from the start of the line.
type Position struct {
	Line      int
	Character int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line+1, p.Character+1)
}

// Before reports whether p comes strictly before o.
func (p Position) Before(o Position) bool {
	if p.Line != o.Line {
		return p.Line < o.Line
	}
	return p.Character < o.Character
}

// Range is a span of a document. End is exclusive.
type Range struct {
	Start Position
	End   Position
}

// IsEmpty reports whether the range selects nothing.
func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

func (r Range) String() string {
	return r.Start.String() + "-" + r.End.String()
}
