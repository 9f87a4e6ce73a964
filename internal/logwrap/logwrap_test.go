package logwrap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToggle(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		selection bool
		wantKind  Kind
		wantText  string
	}{
		{
			name:     "simple return statement",
			input:    "return x;",
			wantKind: Wrap,
			wantText: "return (a => console.log(a) || a)(x);",
		},
		{
			name:     "wrapped return statement",
			input:    "return (a => console.log(a) || a)(x);",
			wantKind: Revert,
			wantText: "return x;",
		},
		{
			name:     "indented wrapped line keeps suffix verbatim",
			input:    "  return (a => console.log(a) || a)(x);;  ",
			wantKind: Revert,
			wantText: "  return x;;  ",
		},
		{
			name:     "indented return keeps indentation",
			input:    "\t\treturn value;",
			wantKind: Wrap,
			wantText: "\t\treturn (a => console.log(a) || a)(value);",
		},
		{
			name:     "trailing whitespace after semicolon is dropped on wrap",
			input:    "  return x;   ",
			wantKind: Wrap,
			wantText: "  return (a => console.log(a) || a)(x);",
		},
		{
			name:     "one-line object literal",
			input:    "return { x: 1 };",
			wantKind: Wrap,
			wantText: "return (a => console.log(a) || a)({ x: 1 });",
		},
		{
			name:     "arrow function returning a statement",
			input:    "return () => { return x; });",
			wantKind: Wrap,
			wantText: "return (a => console.log(a) || a)(() => { return x; }));",
		},
		{
			name:     "greedy body swallows inner semicolons",
			input:    `return "a;b";`,
			wantKind: Wrap,
			wantText: `return (a => console.log(a) || a)("a;b");`,
		},
		{
			name:      "bare selection is wrapped verbatim",
			input:     "x",
			selection: true,
			wantKind:  Wrap,
			wantText:  "(a => console.log(a) || a)(x)",
		},
		{
			name:      "selection of marker form is reverted",
			input:     "(a => console.log(a) || a)(x)",
			selection: true,
			wantKind:  Revert,
			wantText:  "x",
		},
		{
			name:      "selection starting mid-line keeps its prefix",
			input:     " (a => console.log(a) || a)(f(x)) ;\n",
			selection: true,
			wantKind:  Revert,
			wantText:  " f(x) ;\n",
		},
		{
			name:      "selected return statement is wrapped as a statement",
			input:     "return x;",
			selection: true,
			wantKind:  Wrap,
			wantText:  "return (a => console.log(a) || a)(x);",
		},
		{
			name:     "assignment line without selection",
			input:    "let y = x;",
			wantKind: NoMatch,
		},
		{
			name:     "wrapper inside assignment without selection",
			input:    "let y = (a => console.log(a) || a)(x);",
			wantKind: NoMatch,
		},
		{
			name:     "empty return",
			input:    "return;",
			wantKind: NoMatch,
		},
		{
			name:     "return without semicolon",
			input:    "return x",
			wantKind: NoMatch,
		},
		{
			name:      "empty selection counts as none",
			input:     "",
			selection: true,
			wantKind:  NoMatch,
		},
		{
			name:     "returned identifier prefix is not a return",
			input:    "returnValue;",
			wantKind: NoMatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Toggle(tt.input, tt.selection)
			assert.Equal(t, tt.wantKind, got.Kind, "kind for %q", tt.input)
			assert.Equal(t, tt.wantText, got.Text, "text for %q", tt.input)
		})
	}
}

func TestToggle_MultiLineSelection(t *testing.T) {
	object := "{\n  x: 1,\n  y: 2\n};"

	wrapped := Toggle(object, true)
	assert.Equal(t, Wrap, wrapped.Kind)
	assert.Equal(t, "(a => console.log(a) || a)({\n  x: 1,\n  y: 2\n};)", wrapped.Text)

	reverted := Toggle(wrapped.Text, true)
	assert.Equal(t, Revert, reverted.Kind)
	assert.Equal(t, object, reverted.Text)
}

func TestToggle_MultiLineReturn(t *testing.T) {
	statement := "\treturn {\n\t\tx: 1,\n\t\ty: 2\n\t};"

	wrapped := Toggle(statement, true)
	assert.Equal(t, Wrap, wrapped.Kind)
	assert.Equal(t, "\treturn (a => console.log(a) || a)({\n\t\tx: 1,\n\t\ty: 2\n\t});", wrapped.Text)

	reverted := Toggle(wrapped.Text, true)
	assert.Equal(t, Revert, reverted.Kind)
	assert.Equal(t, statement, reverted.Text)
}

func TestToggle_RoundTrip(t *testing.T) {
	inputs := []string{
		"return x;",
		"    return a + b;",
		"return foo(bar, baz);",
		"return { x: 1 };",
		"return [1, 2, 3].map(n => n * 2);",
		"\treturn `template ${x}`;",
	}

	for _, input := range inputs {
		wrapped := Toggle(input, false)
		if !assert.Equal(t, Wrap, wrapped.Kind, "wrap %q", input) {
			continue
		}
		reverted := Toggle(wrapped.Text, false)
		assert.Equal(t, Revert, reverted.Kind, "revert %q", wrapped.Text)
		assert.Equal(t, input, reverted.Text)
	}
}

func TestToggle_SelectionRoundTrip(t *testing.T) {
	for _, sel := range []string{"x", "a.b(c)", "items[0]", "await load()"} {
		wrapped := Toggle(sel, true)
		assert.Equal(t, WrapExpr(sel), wrapped.Text)
		assert.Equal(t, sel, Toggle(wrapped.Text, true).Text)
	}
}

func TestToggle_IsReentrant(t *testing.T) {
	// Repeated calls on the same input must not depend on earlier matches.
	for i := 0; i < 3; i++ {
		assert.Equal(t, Wrap, Toggle("return x;", false).Kind)
		assert.Equal(t, NoMatch, Toggle("let y = x;", false).Kind)
	}
}

func TestIsWrapped(t *testing.T) {
	assert.True(t, IsWrapped("return (a => console.log(a) || a)(x);"))
	assert.True(t, IsWrapped("(a => console.log(a) || a)(x)"))
	assert.False(t, IsWrapped("return x;"))
	assert.False(t, IsWrapped("let y = (a => console.log(a) || a)(x);"))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "wrap", Wrap.String())
	assert.Equal(t, "revert", Revert.String())
	assert.Equal(t, "no-match", NoMatch.String())
}
