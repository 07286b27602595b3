package parser

import (
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kolkov/jlite/internal/ast"
	"github.com/kolkov/jlite/internal/diag"
	"github.com/kolkov/jlite/internal/lexer"
	"github.com/kolkov/jlite/internal/token"
	"github.com/kolkov/jlite/internal/types"
)

func testScope() *types.Store {
	s := types.NewStore()
	s.Bind("x", types.Assigned(types.Type{Base: types.Int}, "1"))
	s.Bind("s", types.Assigned(types.Type{Base: types.String}, `"a"`))
	return s
}

// decodeOne decodes the first statement of src.
func decodeOne(t *testing.T, src string) ast.Instruction {
	t.Helper()
	p := New(lexer.Segment(src, ""), testScope(), zerolog.Nop())
	in, err := p.Next()
	require.NoError(t, err)
	return in
}

func decodeErr(t *testing.T, src string) *diag.Error {
	t.Helper()
	p := New(lexer.Segment(src, ""), testScope(), zerolog.Nop())
	_, err := p.Next()
	require.Error(t, err)
	d, ok := diag.As(err)
	require.True(t, ok, "not a diagnostic: %v", err)
	return d
}

func TestDeclarations(t *testing.T) {
	tests := []struct {
		src   string
		name  string
		typ   string
		value []string
	}{
		{"int y;", "y", "int", nil},
		{"final double d = 1.5;", "d", "final double", []string{"1.5"}},
		{"boolean b = x < 3;", "b", "boolean", []string{"x", "<", "3"}},
		{`String t = "hi there";`, "t", "String", []string{`"hi there"`}},
		{"boolean n = !true;", "n", "boolean", []string{"!true"}},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			lw, ok := decodeOne(t, tt.src).(*ast.LoadWord)
			require.True(t, ok)
			assert.Equal(t, tt.name, lw.Target)
			require.NotNil(t, lw.Type)
			assert.Equal(t, tt.typ, lw.Type.String())
			assert.Equal(t, tt.value, lw.Value)
		})
	}
}

func TestDeclarationErrors(t *testing.T) {
	tests := []struct {
		src  string
		kind diag.Kind
	}{
		{"int x = 5;", diag.DuplicateDeclaration},
		{"int x;", diag.DuplicateDeclaration},
		{"int 5;", diag.StatementSyntax},
		{"int y =;", diag.StatementSyntax},
		{"int for = 1;", diag.StatementSyntax},
		{"final y = 1;", diag.StatementSyntax},
		{"final x = 1;", diag.StatementSyntax},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			assert.Equal(t, tt.kind, decodeErr(t, tt.src).Kind)
		})
	}
}

func TestAssignments(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"x = 5;", "LoadWord <reassign> x = 5"},
		{"x = x * 2 + 1;", "LoadWord <reassign> x = x * 2 + 1"},
		{"x += 2;", "MathOp add x = x, 2"},
		{"x -= 2;", "MathOp sub x = x, 2"},
		{"x *= x;", "MathOp mult x = x, x"},
		{"x /= 3;", "MathOp div x = x, 3"},
		{"x -= x * 2;", "MathOp sub x = x, x * 2"},
		{"x++;", "MathOp add x = x, 1"},
		{"x--;", "MathOp sub x = x, 1"},
		{"x ++;", "MathOp add x = x, 1"},
		{`s += "b";`, `LoadWord <reassign> s = s + "b"`},
		{`s += "b" + "c";`, `LoadWord <reassign> s = s + "b" + "c"`},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			assert.Equal(t, tt.want, decodeOne(t, tt.src).String())
		})
	}
}

func TestStatementErrors(t *testing.T) {
	tests := []struct {
		src  string
		kind diag.Kind
	}{
		{"y = 1;", diag.UninitializedVariable},
		{"y++;", diag.UninitializedVariable},
		{"x;", diag.StatementSyntax},
		{"x % 2;", diag.StatementSyntax},
		{"}", diag.UnmatchedClosingBracket},
		{"else {\n}", diag.StatementSyntax},
		{"System.out.println(x;", diag.StatementSyntax},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			assert.Equal(t, tt.kind, decodeErr(t, tt.src).Kind)
		})
	}
}

func TestErrorPosition(t *testing.T) {
	d := decodeErr(t, "\n\nint x;")
	assert.Equal(t, 3, d.Pos.Line)
}

func TestPrint(t *testing.T) {
	in := decodeOne(t, `System.out.println("a (b)" + x);`)
	pr, ok := in.(*ast.Print)
	require.True(t, ok)
	assert.Equal(t, `"a (b)" + x`, pr.Operand)
}

func TestFor(t *testing.T) {
	src := "for (int i = 0; i < 3; i++) {\n" +
		"  for (int j = 0; j < 2; j++) {\n" +
		"    System.out.println(j);\n" +
		"  }\n" +
		"}\n" +
		"System.out.println(x);"
	p := New(lexer.Segment(src, ""), testScope(), zerolog.Nop())

	in, err := p.Next()
	require.NoError(t, err)
	f, ok := in.(*ast.For)
	require.True(t, ok)
	assert.Equal(t, "int i = 0", f.Init)
	assert.Equal(t, "i < 3", f.Test)
	assert.Equal(t, "i++", f.Step)
	assert.Equal(t, 3, f.Body.Len())

	in, err = p.Next()
	require.NoError(t, err)
	assert.IsType(t, &ast.Print{}, in)

	_, err = p.Next()
	assert.Equal(t, io.EOF, err)
}

func TestForErrors(t *testing.T) {
	tests := []struct {
		src  string
		kind diag.Kind
	}{
		{"for (; x < 3; x++) {\n}", diag.StatementSyntax},
		{"for (int i = 0; i < 3) {\n}", diag.StatementSyntax},
		{"for (int i = 0; i < 3; i++) {\nSystem.out.println(i);", diag.MissingClosingBracket},
		{"for (int i = 0; i < 3; i++)\n}", diag.StatementSyntax},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			assert.Equal(t, tt.kind, decodeErr(t, tt.src).Kind)
		})
	}
}

func TestIfChain(t *testing.T) {
	src := "if (x > 2) {\n" +
		"System.out.println(1);\n" +
		"}\n" +
		"else if (x > 1) {\n" +
		"System.out.println(2);\n" +
		"}\n" +
		"else if (x > 0) {\n" +
		"}\n" +
		"else {\n" +
		"System.out.println(3);\n" +
		"System.out.println(4);\n" +
		"}\n" +
		"else {\n" +
		"}"
	p := New(lexer.Segment(src, ""), testScope(), zerolog.Nop())

	in, err := p.Next()
	require.NoError(t, err)
	n, ok := in.(*ast.If)
	require.True(t, ok)
	assert.Equal(t, "x > 2", n.Cond)
	assert.Equal(t, 1, n.Body.Len())
	require.Len(t, n.Chain, 3)

	elif, ok := n.Chain[0].(*ast.ElseIf)
	require.True(t, ok)
	assert.Equal(t, "x > 1", elif.Cond)
	assert.Equal(t, 0, n.Chain[1].(*ast.ElseIf).Body.Len())

	els, ok := n.Chain[2].(*ast.Else)
	require.True(t, ok)
	assert.Equal(t, 2, els.Body.Len())
	assert.Equal(t, 9, els.Pos().Line)

	// A second else has no if to attach to.
	_, err = p.Next()
	d, ok := diag.As(err)
	require.True(t, ok)
	assert.Equal(t, diag.StatementSyntax, d.Kind)
}

func TestIfStopsAtNonElse(t *testing.T) {
	src := "if (x > 2) {\n}\nx = 3;"
	p := New(lexer.Segment(src, ""), testScope(), zerolog.Nop())

	in, err := p.Next()
	require.NoError(t, err)
	assert.Empty(t, in.(*ast.If).Chain)
	assert.True(t, p.More())
}

func TestEmptyStatementsSkipped(t *testing.T) {
	p := New(lexer.Segment(";\n;", ""), testScope(), zerolog.Nop())
	_, err := p.Next()
	assert.Equal(t, io.EOF, err)
}

func TestParseStatement(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"x++", "MathOp add x = x, 1"},
		{"x+=2", "MathOp add x = x, 2"},
		{"x = x + 2", "LoadWord <reassign> x = x + 2"},
		{"int k = 0", "LoadWord int k = 0"},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			in, err := ParseStatement(tt.text, token.NoPos, testScope())
			require.NoError(t, err)
			assert.Equal(t, tt.want, in.String())
		})
	}
}

func TestResolve(t *testing.T) {
	lines := lexer.Segment("if (a) {\nif (b) {\n}\nx = 1;\n}\ny = 2;", "")
	span, err := Resolve(lines, 0)
	require.NoError(t, err)
	assert.Equal(t, Span{Start: 0, End: 4}, span)
	assert.Equal(t, 3, span.Len())

	_, err = Resolve(lines, 1)
	require.NoError(t, err)

	_, err = Resolve(lexer.Segment("for (;;) {\n{", ""), 0)
	d, ok := diag.As(err)
	require.True(t, ok)
	assert.Equal(t, diag.MissingClosingBracket, d.Kind)
}
