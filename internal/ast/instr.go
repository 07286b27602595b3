package ast

import "github.com/kolkov/jlite/internal/types"

// MathKind selects the arithmetic performed by a MathOp.
type MathKind uint8

const (
	Add MathKind = iota
	Sub
	Mult
	Div
)

var mathKinds = [...]string{Add: "add", Sub: "sub", Mult: "mult", Div: "div"}

func (k MathKind) String() string {
	if int(k) < len(mathKinds) {
		return mathKinds[k]
	}
	return "<unknown>"
}

// LoadWord binds a value to a register.
// Examples:
//   - int x;                 Type=int, Value=nil
//   - final int x = 4;       Type=final int, Value=["4"]
//   - x = y * 2;             Type=nil, Value=["y", "*", "2"]
//   - s += "!";              Type=nil, Value=["s", "+", `"!"`]
type LoadWord struct {
	Base
	Target string
	Type   *types.Type // nil for a reassignment, which keeps the declared type
	Value  []string    // One literal or name, or expression words; nil for a bare declaration
}

// MathOp applies Kind to a numeric register in place.
// Examples: x += 2; x *= y; x++;
type MathOp struct {
	Base
	Kind MathKind
	Dest string
	Lhs  string
	Rhs  []string // One operand, or expression words reduced before the operation
}

// For is a counted loop: for (Init; Test; Step) { Body }.
type For struct {
	Base
	Init string
	Test string
	Step string
	Body Block
}

// If is a conditional with its attached else-if/else chain.
type If struct {
	Base
	Cond  string
	Body  Block
	Chain []Branch // In source order; an Else, if present, is last
}

// ElseIf is a chained conditional branch.
type ElseIf struct {
	Base
	Cond string
	Body Block
}

func (*ElseIf) branchNode() {}

// Else is the unconditional terminal branch.
type Else struct {
	Base
	Body Block
}

func (*Else) branchNode() {}

// Print appends the rendered value of Operand to the output.
type Print struct {
	Base
	Operand string
}
