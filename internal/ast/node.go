// Package ast defines the decoded instructions of jlite programs.
//
// Instructions form a closed union. Each variant carries only the fields
// its execution needs:
//
//	Instruction (interface)
//	├── LoadWord - declaration, assignment and String concatenation
//	├── MathOp   - in-place arithmetic on a numeric register
//	├── For      - counted loop over a block of source lines
//	├── If       - conditional with its else-if/else chain
//	│   ├── ElseIf
//	│   └── Else
//	└── Print    - console output
//
// Block bodies stay as source lines. They are decoded when the block runs,
// because decoding a statement depends on which names are bound.
package ast

import (
	"github.com/kolkov/jlite/internal/lexer"
	"github.com/kolkov/jlite/internal/token"
)

// Instruction is the interface implemented by all decoded instructions.
type Instruction interface {
	// Pos returns the position of the line the instruction was decoded from.
	Pos() token.Position

	// String returns a one-line debug rendering.
	String() string

	instrNode() // marker method to prevent external implementations
}

// Branch is an instruction that can follow an if: ElseIf or Else.
type Branch interface {
	Instruction
	branchNode()
}

// Base provides the position field shared by all instructions.
type Base struct {
	StartPos token.Position
}

func (b *Base) Pos() token.Position { return b.StartPos }
func (b *Base) instrNode()          {}

// Block is the interior of a brace-delimited body.
type Block struct {
	Lines []lexer.Line
}

// Len returns the number of lines in the block.
func (b Block) Len() int { return len(b.Lines) }
