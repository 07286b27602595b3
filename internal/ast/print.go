package ast

import (
	"fmt"
	"io"
	"strings"
)

// Printer provides pretty-printing for instructions.
// It outputs a human-readable representation suitable for debugging.
type Printer struct {
	w      io.Writer
	indent int
	err    error
}

// NewPrinter creates a new Printer that writes to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// SetIndent sets the indentation level of subsequent output.
func (p *Printer) SetIndent(level int) {
	p.indent = level
}

// Print writes a pretty-printed representation of in, including the source
// lines of any block body.
func (p *Printer) Print(in Instruction) error {
	p.printInstr(in)
	return p.err
}

func (p *Printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *Printer) writeIndent() {
	if p.err != nil {
		return
	}
	_, p.err = io.WriteString(p.w, strings.Repeat("    ", p.indent))
}

func (p *Printer) printInstr(in Instruction) {
	p.writeIndent()
	if in == nil {
		p.printf("<nil>\n")
		return
	}
	p.printf("%s\n", in.String())
	switch n := in.(type) {
	case *For:
		p.printBlock(n.Body)
	case *If:
		p.printBlock(n.Body)
		for _, b := range n.Chain {
			p.printInstr(b)
		}
	case *ElseIf:
		p.printBlock(n.Body)
	case *Else:
		p.printBlock(n.Body)
	}
}

func (p *Printer) printBlock(b Block) {
	p.indent++
	for _, line := range b.Lines {
		p.writeIndent()
		p.printf("%s\n", line.Text)
	}
	p.indent--
}

// String implementations render the instruction header only.

func (n *LoadWord) String() string {
	typ := "<reassign>"
	if n.Type != nil {
		typ = n.Type.String()
	}
	if n.Value == nil {
		return fmt.Sprintf("LoadWord %s %s", typ, n.Target)
	}
	return fmt.Sprintf("LoadWord %s %s = %s", typ, n.Target, strings.Join(n.Value, " "))
}

func (n *MathOp) String() string {
	return fmt.Sprintf("MathOp %s %s = %s, %s", n.Kind, n.Dest, n.Lhs, strings.Join(n.Rhs, " "))
}

func (n *For) String() string {
	return fmt.Sprintf("For (%s; %s; %s) [%d lines]", n.Init, n.Test, n.Step, n.Body.Len())
}

func (n *If) String() string {
	return fmt.Sprintf("If (%s) [%d lines, %d chained]", n.Cond, n.Body.Len(), len(n.Chain))
}

func (n *ElseIf) String() string {
	return fmt.Sprintf("ElseIf (%s) [%d lines]", n.Cond, n.Body.Len())
}

func (n *Else) String() string {
	return fmt.Sprintf("Else [%d lines]", n.Body.Len())
}

func (n *Print) String() string {
	return fmt.Sprintf("Print %s", n.Operand)
}
