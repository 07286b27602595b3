package jlite

import (
	"errors"
	"fmt"

	"github.com/kolkov/jlite/internal/diag"
)

// Kind classifies a Diagnostic.
type Kind string

// Diagnostic kinds.
const (
	KindUninitializedVariable   = Kind(diag.UninitializedVariable)
	KindDuplicateDeclaration    = Kind(diag.DuplicateDeclaration)
	KindAlterConstant           = Kind(diag.AlterConstant)
	KindInvalidIntAssignment    = Kind(diag.InvalidIntAssignment)
	KindInvalidDoubleAssignment = Kind(diag.InvalidDoubleAssignment)
	KindInvalidBoolAssignment   = Kind(diag.InvalidBoolAssignment)
	KindInvalidStringAssignment = Kind(diag.InvalidStringAssignment)
	KindInvalidOperation        = Kind(diag.InvalidOperation)
	KindDivideByZero            = Kind(diag.DivideByZero)
	KindMissingClosingBracket   = Kind(diag.MissingClosingBracket)
	KindUnmatchedClosingBracket = Kind(diag.UnmatchedClosingBracket)
	KindMathExpressionSyntax    = Kind(diag.MathExpressionSyntax)
	KindBooleanExpressionSyntax = Kind(diag.BooleanExpressionSyntax)
	KindStringExpressionSyntax  = Kind(diag.StringExpressionSyntax)
	KindStatementSyntax         = Kind(diag.StatementSyntax)
	KindLoopLimit               = Kind(diag.LoopLimit)

	// KindInternal marks a failure that is not a program diagnostic.
	KindInternal Kind = "internal"
)

// Diagnostic is the single terminal error of a failed run.
type Diagnostic struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
	Line    int    `json:"line,omitempty"` // 1-based source line, 0 if unknown
}

func (d *Diagnostic) Error() string {
	if d.Line > 0 {
		return fmt.Sprintf("line %d: %s", d.Line, d.Message)
	}
	return d.Message
}

// AsDiagnostic reports whether err is a *Diagnostic and returns it.
func AsDiagnostic(err error) (*Diagnostic, bool) {
	var d *Diagnostic
	if errors.As(err, &d) {
		return d, true
	}
	return nil, false
}

// toDiagnostic converts an internal error to the public type.
func toDiagnostic(err error) error {
	if d, ok := diag.As(err); ok {
		return &Diagnostic{Kind: Kind(d.Kind), Message: d.Message, Line: d.Pos.Line}
	}
	return err
}
