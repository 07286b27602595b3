// Package diag defines the terminal diagnostics a jlite run can end with.
//
// A run produces either output or exactly one diagnostic. Every failure in
// the decoder, evaluator or executor is reported as an *Error and returned
// unchanged through all callers, which stops decoding and execution.
package diag

import (
	"errors"
	"fmt"

	"github.com/kolkov/jlite/internal/token"
)

// Kind classifies a diagnostic.
type Kind string

// Diagnostic kinds. The string values are what a host UI receives in the
// "kind" field of a failed result.
const (
	UninitializedVariable   Kind = "uninitialized variable"
	DuplicateDeclaration    Kind = "duplicate declaration"
	AlterConstant           Kind = "alter constant"
	InvalidIntAssignment    Kind = "invalid int"
	InvalidDoubleAssignment Kind = "invalid double"
	InvalidBoolAssignment   Kind = "invalid boolean"
	InvalidStringAssignment Kind = "invalid String"
	InvalidOperation        Kind = "invalid operation"
	DivideByZero            Kind = "divide by zero"
	MissingClosingBracket   Kind = "missing closing bracket"
	UnmatchedClosingBracket Kind = "closing bracket"
	MathExpressionSyntax    Kind = "math expression syntax"
	BooleanExpressionSyntax Kind = "boolean syntax"
	StringExpressionSyntax  Kind = "String expression syntax"
	StatementSyntax         Kind = "statement syntax"
	LoopLimit               Kind = "loop limit"
)

// Kinds lists every diagnostic kind in declaration order.
var Kinds = []Kind{
	UninitializedVariable,
	DuplicateDeclaration,
	AlterConstant,
	InvalidIntAssignment,
	InvalidDoubleAssignment,
	InvalidBoolAssignment,
	InvalidStringAssignment,
	InvalidOperation,
	DivideByZero,
	MissingClosingBracket,
	UnmatchedClosingBracket,
	MathExpressionSyntax,
	BooleanExpressionSyntax,
	StringExpressionSyntax,
	StatementSyntax,
	LoopLimit,
}

// Error is a diagnostic with an optional source position.
type Error struct {
	Kind    Kind
	Message string
	Pos     token.Position
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s: %s", e.Pos, e.Message)
	}
	return e.Message
}

// At returns e with its position set, unless a position is already known.
// Errors raised deep inside the evaluator carry no position; the statement
// that triggered them fills it in on the way out.
func (e *Error) At(pos token.Position) *Error {
	if !e.Pos.IsValid() {
		e.Pos = pos
	}
	return e
}

// As reports whether err is a diagnostic and returns it.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// errorf creates an Error of the given kind with a formatted message.
func errorf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func Uninitialized(name string) *Error {
	return errorf(UninitializedVariable, "Variable %s is uninitialized.", name)
}

func MathSyntax(expr string) *Error {
	return errorf(MathExpressionSyntax, "Expression %s does not have proper syntax for a math expression.", expr)
}

func BooleanSyntax(expr string) *Error {
	return errorf(BooleanExpressionSyntax, "Expression %s does not have proper syntax for a boolean.", expr)
}

func StringSyntax(expr string) *Error {
	return errorf(StringExpressionSyntax, "Expression %s does not have proper syntax for a String expression.", expr)
}

func DivisionByZero(expr string) *Error {
	return errorf(DivideByZero, "Expression %s attempts to divide by zero.", expr)
}

func ClosingBracket() *Error {
	return errorf(UnmatchedClosingBracket, "There exists a closing curly bracket that does not match up to an opening curly bracket.")
}

func MissingBracket() *Error {
	return errorf(MissingClosingBracket, "There is a missing closing curly bracket.")
}

func Duplicate(name string) *Error {
	return errorf(DuplicateDeclaration, "Variable %s was already declared.", name)
}

func Constant(name string) *Error {
	return errorf(AlterConstant, "Variable %s is a constant and cannot be altered.", name)
}

// InvalidAssignment reports a value whose lexical form does not fit the
// declared type described by typeName ("int", "double", "boolean", "String").
func InvalidAssignment(typeName, name, value string) *Error {
	var kind Kind
	article := "a"
	switch typeName {
	case "int":
		kind, article = InvalidIntAssignment, "an"
		typeName = "integer"
	case "double":
		kind = InvalidDoubleAssignment
	case "boolean":
		kind = InvalidBoolAssignment
	default:
		kind = InvalidStringAssignment
	}
	return errorf(kind, "Variable %s is %s %s and cannot be assigned the value %s", name, article, typeName, value)
}

func Operation(value string) *Error {
	return errorf(InvalidOperation, "%s is not numeric, so it cannot be operated on as specified.", value)
}

// Syntax reports a statement the decoder cannot shape into an instruction.
func Syntax(format string, args ...any) *Error {
	return errorf(StatementSyntax, format, args...)
}

func Loop(limit int) *Error {
	return errorf(LoopLimit, "Loop exceeded the limit of %d iterations.", limit)
}
