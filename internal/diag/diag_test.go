package diag

import (
	"errors"
	"fmt"
	"testing"

	"github.com/kolkov/jlite/internal/token"
)

func TestMessages(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		kind Kind
		msg  string
	}{
		{"uninitialized", Uninitialized("x"), UninitializedVariable, "Variable x is uninitialized."},
		{"duplicate", Duplicate("x"), DuplicateDeclaration, "Variable x was already declared."},
		{"constant", Constant("x"), AlterConstant, "Variable x is a constant and cannot be altered."},
		{"divide", DivisionByZero("10 / 0"), DivideByZero, "Expression 10 / 0 attempts to divide by zero."},
		{"int", InvalidAssignment("int", "x", "4.5"), InvalidIntAssignment, "Variable x is an integer and cannot be assigned the value 4.5"},
		{"double", InvalidAssignment("double", "d", `"a"`), InvalidDoubleAssignment, `Variable d is a double and cannot be assigned the value "a"`},
		{"boolean", InvalidAssignment("boolean", "b", "1"), InvalidBoolAssignment, "Variable b is a boolean and cannot be assigned the value 1"},
		{"string", InvalidAssignment("String", "s", "1"), InvalidStringAssignment, "Variable s is a String and cannot be assigned the value 1"},
		{"operation", Operation(`"a"`), InvalidOperation, `"a" is not numeric, so it cannot be operated on as specified.`},
		{"missing", MissingBracket(), MissingClosingBracket, "There is a missing closing curly bracket."},
		{"loop", Loop(10), LoopLimit, "Loop exceeded the limit of 10 iterations."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Kind != tt.kind {
				t.Errorf("Kind = %q, want %q", tt.err.Kind, tt.kind)
			}
			if tt.err.Message != tt.msg {
				t.Errorf("Message = %q, want %q", tt.err.Message, tt.msg)
			}
		})
	}
}

func TestAtKeepsFirstPosition(t *testing.T) {
	err := Uninitialized("y").At(token.Position{Line: 2})
	err.At(token.Position{Line: 7})
	if err.Pos.Line != 2 {
		t.Errorf("Pos.Line = %d, want 2", err.Pos.Line)
	}
	if err.Error() != "2: Variable y is uninitialized." {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestAs(t *testing.T) {
	var err error = Duplicate("x")
	if d, ok := As(err); !ok || d.Kind != DuplicateDeclaration {
		t.Errorf("As() = %v, %v", d, ok)
	}
	if _, ok := As(errors.New("plain")); ok {
		t.Error("As() should reject non-diagnostic errors")
	}
	if d, ok := As(fmt.Errorf("wrapped: %w", err)); !ok || d.Kind != DuplicateDeclaration {
		t.Error("As() should see through wrapping")
	}
}

func TestKindsComplete(t *testing.T) {
	seen := map[Kind]bool{}
	for _, k := range Kinds {
		if seen[k] {
			t.Errorf("duplicate kind %q", k)
		}
		seen[k] = true
	}
	if len(Kinds) != 16 {
		t.Errorf("len(Kinds) = %d, want 16", len(Kinds))
	}
}
