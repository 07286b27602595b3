// Package eval evaluates jlite expressions against a register store.
//
// An expression arrives as words, for example ["x", "*", "2", "+", "1"].
// Classify picks one of three sub-evaluators: String if any word carries a
// quote or names a String register, Boolean if any word is a relational or
// logical operator, a boolean literal, a negation or a boolean register,
// and Math otherwise. All three resolve operands through Substitute.
package eval

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/kolkov/jlite/internal/diag"
	"github.com/kolkov/jlite/internal/token"
	"github.com/kolkov/jlite/internal/types"
)

// Registers is the register access an Evaluator needs. *types.Store
// implements it.
type Registers interface {
	Lookup(name string) (types.Register, bool)
	Bind(name string, r types.Register)
}

// Kind is the class of an expression.
type Kind uint8

const (
	Math Kind = iota
	Boolean
	String
)

func (k Kind) String() string {
	switch k {
	case Boolean:
		return "boolean"
	case String:
		return "String"
	default:
		return "math"
	}
}

// Evaluator evaluates expressions against one register store.
type Evaluator struct {
	regs Registers
	log  zerolog.Logger
}

// New creates an Evaluator over regs. Classification and results are
// logged at trace level.
func New(regs Registers, log zerolog.Logger) *Evaluator {
	return &Evaluator{regs: regs, log: log}
}

// Substitute resolves one operand: a literal is returned in normalized
// form and a name yields its register's value. Anything else, including a declared
// name with no value, is an UninitializedVariable failure.
func (e *Evaluator) Substitute(word string) (string, error) {
	if types.IsLiteral(word) {
		return types.Normalize(word), nil
	}
	if r, ok := e.regs.Lookup(word); ok {
		if v, set := r.Value(); set {
			return v, nil
		}
	}
	return "", diag.Uninitialized(word)
}

// Classify returns the kind of the expression formed by words.
func (e *Evaluator) Classify(words []string) Kind {
	for _, w := range words {
		if strings.ContainsRune(w, '"') || e.hasType(w, types.String) {
			return String
		}
	}
	for _, w := range words {
		tok := token.LookupOperator(w)
		switch {
		case tok.IsRelational(), tok.IsLogical(), types.IsBool(w),
			strings.ContainsRune(w, '!'), e.hasType(w, types.Boolean):
			return Boolean
		}
	}
	return Math
}

func (e *Evaluator) hasType(name string, base types.Base) bool {
	r, ok := e.regs.Lookup(name)
	return ok && r.Type.Base == base
}

// Evaluate classifies words and evaluates them with the matching
// sub-evaluator. The result is a literal in lexical form.
func (e *Evaluator) Evaluate(words []string) (string, error) {
	kind := e.Classify(words)
	var (
		v   string
		err error
	)
	switch kind {
	case String:
		v, err = e.String(words)
	case Boolean:
		v, err = e.Boolean(words)
	default:
		v, err = e.Math(words)
	}
	if err != nil {
		return "", err
	}
	e.log.Trace().Str("kind", kind.String()).Strs("expr", words).Str("value", v).Msg("evaluated")
	return v, nil
}

// Condition evaluates a loop or branch condition, which must be boolean.
func (e *Evaluator) Condition(words []string) (bool, error) {
	v, err := e.Boolean(words)
	if err != nil {
		return false, err
	}
	return v == "true", nil
}
