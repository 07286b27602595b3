package eval

import (
	"strings"

	"github.com/kolkov/jlite/internal/diag"
	"github.com/kolkov/jlite/internal/token"
	"github.com/kolkov/jlite/internal/types"
)

// strItem is a String expression word: an operator or a string literal,
// with the register it was read from, if any.
type strItem struct {
	val string
	ref string // Register name for a String register operand
}

// String evaluates a String expression. Operands become string literals:
// String registers by value, other registers and literals quoted, and a
// !-prefixed word through Boolean. The words then fold right to left, so
// s += "a" + "b" appends "ab" to s. + concatenates; += concatenates and
// also writes the result to the String register on its left.
func (e *Evaluator) String(words []string) (string, error) {
	expr := strings.Join(words, " ")
	items := make([]strItem, len(words))
	for i, w := range words {
		it, err := e.stringOperand(expr, w)
		if err != nil {
			return "", err
		}
		items[i] = it
	}
	if len(items)%2 == 0 {
		return "", diag.StringSyntax(expr)
	}

	acc := items[len(items)-1]
	for i := len(items) - 2; i >= 1; i -= 2 {
		op, left := items[i], items[i-1]
		if !types.IsString(left.val) || !types.IsString(acc.val) {
			return "", diag.StringSyntax(expr)
		}
		switch op.val {
		case "+":
			acc = strItem{val: types.Concat(left.val, acc.val)}
		case "+=":
			if left.ref == "" {
				return "", diag.StringSyntax(expr)
			}
			v, err := e.appendTo(left.ref, left.val, acc.val)
			if err != nil {
				return "", err
			}
			acc = strItem{val: v, ref: left.ref}
		default:
			return "", diag.StringSyntax(expr)
		}
	}
	if !types.IsString(acc.val) {
		return "", diag.StringSyntax(expr)
	}
	return acc.val, nil
}

func (e *Evaluator) stringOperand(expr, w string) (strItem, error) {
	if tok := token.LookupOperator(w); tok == token.ADD || tok == token.ADD_ASSIGN {
		return strItem{val: w}, nil
	}
	if types.IsString(w) {
		return strItem{val: w}, nil
	}
	if types.IsNumeric(w) || types.IsBool(w) {
		return strItem{val: types.Quote(types.Normalize(w))}, nil
	}
	if strings.HasPrefix(w, "!") {
		b, err := e.Boolean([]string{w})
		if err != nil {
			return strItem{}, err
		}
		return strItem{val: types.Quote(b)}, nil
	}
	if r, ok := e.regs.Lookup(w); ok {
		v, err := e.Substitute(w)
		if err != nil {
			return strItem{}, err
		}
		if r.Type.Base == types.String {
			return strItem{val: v, ref: w}, nil
		}
		return strItem{val: types.Quote(v)}, nil
	}
	if types.IsIdentifier(w) {
		return strItem{}, diag.Uninitialized(w)
	}
	return strItem{}, diag.StringSyntax(expr)
}

// appendTo writes cur+suffix to the String register name.
func (e *Evaluator) appendTo(name, cur, suffix string) (string, error) {
	r, _ := e.regs.Lookup(name)
	if r.Type.Const {
		return "", diag.Constant(name)
	}
	v := types.Concat(cur, suffix)
	e.regs.Bind(name, r.With(v))
	e.log.Trace().Str("name", name).Str("value", v).Msg("register write")
	return v, nil
}
