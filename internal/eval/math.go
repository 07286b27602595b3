package eval

import (
	"math"
	"strings"

	"github.com/kolkov/jlite/internal/diag"
	"github.com/kolkov/jlite/internal/runtime"
	"github.com/kolkov/jlite/internal/token"
	"github.com/kolkov/jlite/internal/types"
)

// operand is a reduced value and whether both of its sources were ints.
type operand struct {
	val   float64
	isInt bool
}

// Math evaluates an arithmetic expression: a signed decimal followed by
// one or more operator/decimal pairs, after substitution. Multiplication
// and division fold first, left to right, then addition and subtraction.
// Dividing two ints floors the quotient.
func (e *Evaluator) Math(words []string) (string, error) {
	expr := strings.Join(words, " ")
	vals := make([]string, len(words))
	ints := make([]bool, len(words))
	for i, w := range words {
		if token.LookupOperator(w).IsArith() {
			vals[i] = w
			continue
		}
		v, err := e.Substitute(w)
		if err != nil {
			return "", err
		}
		vals[i] = v
		ints[i] = e.IntOperand(w, v)
	}
	if !runtime.MathRe.MatchString(strings.Join(vals, " ")) {
		return "", diag.MathSyntax(expr)
	}
	return arith(expr, vals, ints)
}

// IntOperand reports whether w, resolved to v, has int type: an int
// register, or an int literal as written. A double literal such as "4."
// stays a double even though it normalizes to "4".
func (e *Evaluator) IntOperand(w, v string) bool {
	if r, ok := e.regs.Lookup(w); ok {
		return r.Type.Base == types.Int
	}
	return types.IsInt(w) && types.IsInt(v)
}

// arith folds a grammar-checked expression. vals alternates operands and
// operators; ints flags int operands.
func arith(expr string, vals []string, ints []bool) (string, error) {
	ops := make([]string, 0, len(vals)/2)
	nums := make([]operand, 0, len(vals)/2+1)
	for i, v := range vals {
		if i%2 == 1 {
			ops = append(ops, v)
			continue
		}
		n, err := types.ParseNum(v)
		if err != nil {
			return "", diag.MathSyntax(expr)
		}
		nums = append(nums, operand{val: n, isInt: ints[i]})
	}

	// Pass 1: * and /.
	for i := 0; i < len(ops); {
		if ops[i] != "*" && ops[i] != "/" {
			i++
			continue
		}
		r, err := apply(expr, nums[i], ops[i], nums[i+1])
		if err != nil {
			return "", err
		}
		nums[i] = r
		nums = append(nums[:i+1], nums[i+2:]...)
		ops = append(ops[:i], ops[i+1:]...)
	}

	// Pass 2: + and -.
	acc := nums[0]
	for i, op := range ops {
		r, err := apply(expr, acc, op, nums[i+1])
		if err != nil {
			return "", err
		}
		acc = r
	}
	return types.FormatNum(acc.val), nil
}

func apply(expr string, a operand, op string, b operand) (operand, error) {
	isInt := a.isInt && b.isInt
	switch op {
	case "+":
		return operand{a.val + b.val, isInt}, nil
	case "-":
		return operand{a.val - b.val, isInt}, nil
	case "*":
		return operand{a.val * b.val, isInt}, nil
	default:
		if b.val == 0 {
			return operand{}, diag.DivisionByZero(expr)
		}
		q := a.val / b.val
		if isInt {
			q = math.Floor(q)
		}
		return operand{q, isInt}, nil
	}
}

// Apply performs one arithmetic operation on two numeric values, as an
// in-place MathOp does. isInt selects integer division.
func Apply(op string, a, b string, isInt bool) (string, error) {
	x, err := types.ParseNum(a)
	if err != nil {
		return "", diag.Operation(a)
	}
	y, err := types.ParseNum(b)
	if err != nil {
		return "", diag.Operation(b)
	}
	r, err := apply(a+" "+op+" "+b, operand{x, isInt}, op, operand{y, isInt})
	if err != nil {
		return "", err
	}
	return types.FormatNum(r.val), nil
}
