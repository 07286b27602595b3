package eval

import (
	"strings"

	"github.com/kolkov/jlite/internal/diag"
	"github.com/kolkov/jlite/internal/runtime"
	"github.com/kolkov/jlite/internal/token"
	"github.com/kolkov/jlite/internal/types"
)

// item is one word of a boolean expression: the source word and its
// current value. Negation marks and operators have val == word.
type item struct {
	word string
	val  string
}

// Boolean evaluates a boolean expression. Runs of arithmetic reduce first,
// then negations, then relational operators (<, >, <=, >= bind tighter
// than == and !=), and finally && and || as * and + over 1 and 0.
func (e *Evaluator) Boolean(words []string) (string, error) {
	expr := strings.Join(words, " ")

	items, err := e.negations(words)
	if err != nil {
		return "", err
	}
	if items, err = e.reduceMath(expr, items); err != nil {
		return "", err
	}
	if items, err = negate(expr, items); err != nil {
		return "", err
	}
	if !runtime.ComparisonRe.MatchString(join(items)) {
		return "", diag.BooleanSyntax(expr)
	}
	if items, err = compare(expr, items, func(op token.Token) bool {
		return op == token.LESS || op == token.LTE || op == token.GREATER || op == token.GTE
	}); err != nil {
		return "", err
	}
	if items, err = compare(expr, items, func(op token.Token) bool {
		return op == token.EQUALS || op == token.NOT_EQUALS
	}); err != nil {
		return "", err
	}
	if !runtime.LogicRe.MatchString(join(items)) {
		return "", diag.BooleanSyntax(expr)
	}

	vals := make([]string, len(items))
	ints := make([]bool, len(items))
	for i, it := range items {
		switch it.val {
		case "true":
			vals[i] = "1"
		case "false":
			vals[i] = "0"
		case "&&":
			vals[i] = "*"
		case "||":
			vals[i] = "+"
		}
		ints[i] = true
	}
	if len(vals) == 1 {
		return types.Bool(vals[0] == "1"), nil
	}
	n, err := arith(expr, vals, ints)
	if err != nil {
		return "", err
	}
	return types.Bool(n != "0"), nil
}

// negations splits leading ! marks off words and substitutes operands.
func (e *Evaluator) negations(words []string) ([]item, error) {
	items := make([]item, 0, len(words))
	for _, w := range words {
		if tok := token.LookupOperator(w); tok.IsOperator() && tok != token.NOT {
			items = append(items, item{w, w})
			continue
		}
		rest := strings.TrimLeft(w, "!")
		for range len(w) - len(rest) {
			items = append(items, item{"!", "!"})
		}
		if rest == "" {
			continue
		}
		v, err := e.Substitute(rest)
		if err != nil {
			return nil, err
		}
		items = append(items, item{rest, v})
	}
	return items, nil
}

// reduceMath replaces each maximal run of numbers and arithmetic operators
// longer than one item with its value.
func (e *Evaluator) reduceMath(expr string, items []item) ([]item, error) {
	out := make([]item, 0, len(items))
	for i := 0; i < len(items); {
		if !isMathItem(items[i]) {
			out = append(out, items[i])
			i++
			continue
		}
		j := i
		for j < len(items) && isMathItem(items[j]) {
			j++
		}
		run := items[i:j]
		if len(run) == 1 {
			if !types.IsNumeric(run[0].val) {
				return nil, diag.BooleanSyntax(expr)
			}
			out = append(out, run[0])
			i = j
			continue
		}
		if len(run)%2 == 0 {
			return nil, diag.BooleanSyntax(expr)
		}
		words := make([]string, len(run))
		for k, it := range run {
			if (k%2 == 1) != isArith(it.val) {
				return nil, diag.BooleanSyntax(expr)
			}
			words[k] = it.word
		}
		v, err := e.Math(words)
		if err != nil {
			return nil, err
		}
		out = append(out, item{v, v})
		i = j
	}
	return out, nil
}

// negate applies each run of ! marks to the boolean that follows it.
func negate(expr string, items []item) ([]item, error) {
	out := make([]item, 0, len(items))
	for i := 0; i < len(items); i++ {
		if items[i].val != "!" {
			out = append(out, items[i])
			continue
		}
		count := 0
		for i < len(items) && items[i].val == "!" {
			count++
			i++
		}
		if i == len(items) || !types.IsBool(items[i].val) {
			return nil, diag.BooleanSyntax(expr)
		}
		v := items[i].val == "true"
		if count%2 == 1 {
			v = !v
		}
		b := types.Bool(v)
		out = append(out, item{b, b})
	}
	return out, nil
}

// compare folds, left to right, every relational operator selected by
// match with its two neighbours.
func compare(expr string, items []item, match func(token.Token) bool) ([]item, error) {
	out := []item{items[0]}
	for i := 1; i+1 < len(items); i += 2 {
		op := token.LookupOperator(items[i].val)
		if !match(op) {
			out = append(out, items[i], items[i+1])
			continue
		}
		left := out[len(out)-1]
		v, err := comparison(expr, left.val, op, items[i+1].val)
		if err != nil {
			return nil, err
		}
		out[len(out)-1] = item{v, v}
	}
	return out, nil
}

// comparison compares two numbers with any relational operator, or two
// booleans with == and !=.
func comparison(expr, a string, op token.Token, b string) (string, error) {
	if types.IsBool(a) && types.IsBool(b) {
		switch op {
		case token.EQUALS:
			return types.Bool(a == b), nil
		case token.NOT_EQUALS:
			return types.Bool(a != b), nil
		}
		return "", diag.BooleanSyntax(expr)
	}
	x, errX := types.ParseNum(a)
	y, errY := types.ParseNum(b)
	if errX != nil || errY != nil {
		return "", diag.BooleanSyntax(expr)
	}
	var r bool
	switch op {
	case token.LESS:
		r = x < y
	case token.LTE:
		r = x <= y
	case token.GREATER:
		r = x > y
	case token.GTE:
		r = x >= y
	case token.EQUALS:
		r = x == y
	case token.NOT_EQUALS:
		r = x != y
	}
	return types.Bool(r), nil
}

func isArith(w string) bool {
	return token.LookupOperator(w).IsArith()
}

func isMathItem(it item) bool {
	return types.IsNumeric(it.val) || isArith(it.val)
}

func join(items []item) string {
	vals := make([]string, len(items))
	for i, it := range items {
		vals[i] = it.val
	}
	return strings.Join(vals, " ")
}
