// Package runtime provides the compiled patterns behind jlite's lexical grammars.
package runtime

import (
	"strings"

	"github.com/coregx/coregex"
)

// Regex wraps coregex for whole-word grammar checks.
// Every pattern is anchored at both ends on compilation, so MatchString
// answers "is the entire input in the language", never "does it contain".
type Regex struct {
	re *coregex.Regexp
}

// Compile creates a new anchored Regex from pattern.
func Compile(pattern string) (*Regex, error) {
	anchored := pattern
	if !strings.HasPrefix(anchored, "^") {
		anchored = "^" + anchored
	}
	if !strings.HasSuffix(anchored, "$") {
		anchored += "$"
	}

	re, err := coregex.Compile(anchored)
	if err != nil {
		return nil, err
	}
	return &Regex{re: re}, nil
}

// MustCompile creates a Regex, panicking on error.
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return re
}

// MatchString reports whether the whole of s matches the pattern.
func (r *Regex) MatchString(s string) bool {
	return r.re.MatchString(s)
}

// Grammar fragments shared by the value validators and the expression
// evaluators. Decimal is the strict signed-decimal form the evaluators
// produce and accept; Numeric additionally admits exponents and a bare
// fractional part, the forms a double literal may take.
const (
	Decimal    = `-?[0-9]+(\.[0-9]+)?`
	Integer    = `-?[0-9]+`
	Numeric    = `[+-]?([0-9]+\.?[0-9]*|\.[0-9]+)([eE][+-]?[0-9]+)?`
	Boolean    = `true|false`
	StringLit  = `"[^"]*"`
	Identifier = `[A-Za-z_$][A-Za-z0-9_$]*`
)

// Precompiled grammars.
var (
	IntRe        = MustCompile(Integer)
	NumericRe    = MustCompile(Numeric)
	BooleanRe    = MustCompile(`(` + Boolean + `)`)
	StringRe     = MustCompile(StringLit)
	IdentifierRe = MustCompile(Identifier)

	// MathRe matches a space-joined arithmetic expression: a signed decimal
	// followed by one or more "operator decimal" pairs.
	MathRe = MustCompile(Decimal + `( [-+*/] ` + Decimal + `)+`)

	// ComparisonRe matches a space-joined expression of boolean and decimal
	// operands joined by relational or logical operators.
	ComparisonRe = MustCompile(`(` + Boolean + `|` + Decimal + `)( (>=|<=|>|<|==|!=|&&|\|\|) (` + Boolean + `|` + Decimal + `))*`)

	// LogicRe matches booleans joined only by && and ||.
	LogicRe = MustCompile(`(` + Boolean + `)( (&&|\|\|) (` + Boolean + `))*`)
)
