package types

import (
	"math"
	"strconv"
	"strings"

	"github.com/kolkov/jlite/internal/runtime"
)

// IsInt reports whether s is a signed decimal integer.
func IsInt(s string) bool {
	return runtime.IntRe.MatchString(s)
}

// IsNumeric reports whether s is a finite decimal number.
func IsNumeric(s string) bool {
	return runtime.NumericRe.MatchString(s)
}

// IsBool reports whether s is a boolean literal.
func IsBool(s string) bool {
	return s == "true" || s == "false"
}

// IsString reports whether s is a quoted string literal without inner quotes.
func IsString(s string) bool {
	return runtime.StringRe.MatchString(s)
}

// IsLiteral reports whether s is already a value and needs no lookup.
func IsLiteral(s string) bool {
	return IsNumeric(s) || IsBool(s) || IsString(s)
}

// IsIdentifier reports whether s can name a register.
func IsIdentifier(s string) bool {
	return runtime.IdentifierRe.MatchString(s)
}

// Quote wraps s in string delimiters.
func Quote(s string) string {
	return `"` + s + `"`
}

// Unquote strips the delimiters from a string literal.
// Values that are not string literals are returned unchanged.
func Unquote(s string) string {
	if IsString(s) {
		return s[1 : len(s)-1]
	}
	return s
}

// Concat joins two string literals into one literal.
func Concat(a, b string) string {
	return a[:len(a)-1] + b[1:]
}

// ParseNum parses a numeric value.
func ParseNum(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimPrefix(s, "+"), 64)
}

// FormatNum renders a number in the shortest decimal form that round-trips.
// Integral values have no fractional part, so 2 * 2.0 renders as "4".
func FormatNum(n float64) string {
	switch {
	case math.IsNaN(n):
		return "NaN"
	case math.IsInf(n, 1):
		return "Infinity"
	case math.IsInf(n, -1):
		return "-Infinity"
	case n == 0:
		return "0"
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// Normalize rewrites a non-integer numeric literal in the strict decimal
// form the expression grammars accept, so "5." becomes "5" and "1e3"
// becomes "1000". Other values, and numbers out of float64 range, are
// returned unchanged.
func Normalize(s string) string {
	if IsInt(s) || !IsNumeric(s) {
		return s
	}
	n, err := ParseNum(s)
	if err != nil || math.IsInf(n, 0) {
		return s
	}
	return FormatNum(n)
}

// Bool renders a Go boolean as a boolean literal.
func Bool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
