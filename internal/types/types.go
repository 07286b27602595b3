// Package types defines declared types, register values and the register
// store for jlite programs.
//
// Values are kept in their lexical form: an int is "42", a double "4.5",
// a boolean "true" and a String keeps its quote delimiters, "\"hi\"".
// Every value stored in a register validates against the register's type.
package types

import "github.com/kolkov/jlite/internal/token"

// Base is the primitive part of a declared type.
type Base uint8

const (
	Invalid Base = iota
	Int
	Double
	Boolean
	String
)

// String returns the source spelling of the base type.
func (b Base) String() string {
	switch b {
	case Int:
		return "int"
	case Double:
		return "double"
	case Boolean:
		return "boolean"
	case String:
		return "String"
	default:
		return "invalid"
	}
}

// Type is a declared type: a base type plus the constant modifier.
type Type struct {
	Base  Base
	Const bool
}

// String returns the declaration spelling, e.g. "final int".
func (t Type) String() string {
	if t.Const {
		return "final " + t.Base.String()
	}
	return t.Base.String()
}

// IsNumeric returns true for int and double types.
func (t Type) IsNumeric() bool {
	return t.Base == Int || t.Base == Double
}

// Accepts reports whether value's lexical form is valid for the type.
func (t Type) Accepts(value string) bool {
	switch t.Base {
	case Int:
		return IsInt(value)
	case Double:
		return IsNumeric(value)
	case Boolean:
		return IsBool(value)
	case String:
		return IsString(value)
	default:
		return false
	}
}

// FromToken maps a type keyword token to a Type.
// Returns false if tok is not one of int, double, boolean or String.
func FromToken(tok token.Token, constant bool) (Type, bool) {
	var b Base
	switch tok {
	case token.INT:
		b = Int
	case token.DOUBLE:
		b = Double
	case token.BOOLEAN:
		b = Boolean
	case token.STRING:
		b = String
	default:
		return Type{}, false
	}
	return Type{Base: b, Const: constant}, true
}
