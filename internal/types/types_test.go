package types

import (
	"math"
	"testing"

	"github.com/kolkov/jlite/internal/token"
)

func TestTypeString(t *testing.T) {
	tests := []struct {
		typ  Type
		want string
	}{
		{Type{Base: Int}, "int"},
		{Type{Base: Double, Const: true}, "final double"},
		{Type{Base: Boolean}, "boolean"},
		{Type{Base: String, Const: true}, "final String"},
	}
	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestFromToken(t *testing.T) {
	typ, ok := FromToken(token.STRING, true)
	if !ok || typ.Base != String || !typ.Const {
		t.Errorf("FromToken(STRING, true) = %v, %v", typ, ok)
	}
	if _, ok := FromToken(token.FOR, false); ok {
		t.Error("FromToken(FOR) should fail")
	}
}

func TestAccepts(t *testing.T) {
	tests := []struct {
		name  string
		base  Base
		value string
		want  bool
	}{
		{"int", Int, "42", true},
		{"int negative", Int, "-7", true},
		{"int fraction", Int, "4.5", false},
		{"double int form", Double, "4", true},
		{"double fraction", Double, "4.25", true},
		{"double string", Double, `"4"`, false},
		{"boolean", Boolean, "true", true},
		{"boolean number", Boolean, "1", false},
		{"string", String, `"hello world"`, true},
		{"string bare", String, "hello", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := (Type{Base: tt.base}).Accepts(tt.value); got != tt.want {
				t.Errorf("Accepts(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestLiterals(t *testing.T) {
	if !IsLiteral("3.5") || !IsLiteral("false") || !IsLiteral(`"x"`) {
		t.Error("IsLiteral rejected a literal")
	}
	if IsLiteral("x") || IsLiteral("!true") {
		t.Error("IsLiteral accepted a non-literal")
	}
	if Unquote(`"abc"`) != "abc" || Unquote("12") != "12" {
		t.Error("Unquote misbehaved")
	}
	if Quote("a b") != `"a b"` {
		t.Error("Quote misbehaved")
	}
	if Concat(`"ab"`, `"cd"`) != `"abcd"` {
		t.Error("Concat misbehaved")
	}
	if !IsIdentifier("i") || IsIdentifier("2x") {
		t.Error("IsIdentifier misbehaved")
	}
}

func TestFormatNum(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{4, "4"},
		{2.5, "2.5"},
		{-3, "-3"},
		{0.30000000000000004, "0.30000000000000004"},
		{math.Copysign(0, -1), "0"},
		{math.Inf(1), "Infinity"},
	}
	for _, tt := range tests {
		if got := FormatNum(tt.in); got != tt.want {
			t.Errorf("FormatNum(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"5.", "5"},
		{".5", "0.5"},
		{"+5", "5"},
		{"1e3", "1000"},
		{"1.5e2", "150"},
		{"2.50", "2.5"},
		{"-7", "-7"},
		{"true", "true"},
		{`"1e3"`, `"1e3"`},
		{"1e400", "1e400"},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseNum(t *testing.T) {
	n, err := ParseNum("+2.5")
	if err != nil || n != 2.5 {
		t.Errorf("ParseNum(+2.5) = %v, %v", n, err)
	}
	if _, err := ParseNum("abc"); err == nil {
		t.Error("ParseNum(abc) should fail")
	}
}

func TestRegisterValue(t *testing.T) {
	r := Declared(Type{Base: Int})
	if _, ok := r.Value(); ok {
		t.Error("declared register should have no value")
	}
	r = r.With("5")
	if v, ok := r.Value(); !ok || v != "5" {
		t.Errorf("Value() = %q, %v", v, ok)
	}
	if r.Type.Base != Int {
		t.Error("With must keep the type")
	}
}

func TestStoreCloneIsIndependent(t *testing.T) {
	s := NewStore()
	s.Bind("x", Assigned(Type{Base: Int}, "1"))

	c := s.Clone()
	c.Bind("x", Assigned(Type{Base: Int}, "2"))
	c.Bind("y", Assigned(Type{Base: Int}, "3"))

	if v, _ := mustLookup(t, s, "x").Value(); v != "1" {
		t.Errorf("parent x = %q, want 1", v)
	}
	if s.Has("y") {
		t.Error("clone write leaked into parent")
	}
}

func TestStoreMergeInto(t *testing.T) {
	parent := NewStore()
	parent.Bind("x", Assigned(Type{Base: Int}, "1"))
	parent.Bind("s", Declared(Type{Base: String}))

	child := parent.Clone()
	child.Bind("x", Assigned(Type{Base: Int}, "10"))
	child.Bind("s", Assigned(Type{Base: String}, `"hi"`))
	child.Bind("local", Assigned(Type{Base: Boolean}, "true"))

	child.MergeInto(parent)

	if v, _ := mustLookup(t, parent, "x").Value(); v != "10" {
		t.Errorf("x = %q, want 10", v)
	}
	if v, ok := mustLookup(t, parent, "s").Value(); !ok || v != `"hi"` {
		t.Errorf("s = %q, %v", v, ok)
	}
	if parent.Has("local") {
		t.Error("block-local name leaked into parent")
	}
	if got := parent.Names(); len(got) != 2 || got[0] != "s" || got[1] != "x" {
		t.Errorf("Names() = %v", got)
	}
	if parent.Len() != 2 {
		t.Errorf("Len() = %d", parent.Len())
	}
}

func mustLookup(t *testing.T, s *Store, name string) Register {
	t.Helper()
	r, ok := s.Lookup(name)
	if !ok {
		t.Fatalf("%s not bound", name)
	}
	return r
}
