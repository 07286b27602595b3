package types

import "sort"

// Register is a named variable binding: its declared type and, once
// assigned, its value.
type Register struct {
	Type  Type
	value string
	set   bool
}

// Declared returns a register of type t that holds no value yet.
func Declared(t Type) Register {
	return Register{Type: t}
}

// Assigned returns a register of type t holding value.
func Assigned(t Type, value string) Register {
	return Register{Type: t, value: value, set: true}
}

// Value returns the register's value and whether it has one.
func (r Register) Value() (string, bool) {
	return r.value, r.set
}

// With returns a copy of r holding value.
func (r Register) With(value string) Register {
	r.value = value
	r.set = true
	return r
}

// Store maps variable names to registers for one lexical scope.
type Store struct {
	regs map[string]Register
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{regs: make(map[string]Register)}
}

// Lookup returns the register bound to name, if any.
func (s *Store) Lookup(name string) (Register, bool) {
	r, ok := s.regs[name]
	return r, ok
}

// Has reports whether name is bound.
func (s *Store) Has(name string) bool {
	_, ok := s.regs[name]
	return ok
}

// Bind sets or replaces the register bound to name.
func (s *Store) Bind(name string, r Register) {
	s.regs[name] = r
}

// Len returns the number of bound names.
func (s *Store) Len() int {
	return len(s.regs)
}

// Names returns the bound names in sorted order.
func (s *Store) Names() []string {
	names := make([]string, 0, len(s.regs))
	for name := range s.regs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clone returns an independent copy of the store. Registers are values,
// so writes to the clone never reach s.
func (s *Store) Clone() *Store {
	c := &Store{regs: make(map[string]Register, len(s.regs))}
	for name, r := range s.regs {
		c.regs[name] = r
	}
	return c
}

// MergeInto refreshes every name already bound in parent with its final
// binding in s. Names bound only in s are block-local and are dropped.
func (s *Store) MergeInto(parent *Store) {
	for name := range parent.regs {
		if r, ok := s.regs[name]; ok {
			parent.regs[name] = r
		}
	}
}
