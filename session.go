package jlite

import (
	"strings"

	"github.com/kolkov/jlite/internal/lexer"
	"github.com/kolkov/jlite/internal/types"
)

// Session runs successive fragments against one set of variables, as an
// interactive shell does. A fragment that fails leaves the variables as
// they were before it ran.
type Session struct {
	store  *types.Store
	config Config
	line   int // Lines consumed so far, for diagnostic positions
}

// NewSession creates a Session with no variables bound.
// If config is nil, default configuration is used.
func NewSession(config *Config) *Session {
	s := &Session{store: types.NewStore()}
	if config != nil {
		s.config = *config
	}
	s.config.applyDefaults()
	return s
}

// Run executes a fragment and returns its printed entries.
func (s *Session) Run(source string) ([]string, error) {
	lines := lexer.Segment(source, "")
	for i := range lines {
		lines[i].Pos.Line += s.line
	}
	s.line += strings.Count(source, "\n") + 1

	store := s.store.Clone()
	out, err := runLines(lines, store, &s.config)
	if err != nil {
		return nil, err
	}
	s.store = store
	if err := writeOutput(&s.config, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Variable is a bound name as shown by an interactive shell.
type Variable struct {
	Name  string
	Type  string
	Value string // Empty if the variable has no value yet
	Set   bool
}

// Variables returns the bound variables sorted by name.
func (s *Session) Variables() []Variable {
	var vars []Variable
	for _, name := range s.store.Names() {
		r, _ := s.store.Lookup(name)
		v, set := r.Value()
		vars = append(vars, Variable{Name: name, Type: r.Type.String(), Value: v, Set: set})
	}
	return vars
}

// Reset discards all variables.
func (s *Session) Reset() {
	s.store = types.NewStore()
	s.line = 0
}
