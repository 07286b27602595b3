package jlite

import (
	"github.com/oarkflow/json"
)

// Result is the outcome of a run: either printed entries or one
// diagnostic, never both.
type Result struct {
	Output     []string
	Diagnostic *Diagnostic
}

// OK reports whether the run succeeded.
func (r Result) OK() bool {
	return r.Diagnostic == nil
}

// Entries returns the result in the shape a host UI renders: the printed
// entries as strings, or a single diagnostic record.
func (r Result) Entries() []any {
	if r.Diagnostic != nil {
		return []any{r.Diagnostic}
	}
	entries := make([]any, len(r.Output))
	for i, s := range r.Output {
		entries[i] = s
	}
	return entries
}

// JSON encodes Entries: ["0","1"] on success, or
// [{"kind":"divide by zero","message":"...","line":3}] on failure.
func (r Result) JSON() ([]byte, error) {
	return json.Marshal(r.Entries())
}
