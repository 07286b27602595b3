package token

import "fmt"

// Position represents a statement position in source code.
type Position struct {
	// Filename is the name of the source file (optional).
	Filename string
	// Line number (1-indexed) in the original, unsegmented source.
	Line int
}

// String returns a string representation of the position.
// Format: "filename:line" or "line" if filename is empty.
func (p Position) String() string {
	if p.Filename != "" {
		return fmt.Sprintf("%s:%d", p.Filename, p.Line)
	}
	return fmt.Sprintf("%d", p.Line)
}

// IsValid returns true if the position is valid (line > 0).
func (p Position) IsValid() bool {
	return p.Line > 0
}

// NoPos is a zero Position used when position is unknown.
var NoPos = Position{}
