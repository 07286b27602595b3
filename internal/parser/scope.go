package parser

import (
	"strings"

	"github.com/kolkov/jlite/internal/diag"
	"github.com/kolkov/jlite/internal/lexer"
)

// Span locates a block in a line slice: the header line holding the
// opening brace and the line holding its closing brace.
type Span struct {
	Start int
	End   int
}

// Len returns the number of interior lines.
func (s Span) Len() int {
	return s.End - s.Start - 1
}

// Resolve finds the block whose header is lines[start]. Depth starts at 1
// on the header; every line ending in an opening brace increments it and
// every line consisting of a lone closing brace decrements it. The block
// ends where depth returns to 0. Running out of lines first is a
// MissingClosingBracket failure.
func Resolve(lines []lexer.Line, start int) (Span, error) {
	header := lines[start]
	if !opens(header) {
		return Span{}, diag.Syntax("Statement %s must open a block with {.", header.Text).At(header.Pos)
	}
	depth := 1
	for i := start + 1; i < len(lines); i++ {
		switch {
		case closes(lines[i]):
			depth--
			if depth == 0 {
				return Span{Start: start, End: i}, nil
			}
		case opens(lines[i]):
			depth++
		}
	}
	return Span{}, diag.MissingBracket().At(header.Pos)
}

func opens(l lexer.Line) bool {
	return strings.HasSuffix(l.Text, "{")
}

func closes(l lexer.Line) bool {
	return l.Text == "}"
}
