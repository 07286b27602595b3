// Package lexer splits jlite source into statement lines and words.
package lexer

import (
	"strings"

	"github.com/kolkov/jlite/internal/token"
)

// Line is one trimmed, non-empty source line with its words.
type Line struct {
	Pos   token.Position
	Text  string   // Trimmed source text
	Words []string // Words with the statement terminator clipped
}

// Keyword returns the line's first word, or "" for a line with no words.
func (l Line) Keyword() string {
	if len(l.Words) == 0 {
		return ""
	}
	return l.Words[0]
}

// Segment splits src into lines, dropping blank ones. Line numbers in the
// returned positions refer to the original source.
func Segment(src, filename string) []Line {
	var lines []Line
	for i, raw := range strings.Split(src, "\n") {
		text := strings.TrimSpace(raw)
		if text == "" {
			continue
		}
		lines = append(lines, NewLine(text, token.Position{Filename: filename, Line: i + 1}))
	}
	return lines
}

// NewLine builds a Line from trimmed text. A console-print line becomes the
// two words "print" and the full text, so its operand can be recovered with
// its original spacing.
func NewLine(text string, pos token.Position) Line {
	if IsPrint(text) {
		return Line{Pos: pos, Text: text, Words: []string{token.PRINT.String(), text}}
	}
	return Line{Pos: pos, Text: text, Words: Fields(ClipSemicolon(text))}
}

// IsPrint reports whether text is a console-print statement. Only the
// start of the line counts, so a string literal mentioning System.out
// does not make a print.
func IsPrint(text string) bool {
	return strings.HasPrefix(text, "System.out.print(") ||
		strings.HasPrefix(text, "System.out.println(") ||
		strings.HasPrefix(text, "println(") ||
		strings.HasPrefix(text, "print(")
}

// ClipSemicolon removes a trailing statement terminator and the space
// before it.
func ClipSemicolon(s string) string {
	return strings.TrimSpace(strings.TrimSuffix(s, ";"))
}

// Parenthesized returns the text between the first opening parenthesis in s
// and the parenthesis that closes it. Parentheses inside string literals do
// not count.
func Parenthesized(s string) (string, bool) {
	start := strings.IndexByte(s, '(')
	if start < 0 {
		return "", false
	}
	depth := 0
	inString := false
	for i := start; i < len(s); i++ {
		switch c := s[i]; {
		case c == '"':
			inString = !inString
		case inString:
		case c == '(':
			depth++
		case c == ')':
			depth--
			if depth == 0 {
				return strings.TrimSpace(s[start+1 : i]), true
			}
		}
	}
	return "", false
}

// Fields splits s into words at runs of whitespace. Whitespace inside a
// string literal belongs to the word, so "a  b" stays one word.
func Fields(s string) []string {
	l := New(s)
	var words []string
	for {
		tok := l.Scan()
		if tok.Value == "" {
			return words
		}
		words = append(words, tok.Value)
	}
}

// Token is a scanned word with its kind.
type Token struct {
	Type  token.Token
	Value string
}

// Lexer scans the words of one line.
type Lexer struct {
	src    string
	ch     byte // Current character (0 at end)
	offset int  // Offset of ch
}

// New creates a Lexer over src.
func New(src string) *Lexer {
	l := &Lexer{src: src, offset: -1}
	l.next()
	return l
}

func (l *Lexer) next() {
	l.offset++
	if l.offset < len(l.src) {
		l.ch = l.src[l.offset]
	} else {
		l.offset = len(l.src)
		l.ch = 0
	}
}

// Scan returns the next word. At the end of input the Value is empty.
func (l *Lexer) Scan() Token {
	for isSpace(l.ch) {
		l.next()
	}
	start := l.offset
	inString := false
	for l.ch != 0 && (inString || !isSpace(l.ch)) {
		if l.ch == '"' {
			inString = !inString
		}
		l.next()
	}
	word := l.src[start:l.offset]
	if word == "" {
		return Token{Type: token.ILLEGAL}
	}
	return Token{Type: token.Lookup(word), Value: word}
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' || ch == '\f' || ch == '\v'
}
