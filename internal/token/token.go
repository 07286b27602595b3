// Package token defines the statement-level vocabulary of the jlite language.
package token

// Token represents a lexical token type.
type Token uint8

const (
	// Special tokens
	ILLEGAL Token = iota // <illegal>
	NAME                 // name
	LITERAL              // literal

	// Operators and delimiters
	operatorStart
	ADD        // +
	ADD_ASSIGN // +=
	SUB        // -
	SUB_ASSIGN // -=
	MUL        // *
	MUL_ASSIGN // *=
	DIV        // /
	DIV_ASSIGN // /=

	ASSIGN     // =
	EQUALS     // ==
	NOT_EQUALS // !=
	LESS       // <
	LTE        // <=
	GREATER    // >
	GTE        // >=

	AND // &&
	OR  // ||
	NOT // !

	INCR // ++
	DECR // --

	LBRACE    // {
	RBRACE    // }
	SEMICOLON // ;
	operatorEnd

	// Keywords
	keywordStart
	FINAL   // final
	INT     // int
	DOUBLE  // double
	BOOLEAN // boolean
	STRING  // String
	FOR     // for
	IF      // if
	ELSE    // else
	PRINT   // print
	keywordEnd
)

var names = [...]string{
	ILLEGAL:    "<illegal>",
	NAME:       "name",
	LITERAL:    "literal",
	ADD:        "+",
	ADD_ASSIGN: "+=",
	SUB:        "-",
	SUB_ASSIGN: "-=",
	MUL:        "*",
	MUL_ASSIGN: "*=",
	DIV:        "/",
	DIV_ASSIGN: "/=",
	ASSIGN:     "=",
	EQUALS:     "==",
	NOT_EQUALS: "!=",
	LESS:       "<",
	LTE:        "<=",
	GREATER:    ">",
	GTE:        ">=",
	AND:        "&&",
	OR:         "||",
	NOT:        "!",
	INCR:       "++",
	DECR:       "--",
	LBRACE:     "{",
	RBRACE:     "}",
	SEMICOLON:  ";",
	FINAL:      "final",
	INT:        "int",
	DOUBLE:     "double",
	BOOLEAN:    "boolean",
	STRING:     "String",
	FOR:        "for",
	IF:         "if",
	ELSE:       "else",
	PRINT:      "print",
}

// String returns the source spelling of the token.
func (t Token) String() string {
	if int(t) < len(names) && names[t] != "" {
		return names[t]
	}
	return "<unknown>"
}

// IsOperator returns true if the token is an operator.
func (t Token) IsOperator() bool {
	return t > operatorStart && t < operatorEnd
}

// IsKeyword returns true if the token is a keyword.
func (t Token) IsKeyword() bool {
	return t > keywordStart && t < keywordEnd
}

// IsType returns true if the token names a declarable type.
func (t Token) IsType() bool {
	return t == INT || t == DOUBLE || t == BOOLEAN || t == STRING
}

// IsArith returns true for the four arithmetic operators.
func (t Token) IsArith() bool {
	return t == ADD || t == SUB || t == MUL || t == DIV
}

// IsRelational returns true for comparison operators.
func (t Token) IsRelational() bool {
	switch t {
	case EQUALS, NOT_EQUALS, LESS, LTE, GREATER, GTE:
		return true
	}
	return false
}

// IsLogical returns true for && and ||.
func (t Token) IsLogical() bool {
	return t == AND || t == OR
}

// IsCompoundAssign returns true for +=, -=, *= and /=.
func (t Token) IsCompoundAssign() bool {
	switch t {
	case ADD_ASSIGN, SUB_ASSIGN, MUL_ASSIGN, DIV_ASSIGN:
		return true
	}
	return false
}

// keywords maps keyword strings to their token types.
var keywords = map[string]Token{
	"final":   FINAL,
	"int":     INT,
	"double":  DOUBLE,
	"boolean": BOOLEAN,
	"String":  STRING,
	"for":     FOR,
	"if":      IF,
	"else":    ELSE,
	"print":   PRINT,
}

// operators maps operator spellings to their token types.
var operators = map[string]Token{
	"+":  ADD,
	"+=": ADD_ASSIGN,
	"-":  SUB,
	"-=": SUB_ASSIGN,
	"*":  MUL,
	"*=": MUL_ASSIGN,
	"/":  DIV,
	"/=": DIV_ASSIGN,
	"=":  ASSIGN,
	"==": EQUALS,
	"!=": NOT_EQUALS,
	"<":  LESS,
	"<=": LTE,
	">":  GREATER,
	">=": GTE,
	"&&": AND,
	"||": OR,
	"!":  NOT,
	"++": INCR,
	"--": DECR,
	"{":  LBRACE,
	"}":  RBRACE,
	";":  SEMICOLON,
}

// LookupKeyword returns the token type for a keyword, or ILLEGAL if not found.
func LookupKeyword(word string) Token {
	if tok, ok := keywords[word]; ok {
		return tok
	}
	return ILLEGAL
}

// LookupOperator returns the token type for an operator word, or ILLEGAL if
// the word is not an operator.
func LookupOperator(word string) Token {
	if tok, ok := operators[word]; ok {
		return tok
	}
	return ILLEGAL
}

// Lookup classifies a whole word: keyword, operator, or NAME.
func Lookup(word string) Token {
	if tok := LookupKeyword(word); tok != ILLEGAL {
		return tok
	}
	if tok := LookupOperator(word); tok != ILLEGAL {
		return tok
	}
	return NAME
}
