// Package parser decodes jlite source lines into instructions.
//
// Decoding is incremental: Next decodes one statement, consuming a whole
// block for for/if, and the caller executes it before asking for the next.
// A statement's meaning depends on the names bound at that point (x = 1
// assigns only if x exists), so the decoder consults the caller's live
// register scope.
package parser

import (
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/kolkov/jlite/internal/ast"
	"github.com/kolkov/jlite/internal/diag"
	"github.com/kolkov/jlite/internal/lexer"
	"github.com/kolkov/jlite/internal/token"
	"github.com/kolkov/jlite/internal/types"
)

// Scope reports the registers bound where a statement is decoded.
type Scope interface {
	Lookup(name string) (types.Register, bool)
	Has(name string) bool
}

// Parser decodes a sequence of source lines.
type Parser struct {
	lines []lexer.Line
	pos   int // Index of the next unconsumed line
	scope Scope
	log   zerolog.Logger
}

// New creates a Parser over lines, resolving names against scope.
func New(lines []lexer.Line, scope Scope, log zerolog.Logger) *Parser {
	return &Parser{lines: lines, scope: scope, log: log}
}

// More reports whether unconsumed lines remain.
func (p *Parser) More() bool {
	return p.pos < len(p.lines)
}

// Next decodes the next statement. It returns io.EOF when all lines have
// been consumed. Errors carry the position of the offending line.
func (p *Parser) Next() (ast.Instruction, error) {
	for p.More() && len(p.lines[p.pos].Words) == 0 {
		p.pos++ // empty statement
	}
	if !p.More() {
		return nil, io.EOF
	}
	line := p.lines[p.pos]
	in, err := p.parseStmt(line)
	if err != nil {
		if d, ok := diag.As(err); ok {
			return nil, d.At(line.Pos)
		}
		return nil, err
	}
	p.log.Trace().Stringer("pos", line.Pos).Str("instr", in.String()).Msg("decoded")
	return in, nil
}

// ParseStatement decodes a single statement, such as a for-loop
// initializer or step, against scope.
func ParseStatement(text string, pos token.Position, scope Scope) (ast.Instruction, error) {
	p := New([]lexer.Line{lexer.NewLine(spaceOperator(text), pos)}, scope, zerolog.Nop())
	return p.Next()
}

// spaceOperator separates a leading assignment operator glued to its
// operands, so i+=2 reads as i += 2 and i++ stays one word.
func spaceOperator(s string) string {
	s = strings.TrimSpace(s)
	if strings.ContainsAny(s, " \t") {
		return s
	}
	for _, op := range []string{"+=", "-=", "*=", "/=", "="} {
		if i := strings.Index(s, op); i > 0 {
			return s[:i] + " " + op + " " + s[i+len(op):]
		}
	}
	return s
}

// -----------------------------------------------------------------------------
// Statements
// -----------------------------------------------------------------------------

func (p *Parser) parseStmt(line lexer.Line) (ast.Instruction, error) {
	words := line.Words
	constant := false
	if line.Keyword() == token.FINAL.String() {
		constant = true
		words = words[1:]
		if len(words) == 0 {
			return nil, diag.Syntax("Statement %s is incomplete.", line.Text)
		}
	}
	keyword := words[0]
	base := ast.Base{StartPos: line.Pos}

	if _, ok := p.scope.Lookup(keyword); ok {
		if constant {
			return nil, diag.Syntax("Statement %s redeclares %s.", line.Text, keyword)
		}
		p.pos++
		return p.parseVariable(base, line, words)
	}

	tok := token.LookupKeyword(keyword)
	if constant && !tok.IsType() {
		return nil, diag.Syntax("Statement %s must declare a type after final.", line.Text)
	}
	switch {
	case tok.IsType():
		p.pos++
		typ, _ := types.FromToken(tok, constant)
		return p.parseDecl(base, line, words, typ)
	case tok == token.FOR:
		return p.parseFor(base, line)
	case tok == token.IF:
		return p.parseIf(base, line)
	case tok == token.ELSE:
		return nil, diag.Syntax("Statement %s has no matching if.", line.Text)
	case tok == token.PRINT:
		p.pos++
		operand, ok := lexer.Parenthesized(line.Text)
		if !ok {
			return nil, diag.Syntax("Statement %s has unbalanced parentheses.", line.Text)
		}
		return &ast.Print{Base: base, Operand: operand}, nil
	case keyword == "}":
		return nil, diag.ClosingBracket()
	}

	if len(words) == 1 {
		if in := p.parseIncrement(base, keyword); in != nil {
			p.pos++
			return in, nil
		}
	}
	return nil, diag.Uninitialized(keyword)
}

// parseIncrement decodes x++ or x-- written as one word on a bound name.
func (p *Parser) parseIncrement(base ast.Base, word string) ast.Instruction {
	kind := ast.Add
	name, ok := strings.CutSuffix(word, "++")
	if !ok {
		kind = ast.Sub
		name, ok = strings.CutSuffix(word, "--")
	}
	if !ok {
		return nil
	}
	if _, bound := p.scope.Lookup(name); !bound {
		return nil
	}
	return &ast.MathOp{Base: base, Kind: kind, Dest: name, Lhs: name, Rhs: []string{"1"}}
}

// parseDecl decodes a declaration by its word count:
//   - int x;          bare declaration
//   - int x = 4;      value initializer
//   - int x = y * 2;  expression initializer
func (p *Parser) parseDecl(base ast.Base, line lexer.Line, words []string, typ types.Type) (ast.Instruction, error) {
	if len(words) < 2 || !types.IsIdentifier(words[1]) || token.Lookup(words[1]).IsKeyword() {
		return nil, diag.Syntax("Statement %s does not declare a valid name.", line.Text)
	}
	name := words[1]
	if p.scope.Has(name) {
		return nil, diag.Duplicate(name)
	}
	switch {
	case len(words) == 2:
		return &ast.LoadWord{Base: base, Target: name, Type: &typ}, nil
	case len(words) >= 4 && words[2] == "=":
		return &ast.LoadWord{Base: base, Target: name, Type: &typ, Value: words[3:]}, nil
	default:
		return nil, diag.Syntax("Statement %s is not a valid declaration.", line.Text)
	}
}

// parseVariable decodes a statement that starts with a bound name:
// assignment, compound assignment, ++ or --.
func (p *Parser) parseVariable(base ast.Base, line lexer.Line, words []string) (ast.Instruction, error) {
	name := words[0]
	if len(words) == 2 {
		switch words[1] {
		case "++":
			return &ast.MathOp{Base: base, Kind: ast.Add, Dest: name, Lhs: name, Rhs: []string{"1"}}, nil
		case "--":
			return &ast.MathOp{Base: base, Kind: ast.Sub, Dest: name, Lhs: name, Rhs: []string{"1"}}, nil
		}
	}
	if len(words) < 3 {
		return nil, diag.Syntax("Statement %s is incomplete.", line.Text)
	}
	rhs := words[2:]
	op := token.LookupOperator(words[1])
	switch {
	case op == token.ASSIGN:
		return &ast.LoadWord{Base: base, Target: name, Value: rhs}, nil
	case op == token.ADD_ASSIGN && p.isString(name):
		value := append([]string{name, "+"}, rhs...)
		return &ast.LoadWord{Base: base, Target: name, Value: value}, nil
	case op.IsCompoundAssign():
		return &ast.MathOp{Base: base, Kind: compoundKinds[op], Dest: name, Lhs: name, Rhs: rhs}, nil
	}
	return nil, diag.Syntax("Statement %s is not a valid assignment.", line.Text)
}

var compoundKinds = map[token.Token]ast.MathKind{
	token.ADD_ASSIGN: ast.Add,
	token.SUB_ASSIGN: ast.Sub,
	token.MUL_ASSIGN: ast.Mult,
	token.DIV_ASSIGN: ast.Div,
}

func (p *Parser) isString(name string) bool {
	r, _ := p.scope.Lookup(name)
	return r.Type.Base == types.String
}

// -----------------------------------------------------------------------------
// Blocks
// -----------------------------------------------------------------------------

// block consumes the block headed by the current line and returns its
// interior lines.
func (p *Parser) block() (ast.Block, error) {
	span, err := Resolve(p.lines, p.pos)
	if err != nil {
		return ast.Block{}, err
	}
	p.pos = span.End + 1
	return ast.Block{Lines: p.lines[span.Start+1 : span.End]}, nil
}

func condition(line lexer.Line) (string, error) {
	cond, ok := lexer.Parenthesized(line.Text)
	if !ok {
		return "", diag.Syntax("Statement %s has no parenthesized condition.", line.Text).At(line.Pos)
	}
	return cond, nil
}

func (p *Parser) parseFor(base ast.Base, line lexer.Line) (ast.Instruction, error) {
	header, err := condition(line)
	if err != nil {
		return nil, err
	}
	parts := strings.Split(header, ";")
	if len(parts) != 3 {
		return nil, diag.Syntax("Statement %s needs an initializer, a test and a step.", line.Text)
	}
	init := strings.TrimSpace(parts[0])
	if init == "" {
		return nil, diag.Syntax("Statement %s: empty for-loop initializer is not supported.", line.Text)
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}
	return &ast.For{
		Base: base,
		Init: init,
		Test: strings.TrimSpace(parts[1]),
		Step: strings.TrimSpace(parts[2]),
		Body: body,
	}, nil
}

// parseIf consumes an if block and every else-if/else block chained
// directly after it.
func (p *Parser) parseIf(base ast.Base, line lexer.Line) (ast.Instruction, error) {
	cond, err := condition(line)
	if err != nil {
		return nil, err
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}
	in := &ast.If{Base: base, Cond: cond, Body: body}

	for p.More() && p.lines[p.pos].Keyword() == token.ELSE.String() {
		next := p.lines[p.pos]
		branch := ast.Base{StartPos: next.Pos}
		if len(next.Words) > 1 && next.Words[1] == token.IF.String() {
			cond, err := condition(next)
			if err != nil {
				return nil, err
			}
			body, err := p.block()
			if err != nil {
				return nil, err
			}
			in.Chain = append(in.Chain, &ast.ElseIf{Base: branch, Cond: cond, Body: body})
			continue
		}
		body, err := p.block()
		if err != nil {
			return nil, err
		}
		in.Chain = append(in.Chain, &ast.Else{Base: branch, Body: body})
		break
	}
	return in, nil
}
