// Package parser implements a Pratt (top-down operator precedence) parser.
//
// Every token type may carry a prefix rule, used when the token starts an
// expression, and an infix rule, used when it follows an already parsed left
// operand. Declarations and control constructs are prefix rules too, so a
// program is parsed as a sequence of expressions.
package parser

import (
	"fmt"

	"github.com/raymyers/sharpen/pkg/ast"
	"github.com/raymyers/sharpen/pkg/lexer"
)

// ParseErrorKind classifies a ParseError
type ParseErrorKind int

const (
	MissingPrefixHandler ParseErrorKind = iota
	MissingInfixHandler
	UnexpectedToken
)

func (k ParseErrorKind) String() string {
	switch k {
	case MissingPrefixHandler:
		return "missing prefix handler"
	case MissingInfixHandler:
		return "missing infix handler"
	case UnexpectedToken:
		return "unexpected token"
	}
	return "?"
}

// ParseError is the first fault found while parsing. Parsing stops on it.
type ParseError struct {
	Kind     ParseErrorKind
	Token    lexer.Token
	Pos      int             // index of Token in the token sequence
	Expected lexer.TokenType // set for UnexpectedToken
	Msg      string          // optional detail
}

func (e *ParseError) Error() string {
	var msg string
	switch e.Kind {
	case MissingPrefixHandler:
		msg = fmt.Sprintf("no prefix rule for token kind %s at position %d", e.Token.Type, e.Pos)
	case MissingInfixHandler:
		msg = fmt.Sprintf("no infix rule for token kind %s at position %d", e.Token.Type, e.Pos)
	default:
		msg = fmt.Sprintf("expected %s, got %s", e.Expected, e.Token.Type)
	}
	if e.Msg != "" {
		msg += ": " + e.Msg
	}
	return fmt.Sprintf("line %d: %s", e.Token.Line, msg)
}

// Option configures a Parser
type Option func(*Parser)

// WithTracer reports every rule invocation to t
func WithTracer(t Tracer) Option {
	return func(p *Parser) {
		if t != nil {
			p.tracer = t
		}
	}
}

// Parser consumes a token sequence through an advancing cursor
type Parser struct {
	tokens []lexer.Token
	pos    int
	table  *lookupTable
	tracer Tracer
	// noInstantiation is set while parsing an if/while condition or a for
	// target, where '{' opens the body instead of a class instantiation.
	noInstantiation bool
}

// New creates a Parser over tokens. A missing trailing EOF is added.
func New(tokens []lexer.Token, opts ...Option) *Parser {
	if len(tokens) == 0 || tokens[len(tokens)-1].Type != lexer.TokenEOF {
		line := 1
		if len(tokens) > 0 {
			line = tokens[len(tokens)-1].Line
		}
		tokens = append(tokens[:len(tokens):len(tokens)], lexer.Token{Type: lexer.TokenEOF, Line: line})
	}
	p := &Parser{
		tokens: tokens,
		table:  lookups,
		tracer: NopTracer{},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse parses a complete program
func Parse(tokens []lexer.Token, opts ...Option) (*ast.Program, error) {
	return New(tokens, opts...).ParseProgram()
}

// ParseProgram parses top-level nodes until EOF
func (p *Parser) ParseProgram() (*ast.Program, error) {
	prog := &ast.Program{}
	for !p.curTokenIs(lexer.TokenEOF) {
		expr, err := p.ParseExpression(BPDefault)
		if err != nil {
			return nil, err
		}
		prog.Body = append(prog.Body, expr)
	}
	return prog, nil
}

// ParseExpression parses an expression whose infix operators bind tighter than bp.
func (p *Parser) ParseExpression(bp BindingPower) (ast.Expr, error) {
	tok := p.curToken()
	nud, ok := p.table.nudLu[tok.Type]
	if !ok {
		return nil, p.errorAt(MissingPrefixHandler, lexer.TokenEOF, "")
	}
	p.tracer.Tracef("nud %s %q line %d (bp=%s)", tok.Type, tok.Literal, tok.Line, bp)
	left, err := nud(p, p.table.prefixPower(tok.Type))
	if err != nil {
		return nil, err
	}
	if p.table.stmtLu[tok.Type] {
		return left, nil
	}

	for !p.curTokenIs(lexer.TokenEOF) && p.infixPower(p.curToken().Type) > bp {
		op := p.curToken()
		led, ok := p.table.ledLu[op.Type]
		if !ok {
			return nil, p.errorAt(MissingInfixHandler, lexer.TokenEOF, "")
		}
		p.tracer.Tracef("led %s line %d (bp=%s)", op.Type, op.Line, bp)
		left, err = led(p, left, p.table.infixPower(op.Type))
		if err != nil {
			return nil, err
		}
	}
	return left, nil
}

func (p *Parser) infixPower(kind lexer.TokenType) BindingPower {
	if kind == lexer.TokenLBrace && p.noInstantiation {
		return BPDefault
	}
	return p.table.infixPower(kind)
}

// restrictBraces sets the class instantiation restriction and returns a func
// restoring the previous setting.
func (p *Parser) restrictBraces(restrict bool) func() {
	saved := p.noInstantiation
	p.noInstantiation = restrict
	return func() { p.noInstantiation = saved }
}

func (p *Parser) curToken() lexer.Token {
	if p.pos >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.pos]
}

func (p *Parser) curTokenIs(t lexer.TokenType) bool {
	return p.curToken().Type == t
}

// nextToken returns the current token and advances past it. The cursor never
// moves beyond EOF.
func (p *Parser) nextToken() lexer.Token {
	tok := p.curToken()
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return tok
}

// expect advances past a token of type t or fails with UnexpectedToken
func (p *Parser) expect(t lexer.TokenType) (lexer.Token, error) {
	if !p.curTokenIs(t) {
		return p.curToken(), p.errorAt(UnexpectedToken, t, "")
	}
	return p.nextToken(), nil
}

func (p *Parser) errorAt(kind ParseErrorKind, expected lexer.TokenType, msg string) *ParseError {
	return &ParseError{
		Kind:     kind,
		Token:    p.curToken(),
		Pos:      p.pos,
		Expected: expected,
		Msg:      msg,
	}
}
