package parser

import (
	"github.com/raymyers/sharpen/pkg/ast"
	"github.com/raymyers/sharpen/pkg/lexer"
)

// BindingPower is the precedence of a token in a given position. Higher binds
// tighter.
type BindingPower int

const (
	BPDefault BindingPower = iota
	BPComma
	BPAssignment
	BPLogical
	BPRelational
	BPAdditive
	BPMultiplicative
	BPUnary
	BPCall
	BPMember
	BPPrimary
)

func (bp BindingPower) String() string {
	names := []string{"default", "comma", "assignment", "logical", "relational",
		"additive", "multiplicative", "unary", "call", "member", "primary"}
	if int(bp) < len(names) {
		return names[bp]
	}
	return "?"
}

// nudFn parses a construct that starts at the current token. bp is the token's
// prefix binding power.
type nudFn func(p *Parser, bp BindingPower) (ast.Expr, error)

// ledFn continues left with the operator at the current token. bp is the
// operator's infix binding power.
type ledFn func(p *Parser, left ast.Expr, bp BindingPower) (ast.Expr, error)

// lookupTable holds the prefix and infix rules per token type. Prefix and infix
// binding powers live in separate maps so a token such as '-' can be a
// low-precedence infix operator and a high-precedence prefix operator.
type lookupTable struct {
	nudLu    map[lexer.TokenType]nudFn
	ledLu    map[lexer.TokenType]ledFn
	prefixBP map[lexer.TokenType]BindingPower
	infixBP  map[lexer.TokenType]BindingPower
	stmtLu   map[lexer.TokenType]bool // prefix rules that end an expression
}

// lookups is built once and only read afterwards; every Parser shares it.
var lookups *lookupTable

func init() {
	lookups = newLookupTable()
}

func (t *lookupTable) nud(kind lexer.TokenType, bp BindingPower, fn nudFn) {
	t.prefixBP[kind] = bp
	t.nudLu[kind] = fn
}

func (t *lookupTable) led(kind lexer.TokenType, bp BindingPower, fn ledFn) {
	t.infixBP[kind] = bp
	t.ledLu[kind] = fn
}

// stmt registers a construct whose node is complete once its handler returns;
// no infix rule is applied to it.
func (t *lookupTable) stmt(kind lexer.TokenType, fn nudFn) {
	t.nud(kind, BPDefault, fn)
	t.stmtLu[kind] = true
}

// infixPower is BPDefault for tokens without an infix role.
func (t *lookupTable) infixPower(kind lexer.TokenType) BindingPower {
	return t.infixBP[kind]
}

func (t *lookupTable) prefixPower(kind lexer.TokenType) BindingPower {
	return t.prefixBP[kind]
}

func newLookupTable() *lookupTable {
	t := &lookupTable{
		nudLu:    make(map[lexer.TokenType]nudFn),
		ledLu:    make(map[lexer.TokenType]ledFn),
		prefixBP: make(map[lexer.TokenType]BindingPower),
		infixBP:  make(map[lexer.TokenType]BindingPower),
		stmtLu:   make(map[lexer.TokenType]bool),
	}

	// EOF has the lowest binding power so every loop stops on it.
	t.infixBP[lexer.TokenEOF] = BPDefault

	// Assignment (right-associative)
	t.led(lexer.TokenAssign, BPAssignment, parseAssignment)
	t.led(lexer.TokenPlusAssign, BPAssignment, parseAssignment)
	t.led(lexer.TokenMinusAssign, BPAssignment, parseAssignment)

	// Logical
	t.led(lexer.TokenAnd, BPLogical, parseBinary)
	t.led(lexer.TokenOr, BPLogical, parseBinary)
	t.led(lexer.TokenDotDot, BPLogical, parseRange)

	// Relational
	t.led(lexer.TokenLt, BPRelational, parseBinary)
	t.led(lexer.TokenLe, BPRelational, parseBinary)
	t.led(lexer.TokenGt, BPRelational, parseBinary)
	t.led(lexer.TokenGe, BPRelational, parseBinary)
	t.led(lexer.TokenEq, BPRelational, parseBinary)
	t.led(lexer.TokenNe, BPRelational, parseBinary)

	// Additive and multiplicative
	t.led(lexer.TokenPlus, BPAdditive, parseBinary)
	t.led(lexer.TokenMinus, BPAdditive, parseBinary)
	t.led(lexer.TokenStar, BPMultiplicative, parseBinary)
	t.led(lexer.TokenSlash, BPMultiplicative, parseBinary)
	t.led(lexer.TokenPercent, BPMultiplicative, parseBinary)

	// Call, index, member, postfix and class instantiation
	t.led(lexer.TokenLParen, BPCall, parseCall)
	t.led(lexer.TokenLBracket, BPCall, parseIndex)
	t.led(lexer.TokenLBrace, BPCall, parseClassInstantiation)
	t.led(lexer.TokenIncrement, BPCall, parsePostfix)
	t.led(lexer.TokenDecrement, BPCall, parsePostfix)
	t.led(lexer.TokenDot, BPMember, parseMember)

	// Literals
	t.nud(lexer.TokenNumber, BPPrimary, parseNumber)
	t.nud(lexer.TokenString, BPPrimary, parseString)
	t.nud(lexer.TokenIdent, BPPrimary, parseIdentifier)

	// Prefix operators; these keep their infix binding power above.
	t.nud(lexer.TokenMinus, BPUnary, parsePrefix)
	t.nud(lexer.TokenNot, BPUnary, parsePrefix)
	t.nud(lexer.TokenIncrement, BPUnary, parsePrefix)
	t.nud(lexer.TokenDecrement, BPUnary, parsePrefix)

	t.nud(lexer.TokenLParen, BPDefault, parseGrouping)
	t.nud(lexer.TokenLBrace, BPDefault, parseArrayLiteral)
	t.nud(lexer.TokenSemicolon, BPDefault, parseKeyword)

	// Declarations continue into '=' through the assignment rule.
	t.nud(lexer.TokenLet, BPDefault, parseVariableDeclaration)
	t.nud(lexer.TokenConst, BPDefault, parseVariableDeclaration)

	t.stmt(lexer.TokenFn, parseFunction)
	t.stmt(lexer.TokenClass, parseClass)
	t.stmt(lexer.TokenIf, parseIf)
	t.stmt(lexer.TokenWhile, parseWhile)
	t.stmt(lexer.TokenFor, parseFor)
	t.stmt(lexer.TokenReturn, parseReturn)

	return t
}
