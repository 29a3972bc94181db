// Package lexer turns source text into a token sequence.
package lexer

import (
	"fmt"
	"strings"
)

// pattern is a fixed punctuation or operator spelling.
type pattern struct {
	text string
	typ  TokenType
}

// patterns is tried in order; every multi-character spelling comes before its
// single-character prefix.
var patterns = []pattern{
	{"\n", TokenNewline},
	{"\t", TokenTab},
	{" ", TokenWhitespace},
	{"\r", TokenWhitespace},
	{"[", TokenLBracket},
	{"]", TokenRBracket},
	{"{", TokenLBrace},
	{"}", TokenRBrace},
	{"(", TokenLParen},
	{")", TokenRParen},
	{"==", TokenEq},
	{"!=", TokenNe},
	{"=", TokenAssign},
	{"->", TokenArrow},
	{"!", TokenNot},
	{"<=", TokenLe},
	{"<", TokenLt},
	{">=", TokenGe},
	{">", TokenGt},
	{"||", TokenOr},
	{"|", TokenPipe},
	{"&&", TokenAnd},
	{"&", TokenAmpersand},
	{"..", TokenDotDot},
	{".", TokenDot},
	{";", TokenSemicolon},
	{":", TokenColon},
	{"?", TokenQuestion},
	{",", TokenComma},
	{"++", TokenIncrement},
	{"--", TokenDecrement},
	{"+=", TokenPlusAssign},
	{"-=", TokenMinusAssign},
	{"+", TokenPlus},
	{"-", TokenMinus},
	{"/", TokenSlash},
	{"*", TokenStar},
	{"%", TokenPercent},
}

// LexError reports that no rule matched at some position of the input.
type LexError struct {
	Line      int
	Remainder string // unconsumed input
	Msg       string
}

func (e *LexError) Error() string {
	rest := e.Remainder
	if len(rest) > 20 {
		rest = rest[:20] + "..."
	}
	return fmt.Sprintf("line %d: %s near %q", e.Line, e.Msg, rest)
}

// Lexer tokenizes source code
type Lexer struct {
	input    string
	pos      int // current position in input
	line     int
	suppress map[TokenType]bool
	tokens   []Token
}

// New creates a new Lexer for the given input. Tokens of the suppressed types are
// scanned but never emitted.
func New(input string, suppress ...TokenType) *Lexer {
	l := &Lexer{input: input, line: 1, suppress: make(map[TokenType]bool)}
	for _, t := range suppress {
		l.suppress[t] = true
	}
	return l
}

// Tokenize lexes the whole input. The result always ends with a single EOF token.
func Tokenize(input string, suppress ...TokenType) ([]Token, error) {
	return New(input, suppress...).Tokenize()
}

// Tokenize scans the remaining input and returns the token sequence.
func (l *Lexer) Tokenize() ([]Token, error) {
	for !l.eof() {
		ch := l.input[l.pos]
		switch {
		case isDigit(ch):
			l.readNumber()
		case strings.HasPrefix(l.input[l.pos:], "//"):
			l.readComment()
		case ch == '"' || (ch == '$' && l.peekChar() == '"'):
			if err := l.readString(); err != nil {
				return nil, err
			}
		case isLetter(ch):
			l.readIdentifier()
		default:
			if !l.readPattern() {
				return nil, l.errorf("unrecognized token")
			}
		}
	}
	// EOF is never suppressed: every parsing loop relies on it.
	l.tokens = append(l.tokens, Token{Type: TokenEOF, Literal: "", Line: l.line})
	return l.tokens, nil
}

func (l *Lexer) eof() bool {
	return l.pos >= len(l.input)
}

func (l *Lexer) peekChar() byte {
	if l.pos+1 >= len(l.input) {
		return 0
	}
	return l.input[l.pos+1]
}

// emit consumes n bytes as a token of type t. The token carries the line it
// starts on; line breaks inside the span advance the counter afterwards.
func (l *Lexer) emit(t TokenType, n int) {
	lit := l.input[l.pos : l.pos+n]
	if !l.suppress[t] {
		l.tokens = append(l.tokens, Token{Type: t, Literal: lit, Line: l.line})
	}
	l.line += strings.Count(lit, "\n")
	l.pos += n
}

func (l *Lexer) errorf(format string, args ...any) *LexError {
	return &LexError{Line: l.line, Remainder: l.input[l.pos:], Msg: fmt.Sprintf(format, args...)}
}

func (l *Lexer) readNumber() {
	end := l.pos
	seenDot := false
	for end < len(l.input) {
		ch := l.input[end]
		if isDigit(ch) {
			end++
			continue
		}
		// "0..5" is a range, not a malformed decimal
		if ch == '.' && !seenDot && !(end+1 < len(l.input) && l.input[end+1] == '.') {
			seenDot = true
			end++
			continue
		}
		break
	}
	l.emit(TokenNumber, end-l.pos)
}

func (l *Lexer) readComment() {
	n := strings.IndexByte(l.input[l.pos:], '\n')
	if n < 0 {
		l.emit(TokenComment, len(l.input)-l.pos)
		return
	}
	l.emit(TokenComment, n)
	l.emit(TokenNewline, 1)
}

func (l *Lexer) readString() error {
	end := l.pos
	if l.input[end] == '$' {
		end++
	}
	end++ // opening quote
	for end < len(l.input) {
		switch l.input[end] {
		case '\\':
			end += 2
			continue
		case '"':
			l.emit(TokenString, end+1-l.pos)
			return nil
		}
		end++
	}
	return l.errorf("unterminated string literal")
}

func (l *Lexer) readIdentifier() {
	end := l.pos
	for end < len(l.input) && (isLetter(l.input[end]) || isDigit(l.input[end])) {
		end++
	}
	lit := l.input[l.pos:end]
	l.emit(LookupIdent(lit), len(lit))
}

func (l *Lexer) readPattern() bool {
	rest := l.input[l.pos:]
	for _, p := range patterns {
		if strings.HasPrefix(rest, p.text) {
			l.emit(p.typ, len(p.text))
			return true
		}
	}
	return false
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
