package lexer

// TokenType represents the type of a token
type TokenType int

const (
	// Special tokens
	TokenEOF TokenType = iota

	// Trivia, usually suppressed
	TokenWhitespace // ' ' and '\r'
	TokenTab        // '\t'
	TokenNewline    // '\n'
	TokenComment    // // ...

	// Literals
	TokenIdent  // main, foo, x
	TokenNumber // 42, 1.5
	TokenString // "hello", $"hi {name}"

	// Keywords
	TokenLet    // let
	TokenMut    // mut
	TokenConst  // const
	TokenFn     // fn
	TokenClass  // class
	TokenPub    // pub
	TokenIf     // if
	TokenElse   // else
	TokenWhile  // while
	TokenFor    // for
	TokenIn     // in
	TokenReturn // return
	TokenNew    // new
	TokenImport // import
	TokenAs     // as
	TokenMod    // mod
	TokenEnum   // enum

	// Operators
	TokenPlus      // +
	TokenMinus     // -
	TokenStar      // *
	TokenSlash     // /
	TokenPercent   // %
	TokenAssign    // =
	TokenEq        // ==
	TokenNe        // !=
	TokenLt        // <
	TokenLe        // <=
	TokenGt        // >
	TokenGe        // >=
	TokenAnd       // &&
	TokenOr        // ||
	TokenNot       // !
	TokenAmpersand // &
	TokenPipe      // |
	TokenQuestion  // ?
	TokenColon     // :

	// Compound assignment operators
	TokenPlusAssign  // +=
	TokenMinusAssign // -=

	// Increment/decrement
	TokenIncrement // ++
	TokenDecrement // --

	// Delimiters
	TokenLParen    // (
	TokenRParen    // )
	TokenLBrace    // {
	TokenRBrace    // }
	TokenLBracket  // [
	TokenRBracket  // ]
	TokenSemicolon // ;
	TokenComma     // ,
	TokenDot       // .
	TokenDotDot    // ..
	TokenArrow     // ->
)

var tokenNames = map[TokenType]string{
	TokenEOF:         "EOF",
	TokenWhitespace:  "WHITESPACE",
	TokenTab:         "TAB",
	TokenNewline:     "NEWLINE",
	TokenComment:     "COMMENT",
	TokenIdent:       "IDENT",
	TokenNumber:      "NUMBER",
	TokenString:      "STRING",
	TokenLet:         "let",
	TokenMut:         "mut",
	TokenConst:       "const",
	TokenFn:          "fn",
	TokenClass:       "class",
	TokenPub:         "pub",
	TokenIf:          "if",
	TokenElse:        "else",
	TokenWhile:       "while",
	TokenFor:         "for",
	TokenIn:          "in",
	TokenReturn:      "return",
	TokenNew:         "new",
	TokenImport:      "import",
	TokenAs:          "as",
	TokenMod:         "mod",
	TokenEnum:        "enum",
	TokenPlus:        "+",
	TokenMinus:       "-",
	TokenStar:        "*",
	TokenSlash:       "/",
	TokenPercent:     "%",
	TokenAssign:      "=",
	TokenEq:          "==",
	TokenNe:          "!=",
	TokenLt:          "<",
	TokenLe:          "<=",
	TokenGt:          ">",
	TokenGe:          ">=",
	TokenAnd:         "&&",
	TokenOr:          "||",
	TokenNot:         "!",
	TokenAmpersand:   "&",
	TokenPipe:        "|",
	TokenQuestion:    "?",
	TokenColon:       ":",
	TokenPlusAssign:  "+=",
	TokenMinusAssign: "-=",
	TokenIncrement:   "++",
	TokenDecrement:   "--",
	TokenLParen:      "(",
	TokenRParen:      ")",
	TokenLBrace:      "{",
	TokenRBrace:      "}",
	TokenLBracket:    "[",
	TokenRBracket:    "]",
	TokenSemicolon:   ";",
	TokenComma:       ",",
	TokenDot:         ".",
	TokenDotDot:      "..",
	TokenArrow:       "->",
}

func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// LookupTokenType resolves a token type from its printed name ("NEWLINE", "let", "->").
func LookupTokenType(name string) (TokenType, bool) {
	for t, n := range tokenNames {
		if n == name {
			return t, true
		}
	}
	return TokenEOF, false
}

// Token represents a lexical token
type Token struct {
	Type    TokenType
	Literal string
	Line    int
}

// keywords maps keyword strings to token types
var keywords = map[string]TokenType{
	"let":    TokenLet,
	"mut":    TokenMut,
	"const":  TokenConst,
	"fn":     TokenFn,
	"class":  TokenClass,
	"pub":    TokenPub,
	"if":     TokenIf,
	"else":   TokenElse,
	"while":  TokenWhile,
	"for":    TokenFor,
	"in":     TokenIn,
	"return": TokenReturn,
	"new":    TokenNew,
	"import": TokenImport,
	"as":     TokenAs,
	"mod":    TokenMod,
	"enum":   TokenEnum,
}

// LookupIdent returns the token type for an identifier (keyword or IDENT)
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return TokenIdent
}

// Trivia lists the token types that carry no syntax: whitespace, tabs,
// line breaks and comments.
var Trivia = []TokenType{TokenWhitespace, TokenTab, TokenNewline, TokenComment}
