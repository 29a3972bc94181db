package lexer

import (
	"errors"
	"strings"
	"testing"
)

type expectedToken struct {
	expectedType    TokenType
	expectedLiteral string
}

func checkTokens(t *testing.T, input string, tests []expectedToken, suppress ...TokenType) {
	t.Helper()

	toks, err := Tokenize(input, suppress...)
	if err != nil {
		t.Fatalf("Tokenize(%q) failed: %v", input, err)
	}
	if len(toks) != len(tests) {
		t.Fatalf("Tokenize(%q) - expected %d tokens, got %d: %v", input, len(tests), len(toks), toks)
	}

	for i, tt := range tests {
		tok := toks[i]

		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q",
				i, tt.expectedType, tok.Type)
		}

		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q",
				i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestTokenizeDeclaration(t *testing.T) {
	input := `let mut i32 x = 1+2;`

	checkTokens(t, input, []expectedToken{
		{TokenLet, "let"},
		{TokenMut, "mut"},
		{TokenIdent, "i32"},
		{TokenIdent, "x"},
		{TokenAssign, "="},
		{TokenNumber, "1"},
		{TokenPlus, "+"},
		{TokenNumber, "2"},
		{TokenSemicolon, ";"},
		{TokenEOF, ""},
	}, Trivia...)
}

func TestOperators(t *testing.T) {
	input := `+ - * / % = == != < <= > >= && || ! & | ++ -- += -= -> .. . : ? ,`

	checkTokens(t, input, []expectedToken{
		{TokenPlus, "+"},
		{TokenMinus, "-"},
		{TokenStar, "*"},
		{TokenSlash, "/"},
		{TokenPercent, "%"},
		{TokenAssign, "="},
		{TokenEq, "=="},
		{TokenNe, "!="},
		{TokenLt, "<"},
		{TokenLe, "<="},
		{TokenGt, ">"},
		{TokenGe, ">="},
		{TokenAnd, "&&"},
		{TokenOr, "||"},
		{TokenNot, "!"},
		{TokenAmpersand, "&"},
		{TokenPipe, "|"},
		{TokenIncrement, "++"},
		{TokenDecrement, "--"},
		{TokenPlusAssign, "+="},
		{TokenMinusAssign, "-="},
		{TokenArrow, "->"},
		{TokenDotDot, ".."},
		{TokenDot, "."},
		{TokenColon, ":"},
		{TokenQuestion, "?"},
		{TokenComma, ","},
		{TokenEOF, ""},
	}, Trivia...)
}

func TestKeywords(t *testing.T) {
	input := `let mut const fn class pub if else while for in return new import as mod enum letter`

	checkTokens(t, input, []expectedToken{
		{TokenLet, "let"},
		{TokenMut, "mut"},
		{TokenConst, "const"},
		{TokenFn, "fn"},
		{TokenClass, "class"},
		{TokenPub, "pub"},
		{TokenIf, "if"},
		{TokenElse, "else"},
		{TokenWhile, "while"},
		{TokenFor, "for"},
		{TokenIn, "in"},
		{TokenReturn, "return"},
		{TokenNew, "new"},
		{TokenImport, "import"},
		{TokenAs, "as"},
		{TokenMod, "mod"},
		{TokenEnum, "enum"},
		{TokenIdent, "letter"},
		{TokenEOF, ""},
	}, Trivia...)
}

func TestRangeVersusDecimal(t *testing.T) {
	checkTokens(t, `0..5`, []expectedToken{
		{TokenNumber, "0"},
		{TokenDotDot, ".."},
		{TokenNumber, "5"},
		{TokenEOF, ""},
	})

	checkTokens(t, `1.5`, []expectedToken{
		{TokenNumber, "1.5"},
		{TokenEOF, ""},
	})

	checkTokens(t, `1.5..10`, []expectedToken{
		{TokenNumber, "1.5"},
		{TokenDotDot, ".."},
		{TokenNumber, "10"},
		{TokenEOF, ""},
	})
}

func TestStrings(t *testing.T) {
	input := `"hello" $"hi {name}" "say \"x\""`

	checkTokens(t, input, []expectedToken{
		{TokenString, `"hello"`},
		{TokenString, `$"hi {name}"`},
		{TokenString, `"say \"x\""`},
		{TokenEOF, ""},
	}, Trivia...)
}

func TestComments(t *testing.T) {
	input := "x // trailing\ny"

	checkTokens(t, input, []expectedToken{
		{TokenIdent, "x"},
		{TokenWhitespace, " "},
		{TokenComment, "// trailing"},
		{TokenNewline, "\n"},
		{TokenIdent, "y"},
		{TokenEOF, ""},
	})

	checkTokens(t, input, []expectedToken{
		{TokenIdent, "x"},
		{TokenIdent, "y"},
		{TokenEOF, ""},
	}, Trivia...)
}

func TestLineNumbersSurviveSuppression(t *testing.T) {
	input := "let a = 1;\n// note\n\nlet b = \"two\nlines\";\nc"

	toks, err := Tokenize(input, Trivia...)
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}

	tests := []struct {
		literal string
		line    int
	}{
		{"let", 1},
		{"a", 1},
		{"let", 4},
		{"b", 4},
		{"\"two\nlines\"", 4},
		{";", 5},
		{"c", 6},
	}

	var got []Token
	for _, tok := range toks {
		if tok.Type == TokenLet || tok.Type == TokenIdent || tok.Type == TokenString ||
			(tok.Type == TokenSemicolon && tok.Line > 1) {
			got = append(got, tok)
		}
	}
	if len(got) != len(tests) {
		t.Fatalf("expected %d tokens, got %d: %v", len(tests), len(got), got)
	}
	for i, tt := range tests {
		if got[i].Literal != tt.literal {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q", i, tt.literal, got[i].Literal)
		}
		if got[i].Line != tt.line {
			t.Errorf("tests[%d] - line wrong for %q. expected=%d, got=%d", i, tt.literal, tt.line, got[i].Line)
		}
	}
}

func TestSingleEOF(t *testing.T) {
	for _, input := range []string{"", "   ", "x", "// only a comment"} {
		toks, err := Tokenize(input, Trivia...)
		if err != nil {
			t.Fatalf("Tokenize(%q) failed: %v", input, err)
		}
		eofs := 0
		for _, tok := range toks {
			if tok.Type == TokenEOF {
				eofs++
			}
		}
		if eofs != 1 || toks[len(toks)-1].Type != TokenEOF {
			t.Errorf("Tokenize(%q) - expected exactly one trailing EOF, got %v", input, toks)
		}
	}

	// suppressing EOF is ignored
	toks, err := Tokenize("x", TokenEOF)
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}
	if toks[len(toks)-1].Type != TokenEOF {
		t.Errorf("expected trailing EOF even when suppressed, got %v", toks)
	}
}

func TestRoundTrip(t *testing.T) {
	input := "fn pub add(i32 a, i32 b) -> i32 {\n\treturn a + b;\n}\nlet mut i32[,] m = {{0;1;};{2;3;};};\nfor i in 0..5 { m[i, 0] += 1; }"

	toks, err := Tokenize(input, Trivia...)
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}

	var sb strings.Builder
	for _, tok := range toks {
		sb.WriteString(tok.Literal)
	}

	want := strings.NewReplacer(" ", "", "\t", "", "\n", "").Replace(input)
	if sb.String() != want {
		t.Errorf("round trip mismatch\nexpected=%q\ngot=     %q", want, sb.String())
	}
}

func TestLexErrors(t *testing.T) {
	tests := []struct {
		input     string
		line      int
		remainder string
	}{
		{"let x = 1;\nlet y = #oops", 2, "#oops"},
		{"x @ y", 1, "@ y"},
		{"$x", 1, "$x"},
		{"\"open", 1, "\"open"},
	}

	for i, tt := range tests {
		_, err := Tokenize(tt.input, Trivia...)
		if err == nil {
			t.Fatalf("tests[%d] - expected error for %q", i, tt.input)
		}
		var lexErr *LexError
		if !errors.As(err, &lexErr) {
			t.Fatalf("tests[%d] - expected *LexError, got %T", i, err)
		}
		if lexErr.Line != tt.line {
			t.Errorf("tests[%d] - line wrong. expected=%d, got=%d", i, tt.line, lexErr.Line)
		}
		if lexErr.Remainder != tt.remainder {
			t.Errorf("tests[%d] - remainder wrong. expected=%q, got=%q", i, tt.remainder, lexErr.Remainder)
		}
	}
}

func TestLookupTokenType(t *testing.T) {
	tests := []struct {
		name string
		want TokenType
		ok   bool
	}{
		{"NEWLINE", TokenNewline, true},
		{"COMMENT", TokenComment, true},
		{"let", TokenLet, true},
		{"->", TokenArrow, true},
		{"bogus", TokenEOF, false},
	}

	for _, tt := range tests {
		got, ok := LookupTokenType(tt.name)
		if got != tt.want || ok != tt.ok {
			t.Errorf("LookupTokenType(%q) = %v, %v; want %v, %v", tt.name, got, ok, tt.want, tt.ok)
		}
	}
}
