package compiler

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/raymyers/sharpen/pkg/codegen"
	"github.com/raymyers/sharpen/pkg/lexer"
	"github.com/raymyers/sharpen/pkg/parser"
)

const drawMap = `const i32 MapX = 3;
let mut i32[,] map = {{0;0;0;};{0;0;0;};{0;0;0;};};

// Prints the board one row per line
fn DrawMap() {
    for y in 0..MapX {
        let mut str line = "";
        for x in 0..MapX {
            line += $"[{map[x, y]}]";
        }
        Console.WriteLine(line);
    }
}
`

func TestCompileProgram(t *testing.T) {
	out, err := Compile(drawMap)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}

	expected := "const long MapX = 3;\n" +
		"long[] map = {{0, 0, 0}, {0, 0, 0}, {0, 0, 0}};\n" +
		"void DrawMap(){\n" +
		"\tfor(int y = 0; y < MapX; y++) {\n" +
		"\t\tstring line = \"\";\n" +
		"\t\tfor(int x = 0; x < MapX; x++) {\n" +
		"\t\t\tline += $\"[{map[x, y]}]\";\n" +
		"\t\t}\n" +
		"\t\tConsole.WriteLine(line);\n" +
		"\t}\n" +
		"}\n"
	if out != expected {
		t.Errorf("output mismatch:\nexpected:\n%s\ngot:\n%s", expected, out)
	}
}

func TestCompileEmpty(t *testing.T) {
	out, err := Compile("\n\n// only a comment\n")
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	if out != "" {
		t.Errorf("expected empty output, got %q", out)
	}
}

func TestCompileErrors(t *testing.T) {
	t.Run("lex", func(t *testing.T) {
		_, err := Compile("let i32 x = @;")
		var lerr *lexer.LexError
		if !errors.As(err, &lerr) {
			t.Fatalf("expected *lexer.LexError, got %v", err)
		}
		if !strings.HasPrefix(err.Error(), "lexing failed: ") {
			t.Errorf("unexpected message %q", err.Error())
		}
	})

	t.Run("parse", func(t *testing.T) {
		_, err := Compile("let i32 x = );")
		var perr *parser.ParseError
		if !errors.As(err, &perr) {
			t.Fatalf("expected *parser.ParseError, got %v", err)
		}
		if perr.Kind != parser.MissingPrefixHandler {
			t.Errorf("expected MissingPrefixHandler, got %s", perr.Kind)
		}
		if !strings.HasPrefix(err.Error(), "parsing failed: ") {
			t.Errorf("unexpected message %q", err.Error())
		}
	})

	t.Run("generate", func(t *testing.T) {
		_, err := Compile("for i in 10 { }")
		var gerr *codegen.GenerationError
		if !errors.As(err, &gerr) {
			t.Fatalf("expected *codegen.GenerationError, got %v", err)
		}
		if gerr.Kind != codegen.InvalidIterationTarget {
			t.Errorf("expected InvalidIterationTarget, got %d", gerr.Kind)
		}
		if !strings.HasPrefix(err.Error(), "generation failed: ") {
			t.Errorf("unexpected message %q", err.Error())
		}
	})
}

func TestTokensSuppression(t *testing.T) {
	toks, err := Tokens("a b")
	if err != nil {
		t.Fatalf("Tokens failed: %v", err)
	}
	if len(toks) != 3 {
		t.Errorf("default suppression: expected 3 tokens, got %d", len(toks))
	}

	toks, err = Tokens("a b", WithSuppressed(lexer.TokenNewline))
	if err != nil {
		t.Fatalf("Tokens failed: %v", err)
	}
	if len(toks) != 4 || toks[1].Type != lexer.TokenWhitespace {
		t.Errorf("expected whitespace to be kept, got %v", toks)
	}
}

func TestParseSourceTrace(t *testing.T) {
	var buf bytes.Buffer
	prog, err := ParseSource("x = 1;", WithTracer(parser.NewWriterTracer(&buf)))
	if err != nil {
		t.Fatalf("ParseSource failed: %v", err)
	}
	if len(prog.Body) != 2 {
		t.Errorf("expected 2 nodes, got %d", len(prog.Body))
	}
	if !strings.Contains(buf.String(), "[parse] led = ") {
		t.Errorf("expected trace output, got %q", buf.String())
	}
}
