package ast

import (
	"bytes"
	"testing"

	"github.com/raymyers/sharpen/pkg/lexer"
)

func TestPrintDeclaration(t *testing.T) {
	prog := &Program{Body: []Expr{
		Assignment{
			Target: VariableDeclaration{Type: SymbolType{Name: "i32"}, Name: "x", Mutable: true},
			Op:     lexer.TokenAssign,
			Value:  Binary{Left: Number{Literal: "1"}, Op: lexer.TokenPlus, Right: Number{Literal: "2"}},
		},
		Keyword{Kind: lexer.TokenSemicolon},
	}}

	var buf bytes.Buffer
	NewPrinter(&buf).PrintProgram(prog)

	expected := `Assignment =
  VariableDeclaration mut x
    Symbol i32
  Binary +
    Number 1
    Number 2
Keyword ;
`
	if buf.String() != expected {
		t.Errorf("output mismatch:\nexpected:\n%s\ngot:\n%s", expected, buf.String())
	}
}

func TestPrintFunction(t *testing.T) {
	fn := Function{
		Name:   "add",
		Public: true,
		Params: []FunctionParameter{
			{Name: "a", Type: ArrayType{Elem: SymbolType{Name: "i32"}, Dimensions: 1}},
		},
		ReturnType: SymbolType{Name: "i32"},
		Body: []Expr{
			Return{Value: Identifier{Name: "a"}},
			Keyword{Kind: lexer.TokenSemicolon},
		},
	}

	var buf bytes.Buffer
	NewPrinter(&buf).PrintNode(fn)

	expected := `Function pub add
  Param a
    Array dims=1
      Symbol i32
  returns:
    Symbol i32
  body:
    Return
      Identifier a
    Keyword ;
`
	if buf.String() != expected {
		t.Errorf("output mismatch:\nexpected:\n%s\ngot:\n%s", expected, buf.String())
	}
}

func TestPrintControlFlow(t *testing.T) {
	tests := []struct {
		name     string
		node     Node
		expected string
	}{
		{
			name: "for range",
			node: For{
				Iterator: "i",
				Target:   Range{From: Number{Literal: "0"}, To: Identifier{Name: "n"}},
				Body:     []Expr{Postfix{Operand: Identifier{Name: "x"}, Op: lexer.TokenIncrement}},
			},
			expected: `For i
  Range
    Number 0
    Identifier n
  body:
    Postfix ++
      Identifier x
`,
		},
		{
			name: "if without else",
			node: If{Condition: Identifier{Name: "ok"}, Body: []Expr{Return{}}},
			expected: `If
  Identifier ok
  then:
    Return
`,
		},
		{
			name: "if with empty else",
			node: If{Condition: Identifier{Name: "ok"}, Else: []Expr{}},
			expected: `If
  Identifier ok
  then:
  else:
`,
		},
		{
			name: "instantiation",
			node: ClassInstantiation{Name: "Point", Fields: []FieldValue{{Name: "x", Value: Number{Literal: "1"}}}},
			expected: `ClassInstantiation Point
  Field x
    Number 1
`,
		},
		{
			name: "call",
			node: Call{
				Callee: MemberAccess{Object: Identifier{Name: "Console"}, Name: "WriteLine"},
				Args:   []Expr{String{Literal: `"hi"`}},
			},
			expected: `Call
  MemberAccess .WriteLine
    Identifier Console
  args:
    String "hi"
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			NewPrinter(&buf).PrintNode(tt.node)
			if buf.String() != tt.expected {
				t.Errorf("output mismatch:\nexpected:\n%s\ngot:\n%s", tt.expected, buf.String())
			}
		})
	}
}
