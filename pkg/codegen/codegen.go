// Package codegen translates the syntax tree to C# source text.
//
// Translation is syntax-directed, one rule per node type. There is no symbol
// table and no validation beyond what a rule needs to pick its output: the tree
// is trusted to be well formed.
package codegen

import (
	"fmt"
	"io"
	"strings"

	"github.com/raymyers/sharpen/pkg/ast"
	"github.com/raymyers/sharpen/pkg/lexer"
)

// GenerationErrorKind classifies a GenerationError
type GenerationErrorKind int

const (
	// InvalidIterationTarget: a for loop over something that is neither a
	// range nor an identifier
	InvalidIterationTarget GenerationErrorKind = iota
	// MisplacedRange: a range outside a for loop head
	MisplacedRange
	// UnsupportedNode: a node with no C# rendering
	UnsupportedNode
)

// GenerationError is the first node that could not be translated
type GenerationError struct {
	Kind GenerationErrorKind
	Node ast.Node
}

func (e *GenerationError) Error() string {
	switch e.Kind {
	case InvalidIterationTarget:
		return fmt.Sprintf("invalid iteration target %T: a for loop iterates over a range or an identifier", e.Node)
	case MisplacedRange:
		return "range expression is only allowed as a for loop target"
	}
	if kw, ok := e.Node.(ast.Keyword); ok {
		return fmt.Sprintf("no translation for keyword %s", kw.Kind)
	}
	return fmt.Sprintf("no translation for %T", e.Node)
}

// Generator writes translated programs to w
type Generator struct {
	w io.Writer
}

// NewGenerator creates a Generator writing to w
func NewGenerator(w io.Writer) *Generator {
	return &Generator{w: w}
}

// GenerateProgram translates prog and writes the result. Nothing is written
// when translation fails.
func (g *Generator) GenerateProgram(prog *ast.Program) error {
	out, err := Generate(prog)
	if err != nil {
		return err
	}
	_, err = io.WriteString(g.w, out)
	return err
}

// Generate translates prog to C# source
func Generate(prog *ast.Program) (string, error) {
	return block(prog.Body, 0)
}

func indent(depth int) string {
	return strings.Repeat("\t", depth)
}

// block renders a statement sequence, one indent level per depth. Terminators
// (Keyword nodes) follow their statement without indentation.
func block(body []ast.Expr, depth int) (string, error) {
	var sb strings.Builder
	for _, e := range body {
		if _, ok := e.(ast.Keyword); !ok {
			sb.WriteString(indent(depth))
		}
		s, err := expr(e, depth)
		if err != nil {
			return "", err
		}
		sb.WriteString(s)
	}
	return sb.String(), nil
}

// braced renders "{\n" body "}\n" with the closing brace at depth
func braced(body []ast.Expr, depth int) (string, error) {
	inner, err := block(body, depth+1)
	if err != nil {
		return "", err
	}
	return "{\n" + inner + indent(depth) + "}\n", nil
}

func list(items []ast.Expr, depth int) (string, error) {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		s, err := expr(item, depth)
		if err != nil {
			return "", err
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, ", "), nil
}

func expr(e ast.Expr, depth int) (string, error) {
	switch e := e.(type) {
	case ast.Number:
		return e.Literal, nil
	case ast.String:
		return e.Literal, nil
	case ast.Identifier:
		return e.Name, nil
	case ast.Keyword:
		if e.Kind == lexer.TokenSemicolon {
			return ";\n", nil
		}
		return "", &GenerationError{Kind: UnsupportedNode, Node: e}
	case ast.Prefix:
		operand, err := expr(e.Operand, depth)
		if err != nil {
			return "", err
		}
		return e.Op.String() + operand, nil
	case ast.Postfix:
		operand, err := expr(e.Operand, depth)
		if err != nil {
			return "", err
		}
		return operand + e.Op.String(), nil
	case ast.Binary:
		return binary(e.Left, e.Op.String(), e.Right, depth, "(%s %s %s)")
	case ast.Assignment:
		return binary(e.Target, e.Op.String(), e.Value, depth, "%s %s %s")
	case ast.Grouping:
		return expr(e.Inner, depth)
	case ast.VariableDeclaration:
		qualifier := "const "
		if e.Mutable {
			qualifier = ""
		}
		return qualifier + TypeName(e.Type) + " " + e.Name, nil
	case ast.FunctionParameter:
		return TypeName(e.Type) + " " + e.Name, nil
	case ast.Function:
		return function(e, depth)
	case ast.ClassProperty:
		return TypeName(e.Type) + " " + e.Name, nil
	case ast.Class:
		return class(e, depth), nil
	case ast.FieldValue:
		value, err := expr(e.Value, depth)
		if err != nil {
			return "", err
		}
		return e.Name + " = " + value, nil
	case ast.ClassInstantiation:
		return instantiation(e, depth)
	case ast.ArrayLiteral:
		elems, err := list(e.Elements, depth)
		if err != nil {
			return "", err
		}
		return "{" + elems + "}", nil
	case ast.MemberAccess:
		obj, err := expr(e.Object, depth)
		if err != nil {
			return "", err
		}
		return obj + "." + e.Name, nil
	case ast.Call:
		callee, err := expr(e.Callee, depth)
		if err != nil {
			return "", err
		}
		args, err := list(e.Args, depth)
		if err != nil {
			return "", err
		}
		return callee + "(" + args + ")", nil
	case ast.Index:
		obj, err := expr(e.Object, depth)
		if err != nil {
			return "", err
		}
		indices, err := list(e.Indices, depth)
		if err != nil {
			return "", err
		}
		return obj + "[" + indices + "]", nil
	case ast.Return:
		if e.Value == nil {
			return "return", nil
		}
		value, err := expr(e.Value, depth)
		if err != nil {
			return "", err
		}
		return "return " + value, nil
	case ast.If:
		return ifStmt(e, depth)
	case ast.While:
		cond, err := expr(e.Condition, depth)
		if err != nil {
			return "", err
		}
		body, err := braced(e.Body, depth)
		if err != nil {
			return "", err
		}
		return "while(" + cond + ")" + body, nil
	case ast.For:
		return forStmt(e, depth)
	case ast.Range:
		return "", &GenerationError{Kind: MisplacedRange, Node: e}
	}
	return "", &GenerationError{Kind: UnsupportedNode, Node: e}
}

func binary(left ast.Expr, op string, right ast.Expr, depth int, format string) (string, error) {
	l, err := expr(left, depth)
	if err != nil {
		return "", err
	}
	r, err := expr(right, depth)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(format, l, op, r), nil
}

func function(f ast.Function, depth int) (string, error) {
	var sb strings.Builder
	if f.Public {
		sb.WriteString("public ")
	}
	if f.ReturnType != nil {
		sb.WriteString(TypeName(f.ReturnType))
	} else {
		sb.WriteString("void")
	}
	sb.WriteString(" " + f.Name + "(")
	for i, param := range f.Params {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(TypeName(param.Type) + " " + param.Name)
	}
	sb.WriteString(")")

	body, err := braced(f.Body, depth)
	if err != nil {
		return "", err
	}
	sb.WriteString(body)
	return sb.String(), nil
}

// class renders a struct whose properties are all public fields, in declared
// order.
func class(c ast.Class, depth int) string {
	var sb strings.Builder
	if c.Public {
		sb.WriteString("public ")
	}
	fmt.Fprintf(&sb, "struct %s {\n", c.Name)
	for _, prop := range c.Properties {
		fmt.Fprintf(&sb, "%spublic %s %s;\n", indent(depth+1), TypeName(prop.Type), prop.Name)
	}
	sb.WriteString(indent(depth) + "}\n")
	return sb.String()
}

// instantiation lists fields in call-site order; they are not checked against
// the class declaration.
func instantiation(ci ast.ClassInstantiation, depth int) (string, error) {
	if len(ci.Fields) == 0 {
		return "new " + ci.Name + "{}", nil
	}
	var sb strings.Builder
	sb.WriteString("new " + ci.Name + "{\n")
	for _, f := range ci.Fields {
		s, err := expr(f, depth+1)
		if err != nil {
			return "", err
		}
		sb.WriteString(indent(depth+1) + s + ",\n")
	}
	sb.WriteString(indent(depth) + "}")
	return sb.String(), nil
}

func ifStmt(n ast.If, depth int) (string, error) {
	cond, err := expr(n.Condition, depth)
	if err != nil {
		return "", err
	}
	body, err := braced(n.Body, depth)
	if err != nil {
		return "", err
	}
	out := "if(" + cond + ")" + body
	if n.Else == nil {
		return out, nil
	}

	out += indent(depth) + "else "
	if len(n.Else) == 1 {
		if elseIf, ok := n.Else[0].(ast.If); ok {
			s, err := ifStmt(elseIf, depth)
			if err != nil {
				return "", err
			}
			return out + s, nil
		}
	}
	elseBody, err := braced(n.Else, depth)
	if err != nil {
		return "", err
	}
	return out + elseBody, nil
}

// forStmt lowers a range target to a counting loop and an identifier target to
// a foreach loop.
func forStmt(n ast.For, depth int) (string, error) {
	var head string
	switch target := n.Target.(type) {
	case ast.Range:
		from, err := expr(target.From, depth)
		if err != nil {
			return "", err
		}
		to, err := expr(target.To, depth)
		if err != nil {
			return "", err
		}
		i := n.Iterator
		head = fmt.Sprintf("for(int %s = %s; %s < %s; %s++) ", i, from, i, to, i)
	case ast.Identifier:
		head = fmt.Sprintf("foreach(var %s in %s) ", n.Iterator, target.Name)
	default:
		return "", &GenerationError{Kind: InvalidIterationTarget, Node: n.Target}
	}

	body, err := braced(n.Body, depth)
	if err != nil {
		return "", err
	}
	return head + body, nil
}
