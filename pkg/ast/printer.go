package ast

import (
	"fmt"
	"io"
	"strings"
)

// Printer outputs the tree in an indented, one-node-per-line debug format
type Printer struct {
	w      io.Writer
	indent int
}

// NewPrinter creates a new AST printer
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w, indent: 0}
}

// PrintProgram prints every top-level node in order
func (p *Printer) PrintProgram(prog *Program) {
	for _, e := range prog.Body {
		p.PrintNode(e)
	}
}

func (p *Printer) line(format string, args ...any) {
	fmt.Fprint(p.w, strings.Repeat("  ", p.indent))
	fmt.Fprintf(p.w, format, args...)
	fmt.Fprintln(p.w)
}

func (p *Printer) children(nodes ...Node) {
	p.indent++
	for _, n := range nodes {
		p.PrintNode(n)
	}
	p.indent--
}

func (p *Printer) section(label string, body []Expr) {
	p.indent++
	p.line("%s:", label)
	p.indent++
	for _, e := range body {
		p.PrintNode(e)
	}
	p.indent -= 2
}

// PrintNode prints n and its subtree
func (p *Printer) PrintNode(n Node) {
	switch n := n.(type) {
	case nil:
		p.line("<nil>")
	case Number:
		p.line("Number %s", n.Literal)
	case String:
		p.line("String %s", n.Literal)
	case Identifier:
		p.line("Identifier %s", n.Name)
	case Keyword:
		p.line("Keyword %s", n.Kind)
	case Prefix:
		p.line("Prefix %s", n.Op)
		p.children(n.Operand)
	case Postfix:
		p.line("Postfix %s", n.Op)
		p.children(n.Operand)
	case Binary:
		p.line("Binary %s", n.Op)
		p.children(n.Left, n.Right)
	case Assignment:
		p.line("Assignment %s", n.Op)
		p.children(n.Target, n.Value)
	case Grouping:
		p.line("Grouping")
		p.children(n.Inner)
	case Range:
		p.line("Range")
		p.children(n.From, n.To)
	case VariableDeclaration:
		mut := ""
		if n.Mutable {
			mut = " mut"
		}
		p.line("VariableDeclaration%s %s", mut, n.Name)
		p.children(n.Type)
	case Function:
		p.line("Function%s %s", visibility(n.Public), n.Name)
		for _, param := range n.Params {
			p.children(param)
		}
		if n.ReturnType != nil {
			p.indent++
			p.line("returns:")
			p.children(n.ReturnType)
			p.indent--
		}
		p.section("body", n.Body)
	case FunctionParameter:
		p.line("Param %s", n.Name)
		p.children(n.Type)
	case Class:
		p.line("Class%s %s", visibility(n.Public), n.Name)
		for _, prop := range n.Properties {
			p.children(prop)
		}
	case ClassProperty:
		p.line("Property %s", n.Name)
		p.children(n.Type)
	case ClassInstantiation:
		p.line("ClassInstantiation %s", n.Name)
		for _, f := range n.Fields {
			p.children(f)
		}
	case FieldValue:
		p.line("Field %s", n.Name)
		p.children(n.Value)
	case ArrayLiteral:
		p.line("ArrayLiteral")
		for _, e := range n.Elements {
			p.children(e)
		}
	case MemberAccess:
		p.line("MemberAccess .%s", n.Name)
		p.children(n.Object)
	case Call:
		p.line("Call")
		p.children(n.Callee)
		p.section("args", n.Args)
	case Index:
		p.line("Index")
		p.children(n.Object)
		p.section("indices", n.Indices)
	case Return:
		p.line("Return")
		if n.Value != nil {
			p.children(n.Value)
		}
	case If:
		p.line("If")
		p.children(n.Condition)
		p.section("then", n.Body)
		if n.Else != nil {
			p.section("else", n.Else)
		}
	case While:
		p.line("While")
		p.children(n.Condition)
		p.section("body", n.Body)
	case For:
		p.line("For %s", n.Iterator)
		p.children(n.Target)
		p.section("body", n.Body)
	case SymbolType:
		p.line("Symbol %s", n.Name)
	case ArrayType:
		p.line("Array dims=%d", n.Dimensions)
		p.children(n.Elem)
	default:
		p.line("/* unknown node %T */", n)
	}
}

func visibility(public bool) string {
	if public {
		return " pub"
	}
	return ""
}
