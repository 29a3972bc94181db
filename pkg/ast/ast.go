// Package ast defines the syntax tree produced by the parser. Declarations and
// control constructs are expressions, so a program is a flat sequence of Expr.
package ast

import "github.com/raymyers/sharpen/pkg/lexer"

// Node is the base interface for all AST nodes
type Node interface {
	implNode()
}

// Expr is the interface for all expression nodes
type Expr interface {
	Node
	implExpr()
}

// Type is the interface for type descriptors used in declarations
type Type interface {
	Node
	implType()
}

// Program is an ordered sequence of top-level nodes
type Program struct {
	Body []Expr
}

// Number is a numeric literal, kept as written
type Number struct {
	Literal string
}

// String is a string literal including its quotes and any '$' marker
type String struct {
	Literal string
}

// Identifier is a bare name
type Identifier struct {
	Name string
}

// Prefix is a unary operator applied before its operand: -x, !ok
type Prefix struct {
	Op      lexer.TokenType
	Operand Expr
}

// Postfix is ++ or -- after its operand
type Postfix struct {
	Operand Expr
	Op      lexer.TokenType
}

// Binary is an infix operator expression
type Binary struct {
	Left  Expr
	Op    lexer.TokenType
	Right Expr
}

// Assignment covers =, += and -=. Target may be a VariableDeclaration.
type Assignment struct {
	Target Expr
	Op     lexer.TokenType
	Value  Expr
}

// Grouping is a parenthesized expression
type Grouping struct {
	Inner Expr
}

// Keyword occupies a slot for bare punctuation such as a statement terminator
type Keyword struct {
	Kind lexer.TokenType
}

// VariableDeclaration introduces a name. The initializer, when present, is the
// Value of an enclosing Assignment.
type VariableDeclaration struct {
	Type    Type
	Name    string
	Mutable bool
}

// FunctionParameter is one entry of a function's parameter list
type FunctionParameter struct {
	Name string
	Type Type
}

// Function is a function definition
type Function struct {
	Name       string
	Public     bool
	Params     []FunctionParameter
	ReturnType Type // nil when the function returns nothing
	Body       []Expr
}

// ClassProperty is a field declared in a class body
type ClassProperty struct {
	Name string
	Type Type
}

// Class is a class (record) definition
type Class struct {
	Name       string
	Public     bool
	Properties []ClassProperty
}

// FieldValue is one "name: value" entry of a class instantiation
type FieldValue struct {
	Name  string
	Value Expr
}

// ClassInstantiation is Name{field: value, ...}
type ClassInstantiation struct {
	Name   string
	Fields []FieldValue
}

// ArrayLiteral is {a, b, c}
type ArrayLiteral struct {
	Elements []Expr
}

// MemberAccess is object.name
type MemberAccess struct {
	Object Expr
	Name   string
}

// Call is callee(args...)
type Call struct {
	Callee Expr
	Args   []Expr
}

// Index is object[i, j, ...]
type Index struct {
	Object  Expr
	Indices []Expr
}

// Return is a return statement
type Return struct {
	Value Expr // nil for bare return
}

// If is a conditional. Else holds the else branch; an else-if chain is an
// Else with a single If element.
type If struct {
	Condition Expr
	Body      []Expr
	Else      []Expr
}

// While is a pre-tested loop
type While struct {
	Condition Expr
	Body      []Expr
}

// For iterates Iterator over Target, which is a Range or an Identifier
type For struct {
	Iterator string
	Target   Expr
	Body     []Expr
}

// Range is from..to; only meaningful as a For target
type Range struct {
	From Expr
	To   Expr
}

// SymbolType is a named type: i32, str, Point
type SymbolType struct {
	Name string
}

// ArrayType is Elem[] with Dimensions extra commas: T[,] has Dimensions 1
type ArrayType struct {
	Elem       Type
	Dimensions int
}

// Marker methods for interface implementation
func (Number) implNode() {}
func (Number) implExpr() {}

func (String) implNode() {}
func (String) implExpr() {}

func (Identifier) implNode() {}
func (Identifier) implExpr() {}

func (Prefix) implNode() {}
func (Prefix) implExpr() {}

func (Postfix) implNode() {}
func (Postfix) implExpr() {}

func (Binary) implNode() {}
func (Binary) implExpr() {}

func (Assignment) implNode() {}
func (Assignment) implExpr() {}

func (Grouping) implNode() {}
func (Grouping) implExpr() {}

func (Keyword) implNode() {}
func (Keyword) implExpr() {}

func (VariableDeclaration) implNode() {}
func (VariableDeclaration) implExpr() {}

func (FunctionParameter) implNode() {}
func (FunctionParameter) implExpr() {}

func (Function) implNode() {}
func (Function) implExpr() {}

func (ClassProperty) implNode() {}
func (ClassProperty) implExpr() {}

func (Class) implNode() {}
func (Class) implExpr() {}

func (FieldValue) implNode() {}
func (FieldValue) implExpr() {}

func (ClassInstantiation) implNode() {}
func (ClassInstantiation) implExpr() {}

func (ArrayLiteral) implNode() {}
func (ArrayLiteral) implExpr() {}

func (MemberAccess) implNode() {}
func (MemberAccess) implExpr() {}

func (Call) implNode() {}
func (Call) implExpr() {}

func (Index) implNode() {}
func (Index) implExpr() {}

func (Return) implNode() {}
func (Return) implExpr() {}

func (If) implNode() {}
func (If) implExpr() {}

func (While) implNode() {}
func (While) implExpr() {}

func (For) implNode() {}
func (For) implExpr() {}

func (Range) implNode() {}
func (Range) implExpr() {}

func (SymbolType) implNode() {}
func (SymbolType) implType() {}

func (ArrayType) implNode() {}
func (ArrayType) implType() {}
