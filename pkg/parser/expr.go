package parser

import (
	"github.com/raymyers/sharpen/pkg/ast"
	"github.com/raymyers/sharpen/pkg/lexer"
)

func parseNumber(p *Parser, _ BindingPower) (ast.Expr, error) {
	return ast.Number{Literal: p.nextToken().Literal}, nil
}

func parseString(p *Parser, _ BindingPower) (ast.Expr, error) {
	return ast.String{Literal: p.nextToken().Literal}, nil
}

func parseIdentifier(p *Parser, _ BindingPower) (ast.Expr, error) {
	return ast.Identifier{Name: p.nextToken().Literal}, nil
}

func parseKeyword(p *Parser, _ BindingPower) (ast.Expr, error) {
	return ast.Keyword{Kind: p.nextToken().Type}, nil
}

func parsePrefix(p *Parser, bp BindingPower) (ast.Expr, error) {
	op := p.nextToken()
	operand, err := p.ParseExpression(bp)
	if err != nil {
		return nil, err
	}
	return ast.Prefix{Op: op.Type, Operand: operand}, nil
}

func parseGrouping(p *Parser, _ BindingPower) (ast.Expr, error) {
	p.nextToken() // consume '('
	defer p.restrictBraces(false)()

	inner, err := p.ParseExpression(BPDefault)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokenRParen); err != nil {
		return nil, err
	}
	return ast.Grouping{Inner: inner}, nil
}

// parseArrayLiteral parses {a, b; c}. Commas and semicolons both separate
// elements and a trailing separator is allowed.
func parseArrayLiteral(p *Parser, _ BindingPower) (ast.Expr, error) {
	elements, err := p.parseList(lexer.TokenLBrace, lexer.TokenRBrace, lexer.TokenComma, lexer.TokenSemicolon)
	if err != nil {
		return nil, err
	}
	return ast.ArrayLiteral{Elements: elements}, nil
}

func parseBinary(p *Parser, left ast.Expr, bp BindingPower) (ast.Expr, error) {
	op := p.nextToken()
	right, err := p.ParseExpression(bp)
	if err != nil {
		return nil, err
	}
	return ast.Binary{Left: left, Op: op.Type, Right: right}, nil
}

func parseRange(p *Parser, left ast.Expr, bp BindingPower) (ast.Expr, error) {
	p.nextToken() // consume '..'
	to, err := p.ParseExpression(bp)
	if err != nil {
		return nil, err
	}
	return ast.Range{From: left, To: to}, nil
}

// parseAssignment parses the value one level below its own binding power, which
// makes a = b = c nest to the right.
func parseAssignment(p *Parser, left ast.Expr, bp BindingPower) (ast.Expr, error) {
	op := p.nextToken()
	value, err := p.ParseExpression(bp - 1)
	if err != nil {
		return nil, err
	}
	return ast.Assignment{Target: left, Op: op.Type, Value: value}, nil
}

func parseMember(p *Parser, left ast.Expr, _ BindingPower) (ast.Expr, error) {
	p.nextToken() // consume '.'
	name, err := p.expect(lexer.TokenIdent)
	if err != nil {
		return nil, err
	}
	return ast.MemberAccess{Object: left, Name: name.Literal}, nil
}

func parseCall(p *Parser, left ast.Expr, _ BindingPower) (ast.Expr, error) {
	args, err := p.parseList(lexer.TokenLParen, lexer.TokenRParen, lexer.TokenComma)
	if err != nil {
		return nil, err
	}
	return ast.Call{Callee: left, Args: args}, nil
}

func parseIndex(p *Parser, left ast.Expr, _ BindingPower) (ast.Expr, error) {
	indices, err := p.parseList(lexer.TokenLBracket, lexer.TokenRBracket, lexer.TokenComma)
	if err != nil {
		return nil, err
	}
	return ast.Index{Object: left, Indices: indices}, nil
}

func parsePostfix(p *Parser, left ast.Expr, _ BindingPower) (ast.Expr, error) {
	op := p.nextToken()
	return ast.Postfix{Operand: left, Op: op.Type}, nil
}

// parseClassInstantiation parses Name{field: value, ...}. The identifier on the
// left is taken as the class name.
func parseClassInstantiation(p *Parser, left ast.Expr, _ BindingPower) (ast.Expr, error) {
	name, ok := left.(ast.Identifier)
	if !ok {
		return nil, p.errorAt(UnexpectedToken, lexer.TokenIdent, "class instantiation requires a type name")
	}

	p.nextToken() // consume '{'
	defer p.restrictBraces(false)()

	var fields []ast.FieldValue
	for !p.curTokenIs(lexer.TokenRBrace) && !p.curTokenIs(lexer.TokenEOF) {
		field, err := p.expect(lexer.TokenIdent)
		if err != nil {
			return nil, err
		}
		if !p.curTokenIs(lexer.TokenColon) && !p.curTokenIs(lexer.TokenAssign) {
			return nil, p.errorAt(UnexpectedToken, lexer.TokenColon, "")
		}
		p.nextToken()

		value, err := p.ParseExpression(BPDefault)
		if err != nil {
			return nil, err
		}
		fields = append(fields, ast.FieldValue{Name: field.Literal, Value: value})

		if p.curTokenIs(lexer.TokenComma) || p.curTokenIs(lexer.TokenSemicolon) {
			p.nextToken()
		} else if !p.curTokenIs(lexer.TokenRBrace) {
			return nil, p.errorAt(UnexpectedToken, lexer.TokenRBrace, "")
		}
	}
	if _, err := p.expect(lexer.TokenRBrace); err != nil {
		return nil, err
	}
	return ast.ClassInstantiation{Name: name.Name, Fields: fields}, nil
}

// parseList parses open elem (sep elem)* [sep] close. Class instantiation is
// allowed inside the delimiters.
func (p *Parser) parseList(open, closing lexer.TokenType, seps ...lexer.TokenType) ([]ast.Expr, error) {
	if _, err := p.expect(open); err != nil {
		return nil, err
	}
	defer p.restrictBraces(false)()

	var items []ast.Expr
	for !p.curTokenIs(closing) && !p.curTokenIs(lexer.TokenEOF) {
		item, err := p.ParseExpression(BPDefault)
		if err != nil {
			return nil, err
		}
		items = append(items, item)

		if !p.curTokenIsAny(seps...) {
			break
		}
		p.nextToken()
	}
	if _, err := p.expect(closing); err != nil {
		return nil, err
	}
	return items, nil
}

func (p *Parser) curTokenIsAny(types ...lexer.TokenType) bool {
	for _, t := range types {
		if p.curTokenIs(t) {
			return true
		}
	}
	return false
}
