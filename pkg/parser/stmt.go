package parser

import (
	"github.com/raymyers/sharpen/pkg/ast"
	"github.com/raymyers/sharpen/pkg/lexer"
)

// parseVariableDeclaration parses let [mut] Type name and const Type name.
// A following '=' is handled by the assignment rule, which wraps the
// declaration as its target.
func parseVariableDeclaration(p *Parser, _ BindingPower) (ast.Expr, error) {
	kw := p.nextToken()
	mutable := false
	if kw.Type == lexer.TokenLet && p.curTokenIs(lexer.TokenMut) {
		p.nextToken()
		mutable = true
	}

	typ, err := p.parseType(BPDefault)
	if err != nil {
		return nil, err
	}
	name, err := p.expect(lexer.TokenIdent)
	if err != nil {
		return nil, err
	}
	p.tracer.Tracef("declaration %s mut=%t", name.Literal, mutable)

	return ast.VariableDeclaration{Type: typ, Name: name.Literal, Mutable: mutable}, nil
}

// parseFunction parses fn [pub] name(Type a, Type b) [-> Type] { body }
func parseFunction(p *Parser, _ BindingPower) (ast.Expr, error) {
	p.nextToken() // consume 'fn'
	public := p.skipPub()

	name, err := p.expect(lexer.TokenIdent)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokenLParen); err != nil {
		return nil, err
	}

	var params []ast.FunctionParameter
	for !p.curTokenIs(lexer.TokenRParen) && !p.curTokenIs(lexer.TokenEOF) {
		typ, err := p.parseType(BPDefault)
		if err != nil {
			return nil, err
		}
		paramName, err := p.expect(lexer.TokenIdent)
		if err != nil {
			return nil, err
		}
		params = append(params, ast.FunctionParameter{Name: paramName.Literal, Type: typ})

		if !p.curTokenIs(lexer.TokenComma) {
			break
		}
		p.nextToken()
	}
	if _, err := p.expect(lexer.TokenRParen); err != nil {
		return nil, err
	}

	var ret ast.Type
	if p.curTokenIs(lexer.TokenArrow) {
		p.nextToken()
		if ret, err = p.parseType(BPDefault); err != nil {
			return nil, err
		}
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return ast.Function{
		Name:       name.Literal,
		Public:     public,
		Params:     params,
		ReturnType: ret,
		Body:       body,
	}, nil
}

// parseClass parses class [pub] Name { Type name; ... }
func parseClass(p *Parser, _ BindingPower) (ast.Expr, error) {
	p.nextToken() // consume 'class'
	public := p.skipPub()

	name, err := p.expect(lexer.TokenIdent)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokenLBrace); err != nil {
		return nil, err
	}

	var props []ast.ClassProperty
	for !p.curTokenIs(lexer.TokenRBrace) && !p.curTokenIs(lexer.TokenEOF) {
		// TODO: parse methods once the generator can place them inside the struct
		if p.curTokenIs(lexer.TokenFn) {
			return nil, p.errorAt(UnexpectedToken, lexer.TokenIdent, "class methods are not supported")
		}
		typ, err := p.parseType(BPDefault)
		if err != nil {
			return nil, err
		}
		propName, err := p.expect(lexer.TokenIdent)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.TokenSemicolon); err != nil {
			return nil, err
		}
		props = append(props, ast.ClassProperty{Name: propName.Literal, Type: typ})
	}
	if _, err := p.expect(lexer.TokenRBrace); err != nil {
		return nil, err
	}
	return ast.Class{Name: name.Literal, Public: public, Properties: props}, nil
}

// parseIf parses if cond { body } with an optional else or else-if chain
func parseIf(p *Parser, _ BindingPower) (ast.Expr, error) {
	p.nextToken() // consume 'if'
	cond, err := p.parseCondition()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	node := ast.If{Condition: cond, Body: body}
	if !p.curTokenIs(lexer.TokenElse) {
		return node, nil
	}
	p.nextToken() // consume 'else'

	if p.curTokenIs(lexer.TokenIf) {
		elseIf, err := parseIf(p, BPDefault)
		if err != nil {
			return nil, err
		}
		node.Else = []ast.Expr{elseIf}
		return node, nil
	}
	if node.Else, err = p.parseBlock(); err != nil {
		return nil, err
	}
	if node.Else == nil {
		node.Else = []ast.Expr{}
	}
	return node, nil
}

func parseWhile(p *Parser, _ BindingPower) (ast.Expr, error) {
	p.nextToken() // consume 'while'
	cond, err := p.parseCondition()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return ast.While{Condition: cond, Body: body}, nil
}

// parseFor parses for name in target { body }. The target is checked by the
// generator, not here.
func parseFor(p *Parser, _ BindingPower) (ast.Expr, error) {
	p.nextToken() // consume 'for'
	name, err := p.expect(lexer.TokenIdent)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokenIn); err != nil {
		return nil, err
	}
	target, err := p.parseCondition()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return ast.For{Iterator: name.Literal, Target: target, Body: body}, nil
}

func parseReturn(p *Parser, _ BindingPower) (ast.Expr, error) {
	p.nextToken() // consume 'return'
	if p.curTokenIsAny(lexer.TokenSemicolon, lexer.TokenRBrace, lexer.TokenEOF) {
		return ast.Return{}, nil
	}
	value, err := p.ParseExpression(BPDefault)
	if err != nil {
		return nil, err
	}
	return ast.Return{Value: value}, nil
}

// parseCondition parses the head of an if, while or for. Braces are left for
// the body.
func (p *Parser) parseCondition() (ast.Expr, error) {
	defer p.restrictBraces(true)()
	return p.ParseExpression(BPDefault)
}

// parseBlock parses { expr* }
func (p *Parser) parseBlock() ([]ast.Expr, error) {
	if _, err := p.expect(lexer.TokenLBrace); err != nil {
		return nil, err
	}
	defer p.restrictBraces(false)()

	var body []ast.Expr
	for !p.curTokenIs(lexer.TokenRBrace) && !p.curTokenIs(lexer.TokenEOF) {
		expr, err := p.ParseExpression(BPDefault)
		if err != nil {
			return nil, err
		}
		body = append(body, expr)
	}
	if _, err := p.expect(lexer.TokenRBrace); err != nil {
		return nil, err
	}
	return body, nil
}

func (p *Parser) skipPub() bool {
	if p.curTokenIs(lexer.TokenPub) {
		p.nextToken()
		return true
	}
	return false
}
