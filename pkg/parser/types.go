package parser

import (
	"github.com/raymyers/sharpen/pkg/ast"
	"github.com/raymyers/sharpen/pkg/lexer"
)

type typeNudFn func(p *Parser) (ast.Type, error)
type typeLedFn func(p *Parser, left ast.Type) (ast.Type, error)

// typeTable is the type grammar's counterpart of lookupTable
type typeTable struct {
	nudLu   map[lexer.TokenType]typeNudFn
	ledLu   map[lexer.TokenType]typeLedFn
	infixBP map[lexer.TokenType]BindingPower
}

var typeLookups = &typeTable{
	nudLu: map[lexer.TokenType]typeNudFn{
		lexer.TokenIdent: parseSymbolType,
	},
	ledLu: map[lexer.TokenType]typeLedFn{
		lexer.TokenLBracket: parseArrayType,
	},
	infixBP: map[lexer.TokenType]BindingPower{
		lexer.TokenLBracket: BPCall,
	},
}

// parseType parses a type descriptor: a name followed by any number of [] or
// [,] suffixes.
func (p *Parser) parseType(bp BindingPower) (ast.Type, error) {
	tok := p.curToken()
	nud, ok := typeLookups.nudLu[tok.Type]
	if !ok {
		return nil, p.errorAt(MissingPrefixHandler, lexer.TokenIdent, "expected a type")
	}
	p.tracer.Tracef("type nud %s %q", tok.Type, tok.Literal)
	left, err := nud(p)
	if err != nil {
		return nil, err
	}

	for typeLookups.infixBP[p.curToken().Type] > bp {
		led := typeLookups.ledLu[p.curToken().Type]
		if left, err = led(p, left); err != nil {
			return nil, err
		}
	}
	return left, nil
}

func parseSymbolType(p *Parser) (ast.Type, error) {
	return ast.SymbolType{Name: p.nextToken().Literal}, nil
}

// parseArrayType wraps left in an array, counting the commas between the
// brackets as extra dimensions.
func parseArrayType(p *Parser, left ast.Type) (ast.Type, error) {
	p.nextToken() // consume '['
	dims := 0
	for p.curTokenIs(lexer.TokenComma) {
		p.nextToken()
		dims++
	}
	if _, err := p.expect(lexer.TokenRBracket); err != nil {
		return nil, err
	}
	return ast.ArrayType{Elem: left, Dimensions: dims}, nil
}
