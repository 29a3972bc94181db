// Package compiler runs the full pipeline: lex, parse, generate.
package compiler

import (
	"fmt"

	"github.com/raymyers/sharpen/pkg/ast"
	"github.com/raymyers/sharpen/pkg/codegen"
	"github.com/raymyers/sharpen/pkg/lexer"
	"github.com/raymyers/sharpen/pkg/parser"
)

type options struct {
	suppress []lexer.TokenType
	tracer   parser.Tracer
}

// Option configures a compilation
type Option func(*options)

// WithSuppressed replaces the set of token types dropped from the token stream.
// The default is lexer.Trivia.
func WithSuppressed(kinds ...lexer.TokenType) Option {
	return func(o *options) {
		o.suppress = kinds
	}
}

// WithTracer traces parsing to t
func WithTracer(t parser.Tracer) Option {
	return func(o *options) {
		o.tracer = t
	}
}

func buildOptions(opts []Option) *options {
	o := &options{suppress: lexer.Trivia}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Tokens lexes src with the configured suppression set
func Tokens(src string, opts ...Option) ([]lexer.Token, error) {
	o := buildOptions(opts)
	toks, err := lexer.Tokenize(src, o.suppress...)
	if err != nil {
		return nil, fmt.Errorf("lexing failed: %w", err)
	}
	return toks, nil
}

// ParseSource lexes and parses src
func ParseSource(src string, opts ...Option) (*ast.Program, error) {
	toks, err := Tokens(src, opts...)
	if err != nil {
		return nil, err
	}
	o := buildOptions(opts)
	var popts []parser.Option
	if o.tracer != nil {
		popts = append(popts, parser.WithTracer(o.tracer))
	}
	prog, err := parser.Parse(toks, popts...)
	if err != nil {
		return nil, fmt.Errorf("parsing failed: %w", err)
	}
	return prog, nil
}

// Compile translates src to C#. The first error aborts the whole unit.
func Compile(src string, opts ...Option) (string, error) {
	prog, err := ParseSource(src, opts...)
	if err != nil {
		return "", err
	}
	out, err := codegen.Generate(prog)
	if err != nil {
		return "", fmt.Errorf("generation failed: %w", err)
	}
	return out, nil
}
