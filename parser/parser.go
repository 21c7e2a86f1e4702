// Package parser implements the Pratt expression engine, query parser,
// and statement dispatcher: a token-index cursor with checkpoint/restore
// speculative parsing, a recursion-depth guard, and a
// dialect-parameterized precedence-climbing core.
package parser

import (
	"github.com/sqlfront/parser/ast"
	"github.com/sqlfront/parser/dialect"
	"github.com/sqlfront/parser/lexer"
	"github.com/sqlfront/parser/token"
)

// Options configures a parse.
type Options struct {
	// TrailingCommas allows a comma before a closing delimiter or a
	// column-alias-reserved keyword in any comma-separated list.
	TrailingCommas bool
	// RecursionLimit bounds recursive descent into expressions/queries.
	RecursionLimit uint
	// Unescape controls whether quoted-string bodies are decoded.
	Unescape bool
}

// DefaultOptions returns the library's default parse options.
func DefaultOptions() Options {
	return Options{TrailingCommas: false, RecursionLimit: 50, Unescape: true}
}

// Parser converts a dialect-tokenized SQL source into a sequence of
// ast.Statement. A Parser is not safe for concurrent use and is never
// shared between parses.
type Parser struct {
	toks    []token.Token
	pos     int
	dialect dialect.Dialect
	opts    Options
	depth   uint
}

// New tokenizes src under dialect d with the given options and returns a
// Parser positioned at the first statement.
func New(src string, d dialect.Dialect, opts Options) (*Parser, error) {
	toks, err := lexer.New(src, d, opts.Unescape).Tokenize()
	if err != nil {
		return nil, err
	}
	return &Parser{toks: toks, dialect: d, opts: opts, depth: opts.RecursionLimit}, nil
}

// Parse tokenizes and parses src into a sequence of statements using
// dialect d and opts; this is the library's public entry point.
func Parse(src string, d dialect.Dialect, opts Options) ([]ast.Statement, error) {
	p, err := New(src, d, opts)
	if err != nil {
		return nil, err
	}
	return p.ParseStatements()
}

// ParseStatements consumes every statement in the token stream,
// separated by semicolons, until EOF.
func (p *Parser) ParseStatements() ([]ast.Statement, error) {
	var stmts []ast.Statement
	for {
		for p.ConsumeToken(token.SemiColon) {
		}
		if p.Peek().Kind == token.EOF {
			return stmts, nil
		}
		stmt, err := p.ParseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
}

// parseCommaSeparated runs fn repeatedly, separated by commas, honoring
// Options.TrailingCommas: when enabled, a final comma is allowed before
// a closing delimiter or a reserved-for-column-alias keyword.
func parseCommaSeparated[T any](p *Parser, fn func() (T, error)) ([]T, error) {
	var out []T
	for {
		v, err := fn()
		if err != nil {
			return nil, err
		}
		out = append(out, v)
		if !p.ConsumeToken(token.Comma) {
			return out, nil
		}
		if p.opts.TrailingCommas && p.atListEnd() {
			return out, nil
		}
	}
}

func (p *Parser) atListEnd() bool {
	tok := p.Peek()
	switch tok.Kind {
	case token.RightParen, token.RightBrace, token.RightBracket, token.SemiColon, token.EOF:
		return true
	case token.Word:
		return token.IsReservedForColumnAlias(tok.Keyword)
	}
	return false
}
