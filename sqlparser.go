// Package sqlparser is a dialect-aware SQL tokenizer and Pratt parser
// producing a typed AST.
//
// Design goals:
//   - Token-index cursor with checkpoint/restore speculative parsing
//   - Pratt (top-down operator precedence) expression parser
//   - Dialect capability object parameterizes lexer and parser alike
//   - Supports PostgreSQL, MySQL, SQLite, MSSQL, Snowflake, BigQuery,
//     Redshift, ClickHouse, DuckDB, Hive, and Databricks, plus a generic
//     ANSI-ish default
//   - DDL and DML statements; DDL forms without a dedicated node are
//     kept as GenericDDLStmt
//
// Usage:
//
//	stmt, err := sqlparser.ParseStatement("SELECT id, name FROM users WHERE id = 1")
//	stmts, err := sqlparser.Parse(sql, dialect.Postgres(), sqlparser.DefaultOptions())
//	p, err := sqlparser.New(src, dialect.MySQL(), sqlparser.DefaultOptions())
//	stmts, err := p.All()
package sqlparser

import (
	"github.com/sqlfront/parser/ast"
	"github.com/sqlfront/parser/dialect"
	"github.com/sqlfront/parser/lexer"
	"github.com/sqlfront/parser/parser"
)

// Re-export core types so callers only import this package for the
// common case; reaching into ast/dialect/parser directly still works
// for anything not re-exported here.
type (
	Statement = ast.Statement
	Expr      = ast.Expr

	Dialect = dialect.Dialect
	Options = parser.Options

	ParserError   = parser.ParserError
	TokenizeError = lexer.TokenizeError
)

// DefaultOptions returns the library's stated default parse options.
func DefaultOptions() Options { return parser.DefaultOptions() }

// Parse tokenizes and parses src under dialect d, returning every
// statement in the source. A nil d uses the generic ANSI-ish dialect.
func Parse(src string, d Dialect, opts Options) ([]Statement, error) {
	if d == nil {
		d = dialect.Generic()
	}
	return parser.Parse(src, d, opts)
}

// ParseStatement parses src, which must contain exactly one statement
// (plus optional trailing semicolons/whitespace), under the generic
// dialect and default options.
func ParseStatement(src string) (Statement, error) {
	stmts, err := Parse(src, dialect.Generic(), DefaultOptions())
	if err != nil {
		return nil, err
	}
	if len(stmts) != 1 {
		return nil, &ParserError{Message: "expected exactly one statement"}
	}
	return stmts[0], nil
}

// Parser is a resumable cursor over a tokenized source, for callers that
// want to consume statements one at a time rather than all at once.
type Parser struct {
	p *parser.Parser
}

// New tokenizes src under dialect d (the generic dialect if nil) with
// opts and returns a Parser positioned at the first statement.
func New(src string, d Dialect, opts Options) (*Parser, error) {
	if d == nil {
		d = dialect.Generic()
	}
	p, err := parser.New(src, d, opts)
	if err != nil {
		return nil, err
	}
	return &Parser{p: p}, nil
}

// All parses every remaining statement in the source.
func (p *Parser) All() ([]Statement, error) {
	return p.p.ParseStatements()
}
