// Package ast defines the SQL abstract syntax tree produced by the
// parser: a large tagged union of expression, statement, and supporting
// node types with no back-pointers and strict parent-to-child ownership.
package ast

import "github.com/sqlfront/parser/token"

// Node is implemented by every AST node.
type Node interface {
	Pos() token.Location
	node()
}

// Statement is a top-level SQL statement.
type Statement interface {
	Node
	stmtNode()
}

// Expr is a SQL expression.
type Expr interface {
	Node
	exprNode()
}
