package ast

import "github.com/sqlfront/parser/token"

// TableRef is a table reference appearing in a FROM/USING/JOIN clause.
type TableRef interface {
	Node
	tableRefNode()
}

// SimpleTable is a named table with an optional alias.
type SimpleTable struct {
	Name  *CompoundIdentifier
	Alias *Ident
	Loc   token.Location
}

func (n *SimpleTable) node()           {}
func (n *SimpleTable) tableRefNode()   {}
func (n *SimpleTable) Pos() token.Location { return n.Loc }

// SubqueryTable is `(SELECT ...) [AS alias]`.
type SubqueryTable struct {
	Query *SelectStmt
	Alias *Ident
	Loc   token.Location
}

func (n *SubqueryTable) node()           {}
func (n *SubqueryTable) tableRefNode()   {}
func (n *SubqueryTable) Pos() token.Location { return n.Loc }

// FunctionTable is a table-valued function call, e.g. DuckDB
// `read_csv('f.csv')` or Postgres `UNNEST(arr)` used as a FROM item.
type FunctionTable struct {
	Call  *Function
	Alias *Ident
	Loc   token.Location
}

func (n *FunctionTable) node()           {}
func (n *FunctionTable) tableRefNode()   {}
func (n *FunctionTable) Pos() token.Location { return n.Loc }

// JoinKind enumerates the supported join forms.
type JoinKind uint8

const (
	InnerJoin JoinKind = iota
	LeftJoin
	RightJoin
	FullJoin
	CrossJoin
	NaturalJoin
)

// JoinTable is `left <kind> JOIN right [ON cond | USING (cols)]`.
type JoinTable struct {
	Left, Right TableRef
	Kind        JoinKind
	On          Expr
	Using       []*Ident
	Loc         token.Location
}

func (n *JoinTable) node()           {}
func (n *JoinTable) tableRefNode()   {}
func (n *JoinTable) Pos() token.Location { return n.Loc }
