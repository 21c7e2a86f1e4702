package ast

import "github.com/sqlfront/parser/token"

// Assignment is `col = expr`, used by UPDATE SET and upsert clauses.
type Assignment struct {
	Column *CompoundIdentifier
	Value  Expr
}

// InsertStmt represents INSERT/REPLACE INTO.
type InsertStmt struct {
	With    *WithClause
	Table   *CompoundIdentifier
	Columns []*Ident
	Values  [][]Expr
	Select  *SelectStmt

	Ignore  bool
	Replace bool // REPLACE INTO

	OnDupKeyUpdate      []Assignment // MySQL ON DUPLICATE KEY UPDATE
	OnConflictTarget    []*Ident     // Postgres/SQLite ON CONFLICT (cols)
	OnConflictDoNothing bool
	OnConflictUpdate    []Assignment

	Returning []SelectColumn

	Loc token.Location
}

func (n *InsertStmt) node()           {}
func (n *InsertStmt) stmtNode()       {}
func (n *InsertStmt) Pos() token.Location { return n.Loc }

// UpdateStmt represents UPDATE.
type UpdateStmt struct {
	With    *WithClause
	Tables  []TableRef
	Set     []Assignment
	From    []TableRef // Postgres/SQLite UPDATE ... FROM
	Where   Expr
	OrderBy []OrderByItem
	Limit   *LimitClause
	Returning []SelectColumn
	Loc     token.Location
}

func (n *UpdateStmt) node()           {}
func (n *UpdateStmt) stmtNode()       {}
func (n *UpdateStmt) Pos() token.Location { return n.Loc }

// DeleteStmt represents DELETE.
type DeleteStmt struct {
	With      *WithClause
	Tables    []*CompoundIdentifier
	From      []TableRef
	Using     []TableRef
	Where     Expr
	OrderBy   []OrderByItem
	Limit     *LimitClause
	Returning []SelectColumn
	Loc       token.Location
}

func (n *DeleteStmt) node()           {}
func (n *DeleteStmt) stmtNode()       {}
func (n *DeleteStmt) Pos() token.Location { return n.Loc }

// MergeAction tags what a MERGE WHEN clause does.
type MergeAction int

const (
	MergeUpdate MergeAction = iota
	MergeDelete
	MergeInsert
)

// MergeWhenClause is one `WHEN [NOT] MATCHED [AND cond] THEN action`.
type MergeWhenClause struct {
	Matched bool
	Cond    Expr
	Action  MergeAction
	Set     []Assignment
	Columns []*Ident
	Values  []Expr
}

// MergeStmt represents MERGE INTO target USING source ON cond WHEN ...
type MergeStmt struct {
	Target    TableRef
	Source    TableRef
	On        Expr
	Whens     []MergeWhenClause
	Loc       token.Location
}

func (n *MergeStmt) node()           {}
func (n *MergeStmt) stmtNode()       {}
func (n *MergeStmt) Pos() token.Location { return n.Loc }
