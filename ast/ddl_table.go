package ast

import "github.com/sqlfront/parser/token"

// GeneratedCol describes a computed column: `GENERATED ALWAYS AS (expr)
// {STORED|VIRTUAL}`.
type GeneratedCol struct {
	Expr   Expr
	Stored bool
}

// ForeignKeyRef is a column-level `REFERENCES table (cols) [ON DELETE
// action] [ON UPDATE action]`.
type ForeignKeyRef struct {
	Table    *CompoundIdentifier
	Columns  []*Ident
	OnDelete RefAction
	OnUpdate RefAction
}

// RefAction enumerates referential actions.
type RefAction uint8

const (
	NoAction RefAction = iota
	RefRestrict
	RefCascade
	RefSetNull
	RefSetDefault
)

// ColumnDef defines a single column in a CREATE/ALTER TABLE.
type ColumnDef struct {
	Name          *Ident
	Type          *DataType
	NotNull       bool
	Null          bool // explicit NULL (distinguishes "unspecified" from "NULL")
	Default       Expr
	AutoIncrement bool
	PrimaryKey    bool
	Unique        bool
	Comment       string
	References    *ForeignKeyRef
	Check         Expr
	Generated     *GeneratedCol
	OnUpdate      Expr
	Collation     string
	Loc           token.Location
}

func (n *ColumnDef) node()           {}
func (n *ColumnDef) Pos() token.Location { return n.Loc }

// ConstraintType enumerates table-level constraint kinds.
type ConstraintType uint8

const (
	PrimaryKeyConstraint ConstraintType = iota
	UniqueConstraint
	IndexConstraint
	ForeignKeyConstraint
	CheckConstraint
	FulltextConstraint
	SpatialConstraint
)

// IndexColDef is one column (optionally with a prefix length or explicit
// direction) in an index/constraint column list.
type IndexColDef struct {
	Name   *Ident
	Length *int
	Desc   bool
}

// TableConstraint is a table-level constraint clause.
type TableConstraint struct {
	Name      *Ident
	Type      ConstraintType
	Columns   []IndexColDef
	RefTable  *CompoundIdentifier
	RefCols   []*Ident
	OnDelete  RefAction
	OnUpdate  RefAction
	Check     Expr
	IndexAlgo string // BTREE, HASH, GIN, GIST, ...
	Loc       token.Location
}

func (n *TableConstraint) node()           {}
func (n *TableConstraint) Pos() token.Location { return n.Loc }

// TableOption is a generic `KEY = VALUE` table-level option, e.g.
// `ENGINE = InnoDB` or DuckDB/BigQuery key-value table properties.
type TableOption struct {
	Key   string
	Value string
}

// CreateTableStmt represents CREATE [TEMPORARY] TABLE.
type CreateTableStmt struct {
	Table       *CompoundIdentifier
	Temporary   bool
	IfNotExists bool
	Columns     []*ColumnDef
	Constraints []*TableConstraint
	Options     []TableOption
	Select      *SelectStmt // CREATE TABLE ... AS SELECT
	Like        *CompoundIdentifier
	Loc         token.Location
}

func (n *CreateTableStmt) node()           {}
func (n *CreateTableStmt) stmtNode()       {}
func (n *CreateTableStmt) Pos() token.Location { return n.Loc }

// AlterCmd is one clause of an ALTER TABLE statement.
type AlterCmd interface {
	Node
	alterCmdNode()
}

type AddColumnCmd struct {
	Col    *ColumnDef
	First  bool
	After  *Ident
	Loc    token.Location
}

func (c *AddColumnCmd) node()           {}
func (c *AddColumnCmd) alterCmdNode()   {}
func (c *AddColumnCmd) Pos() token.Location { return c.Loc }

type DropColumnCmd struct {
	Name     *Ident
	IfExists bool
	Loc      token.Location
}

func (c *DropColumnCmd) node()           {}
func (c *DropColumnCmd) alterCmdNode()   {}
func (c *DropColumnCmd) Pos() token.Location { return c.Loc }

type ModifyColumnCmd struct {
	Col   *ColumnDef
	First bool
	After *Ident
	Loc   token.Location
}

func (c *ModifyColumnCmd) node()           {}
func (c *ModifyColumnCmd) alterCmdNode()   {}
func (c *ModifyColumnCmd) Pos() token.Location { return c.Loc }

type RenameColumnCmd struct {
	From, To *Ident
	Loc      token.Location
}

func (c *RenameColumnCmd) node()           {}
func (c *RenameColumnCmd) alterCmdNode()   {}
func (c *RenameColumnCmd) Pos() token.Location { return c.Loc }

type AddConstraintCmd struct {
	Constraint *TableConstraint
	Loc        token.Location
}

func (c *AddConstraintCmd) node()           {}
func (c *AddConstraintCmd) alterCmdNode()   {}
func (c *AddConstraintCmd) Pos() token.Location { return c.Loc }

type DropConstraintCmd struct {
	Name     *Ident
	IfExists bool
	Loc      token.Location
}

func (c *DropConstraintCmd) node()           {}
func (c *DropConstraintCmd) alterCmdNode()   {}
func (c *DropConstraintCmd) Pos() token.Location { return c.Loc }

type RenameTableCmd struct {
	NewName *CompoundIdentifier
	Loc     token.Location
}

func (c *RenameTableCmd) node()           {}
func (c *RenameTableCmd) alterCmdNode()   {}
func (c *RenameTableCmd) Pos() token.Location { return c.Loc }

type SetTableOptionCmd struct {
	Options []TableOption
	Loc     token.Location
}

func (c *SetTableOptionCmd) node()           {}
func (c *SetTableOptionCmd) alterCmdNode()   {}
func (c *SetTableOptionCmd) Pos() token.Location { return c.Loc }

// AlterTableStmt represents ALTER TABLE name cmd, cmd, ...
type AlterTableStmt struct {
	Table    *CompoundIdentifier
	IfExists bool
	Cmds     []AlterCmd
	Loc      token.Location
}

func (n *AlterTableStmt) node()           {}
func (n *AlterTableStmt) stmtNode()       {}
func (n *AlterTableStmt) Pos() token.Location { return n.Loc }

// CreateIndexStmt represents CREATE [UNIQUE|FULLTEXT|SPATIAL] INDEX.
type CreateIndexStmt struct {
	Name        *Ident
	Table       *CompoundIdentifier
	Columns     []IndexColDef
	Type        ConstraintType
	IfNotExists bool
	IndexAlgo   string
	Where       Expr // partial index predicate
	Loc         token.Location
}

func (n *CreateIndexStmt) node()           {}
func (n *CreateIndexStmt) stmtNode()       {}
func (n *CreateIndexStmt) Pos() token.Location { return n.Loc }

// DropTableStmt represents DROP TABLE.
type DropTableStmt struct {
	Tables   []*CompoundIdentifier
	IfExists bool
	Cascade  bool
	Restrict bool
	Loc      token.Location
}

func (n *DropTableStmt) node()           {}
func (n *DropTableStmt) stmtNode()       {}
func (n *DropTableStmt) Pos() token.Location { return n.Loc }

// DropIndexStmt represents DROP INDEX.
type DropIndexStmt struct {
	Name     *Ident
	Table    *CompoundIdentifier
	IfExists bool
	Loc      token.Location
}

func (n *DropIndexStmt) node()           {}
func (n *DropIndexStmt) stmtNode()       {}
func (n *DropIndexStmt) Pos() token.Location { return n.Loc }

// TruncateStmt represents TRUNCATE TABLE.
type TruncateStmt struct {
	Tables []*CompoundIdentifier
	Loc    token.Location
}

func (n *TruncateStmt) node()           {}
func (n *TruncateStmt) stmtNode()       {}
func (n *TruncateStmt) Pos() token.Location { return n.Loc }
