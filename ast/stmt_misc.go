package ast

import "github.com/sqlfront/parser/token"

// UseStmt represents USE database.
type UseStmt struct {
	Name *Ident
	Loc  token.Location
}

func (n *UseStmt) node()               {}
func (n *UseStmt) stmtNode()           {}
func (n *UseStmt) Pos() token.Location { return n.Loc }

// ShowStmt represents the family of `SHOW <kind> [...]` statements
// (SHOW TABLES, SHOW VARIABLES, ...). Kept permissive: Kind names what's
// being shown, Object holds an optional non-keyword name after it, and
// Like/Where hold the optional trailing LIKE and WHERE qualifiers. FROM
// qualifiers are not parsed.
type ShowStmt struct {
	Kind    string
	Object  *CompoundIdentifier
	Like    Expr
	Where   Expr
	Loc     token.Location
}

func (n *ShowStmt) node()               {}
func (n *ShowStmt) stmtNode()           {}
func (n *ShowStmt) Pos() token.Location { return n.Loc }

// ExplainStmt represents EXPLAIN [ANALYZE] [<options>] <stmt>, and also
// covers dialects' utility-option forms (e.g. Postgres `EXPLAIN (FORMAT
// JSON, ANALYZE) ...`) via the Options bag rather than fixed booleans,
// per BaseDialect.SupportsExplainWithUtilityOptions.
type ExplainStmt struct {
	Analyze bool
	Verbose bool
	Options []TableOption
	Stmt    Statement
	Loc     token.Location
}

func (n *ExplainStmt) node()               {}
func (n *ExplainStmt) stmtNode()           {}
func (n *ExplainStmt) Pos() token.Location { return n.Loc }

// DescribeStmt represents DESCRIBE/DESC table (MySQL/Hive), distinct
// from ExplainStmt since some dialects reuse the DESCRIBE keyword for
// plan explanation too (BaseDialect.DescribeRequiresTableKeyword routes
// between the two forms).
type DescribeStmt struct {
	Object *CompoundIdentifier
	Loc    token.Location
}

func (n *DescribeStmt) node()               {}
func (n *DescribeStmt) stmtNode()           {}
func (n *DescribeStmt) Pos() token.Location { return n.Loc }

// CallStmt represents CALL procedure(args).
type CallStmt struct {
	Name *CompoundIdentifier
	Args []Expr
	Loc  token.Location
}

func (n *CallStmt) node()               {}
func (n *CallStmt) stmtNode()           {}
func (n *CallStmt) Pos() token.Location { return n.Loc }

// TxKind enumerates transaction control statements.
type TxKind uint8

const (
	TxBegin TxKind = iota
	TxCommit
	TxRollback
	TxSavepoint
	TxReleaseSavepoint
	TxRollbackToSavepoint
)

// TransactionStmt represents BEGIN/START TRANSACTION/COMMIT/ROLLBACK/
// SAVEPOINT and friends. Modifiers carries dialect modifiers such as
// Postgres `ISOLATION LEVEL SERIALIZABLE` or `READ ONLY`, parsed only
// when BaseDialect.SupportsStartTransactionModifier is set.
type TransactionStmt struct {
	Kind        TxKind
	Modifiers   []string
	SavepointID *Ident
	Loc         token.Location
}

func (n *TransactionStmt) node()               {}
func (n *TransactionStmt) stmtNode()           {}
func (n *TransactionStmt) Pos() token.Location { return n.Loc }

// SetAssignment is one `name = value` (or `name TO value`) pair of a SET
// statement. Value is kept as an Expr since session variables can be set
// to arbitrary literals or identifiers (e.g. `SET TIME ZONE 'UTC'`).
type SetAssignment struct {
	Name  *CompoundIdentifier
	Value Expr
}

// SetStmt represents SET [SESSION|LOCAL|GLOBAL] name = value [, ...],
// including the parenthesized-list form some dialects allow
// (BaseDialect.SupportsParenthesizedSetVariables).
type SetStmt struct {
	Scope       string // SESSION, LOCAL, GLOBAL, "" for unscoped
	Assignments []SetAssignment
	Loc         token.Location
}

func (n *SetStmt) node()               {}
func (n *SetStmt) stmtNode()           {}
func (n *SetStmt) Pos() token.Location { return n.Loc }

// PrepareStmt represents PREPARE name [(types)] AS stmt.
type PrepareStmt struct {
	Name  *Ident
	Types []*DataType
	Stmt  Statement
	Loc   token.Location
}

func (n *PrepareStmt) node()               {}
func (n *PrepareStmt) stmtNode()           {}
func (n *PrepareStmt) Pos() token.Location { return n.Loc }

// ExecuteStmt represents EXECUTE name [(args)] / EXEC name args.
type ExecuteStmt struct {
	Name *Ident
	Args []Expr
	Loc  token.Location
}

func (n *ExecuteStmt) node()               {}
func (n *ExecuteStmt) stmtNode()           {}
func (n *ExecuteStmt) Pos() token.Location { return n.Loc }

// DeallocateStmt represents DEALLOCATE [PREPARE] name.
type DeallocateStmt struct {
	Name *Ident
	All  bool
	Loc  token.Location
}

func (n *DeallocateStmt) node()               {}
func (n *DeallocateStmt) stmtNode()           {}
func (n *DeallocateStmt) Pos() token.Location { return n.Loc }

// GrantStmt represents GRANT privileges ON object TO grantee.
type GrantStmt struct {
	Privileges []string
	Object     *CompoundIdentifier
	Grantees   []*Ident
	WithGrant  bool
	Loc        token.Location
}

func (n *GrantStmt) node()               {}
func (n *GrantStmt) stmtNode()           {}
func (n *GrantStmt) Pos() token.Location { return n.Loc }

// RevokeStmt represents REVOKE privileges ON object FROM grantee.
type RevokeStmt struct {
	Privileges []string
	Object     *CompoundIdentifier
	Grantees   []*Ident
	Cascade    bool
	Loc        token.Location
}

func (n *RevokeStmt) node()               {}
func (n *RevokeStmt) stmtNode()           {}
func (n *RevokeStmt) Pos() token.Location { return n.Loc }

// AttachStmt represents DuckDB/SQLite `ATTACH [DATABASE] 'path' AS name
// [(options)]`.
type AttachStmt struct {
	Path    Expr
	Alias   *Ident
	Options []TableOption
	Loc     token.Location
}

func (n *AttachStmt) node()               {}
func (n *AttachStmt) stmtNode()           {}
func (n *AttachStmt) Pos() token.Location { return n.Loc }

// DetachStmt represents DETACH [DATABASE] name.
type DetachStmt struct {
	Name *Ident
	Loc  token.Location
}

func (n *DetachStmt) node()               {}
func (n *DetachStmt) stmtNode()           {}
func (n *DetachStmt) Pos() token.Location { return n.Loc }

// PragmaStmt represents SQLite/DuckDB `PRAGMA name [= value | (args)]`.
type PragmaStmt struct {
	Name  *Ident
	Value Expr
	Args  []Expr
	Loc   token.Location
}

func (n *PragmaStmt) node()               {}
func (n *PragmaStmt) stmtNode()           {}
func (n *PragmaStmt) Pos() token.Location { return n.Loc }

// InstallStmt represents DuckDB `INSTALL extension [FROM repo]`.
type InstallStmt struct {
	Name *Ident
	From string
	Loc  token.Location
}

func (n *InstallStmt) node()               {}
func (n *InstallStmt) stmtNode()           {}
func (n *InstallStmt) Pos() token.Location { return n.Loc }

// LoadStmt represents DuckDB `LOAD extension`.
type LoadStmt struct {
	Name *Ident
	Loc  token.Location
}

func (n *LoadStmt) node()               {}
func (n *LoadStmt) stmtNode()           {}
func (n *LoadStmt) Pos() token.Location { return n.Loc }

// OptimizeStmt represents ClickHouse `OPTIMIZE TABLE name [PARTITION p]
// [FINAL] [DEDUPLICATE]`.
type OptimizeStmt struct {
	Table       *CompoundIdentifier
	Partition   Expr
	Final       bool
	Deduplicate bool
	Loc         token.Location
}

func (n *OptimizeStmt) node()               {}
func (n *OptimizeStmt) stmtNode()           {}
func (n *OptimizeStmt) Pos() token.Location { return n.Loc }

// FlushStmt represents MySQL/ClickHouse `FLUSH [kind] [object]`.
type FlushStmt struct {
	Kind   string
	Object *CompoundIdentifier
	Loc    token.Location
}

func (n *FlushStmt) node()               {}
func (n *FlushStmt) stmtNode()           {}
func (n *FlushStmt) Pos() token.Location { return n.Loc }

// GenericDDLStmt is the fallback node for a recognized DDL keyword whose
// detailed grammar this parser does not model structurally. It preserves
// the statement's leading keyword and verbatim source text so callers
// can at least identify and relocate it, rather than failing the whole
// parse.
type GenericDDLStmt struct {
	Keyword string
	Text    string
	Loc     token.Location
}

func (n *GenericDDLStmt) node()               {}
func (n *GenericDDLStmt) stmtNode()           {}
func (n *GenericDDLStmt) Pos() token.Location { return n.Loc }
