package ast

import "github.com/sqlfront/parser/token"

// CreateViewStmt represents CREATE [OR REPLACE] [MATERIALIZED] VIEW.
type CreateViewStmt struct {
	Name         *CompoundIdentifier
	Columns      []*Ident
	Query        *SelectStmt
	OrReplace    bool
	Materialized bool
	IfNotExists  bool
	Options      []TableOption
	Loc          token.Location
}

func (n *CreateViewStmt) node()               {}
func (n *CreateViewStmt) stmtNode()           {}
func (n *CreateViewStmt) Pos() token.Location { return n.Loc }

// DropViewStmt represents DROP [MATERIALIZED] VIEW.
type DropViewStmt struct {
	Names        []*CompoundIdentifier
	Materialized bool
	IfExists     bool
	Cascade      bool
	Restrict     bool
	Loc          token.Location
}

func (n *DropViewStmt) node()               {}
func (n *DropViewStmt) stmtNode()           {}
func (n *DropViewStmt) Pos() token.Location { return n.Loc }

// CreateDatabaseStmt represents CREATE DATABASE/SCHEMA (some dialects
// treat the two as synonyms; CreateSchemaStmt below models the
// ANSI/Postgres namespace-under-a-database form separately).
type CreateDatabaseStmt struct {
	Name        *Ident
	IfNotExists bool
	Options     []TableOption
	Loc         token.Location
}

func (n *CreateDatabaseStmt) node()               {}
func (n *CreateDatabaseStmt) stmtNode()           {}
func (n *CreateDatabaseStmt) Pos() token.Location { return n.Loc }

// AlterDatabaseStmt represents ALTER DATABASE name SET option = value.
type AlterDatabaseStmt struct {
	Name    *Ident
	Options []TableOption
	Loc     token.Location
}

func (n *AlterDatabaseStmt) node()               {}
func (n *AlterDatabaseStmt) stmtNode()           {}
func (n *AlterDatabaseStmt) Pos() token.Location { return n.Loc }

// DropDatabaseStmt represents DROP DATABASE.
type DropDatabaseStmt struct {
	Name     *Ident
	IfExists bool
	Loc      token.Location
}

func (n *DropDatabaseStmt) node()               {}
func (n *DropDatabaseStmt) stmtNode()           {}
func (n *DropDatabaseStmt) Pos() token.Location { return n.Loc }

// CreateSchemaStmt represents Postgres/Snowflake `CREATE SCHEMA [IF NOT
// EXISTS] name [AUTHORIZATION owner]`.
type CreateSchemaStmt struct {
	Name        *Ident
	IfNotExists bool
	Authorization *Ident
	Loc         token.Location
}

func (n *CreateSchemaStmt) node()               {}
func (n *CreateSchemaStmt) stmtNode()           {}
func (n *CreateSchemaStmt) Pos() token.Location { return n.Loc }

// DropSchemaStmt represents DROP SCHEMA.
type DropSchemaStmt struct {
	Names    []*Ident
	IfExists bool
	Cascade  bool
	Restrict bool
	Loc      token.Location
}

func (n *DropSchemaStmt) node()               {}
func (n *DropSchemaStmt) stmtNode()           {}
func (n *DropSchemaStmt) Pos() token.Location { return n.Loc }

// CreateSequenceStmt represents Postgres/Snowflake CREATE SEQUENCE.
type CreateSequenceStmt struct {
	Name        *CompoundIdentifier
	IfNotExists bool
	Options     []TableOption // START WITH, INCREMENT BY, MINVALUE, MAXVALUE, CACHE, CYCLE
	Loc         token.Location
}

func (n *CreateSequenceStmt) node()               {}
func (n *CreateSequenceStmt) stmtNode()           {}
func (n *CreateSequenceStmt) Pos() token.Location { return n.Loc }

// DropSequenceStmt represents DROP SEQUENCE.
type DropSequenceStmt struct {
	Names    []*CompoundIdentifier
	IfExists bool
	Loc      token.Location
}

func (n *DropSequenceStmt) node()               {}
func (n *DropSequenceStmt) stmtNode()           {}
func (n *DropSequenceStmt) Pos() token.Location { return n.Loc }

// CreateTypeStmt represents Postgres CREATE TYPE as ENUM/composite/range,
// modeled permissively as a raw body plus a structured enum-values list
// for the common ENUM case.
type CreateTypeStmt struct {
	Name     *CompoundIdentifier
	EnumVals []string
	RawBody  string // composite/range bodies not otherwise modeled
	Loc      token.Location
}

func (n *CreateTypeStmt) node()               {}
func (n *CreateTypeStmt) stmtNode()           {}
func (n *CreateTypeStmt) Pos() token.Location { return n.Loc }

// DropTypeStmt represents DROP TYPE.
type DropTypeStmt struct {
	Names    []*CompoundIdentifier
	IfExists bool
	Loc      token.Location
}

func (n *DropTypeStmt) node()               {}
func (n *DropTypeStmt) stmtNode()           {}
func (n *DropTypeStmt) Pos() token.Location { return n.Loc }

// RoutineParam is one parameter of a CREATE FUNCTION/PROCEDURE.
type RoutineParam struct {
	Name *Ident
	Type *DataType
	Mode string // IN, OUT, INOUT
}

// CreateFunctionStmt represents CREATE [OR REPLACE] FUNCTION. The body is
// kept as a raw token-source string since function bodies are typically
// a nested language (PL/pgSQL, JavaScript, SQL) out of this grammar's
// scope; only the signature is structured.
type CreateFunctionStmt struct {
	Name       *CompoundIdentifier
	OrReplace  bool
	Params     []RoutineParam
	Returns    *DataType
	Language   string
	Body       string
	Loc        token.Location
}

func (n *CreateFunctionStmt) node()               {}
func (n *CreateFunctionStmt) stmtNode()           {}
func (n *CreateFunctionStmt) Pos() token.Location { return n.Loc }

// DropFunctionStmt represents DROP FUNCTION.
type DropFunctionStmt struct {
	Name     *CompoundIdentifier
	IfExists bool
	Loc      token.Location
}

func (n *DropFunctionStmt) node()               {}
func (n *DropFunctionStmt) stmtNode()           {}
func (n *DropFunctionStmt) Pos() token.Location { return n.Loc }

// CreateProcedureStmt represents CREATE [OR REPLACE] PROCEDURE.
type CreateProcedureStmt struct {
	Name      *CompoundIdentifier
	OrReplace bool
	Params    []RoutineParam
	Language  string
	Body      string
	Loc       token.Location
}

func (n *CreateProcedureStmt) node()               {}
func (n *CreateProcedureStmt) stmtNode()           {}
func (n *CreateProcedureStmt) Pos() token.Location { return n.Loc }

// DropProcedureStmt represents DROP PROCEDURE.
type DropProcedureStmt struct {
	Name     *CompoundIdentifier
	IfExists bool
	Loc      token.Location
}

func (n *DropProcedureStmt) node()               {}
func (n *DropProcedureStmt) stmtNode()           {}
func (n *DropProcedureStmt) Pos() token.Location { return n.Loc }

// CreateTriggerStmt represents CREATE TRIGGER. Timing/event strings are
// kept unstructured (BEFORE/AFTER/INSTEAD OF x INSERT/UPDATE/DELETE)
// since dialects compose them differently.
type CreateTriggerStmt struct {
	Name      *Ident
	Timing    string
	Events    []string
	Table     *CompoundIdentifier
	ForEachRow bool
	When      Expr
	Body      string
	Loc       token.Location
}

func (n *CreateTriggerStmt) node()               {}
func (n *CreateTriggerStmt) stmtNode()           {}
func (n *CreateTriggerStmt) Pos() token.Location { return n.Loc }

// DropTriggerStmt represents DROP TRIGGER.
type DropTriggerStmt struct {
	Name     *Ident
	Table    *CompoundIdentifier
	IfExists bool
	Loc      token.Location
}

func (n *DropTriggerStmt) node()               {}
func (n *DropTriggerStmt) stmtNode()           {}
func (n *DropTriggerStmt) Pos() token.Location { return n.Loc }

// CreateExtensionStmt represents Postgres CREATE EXTENSION.
type CreateExtensionStmt struct {
	Name        *Ident
	IfNotExists bool
	Schema      *Ident
	Version     string
	Loc         token.Location
}

func (n *CreateExtensionStmt) node()               {}
func (n *CreateExtensionStmt) stmtNode()           {}
func (n *CreateExtensionStmt) Pos() token.Location { return n.Loc }

// DropExtensionStmt represents DROP EXTENSION.
type DropExtensionStmt struct {
	Names    []*Ident
	IfExists bool
	Loc      token.Location
}

func (n *DropExtensionStmt) node()               {}
func (n *DropExtensionStmt) stmtNode()           {}
func (n *DropExtensionStmt) Pos() token.Location { return n.Loc }

// CreateRoleStmt represents CREATE ROLE/USER.
type CreateRoleStmt struct {
	Name    *Ident
	Options []TableOption
	Loc     token.Location
}

func (n *CreateRoleStmt) node()               {}
func (n *CreateRoleStmt) stmtNode()           {}
func (n *CreateRoleStmt) Pos() token.Location { return n.Loc }

// DropRoleStmt represents DROP ROLE/USER.
type DropRoleStmt struct {
	Names    []*Ident
	IfExists bool
	Loc      token.Location
}

func (n *DropRoleStmt) node()               {}
func (n *DropRoleStmt) stmtNode()           {}
func (n *DropRoleStmt) Pos() token.Location { return n.Loc }

// CreateSecretStmt represents DuckDB's `CREATE [OR REPLACE] [PERSISTENT|
// TEMPORARY] SECRET [name] (key value, ...)`, used to configure
// credentials for remote storage access.
type CreateSecretStmt struct {
	Name      *Ident
	OrReplace bool
	Persistent bool
	Type      string // S3, GCS, AZURE, ...
	Options   []TableOption
	Loc       token.Location
}

func (n *CreateSecretStmt) node()               {}
func (n *CreateSecretStmt) stmtNode()           {}
func (n *CreateSecretStmt) Pos() token.Location { return n.Loc }

// DropSecretStmt represents DROP SECRET.
type DropSecretStmt struct {
	Name     *Ident
	IfExists bool
	Loc      token.Location
}

func (n *DropSecretStmt) node()               {}
func (n *DropSecretStmt) stmtNode()           {}
func (n *DropSecretStmt) Pos() token.Location { return n.Loc }

// CreatePolicyStmt represents Postgres row-level-security `CREATE POLICY
// name ON table [FOR cmd] [TO role] [USING (expr)] [WITH CHECK (expr)]`.
type CreatePolicyStmt struct {
	Name       *Ident
	Table      *CompoundIdentifier
	Command    string // ALL, SELECT, INSERT, UPDATE, DELETE
	Roles      []*Ident
	Using      Expr
	WithCheck  Expr
	Loc        token.Location
}

func (n *CreatePolicyStmt) node()               {}
func (n *CreatePolicyStmt) stmtNode()           {}
func (n *CreatePolicyStmt) Pos() token.Location { return n.Loc }

// DropPolicyStmt represents DROP POLICY.
type DropPolicyStmt struct {
	Name     *Ident
	Table    *CompoundIdentifier
	IfExists bool
	Loc      token.Location
}

func (n *DropPolicyStmt) node()               {}
func (n *DropPolicyStmt) stmtNode()           {}
func (n *DropPolicyStmt) Pos() token.Location { return n.Loc }
