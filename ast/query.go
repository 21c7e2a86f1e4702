package ast

import "github.com/sqlfront/parser/token"

// WithClause is the `WITH [RECURSIVE] cte, ...` CTE prefix of a query.
type WithClause struct {
	Recursive bool
	CTEs      []CTE
}

// CTE is one `name [(cols)] AS (query)` entry of a WithClause.
type CTE struct {
	Name    *Ident
	Columns []*Ident
	Query   *SelectStmt
}

// SelectColumn is one item of a SELECT projection list.
type SelectColumn struct {
	Expr  Expr
	Alias *Ident
	Star  bool // bare `*` or `table.*`, Expr holds the (Qualified)Wildcard
}

// NullsOrder tags an explicit NULLS FIRST/LAST on an ORDER BY item.
type NullsOrder int

const (
	NullsDefault NullsOrder = iota
	NullsFirst
	NullsLast
)

// OrderByItem is a single ORDER BY key.
type OrderByItem struct {
	Expr  Expr
	Desc  bool
	Nulls NullsOrder
}

// LimitClause is `LIMIT count [OFFSET skip]`, normalized from any of the
// dialect spellings the parser accepts.
type LimitClause struct {
	Count  Expr
	Offset Expr
	ByExpr []Expr // ClickHouse `LIMIT n BY expr, ...`
}

// FetchClause is the standard `FETCH {FIRST|NEXT} n {ROW|ROWS} ONLY`.
type FetchClause struct {
	Count    Expr
	WithTies bool
}

// LockStrength tags a `FOR UPDATE`/`FOR SHARE` clause.
type LockStrength int

const (
	LockForUpdate LockStrength = iota
	LockForShare
)

// ForLockClause is one `FOR UPDATE|SHARE [OF tables] [NOWAIT|SKIP LOCKED]`.
type ForLockClause struct {
	Strength LockStrength
	Of       []*CompoundIdentifier
	NoWait   bool
	SkipLocked bool
}

// ForXMLClause captures SQL Server `FOR XML|JSON|BROWSE` (terminal, no
// further FOR clauses follow it).
type ForXMLClause struct {
	Mode    string // XML, JSON, BROWSE
	Options []string
}

// FormatClause is ClickHouse `FORMAT <name>` or `FORMAT NULL`.
type FormatClause struct {
	Name     string
	IsNull   bool
}

// SetOp enumerates UNION/INTERSECT/EXCEPT.
type SetOp uint8

const (
	Union SetOp = iota
	Intersect
	Except
)

// SetOperation chains a query body to the next one with a set operator.
// Left and Right are both always set: the enclosing SelectStmt carries
// no body of its own, Left holds the left-hand operand and Right the
// right-hand one. A third or later term folds onto an already-combined
// left-associative chain, so Left may itself carry a SetOp (spec §4.7's
// UNION/EXCEPT/INTERSECT precedence climb).
type SetOperation struct {
	Left     *SelectStmt
	Op       SetOp
	All      bool
	Distinct bool
	ByName   bool
	Right    *SelectStmt
}

// SelectStmt is a SELECT/VALUES/TABLE query, possibly chained via
// SetOp into a set operation, with the full battery of trailing clauses.
type SelectStmt struct {
	With     *WithClause
	Distinct bool
	DistinctByName bool
	Columns  []SelectColumn
	From     []TableRef
	Where    Expr
	GroupBy  []Expr
	Having   Expr
	Window   map[string]*WindowSpec
	OrderBy  []OrderByItem
	Limit    *LimitClause
	Fetch    *FetchClause
	ForLocks []ForLockClause
	ForXML   *ForXMLClause
	Format   *FormatClause
	Settings []Assignment

	SetOp *SetOperation

	Values [][]Expr // bare VALUES (...) , (...) query body

	Loc token.Location
}

func (n *SelectStmt) node()           {}
func (n *SelectStmt) stmtNode()       {}
func (n *SelectStmt) exprNode()       {} // a SELECT can appear as a scalar/table expr
func (n *SelectStmt) Pos() token.Location { return n.Loc }
