package ast

import "github.com/sqlfront/parser/token"

// DataType represents a SQL column/cast type name with optional
// precision/scale/charset/enum-values, and an optional array suffix.
type DataType struct {
	Name      string
	Precision *int
	Scale     *int
	Unsigned  bool
	Zerofill  bool
	Charset   string
	Collation string
	EnumVals  []string // ENUM/SET
	ArrayDims int       // trailing [] / [][] repetitions
	Loc       token.Location
}

func (n *DataType) node()           {}
func (n *DataType) Pos() token.Location { return n.Loc }
