package parser

import (
	"strings"

	"github.com/sqlfront/parser/ast"
	"github.com/sqlfront/parser/token"
)

// typeNameFollows reports whether the upcoming tokens look like the start
// of a data type name, used by tryTypedStringPrefix's speculative parse
// to bail out quickly on ordinary expressions.
func (p *Parser) typeNameFollows() bool {
	tok := p.Peek()
	if tok.Kind != token.Word {
		return false
	}
	return isKnownTypeWord(strings.ToUpper(tok.Value))
}

var knownTypeWords = map[string]bool{
	"INT": true, "INTEGER": true, "BIGINT": true, "SMALLINT": true, "TINYINT": true,
	"INT2": true, "INT4": true, "INT8": true, "INT16": true, "INT32": true, "INT64": true, "INT128": true,
	"UINT8": true, "UINT16": true, "UINT32": true, "UINT64": true, "UINT128": true,
	"FLOAT": true, "FLOAT4": true, "FLOAT8": true, "DOUBLE": true, "REAL": true,
	"DECIMAL": true, "NUMERIC": true, "DEC": true, "NUMBER": true,
	"VARCHAR": true, "CHAR": true, "CHARACTER": true, "NVARCHAR": true, "NCHAR": true,
	"TEXT": true, "STRING": true, "CLOB": true, "LONGTEXT": true, "MEDIUMTEXT": true, "TINYTEXT": true,
	"BOOLEAN": true, "BOOL": true,
	"DATE": true, "TIME": true, "TIMESTAMP": true, "TIMESTAMPTZ": true, "DATETIME": true, "DATETIME2": true,
	"BLOB": true, "BYTEA": true, "BINARY": true, "VARBINARY": true, "BYTES": true,
	"JSON": true, "JSONB": true, "VARIANT": true, "OBJECT": true,
	"UUID": true, "UNIQUEIDENTIFIER": true,
	"ARRAY": true, "ENUM": true, "SET": true, "INTERVAL": true, "MONEY": true,
	"BIT": true, "VARBIT": true, "SERIAL": true, "BIGSERIAL": true, "SMALLSERIAL": true,
	"GEOMETRY": true, "GEOGRAPHY": true, "XML": true, "HSTORE": true, "INET": true, "CIDR": true, "MACADDR": true,
}

func isKnownTypeWord(upper string) bool { return knownTypeWords[upper] }

// tryParseDataType speculatively parses a data type name; used from
// tryTypedStringPrefix where failure must not consume input.
func (p *Parser) tryParseDataType() (*ast.DataType, error) {
	if !p.typeNameFollows() {
		return nil, errAt(p.Peek().Loc, "not a data type")
	}
	return p.parseDataType()
}

// parseDataType parses a SQL type name with optional precision/scale,
// UNSIGNED/ZEROFILL, charset/collation, array suffixes, and WITH/WITHOUT
// TIME ZONE, and ENUM/SET value lists (spec §4.5 CAST/CONVERT/typed
// string, §11 DDL column types).
func (p *Parser) parseDataType() (*ast.DataType, error) {
	tok, err := p.ExpectKind(token.Word)
	if err != nil {
		return nil, err
	}
	name := strings.ToUpper(tok.Value)
	dt := &ast.DataType{Name: name, Loc: tok.Loc}

	switch name {
	case "DOUBLE":
		if p.ParseKeyword(token.PRECISION) {
			dt.Name = "DOUBLE PRECISION"
		}
	case "CHARACTER", "CHAR", "NCHAR", "VARCHAR", "NVARCHAR":
		if p.ParseKeyword(token.VARYING) {
			dt.Name = name + " VARYING"
		}
	}

	if name == "ENUM" || name == "SET" {
		if _, err := p.ExpectKind(token.LeftParen); err != nil {
			return nil, err
		}
		vals, err := parseCommaSeparated(p, func() (string, error) {
			lit, err := p.ExpectKind(token.SingleQuotedString)
			if err != nil {
				return "", err
			}
			return lit.Value, nil
		})
		if err != nil {
			return nil, err
		}
		dt.EnumVals = vals
		if _, err := p.ExpectKind(token.RightParen); err != nil {
			return nil, err
		}
		return p.parseTypeSuffix(dt)
	}

	if p.ConsumeToken(token.LeftParen) {
		prec, err := p.parseIntLiteral()
		if err != nil {
			return nil, err
		}
		dt.Precision = &prec
		if p.ConsumeToken(token.Comma) {
			scale, err := p.parseIntLiteral()
			if err != nil {
				return nil, err
			}
			dt.Scale = &scale
		}
		if _, err := p.ExpectKind(token.RightParen); err != nil {
			return nil, err
		}
	}

	if name == "TIMESTAMP" || name == "TIME" {
		if p.ParseKeyword(token.WITH) {
			if _, err := p.ExpectKeyword(token.TIME); err != nil {
				return nil, err
			}
			if _, err := p.ExpectKeyword(token.ZONE); err != nil {
				return nil, err
			}
			dt.Name = name + " WITH TIME ZONE"
		} else if p.ParseKeyword(token.WITHOUT) {
			if _, err := p.ExpectKeyword(token.TIME); err != nil {
				return nil, err
			}
			if _, err := p.ExpectKeyword(token.ZONE); err != nil {
				return nil, err
			}
			dt.Name = name + " WITHOUT TIME ZONE"
		}
	}

	return p.parseTypeSuffix(dt)
}

func (p *Parser) parseTypeSuffix(dt *ast.DataType) (*ast.DataType, error) {
	for p.ParseOneOfKeywords(token.UNSIGNED) != 0 {
		dt.Unsigned = true
	}
	for p.ParseOneOfKeywords(token.ZEROFILL) != 0 {
		dt.Zerofill = true
		dt.Unsigned = true
	}
	if p.ParseKeywords(token.CHARACTER, token.SET) {
		cs, err := p.parseIdent()
		if err != nil {
			return nil, err
		}
		dt.Charset = cs.Name
	}
	if p.ParseKeyword(token.COLLATE) {
		coll, err := p.parseIdent()
		if err != nil {
			return nil, err
		}
		dt.Collation = coll.Name
	}
	for p.ConsumeToken(token.LeftBracket) {
		if _, err := p.ExpectKind(token.RightBracket); err != nil {
			return nil, err
		}
		dt.ArrayDims++
	}
	return dt, nil
}
