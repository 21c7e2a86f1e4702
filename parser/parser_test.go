package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqlfront/parser/ast"
	"github.com/sqlfront/parser/dialect"
	"github.com/sqlfront/parser/parser"
)

func TestParseSimpleSelect(t *testing.T) {
	stmts, err := parser.Parse("SELECT id, name FROM users WHERE id = 1 ORDER BY name LIMIT 10",
		dialect.Generic(), parser.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, stmts, 1)

	sel, ok := stmts[0].(*ast.SelectStmt)
	require.True(t, ok, "expected *ast.SelectStmt, got %T", stmts[0])
	require.Len(t, sel.Columns, 2)
	assert.NotNil(t, sel.Where)
	require.Len(t, sel.OrderBy, 1)
	require.NotNil(t, sel.Limit)
	assert.NotNil(t, sel.Limit.Count)
}

func TestParseInsertWithOnConflict(t *testing.T) {
	stmts, err := parser.Parse(
		"INSERT INTO widgets (id, name) VALUES (1, 'a') ON CONFLICT (id) DO NOTHING",
		dialect.Postgres(), parser.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, stmts, 1)

	ins, ok := stmts[0].(*ast.InsertStmt)
	require.True(t, ok, "expected *ast.InsertStmt, got %T", stmts[0])
	assert.True(t, ins.OnConflictDoNothing)
	require.Len(t, ins.OnConflictTarget, 1)
	assert.Equal(t, "id", ins.OnConflictTarget[0].Name)
}

func TestParseCreateTable(t *testing.T) {
	stmts, err := parser.Parse(
		"CREATE TABLE IF NOT EXISTS t (id INT PRIMARY KEY, name VARCHAR(32) NOT NULL)",
		dialect.Generic(), parser.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, stmts, 1)

	ct, ok := stmts[0].(*ast.CreateTableStmt)
	require.True(t, ok, "expected *ast.CreateTableStmt, got %T", stmts[0])
	assert.True(t, ct.IfNotExists)
	require.Len(t, ct.Columns, 2)
	assert.Equal(t, "id", ct.Columns[0].Name.Name)
	assert.True(t, ct.Columns[0].PrimaryKey)
	assert.True(t, ct.Columns[1].NotNull)
}

func TestParseMultipleStatements(t *testing.T) {
	stmts, err := parser.Parse("SELECT 1; SELECT 2;", dialect.Generic(), parser.DefaultOptions())
	require.NoError(t, err)
	assert.Len(t, stmts, 2)
}

func TestParseTrailingCommaRejectedByDefault(t *testing.T) {
	_, err := parser.Parse("SELECT a, b, FROM t", dialect.Generic(), parser.DefaultOptions())
	require.Error(t, err)
}

func TestParseTrailingCommaAllowedWhenEnabled(t *testing.T) {
	opts := parser.DefaultOptions()
	opts.TrailingCommas = true
	_, err := parser.Parse("SELECT a, b, FROM t", dialect.Generic(), opts)
	require.NoError(t, err)
}

func TestParseErrorReportsLocation(t *testing.T) {
	_, err := parser.Parse("SELECT FROM", dialect.Generic(), parser.DefaultOptions())
	require.Error(t, err)
	var perr *parser.ParserError
	require.ErrorAs(t, err, &perr)
	assert.NotZero(t, perr.Loc)
}

func TestParseRecursionLimitIsEnforced(t *testing.T) {
	opts := parser.DefaultOptions()
	opts.RecursionLimit = 3

	deep := "SELECT "
	for i := 0; i < 20; i++ {
		deep += "("
	}
	deep += "1"
	for i := 0; i < 20; i++ {
		deep += ")"
	}

	_, err := parser.Parse(deep, dialect.Generic(), opts)
	require.Error(t, err)
	var perr *parser.ParserError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, parser.KindRecursionLimit, perr.Kind)
}
