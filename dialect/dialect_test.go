package dialect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sqlfront/parser/dialect"
)

func TestDialectNames(t *testing.T) {
	cases := []struct {
		d    dialect.Dialect
		name string
	}{
		{dialect.Generic(), "generic"},
		{dialect.Postgres(), "postgresql"},
		{dialect.MySQL(), "mysql"},
		{dialect.MSSQL(), "mssql"},
		{dialect.SQLite(), "sqlite"},
		{dialect.Snowflake(), "snowflake"},
		{dialect.BigQuery(), "bigquery"},
		{dialect.Redshift(), "redshift"},
		{dialect.ClickHouse(), "clickhouse"},
		{dialect.DuckDB(), "duckdb"},
		{dialect.Hive(), "hive"},
		{dialect.Databricks(), "databricks"},
	}
	for _, c := range cases {
		assert.Equal(t, c.name, c.d.Name())
	}
}

func TestDialectPlaceholderStyles(t *testing.T) {
	assert.Equal(t, dialect.PlaceholderQuestion, dialect.Generic().Placeholder())
	assert.Equal(t, dialect.PlaceholderDollarNumber, dialect.Postgres().Placeholder())
	assert.Equal(t, dialect.PlaceholderQuestion, dialect.MySQL().Placeholder())
	assert.Equal(t, dialect.PlaceholderNamed, dialect.MSSQL().Placeholder())
	assert.Equal(t, dialect.PlaceholderDollarNumber, dialect.Snowflake().Placeholder())
}

func TestDialectIdentifierQuoting(t *testing.T) {
	assert.Equal(t, byte('`'), dialect.MySQL().Identifiers().Quote)
	assert.Equal(t, byte('"'), dialect.Postgres().Identifiers().Quote)
	assert.Equal(t, byte('['), dialect.MSSQL().Identifiers().Quote)
	assert.Equal(t, byte(']'), dialect.MSSQL().Identifiers().QuoteEnd)
}

func TestClickHouseCustomOperatorParts(t *testing.T) {
	ch := dialect.ClickHouse()
	assert.True(t, ch.IsCustomOperatorPart(':'))
	assert.False(t, ch.IsCustomOperatorPart('a'))
}

func TestDialectFeatureFlags(t *testing.T) {
	assert.True(t, dialect.Snowflake().SupportsLambdaFunctions())
	assert.False(t, dialect.Generic().SupportsLambdaFunctions())

	assert.True(t, dialect.DuckDB().SupportsMapLiteralSyntax())
	assert.True(t, dialect.BigQuery().SupportsMapLiteralSyntax())
	assert.False(t, dialect.Postgres().SupportsMapLiteralSyntax())

	assert.True(t, dialect.MSSQL().DescribeRequiresTableKeyword())
	assert.False(t, dialect.Generic().DescribeRequiresTableKeyword())
}

func TestBaseDialectPrecedenceFallsBackToDefaults(t *testing.T) {
	g := dialect.Generic()
	assert.Greater(t, g.GetPrecedence(dialect.PrecAnd), g.GetPrecedence(dialect.PrecOr))
	assert.Greater(t, g.GetPrecedence(dialect.PrecUnaryNot), g.GetPrecedence(dialect.PrecAnd))
}
