package sqlparser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sqlparser "github.com/sqlfront/parser"
)

func TestAnalyzeSQLParseError(t *testing.T) {
	report := sqlparser.AnalyzeSQL("SELECT FROM")
	assert.False(t, report.Valid)
	require.NotEmpty(t, report.Findings)
	assert.Equal(t, "PARSE_ERROR", report.Findings[0].Code)
}

func TestAnalyzeSQLRiskyPatterns(t *testing.T) {
	sql := `SELECT * FROM users WHERE name LIKE '%abc'; UPDATE users SET active = 1; DELETE FROM logs;`
	report := sqlparser.AnalyzeSQL(sql)
	require.True(t, report.Valid, "findings: %#v", report.Findings)

	codes := map[string]bool{}
	for _, f := range report.Findings {
		codes[f.Code] = true
	}
	for _, code := range []string{"SELECT_STAR", "LIKE_LEADING_WILDCARD", "UPDATE_WITHOUT_WHERE", "DELETE_WITHOUT_WHERE"} {
		assert.True(t, codes[code], "expected finding %s, findings=%#v", code, report.Findings)
	}
}

func TestAnalyzeSQLJSONBHint(t *testing.T) {
	report := sqlparser.AnalyzeSQL(`CREATE TABLE events (payload JSONB)`)
	require.True(t, report.Valid)

	found := false
	for _, f := range report.Findings {
		if f.Code == "JSONB_DIALECT_NOTE" {
			found = true
			break
		}
	}
	assert.True(t, found, "expected JSONB_DIALECT_NOTE finding")
}
