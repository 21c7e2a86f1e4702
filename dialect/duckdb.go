package dialect

// DuckDB returns the DuckDB dialect: double-quote identifiers, the '//'
// integer-division operator, list/struct literals, and the relaxed
// GROUP BY / table-function-subquery grammar DuckDB borrows from
// Postgres and Snowflake alike.
func DuckDB() Dialect {
	return &BaseDialect{
		DialectName: "duckdb",
		Ident: IdentifierConfig{
			Quote:         '"',
			QuoteEnd:      '"',
			Normalization: NormCaseInsensitive,
		},
		Placehold:               PlaceholderQuestion,
		MapLiteralSyntax:        true,
		GroupByExpression:       true,
		TableFunctionSubquery:   true,
		FilterDuringAggregation: true,
	}
}
