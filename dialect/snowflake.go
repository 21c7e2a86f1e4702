package dialect

// Snowflake returns the Snowflake dialect: double-quoted identifiers,
// '$'-prefixed numeric placeholders, lambda expressions, and the
// permissive GROUP BY <expr> grammar Snowflake accepts alongside
// ordinal GROUP BY.
func Snowflake() Dialect {
	return &BaseDialect{
		DialectName: "snowflake",
		Ident: IdentifierConfig{
			Quote:         '"',
			QuoteEnd:      '"',
			Normalization: NormUppercase,
		},
		Placehold:                PlaceholderDollarNumber,
		LambdaFunctions:          true,
		GroupByExpression:        true,
		FilterDuringAggregation:  true,
		TableFunctionSubquery:    true,
	}
}
