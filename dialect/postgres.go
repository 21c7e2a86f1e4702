package dialect

// Postgres returns the PostgreSQL dialect: '$n' bind parameters,
// dollar-quoted string bodies, ILIKE/SIMILAR TO, and the richer EXPLAIN
// and transaction-start grammar Postgres supports over the ANSI core.
func Postgres() Dialect {
	return &BaseDialect{
		DialectName: "postgresql",
		Ident: IdentifierConfig{
			Quote:         '"',
			QuoteEnd:      '"',
			Normalization: NormLowercase,
		},
		Placehold:                 PlaceholderDollarNumber,
		UnicodeStringLiteral_:     true,
		ExplainWithUtilityOptions: true,
		GroupByExpression:         true,
		ParenthesizedSetVariables: true,
		StartTransactionModifier:  true,
		TableFunctionSubquery:     true,
		RequireIntervalQualifierFl: false,
	}
}
