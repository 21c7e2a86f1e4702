package dialect

// Redshift returns the Amazon Redshift dialect: a Postgres-derived
// grammar (double-quote identifiers, '$n' placeholders) without the
// later Postgres JSON/array operator additions Redshift never adopted.
func Redshift() Dialect {
	return &BaseDialect{
		DialectName: "redshift",
		Ident: IdentifierConfig{
			Quote:         '"',
			QuoteEnd:      '"',
			Normalization: NormLowercase,
		},
		Placehold:                PlaceholderDollarNumber,
		ExplainWithUtilityOptions: true,
		GroupByExpression:         true,
	}
}
