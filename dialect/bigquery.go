package dialect

// BigQuery returns the Google BigQuery (GoogleSQL) dialect: backtick
// identifiers, named '@' placeholders, and the struct/array literal and
// lambda syntax BigQuery layers on top of the ANSI core.
func BigQuery() Dialect {
	return &BaseDialect{
		DialectName: "bigquery",
		Ident: IdentifierConfig{
			Quote:         '`',
			QuoteEnd:      '`',
			Normalization: NormCaseSensitive,
		},
		Placehold:       PlaceholderNamed,
		LambdaFunctions: true,
		MapLiteralSyntax: true,
	}
}
