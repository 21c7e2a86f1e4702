package dialect

// Hive returns the Apache Hive dialect: backtick identifiers and the
// permissive GROUP BY <expr> / empty-IN-list grammar Hive shares with
// its descendants.
func Hive() Dialect {
	return &BaseDialect{
		DialectName: "hive",
		Ident: IdentifierConfig{
			Quote:         '`',
			QuoteEnd:      '`',
			Normalization: NormLowercase,
		},
		Placehold:         PlaceholderQuestion,
		GroupByExpression: true,
		InEmptyList:       true,
	}
}
