package dialect

// Databricks returns the Databricks SQL dialect: Hive-descended
// grammar with backtick identifiers plus the lambda expressions and
// FILTER (WHERE ...) aggregation clause Databricks adds over Hive.
func Databricks() Dialect {
	return &BaseDialect{
		DialectName: "databricks",
		Ident: IdentifierConfig{
			Quote:         '`',
			QuoteEnd:      '`',
			Normalization: NormLowercase,
		},
		Placehold:               PlaceholderQuestion,
		GroupByExpression:       true,
		InEmptyList:             true,
		LambdaFunctions:         true,
		FilterDuringAggregation: true,
	}
}
