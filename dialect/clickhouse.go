package dialect

// clickHouseDialect layers ClickHouse's custom operator characters
// (used by its PostgreSQL-operator-like `a :: b` casts and `$`-prefixed
// numbered parameters) over BaseDialect.
type clickHouseDialect struct {
	BaseDialect
}

func (d *clickHouseDialect) IsCustomOperatorPart(r rune) bool {
	return r == ':' || r == '$'
}

// ClickHouse returns the ClickHouse dialect: backtick identifiers,
// numeric-prefixed literals (e.g. 0x-hex, signed suffixes), lambda
// expressions for higher-order functions, and the custom binary
// operators ClickHouse's grammar defines beyond the ANSI set.
func ClickHouse() Dialect {
	return &clickHouseDialect{BaseDialect: BaseDialect{
		DialectName: "clickhouse",
		Ident: IdentifierConfig{
			Quote:         '`',
			QuoteEnd:      '`',
			Normalization: NormCaseSensitive,
		},
		Placehold:        PlaceholderQuestion,
		NumericPrefix:    true,
		LambdaFunctions:  true,
		MapLiteralSyntax: true,
	}}
}
