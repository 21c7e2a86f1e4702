package dialect

// SQLite returns the SQLite dialect: double-quoted identifiers (backtick
// identifiers are not accepted), ATTACH/DETACH/PRAGMA statements, and the
// '?' placeholder style.
func SQLite() Dialect {
	return &BaseDialect{
		DialectName: "sqlite",
		Ident: IdentifierConfig{
			Quote:         '"',
			QuoteEnd:      '"',
			Normalization: NormCaseInsensitive,
		},
		Placehold:   PlaceholderQuestion,
		InEmptyList: true,
	}
}
