package dialect

// MySQL returns the MySQL/MariaDB dialect: backtick identifiers,
// backslash string escapes, '?' placeholders, and the AUTO_INCREMENT /
// DESCRIBE-without-TABLE grammar MySQL carries over strict ANSI SQL.
func MySQL() Dialect {
	return &BaseDialect{
		DialectName: "mysql",
		Ident: IdentifierConfig{
			Quote:         '`',
			QuoteEnd:      '`',
			Normalization: NormLowercase,
		},
		Placehold:             PlaceholderQuestion,
		BackslashEscape:       true,
		InEmptyList:           true,
		DescribeRequiresTable: false,
	}
}
