package dialect

// MSSQL returns the Microsoft SQL Server (T-SQL) dialect: bracketed
// identifiers, named '@' placeholders, and FOR XML/JSON/BROWSE query
// tails. TOP is not parsed.
func MSSQL() Dialect {
	return &BaseDialect{
		DialectName: "mssql",
		Ident: IdentifierConfig{
			Quote:         '[',
			QuoteEnd:      ']',
			Normalization: NormCaseInsensitive,
		},
		Placehold:             PlaceholderNamed,
		DescribeRequiresTable: true,
	}
}
