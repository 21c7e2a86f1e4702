package dialect

// Generic returns the ANSI-ish default dialect: no vendor extensions, no
// precedence overrides, standard double-quote identifiers and '?'
// placeholders. Used by the package-level Parse helpers when the caller
// has no specific engine in mind.
func Generic() Dialect {
	return &BaseDialect{
		DialectName: "generic",
		Ident: IdentifierConfig{
			Quote:         '"',
			QuoteEnd:      '"',
			Normalization: NormCaseInsensitive,
		},
		Placehold: PlaceholderQuestion,
	}
}
