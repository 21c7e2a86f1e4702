package token

// Kind tags the variant carried by a Token. It mirrors the tagged union
// described in the data model: whitespace, words, numbers, the many
// string-literal flavors, and the punctuation/operator singletons.
type Kind uint16

const (
	Illegal Kind = iota
	EOF

	// Whitespace (retained in the token stream, skipped by the parser cursor).
	Space
	Tab
	Newline
	InlineComment
	MultilineComment

	// Word is an identifier or keyword; see Token.Keyword / Token.Quote.
	Word
	// Number is an integer or float literal; see Token.IsLong.
	Number

	// String literal flavors.
	SingleQuotedString
	DoubleQuotedString
	TripleSingleQuotedString
	TripleDoubleQuotedString
	DollarQuotedString // Token.DollarTag holds the optional tag
	NationalStringLiteral
	EscapedStringLiteral
	UnicodeStringLiteral
	HexStringLiteral
	ByteSingleQuotedString
	ByteDoubleQuotedString
	RawSingleQuotedString
	RawDoubleQuotedString

	// Punctuation and operator singletons.
	LeftParen
	RightParen
	Comma
	Period
	SemiColon
	Colon
	DoubleColon
	Assignment // :=
	Plus
	Minus
	Multiply
	Divide
	DuckIntDiv // //
	Modulo
	StringConcat // ||
	Pipe
	Ampersand
	Caret
	CaretAt // ^@
	Tilde
	DoubleTilde
	DoubleTildeAsterisk
	TildeAsterisk
	ExclamationMark
	DoubleExclamationMark
	ExclamationMarkTilde
	ExclamationMarkTildeAsterisk
	ExclamationMarkDoubleTilde
	ExclamationMarkDoubleTildeAsterisk
	Equal
	DoubleEqual
	NotEqual
	LessThan
	LessThanOrEqual
	GreaterThan
	GreaterThanOrEqual
	Spaceship // <=>
	ShiftLeft
	ShiftRight
	Arrow        // ->
	LongArrow    // ->>
	HashArrow    // #>
	HashLongArrow // #>>
	AtArrow      // @>
	ArrowAt      // <@
	HashMinus    // #-
	AtQuestion   // @?
	AtAt         // @@
	Question
	QuestionPipe // ?|
	QuestionAnd  // ?&
	LeftBracket
	RightBracket
	LeftBrace
	RightBrace
	AtSign
	Hash
	Backslash
	Overlap      // &&
	PGSquareRoot // |/
	PGCubeRoot   // ||/
	Placeholder
	CustomBinaryOperator
	FatArrow // =>
)

var kindNames = map[Kind]string{
	Illegal: "Illegal", EOF: "EOF",
	Space: "Space", Tab: "Tab", Newline: "Newline",
	InlineComment: "InlineComment", MultilineComment: "MultilineComment",
	Word: "Word", Number: "Number",
	SingleQuotedString: "SingleQuotedString", DoubleQuotedString: "DoubleQuotedString",
	TripleSingleQuotedString: "TripleSingleQuotedString", TripleDoubleQuotedString: "TripleDoubleQuotedString",
	DollarQuotedString:     "DollarQuotedString",
	NationalStringLiteral:  "NationalStringLiteral",
	EscapedStringLiteral:   "EscapedStringLiteral",
	UnicodeStringLiteral:   "UnicodeStringLiteral",
	HexStringLiteral:       "HexStringLiteral",
	ByteSingleQuotedString: "ByteSingleQuotedString",
	ByteDoubleQuotedString: "ByteDoubleQuotedString",
	RawSingleQuotedString:  "RawSingleQuotedString",
	RawDoubleQuotedString:  "RawDoubleQuotedString",
	LeftParen: "(", RightParen: ")", Comma: ",", Period: ".", SemiColon: ";",
	Colon: ":", DoubleColon: "::", Assignment: ":=",
	Plus: "+", Minus: "-", Multiply: "*", Divide: "/", DuckIntDiv: "//", Modulo: "%",
	StringConcat: "||", Pipe: "|", Ampersand: "&", Caret: "^", CaretAt: "^@",
	Tilde: "~", DoubleTilde: "~~", DoubleTildeAsterisk: "~~*", TildeAsterisk: "~*",
	ExclamationMark: "!", DoubleExclamationMark: "!!",
	ExclamationMarkTilde: "!~", ExclamationMarkTildeAsterisk: "!~*",
	ExclamationMarkDoubleTilde: "!~~", ExclamationMarkDoubleTildeAsterisk: "!~~*",
	Equal: "=", DoubleEqual: "==", NotEqual: "<>",
	LessThan: "<", LessThanOrEqual: "<=", GreaterThan: ">", GreaterThanOrEqual: ">=",
	Spaceship: "<=>", ShiftLeft: "<<", ShiftRight: ">>",
	Arrow: "->", LongArrow: "->>", HashArrow: "#>", HashLongArrow: "#>>",
	AtArrow: "@>", ArrowAt: "<@", HashMinus: "#-", AtQuestion: "@?", AtAt: "@@",
	Question: "?", QuestionPipe: "?|", QuestionAnd: "?&",
	LeftBracket: "[", RightBracket: "]", LeftBrace: "{", RightBrace: "}",
	AtSign: "@", Hash: "#", Backslash: "\\", Overlap: "&&",
	PGSquareRoot: "|/", PGCubeRoot: "||/", Placeholder: "Placeholder",
	CustomBinaryOperator: "CustomBinaryOperator", FatArrow: "=>",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "Unknown"
}

// IsWhitespace reports whether a token kind is retained-but-skippable
// whitespace or comment, per the parser cursor's skip rule.
func (k Kind) IsWhitespace() bool {
	switch k {
	case Space, Tab, Newline, InlineComment, MultilineComment:
		return true
	default:
		return false
	}
}

// Token is a single located lexical token. It is a tagged union in
// struct form: only the fields relevant to Kind are populated.
type Token struct {
	Kind Kind
	Loc  Location

	// Value is the decoded text for Word/Number/string-literal kinds
	// (quotes stripped, escapes applied unless Options.Unescape is false).
	Value string
	// Raw is the verbatim source text of whitespace, operator and period
	// tokens, used for round-tripping and error messages. It is empty for
	// words, numbers, string literals and comments.
	Raw string

	// Word-specific.
	Keyword Keyword
	Quote   byte // delimiter rune if the word was quoted, 0 otherwise

	// Number-specific.
	IsLong bool // trailing L suffix

	// DollarQuotedString-specific.
	DollarTag string

	// Comment prefix ("--", "//", "#", "/*").
	CommentPrefix string

	// CustomBinaryOperator-specific: the full composed operator text.
	OperatorText string
}

// IsKeyword reports whether this Word token matched a known keyword.
func (t Token) IsKeyword() bool { return t.Kind == Word && t.Keyword != Undefined }
