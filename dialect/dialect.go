// Package dialect defines the capability object that parameterizes both
// the lexer and the parser to a specific SQL variant. Concrete dialects
// compose a BaseDialect and override only what differs.
package dialect

import (
	"github.com/sqlfront/parser/ast"
	"github.com/sqlfront/parser/token"
)

// PrecedenceKind names a precedence tier the parser asks a dialect to
// resolve to a concrete integer, decoupling token recognition from
// operator semantics.
type PrecedenceKind int

const (
	PrecZero PrecedenceKind = iota
	PrecOr
	PrecAnd
	PrecUnaryNot
	PrecIs
	PrecComparison
	PrecBetweenLike
	PrecPipe
	PrecCaret
	PrecAmpersand
	PrecShift
	PrecPlusMinus
	PrecMulDivMod
	PrecUnaryPrefix
	PrecDoubleColon
	PrecCollate
	PrecAt
	PrecArrow
	PrecSubscript
	PrecHighest
)

// NormalizationStrategy controls how unquoted identifiers are folded
// for case-insensitive comparison and keyword matching.
type NormalizationStrategy int

const (
	NormLowercase NormalizationStrategy = iota
	NormUppercase
	NormCaseSensitive
	NormCaseInsensitive
)

// PlaceholderStyle controls which placeholder spellings a dialect's
// lexer accepts for bind parameters.
type PlaceholderStyle int

const (
	PlaceholderQuestion PlaceholderStyle = iota
	PlaceholderDollarNumber
	PlaceholderNamed
)

// IdentifierConfig is the quoting table for delimited identifiers.
type IdentifierConfig struct {
	Quote         byte
	QuoteEnd      byte
	Escape        string
	Normalization NormalizationStrategy
}

// RuneCursor is the minimal character-source contract a dialect needs to
// make a lookahead decision (is_proper_identifier_inside_quotes). The
// lexer's cursor satisfies this structurally; dialect never imports lexer.
type RuneCursor interface {
	PeekAt(n int) (rune, bool)
}

// ExprParser is the callback surface the parser exposes to a dialect's
// prefix/infix hooks so they can recurse back into expression parsing
// without the dialect package importing the parser package.
type ExprParser interface {
	ParseExpr() (ast.Expr, error)
	ParseSubExpr(minPrec int) (ast.Expr, error)
	Peek() token.Token
	PeekAt(n int) token.Token
	Next() token.Token
	ExpectKind(k token.Kind) (token.Token, error)
	ParseParenExprList() ([]ast.Expr, error)
}

// StmtParser is the callback surface for the parse_statement hook.
type StmtParser interface {
	ExprParser
	ParseQuery() (*ast.SelectStmt, error)
}

// Dialect is the capability object queried by both lexer and parser.
type Dialect interface {
	Name() string

	// Lexical predicates.
	IsIdentifierStart(r rune) bool
	IsIdentifierPart(r rune) bool
	IsDelimitedIdentifierStart(r rune) bool
	IsProperIdentifierInsideQuotes(c RuneCursor) bool
	IsCustomOperatorPart(r rune) bool

	Identifiers() IdentifierConfig
	Placeholder() PlaceholderStyle

	// Feature flags.
	SupportsTripleQuotedString() bool
	SupportsStringLiteralBackslashEscape() bool
	SupportsUnicodeStringLiteral() bool
	SupportsNumericPrefix() bool
	SupportsLambdaFunctions() bool
	SupportsMapLiteralSyntax() bool
	SupportsDictionarySyntax() bool
	SupportsFilterDuringAggregation() bool
	SupportsInEmptyList() bool
	SupportsExplainWithUtilityOptions() bool
	SupportsSubstringFromForExpression() bool
	SupportsGroupByExpression() bool
	SupportsParenthesizedSetVariables() bool
	SupportsStartTransactionModifier() bool
	SupportsTableFunctionSubquery() bool
	ConvertTypeBeforeValue() bool
	DescribeRequiresTableKeyword() bool
	RequireIntervalQualifier() bool

	// Precedence.
	PrecedenceOf(t token.Token) PrecedenceKind
	GetPrecedence(k PrecedenceKind) int

	// Hooks. ok=false means "no opinion, use the default rule".
	ParsePrefix(p ExprParser) (expr ast.Expr, ok bool, err error)
	ParseInfix(p ExprParser, left ast.Expr, precedence int) (expr ast.Expr, ok bool, err error)
	ParseStatement(p StmtParser) (stmt ast.Statement, ok bool, err error)
}

// BaseDialect implements Dialect with ANSI-ish defaults. Concrete
// dialects embed it and override the fields/methods that differ instead
// of re-implementing the whole interface (avoids a diamond of
// inheritance while keeping each dialect file small).
type BaseDialect struct {
	DialectName string
	Ident       IdentifierConfig
	Placehold   PlaceholderStyle

	TripleQuotedString         bool
	BackslashEscape            bool
	UnicodeStringLiteral_      bool
	NumericPrefix              bool
	LambdaFunctions            bool
	MapLiteralSyntax           bool
	DictionarySyntax           bool
	FilterDuringAggregation    bool
	InEmptyList                bool
	ExplainWithUtilityOptions  bool
	SubstringFromForExpression bool
	GroupByExpression          bool
	ParenthesizedSetVariables  bool
	StartTransactionModifier   bool
	TableFunctionSubquery      bool
	ConvertTypeBeforeValueFlag bool
	DescribeRequiresTable      bool
	RequireIntervalQualifierFl bool

	// Precedence overrides; falls back to defaultPrecedence when zero.
	Precedence map[PrecedenceKind]int
}

func (d *BaseDialect) Name() string { return d.DialectName }

func (d *BaseDialect) IsIdentifierStart(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r > 127
}

func (d *BaseDialect) IsIdentifierPart(r rune) bool {
	return d.IsIdentifierStart(r) || (r >= '0' && r <= '9') || r == '$'
}

func (d *BaseDialect) IsDelimitedIdentifierStart(r rune) bool {
	return r == d.Ident.Quote
}

func (d *BaseDialect) IsProperIdentifierInsideQuotes(c RuneCursor) bool {
	r, ok := c.PeekAt(0)
	return ok && (d.IsIdentifierStart(r) || r == ' ')
}

func (d *BaseDialect) IsCustomOperatorPart(r rune) bool { return false }

func (d *BaseDialect) Identifiers() IdentifierConfig { return d.Ident }
func (d *BaseDialect) Placeholder() PlaceholderStyle { return d.Placehold }

func (d *BaseDialect) SupportsTripleQuotedString() bool              { return d.TripleQuotedString }
func (d *BaseDialect) SupportsStringLiteralBackslashEscape() bool     { return d.BackslashEscape }
func (d *BaseDialect) SupportsUnicodeStringLiteral() bool             { return d.UnicodeStringLiteral_ }
func (d *BaseDialect) SupportsNumericPrefix() bool                    { return d.NumericPrefix }
func (d *BaseDialect) SupportsLambdaFunctions() bool                  { return d.LambdaFunctions }
func (d *BaseDialect) SupportsMapLiteralSyntax() bool                 { return d.MapLiteralSyntax }
func (d *BaseDialect) SupportsDictionarySyntax() bool                 { return d.DictionarySyntax }
func (d *BaseDialect) SupportsFilterDuringAggregation() bool          { return d.FilterDuringAggregation }
func (d *BaseDialect) SupportsInEmptyList() bool                      { return d.InEmptyList }
func (d *BaseDialect) SupportsExplainWithUtilityOptions() bool        { return d.ExplainWithUtilityOptions }
func (d *BaseDialect) SupportsSubstringFromForExpression() bool       { return d.SubstringFromForExpression }
func (d *BaseDialect) SupportsGroupByExpression() bool                { return d.GroupByExpression }
func (d *BaseDialect) SupportsParenthesizedSetVariables() bool        { return d.ParenthesizedSetVariables }
func (d *BaseDialect) SupportsStartTransactionModifier() bool         { return d.StartTransactionModifier }
func (d *BaseDialect) SupportsTableFunctionSubquery() bool            { return d.TableFunctionSubquery }
func (d *BaseDialect) ConvertTypeBeforeValue() bool                   { return d.ConvertTypeBeforeValueFlag }
func (d *BaseDialect) DescribeRequiresTableKeyword() bool             { return d.DescribeRequiresTable }
func (d *BaseDialect) RequireIntervalQualifier() bool                 { return d.RequireIntervalQualifierFl }

// defaultPrecedence is the ANSI-ish fallback table; dialects override
// individual tiers via BaseDialect.Precedence.
var defaultPrecedence = map[PrecedenceKind]int{
	PrecZero:        0,
	PrecOr:          10,
	PrecAnd:         20,
	PrecUnaryNot:    30,
	PrecIs:          40,
	PrecComparison:  50,
	PrecBetweenLike: 50,
	PrecPipe:        60,
	PrecCaret:       70,
	PrecAmpersand:   80,
	PrecShift:       90,
	PrecPlusMinus:   100,
	PrecMulDivMod:   110,
	PrecUnaryPrefix: 120,
	PrecDoubleColon: 160,
	PrecCollate:     150,
	PrecAt:          130,
	PrecArrow:       140,
	PrecSubscript:   170,
	PrecHighest:     200,
}

func (d *BaseDialect) GetPrecedence(k PrecedenceKind) int {
	if d.Precedence != nil {
		if v, ok := d.Precedence[k]; ok {
			return v
		}
	}
	return defaultPrecedence[k]
}

// PrecedenceOf maps a lookahead token to the PrecedenceKind that governs
// it as an infix/postfix operator, so the Pratt loop can compare
// min_prec against GetPrecedence(that kind). Tokens with no infix
// meaning resolve to PrecZero, which ends the loop.
func (d *BaseDialect) PrecedenceOf(t token.Token) PrecedenceKind {
	switch t.Kind {
	case token.Word:
		switch t.Keyword {
		case token.OR:
			return PrecOr
		case token.AND:
			return PrecAnd
		case token.IS:
			return PrecIs
		case token.IN, token.BETWEEN, token.LIKE, token.ILIKE, token.SIMILAR, token.RLIKE, token.REGEXP:
			return PrecBetweenLike
		case token.NOT:
			return PrecBetweenLike
		case token.DIV:
			return PrecMulDivMod
		case token.COLLATE:
			return PrecCollate
		case token.AT:
			return PrecAt
		case token.XOR:
			return PrecAnd
		}
		return PrecZero
	case token.Equal, token.DoubleEqual, token.NotEqual, token.LessThan, token.LessThanOrEqual,
		token.GreaterThan, token.GreaterThanOrEqual, token.Spaceship:
		return PrecComparison
	case token.StringConcat, token.Pipe:
		return PrecPipe
	case token.Caret, token.CaretAt, token.Hash:
		return PrecCaret
	case token.Ampersand, token.Overlap:
		return PrecAmpersand
	case token.ShiftLeft, token.ShiftRight:
		return PrecShift
	case token.Plus, token.Minus:
		return PrecPlusMinus
	case token.Multiply, token.Divide, token.DuckIntDiv, token.Modulo:
		return PrecMulDivMod
	case token.DoubleColon:
		return PrecDoubleColon
	case token.Arrow, token.LongArrow, token.HashArrow, token.HashLongArrow,
		token.AtArrow, token.ArrowAt, token.HashMinus, token.AtQuestion, token.AtAt,
		token.Question, token.QuestionPipe, token.QuestionAnd:
		return PrecArrow
	case token.Tilde, token.DoubleTilde, token.TildeAsterisk, token.DoubleTildeAsterisk,
		token.ExclamationMarkTilde, token.ExclamationMarkDoubleTilde,
		token.ExclamationMarkTildeAsterisk, token.ExclamationMarkDoubleTildeAsterisk:
		return PrecBetweenLike
	case token.LeftBracket:
		return PrecSubscript
	case token.ExclamationMark:
		return PrecUnaryPrefix
	case token.CustomBinaryOperator:
		return PrecComparison
	default:
		return PrecZero
	}
}

func (d *BaseDialect) ParsePrefix(p ExprParser) (ast.Expr, bool, error)    { return nil, false, nil }
func (d *BaseDialect) ParseInfix(p ExprParser, left ast.Expr, prec int) (ast.Expr, bool, error) {
	return nil, false, nil
}
func (d *BaseDialect) ParseStatement(p StmtParser) (ast.Statement, bool, error) {
	return nil, false, nil
}
