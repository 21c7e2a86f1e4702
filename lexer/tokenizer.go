package lexer

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/sqlfront/parser/dialect"
	"github.com/sqlfront/parser/token"
)

// caseFold performs Unicode-aware case folding for keyword matching,
// rather than an ASCII-only strings.ToLower, so identifiers containing
// non-ASCII letters fold correctly before the keyword lookup.
var caseFold = cases.Fold()

// Tokenizer drives a Cursor over SQL source and produces a flat,
// in-order token vector, retaining whitespace and comments so that the
// parser (or an external writer) can reconstruct exact source spacing.
type Tokenizer struct {
	cur      *Cursor
	dialect  dialect.Dialect
	unescape bool
}

// New creates a Tokenizer for src under the given dialect. unescape
// controls whether quoted-string bodies decode backslash/doubled-quote
// escapes (true) or preserve them verbatim (false).
func New(src string, d dialect.Dialect, unescape bool) *Tokenizer {
	return &Tokenizer{cur: NewCursor(src), dialect: d, unescape: unescape}
}

// Tokenize scans the entire input and returns its token vector, or the
// first TokenizeError encountered.
func (t *Tokenizer) Tokenize() ([]token.Token, error) {
	var toks []token.Token
	for {
		tok, err := t.next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks, nil
		}
	}
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isHexDigit(r rune) bool {
	return isDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func (t *Tokenizer) next() (token.Token, error) {
	start := t.cur.Location()
	r, ok := t.cur.Peek()
	if !ok {
		return token.Token{Kind: token.EOF, Loc: start}, nil
	}

	switch {
	case r == ' ' || r == '\t' || r == '\n' || r == '\r':
		return t.lexWhitespace(start)
	case r == '-' && peekIs(t.cur, 1, '-'):
		return t.lexInlineComment(start, "--")
	case r == '/' && peekIs(t.cur, 1, '/') && t.dialect.Name() != "duckdb" && t.dialect.Name() != "generic":
		return t.lexInlineComment(start, "//")
	case r == '#' && !peekIs(t.cur, 1, '>') && t.dialect.Name() != "postgresql":
		return t.lexInlineComment(start, "#")
	case r == '/' && peekIs(t.cur, 1, '*'):
		return t.lexBlockComment(start)
	case isDigit(r) || (r == '.' && peekDigit(t.cur, 1)):
		return t.lexNumber(start)
	case t.dialect.IsDelimitedIdentifierStart(r):
		return t.lexQuotedIdentifier(start)
	case r == '\'':
		return t.lexQuotedString(start, '\'', token.SingleQuotedString)
	case r == '"' && !t.dialect.IsDelimitedIdentifierStart(r):
		return t.lexQuotedString(start, '"', token.DoubleQuotedString)
	case r == '$':
		return t.lexDollar(start)
	case isStringPrefixLetter(r) && t.dialect.IsIdentifierStart(r):
		if tok, ok, err := t.tryPrefixedString(start, r); ok || err != nil {
			return tok, err
		}
		return t.lexWord(start)
	case t.dialect.IsIdentifierStart(r):
		return t.lexWord(start)
	default:
		return t.lexOperator(start)
	}
}

func peekIs(c *Cursor, n int, want rune) bool {
	r, ok := c.PeekAt(n)
	return ok && r == want
}

func peekDigit(c *Cursor, n int) bool {
	r, ok := c.PeekAt(n)
	return ok && isDigit(r)
}

func isStringPrefixLetter(r rune) bool {
	switch r {
	case 'B', 'b', 'R', 'r', 'N', 'n', 'E', 'e', 'X', 'x', 'U', 'u':
		return true
	}
	return false
}

func (t *Tokenizer) lexWhitespace(start token.Location) (token.Token, error) {
	from := t.cur.Offset()
	r, _ := t.cur.Next()
	kind := token.Space
	switch r {
	case '\t':
		kind = token.Tab
	case '\n':
		kind = token.Newline
	case '\r':
		kind = token.Newline
	}
	return token.Token{Kind: kind, Loc: start, Raw: t.cur.Slice(from, t.cur.Offset())}, nil
}

func (t *Tokenizer) lexInlineComment(start token.Location, prefix string) (token.Token, error) {
	for range prefix {
		t.cur.Next()
	}
	var sb strings.Builder
	sb.WriteString(prefix)
	for {
		r, ok := t.cur.Peek()
		if !ok || r == '\n' {
			if ok {
				nr, _ := t.cur.Next()
				sb.WriteRune(nr)
			}
			break
		}
		nr, _ := t.cur.Next()
		sb.WriteRune(nr)
	}
	return token.Token{Kind: token.InlineComment, Loc: start, Value: sb.String(), CommentPrefix: prefix}, nil
}

func (t *Tokenizer) lexBlockComment(start token.Location) (token.Token, error) {
	t.cur.Next()
	t.cur.Next()
	var sb strings.Builder
	sb.WriteString("/*")
	depth := 1
	for depth > 0 {
		r, ok := t.cur.Peek()
		if !ok {
			return token.Token{}, newErr(start, "Unterminated block comment. Expected */")
		}
		if r == '/' && peekIs(t.cur, 1, '*') {
			t.cur.Next()
			t.cur.Next()
			sb.WriteString("/*")
			depth++
			continue
		}
		if r == '*' && peekIs(t.cur, 1, '/') {
			t.cur.Next()
			t.cur.Next()
			sb.WriteString("*/")
			depth--
			continue
		}
		nr, _ := t.cur.Next()
		sb.WriteRune(nr)
	}
	return token.Token{Kind: token.MultilineComment, Loc: start, Value: sb.String(), CommentPrefix: "/*"}, nil
}

func (t *Tokenizer) lexNumber(start token.Location) (token.Token, error) {
	if peekIs(t.cur, 0, '0') && (peekIs(t.cur, 1, 'x') || peekIs(t.cur, 1, 'X')) {
		t.cur.Next()
		t.cur.Next()
		digits := t.cur.TakeWhile(isHexDigit)
		return token.Token{Kind: token.HexStringLiteral, Loc: start, Value: digits}, nil
	}

	var sb strings.Builder
	intPart := t.cur.TakeWhile(isDigit)
	sb.WriteString(intPart)

	sawDot := false
	if r, ok := t.cur.Peek(); ok && r == '.' {
		sawDot = true
		t.cur.Next()
		sb.WriteByte('.')
		sb.WriteString(t.cur.TakeWhile(isDigit))
	}

	if intPart == "" && !sawDot {
		t.cur.Next()
		return token.Token{Kind: token.Illegal, Loc: start}, nil
	}
	if intPart == "" && sawDot && sb.Len() == 1 {
		return token.Token{Kind: token.Period, Loc: start, Raw: "."}, nil
	}

	sawExp := false
	if r, ok := t.cur.Peek(); ok && (r == 'e' || r == 'E') {
		if nr, ok2 := t.cur.PeekAt(1); ok2 && (isDigit(nr) || nr == '+' || nr == '-') {
			sawExp = true
			exp, _ := t.cur.Next()
			sb.WriteRune(exp)
			if sign, ok3 := t.cur.Peek(); ok3 && (sign == '+' || sign == '-') {
				sr, _ := t.cur.Next()
				sb.WriteRune(sr)
			}
			sb.WriteString(t.cur.TakeWhile(isDigit))
		}
	}

	isLong := false
	if r, ok := t.cur.Peek(); ok && r == 'L' {
		t.cur.Next()
		isLong = true
	} else if !sawExp && t.dialect.SupportsNumericPrefix() {
		if r, ok := t.cur.Peek(); ok && t.dialect.IsIdentifierPart(r) {
			rest := t.cur.TakeWhile(t.dialect.IsIdentifierPart)
			return token.Token{Kind: token.Word, Loc: start, Value: sb.String() + rest}, nil
		}
	}

	return token.Token{Kind: token.Number, Loc: start, Value: sb.String(), IsLong: isLong}, nil
}

func (t *Tokenizer) lexWord(start token.Location) (token.Token, error) {
	text := t.cur.TakeWhile(t.dialect.IsIdentifierPart)
	kw := token.LookupKeyword(caseFold.String(text))
	return token.Token{Kind: token.Word, Loc: start, Value: text, Keyword: kw}, nil
}

func (t *Tokenizer) lexQuotedIdentifier(start token.Location) (token.Token, error) {
	id := t.dialect.Identifiers()
	open, _ := t.cur.Next()
	closeQuote := id.QuoteEnd
	if closeQuote == 0 {
		closeQuote = id.Quote
	}
	var sb strings.Builder
	for {
		r, ok := t.cur.Peek()
		if !ok {
			return token.Token{}, newErr(start, "Unterminated quoted identifier. Expected %c", closeQuote)
		}
		if byte(r) == closeQuote {
			t.cur.Next()
			if nr, ok2 := t.cur.Peek(); ok2 && byte(nr) == closeQuote {
				t.cur.Next()
				sb.WriteRune(nr)
				continue
			}
			break
		}
		nr, _ := t.cur.Next()
		sb.WriteRune(nr)
	}
	return token.Token{Kind: token.Word, Loc: start, Value: sb.String(), Quote: byte(open)}, nil
}

func (t *Tokenizer) tryPrefixedString(start token.Location, prefix rune) (token.Token, bool, error) {
	if (prefix == 'U' || prefix == 'u') && peekIs(t.cur, 1, '&') {
		if !peekIs(t.cur, 2, '\'') || !t.dialect.SupportsUnicodeStringLiteral() {
			return token.Token{}, false, nil
		}
		t.cur.Next() // u
		t.cur.Next() // &
		tok, err := t.lexQuotedString(start, '\'', token.UnicodeStringLiteral)
		return tok, true, err
	}
	nr, ok := t.cur.PeekAt(1)
	if !ok || (nr != '\'' && nr != '"') {
		return token.Token{}, false, nil
	}
	switch prefix {
	case 'N', 'n':
		t.cur.Next()
		tok, err := t.lexQuotedString(start, byte(nr), token.NationalStringLiteral)
		return tok, true, err
	case 'E', 'e':
		if !t.dialect.SupportsStringLiteralBackslashEscape() {
			return token.Token{}, false, nil
		}
		t.cur.Next()
		tok, err := t.lexQuotedString(start, byte(nr), token.EscapedStringLiteral)
		return tok, true, err
	case 'X', 'x':
		t.cur.Next()
		tok, err := t.lexQuotedString(start, byte(nr), token.HexStringLiteral)
		return tok, true, err
	case 'B', 'b':
		t.cur.Next()
		tok, err := t.lexQuotedString(start, byte(nr), token.ByteSingleQuotedString)
		return tok, true, err
	case 'R', 'r':
		t.cur.Next()
		tok, err := t.lexQuotedString(start, byte(nr), token.RawSingleQuotedString)
		return tok, true, err
	}
	return token.Token{}, false, nil
}

// lexQuotedString reads a single- or triple-quoted string body starting
// at a quote character of the given kind. Triple-quoting is attempted
// only when the dialect allows it; two immediately-adjacent opening
// quotes otherwise yield an empty string.
func (t *Tokenizer) lexQuotedString(start token.Location, quote byte, kind token.Kind) (token.Token, error) {
	q, _ := t.cur.Next()
	quoteCount := 1
	if t.dialect.SupportsTripleQuotedString() && peekIs(t.cur, 0, rune(quote)) {
		t.cur.Next()
		quoteCount++
		if peekIs(t.cur, 0, rune(quote)) {
			t.cur.Next()
			quoteCount++
		}
	}
	if quoteCount == 2 {
		return token.Token{Kind: kind, Loc: start, Value: "", Quote: quote}, nil
	}
	triple := quoteCount == 3
	if triple {
		kind = tripleKind(kind)
	}

	var raw strings.Builder
	for {
		r, ok := t.cur.Peek()
		if !ok {
			return token.Token{}, newErr(start, "Unterminated string literal. Expected %c", q)
		}
		if byte(r) == quote {
			if triple {
				if t.countAhead(quote) >= 3 {
					t.cur.Next()
					t.cur.Next()
					t.cur.Next()
					break
				}
				nr, _ := t.cur.Next()
				raw.WriteRune(nr)
				continue
			}
			t.cur.Next()
			if nr, ok2 := t.cur.Peek(); ok2 && byte(nr) == quote {
				t.cur.Next()
				if !t.unescape {
					raw.WriteRune(nr)
				}
				raw.WriteRune(nr)
				continue
			}
			break
		}
		if r == '\\' && t.dialect.SupportsStringLiteralBackslashEscape() {
			t.cur.Next()
			nr, ok2 := t.cur.Next()
			if !ok2 {
				return token.Token{}, newErr(start, "Unterminated string literal. Expected %c", q)
			}
			if t.unescape {
				raw.WriteRune(unescapeChar(nr))
			} else {
				raw.WriteByte('\\')
				raw.WriteRune(nr)
			}
			continue
		}
		nr, _ := t.cur.Next()
		raw.WriteRune(nr)
	}
	return token.Token{Kind: kind, Loc: start, Value: raw.String(), Quote: quote}, nil
}

func (t *Tokenizer) countAhead(quote byte) int {
	n := 0
	for {
		r, ok := t.cur.PeekAt(n)
		if !ok || byte(r) != quote {
			return n
		}
		n++
	}
}

func tripleKind(k token.Kind) token.Kind {
	switch k {
	case token.SingleQuotedString:
		return token.TripleSingleQuotedString
	case token.DoubleQuotedString:
		return token.TripleDoubleQuotedString
	}
	return k
}

// unescapeChar maps a backslash-escape suffix to its decoded rune,
// following the table in spec §4.2: 0/a/b/f/n/r/t/Z and verbatim fallback.
func unescapeChar(r rune) rune {
	switch r {
	case '0':
		return 0
	case 'a':
		return 7
	case 'b':
		return 8
	case 'f':
		return 12
	case 'n':
		return '\n'
	case 'r':
		return '\r'
	case 't':
		return '\t'
	case 'Z':
		return 26
	default:
		return r
	}
}

func (t *Tokenizer) lexDollar(start token.Location) (token.Token, error) {
	t.cur.Next() // consume leading $
	if peekIs(t.cur, 0, '$') {
		t.cur.Next()
		body, err := t.readDollarBody(start, "")
		if err != nil {
			return token.Token{}, err
		}
		return token.Token{Kind: token.DollarQuotedString, Loc: start, Value: body}, nil
	}
	if r, ok := t.cur.Peek(); ok && t.dialect.IsIdentifierStart(r) {
		save := t.cur.Clone()
		tag := t.cur.TakeWhile(t.dialect.IsIdentifierPart)
		if peekIs(t.cur, 0, '$') {
			t.cur.Next()
			body, err := t.readDollarBody(start, tag)
			if err != nil {
				return token.Token{}, err
			}
			return token.Token{Kind: token.DollarQuotedString, Loc: start, Value: body, DollarTag: tag}, nil
		}
		t.cur = save
	}
	digits := t.cur.TakeWhile(isDigit)
	return token.Token{Kind: token.Placeholder, Loc: start, Value: "$" + digits}, nil
}

func (t *Tokenizer) readDollarBody(start token.Location, tag string) (string, error) {
	terminator := "$" + tag + "$"
	var sb strings.Builder
	for {
		if strings.HasPrefix(t.cur.src[t.cur.pos:], terminator) {
			for range terminator {
				t.cur.Next()
			}
			return sb.String(), nil
		}
		r, ok := t.cur.Next()
		if !ok {
			return "", newErr(start, "Unterminated dollar-quoted string. Expected %s", terminator)
		}
		sb.WriteRune(r)
	}
}

// lexOperator dispatches the punctuation/operator secondary state
// machines described in spec §6. It greedily composes the longest
// recognized operator, then extends into a CustomBinaryOperator when the
// dialect allows further "operator part" characters.
func (t *Tokenizer) lexOperator(start token.Location) (token.Token, error) {
	r, _ := t.cur.Next()
	kind, text := t.composeOperator(r)

	if t.dialect.IsCustomOperatorPart(peekOrNul(t.cur)) {
		var sb strings.Builder
		sb.WriteString(text)
		for {
			nr, ok := t.cur.Peek()
			if !ok || !t.dialect.IsCustomOperatorPart(nr) {
				break
			}
			t.cur.Next()
			sb.WriteRune(nr)
		}
		return token.Token{Kind: token.CustomBinaryOperator, Loc: start, OperatorText: sb.String()}, nil
	}

	return token.Token{Kind: kind, Loc: start, Raw: text}, nil
}

func peekOrNul(c *Cursor) rune {
	r, ok := c.Peek()
	if !ok {
		return 0
	}
	return r
}

func (t *Tokenizer) composeOperator(r rune) (token.Kind, string) {
	two := func(next rune, k token.Kind, text string) (token.Kind, string, bool) {
		if peekIs(t.cur, 0, next) {
			t.cur.Next()
			return k, text, true
		}
		return 0, "", false
	}

	switch r {
	case '(':
		return token.LeftParen, "("
	case ')':
		return token.RightParen, ")"
	case '[':
		return token.LeftBracket, "["
	case ']':
		return token.RightBracket, "]"
	case '{':
		return token.LeftBrace, "{"
	case '}':
		return token.RightBrace, "}"
	case ',':
		return token.Comma, ","
	case ';':
		return token.SemiColon, ";"
	case '.':
		return token.Period, "."
	case '+':
		return token.Plus, "+"
	case '*':
		return token.Multiply, "*"
	case '%':
		return token.Modulo, "%"
	case '\\':
		return token.Backslash, "\\"
	case '@':
		if k, s, ok := two('>', token.AtArrow, "@>"); ok {
			return k, s
		}
		if k, s, ok := two('?', token.AtQuestion, "@?"); ok {
			return k, s
		}
		if k, s, ok := two('@', token.AtAt, "@@"); ok {
			return k, s
		}
		return token.AtSign, "@"
	case '#':
		if peekIs(t.cur, 0, '>') {
			t.cur.Next()
			if peekIs(t.cur, 0, '>') {
				t.cur.Next()
				return token.HashLongArrow, "#>>"
			}
			return token.HashArrow, "#>"
		}
		if k, s, ok := two('-', token.HashMinus, "#-"); ok {
			return k, s
		}
		return token.Hash, "#"
	case '?':
		if k, s, ok := two('|', token.QuestionPipe, "?|"); ok {
			return k, s
		}
		if k, s, ok := two('&', token.QuestionAnd, "?&"); ok {
			return k, s
		}
		return token.Question, "?"
	case ':':
		if k, s, ok := two(':', token.DoubleColon, "::"); ok {
			return k, s
		}
		return token.Colon, ":"
	case '~':
		if peekIs(t.cur, 0, '~') {
			t.cur.Next()
			if peekIs(t.cur, 0, '*') {
				t.cur.Next()
				return token.DoubleTildeAsterisk, "~~*"
			}
			return token.DoubleTilde, "~~"
		}
		if peekIs(t.cur, 0, '*') {
			t.cur.Next()
			return token.TildeAsterisk, "~*"
		}
		return token.Tilde, "~"
	case '!':
		if peekIs(t.cur, 0, '~') {
			t.cur.Next()
			if peekIs(t.cur, 0, '~') {
				t.cur.Next()
				if peekIs(t.cur, 0, '*') {
					t.cur.Next()
					return token.ExclamationMarkDoubleTildeAsterisk, "!~~*"
				}
				return token.ExclamationMarkDoubleTilde, "!~~"
			}
			if peekIs(t.cur, 0, '*') {
				t.cur.Next()
				return token.ExclamationMarkTildeAsterisk, "!~*"
			}
			return token.ExclamationMarkTilde, "!~"
		}
		if k, s, ok := two('=', token.NotEqual, "!="); ok {
			return k, s
		}
		if k, s, ok := two('!', token.DoubleExclamationMark, "!!"); ok {
			return k, s
		}
		return token.ExclamationMark, "!"
	case '<':
		if peekIs(t.cur, 0, '=') {
			t.cur.Next()
			if peekIs(t.cur, 0, '>') {
				t.cur.Next()
				return token.Spaceship, "<=>"
			}
			return token.LessThanOrEqual, "<="
		}
		if k, s, ok := two('>', token.NotEqual, "<>"); ok {
			return k, s
		}
		if k, s, ok := two('<', token.ShiftLeft, "<<"); ok {
			return k, s
		}
		if k, s, ok := two('@', token.ArrowAt, "<@"); ok {
			return k, s
		}
		return token.LessThan, "<"
	case '>':
		if k, s, ok := two('=', token.GreaterThanOrEqual, ">="); ok {
			return k, s
		}
		if k, s, ok := two('>', token.ShiftRight, ">>"); ok {
			return k, s
		}
		return token.GreaterThan, ">"
	case '=':
		if peekIs(t.cur, 0, '=') {
			t.cur.Next()
			return token.DoubleEqual, "=="
		}
		if peekIs(t.cur, 0, '>') {
			t.cur.Next()
			return token.FatArrow, "=>"
		}
		return token.Equal, "="
	case '-':
		if k, s, ok := two('>', token.Arrow, "->"); ok {
			if peekIs(t.cur, 0, '>') {
				t.cur.Next()
				return token.LongArrow, "->>"
			}
			return k, s
		}
		return token.Minus, "-"
	case '/':
		if k, s, ok := two('/', token.DuckIntDiv, "//"); ok {
			return k, s
		}
		return token.Divide, "/"
	case '|':
		if peekIs(t.cur, 0, '|') {
			t.cur.Next()
			if peekIs(t.cur, 0, '/') {
				t.cur.Next()
				return token.PGCubeRoot, "||/"
			}
			return token.StringConcat, "||"
		}
		if peekIs(t.cur, 0, '/') {
			t.cur.Next()
			return token.PGSquareRoot, "|/"
		}
		return token.Pipe, "|"
	case '&':
		if k, s, ok := two('&', token.Overlap, "&&"); ok {
			return k, s
		}
		return token.Ampersand, "&"
	case '^':
		if k, s, ok := two('@', token.CaretAt, "^@"); ok {
			return k, s
		}
		return token.Caret, "^"
	}
	return token.Illegal, string(r)
}
