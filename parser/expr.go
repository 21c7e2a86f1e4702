package parser

import (
	"strconv"

	"github.com/sqlfront/parser/ast"
	"github.com/sqlfront/parser/dialect"
	"github.com/sqlfront/parser/token"
)

// ParseExpr parses a full expression at precedence zero (spec §4.4).
func (p *Parser) ParseExpr() (ast.Expr, error) {
	return p.ParseSubExpr(int(dialect.PrecZero))
}

// ParseSubExpr implements the Pratt loop: parse a prefix term, then
// repeatedly fold in infix/postfix/mixfix continuations whose precedence
// exceeds minPrec.
func (p *Parser) ParseSubExpr(minPrec int) (ast.Expr, error) {
	leave, err := p.enterDepth()
	if err != nil {
		return nil, err
	}
	defer leave()

	expr, err := p.parsePrefix()
	if err != nil {
		return nil, err
	}

	for {
		nextKind := p.dialect.PrecedenceOf(p.Peek())
		nextPrec := p.dialect.GetPrecedence(nextKind)
		if minPrec >= nextPrec {
			return p.maybeCollate(expr)
		}
		expr, err = p.parseInfix(expr, nextPrec)
		if err != nil {
			return nil, err
		}
	}
}

func (p *Parser) maybeCollate(expr ast.Expr) (ast.Expr, error) {
	loc := p.Peek().Loc
	if !p.ParseKeyword(token.COLLATE) {
		return expr, nil
	}
	name, err := p.parseCompoundIdentifier()
	if err != nil {
		return nil, err
	}
	return &ast.CollateExpr{Expr: expr, Collation: name, Loc: loc}, nil
}

func (p *Parser) parsePrefix() (ast.Expr, error) {
	if e, ok, err := p.dialect.ParsePrefix(p); ok || err != nil {
		return e, err
	}

	if e, ok, err := MaybeParse(p, p.tryTypedStringPrefix); ok {
		return e, err
	} else if err != nil {
		return nil, err
	}

	tok := p.Peek()
	loc := tok.Loc

	switch tok.Kind {
	case token.Number:
		p.Next()
		return &ast.LiteralValue{Kind: ast.LitNumber, Value: tok.Value, IsLong: tok.IsLong, Loc: loc}, nil
	case token.SingleQuotedString, token.TripleSingleQuotedString, token.DoubleQuotedString, token.TripleDoubleQuotedString:
		p.Next()
		return &ast.LiteralValue{Kind: ast.LitString, Value: tok.Value, Loc: loc}, nil
	case token.NationalStringLiteral:
		p.Next()
		return &ast.LiteralValue{Kind: ast.LitNationalString, Value: tok.Value, Loc: loc}, nil
	case token.EscapedStringLiteral:
		p.Next()
		return &ast.LiteralValue{Kind: ast.LitEscapedString, Value: tok.Value, Loc: loc}, nil
	case token.UnicodeStringLiteral:
		p.Next()
		return &ast.LiteralValue{Kind: ast.LitUnicodeString, Value: tok.Value, Loc: loc}, nil
	case token.HexStringLiteral:
		p.Next()
		return &ast.LiteralValue{Kind: ast.LitHexString, Value: tok.Value, Loc: loc}, nil
	case token.ByteSingleQuotedString, token.ByteDoubleQuotedString:
		p.Next()
		return &ast.LiteralValue{Kind: ast.LitByteString, Value: tok.Value, Loc: loc}, nil
	case token.RawSingleQuotedString, token.RawDoubleQuotedString:
		p.Next()
		return &ast.LiteralValue{Kind: ast.LitRawString, Value: tok.Value, Loc: loc}, nil
	case token.DollarQuotedString:
		p.Next()
		return &ast.LiteralValue{Kind: ast.LitDollarQuoted, Value: tok.Value, DollarTag: tok.DollarTag, Loc: loc}, nil
	case token.Placeholder:
		p.Next()
		return &ast.LiteralValue{Kind: ast.LitString, Value: tok.Value, Loc: loc}, nil
	case token.Colon:
		p.Next()
		name, err := p.ExpectKind(token.Word)
		if err != nil {
			return nil, err
		}
		return &ast.LiteralValue{Kind: ast.LitString, Value: ":" + name.Value, Loc: loc}, nil
	case token.Question:
		p.Next()
		return &ast.LiteralValue{Kind: ast.LitString, Value: "?", Loc: loc}, nil
	case token.Minus, token.Plus:
		p.Next()
		op := ast.UnaryMinus
		if tok.Kind == token.Plus {
			op = ast.UnaryPlus
		}
		operand, err := p.ParseSubExpr(p.dialect.GetPrecedence(dialect.PrecUnaryPrefix))
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpr{Op: op, Expr: operand, Loc: loc}, nil
	case token.DoubleExclamationMark, token.PGSquareRoot, token.PGCubeRoot, token.AtSign, token.Tilde:
		p.Next()
		op := pgUnaryOp(tok.Kind)
		operand, err := p.ParseSubExpr(p.dialect.GetPrecedence(dialect.PrecPlusMinus))
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpr{Op: op, Expr: operand, Loc: loc}, nil
	case token.LeftBracket:
		return p.parseArrayLiteral(loc)
	case token.LeftBrace:
		return p.parseMapOrStructBraceLiteral(loc)
	case token.LeftParen:
		return p.parseParenPrefix(loc)
	case token.Multiply:
		return p.parseWordOrFunc(tok)
	case token.Word:
		if tok.Quote == 0 && token.IsReservedForIdentifier(tok.Keyword) {
			return nil, errAt(loc, "Expected an expression, found %s", describeToken(tok))
		}
		return p.parseWordPrefix(tok)
	}
	return nil, errAt(loc, "Expected an expression, found %s", describeToken(tok))
}

func pgUnaryOp(k token.Kind) ast.UnaryOperator {
	switch k {
	case token.DoubleExclamationMark:
		return ast.UnaryPGNot
	case token.PGSquareRoot:
		return ast.UnaryPGSquareRoot
	case token.PGCubeRoot:
		return ast.UnaryPGCubeRoot
	case token.AtSign:
		return ast.UnaryPGAbs
	case token.Tilde:
		return ast.UnaryBitNot
	}
	return ast.UnaryPGNot
}

// tryTypedStringPrefix speculatively parses `DataType 'literal'`. On a
// standard type it yields TypedString; on INTERVAL and on anything else
// it fails so the caller falls through to the plain prefix table, where
// INTERVAL is handled by parseInterval (spec §4.4 step 2).
func (p *Parser) tryTypedStringPrefix() (ast.Expr, error) {
	loc := p.Peek().Loc
	if p.PeekKeyword(token.INTERVAL) {
		return nil, errAt(loc, "not a typed string")
	}
	dt, err := p.tryParseDataType()
	if err != nil {
		return nil, err
	}
	lit := p.Peek()
	if lit.Kind != token.SingleQuotedString && lit.Kind != token.TripleSingleQuotedString {
		return nil, errAt(loc, "not a typed string")
	}
	p.Next()
	return &ast.TypedString{Type: dt, Value: lit.Value, Loc: loc}, nil
}

func (p *Parser) parseWordPrefix(tok token.Token) (ast.Expr, error) {
	loc := tok.Loc
	switch tok.Keyword {
	case token.TRUE, token.FALSE:
		p.Next()
		return &ast.LiteralValue{Kind: ast.LitBoolean, Value: tok.Value, Loc: loc}, nil
	case token.NULL:
		p.Next()
		return &ast.LiteralValue{Kind: ast.LitNull, Loc: loc}, nil
	case token.CURRENT_CATALOG, token.CURRENT_USER, token.SESSION_USER, token.USER:
		p.Next()
		return &ast.Function{Name: singlePartName(tok.Value, loc), Loc: loc}, nil
	case token.CURRENT_DATE, token.CURRENT_TIME, token.CURRENT_TIMESTAMP, token.LOCALTIME, token.LOCALTIMESTAMP:
		p.Next()
		fn := &ast.Function{Name: singlePartName(tok.Value, loc), Loc: loc}
		if p.ConsumeToken(token.LeftParen) {
			args, err := p.parseFuncArgs()
			if err != nil {
				return nil, err
			}
			fn.Args = args
			if _, err := p.ExpectKind(token.RightParen); err != nil {
				return nil, err
			}
		}
		return fn, nil
	case token.CASE:
		return p.parseCase(loc)
	case token.CAST, token.TRY_CAST, token.SAFE_CAST:
		return p.parseCast(loc, tok.Keyword)
	case token.EXISTS:
		return p.parseExists(loc, false)
	case token.NOT:
		p.Next()
		if p.PeekKeyword(token.EXISTS) {
			return p.parseExists(loc, true)
		}
		operand, err := p.ParseSubExpr(p.dialect.GetPrecedence(dialect.PrecUnaryNot))
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpr{Op: ast.UnaryNot, Expr: operand, Loc: loc}, nil
	case token.EXTRACT:
		return p.parseExtract(loc)
	case token.POSITION:
		if p.PeekAt(1).Kind == token.LeftParen {
			return p.parsePosition(loc)
		}
	case token.SUBSTRING:
		return p.parseSubstring(loc)
	case token.OVERLAY:
		return p.parseOverlay(loc)
	case token.TRIM:
		return p.parseTrim(loc)
	case token.INTERVAL:
		return p.parseInterval(loc)
	case token.ARRAY:
		return p.parseArrayKeyword(loc)
	case token.STRUCT:
		return p.parseStructLiteral(loc)
	case token.MAP:
		if p.dialect.SupportsMapLiteralSyntax() && p.PeekAt(1).Kind == token.LeftBrace {
			return p.parseMapLiteral(loc)
		}
	case token.PRIOR:
		p.Next()
		operand, err := p.ParseSubExpr(p.dialect.GetPrecedence(dialect.PrecUnaryPrefix))
		if err != nil {
			return nil, err
		}
		return &ast.PriorExpr{Expr: operand, Loc: loc}, nil
	case token.CONVERT:
		return p.parseConvert(loc)
	}
	return p.parseWordOrFunc(tok)
}

func singlePartName(name string, loc token.Location) *ast.CompoundIdentifier {
	return &ast.CompoundIdentifier{Parts: []*ast.Ident{{Name: name, Loc: loc}}, Loc: loc}
}

func (p *Parser) parseExists(loc token.Location, not bool) (ast.Expr, error) {
	p.Next() // EXISTS
	if not {
		// NOT already consumed by caller before checking EXISTS
	}
	if _, err := p.ExpectKind(token.LeftParen); err != nil {
		return nil, err
	}
	q, err := p.ParseQuery()
	if err != nil {
		return nil, err
	}
	if _, err := p.ExpectKind(token.RightParen); err != nil {
		return nil, err
	}
	return &ast.ExistsExpr{Subquery: q, Not: not, Loc: loc}, nil
}

func (p *Parser) parseArrayLiteral(loc token.Location) (ast.Expr, error) {
	p.Next() // [
	if p.ConsumeToken(token.RightBracket) {
		return &ast.ArrayExpr{Loc: loc}, nil
	}
	elems, err := parseCommaSeparated(p, p.ParseExpr)
	if err != nil {
		return nil, err
	}
	if _, err := p.ExpectKind(token.RightBracket); err != nil {
		return nil, err
	}
	return &ast.ArrayExpr{Elements: elems, Loc: loc}, nil
}

func (p *Parser) parseArrayKeyword(loc token.Location) (ast.Expr, error) {
	p.Next() // ARRAY
	if p.ConsumeToken(token.LeftBracket) {
		if p.ConsumeToken(token.RightBracket) {
			return &ast.ArrayExpr{Loc: loc}, nil
		}
		elems, err := parseCommaSeparated(p, p.ParseExpr)
		if err != nil {
			return nil, err
		}
		if _, err := p.ExpectKind(token.RightBracket); err != nil {
			return nil, err
		}
		return &ast.ArrayExpr{Elements: elems, Loc: loc}, nil
	}
	if _, err := p.ExpectKind(token.LeftParen); err != nil {
		return nil, err
	}
	if q, ok, err := MaybeParse(p, p.ParseQuery); ok {
		if _, err := p.ExpectKind(token.RightParen); err != nil {
			return nil, err
		}
		return &ast.ArrayExpr{Subquery: q, Loc: loc}, nil
	} else if err != nil {
		return nil, err
	}
	elems, err := parseCommaSeparated(p, p.ParseExpr)
	if err != nil {
		return nil, err
	}
	if _, err := p.ExpectKind(token.RightParen); err != nil {
		return nil, err
	}
	return &ast.ArrayExpr{Elements: elems, Loc: loc}, nil
}

func (p *Parser) parseMapOrStructBraceLiteral(loc token.Location) (ast.Expr, error) {
	p.Next() // {
	var entries []ast.MapEntry
	for !p.ConsumeToken(token.RightBrace) {
		if len(entries) > 0 {
			if _, err := p.ExpectKind(token.Comma); err != nil {
				return nil, err
			}
		}
		key, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.ExpectKind(token.Colon); err != nil {
			return nil, err
		}
		val, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		entries = append(entries, ast.MapEntry{Key: key, Value: val})
	}
	return &ast.MapExpr{Entries: entries, Loc: loc}, nil
}

func (p *Parser) parseMapLiteral(loc token.Location) (ast.Expr, error) {
	p.Next() // MAP
	return p.parseMapOrStructBraceLiteral(loc)
}

func (p *Parser) parseStructLiteral(loc token.Location) (ast.Expr, error) {
	p.Next() // STRUCT
	if !p.ConsumeToken(token.LessThan) {
		// bare STRUCT(v1, v2, ...) without typed fields
		if _, err := p.ExpectKind(token.LeftParen); err != nil {
			return nil, err
		}
		var fields []ast.StructField
		for !p.ConsumeToken(token.RightParen) {
			if len(fields) > 0 {
				if _, err := p.ExpectKind(token.Comma); err != nil {
					return nil, err
				}
			}
			v, err := p.ParseExpr()
			if err != nil {
				return nil, err
			}
			field := ast.StructField{Value: v}
			if p.ParseKeyword(token.AS) {
				name, err := p.parseIdent()
				if err != nil {
					return nil, err
				}
				field.Name = name
			}
			fields = append(fields, field)
		}
		return &ast.StructExpr{Fields: fields, Loc: loc}, nil
	}
	var typed []ast.StructField
	for !p.ConsumeToken(token.GreaterThan) {
		if len(typed) > 0 {
			if _, err := p.ExpectKind(token.Comma); err != nil {
				return nil, err
			}
		}
		var name *ast.Ident
		nameTok := p.Peek()
		if nameTok.Kind == token.Word && p.PeekAt(1).Kind == token.Word {
			p.Next()
			name = &ast.Ident{Name: nameTok.Value, Loc: nameTok.Loc}
		}
		dt, err := p.parseDataType()
		if err != nil {
			return nil, err
		}
		typed = append(typed, ast.StructField{Name: name, Type: dt})
	}
	if _, err := p.ExpectKind(token.LeftParen); err != nil {
		return nil, err
	}
	i := 0
	for !p.ConsumeToken(token.RightParen) {
		if i > 0 {
			if _, err := p.ExpectKind(token.Comma); err != nil {
				return nil, err
			}
		}
		v, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		if i < len(typed) {
			typed[i].Value = v
		}
		i++
	}
	return &ast.StructExpr{Fields: typed, Loc: loc}, nil
}

func (p *Parser) parseParenPrefix(loc token.Location) (ast.Expr, error) {
	if q, ok, err := MaybeParse(p, func() (ast.Expr, error) {
		p.Next() // (
		query, err := p.ParseQuery()
		if err != nil {
			return nil, err
		}
		if _, err := p.ExpectKind(token.RightParen); err != nil {
			return nil, err
		}
		return &ast.Subquery{Query: query, Loc: loc}, nil
	}); ok {
		return q, nil
	} else if err != nil {
		return nil, err
	}

	if p.dialect.SupportsLambdaFunctions() {
		if lam, ok, err := MaybeParse(p, func() (ast.Expr, error) { return p.tryParseLambda(loc) }); ok {
			return lam, nil
		} else if err != nil {
			return nil, err
		}
	}

	p.Next() // (
	exprs, err := parseCommaSeparated(p, p.ParseExpr)
	if err != nil {
		return nil, err
	}
	if _, err := p.ExpectKind(token.RightParen); err != nil {
		return nil, err
	}

	var result ast.Expr
	if len(exprs) == 1 {
		result = &ast.Nested{Expr: exprs[0], Loc: loc}
	} else {
		result = &ast.Tuple{Exprs: exprs, Loc: loc}
	}

	if p.ConsumeToken(token.Period) {
		field, err := p.ExpectKind(token.Word)
		if err != nil {
			return nil, err
		}
		result = &ast.CompositeAccessExpr{Expr: result, Field: &ast.Ident{Name: field.Value, Loc: field.Loc}, Loc: loc}
	}
	return result, nil
}

func (p *Parser) tryParseLambda(loc token.Location) (ast.Expr, error) {
	p.Next() // (
	var params []*ast.Ident
	for !p.ConsumeToken(token.RightParen) {
		if len(params) > 0 {
			if _, err := p.ExpectKind(token.Comma); err != nil {
				return nil, err
			}
		}
		id, err := p.ExpectKind(token.Word)
		if err != nil {
			return nil, err
		}
		params = append(params, &ast.Ident{Name: id.Value, Loc: id.Loc})
	}
	if _, err := p.ExpectKind(token.Arrow); err != nil {
		return nil, errAt(loc, "not a lambda")
	}
	body, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	return &ast.LambdaExpr{Params: params, Body: body, Loc: loc}, nil
}

// parseWordOrFunc parses the long-tail "Word" prefix rule (spec §4.5
// final bullet): multipart identifiers, wildcards, function calls, and
// single-parameter lambdas.
func (p *Parser) parseWordOrFunc(tok token.Token) (ast.Expr, error) {
	loc := tok.Loc
	p.Next()

	if tok.Kind == token.Multiply {
		return &ast.Wildcard{Loc: loc}, nil
	}

	parts := []*ast.Ident{{Name: tok.Value, Quote: tok.Quote, Loc: loc}}
	isWildcard := false
	for p.ConsumeToken(token.Period) {
		nt := p.Peek()
		if nt.Kind == token.Multiply {
			p.Next()
			isWildcard = true
			break
		}
		id, err := p.ExpectKind(token.Word)
		if err != nil {
			return nil, err
		}
		parts = append(parts, &ast.Ident{Name: id.Value, Quote: id.Quote, Loc: id.Loc})
	}

	compound := &ast.CompoundIdentifier{Parts: parts, Loc: loc}
	if isWildcard {
		return &ast.QualifiedWildcard{Qualifier: compound, Loc: loc}, nil
	}

	if p.dialect.SupportsLambdaFunctions() && p.Peek().Kind == token.Arrow && len(parts) == 1 {
		p.Next()
		body, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		return &ast.LambdaExpr{Params: parts, Body: body, Loc: loc}, nil
	}

	if p.Peek().Kind == token.LeftParen {
		return p.parseFunctionCall(compound, loc)
	}

	if strHasUnderscorePrefix(parts) && isStringLiteralKind(p.Peek().Kind) {
		lit := p.Next()
		return &ast.IntroducedString{Charset: parts[len(parts)-1].Name, Value: &ast.LiteralValue{Kind: ast.LitString, Value: lit.Value, Loc: lit.Loc}, Loc: loc}, nil
	}

	if len(parts) == 1 {
		return &ast.Ident{Name: parts[0].Name, Quote: parts[0].Quote, Loc: loc}, nil
	}
	return compound, nil
}

func strHasUnderscorePrefix(parts []*ast.Ident) bool {
	return len(parts) > 0 && len(parts[len(parts)-1].Name) > 0 && parts[len(parts)-1].Name[0] == '_'
}

func isStringLiteralKind(k token.Kind) bool {
	switch k {
	case token.SingleQuotedString, token.TripleSingleQuotedString, token.DoubleQuotedString, token.TripleDoubleQuotedString:
		return true
	}
	return false
}

func (p *Parser) parseCompoundIdentifier() (*ast.CompoundIdentifier, error) {
	first, err := p.ExpectKind(token.Word)
	if err != nil {
		return nil, err
	}
	parts := []*ast.Ident{{Name: first.Value, Quote: first.Quote, Loc: first.Loc}}
	for p.ConsumeToken(token.Period) {
		id, err := p.ExpectKind(token.Word)
		if err != nil {
			return nil, err
		}
		parts = append(parts, &ast.Ident{Name: id.Value, Quote: id.Quote, Loc: id.Loc})
	}
	return &ast.CompoundIdentifier{Parts: parts, Loc: first.Loc}, nil
}

func (p *Parser) parseIdent() (*ast.Ident, error) {
	tok, err := p.ExpectKind(token.Word)
	if err != nil {
		return nil, err
	}
	return &ast.Ident{Name: tok.Value, Quote: tok.Quote, Loc: tok.Loc}, nil
}

// ParseParenExprList parses `(expr, expr, ...)`, used by dialect hooks
// via the ExprParser surface.
func (p *Parser) ParseParenExprList() ([]ast.Expr, error) {
	if _, err := p.ExpectKind(token.LeftParen); err != nil {
		return nil, err
	}
	if p.ConsumeToken(token.RightParen) {
		return nil, nil
	}
	exprs, err := parseCommaSeparated(p, p.ParseExpr)
	if err != nil {
		return nil, err
	}
	if _, err := p.ExpectKind(token.RightParen); err != nil {
		return nil, err
	}
	return exprs, nil
}

func (p *Parser) parseExtract(loc token.Location) (ast.Expr, error) {
	p.Next() // EXTRACT
	if _, err := p.ExpectKind(token.LeftParen); err != nil {
		return nil, err
	}
	field, err := p.ExpectKind(token.Word)
	if err != nil {
		return nil, err
	}
	if !p.ParseKeyword(token.FROM) {
		if _, err := p.ExpectKind(token.Comma); err != nil {
			return nil, err
		}
	}
	expr, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.ExpectKind(token.RightParen); err != nil {
		return nil, err
	}
	return &ast.ExtractExpr{Field: field.Value, Expr: expr, Loc: loc}, nil
}

func (p *Parser) parsePosition(loc token.Location) (ast.Expr, error) {
	p.Next() // POSITION
	p.Next() // (
	needle, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.ExpectKeyword(token.IN); err != nil {
		return nil, err
	}
	haystack, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.ExpectKind(token.RightParen); err != nil {
		return nil, err
	}
	return &ast.PositionExpr{Needle: needle, Haystack: haystack, Loc: loc}, nil
}

func (p *Parser) parseSubstring(loc token.Location) (ast.Expr, error) {
	p.Next() // SUBSTRING
	if _, err := p.ExpectKind(token.LeftParen); err != nil {
		return nil, err
	}
	expr, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	sub := &ast.SubstringExpr{Expr: expr, Loc: loc}
	if p.dialect.SupportsSubstringFromForExpression() && (p.PeekKeyword(token.FROM) || p.PeekKeyword(token.FOR)) {
		if p.ParseKeyword(token.FROM) {
			from, err := p.ParseExpr()
			if err != nil {
				return nil, err
			}
			sub.From = from
		}
		if p.ParseKeyword(token.FOR) {
			forLen, err := p.ParseExpr()
			if err != nil {
				return nil, err
			}
			sub.For = forLen
		}
	} else if p.ConsumeToken(token.Comma) {
		sub.UsingCommas = true
		from, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		sub.From = from
		if p.ConsumeToken(token.Comma) {
			forLen, err := p.ParseExpr()
			if err != nil {
				return nil, err
			}
			sub.For = forLen
		}
	}
	if _, err := p.ExpectKind(token.RightParen); err != nil {
		return nil, err
	}
	return sub, nil
}

func (p *Parser) parseOverlay(loc token.Location) (ast.Expr, error) {
	p.Next() // OVERLAY
	if _, err := p.ExpectKind(token.LeftParen); err != nil {
		return nil, err
	}
	expr, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.ExpectKeyword(token.PLACING); err != nil {
		return nil, err
	}
	repl, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.ExpectKeyword(token.FROM); err != nil {
		return nil, err
	}
	from, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	ov := &ast.OverlayExpr{Expr: expr, Replacement: repl, From: from, Loc: loc}
	if p.ParseKeyword(token.FOR) {
		forLen, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		ov.For = forLen
	}
	if _, err := p.ExpectKind(token.RightParen); err != nil {
		return nil, err
	}
	return ov, nil
}

func (p *Parser) parseTrim(loc token.Location) (ast.Expr, error) {
	p.Next() // TRIM
	if _, err := p.ExpectKind(token.LeftParen); err != nil {
		return nil, err
	}
	side := ast.TrimBoth
	switch {
	case p.ParseKeyword(token.BOTH):
		side = ast.TrimBoth
	case p.ParseKeyword(token.LEADING):
		side = ast.TrimLeading
	case p.ParseKeyword(token.TRAILING):
		side = ast.TrimTrailing
	}
	trim := &ast.TrimExpr{Side: side, Loc: loc}

	first, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	if p.ParseKeyword(token.FROM) {
		trim.Chars = first
		expr, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		trim.Expr = expr
	} else {
		trim.Expr = first
		for p.ConsumeToken(token.Comma) {
			trim.UsingCommas = true
			extra, err := p.ParseExpr()
			if err != nil {
				return nil, err
			}
			trim.ExtraArgs = append(trim.ExtraArgs, extra)
		}
	}
	if _, err := p.ExpectKind(token.RightParen); err != nil {
		return nil, err
	}
	return trim, nil
}

func (p *Parser) parseInterval(loc token.Location) (ast.Expr, error) {
	p.Next() // INTERVAL
	value, err := p.ParseSubExpr(p.dialect.GetPrecedence(dialect.PrecUnaryPrefix))
	if err != nil {
		return nil, err
	}
	iv := &ast.IntervalExpr{Value: value, Loc: loc}
	if field := p.ParseOneOfKeywords(token.YEAR, token.MONTH, token.DAY, token.HOUR, token.MINUTE, token.SECOND); field != 0 {
		iv.LeadingField = field.String()
		if field == token.SECOND && p.ConsumeToken(token.LeftParen) {
			prec, err := p.parseIntLiteral()
			if err != nil {
				return nil, err
			}
			iv.LeadingPrecision = &prec
			if p.ConsumeToken(token.Comma) {
				frac, err := p.parseIntLiteral()
				if err != nil {
					return nil, err
				}
				iv.FractionalPrecision = &frac
			}
			if _, err := p.ExpectKind(token.RightParen); err != nil {
				return nil, err
			}
		} else if p.ConsumeToken(token.LeftParen) {
			prec, err := p.parseIntLiteral()
			if err != nil {
				return nil, err
			}
			iv.LeadingPrecision = &prec
			if _, err := p.ExpectKind(token.RightParen); err != nil {
				return nil, err
			}
		}
		if p.ParseKeyword(token.TO) {
			if trailing := p.ParseOneOfKeywords(token.YEAR, token.MONTH, token.DAY, token.HOUR, token.MINUTE, token.SECOND); trailing != 0 {
				iv.TrailingField = trailing.String()
				if trailing == token.SECOND && p.ConsumeToken(token.LeftParen) {
					frac, err := p.parseIntLiteral()
					if err != nil {
						return nil, err
					}
					iv.FractionalPrecision = &frac
					if _, err := p.ExpectKind(token.RightParen); err != nil {
						return nil, err
					}
				}
			}
		}
	} else if p.dialect.RequireIntervalQualifier() {
		return nil, errAt(p.Peek().Loc, "Expected a datetime field after INTERVAL value")
	}
	return iv, nil
}

func (p *Parser) parseIntLiteral() (int, error) {
	tok, err := p.ExpectKind(token.Number)
	if err != nil {
		return 0, err
	}
	n, convErr := strconv.Atoi(tok.Value)
	if convErr != nil {
		return 0, errAt(tok.Loc, "Expected an integer literal, found %s", tok.Value)
	}
	return n, nil
}

func (p *Parser) parseConvert(loc token.Location) (ast.Expr, error) {
	p.Next() // CONVERT
	if _, err := p.ExpectKind(token.LeftParen); err != nil {
		return nil, err
	}
	if p.dialect.ConvertTypeBeforeValue() {
		dt, err := p.parseDataType()
		if err != nil {
			return nil, err
		}
		if _, err := p.ExpectKind(token.Comma); err != nil {
			return nil, err
		}
		expr, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.ExpectKind(token.RightParen); err != nil {
			return nil, err
		}
		return &ast.CastExpr{Kind: ast.CastKindStandard, Expr: expr, Type: dt, Loc: loc}, nil
	}
	expr, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	if p.ParseKeyword(token.USING) {
		charset, err := p.parseIdent()
		if err != nil {
			return nil, err
		}
		if _, err := p.ExpectKind(token.RightParen); err != nil {
			return nil, err
		}
		return &ast.CastExpr{Kind: ast.CastKindStandard, Expr: expr, Type: &ast.DataType{Name: "CHAR", Charset: charset.Name, Loc: loc}, Loc: loc}, nil
	}
	if _, err := p.ExpectKind(token.Comma); err != nil {
		return nil, err
	}
	dt, err := p.parseDataType()
	if err != nil {
		return nil, err
	}
	cast := &ast.CastExpr{Kind: ast.CastKindStandard, Expr: expr, Type: dt, Loc: loc}
	if p.ParseKeywords(token.CHARACTER, token.SET) {
		cs, err := p.parseIdent()
		if err != nil {
			return nil, err
		}
		cast.Type.Charset = cs.Name
	}
	if _, err := p.ExpectKind(token.RightParen); err != nil {
		return nil, err
	}
	return cast, nil
}
