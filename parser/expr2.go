package parser

import (
	"strconv"
	"strings"

	"github.com/sqlfront/parser/ast"
	"github.com/sqlfront/parser/dialect"
	"github.com/sqlfront/parser/token"
)

func (p *Parser) parseCase(loc token.Location) (ast.Expr, error) {
	p.Next() // CASE
	c := &ast.CaseExpr{Loc: loc}
	if !p.PeekKeyword(token.WHEN) {
		operand, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		c.Operand = operand
	}
	for p.ParseKeyword(token.WHEN) {
		cond, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.ExpectKeyword(token.THEN); err != nil {
			return nil, err
		}
		result, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		c.Whens = append(c.Whens, ast.WhenClause{Cond: cond, Result: result})
	}
	if len(c.Whens) == 0 {
		return nil, errAt(p.Peek().Loc, "Expected WHEN, found %s", describeToken(p.Peek()))
	}
	if p.ParseKeyword(token.ELSE) {
		elseExpr, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		c.Else = elseExpr
	}
	if _, err := p.ExpectKeyword(token.END); err != nil {
		return nil, err
	}
	return c, nil
}

func (p *Parser) parseCast(loc token.Location, kw token.Keyword) (ast.Expr, error) {
	p.Next() // CAST/TRY_CAST/SAFE_CAST
	kind := ast.CastKindStandard
	switch kw {
	case token.TRY_CAST:
		kind = ast.CastKindTry
	case token.SAFE_CAST:
		kind = ast.CastKindSafe
	}
	if _, err := p.ExpectKind(token.LeftParen); err != nil {
		return nil, err
	}
	expr, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.ExpectKeyword(token.AS); err != nil {
		return nil, err
	}
	dt, err := p.parseDataType()
	if err != nil {
		return nil, err
	}
	cast := &ast.CastExpr{Kind: kind, Expr: expr, Type: dt, Loc: loc}
	if p.ParseKeyword(token.FORMAT) {
		format, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		cast.Format = format
	}
	if _, err := p.ExpectKind(token.RightParen); err != nil {
		return nil, err
	}
	return cast, nil
}

// parseInfix dispatches the continuation at the cursor once PrecedenceOf
// has determined it binds tighter than the caller's minPrec (spec §4.4
// steps 2-5): dialect hook first, then the built-in mixfix/postfix rules.
func (p *Parser) parseInfix(left ast.Expr, prec int) (ast.Expr, error) {
	if e, ok, err := p.dialect.ParseInfix(p, left, prec); ok || err != nil {
		return e, err
	}

	tok := p.Peek()
	loc := tok.Loc

	switch {
	case tok.Kind == token.Word && tok.Keyword == token.AND:
		p.Next()
		right, err := p.ParseSubExpr(prec)
		if err != nil {
			return nil, err
		}
		return &ast.BinaryExpr{Left: left, Op: ast.OpAnd, Right: right, Loc: loc}, nil
	case tok.Kind == token.Word && tok.Keyword == token.OR:
		p.Next()
		right, err := p.ParseSubExpr(prec)
		if err != nil {
			return nil, err
		}
		return &ast.BinaryExpr{Left: left, Op: ast.OpOr, Right: right, Loc: loc}, nil
	case tok.Kind == token.Word && tok.Keyword == token.XOR:
		p.Next()
		right, err := p.ParseSubExpr(prec)
		if err != nil {
			return nil, err
		}
		return &ast.BinaryExpr{Left: left, Op: ast.OpXor, Right: right, Loc: loc}, nil
	case tok.Kind == token.Word && tok.Keyword == token.DIV:
		p.Next()
		right, err := p.ParseSubExpr(prec)
		if err != nil {
			return nil, err
		}
		return &ast.BinaryExpr{Left: left, Op: ast.OpMyIntDivide, Right: right, Loc: loc}, nil
	case tok.Kind == token.Word && tok.Keyword == token.COLLATE:
		return p.maybeCollate(left)
	case tok.Kind == token.Word && tok.Keyword == token.IS:
		return p.parseIs(left, loc)
	case tok.Kind == token.Word && tok.Keyword == token.AT:
		return p.parseAtTimeZone(left, loc)
	case tok.Kind == token.Word && (tok.Keyword == token.NOT || tok.Keyword == token.IN || tok.Keyword == token.BETWEEN ||
		tok.Keyword == token.LIKE || tok.Keyword == token.ILIKE || tok.Keyword == token.SIMILAR ||
		tok.Keyword == token.RLIKE || tok.Keyword == token.REGEXP):
		return p.parseNegatablePredicate(left, loc)
	case tok.Kind == token.DoubleColon:
		p.Next()
		dt, err := p.parseDataType()
		if err != nil {
			return nil, err
		}
		return &ast.CastExpr{Kind: ast.CastKindDoubleColon, Expr: left, Type: dt, Loc: loc}, nil
	case tok.Kind == token.ExclamationMark:
		p.Next()
		return &ast.PostfixExpr{Op: ast.UnaryPGFactorial, Expr: left, Loc: loc}, nil
	case tok.Kind == token.LeftBracket:
		return p.parseSubscript(left, loc)
	case tok.Kind == token.Colon:
		p.Next()
		key, err := p.ParseSubExpr(prec)
		if err != nil {
			return nil, err
		}
		return &ast.MapAccessExpr{Expr: left, Key: key, Loc: loc}, nil
	}

	op, ok := p.binaryOpFor(tok.Kind)
	if !ok {
		return nil, errAt(loc, "Unexpected infix token %s", describeToken(tok))
	}
	p.Next()
	right, err := p.ParseSubExpr(prec)
	if err != nil {
		return nil, err
	}
	if isArrowOp(op) {
		return &ast.BinaryExpr{Left: left, Op: op, Right: right, Loc: loc}, nil
	}
	return &ast.BinaryExpr{Left: left, Op: op, Right: right, Loc: loc}, nil
}

func isArrowOp(op ast.BinaryOperator) bool {
	switch op {
	case ast.OpArrow, ast.OpLongArrow, ast.OpHashArrow, ast.OpHashLongArrow:
		return true
	}
	return false
}

// binaryOpFor maps a token to the binary operator it spells, consulting
// the active dialect for the handful of operators PG repurposes: `^` is
// exponentiation (not bitwise XOR) and bare `#` is bitwise XOR, both
// only under Postgres.
func (p *Parser) binaryOpFor(k token.Kind) (ast.BinaryOperator, bool) {
	isPG := p.dialect.Name() == "postgresql"
	switch k {
	case token.Caret:
		if isPG {
			return ast.OpPGExp, true
		}
		return ast.OpBitwiseXor, true
	case token.Hash:
		if isPG {
			return ast.OpPGBitwiseXor, true
		}
		return "", false
	case token.Plus:
		return ast.OpPlus, true
	case token.Minus:
		return ast.OpMinus, true
	case token.Multiply:
		return ast.OpMultiply, true
	case token.Divide:
		return ast.OpDivide, true
	case token.Modulo:
		return ast.OpModulo, true
	case token.DuckIntDiv:
		return ast.OpDuckIntDivide, true
	case token.StringConcat:
		return ast.OpStringConcat, true
	case token.Equal, token.DoubleEqual:
		return ast.OpEq, true
	case token.NotEqual:
		return ast.OpNotEq, true
	case token.LessThan:
		return ast.OpLt, true
	case token.LessThanOrEqual:
		return ast.OpLtEq, true
	case token.GreaterThan:
		return ast.OpGt, true
	case token.GreaterThanOrEqual:
		return ast.OpGtEq, true
	case token.Spaceship:
		return ast.OpSpaceship, true
	case token.Pipe:
		return ast.OpBitwiseOr, true
	case token.Ampersand:
		return ast.OpBitwiseAnd, true
	case token.CaretAt:
		return ast.OpPGStartsWith, true
	case token.ShiftLeft:
		return ast.OpShiftLeft, true
	case token.ShiftRight:
		return ast.OpShiftRight, true
	case token.Overlap:
		return ast.OpOverlap, true
	case token.Tilde:
		return ast.OpRegexMatch, true
	case token.DoubleTilde:
		return ast.OpLikeMatch, true
	case token.TildeAsterisk:
		return ast.OpRegexIMatch, true
	case token.DoubleTildeAsterisk:
		return ast.OpLikeIMatch, true
	case token.ExclamationMarkTilde:
		return ast.OpRegexNotMatch, true
	case token.ExclamationMarkDoubleTilde:
		return ast.OpNotLikeMatch, true
	case token.ExclamationMarkTildeAsterisk:
		return ast.OpRegexNotIMatch, true
	case token.ExclamationMarkDoubleTildeAsterisk:
		return ast.OpNotLikeIMatch, true
	case token.Arrow:
		return ast.OpArrow, true
	case token.LongArrow:
		return ast.OpLongArrow, true
	case token.HashArrow:
		return ast.OpHashArrow, true
	case token.HashLongArrow:
		return ast.OpHashLongArrow, true
	case token.AtArrow:
		return ast.OpAtArrow, true
	case token.ArrowAt:
		return ast.OpArrowAt, true
	case token.HashMinus:
		return ast.OpHashMinus, true
	case token.AtQuestion:
		return ast.OpAtQuestion, true
	case token.AtAt:
		return ast.OpAtAt, true
	case token.Question:
		return ast.OpQuestion, true
	case token.QuestionAnd:
		return ast.OpQuestionAnd, true
	case token.QuestionPipe:
		return ast.OpQuestionPipe, true
	}
	return "", false
}

func (p *Parser) parseIs(left ast.Expr, loc token.Location) (ast.Expr, error) {
	p.Next() // IS
	not := p.ParseKeyword(token.NOT)
	switch {
	case p.ParseKeyword(token.NULL):
		return &ast.IsExpr{Kind: ast.IsNullKind, Expr: left, Not: not, Loc: loc}, nil
	case p.ParseKeyword(token.TRUE):
		return &ast.IsExpr{Kind: ast.IsTrueKind, Expr: left, Not: not, Loc: loc}, nil
	case p.ParseKeyword(token.FALSE):
		return &ast.IsExpr{Kind: ast.IsFalseKind, Expr: left, Not: not, Loc: loc}, nil
	case p.ParseKeyword(token.UNKNOWN):
		return &ast.IsExpr{Kind: ast.IsUnknownKind, Expr: left, Not: not, Loc: loc}, nil
	case p.ParseKeyword(token.DISTINCT):
		if _, err := p.ExpectKeyword(token.FROM); err != nil {
			return nil, err
		}
		other, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		return &ast.IsExpr{Kind: ast.IsDistinctFromKind, Expr: left, Other: other, Not: not, Loc: loc}, nil
	}
	return nil, errAt(p.Peek().Loc, "Expected NULL, TRUE, FALSE, UNKNOWN, or DISTINCT FROM after IS, found %s", describeToken(p.Peek()))
}

func (p *Parser) parseAtTimeZone(left ast.Expr, loc token.Location) (ast.Expr, error) {
	p.Next() // AT
	if !p.ParseKeywords(token.TIME, token.ZONE) {
		return nil, errAt(p.Peek().Loc, "Expected TIME ZONE after AT")
	}
	zone, err := p.ParseSubExpr(p.dialect.GetPrecedence(dialect.PrecAt))
	if err != nil {
		return nil, err
	}
	return &ast.AtTimeZoneExpr{Expr: left, Zone: zone, Loc: loc}, nil
}

// parseNegatablePredicate handles the NOT/IN/BETWEEN/LIKE-family mixfix
// cluster, including the bare `NOT <predicate>` prefix form (spec §4.4
// step 3).
func (p *Parser) parseNegatablePredicate(left ast.Expr, loc token.Location) (ast.Expr, error) {
	not := p.ParseKeyword(token.NOT)
	switch {
	case p.ParseKeyword(token.IN):
		return p.parseIn(left, not, loc)
	case p.ParseKeyword(token.BETWEEN):
		return p.parseBetween(left, not, loc)
	case p.ParseKeyword(token.LIKE):
		return p.parseLike(left, ast.LikeKindPlain, not, loc)
	case p.ParseKeyword(token.ILIKE):
		return p.parseLike(left, ast.LikeKindCaseInsensitive, not, loc)
	case p.ParseKeywords(token.SIMILAR, token.TO):
		return p.parseLike(left, ast.LikeKindSimilarTo, not, loc)
	case p.ParseKeyword(token.RLIKE), p.ParseKeyword(token.REGEXP):
		return p.parseLike(left, ast.LikeKindRegex, not, loc)
	}
	return nil, errAt(p.Peek().Loc, "Expected IN, BETWEEN, LIKE, ILIKE, SIMILAR TO, RLIKE, or REGEXP, found %s", describeToken(p.Peek()))
}

func (p *Parser) parseIn(left ast.Expr, not bool, loc token.Location) (ast.Expr, error) {
	if p.ParseKeyword(token.UNNEST) {
		if _, err := p.ExpectKind(token.LeftParen); err != nil {
			return nil, err
		}
		arr, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.ExpectKind(token.RightParen); err != nil {
			return nil, err
		}
		return &ast.InExpr{Expr: left, Unnest: arr, Not: not, Loc: loc}, nil
	}
	if _, err := p.ExpectKind(token.LeftParen); err != nil {
		return nil, err
	}
	if q, ok, err := MaybeParse(p, p.ParseQuery); ok {
		if _, err := p.ExpectKind(token.RightParen); err != nil {
			return nil, err
		}
		return &ast.InExpr{Expr: left, Subquery: q, Not: not, Loc: loc}, nil
	} else if err != nil {
		return nil, err
	}
	if p.ConsumeToken(token.RightParen) {
		if !p.dialect.SupportsInEmptyList() {
			return nil, errAt(loc, "Expected an expression, found )")
		}
		return &ast.InExpr{Expr: left, Not: not, Loc: loc}, nil
	}
	list, err := parseCommaSeparated(p, p.ParseExpr)
	if err != nil {
		return nil, err
	}
	if _, err := p.ExpectKind(token.RightParen); err != nil {
		return nil, err
	}
	return &ast.InExpr{Expr: left, List: list, Not: not, Loc: loc}, nil
}

func (p *Parser) parseBetween(left ast.Expr, not bool, loc token.Location) (ast.Expr, error) {
	lo, err := p.ParseSubExpr(p.dialect.GetPrecedence(dialect.PrecBetweenLike))
	if err != nil {
		return nil, err
	}
	if _, err := p.ExpectKeyword(token.AND); err != nil {
		return nil, err
	}
	hi, err := p.ParseSubExpr(p.dialect.GetPrecedence(dialect.PrecBetweenLike))
	if err != nil {
		return nil, err
	}
	return &ast.BetweenExpr{Expr: left, Lo: lo, Hi: hi, Not: not, Loc: loc}, nil
}

func (p *Parser) parseLike(left ast.Expr, kind ast.LikeKind, not bool, loc token.Location) (ast.Expr, error) {
	pattern, err := p.ParseSubExpr(p.dialect.GetPrecedence(dialect.PrecBetweenLike))
	if err != nil {
		return nil, err
	}
	like := &ast.LikeExpr{Kind: kind, Expr: left, Pattern: pattern, Not: not, Loc: loc}
	if p.ParseKeyword(token.ESCAPE) {
		esc, err := p.ParseSubExpr(p.dialect.GetPrecedence(dialect.PrecBetweenLike))
		if err != nil {
			return nil, err
		}
		like.Escape = esc
	}
	return like, nil
}

func (p *Parser) parseSubscript(left ast.Expr, loc token.Location) (ast.Expr, error) {
	p.Next() // [
	if p.ConsumeToken(token.Colon) {
		hi, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.ExpectKind(token.RightBracket); err != nil {
			return nil, err
		}
		return &ast.SubscriptExpr{Expr: left, SliceHi: hi, Loc: loc}, nil
	}
	idx, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	if p.ConsumeToken(token.Colon) {
		var hi ast.Expr
		if p.Peek().Kind != token.RightBracket {
			hi, err = p.ParseExpr()
			if err != nil {
				return nil, err
			}
		}
		if _, err := p.ExpectKind(token.RightBracket); err != nil {
			return nil, err
		}
		return &ast.SubscriptExpr{Expr: left, Index: idx, SliceHi: hi, Loc: loc}, nil
	}
	if _, err := p.ExpectKind(token.RightBracket); err != nil {
		return nil, err
	}
	return &ast.SubscriptExpr{Expr: left, Index: idx, Loc: loc}, nil
}

// parseFunctionCall parses the parenthesized argument list and every
// optional suffix clause of a function call (spec §4.6): Snowflake's
// subquery-as-sole-argument special case, positional/named/wildcard
// args, in-list ORDER BY/LIMIT/DISTINCT/null-treatment, a second
// parenthesized parameter list for ClickHouse parametric aggregates, and
// the trailing WITHIN GROUP/FILTER/null-treatment/OVER clauses in order.
func (p *Parser) parseFunctionCall(name *ast.CompoundIdentifier, loc token.Location) (ast.Expr, error) {
	p.Next() // (

	fn := &ast.Function{Name: name, Loc: loc}

	if q, ok, err := MaybeParse(p, func() (*ast.SelectStmt, error) {
		if !p.dialect.SupportsTableFunctionSubquery() {
			return nil, errAt(loc, "dialect does not support TABLE(subquery)")
		}
		q, err := p.ParseQuery()
		if err != nil {
			return nil, err
		}
		if p.Peek().Kind != token.RightParen {
			return nil, errAt(p.Peek().Loc, "expected ) after subquery argument")
		}
		return q, nil
	}); ok {
		fn.Subquery = q
		p.Next() // )
		return p.parseFunctionSuffixes(fn)
	} else if err != nil {
		return nil, err
	}

	if !p.ConsumeToken(token.RightParen) {
		fn.Distinct = p.ParseKeyword(token.DISTINCT)
		args, err := p.parseFuncArgs()
		if err != nil {
			return nil, err
		}
		fn.Args = args
		if p.ParseKeyword(token.ORDER) {
			if _, err := p.ExpectKeyword(token.BY); err != nil {
				return nil, err
			}
			ob, err := parseCommaSeparated(p, p.parseOrderByItem)
			if err != nil {
				return nil, err
			}
			fn.OrderBy = ob
		}
		if p.ParseKeyword(token.LIMIT) {
			limit, err := p.ParseExpr()
			if err != nil {
				return nil, err
			}
			fn.Limit = limit
		}
		fn.NullTreatment = p.parseNullTreatment()
		if _, err := p.ExpectKind(token.RightParen); err != nil {
			return nil, err
		}
	}

	if p.Peek().Kind == token.LeftParen {
		fn.Params = fn.Args
		fn.Args = nil
		p.Next()
		args, err := p.parseFuncArgs()
		if err != nil {
			return nil, err
		}
		fn.Args = args
		if _, err := p.ExpectKind(token.RightParen); err != nil {
			return nil, err
		}
	}

	return p.parseFunctionSuffixes(fn)
}

func (p *Parser) parseFunctionSuffixes(fn *ast.Function) (ast.Expr, error) {
	if p.ParseKeywords(token.WITHIN, token.GROUP) {
		if _, err := p.ExpectKind(token.LeftParen); err != nil {
			return nil, err
		}
		if _, err := p.ExpectKeyword(token.ORDER); err != nil {
			return nil, err
		}
		if _, err := p.ExpectKeyword(token.BY); err != nil {
			return nil, err
		}
		ob, err := parseCommaSeparated(p, p.parseOrderByItem)
		if err != nil {
			return nil, err
		}
		fn.WithinGroup = ob
		if _, err := p.ExpectKind(token.RightParen); err != nil {
			return nil, err
		}
	}
	if p.dialect.SupportsFilterDuringAggregation() && p.ParseKeyword(token.FILTER) {
		if _, err := p.ExpectKind(token.LeftParen); err != nil {
			return nil, err
		}
		if _, err := p.ExpectKeyword(token.WHERE); err != nil {
			return nil, err
		}
		filter, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		fn.Filter = filter
		if _, err := p.ExpectKind(token.RightParen); err != nil {
			return nil, err
		}
	}
	if nt := p.parseNullTreatment(); nt != ast.NullTreatmentNone {
		fn.NullTreatment = nt
	}
	if p.ParseKeyword(token.OVER) {
		spec, err := p.parseWindowSpec()
		if err != nil {
			return nil, err
		}
		fn.Over = spec
	}
	return fn, nil
}

func (p *Parser) parseNullTreatment() ast.NullTreatment {
	if p.ParseKeywords(token.IGNORE, token.NULLS) {
		return ast.NullTreatmentIgnore
	}
	if p.ParseKeywords(token.RESPECT, token.NULLS) {
		return ast.NullTreatmentRespect
	}
	return ast.NullTreatmentNone
}

func (p *Parser) parseWindowSpec() (*ast.WindowSpec, error) {
	if p.Peek().Kind == token.Word && p.PeekAt(1).Kind != token.LeftParen {
		name, err := p.parseIdent()
		if err != nil {
			return nil, err
		}
		return &ast.WindowSpec{Name: name}, nil
	}
	if _, err := p.ExpectKind(token.LeftParen); err != nil {
		return nil, err
	}
	spec := &ast.WindowSpec{}
	if p.ParseKeyword(token.PARTITION) {
		if _, err := p.ExpectKeyword(token.BY); err != nil {
			return nil, err
		}
		parts, err := parseCommaSeparated(p, p.ParseExpr)
		if err != nil {
			return nil, err
		}
		spec.PartitionBy = parts
	}
	if p.ParseKeyword(token.ORDER) {
		if _, err := p.ExpectKeyword(token.BY); err != nil {
			return nil, err
		}
		ob, err := parseCommaSeparated(p, p.parseOrderByItem)
		if err != nil {
			return nil, err
		}
		spec.OrderBy = ob
	}
	if kw := p.ParseOneOfKeywords(token.ROWS, token.RANGE, token.GROUPS); kw != 0 {
		spec.FrameKind = strings.ToUpper(kw.String())
		if p.ParseKeyword(token.BETWEEN) {
			start, err := p.parseFrameBound()
			if err != nil {
				return nil, err
			}
			spec.FrameStart = start
			if _, err := p.ExpectKeyword(token.AND); err != nil {
				return nil, err
			}
			end, err := p.parseFrameBound()
			if err != nil {
				return nil, err
			}
			spec.FrameEnd = end
		} else {
			start, err := p.parseFrameBound()
			if err != nil {
				return nil, err
			}
			spec.FrameStart = start
		}
	}
	if _, err := p.ExpectKind(token.RightParen); err != nil {
		return nil, err
	}
	return spec, nil
}

func (p *Parser) parseFrameBound() (string, error) {
	if p.ParseKeywords(token.UNBOUNDED, token.PRECEDING) {
		return "UNBOUNDED PRECEDING", nil
	}
	if p.ParseKeywords(token.UNBOUNDED, token.FOLLOWING) {
		return "UNBOUNDED FOLLOWING", nil
	}
	if p.ParseKeyword(token.CURRENT) {
		if _, err := p.ExpectKeyword(token.ROW); err != nil {
			return "", err
		}
		return "CURRENT ROW", nil
	}
	n, err := p.parseIntLiteral()
	if err != nil {
		return "", err
	}
	if p.ParseKeyword(token.PRECEDING) {
		return strconv.Itoa(n) + " PRECEDING", nil
	}
	if _, err := p.ExpectKeyword(token.FOLLOWING); err != nil {
		return "", err
	}
	return strconv.Itoa(n) + " FOLLOWING", nil
}

// parseFuncArgs parses the body of a function call's argument list
// (after DISTINCT has already been consumed): positional, `name => expr`,
// and bare `*` wildcard arguments. `expr AS name` arguments are not
// accepted.
func (p *Parser) parseFuncArgs() ([]ast.FuncArg, error) {
	if p.Peek().Kind == token.RightParen {
		return nil, nil
	}
	return parseCommaSeparated(p, p.parseFuncArg)
}

func (p *Parser) parseFuncArg() (ast.FuncArg, error) {
	if p.Peek().Kind == token.Multiply && (p.PeekAt(1).Kind == token.Comma || p.PeekAt(1).Kind == token.RightParen) {
		p.Next()
		return ast.FuncArg{Star: true}, nil
	}
	if p.Peek().Kind == token.Word && p.PeekAt(1).Kind == token.FatArrow {
		name, err := p.parseIdent()
		if err != nil {
			return ast.FuncArg{}, err
		}
		p.Next() // =>
		expr, err := p.ParseExpr()
		if err != nil {
			return ast.FuncArg{}, err
		}
		return ast.FuncArg{Name: name, Expr: expr}, nil
	}
	expr, err := p.ParseExpr()
	if err != nil {
		return ast.FuncArg{}, err
	}
	return ast.FuncArg{Expr: expr}, nil
}

func (p *Parser) parseOrderByItem() (ast.OrderByItem, error) {
	expr, err := p.ParseExpr()
	if err != nil {
		return ast.OrderByItem{}, err
	}
	item := ast.OrderByItem{Expr: expr}
	switch {
	case p.ParseKeyword(token.ASC):
		item.Desc = false
	case p.ParseKeyword(token.DESC):
		item.Desc = true
	}
	if p.ParseKeyword(token.NULLS) {
		if p.ParseKeyword(token.FIRST) {
			item.Nulls = ast.NullsFirst
		} else if p.ParseKeyword(token.LAST) {
			item.Nulls = ast.NullsLast
		}
	}
	return item, nil
}
