package parser

import (
	"github.com/sqlfront/parser/ast"
	"github.com/sqlfront/parser/token"
)

// ParseQuery implements dialect.StmtParser.ParseQuery and is the entry
// point for every SELECT-shaped construct (spec §4.7): an optional WITH
// prefix, a query body (SELECT/VALUES/TABLE, Pratt-folded over set
// operators), then the trailing clause battery.
func (p *Parser) ParseQuery() (*ast.SelectStmt, error) {
	leave, err := p.enterDepth()
	if err != nil {
		return nil, err
	}
	defer leave()

	loc := p.Peek().Loc
	var with *ast.WithClause
	if p.ParseKeyword(token.WITH) {
		w := &ast.WithClause{Recursive: p.ParseKeyword(token.RECURSIVE)}
		ctes, err := parseCommaSeparated(p, p.parseCTE)
		if err != nil {
			return nil, err
		}
		w.CTEs = ctes
		with = w
	}

	body, err := p.parseQueryBody(0)
	if err != nil {
		return nil, err
	}
	body.With = with
	body.Loc = loc

	if err := p.parseQueryTail(body); err != nil {
		return nil, err
	}
	return body, nil
}

func (p *Parser) parseCTE() (ast.CTE, error) {
	name, err := p.parseIdent()
	if err != nil {
		return ast.CTE{}, err
	}
	cte := ast.CTE{Name: name}
	if p.ConsumeToken(token.LeftParen) {
		cols, err := parseCommaSeparated(p, p.parseIdent)
		if err != nil {
			return ast.CTE{}, err
		}
		cte.Columns = cols
		if _, err := p.ExpectKind(token.RightParen); err != nil {
			return ast.CTE{}, err
		}
	}
	if _, err := p.ExpectKeyword(token.AS); err != nil {
		return ast.CTE{}, err
	}
	if _, err := p.ExpectKind(token.LeftParen); err != nil {
		return ast.CTE{}, err
	}
	q, err := p.ParseQuery()
	if err != nil {
		return ast.CTE{}, err
	}
	cte.Query = q
	if _, err := p.ExpectKind(token.RightParen); err != nil {
		return ast.CTE{}, err
	}
	return cte, nil
}

// setOpPrecOf mirrors spec §4.7: UNION/EXCEPT bind looser (10) than
// INTERSECT (20), both left-associative.
func setOpPrecOf(op ast.SetOp) int {
	if op == ast.Intersect {
		return 20
	}
	return 10
}

func (p *Parser) parseQueryBody(minPrec int) (*ast.SelectStmt, error) {
	left, err := p.parseQueryTerm()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := p.peekSetOp()
		if !ok {
			return left, nil
		}
		prec := setOpPrecOf(op)
		if prec <= minPrec {
			return left, nil
		}
		p.Next() // consume the set-op keyword
		all := p.ParseKeyword(token.ALL)
		distinct := false
		byName := false
		if !all {
			distinct = p.ParseKeyword(token.DISTINCT)
			if p.ParseKeywords(token.BY, token.NAME) {
				byName = true
			}
		}
		right, err := p.parseQueryBody(prec)
		if err != nil {
			return nil, err
		}
		left = &ast.SelectStmt{
			Loc: left.Loc,
			SetOp: &ast.SetOperation{
				Left: left, Op: op, All: all, Distinct: distinct, ByName: byName, Right: right,
			},
		}
	}
}

func (p *Parser) peekSetOp() (ast.SetOp, bool) {
	tok := p.Peek()
	if tok.Kind != token.Word {
		return 0, false
	}
	switch tok.Keyword {
	case token.UNION:
		return ast.Union, true
	case token.EXCEPT:
		return ast.Except, true
	case token.INTERSECT:
		return ast.Intersect, true
	}
	return 0, false
}

func (p *Parser) parseQueryTerm() (*ast.SelectStmt, error) {
	loc := p.Peek().Loc
	switch {
	case p.ParseKeyword(token.SELECT):
		return p.parseSelect(loc)
	case p.ParseKeyword(token.VALUES):
		rows, err := parseCommaSeparated(p, p.parseValuesRow)
		if err != nil {
			return nil, err
		}
		return &ast.SelectStmt{Values: rows, Loc: loc}, nil
	case p.ParseKeyword(token.TABLE):
		name, err := p.parseCompoundIdentifier()
		if err != nil {
			return nil, err
		}
		return &ast.SelectStmt{From: []ast.TableRef{&ast.SimpleTable{Name: name, Loc: loc}}, Columns: []ast.SelectColumn{{Star: true, Expr: &ast.Wildcard{Loc: loc}}}, Loc: loc}, nil
	case p.ConsumeToken(token.LeftParen):
		inner, err := p.ParseQuery()
		if err != nil {
			return nil, err
		}
		if _, err := p.ExpectKind(token.RightParen); err != nil {
			return nil, err
		}
		return inner, nil
	}
	return nil, errAt(loc, "Expected SELECT, VALUES, TABLE, or (, found %s", describeToken(p.Peek()))
}

func (p *Parser) parseValuesRow() ([]ast.Expr, error) {
	if _, err := p.ExpectKind(token.LeftParen); err != nil {
		return nil, err
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

func (p *Parser) parseSelect(loc token.Location) (*ast.SelectStmt, error) {
	stmt := &ast.SelectStmt{Loc: loc}
	stmt.Distinct = p.ParseKeyword(token.DISTINCT)
	if stmt.Distinct && p.ParseKeywords(token.BY, token.NAME) {
		stmt.DistinctByName = true
	}
	p.ParseKeyword(token.ALL)

	cols, err := parseCommaSeparated(p, p.parseSelectColumn)
	if err != nil {
		return nil, err
	}
	stmt.Columns = cols

	if p.ParseKeyword(token.FROM) {
		from, err := parseCommaSeparated(p, p.parseTableRef)
		if err != nil {
			return nil, err
		}
		stmt.From = from
	}
	if p.ParseKeyword(token.WHERE) {
		where, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		stmt.Where = where
	}
	if p.ParseKeyword(token.GROUP) {
		if _, err := p.ExpectKeyword(token.BY); err != nil {
			return nil, err
		}
		gb, err := parseCommaSeparated(p, p.ParseExpr)
		if err != nil {
			return nil, err
		}
		stmt.GroupBy = gb
	}
	if p.ParseKeyword(token.HAVING) {
		having, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		stmt.Having = having
	}
	return stmt, nil
}

func (p *Parser) parseSelectColumn() (ast.SelectColumn, error) {
	expr, err := p.ParseExpr()
	if err != nil {
		return ast.SelectColumn{}, err
	}
	col := ast.SelectColumn{Expr: expr}
	switch expr.(type) {
	case *ast.Wildcard, *ast.QualifiedWildcard:
		col.Star = true
	}
	if p.ParseKeyword(token.AS) {
		alias, err := p.parseIdent()
		if err != nil {
			return ast.SelectColumn{}, err
		}
		col.Alias = alias
	} else if p.Peek().Kind == token.Word && !token.IsReservedForColumnAlias(p.Peek().Keyword) {
		alias, err := p.parseIdent()
		if err != nil {
			return ast.SelectColumn{}, err
		}
		col.Alias = alias
	}
	return col, nil
}

func (p *Parser) parseTableRef() (ast.TableRef, error) {
	left, err := p.parseTableFactor()
	if err != nil {
		return nil, err
	}
	for {
		kind, ok, natural := p.peekJoinKind()
		if !ok {
			return left, nil
		}
		p.consumeJoinKeywords(kind, natural)
		loc := left.Pos()
		right, err := p.parseTableFactor()
		if err != nil {
			return nil, err
		}
		join := &ast.JoinTable{Left: left, Right: right, Kind: kind, Loc: loc}
		if natural {
			join.Kind = ast.NaturalJoin
		} else if kind != ast.CrossJoin {
			if p.ParseKeyword(token.ON) {
				on, err := p.ParseExpr()
				if err != nil {
					return nil, err
				}
				join.On = on
			} else if p.ParseKeyword(token.USING) {
				if _, err := p.ExpectKind(token.LeftParen); err != nil {
					return nil, err
				}
				cols, err := parseCommaSeparated(p, p.parseIdent)
				if err != nil {
					return nil, err
				}
				join.Using = cols
				if _, err := p.ExpectKind(token.RightParen); err != nil {
					return nil, err
				}
			}
		}
		left = join
	}
}

func (p *Parser) peekJoinKind() (ast.JoinKind, bool, bool) {
	tok := p.Peek()
	if tok.Kind != token.Word {
		return 0, false, false
	}
	switch tok.Keyword {
	case token.JOIN:
		return ast.InnerJoin, true, false
	case token.INNER:
		return ast.InnerJoin, true, false
	case token.LEFT:
		return ast.LeftJoin, true, false
	case token.RIGHT:
		return ast.RightJoin, true, false
	case token.FULL:
		return ast.FullJoin, true, false
	case token.CROSS:
		return ast.CrossJoin, true, false
	case token.NATURAL:
		return ast.InnerJoin, true, true
	}
	return 0, false, false
}

func (p *Parser) consumeJoinKeywords(kind ast.JoinKind, natural bool) {
	if natural {
		p.Next() // NATURAL
	}
	switch kind {
	case ast.InnerJoin:
		p.ParseKeyword(token.INNER)
	case ast.LeftJoin, ast.RightJoin, ast.FullJoin:
		p.Next() // LEFT/RIGHT/FULL
		p.ParseKeyword(token.OUTER)
	case ast.CrossJoin:
		p.Next() // CROSS
	}
	p.ParseKeyword(token.JOIN)
}

func (p *Parser) parseTableFactor() (ast.TableRef, error) {
	loc := p.Peek().Loc
	if p.ConsumeToken(token.LeftParen) {
		if q, ok, err := MaybeParse(p, p.ParseQuery); ok {
			if _, err := p.ExpectKind(token.RightParen); err != nil {
				return nil, err
			}
			sub := &ast.SubqueryTable{Query: q, Loc: loc}
			sub.Alias = p.parseOptionalTableAlias()
			return sub, nil
		} else if err != nil {
			return nil, err
		}
		inner, err := p.parseTableRef()
		if err != nil {
			return nil, err
		}
		if _, err := p.ExpectKind(token.RightParen); err != nil {
			return nil, err
		}
		return inner, nil
	}

	name, err := p.parseCompoundIdentifier()
	if err != nil {
		return nil, err
	}
	if p.ConsumeToken(token.LeftParen) {
		fn := &ast.Function{Name: name, Loc: loc}
		args, err := p.parseFuncArgs()
		if err != nil {
			return nil, err
		}
		fn.Args = args
		if _, err := p.ExpectKind(token.RightParen); err != nil {
			return nil, err
		}
		ft := &ast.FunctionTable{Call: fn, Loc: loc}
		ft.Alias = p.parseOptionalTableAlias()
		return ft, nil
	}
	st := &ast.SimpleTable{Name: name, Loc: loc}
	st.Alias = p.parseOptionalTableAlias()
	return st, nil
}

func (p *Parser) parseOptionalTableAlias() *ast.Ident {
	if p.ParseKeyword(token.AS) {
		id, err := p.parseIdent()
		if err != nil {
			return nil
		}
		return id
	}
	if p.Peek().Kind == token.Word && !token.IsReservedForColumnAlias(p.Peek().Keyword) && !p.isJoinOrClauseKeyword() {
		id, err := p.parseIdent()
		if err != nil {
			return nil
		}
		return id
	}
	return nil
}

func (p *Parser) isJoinOrClauseKeyword() bool {
	kw := p.Peek().Keyword
	switch kw {
	case token.JOIN, token.INNER, token.LEFT, token.RIGHT, token.FULL, token.CROSS, token.NATURAL,
		token.ON, token.USING, token.WHERE, token.GROUP, token.HAVING, token.ORDER, token.LIMIT,
		token.UNION, token.EXCEPT, token.INTERSECT, token.FOR, token.WINDOW, token.OFFSET, token.FETCH:
		return true
	}
	return false
}

// parseQueryTail parses every trailing clause of spec §4.7 in order:
// ORDER BY, LIMIT/OFFSET (plus MySQL's comma form and ClickHouse's LIMIT
// n BY expr), SETTINGS, FETCH, FOR UPDATE/SHARE/XML/JSON/BROWSE, FORMAT.
func (p *Parser) parseQueryTail(stmt *ast.SelectStmt) error {
	if p.ParseKeyword(token.ORDER) {
		if _, err := p.ExpectKeyword(token.BY); err != nil {
			return err
		}
		ob, err := parseCommaSeparated(p, p.parseOrderByItem)
		if err != nil {
			return err
		}
		stmt.OrderBy = ob
	}

	if p.ParseKeyword(token.LIMIT) {
		lc := &ast.LimitClause{}
		first, err := p.ParseExpr()
		if err != nil {
			return err
		}
		if p.ConsumeToken(token.Comma) {
			// MySQL `LIMIT offset, count`
			count, err := p.ParseExpr()
			if err != nil {
				return err
			}
			lc.Offset = first
			lc.Count = count
		} else {
			lc.Count = first
			if p.ParseKeyword(token.BY) {
				byExpr, err := parseCommaSeparated(p, p.ParseExpr)
				if err != nil {
					return err
				}
				lc.ByExpr = byExpr
			}
		}
		stmt.Limit = lc
	}
	if p.ParseKeyword(token.OFFSET) {
		off, err := p.ParseExpr()
		if err != nil {
			return err
		}
		if stmt.Limit == nil {
			stmt.Limit = &ast.LimitClause{}
		}
		stmt.Limit.Offset = off
		p.ParseOneOfKeywords(token.ROW, token.ROWS)
	}

	if p.ParseKeyword(token.SETTINGS) {
		assigns, err := parseCommaSeparated(p, p.parseSettingAssignment)
		if err != nil {
			return err
		}
		stmt.Settings = assigns
	}

	if p.ParseKeyword(token.FETCH) {
		p.ParseOneOfKeywords(token.FIRST, token.NEXT)
		count, err := p.ParseExpr()
		if err != nil {
			return err
		}
		p.ParseOneOfKeywords(token.ROW, token.ROWS)
		fc := &ast.FetchClause{Count: count}
		if p.ParseKeywords(token.WITH, token.TIES) {
			fc.WithTies = true
		} else {
			p.ParseKeyword(token.ONLY)
		}
		stmt.Fetch = fc
	}

	for p.ParseKeyword(token.FOR) {
		switch {
		case p.ParseKeyword(token.UPDATE):
			fl := ast.ForLockClause{Strength: ast.LockForUpdate}
			p.parseForLockTail(&fl)
			stmt.ForLocks = append(stmt.ForLocks, fl)
		case p.ParseKeyword(token.SHARE):
			fl := ast.ForLockClause{Strength: ast.LockForShare}
			p.parseForLockTail(&fl)
			stmt.ForLocks = append(stmt.ForLocks, fl)
		case p.ParseKeyword(token.XML):
			stmt.ForXML = &ast.ForXMLClause{Mode: "XML"}
			return nil
		case p.ParseKeyword(token.JSON):
			stmt.ForXML = &ast.ForXMLClause{Mode: "JSON"}
			return nil
		case p.ParseKeyword(token.BROWSE):
			stmt.ForXML = &ast.ForXMLClause{Mode: "BROWSE"}
			return nil
		default:
			return errAt(p.Peek().Loc, "Expected UPDATE, SHARE, XML, JSON, or BROWSE after FOR, found %s", describeToken(p.Peek()))
		}
	}

	if p.ParseKeyword(token.FORMAT) {
		if p.ParseKeyword(token.NULL) {
			stmt.Format = &ast.FormatClause{IsNull: true}
		} else {
			name, err := p.parseIdent()
			if err != nil {
				return err
			}
			stmt.Format = &ast.FormatClause{Name: name.Name}
		}
	}

	return nil
}

func (p *Parser) parseForLockTail(fl *ast.ForLockClause) {
	if p.ParseKeyword(token.OF) {
		tables, _ := parseCommaSeparated(p, p.parseCompoundIdentifier)
		fl.Of = tables
	}
	if p.ParseKeyword(token.NOWAIT) {
		fl.NoWait = true
	} else if p.ParseKeywords(token.SKIP, token.LOCKED) {
		fl.SkipLocked = true
	}
}

func (p *Parser) parseSettingAssignment() (ast.Assignment, error) {
	name, err := p.parseCompoundIdentifier()
	if err != nil {
		return ast.Assignment{}, err
	}
	if _, err := p.ExpectKind(token.Equal); err != nil {
		return ast.Assignment{}, err
	}
	value, err := p.ParseExpr()
	if err != nil {
		return ast.Assignment{}, err
	}
	return ast.Assignment{Column: name, Value: value}, nil
}
