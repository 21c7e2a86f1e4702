package parser

import (
	"github.com/sqlfront/parser/ast"
	"github.com/sqlfront/parser/token"
)

// ParseStatement implements dialect.StmtParser's ParseStatement hook
// requirement and is the top-level statement dispatcher of spec §4.8: a
// dialect gets first refusal, then the built-in keyword switch handles
// every statement shape named in the AST package, falling back to a
// GenericDDLStmt for recognized-but-unmodeled DDL.
func (p *Parser) ParseStatement() (ast.Statement, error) {
	if stmt, ok, err := p.dialect.ParseStatement(p); ok || err != nil {
		return stmt, err
	}

	tok := p.Peek()
	loc := tok.Loc

	if tok.Kind == token.LeftParen {
		return p.ParseQuery()
	}
	if tok.Kind != token.Word {
		return nil, errAt(loc, "Expected a statement, found %s", describeToken(tok))
	}

	switch tok.Keyword {
	case token.SELECT, token.VALUES, token.TABLE, token.WITH:
		return p.ParseQuery()
	case token.INSERT:
		return p.parseInsert(nil)
	case token.REPLACE:
		if p.mysqlOrGeneric() {
			return p.parseReplace()
		}
	case token.UPDATE:
		return p.parseUpdate()
	case token.DELETE:
		return p.parseDelete()
	case token.MERGE:
		return p.parseMerge()
	case token.CREATE:
		return p.parseCreate()
	case token.DROP:
		return p.parseDrop()
	case token.ALTER:
		return p.parseAlter()
	case token.TRUNCATE:
		return p.parseTruncate()
	case token.USE:
		return p.parseUse()
	case token.SHOW:
		return p.parseShow()
	case token.EXPLAIN:
		return p.parseExplain()
	case token.DESCRIBE, token.DESC:
		return p.parseDescribe()
	case token.CALL:
		return p.parseCall()
	case token.BEGIN, token.START:
		return p.parseTransactionStart()
	case token.COMMIT:
		return p.parseTransactionEnd(ast.TxCommit)
	case token.ROLLBACK:
		return p.parseRollback()
	case token.SAVEPOINT:
		return p.parseSavepoint()
	case token.RELEASE:
		return p.parseReleaseSavepoint()
	case token.SET:
		return p.parseSet()
	case token.PREPARE:
		return p.parsePrepare()
	case token.EXECUTE, token.EXEC:
		return p.parseExecute()
	case token.DEALLOCATE:
		return p.parseDeallocate()
	case token.GRANT:
		return p.parseGrant()
	case token.REVOKE:
		return p.parseRevoke()
	case token.ATTACH:
		return p.parseAttach()
	case token.DETACH:
		return p.parseDetach()
	case token.PRAGMA:
		return p.parsePragma()
	case token.INSTALL:
		return p.parseInstall()
	case token.LOAD:
		return p.parseLoad()
	case token.OPTIMIZE:
		return p.parseOptimize()
	case token.FLUSH:
		if p.mysqlOrGeneric() {
			return p.parseFlush()
		}
	}

	return p.parseGenericDDL(loc)
}

// mysqlOrGeneric reports whether REPLACE/FLUSH should be parsed as their
// own statement shapes. Both are MySQL-specific; under every other
// dialect they fall through to parseGenericDDL instead, the same as any
// other keyword that dialect doesn't model as a real statement.
func (p *Parser) mysqlOrGeneric() bool {
	switch p.dialect.Name() {
	case "mysql", "generic":
		return true
	}
	return false
}

func (p *Parser) parseIfExists() bool  { return p.ParseKeywords(token.IF, token.EXISTS) }
func (p *Parser) parseIfNotExists() bool {
	return p.ParseKeywords(token.IF, token.NOT, token.EXISTS)
}

func (p *Parser) parseCascadeRestrict() (cascade, restrict bool) {
	if p.ParseKeyword(token.CASCADE) {
		return true, false
	}
	if p.ParseKeyword(token.RESTRICT) {
		return false, true
	}
	return false, false
}

// parseGenericDDL consumes the remainder of the current statement
// verbatim, preserving it as a fallback node for DDL shapes spec §12
// leaves unmodeled (permissive option-bag approach).
func (p *Parser) parseGenericDDL(loc token.Location) (ast.Statement, error) {
	kwTok := p.Next()
	var text string
	for {
		tok := p.Peek()
		if tok.Kind == token.SemiColon || tok.Kind == token.EOF {
			break
		}
		text += describeToken(p.Next()) + " "
	}
	return &ast.GenericDDLStmt{Keyword: kwTok.Value, Text: text, Loc: loc}, nil
}

func (p *Parser) parseInsert(with *ast.WithClause) (ast.Statement, error) {
	loc := p.Peek().Loc
	p.Next() // INSERT
	stmt := &ast.InsertStmt{With: with, Loc: loc}
	stmt.Ignore = p.ParseKeyword(token.IGNORE)
	if _, err := p.ExpectKeyword(token.INTO); err != nil {
		return nil, err
	}
	name, err := p.parseCompoundIdentifier()
	if err != nil {
		return nil, err
	}
	stmt.Table = name
	if p.ConsumeToken(token.LeftParen) {
		cols, err := parseCommaSeparated(p, p.parseIdent)
		if err != nil {
			return nil, err
		}
		stmt.Columns = cols
		if _, err := p.ExpectKind(token.RightParen); err != nil {
			return nil, err
		}
	}
	switch {
	case p.ParseKeyword(token.VALUES):
		rows, err := parseCommaSeparated(p, p.parseValuesRow)
		if err != nil {
			return nil, err
		}
		stmt.Values = rows
	case p.PeekKeyword(token.DEFAULT):
		p.Next()
		if _, err := p.ExpectKeyword(token.VALUES); err != nil {
			return nil, err
		}
	default:
		q, err := p.ParseQuery()
		if err != nil {
			return nil, err
		}
		stmt.Select = q
	}

	if p.ParseKeywords(token.ON, token.DUPLICATE) {
		if _, err := p.ExpectKeyword(token.KEY); err != nil {
			return nil, err
		}
		if _, err := p.ExpectKeyword(token.UPDATE); err != nil {
			return nil, err
		}
		assigns, err := parseCommaSeparated(p, p.parseAssignment)
		if err != nil {
			return nil, err
		}
		stmt.OnDupKeyUpdate = assigns
	} else if p.ParseKeywords(token.ON, token.CONFLICT) {
		if p.ConsumeToken(token.LeftParen) {
			cols, err := parseCommaSeparated(p, p.parseIdent)
			if err != nil {
				return nil, err
			}
			stmt.OnConflictTarget = cols
			if _, err := p.ExpectKind(token.RightParen); err != nil {
				return nil, err
			}
		}
		if _, err := p.ExpectKeyword(token.DO); err != nil {
			return nil, err
		}
		if p.ParseKeyword(token.NOTHING) {
			stmt.OnConflictDoNothing = true
		} else {
			if _, err := p.ExpectKeyword(token.UPDATE); err != nil {
				return nil, err
			}
			if _, err := p.ExpectKeyword(token.SET); err != nil {
				return nil, err
			}
			assigns, err := parseCommaSeparated(p, p.parseAssignment)
			if err != nil {
				return nil, err
			}
			stmt.OnConflictUpdate = assigns
		}
	}

	if p.ParseKeyword(token.RETURNING) {
		ret, err := parseCommaSeparated(p, p.parseSelectColumn)
		if err != nil {
			return nil, err
		}
		stmt.Returning = ret
	}
	return stmt, nil
}

func (p *Parser) parseReplace() (ast.Statement, error) {
	loc := p.Peek().Loc
	stmt, err := p.parseInsert(nil)
	if err != nil {
		return nil, err
	}
	if ins, ok := stmt.(*ast.InsertStmt); ok {
		ins.Replace = true
		ins.Loc = loc
	}
	return stmt, nil
}

func (p *Parser) parseAssignment() (ast.Assignment, error) {
	col, err := p.parseCompoundIdentifier()
	if err != nil {
		return ast.Assignment{}, err
	}
	if _, err := p.ExpectKind(token.Equal); err != nil {
		return ast.Assignment{}, err
	}
	val, err := p.ParseExpr()
	if err != nil {
		return ast.Assignment{}, err
	}
	return ast.Assignment{Column: col, Value: val}, nil
}

func (p *Parser) parseUpdate() (ast.Statement, error) {
	loc := p.Peek().Loc
	p.Next() // UPDATE
	stmt := &ast.UpdateStmt{Loc: loc}
	tables, err := parseCommaSeparated(p, p.parseTableFactor)
	if err != nil {
		return nil, err
	}
	stmt.Tables = tables
	if _, err := p.ExpectKeyword(token.SET); err != nil {
		return nil, err
	}
	assigns, err := parseCommaSeparated(p, p.parseAssignment)
	if err != nil {
		return nil, err
	}
	stmt.Set = assigns
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
	if p.ParseKeyword(token.ORDER) {
		if _, err := p.ExpectKeyword(token.BY); err != nil {
			return nil, err
		}
		ob, err := parseCommaSeparated(p, p.parseOrderByItem)
		if err != nil {
			return nil, err
		}
		stmt.OrderBy = ob
	}
	if p.ParseKeyword(token.LIMIT) {
		count, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		stmt.Limit = &ast.LimitClause{Count: count}
	}
	if p.ParseKeyword(token.RETURNING) {
		ret, err := parseCommaSeparated(p, p.parseSelectColumn)
		if err != nil {
			return nil, err
		}
		stmt.Returning = ret
	}
	return stmt, nil
}

func (p *Parser) parseDelete() (ast.Statement, error) {
	loc := p.Peek().Loc
	p.Next() // DELETE
	stmt := &ast.DeleteStmt{Loc: loc}
	if !p.PeekKeyword(token.FROM) {
		tables, err := parseCommaSeparated(p, p.parseCompoundIdentifier)
		if err != nil {
			return nil, err
		}
		stmt.Tables = tables
	}
	if _, err := p.ExpectKeyword(token.FROM); err != nil {
		return nil, err
	}
	from, err := parseCommaSeparated(p, p.parseTableRef)
	if err != nil {
		return nil, err
	}
	stmt.From = from
	if p.ParseKeyword(token.USING) {
		using, err := parseCommaSeparated(p, p.parseTableRef)
		if err != nil {
			return nil, err
		}
		stmt.Using = using
	}
	if p.ParseKeyword(token.WHERE) {
		where, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		stmt.Where = where
	}
	if p.ParseKeyword(token.ORDER) {
		if _, err := p.ExpectKeyword(token.BY); err != nil {
			return nil, err
		}
		ob, err := parseCommaSeparated(p, p.parseOrderByItem)
		if err != nil {
			return nil, err
		}
		stmt.OrderBy = ob
	}
	if p.ParseKeyword(token.LIMIT) {
		count, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		stmt.Limit = &ast.LimitClause{Count: count}
	}
	if p.ParseKeyword(token.RETURNING) {
		ret, err := parseCommaSeparated(p, p.parseSelectColumn)
		if err != nil {
			return nil, err
		}
		stmt.Returning = ret
	}
	return stmt, nil
}

func (p *Parser) parseMerge() (ast.Statement, error) {
	loc := p.Peek().Loc
	p.Next() // MERGE
	p.ParseKeyword(token.INTO)
	target, err := p.parseTableFactor()
	if err != nil {
		return nil, err
	}
	if _, err := p.ExpectKeyword(token.USING); err != nil {
		return nil, err
	}
	source, err := p.parseTableFactor()
	if err != nil {
		return nil, err
	}
	if _, err := p.ExpectKeyword(token.ON); err != nil {
		return nil, err
	}
	on, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	stmt := &ast.MergeStmt{Target: target, Source: source, On: on, Loc: loc}
	for p.ParseKeyword(token.WHEN) {
		when := ast.MergeWhenClause{}
		when.Matched = !p.ParseKeyword(token.NOT)
		if !when.Matched {
			if _, err := p.ExpectKeyword(token.MATCHED); err != nil {
				return nil, err
			}
		} else if _, err := p.ExpectKeyword(token.MATCHED); err != nil {
			return nil, err
		}
		if p.ParseKeyword(token.AND) {
			cond, err := p.ParseExpr()
			if err != nil {
				return nil, err
			}
			when.Cond = cond
		}
		if _, err := p.ExpectKeyword(token.THEN); err != nil {
			return nil, err
		}
		switch {
		case p.ParseKeyword(token.DELETE):
			when.Action = ast.MergeDelete
		case p.ParseKeyword(token.UPDATE):
			when.Action = ast.MergeUpdate
			if _, err := p.ExpectKeyword(token.SET); err != nil {
				return nil, err
			}
			assigns, err := parseCommaSeparated(p, p.parseAssignment)
			if err != nil {
				return nil, err
			}
			when.Set = assigns
		case p.ParseKeyword(token.INSERT):
			when.Action = ast.MergeInsert
			if p.ConsumeToken(token.LeftParen) {
				cols, err := parseCommaSeparated(p, p.parseIdent)
				if err != nil {
					return nil, err
				}
				when.Columns = cols
				if _, err := p.ExpectKind(token.RightParen); err != nil {
					return nil, err
				}
			}
			if _, err := p.ExpectKeyword(token.VALUES); err != nil {
				return nil, err
			}
			vals, err := p.parseValuesRow()
			if err != nil {
				return nil, err
			}
			when.Values = vals
		}
		stmt.Whens = append(stmt.Whens, when)
	}
	return stmt, nil
}

func (p *Parser) parseTruncate() (ast.Statement, error) {
	loc := p.Peek().Loc
	p.Next() // TRUNCATE
	p.ParseKeyword(token.TABLE)
	tables, err := parseCommaSeparated(p, p.parseCompoundIdentifier)
	if err != nil {
		return nil, err
	}
	return &ast.TruncateStmt{Tables: tables, Loc: loc}, nil
}

func (p *Parser) parseUse() (ast.Statement, error) {
	loc := p.Peek().Loc
	p.Next() // USE
	name, err := p.parseIdent()
	if err != nil {
		return nil, err
	}
	return &ast.UseStmt{Name: name, Loc: loc}, nil
}

func (p *Parser) parseShow() (ast.Statement, error) {
	loc := p.Peek().Loc
	p.Next() // SHOW
	kind, err := p.parseIdent()
	if err != nil {
		return nil, err
	}
	stmt := &ast.ShowStmt{Kind: kind.Name, Loc: loc}
	if p.Peek().Kind == token.Word && p.Peek().Keyword == token.Undefined {
		obj, err := p.parseCompoundIdentifier()
		if err == nil {
			stmt.Object = obj
		}
	}
	if p.ParseKeyword(token.LIKE) {
		lit, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		stmt.Like = lit
	}
	if p.ParseKeyword(token.WHERE) {
		where, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		stmt.Where = where
	}
	return stmt, nil
}

func (p *Parser) parseExplain() (ast.Statement, error) {
	loc := p.Peek().Loc
	p.Next() // EXPLAIN
	stmt := &ast.ExplainStmt{Loc: loc}
	stmt.Analyze = p.ParseKeyword(token.ANALYZE)
	stmt.Verbose = p.ParseKeyword(token.VERBOSE)
	if p.dialect.SupportsExplainWithUtilityOptions() && p.ConsumeToken(token.LeftParen) {
		opts, err := parseCommaSeparated(p, p.parseExplainOption)
		if err != nil {
			return nil, err
		}
		stmt.Options = opts
		if _, err := p.ExpectKind(token.RightParen); err != nil {
			return nil, err
		}
	}
	inner, err := p.ParseStatement()
	if err != nil {
		return nil, err
	}
	stmt.Stmt = inner
	return stmt, nil
}

func (p *Parser) parseExplainOption() (ast.TableOption, error) {
	name, err := p.parseIdent()
	if err != nil {
		return ast.TableOption{}, err
	}
	opt := ast.TableOption{Key: name.Name}
	if v, ok, err := MaybeParse(p, p.ParseExpr); ok {
		opt.Value = describeExprAsText(v)
	} else if err != nil {
		return ast.TableOption{}, err
	}
	return opt, nil
}

func describeExprAsText(e ast.Expr) string {
	if lit, ok := e.(*ast.LiteralValue); ok {
		return lit.Value
	}
	if id, ok := e.(*ast.Ident); ok {
		return id.Name
	}
	return ""
}

func (p *Parser) parseDescribe() (ast.Statement, error) {
	loc := p.Peek().Loc
	p.Next() // DESCRIBE/DESC
	if p.dialect.DescribeRequiresTableKeyword() {
		if _, err := p.ExpectKeyword(token.TABLE); err != nil {
			return nil, err
		}
	}
	name, err := p.parseCompoundIdentifier()
	if err != nil {
		return nil, err
	}
	return &ast.DescribeStmt{Object: name, Loc: loc}, nil
}

func (p *Parser) parseCall() (ast.Statement, error) {
	loc := p.Peek().Loc
	p.Next() // CALL
	name, err := p.parseCompoundIdentifier()
	if err != nil {
		return nil, err
	}
	call := &ast.CallStmt{Name: name, Loc: loc}
	if p.ConsumeToken(token.LeftParen) {
		if !p.ConsumeToken(token.RightParen) {
			args, err := parseCommaSeparated(p, p.ParseExpr)
			if err != nil {
				return nil, err
			}
			call.Args = args
			if _, err := p.ExpectKind(token.RightParen); err != nil {
				return nil, err
			}
		}
	}
	return call, nil
}
