package parser

import (
	"github.com/sqlfront/parser/ast"
	"github.com/sqlfront/parser/token"
)

// parseTransactionStart handles BEGIN and START TRANSACTION, including
// the Postgres ISOLATION LEVEL / READ ONLY|WRITE / DEFERRABLE modifier
// list gated behind BaseDialect.SupportsStartTransactionModifier.
func (p *Parser) parseTransactionStart() (ast.Statement, error) {
	loc := p.Peek().Loc
	p.Next() // BEGIN or START
	p.ParseKeyword(token.TRANSACTION)
	p.ParseKeyword(token.WORK)
	stmt := &ast.TransactionStmt{Kind: ast.TxBegin, Loc: loc}
	if !p.dialect.SupportsStartTransactionModifier() {
		return stmt, nil
	}
	for {
		switch {
		case p.ParseKeywords(token.ISOLATION, token.LEVEL):
			lvl, err := p.parseIsolationLevel()
			if err != nil {
				return nil, err
			}
			stmt.Modifiers = append(stmt.Modifiers, "ISOLATION LEVEL "+lvl)
		case p.ParseKeywords(token.READ, token.ONLY):
			stmt.Modifiers = append(stmt.Modifiers, "READ ONLY")
		case p.ParseKeywords(token.READ, token.WRITE):
			stmt.Modifiers = append(stmt.Modifiers, "READ WRITE")
		case p.ParseKeyword(token.DEFERRABLE):
			stmt.Modifiers = append(stmt.Modifiers, "DEFERRABLE")
		case p.ParseKeywords(token.NOT, token.DEFERRABLE):
			stmt.Modifiers = append(stmt.Modifiers, "NOT DEFERRABLE")
		default:
			return stmt, nil
		}
		p.ConsumeToken(token.Comma)
	}
}

func (p *Parser) parseIsolationLevel() (string, error) {
	switch {
	case p.ParseKeyword(token.SERIALIZABLE):
		return "SERIALIZABLE", nil
	case p.ParseKeywords(token.REPEATABLE, token.READ):
		return "REPEATABLE READ", nil
	case p.ParseKeywords(token.READ, token.COMMITTED):
		return "READ COMMITTED", nil
	case p.ParseKeywords(token.READ, token.UNCOMMITTED):
		return "READ UNCOMMITTED", nil
	case p.ParseKeyword(token.SNAPSHOT):
		return "SNAPSHOT", nil
	}
	tok := p.Peek()
	return "", errAt(tok.Loc, "Expected an isolation level, found %s", describeToken(tok))
}

func (p *Parser) parseTransactionEnd(kind ast.TxKind) (ast.Statement, error) {
	loc := p.Peek().Loc
	p.Next() // COMMIT
	p.ParseKeyword(token.TRANSACTION)
	p.ParseKeyword(token.WORK)
	return &ast.TransactionStmt{Kind: kind, Loc: loc}, nil
}

func (p *Parser) parseRollback() (ast.Statement, error) {
	loc := p.Peek().Loc
	p.Next() // ROLLBACK
	p.ParseKeyword(token.TRANSACTION)
	p.ParseKeyword(token.WORK)
	if p.ParseKeyword(token.TO) {
		p.ParseKeyword(token.SAVEPOINT)
		id, err := p.parseIdent()
		if err != nil {
			return nil, err
		}
		return &ast.TransactionStmt{Kind: ast.TxRollbackToSavepoint, SavepointID: id, Loc: loc}, nil
	}
	return &ast.TransactionStmt{Kind: ast.TxRollback, Loc: loc}, nil
}

func (p *Parser) parseSavepoint() (ast.Statement, error) {
	loc := p.Peek().Loc
	p.Next() // SAVEPOINT
	id, err := p.parseIdent()
	if err != nil {
		return nil, err
	}
	return &ast.TransactionStmt{Kind: ast.TxSavepoint, SavepointID: id, Loc: loc}, nil
}

func (p *Parser) parseReleaseSavepoint() (ast.Statement, error) {
	loc := p.Peek().Loc
	p.Next() // RELEASE
	p.ParseKeyword(token.SAVEPOINT)
	id, err := p.parseIdent()
	if err != nil {
		return nil, err
	}
	return &ast.TransactionStmt{Kind: ast.TxReleaseSavepoint, SavepointID: id, Loc: loc}, nil
}

// parseSet handles SET [SESSION|LOCAL|GLOBAL] name {= | TO} value [, ...],
// plus the parenthesized-list form some dialects allow
// (BaseDialect.SupportsParenthesizedSetVariables). The bare `SET TIME
// ZONE 'x'` / `SET NAMES 'x'` shorthands, which have no = or TO, are not
// accepted.
func (p *Parser) parseSet() (ast.Statement, error) {
	loc := p.Peek().Loc
	p.Next() // SET
	stmt := &ast.SetStmt{Loc: loc}
	switch {
	case p.ParseKeyword(token.SESSION):
		stmt.Scope = "SESSION"
	case p.ParseKeyword(token.LOCAL):
		stmt.Scope = "LOCAL"
	case p.ParseKeyword(token.GLOBAL):
		stmt.Scope = "GLOBAL"
	}

	if p.dialect.SupportsParenthesizedSetVariables() && p.Peek().Kind == token.LeftParen {
		p.Next()
		assigns, err := parseCommaSeparated(p, p.parseSetAssignment)
		if err != nil {
			return nil, err
		}
		stmt.Assignments = assigns
		if _, err := p.ExpectKind(token.RightParen); err != nil {
			return nil, err
		}
		return stmt, nil
	}

	assigns, err := parseCommaSeparated(p, p.parseSetAssignment)
	if err != nil {
		return nil, err
	}
	stmt.Assignments = assigns
	return stmt, nil
}

func (p *Parser) parseSetAssignment() (ast.SetAssignment, error) {
	name, err := p.parseCompoundIdentifier()
	if err != nil {
		return ast.SetAssignment{}, err
	}
	if !p.ConsumeToken(token.Equal) && !p.ParseKeyword(token.TO) {
		tok := p.Peek()
		return ast.SetAssignment{}, errAt(tok.Loc, "Expected = or TO in SET, found %s", describeToken(tok))
	}
	val, err := p.ParseExpr()
	if err != nil {
		return ast.SetAssignment{}, err
	}
	return ast.SetAssignment{Name: name, Value: val}, nil
}

func (p *Parser) parsePrepare() (ast.Statement, error) {
	loc := p.Peek().Loc
	p.Next() // PREPARE
	name, err := p.parseIdent()
	if err != nil {
		return nil, err
	}
	stmt := &ast.PrepareStmt{Name: name, Loc: loc}
	if p.ConsumeToken(token.LeftParen) {
		types, err := parseCommaSeparated(p, p.parseDataType)
		if err != nil {
			return nil, err
		}
		stmt.Types = types
		if _, err := p.ExpectKind(token.RightParen); err != nil {
			return nil, err
		}
	}
	if _, err := p.ExpectKeyword(token.AS); err != nil {
		return nil, err
	}
	inner, err := p.ParseStatement()
	if err != nil {
		return nil, err
	}
	stmt.Stmt = inner
	return stmt, nil
}

func (p *Parser) parseExecute() (ast.Statement, error) {
	loc := p.Peek().Loc
	p.Next() // EXECUTE or EXEC
	name, err := p.parseIdent()
	if err != nil {
		return nil, err
	}
	stmt := &ast.ExecuteStmt{Name: name, Loc: loc}
	if p.ConsumeToken(token.LeftParen) {
		if !p.ConsumeToken(token.RightParen) {
			args, err := parseCommaSeparated(p, p.ParseExpr)
			if err != nil {
				return nil, err
			}
			stmt.Args = args
			if _, err := p.ExpectKind(token.RightParen); err != nil {
				return nil, err
			}
		}
	} else {
		for !p.atListEnd() {
			arg, err := p.ParseExpr()
			if err != nil {
				return nil, err
			}
			stmt.Args = append(stmt.Args, arg)
			if !p.ConsumeToken(token.Comma) {
				break
			}
		}
	}
	return stmt, nil
}

func (p *Parser) parseDeallocate() (ast.Statement, error) {
	loc := p.Peek().Loc
	p.Next() // DEALLOCATE
	p.ParseKeyword(token.PREPARE)
	if p.ParseKeyword(token.ALL) {
		return &ast.DeallocateStmt{All: true, Loc: loc}, nil
	}
	name, err := p.parseIdent()
	if err != nil {
		return nil, err
	}
	return &ast.DeallocateStmt{Name: name, Loc: loc}, nil
}

func (p *Parser) parsePrivilegeList() ([]string, error) {
	var privs []string
	for {
		tok := p.Peek()
		if tok.Kind != token.Word {
			return nil, errAt(tok.Loc, "Expected a privilege name, found %s", describeToken(tok))
		}
		p.Next()
		priv := tok.Value
		if p.ParseKeyword(token.LeftParen) {
			for !p.ConsumeToken(token.RightParen) {
				p.Next()
			}
		}
		privs = append(privs, priv)
		if !p.ConsumeToken(token.Comma) {
			return privs, nil
		}
	}
}

func (p *Parser) parseGrant() (ast.Statement, error) {
	loc := p.Peek().Loc
	p.Next() // GRANT
	privs, err := p.parsePrivilegeList()
	if err != nil {
		return nil, err
	}
	if _, err := p.ExpectKeyword(token.ON); err != nil {
		return nil, err
	}
	p.ParseKeyword(token.TABLE)
	obj, err := p.parseCompoundIdentifier()
	if err != nil {
		return nil, err
	}
	if _, err := p.ExpectKeyword(token.TO); err != nil {
		return nil, err
	}
	grantees, err := parseCommaSeparated(p, p.parseIdent)
	if err != nil {
		return nil, err
	}
	stmt := &ast.GrantStmt{Privileges: privs, Object: obj, Grantees: grantees, Loc: loc}
	if p.ParseKeywords(token.WITH, token.GRANT, token.OPTION) {
		stmt.WithGrant = true
	}
	return stmt, nil
}

func (p *Parser) parseRevoke() (ast.Statement, error) {
	loc := p.Peek().Loc
	p.Next() // REVOKE
	privs, err := p.parsePrivilegeList()
	if err != nil {
		return nil, err
	}
	if _, err := p.ExpectKeyword(token.ON); err != nil {
		return nil, err
	}
	p.ParseKeyword(token.TABLE)
	obj, err := p.parseCompoundIdentifier()
	if err != nil {
		return nil, err
	}
	if _, err := p.ExpectKeyword(token.FROM); err != nil {
		return nil, err
	}
	grantees, err := parseCommaSeparated(p, p.parseIdent)
	if err != nil {
		return nil, err
	}
	stmt := &ast.RevokeStmt{Privileges: privs, Object: obj, Grantees: grantees, Loc: loc}
	cascade, _ := p.parseCascadeRestrict()
	stmt.Cascade = cascade
	return stmt, nil
}

func (p *Parser) parseAttach() (ast.Statement, error) {
	loc := p.Peek().Loc
	p.Next() // ATTACH
	p.ParseKeyword(token.DATABASE)
	path, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	stmt := &ast.AttachStmt{Path: path, Loc: loc}
	if p.ParseKeyword(token.AS) {
		alias, err := p.parseIdent()
		if err != nil {
			return nil, err
		}
		stmt.Alias = alias
	}
	if p.ConsumeToken(token.LeftParen) {
		opts, err := parseCommaSeparated(p, p.parseExplainOption)
		if err != nil {
			return nil, err
		}
		stmt.Options = opts
		if _, err := p.ExpectKind(token.RightParen); err != nil {
			return nil, err
		}
	}
	return stmt, nil
}

func (p *Parser) parseDetach() (ast.Statement, error) {
	loc := p.Peek().Loc
	p.Next() // DETACH
	p.ParseKeyword(token.DATABASE)
	name, err := p.parseIdent()
	if err != nil {
		return nil, err
	}
	return &ast.DetachStmt{Name: name, Loc: loc}, nil
}

func (p *Parser) parsePragma() (ast.Statement, error) {
	loc := p.Peek().Loc
	p.Next() // PRAGMA
	name, err := p.parseIdent()
	if err != nil {
		return nil, err
	}
	stmt := &ast.PragmaStmt{Name: name, Loc: loc}
	if p.ConsumeToken(token.Equal) {
		val, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		stmt.Value = val
		return stmt, nil
	}
	if p.ConsumeToken(token.LeftParen) {
		if !p.ConsumeToken(token.RightParen) {
			args, err := parseCommaSeparated(p, p.ParseExpr)
			if err != nil {
				return nil, err
			}
			stmt.Args = args
			if _, err := p.ExpectKind(token.RightParen); err != nil {
				return nil, err
			}
		}
	}
	return stmt, nil
}

func (p *Parser) parseInstall() (ast.Statement, error) {
	loc := p.Peek().Loc
	p.Next() // INSTALL
	name, err := p.parseIdent()
	if err != nil {
		return nil, err
	}
	stmt := &ast.InstallStmt{Name: name, Loc: loc}
	if p.ParseKeyword(token.FROM) {
		tok := p.Peek()
		if tok.Kind != token.Word && !isStringLiteralKind(tok.Kind) {
			return nil, errAt(tok.Loc, "Expected a repository name, found %s", describeToken(tok))
		}
		p.Next()
		stmt.From = tok.Value
	}
	return stmt, nil
}

func (p *Parser) parseLoad() (ast.Statement, error) {
	loc := p.Peek().Loc
	p.Next() // LOAD
	name, err := p.parseIdent()
	if err != nil {
		return nil, err
	}
	return &ast.LoadStmt{Name: name, Loc: loc}, nil
}

func (p *Parser) parseOptimize() (ast.Statement, error) {
	loc := p.Peek().Loc
	p.Next() // OPTIMIZE
	if _, err := p.ExpectKeyword(token.TABLE); err != nil {
		return nil, err
	}
	table, err := p.parseCompoundIdentifier()
	if err != nil {
		return nil, err
	}
	stmt := &ast.OptimizeStmt{Table: table, Loc: loc}
	if p.ParseKeyword(token.PARTITION) {
		part, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		stmt.Partition = part
	}
	if p.ParseKeyword(token.FINAL) {
		stmt.Final = true
	}
	if p.ParseKeyword(token.DEDUPLICATE) {
		stmt.Deduplicate = true
	}
	return stmt, nil
}

func (p *Parser) parseFlush() (ast.Statement, error) {
	loc := p.Peek().Loc
	p.Next() // FLUSH
	tok := p.Peek()
	stmt := &ast.FlushStmt{Loc: loc}
	if tok.Kind == token.Word {
		p.Next()
		stmt.Kind = tok.Value
	}
	if tok2 := p.Peek(); tok2.Kind == token.Word && tok2.Keyword == token.Undefined {
		obj, err := p.parseCompoundIdentifier()
		if err == nil {
			stmt.Object = obj
		}
	}
	return stmt, nil
}
