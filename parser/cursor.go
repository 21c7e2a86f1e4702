package parser

import "github.com/sqlfront/parser/token"

// Checkpoint is an opaque saved cursor position, produced by Checkpoint
// and consumed by Restore.
type Checkpoint int

// isSignificant reports whether a token kind carries syntax (as opposed
// to whitespace or a comment, which the cursor skips transparently).
func isSignificant(k token.Kind) bool {
	switch k {
	case token.Space, token.Tab, token.Newline, token.InlineComment, token.MultilineComment:
		return false
	}
	return true
}

// skipWS advances idx to the next significant token at or after idx.
func (p *Parser) skipWS(idx int) int {
	for idx < len(p.toks)-1 && !isSignificant(p.toks[idx].Kind) {
		idx++
	}
	return idx
}

// PeekAt returns the nth significant token forward from the cursor (0 ==
// the token Next() would consume). Past EOF it keeps returning the EOF
// token.
func (p *Parser) PeekAt(n int) token.Token {
	idx := p.skipWS(p.pos)
	for n > 0 {
		idx++
		idx = p.skipWS(idx)
		n--
	}
	return p.toks[idx]
}

// Peek is PeekAt(0).
func (p *Parser) Peek() token.Token { return p.PeekAt(0) }

// Next consumes and returns the next significant token.
func (p *Parser) Next() token.Token {
	p.pos = p.skipWS(p.pos)
	tok := p.toks[p.pos]
	if tok.Kind != token.EOF {
		p.pos++
	}
	return tok
}

// Prev rewinds the cursor to the previous significant token and returns
// it, without consuming anything beyond that point.
func (p *Parser) Prev() token.Token {
	idx := p.pos - 1
	for idx > 0 && !isSignificant(p.toks[idx].Kind) {
		idx--
	}
	p.pos = idx
	return p.toks[idx]
}

// Checkpoint saves the cursor position for a later Restore.
func (p *Parser) Checkpoint() Checkpoint { return Checkpoint(p.pos) }

// Restore resets the cursor to a previously saved Checkpoint.
func (p *Parser) Restore(c Checkpoint) { p.pos = int(c) }

// ExpectKind consumes the next token if it matches k, else returns a
// recoverable ParserError.
func (p *Parser) ExpectKind(k token.Kind) (token.Token, error) {
	tok := p.Peek()
	if tok.Kind != k {
		return token.Token{}, errAt(tok.Loc, "Expected %s, found %s", k, describeToken(tok))
	}
	return p.Next(), nil
}

// ExpectKeyword consumes the next token if it is the Word keyword kw.
func (p *Parser) ExpectKeyword(kw token.Keyword) (token.Token, error) {
	tok := p.Peek()
	if tok.Kind != token.Word || tok.Keyword != kw {
		return token.Token{}, errAt(tok.Loc, "Expected %s, found %s", kw, describeToken(tok))
	}
	return p.Next(), nil
}

// ParseKeyword consumes the next token and reports true if it is the Word
// keyword kw; otherwise the cursor is left unchanged.
func (p *Parser) ParseKeyword(kw token.Keyword) bool {
	if tok := p.Peek(); tok.Kind == token.Word && tok.Keyword == kw {
		p.Next()
		return true
	}
	return false
}

// ParseKeywords consumes a run of keywords in order, reporting true only
// if all matched; on partial match the cursor is restored.
func (p *Parser) ParseKeywords(kws ...token.Keyword) bool {
	ck := p.Checkpoint()
	for _, kw := range kws {
		if !p.ParseKeyword(kw) {
			p.Restore(ck)
			return false
		}
	}
	return true
}

// ParseOneOfKeywords consumes and returns the first matching keyword
// among kws, or Keyword(0) if none match.
func (p *Parser) ParseOneOfKeywords(kws ...token.Keyword) token.Keyword {
	tok := p.Peek()
	if tok.Kind != token.Word {
		return 0
	}
	for _, kw := range kws {
		if tok.Keyword == kw {
			p.Next()
			return kw
		}
	}
	return 0
}

// PeekKeyword reports whether the next token is the Word keyword kw,
// without consuming it.
func (p *Parser) PeekKeyword(kw token.Keyword) bool {
	tok := p.Peek()
	return tok.Kind == token.Word && tok.Keyword == kw
}

// PeekOneOfKeywords reports whether the next token is one of kws,
// without consuming it.
func (p *Parser) PeekOneOfKeywords(kws ...token.Keyword) bool {
	tok := p.Peek()
	if tok.Kind != token.Word {
		return false
	}
	for _, kw := range kws {
		if tok.Keyword == kw {
			return true
		}
	}
	return false
}

// ConsumeToken consumes the next token if its Kind is k.
func (p *Parser) ConsumeToken(k token.Kind) bool {
	if p.Peek().Kind == k {
		p.Next()
		return true
	}
	return false
}

func describeToken(t token.Token) string {
	if t.Kind == token.EOF {
		return "EOF"
	}
	if t.Kind == token.Word {
		return t.Value
	}
	if t.Raw != "" {
		return t.Raw
	}
	return t.Kind.String()
}

// MaybeParse runs fn inside a checkpoint. If fn returns a recoverable
// ParserError, the cursor is restored and (nil, nil) is returned ("no
// value"). Tokenize errors never reach here (they abort tokenization
// before the parser runs); RecursionLimit and any non-ParserError
// propagate unchanged.
func MaybeParse[T any](p *Parser, fn func() (T, error)) (T, bool, error) {
	ck := p.Checkpoint()
	v, err := fn()
	if err == nil {
		return v, true, nil
	}
	if pe, ok := err.(*ParserError); ok && pe.Recoverable() {
		p.Restore(ck)
		var zero T
		return zero, false, nil
	}
	var zero T
	return zero, false, err
}

// enterDepth decrements the recursion budget, returning a RecursionLimit
// error (and restoring the budget) if it would cross zero, and a leave
// func that restores it on the way back out.
func (p *Parser) enterDepth() (func(), error) {
	if p.depth == 0 {
		return func() {}, recursionErr(p.Peek().Loc)
	}
	p.depth--
	return func() { p.depth++ }, nil
}
