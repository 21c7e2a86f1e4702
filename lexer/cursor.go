// Package lexer turns SQL source text into a flat, located token vector.
// Unlike a typical hand-rolled scanner it never discards whitespace or
// comments: every byte of input round-trips into some token, which lets
// the parser (and any external writer) reconstruct source formatting.
package lexer

import (
	"unicode/utf8"

	"github.com/sqlfront/parser/token"
)

// Cursor is a rune-oriented read head over SQL source. It tracks
// (line, column) as it advances so every token carries an accurate
// Location, and it supports Clone for the lookahead a few lexical rules
// need (e.g. probing whether a `B` prefix is followed by a quote).
type Cursor struct {
	src  string
	pos  int // byte offset of the rune Peek() would return
	line int
	col  int
}

// NewCursor creates a Cursor positioned at the start of src.
func NewCursor(src string) *Cursor {
	return &Cursor{src: src, line: token.LocationStart.Line, col: token.LocationStart.Col}
}

// Location returns the cursor's current position.
func (c *Cursor) Location() token.Location {
	return token.Location{Line: c.line, Col: c.col}
}

// AtEOF reports whether the cursor has no more runes.
func (c *Cursor) AtEOF() bool { return c.pos >= len(c.src) }

// Peek returns the rune at the cursor without consuming it.
func (c *Cursor) Peek() (rune, bool) {
	if c.pos >= len(c.src) {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(c.src[c.pos:])
	return r, true
}

// PeekAt returns the nth rune ahead of the cursor (0 == Peek), without
// consuming anything. It satisfies dialect.RuneCursor.
func (c *Cursor) PeekAt(n int) (rune, bool) {
	p := c.pos
	var r rune
	for i := 0; i <= n; i++ {
		if p >= len(c.src) {
			return 0, false
		}
		var size int
		r, size = utf8.DecodeRuneInString(c.src[p:])
		p += size
	}
	return r, true
}

// Next consumes and returns the rune at the cursor, advancing line/col
// bookkeeping. A bare '\n' or '\r' (with an optional following '\n')
// advances the line; everything else advances the column.
func (c *Cursor) Next() (rune, bool) {
	r, ok := c.Peek()
	if !ok {
		return 0, false
	}
	c.pos += utf8.RuneLen(r)
	switch r {
	case '\n':
		c.line++
		c.col = 1
	case '\r':
		if p, ok := c.Peek(); ok && p == '\n' {
			c.pos++
		}
		c.line++
		c.col = 1
	default:
		c.col++
	}
	return r, true
}

// TakeWhile consumes runes while pred holds, returning the consumed text.
func (c *Cursor) TakeWhile(pred func(rune) bool) string {
	start := c.pos
	for {
		r, ok := c.Peek()
		if !ok || !pred(r) {
			break
		}
		c.Next()
	}
	return c.src[start:c.pos]
}

// Clone returns an independent copy of the cursor's state, used for
// speculative lookahead rules like is_proper_identifier_inside_quotes.
func (c *Cursor) Clone() *Cursor {
	cp := *c
	return &cp
}

// Slice returns the raw source text between two byte offsets, used to
// recover verbatim text for tokens assembled by hand (e.g. custom
// operators, dollar-quoted bodies).
func (c *Cursor) Slice(from, to int) string { return c.src[from:to] }

// Offset returns the cursor's current byte offset into the source.
func (c *Cursor) Offset() int { return c.pos }
