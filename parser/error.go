package parser

import (
	"fmt"

	"github.com/sqlfront/parser/token"
)

// ParserErrorKind distinguishes recoverable parser errors (caught only by
// the maybe-parse combinator) from the few that are always fatal.
type ParserErrorKind uint8

const (
	// KindUnexpected covers ordinary "expected X found Y" failures; these
	// are recoverable inside MaybeParse.
	KindUnexpected ParserErrorKind = iota
	// KindRecursionLimit is raised by the depth guard and is never
	// recoverable, even inside a speculative branch.
	KindRecursionLimit
)

// ParserError is raised by the parser. Recoverable errors are caught and
// discarded by MaybeParse, which rewinds the cursor; RecursionLimit
// errors always propagate.
type ParserError struct {
	Kind    ParserErrorKind
	Message string
	Loc     token.Location
}

func (e *ParserError) Error() string {
	return fmt.Sprintf("%s at %s", e.Message, e.Loc)
}

// Recoverable reports whether MaybeParse may swallow this error.
func (e *ParserError) Recoverable() bool { return e.Kind != KindRecursionLimit }

func errAt(loc token.Location, format string, args ...any) *ParserError {
	return &ParserError{Kind: KindUnexpected, Message: fmt.Sprintf(format, args...), Loc: loc}
}

func recursionErr(loc token.Location) *ParserError {
	return &ParserError{Kind: KindRecursionLimit, Message: "recursion limit exceeded", Loc: loc}
}
