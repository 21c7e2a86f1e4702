package lexer

import (
	"fmt"

	"github.com/sqlfront/parser/token"
)

// TokenizeError is always fatal: the tokenizer cannot recover and the
// parse is abandoned. It is never caught by the parser's maybe-parse
// combinator, only ParserError is.
type TokenizeError struct {
	Message string
	Loc     token.Location
}

func (e *TokenizeError) Error() string {
	return fmt.Sprintf("%s at %s", e.Message, e.Loc)
}

func newErr(loc token.Location, format string, args ...any) *TokenizeError {
	return &TokenizeError{Message: fmt.Sprintf(format, args...), Loc: loc}
}
