package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqlfront/parser/dialect"
	"github.com/sqlfront/parser/lexer"
	"github.com/sqlfront/parser/token"
)

func significant(toks []token.Token) []token.Token {
	var out []token.Token
	for _, t := range toks {
		if t.Kind == token.Space || t.Kind == token.Tab || t.Kind == token.Newline {
			continue
		}
		out = append(out, t)
	}
	return out
}

func TestTokenizeSelectKeywordsAndPunctuation(t *testing.T) {
	toks, err := lexer.New("SELECT id, name FROM users WHERE id = 1", dialect.Generic(), true).Tokenize()
	require.NoError(t, err)

	sig := significant(toks)
	require.NotEmpty(t, sig)
	assert.Equal(t, token.Word, sig[0].Kind)
	assert.Equal(t, token.SELECT, sig[0].Keyword)
	assert.Equal(t, token.EOF, sig[len(sig)-1].Kind)

	var sawComma, sawEqual bool
	for _, tok := range sig {
		switch tok.Kind {
		case token.Comma:
			sawComma = true
		case token.Equal:
			sawEqual = true
		}
	}
	assert.True(t, sawComma, "expected a comma token")
	assert.True(t, sawEqual, "expected an equal token")
}

func TestTokenizeDialectQuotedIdentifiers(t *testing.T) {
	toks, err := lexer.New("SELECT `id` FROM `t`", dialect.MySQL(), true).Tokenize()
	require.NoError(t, err)

	sig := significant(toks)
	var found bool
	for _, tok := range sig {
		if tok.Kind == token.Word && tok.Quote == '`' {
			found = true
		}
	}
	assert.True(t, found, "expected a backtick-quoted identifier token")
}

func TestTokenizePostgresDollarPlaceholderIsNotAnError(t *testing.T) {
	toks, err := lexer.New("SELECT * FROM t WHERE id = $1", dialect.Postgres(), true).Tokenize()
	require.NoError(t, err)
	assert.NotEmpty(t, toks)
}

func TestTokenizeUnterminatedStringIsFatal(t *testing.T) {
	_, err := lexer.New("SELECT 'unterminated", dialect.Generic(), true).Tokenize()
	require.Error(t, err)
	var tokErr *lexer.TokenizeError
	assert.ErrorAs(t, err, &tokErr)
}
