package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sqlfront/parser/token"
)

func TestLookupKeywordResolvesKnownKeywords(t *testing.T) {
	cases := map[string]token.Keyword{
		"select": token.SELECT,
		"from":   token.FROM,
		"where":  token.WHERE,
		"insert": token.INSERT,
		"create": token.CREATE,
		"drop":   token.DROP,
		"and":    token.AND,
		"or":     token.OR,
	}
	for word, want := range cases {
		assert.Equal(t, want, token.LookupKeyword(word), "word %q", word)
	}
}

func TestLookupKeywordReturnsUndefinedForIdentifiers(t *testing.T) {
	for _, word := range []string{"my_table", "widgets", "", "a_very_long_identifier_name_not_a_keyword"} {
		assert.Equal(t, token.Undefined, token.LookupKeyword(word), "word %q", word)
	}
}

func TestTokenIsKeyword(t *testing.T) {
	kwTok := token.Token{Kind: token.Word, Keyword: token.SELECT}
	identTok := token.Token{Kind: token.Word, Keyword: token.Undefined}

	assert.True(t, kwTok.IsKeyword())
	assert.False(t, identTok.IsKeyword())
}
