package textprep

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeRejectsEmptyInput(t *testing.T) {
	for _, in := range []string{"", "   ", "\n\t "} {
		_, err := Normalize(in)
		assert.ErrorIs(t, err, ErrEmptyInput, "input %q", in)
	}
}

func TestNormalizeStripsPunctuationAndStopwords(t *testing.T) {
	got, err := Normalize("Hello, World!")
	require.NoError(t, err)
	assert.Equal(t, []string{"hello", "world"}, got.Tokens)
	assert.Equal(t, "hello world", got.String())
}

func TestNormalizeDropsDigitsAndCollapsesWhitespace(t *testing.T) {
	got, err := Normalize("  Built 3 REST   APIs in   2021 with the Go team.  ")
	require.NoError(t, err)
	assert.Equal(t, []string{"built", "rest", "apis", "go", "team"}, got.Tokens)
}

func TestNormalizeSymbolsOnlyYieldsNoTokens(t *testing.T) {
	got, err := Normalize("123 !!! 456")
	require.NoError(t, err)
	assert.Equal(t, 0, got.Len())
	assert.Equal(t, "", got.String())
}

func TestNormalizeIsDeterministic(t *testing.T) {
	in := "Senior Java Developer — Spring Boot, Hibernate & Microservices"
	a, err := Normalize(in)
	require.NoError(t, err)
	b, err := Normalize(in)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestTokenSet(t *testing.T) {
	set := TokenSet("Python python PYTHON and SQL")
	assert.Len(t, set, 2)
	assert.Contains(t, set, "python")
	assert.Contains(t, set, "sql")
}
