// Package textprep turns raw resume text into the token sequence the classifier vectorizes.
package textprep

import (
	"errors"
	"strings"
	"unicode"
)

// ErrEmptyInput indicates the submitted text was empty or whitespace only.
var ErrEmptyInput = errors.New("empty input")

// PreprocessedText is the normalized token sequence derived from a resume.
type PreprocessedText struct {
	Tokens []string
}

// String joins the tokens with single spaces for vectorization.
func (p PreprocessedText) String() string {
	return strings.Join(p.Tokens, " ")
}

// Len returns the number of tokens.
func (p PreprocessedText) Len() int {
	return len(p.Tokens)
}

// Normalize lower-cases the text, drops digits and punctuation, collapses
// whitespace and filters English stopwords.
func Normalize(text string) (PreprocessedText, error) {
	if strings.TrimSpace(text) == "" {
		return PreprocessedText{}, ErrEmptyInput
	}
	return PreprocessedText{Tokens: Tokens(text)}, nil
}

// Tokens applies the same cleaning as Normalize without the empty-input check.
// Anything that is not a letter separates tokens.
func Tokens(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r)
	})
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if IsStopword(f) {
			continue
		}
		out = append(out, f)
	}
	return out
}

// TokenSet returns the distinct tokens of text.
func TokenSet(text string) map[string]struct{} {
	tokens := Tokens(text)
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return set
}
