// Copyright 2025 The Spellscan Authors.
// SPDX-License-Identifier: Apache-2.0

package tokenize_test

import (
	"regexp"
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spellscan.dev/spellscan/pkg/tokenize"
)

func tokenTexts(tokens []tokenize.Token) []string {
	texts := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		texts = append(texts, tok.Text)
	}
	return texts
}

func TestTokenizeWordsAndOffsets(t *testing.T) {
	tokens := tokenize.NewTokenizer(tokenize.Opts{}).Tokenize("teh quick fox")

	require.Len(t, tokens, 3)
	assert.Equal(t, "teh", tokens[0].Text)
	assert.Equal(t, 0, tokens[0].Start)
	assert.Equal(t, 3, tokens[0].End)
	assert.Equal(t, "quick", tokens[1].Text)
	assert.Equal(t, 4, tokens[1].Start)
	assert.Equal(t, "fox", tokens[2].Text)
	assert.Equal(t, 10, tokens[2].Start)
}

func TestTokenizeKeepsSingleApostropheAndHyphen(t *testing.T) {
	tokens := tokenize.NewTokenizer(tokenize.Opts{}).Tokenize("doesn't handle well-known cases")

	assert.Equal(t, []string{"doesn't", "handle", "well-known", "cases"}, tokenTexts(tokens))
}

func TestTokenizeSplitsOnRepeatedSeparators(t *testing.T) {
	tokens := tokenize.NewTokenizer(tokenize.Opts{}).Tokenize("foo--bar")

	assert.Equal(t, []string{"foo", "bar"}, tokenTexts(tokens))
}

func TestTokenizeExcludesDigitsAndSingleChars(t *testing.T) {
	tokens := tokenize.NewTokenizer(tokenize.Opts{}).Tokenize("a 1234 x2 word")

	assert.Equal(t, []string{"word"}, tokenTexts(tokens))
}

func TestTokenizeExcludesHexLiterals(t *testing.T) {
	tokenizer := tokenize.NewTokenizer(tokenize.Opts{})

	assert.Empty(t, tokenizer.Tokenize("0xdeadbeef 0XCAFE"))

	// the same letters without a hex prefix are ordinary words
	tokens := tokenizer.Tokenize("deadbeef")
	assert.Equal(t, []string{"deadbeef"}, tokenTexts(tokens))
}

func TestTokenizeExcludesURLsAndEmails(t *testing.T) {
	tokenizer := tokenize.NewTokenizer(tokenize.Opts{})

	tokens := tokenizer.Tokenize("see https://example.com/teh/path for details")
	assert.Equal(t, []string{"see", "for", "details"}, tokenTexts(tokens))

	tokens = tokenizer.Tokenize("mail teh@example.com today")
	assert.Equal(t, []string{"mail", "today"}, tokenTexts(tokens))
}

func TestTokenizeSplitsSnakeCaseAndDigitBoundaries(t *testing.T) {
	tokens := tokenize.NewTokenizer(tokenize.Opts{}).Tokenize("uint32_t foo_bar")

	assert.Equal(t, []string{"uint", "foo", "bar"}, tokenTexts(tokens))
	assert.Equal(t, 0, tokens[0].Start)
	assert.Equal(t, 9, tokens[1].Start)
	assert.Equal(t, 13, tokens[2].Start)
}

func TestTokenizeCamelCaseSplitting(t *testing.T) {
	tokenizer := tokenize.NewTokenizer(tokenize.Opts{SplitIdentifiers: true})

	tokens := tokenizer.Tokenize("recieveData")
	require.Len(t, tokens, 2)
	assert.Equal(t, "recieve", tokens[0].Text)
	assert.Equal(t, 0, tokens[0].Start)
	assert.Equal(t, "Data", tokens[1].Text)
	assert.Equal(t, 7, tokens[1].Start)

	// compounds stay whole without the option
	tokens = tokenize.NewTokenizer(tokenize.Opts{}).Tokenize("recieveData")
	assert.Equal(t, []string{"recieveData"}, tokenTexts(tokens))
}

func TestTokenizeCamelCaseKeepsContractions(t *testing.T) {
	tokenizer := tokenize.NewTokenizer(tokenize.Opts{SplitIdentifiers: true})

	tokens := tokenizer.Tokenize("doesn't")
	assert.Equal(t, []string{"doesn't"}, tokenTexts(tokens))
}

func TestTokenizeCasingShapes(t *testing.T) {
	tokens := tokenize.NewTokenizer(tokenize.Opts{}).Tokenize("the THE The tHe")

	require.Len(t, tokens, 4)
	assert.Equal(t, tokenize.ShapeLower, tokens[0].Shape)
	assert.Equal(t, tokenize.ShapeUpper, tokens[1].Shape)
	assert.Equal(t, tokenize.ShapeCapitalized, tokens[2].Shape)
	assert.Equal(t, tokenize.ShapeMixed, tokens[3].Shape)
}

func TestTokenizeNormalization(t *testing.T) {
	tokens := tokenize.NewTokenizer(tokenize.Opts{}).Tokenize("TEH")

	require.Len(t, tokens, 1)
	assert.Equal(t, "TEH", tokens[0].Text)
	assert.Equal(t, "teh", tokens[0].Normalized)
}

func TestTokenizeIgnoreRegexp(t *testing.T) {
	opts := tokenize.Opts{IgnoreRegexp: mustCompile(t, `\bteh\b`)}
	tokens := tokenize.NewTokenizer(opts).Tokenize("teh quick tehs")

	assert.Equal(t, []string{"quick", "tehs"}, tokenTexts(tokens))
}

func TestTokenizeUnicodeOffsets(t *testing.T) {
	tokens := tokenize.NewTokenizer(tokenize.Opts{}).Tokenize("héllo teh")

	require.Len(t, tokens, 2)
	assert.Equal(t, "héllo", tokens[0].Text)
	assert.Equal(t, 0, tokens[0].Start)
	assert.Equal(t, "teh", tokens[1].Text)
	assert.Equal(t, 7, tokens[1].Start, "offsets are byte based")
}

func TestTokenizeDeterminism(t *testing.T) {
	tokenizer := tokenize.NewTokenizer(tokenize.Opts{SplitIdentifiers: true})

	lines := []string{
		"teh quick brown fox",
		"uint32_t x = 0xdeadbeef; // teh comment",
		"visit https://example.com/abotu or mail teh@example.com",
	}

	f := fuzz.New().NumElements(0, 200)
	for i := 0; i < 100; i++ {
		var line string
		f.Fuzz(&line)
		lines = append(lines, line)
	}

	for _, line := range lines {
		first := tokenizer.Tokenize(line)
		second := tokenizer.Tokenize(line)
		require.Equal(t, first, second, "line %q", line)
	}
}

func mustCompile(t *testing.T, expr string) *regexp.Regexp {
	t.Helper()
	re, err := regexp.Compile(expr)
	require.NoError(t, err)
	return re
}
