// Copyright 2025 The Spellscan Authors.
// SPDX-License-Identifier: Apache-2.0

package tokenize

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/fatih/camelcase"
)

// Shape classifies a token's letter casing, used later to render
// corrections in the same convention.
type Shape int

const (
	ShapeLower Shape = iota
	ShapeUpper
	ShapeCapitalized
	ShapeMixed
)

// Token is a candidate word extracted from a line, transient to that line.
// Start and End are byte offsets; Start doubles as the finding column.
type Token struct {
	Text       string
	Normalized string
	Start      int
	End        int
	Shape      Shape
}

var (
	// chunkRegexp finds maximal candidate runs; individual word tokens are
	// carved out of each run afterwards.
	chunkRegexp = regexp.MustCompile(`[\p{L}\p{N}_'’-]+`)

	// uriRegexp blanks URL and email shapes before word extraction, so
	// their pieces never surface as tokens.
	uriRegexp = regexp.MustCompile(`\b(?:https?|[ts]?ftp|file|git|smb)://[^\s]+|\b[\w.%+-]+@[\w.-]+\b`)

	hexRegexp    = regexp.MustCompile(`^[0-9a-fA-F]+$`)
	digitsRegexp = regexp.MustCompile(`^[0-9]+$`)
)

// Opts carry the configurable tokenization heuristics.
type Opts struct {
	// SplitIdentifiers additionally splits camelCase compounds into
	// sub-tokens evaluated independently.
	SplitIdentifiers bool

	// IgnoreRegexp is treated as whitespace before word extraction.
	IgnoreRegexp *regexp.Regexp

	// URIRegexp overrides the default URL/email recognizer.
	URIRegexp *regexp.Regexp
}

type Tokenizer struct {
	opts  Opts
	uriRE *regexp.Regexp
}

func NewTokenizer(opts Opts) *Tokenizer {
	uriRE := opts.URIRegexp
	if uriRE == nil {
		uriRE = uriRegexp
	}
	return &Tokenizer{opts: opts, uriRE: uriRE}
}

// Tokenize splits one line of decoded text into candidate word tokens.
// It is deterministic and side-effect-free: identical input always yields
// identical tokens and offsets.
func (t *Tokenizer) Tokenize(line string) []Token {
	blanked := blankMatches(line, t.uriRE)
	if t.opts.IgnoreRegexp != nil {
		blanked = blankMatches(blanked, t.opts.IgnoreRegexp)
	}

	var tokens []Token

	for _, loc := range chunkRegexp.FindAllStringIndex(blanked, -1) {
		chunk := line[loc[0]:loc[1]]

		if digitsRegexp.MatchString(chunk) {
			continue
		}
		if isHexLiteral(line, loc[0], chunk) {
			continue
		}

		for _, word := range carveWords(chunk, loc[0]) {
			if t.opts.SplitIdentifiers {
				tokens = append(tokens, splitCompound(word)...)
			} else if tok, ok := newToken(word.text, word.start); ok {
				tokens = append(tokens, tok)
			}
		}
	}

	return tokens
}

// blankMatches replaces every match of re with spaces of the same byte
// length, preserving all other offsets.
func blankMatches(line string, re *regexp.Regexp) string {
	locs := re.FindAllStringIndex(line, -1)
	if len(locs) == 0 {
		return line
	}
	b := []byte(line)
	for _, loc := range locs {
		for i := loc[0]; i < loc[1]; i++ {
			b[i] = ' '
		}
	}
	return string(b)
}

// isHexLiteral reports whether the chunk is a hexadecimal sequence, either
// carrying a 0x prefix itself or immediately preceded by one in the line.
func isHexLiteral(line string, start int, chunk string) bool {
	if len(chunk) > 2 && (chunk[:2] == "0x" || chunk[:2] == "0X") && hexRegexp.MatchString(chunk[2:]) {
		return true
	}
	if start >= 2 {
		prefix := line[start-2 : start]
		if (prefix == "0x" || prefix == "0X") && hexRegexp.MatchString(chunk) {
			return true
		}
	}
	return false
}

type wordSpan struct {
	text  string
	start int
}

// carveWords extracts word tokens from a chunk: runs of letters, keeping a
// single embedded apostrophe or hyphen (so "doesn't" and "well-known" stay
// whole) while underscores, digits and repeated separators split.
func carveWords(chunk string, base int) []wordSpan {
	var words []wordSpan

	runes := []rune(chunk)
	offsets := runeByteOffsets(chunk)

	i := 0
	for i < len(runes) {
		if !unicode.IsLetter(runes[i]) {
			i++
			continue
		}

		start := i
		sepUsed := false
		i++
		for i < len(runes) {
			if unicode.IsLetter(runes[i]) {
				i++
				continue
			}
			if !sepUsed && isWordSep(runes[i]) && i+1 < len(runes) && unicode.IsLetter(runes[i+1]) {
				sepUsed = true
				i += 2
				continue
			}
			break
		}

		words = append(words, wordSpan{
			text:  string(runes[start:i]),
			start: base + offsets[start],
		})
	}

	return words
}

func isWordSep(r rune) bool {
	return r == '\'' || r == '’' || r == '-'
}

// splitCompound breaks a camelCase word into independently evaluated
// sub-tokens, keeping byte offsets accurate for column reporting.
func splitCompound(word wordSpan) []Token {
	// contracted/hyphenated prose words are not compounds
	if strings.ContainsAny(word.text, "'’-") {
		if tok, ok := newToken(word.text, word.start); ok {
			return []Token{tok}
		}
		return nil
	}

	var tokens []Token
	offset := word.start
	for _, part := range camelcase.Split(word.text) {
		if tok, ok := newToken(part, offset); ok {
			tokens = append(tokens, tok)
		}
		offset += len(part)
	}
	return tokens
}

func newToken(text string, start int) (Token, bool) {
	normalized := strings.ToLower(text)

	// single-letter tokens are never checkable
	if utf8.RuneCountInString(normalized) < 2 {
		return Token{}, false
	}

	return Token{
		Text:       text,
		Normalized: normalized,
		Start:      start,
		End:        start + len(text),
		Shape:      classifyShape(text),
	}, true
}

func classifyShape(text string) Shape {
	first := true
	firstUpper := false
	restLower := true
	anyUpper := false
	anyLower := false

	for _, r := range text {
		if !unicode.IsLetter(r) {
			continue
		}
		upper := unicode.IsUpper(r)
		if upper {
			anyUpper = true
		} else {
			anyLower = true
		}
		if first {
			firstUpper = upper
			first = false
		} else if upper {
			restLower = false
		}
	}

	switch {
	case !anyUpper:
		return ShapeLower
	case !anyLower:
		return ShapeUpper
	case firstUpper && restLower:
		return ShapeCapitalized
	default:
		return ShapeMixed
	}
}

func runeByteOffsets(s string) []int {
	offsets := make([]int, 0, len(s))
	for i := range s {
		offsets = append(offsets, i)
	}
	return offsets
}
