// Copyright 2025 The Spellscan Authors.
// SPDX-License-Identifier: Apache-2.0

package rules

import (
	"strings"
	"unicode"

	"spellscan.dev/spellscan/pkg/dictionary"
	"spellscan.dev/spellscan/pkg/tokenize"
)

// Direction says on which side of the word a context exception applies.
type Direction int

const (
	Any Direction = iota
	Before
	After
)

// ContextRule excuses a normally flagged word when a specific token sits
// next to it. Rules are data, not code: the evaluator carries no
// hardcoded word lists.
type ContextRule struct {
	Word      string
	Adjacent  string
	Direction Direction
}

// LineContext carries the normalized tokens adjacent to the one being
// evaluated; empty strings at line edges.
type LineContext struct {
	Prev string
	Next string
}

// Candidate is a would-be finding before suppression: the original token
// text plus casing-adjusted corrections in dictionary preference order.
type Candidate struct {
	Word        string
	Corrections []string
	Reason      string
	Fix         bool
}

type Evaluator struct {
	store      *dictionary.Store
	exceptions map[string][]ContextRule
}

// NewEvaluator builds an evaluator over an immutable dictionary store.
// Rules referencing a word absent from the merged dictionary are inert;
// their words are returned so the caller can warn.
func NewEvaluator(store *dictionary.Store, contextRules []ContextRule) (*Evaluator, []string) {
	exceptions := map[string][]ContextRule{}
	var inert []string

	for _, rule := range contextRules {
		word := strings.ToLower(rule.Word)
		if !store.Contains(word) {
			inert = append(inert, rule.Word)
			continue
		}
		rule.Word = word
		rule.Adjacent = strings.ToLower(rule.Adjacent)
		exceptions[word] = append(exceptions[word], rule)
	}

	return &Evaluator{store: store, exceptions: exceptions}, inert
}

// Evaluate decides whether a token matches a known misspelling in its
// context and, if so, produces the candidate finding.
func (e *Evaluator) Evaluate(tok tokenize.Token, ctx LineContext) (Candidate, bool) {
	entry, ok := e.store.Lookup(tok.Normalized)
	if !ok {
		return Candidate{}, false
	}

	for _, rule := range e.exceptions[tok.Normalized] {
		if rule.matches(ctx) {
			return Candidate{}, false
		}
	}

	corrections := make([]string, 0, len(entry.Corrections))
	for _, correction := range entry.Corrections {
		corrections = append(corrections, FixCase(tok.Shape, correction))
	}

	return Candidate{
		Word:        tok.Text,
		Corrections: corrections,
		Reason:      entry.Reason,
		Fix:         entry.Fix,
	}, true
}

func (r ContextRule) matches(ctx LineContext) bool {
	switch r.Direction {
	case Before:
		return ctx.Prev == r.Adjacent
	case After:
		return ctx.Next == r.Adjacent
	default:
		return ctx.Prev == r.Adjacent || ctx.Next == r.Adjacent
	}
}

// FixCase renders a correction in the casing convention of the original
// token: all-uppercase tokens get uppercase corrections, capitalized
// tokens get capitalized ones, anything else keeps the correction's
// stored casing.
func FixCase(shape tokenize.Shape, correction string) string {
	switch shape {
	case tokenize.ShapeUpper:
		return strings.ToUpper(correction)
	case tokenize.ShapeCapitalized:
		return capitalize(correction)
	default:
		return correction
	}
}

func capitalize(word string) string {
	for i, r := range word {
		return string(unicode.ToUpper(r)) + word[i+len(string(r)):]
	}
	return word
}
