// Copyright 2025 The Spellscan Authors.
// SPDX-License-Identifier: Apache-2.0

package fix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spellscan.dev/spellscan/pkg/filepos"
	"spellscan.dev/spellscan/pkg/fix"
	"spellscan.dev/spellscan/pkg/scan"
)

func finding(word, correction string, lineIndex int, autoFix bool) scan.Finding {
	f := scan.Finding{
		Position:  filepos.NewPositionInFile(lineIndex+1, 0, "a.txt"),
		Word:      word,
		Fix:       autoFix,
		LineIndex: lineIndex,
	}
	if correction != "" {
		f.Corrections = []string{correction}
	}
	return f
}

func TestApplyRewritesFixableFindings(t *testing.T) {
	lines := []string{"teh quick fox", "clean line"}

	fixed, changed := fix.Apply(lines, []scan.Finding{finding("teh", "the", 0, true)})

	assert.Equal(t, 1, changed)
	assert.Equal(t, []string{"the quick fox", "clean line"}, fixed)
	assert.Equal(t, "teh quick fox", lines[0], "input lines are untouched")
}

func TestApplyReplacesAllOccurrencesInLine(t *testing.T) {
	lines := []string{"teh word and teh other"}

	fixed, changed := fix.Apply(lines, []scan.Finding{
		finding("teh", "the", 0, true),
		finding("teh", "the", 0, true),
	})

	assert.Equal(t, 1, changed)
	assert.Equal(t, []string{"the word and the other"}, fixed)
}

func TestApplyRespectsWordBoundaries(t *testing.T) {
	lines := []string{"teh tehs"}

	fixed, _ := fix.Apply(lines, []scan.Finding{finding("teh", "the", 0, true)})

	assert.Equal(t, []string{"the tehs"}, fixed)
}

func TestApplySkipsNonFixableFindings(t *testing.T) {
	lines := []string{"wether report"}

	fixed, changed := fix.Apply(lines, []scan.Finding{finding("wether", "weather", 0, false)})

	assert.Equal(t, 0, changed)
	assert.Equal(t, lines, fixed)
}

func TestApplyPreservesCasingViaCorrections(t *testing.T) {
	// corrections arrive already casing-adjusted by the evaluator
	lines := []string{"Teh quick fox"}

	fixed, _ := fix.Apply(lines, []scan.Finding{finding("Teh", "The", 0, true)})

	assert.Equal(t, []string{"The quick fox"}, fixed)
}

func TestRender(t *testing.T) {
	assert.Equal(t, "a\nb\n", fix.Render([]string{"a", "b"}))
	assert.Equal(t, "", fix.Render(nil))
}

func TestDiffMentionsChange(t *testing.T) {
	before := []string{"teh quick fox"}
	after := []string{"the quick fox"}

	diff := fix.Diff("a.txt", before, after)
	require.Contains(t, diff, "a.txt")
	assert.Contains(t, diff, "teh quick fox")
	assert.Contains(t, diff, "the quick fox")
}
