// Copyright 2025 The Spellscan Authors.
// SPDX-License-Identifier: Apache-2.0

package fix

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/k14s/difflib"

	"spellscan.dev/spellscan/pkg/scan"
)

// Apply rewrites lines for every auto-fixable finding, replacing each
// misspelled word with its first-preference correction. Findings that are
// not safe to fix (multiple corrections, or a reason attached) are left
// untouched. Returns the rewritten lines and how many were changed.
func Apply(lines []string, findings []scan.Finding) ([]string, int) {
	out := make([]string, len(lines))
	copy(out, lines)

	changed := map[int]struct{}{}
	fixedWords := map[int]map[string]struct{}{}

	for _, finding := range findings {
		if !finding.Fix || len(finding.Corrections) == 0 {
			continue
		}
		if finding.LineIndex < 0 || finding.LineIndex >= len(out) {
			continue
		}

		// a word is substituted once per line; the substitution is global
		// within it
		if _, ok := fixedWords[finding.LineIndex][finding.Word]; ok {
			continue
		}

		re, err := regexp.Compile(`\b` + regexp.QuoteMeta(finding.Word) + `\b`)
		if err != nil {
			continue
		}

		rewritten := re.ReplaceAllString(out[finding.LineIndex], finding.Corrections[0])
		if rewritten != out[finding.LineIndex] {
			out[finding.LineIndex] = rewritten
			changed[finding.LineIndex] = struct{}{}
			if fixedWords[finding.LineIndex] == nil {
				fixedWords[finding.LineIndex] = map[string]struct{}{}
			}
			fixedWords[finding.LineIndex][finding.Word] = struct{}{}
		}
	}

	return out, len(changed)
}

// Render joins lines back into file content with a trailing newline.
func Render(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

// Diff renders a readable before/after comparison for preview output.
func Diff(path string, before, after []string) string {
	return fmt.Sprintf("--- %s\n%s", path, difflib.PPDiff(before, after))
}
