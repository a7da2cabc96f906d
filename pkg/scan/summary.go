// Copyright 2025 The Spellscan Authors.
// SPDX-License-Identifier: Apache-2.0

package scan

import (
	"fmt"
	"sort"
	"strings"
)

// Summary counts finding occurrences per normalized word.
type Summary struct {
	counts map[string]int
}

func NewSummary() *Summary {
	return &Summary{counts: map[string]int{}}
}

func (s *Summary) Update(word string) {
	s.counts[strings.ToLower(word)]++
}

func (s *Summary) Total() int {
	total := 0
	for _, n := range s.counts {
		total += n
	}
	return total
}

// String renders words with their counts, sorted for stable output.
func (s *Summary) String() string {
	words := make([]string, 0, len(s.counts))
	for word := range s.counts {
		words = append(words, word)
	}
	sort.Strings(words)

	var b strings.Builder
	for i, word := range words {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%-15s %d", word, s.counts[word])
	}
	return b.String()
}
