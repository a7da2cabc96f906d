// Copyright 2025 The Spellscan Authors.
// SPDX-License-Identifier: Apache-2.0

package dictionary

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/hashicorp/go-multierror"

	"spellscan.dev/spellscan/pkg/files"
)

const commentPrefix = "#"

// Entry is one known misspelling. Corrections are in preference order and
// may be empty for entries that are known errors with no safe automatic
// fix; such entries still match.
type Entry struct {
	Misspelling string
	Corrections []string
	Reason      string

	// Fix reports whether the entry is safe to correct automatically:
	// exactly one correction and no reason attached.
	Fix bool
}

// MalformedLineError is a structural parse failure within a dictionary
// source. It is fatal to the run; scanning never starts with a partially
// loaded dictionary.
type MalformedLineError struct {
	Source  string
	LineNum int
	Text    string
	Problem string
}

func (e MalformedLineError) Error() string {
	return fmt.Sprintf("Malformed dictionary line %s:%d: %s (%q)", e.Source, e.LineNum, e.Problem, e.Text)
}

// Store holds a merged misspelling->Entry mapping. Lookup is
// case-insensitive exact match; no fuzzy matching happens here.
type Store struct {
	entries map[string]Entry
}

func NewStore() *Store {
	return &Store{entries: map[string]Entry{}}
}

// Load parses one dictionary source into the store. Entries whose key is
// listed in ignoreWords are dropped. Keys already present (from this or an
// earlier load) are overridden, and reported via the returned collision
// list so callers can warn. All malformed lines are reported together.
func (s *Store) Load(src files.Source, ignoreWords map[string]struct{}) ([]string, error) {
	data, err := src.Bytes()
	if err != nil {
		return nil, fmt.Errorf("Reading dictionary %s: %s", src.Description(), err)
	}

	var errs *multierror.Error
	var collisions []string

	for i, line := range files.SplitLines(files.DecodeText(data)) {
		line = strings.TrimRight(line, "\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, commentPrefix) {
			continue
		}

		entry, err := ParseLine(trimmed)
		if err != nil {
			malformed := err.(MalformedLineError)
			malformed.Source = src.Description()
			malformed.LineNum = i + 1
			errs = multierror.Append(errs, malformed)
			continue
		}

		if _, ok := ignoreWords[entry.Misspelling]; ok {
			continue
		}

		if _, ok := s.entries[entry.Misspelling]; ok {
			collisions = append(collisions, entry.Misspelling)
		}
		s.entries[entry.Misspelling] = entry
	}

	return collisions, errs.ErrorOrNil()
}

// ParseLine parses a single `misspelling->correction1, correction2, ...`
// entry. The segment after the last comma is a free-text reason, unless
// that comma is trailing, in which case the entry has multiple corrections
// and no reason. A lone correction with no comma is auto-fixable.
func ParseLine(line string) (Entry, error) {
	key, data, found := strings.Cut(line, "->")
	if !found {
		return Entry{}, MalformedLineError{Text: line, Problem: "expected 'misspelling->corrections' structure"}
	}

	key = strings.ToLower(key)
	if key == "" {
		return Entry{}, MalformedLineError{Text: line, Problem: "empty misspelling key"}
	}
	if strings.IndexFunc(key, unicode.IsSpace) >= 0 {
		return Entry{}, MalformedLineError{Text: line, Problem: "misspelling key contains whitespace"}
	}

	// only the key is normalized; corrections keep their stored casing so
	// proper-noun fixes like Linux survive to the output
	data = strings.TrimSpace(data)

	entry := Entry{Misspelling: key}

	lastComma := strings.LastIndex(data, ",")
	switch {
	case lastComma < 0:
		entry.Fix = true
	case lastComma == len(data)-1:
		data = data[:lastComma]
	default:
		entry.Reason = strings.TrimSpace(data[lastComma+1:])
		data = data[:lastComma]
	}

	for _, correction := range strings.Split(data, ",") {
		correction = strings.TrimSpace(correction)
		if correction != "" {
			entry.Corrections = append(entry.Corrections, correction)
		}
	}
	if len(entry.Corrections) != 1 {
		entry.Fix = false
	}

	return entry, nil
}

// Merge combines another store into this one. On key collision the entry
// from the merged-in store wins; collisions are returned for warning, never
// failed on, since builtin and user dictionaries are expected to overlap.
func (s *Store) Merge(other *Store) []string {
	var collisions []string
	for key, entry := range other.entries {
		if _, ok := s.entries[key]; ok {
			collisions = append(collisions, key)
		}
		s.entries[key] = entry
	}
	sort.Strings(collisions)
	return collisions
}

// Lookup finds the entry for a word, case-insensitively.
func (s *Store) Lookup(word string) (Entry, bool) {
	entry, ok := s.entries[strings.ToLower(word)]
	return entry, ok
}

func (s *Store) Contains(word string) bool {
	_, ok := s.entries[strings.ToLower(word)]
	return ok
}

func (s *Store) Len() int { return len(s.entries) }
