// Copyright 2025 The Spellscan Authors.
// SPDX-License-Identifier: Apache-2.0

package suppress

import (
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar"
)

// Opts are the raw suppression inputs gathered from flags and config.
type Opts struct {
	ExcludeWords []string
	SkipPatterns []string
	InlineMarker string
	ExcludeLines []string
}

// Context is the read-only suppression state for one scan invocation.
type Context struct {
	excludeWords map[string]struct{}
	skipPatterns []string
	inlineMarker string
	excludeLines map[string]struct{}
}

// NewContext builds the suppression context once per scan. Patterns that
// do not compile are dropped and returned so the caller can warn; a bad
// pattern never fails the run.
func NewContext(opts Opts) (*Context, []string) {
	ctx := &Context{
		excludeWords: map[string]struct{}{},
		inlineMarker: opts.InlineMarker,
		excludeLines: map[string]struct{}{},
	}

	for _, word := range opts.ExcludeWords {
		word = strings.ToLower(strings.TrimSpace(word))
		if word != "" {
			ctx.excludeWords[word] = struct{}{}
		}
	}

	var badPatterns []string
	for _, pattern := range opts.SkipPatterns {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}
		if _, err := doublestar.Match(pattern, "probe"); err != nil {
			badPatterns = append(badPatterns, pattern)
			continue
		}
		ctx.skipPatterns = append(ctx.skipPatterns, pattern)
	}

	for _, line := range opts.ExcludeLines {
		ctx.excludeLines[line] = struct{}{}
	}

	return ctx, badPatterns
}

// SuppressWord reports whether the normalized word is excluded outright.
func (c *Context) SuppressWord(normalized string) bool {
	_, ok := c.excludeWords[strings.ToLower(normalized)]
	return ok
}

// SkipPath reports whether the file path matches a skip pattern. Patterns
// are tried against the full path, its base name, and each directory
// segment, mirroring how skip globs behave in directory walks.
func (c *Context) SkipPath(path string) bool {
	if len(c.skipPatterns) == 0 {
		return false
	}

	candidates := []string{path, filepath.Base(path)}
	for _, segment := range strings.Split(filepath.ToSlash(path), "/") {
		if segment != "" && segment != filepath.Base(path) {
			candidates = append(candidates, segment)
		}
	}

	for _, pattern := range c.skipPatterns {
		for _, candidate := range candidates {
			if ok, _ := doublestar.Match(pattern, candidate); ok {
				return true
			}
		}
	}
	return false
}

// SuppressLine reports whether every finding on the line is suppressed,
// either via the inline ignore marker or an exact-line exclude.
func (c *Context) SuppressLine(line string) bool {
	if c.inlineMarker != "" && strings.Contains(line, c.inlineMarker) {
		return true
	}
	_, ok := c.excludeLines[line]
	return ok
}

// Suppress applies the checks in precedence order, first match wins:
// excluded word, skipped path, suppressed line.
func (c *Context) Suppress(normalizedWord, path, line string) bool {
	if c.SuppressWord(normalizedWord) {
		return true
	}
	if c.SkipPath(path) {
		return true
	}
	return c.SuppressLine(line)
}
