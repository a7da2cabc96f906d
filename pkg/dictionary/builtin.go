// Copyright 2025 The Spellscan Authors.
// SPDX-License-Identifier: Apache-2.0

package dictionary

import (
	"embed"
	"fmt"
	"sort"
	"strings"

	"spellscan.dev/spellscan/pkg/files"
)

//go:embed data/*.txt
var builtinData embed.FS

// Builtin is one independently loadable builtin dictionary category.
type Builtin struct {
	Name string
	Desc string
	file string
}

var Builtins = []Builtin{
	{"clear", "for unambiguous errors", "data/dictionary.txt"},
	{"rare", "for rare (but valid) words that are likely to be errors", "data/dictionary_rare.txt"},
	{"informal", "for making informal words more formal", "data/dictionary_informal.txt"},
	{"usage", "for replacing phrasing with recommended terms", "data/dictionary_usage.txt"},
	{"code", "for words from code and/or mathematics that are likely to be typos in other contexts (such as uint)", "data/dictionary_code.txt"},
	{"names", "for valid proper names that might be typos", "data/dictionary_names.txt"},
	{"en-GB_to_en-US", "for corrections from en-GB to en-US", "data/dictionary_en-GB_to_en-US.txt"},
}

// DefaultBuiltins is the category selection used when none is configured.
const DefaultBuiltins = "clear,rare"

// BuiltinSource returns a dictionary Source for the named builtin
// category.
func BuiltinSource(name string) (files.Source, error) {
	for _, b := range Builtins {
		if b.Name == name {
			data, err := builtinData.ReadFile(b.file)
			if err != nil {
				return nil, fmt.Errorf("Reading builtin dictionary '%s': %s", name, err)
			}
			return files.NewBytesSource(fmt.Sprintf("builtin dictionary '%s'", name), data), nil
		}
	}
	return nil, fmt.Errorf("Unknown builtin dictionary: %s", name)
}

// BuiltinSources resolves a comma-separated category selection into
// dictionary sources, sorted and deduplicated.
func BuiltinSources(selection string) ([]files.Source, error) {
	names := map[string]struct{}{}
	for _, name := range strings.Split(selection, ",") {
		name = strings.TrimSpace(name)
		if name != "" {
			names[name] = struct{}{}
		}
	}

	sorted := make([]string, 0, len(names))
	for name := range names {
		sorted = append(sorted, name)
	}
	sort.Strings(sorted)

	var srcs []files.Source
	for _, name := range sorted {
		src, err := BuiltinSource(name)
		if err != nil {
			return nil, err
		}
		srcs = append(srcs, src)
	}
	return srcs, nil
}
