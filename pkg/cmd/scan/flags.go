// Copyright 2025 The Spellscan Authors.
// SPDX-License-Identifier: Apache-2.0

package scan

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"spellscan.dev/spellscan/pkg/config"
	"spellscan.dev/spellscan/pkg/dictionary"
	"spellscan.dev/spellscan/pkg/files"
	"spellscan.dev/spellscan/pkg/suppress"
)

type FileFlags struct {
	Paths []string
}

func (s *FileFlags) Set(cmd *cobra.Command) {
	cmd.Flags().StringSliceVarP(&s.Paths, "file", "f", nil,
		"File or directory to scan (ie local path, -) (can be specified multiple times)")
}

type DictionaryFlags struct {
	Dictionaries []string
	Builtin      string
}

func (s *DictionaryFlags) Set(cmd *cobra.Command) {
	cmd.Flags().StringSliceVarP(&s.Dictionaries, "dictionary", "D", nil,
		"Custom dictionary file with spelling corrections; '-' selects the builtin dictionaries (can be specified multiple times)")
	cmd.Flags().StringVar(&s.Builtin, "builtin", "",
		fmt.Sprintf("Comma-separated list of builtin dictionaries to use (default '%s')", dictionary.DefaultBuiltins))
}

// Store loads and merges the selected dictionaries. A malformed dictionary
// or an empty result is fatal; scanning never starts without a usable
// dictionary. Key collisions are expected between builtin and user
// dictionaries and only warn; the later entry wins.
func (s *DictionaryFlags) Store(cfg config.Config, ignoreWords map[string]struct{}, log logrus.FieldLogger) (*dictionary.Store, error) {
	paths := s.Dictionaries
	if len(paths) == 0 {
		paths = cfg.Scan.Dictionaries
	}
	if len(paths) == 0 {
		paths = []string{"-"}
	}

	selection := s.Builtin
	if selection == "" {
		selection = cfg.Scan.Builtin
	}
	if selection == "" {
		selection = dictionary.DefaultBuiltins
	}

	var srcs []files.Source
	for _, path := range paths {
		switch {
		case path == "-":
			builtinSrcs, err := dictionary.BuiltinSources(selection)
			if err != nil {
				return nil, err
			}
			srcs = append(srcs, builtinSrcs...)

		case strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://"):
			srcs = append(srcs, files.NewHTTPSource(path))

		default:
			if _, err := os.Stat(path); err != nil {
				return nil, fmt.Errorf("Cannot find dictionary file: %s", path)
			}
			srcs = append(srcs, files.NewLocalSource(path))
		}
	}

	store := dictionary.NewStore()
	for _, src := range srcs {
		collisions, err := store.Load(src, ignoreWords)
		if err != nil {
			return nil, err
		}
		for _, key := range collisions {
			log.WithField("key", key).Warnf("Dictionary %s overrides an earlier entry", src.Description())
		}
	}

	if store.Len() == 0 {
		return nil, fmt.Errorf("No dictionary entries loaded; nothing to scan against")
	}

	return store, nil
}

type SuppressFlags struct {
	IgnoreWordsFiles []string
	IgnoreWordsList  []string
	SkipPatterns     []string
	ExcludeFile      string
	IgnoreRegex      string
	InlineMarker     string
	CheckHidden      bool
}

func (s *SuppressFlags) Set(cmd *cobra.Command) {
	cmd.Flags().StringArrayVarP(&s.IgnoreWordsFiles, "ignore-words", "I", nil,
		"File with words to never flag, one per line (can be specified multiple times)")
	cmd.Flags().StringSliceVarP(&s.IgnoreWordsList, "ignore-words-list", "L", nil,
		"Comma-separated list of words to never flag")
	cmd.Flags().StringSliceVarP(&s.SkipPatterns, "skip", "S", nil,
		"Comma-separated list of path globs to skip (e.g. '*.eps,build/**')")
	cmd.Flags().StringVarP(&s.ExcludeFile, "exclude-file", "x", "",
		"File with lines to exclude verbatim from checking")
	cmd.Flags().StringVar(&s.IgnoreRegex, "ignore-regex", "",
		"Regular expression matching text treated as whitespace before tokenization")
	cmd.Flags().StringVar(&s.InlineMarker, "inline-marker", "",
		fmt.Sprintf("Inline comment token suppressing the containing line (default '%s')", DefaultInlineMarker))
	cmd.Flags().BoolVarP(&s.CheckHidden, "check-hidden", "H", false,
		"Check hidden files and directories (those starting with '.') as well")
}

// IgnoreWordSet gathers all never-flag words from flags, ignore-words
// files and config, normalized lowercase.
func (s *SuppressFlags) IgnoreWordSet(cfg config.Config) (map[string]struct{}, error) {
	words := map[string]struct{}{}

	add := func(word string) {
		word = strings.ToLower(strings.TrimSpace(word))
		if word != "" {
			words[word] = struct{}{}
		}
	}

	for _, word := range s.IgnoreWordsList {
		add(word)
	}
	for _, word := range cfg.Scan.IgnoreWords {
		add(word)
	}

	for _, path := range s.IgnoreWordsFiles {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("Cannot read ignore-words file '%s': %s", path, err)
		}
		for _, line := range files.SplitLines(files.DecodeText(data)) {
			add(strings.TrimRight(line, "\r"))
		}
	}

	return words, nil
}

// Context builds the scan's read-only suppression state. Invalid skip
// patterns are dropped with a warning.
func (s *SuppressFlags) Context(cfg config.Config, ignoreWords map[string]struct{}, log logrus.FieldLogger) (*suppress.Context, error) {
	opts := suppress.Opts{
		InlineMarker: firstNonEmpty(s.InlineMarker, cfg.Scan.InlineMarker, DefaultInlineMarker),
	}

	for word := range ignoreWords {
		opts.ExcludeWords = append(opts.ExcludeWords, word)
	}

	opts.SkipPatterns = append(opts.SkipPatterns, s.SkipPatterns...)
	opts.SkipPatterns = append(opts.SkipPatterns, cfg.Scan.Skip...)

	excludeFile := firstNonEmpty(s.ExcludeFile, cfg.Scan.ExcludeFile)
	if excludeFile != "" {
		data, err := os.ReadFile(excludeFile)
		if err != nil {
			return nil, fmt.Errorf("Cannot read exclude file '%s': %s", excludeFile, err)
		}
		opts.ExcludeLines = files.SplitLines(files.DecodeText(data))
	}

	ctx, badPatterns := suppress.NewContext(opts)
	for _, pattern := range badPatterns {
		log.WithField("pattern", pattern).Warn("Dropping invalid skip pattern")
	}
	return ctx, nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
