// Copyright 2025 The Spellscan Authors.
// SPDX-License-Identifier: Apache-2.0

package scan

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"regexp"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	cmdui "spellscan.dev/spellscan/pkg/cmd/ui"
	"spellscan.dev/spellscan/pkg/config"
	"spellscan.dev/spellscan/pkg/dictionary"
	"spellscan.dev/spellscan/pkg/files"
	"spellscan.dev/spellscan/pkg/fix"
	"spellscan.dev/spellscan/pkg/rules"
	"spellscan.dev/spellscan/pkg/scan"
	"spellscan.dev/spellscan/pkg/tokenize"
	"spellscan.dev/spellscan/pkg/version"
)

// DefaultInlineMarker suppresses every finding on lines that carry it.
const DefaultInlineMarker = "spellscan:ignore"

type ScanOptions struct {
	Debug bool

	FileFlags       FileFlags
	DictionaryFlags DictionaryFlags
	SuppressFlags   SuppressFlags

	SplitIdentifiers bool
	CheckFilenames   bool
	WriteChanges     bool
	ShowSummary      bool
	ShowCount        bool
	Jobs             int
	Color            string
	ConfigFile       string
}

func NewOptions() *ScanOptions {
	return &ScanOptions{
		Jobs:  runtime.NumCPU(),
		Color: "auto",
	}
}

func NewCmd(o *ScanOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan files for known misspellings",
		RunE:  func(_ *cobra.Command, _ []string) error { return o.Run() },
	}
	cmd.Flags().BoolVar(&o.Debug, "debug", false, "Enable debug output")
	cmd.Flags().BoolVar(&o.SplitIdentifiers, "split-identifiers", false,
		"Split camelCase identifiers into sub-words checked independently")
	cmd.Flags().BoolVar(&o.CheckFilenames, "check-filenames", false, "Check file names as well")
	cmd.Flags().BoolVarP(&o.WriteChanges, "write-changes", "w", false, "Write unambiguous fixes in place")
	cmd.Flags().BoolVarP(&o.ShowSummary, "summary", "s", false, "Print summary of findings per word")
	cmd.Flags().BoolVar(&o.ShowCount, "count", false, "Print the number of findings as the last line of stderr")
	cmd.Flags().IntVarP(&o.Jobs, "jobs", "j", runtime.NumCPU(), "Number of files scanned in parallel")
	cmd.Flags().StringVar(&o.Color, "color", "auto", "Colorize findings (auto, always, never)")
	cmd.Flags().StringVar(&o.ConfigFile, "config", "", fmt.Sprintf("Path to config file (default '%s' when present)", config.DefaultPath))
	o.FileFlags.Set(cmd)
	o.DictionaryFlags.Set(cmd)
	o.SuppressFlags.Set(cmd)
	return cmd
}

func (o *ScanOptions) Run() error {
	ui := cmdui.NewTTY(o.Debug)
	log := newLogger(o.Debug)
	t1 := time.Now()

	defer func() {
		ui.Debugf("total: %s\n", time.Now().Sub(t1))
	}()

	cfg, err := o.loadConfig()
	if err != nil {
		return UsageError{err}
	}

	ignoreWords, err := o.SuppressFlags.IgnoreWordSet(cfg)
	if err != nil {
		return UsageError{err}
	}

	store, err := o.DictionaryFlags.Store(cfg, ignoreWords, log)
	if err != nil {
		return UsageError{err}
	}

	evaluator := o.buildEvaluator(store, cfg, log)

	suppressor, err := o.SuppressFlags.Context(cfg, ignoreWords, log)
	if err != nil {
		return UsageError{err}
	}

	tokenizer, err := o.buildTokenizer(cfg)
	if err != nil {
		return UsageError{err}
	}

	filesToScan, err := files.NewFiles(o.FileFlags.Paths, o.SuppressFlags.CheckHidden || cfg.Scan.CheckHidden)
	if err != nil {
		return UsageError{err}
	}

	scanner := scan.NewScanner(evaluator, tokenizer, suppressor, scan.Opts{
		CheckFilenames: o.CheckFilenames || cfg.Scan.CheckFilenames,
		Jobs:           o.Jobs,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	result := scanner.Scan(ctx, filesToScan)

	for _, diag := range result.Diagnostics {
		log.WithField("path", diag.Path).Warn(diag.Msg)
	}

	printer := NewPrinter(ui, o.colorsEnabled())
	printer.PrintFindings(result.Findings)

	if o.WriteChanges {
		if err := o.writeChanges(filesToScan, result.Findings, ui); err != nil {
			return err
		}
	}

	if o.ShowSummary {
		summary := scan.NewSummary()
		for _, finding := range result.Findings {
			summary.Update(finding.Word)
		}
		ui.Printf("\n-------8<-------\nSUMMARY:\n%s\n", summary.String())
	}
	if o.ShowCount {
		ui.Warnf("%d\n", len(result.Findings))
	}

	if result.HasFindings() {
		return FindingsError{Count: len(result.Findings)}
	}
	return nil
}

func (o *ScanOptions) loadConfig() (config.Config, error) {
	path := o.ConfigFile
	explicit := path != ""
	if !explicit {
		path = config.DefaultPath
	}

	cfg, err := config.Load(path, explicit)
	if err != nil {
		return cfg, err
	}

	if err := cfg.CheckVersion(version.Version); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (o *ScanOptions) buildEvaluator(store *dictionary.Store, cfg config.Config, log logrus.FieldLogger) *rules.Evaluator {
	contextRules, err := cfg.ContextRules()
	if err != nil {
		// invalid rules are dropped, never fatal
		log.Warnf("Dropping context rules: %s", err)
	}

	evaluator, inert := rules.NewEvaluator(store, contextRules)
	for _, word := range inert {
		log.WithField("word", word).Warn("Context rule references a word not present in any loaded dictionary; rule is inert")
	}
	return evaluator
}

func (o *ScanOptions) buildTokenizer(cfg config.Config) (*tokenize.Tokenizer, error) {
	opts := tokenize.Opts{
		SplitIdentifiers: o.SplitIdentifiers || cfg.Scan.SplitIdentifiers,
	}

	ignoreRegex := o.SuppressFlags.IgnoreRegex
	if ignoreRegex == "" {
		ignoreRegex = cfg.Scan.IgnoreRegex
	}
	if ignoreRegex != "" {
		re, err := regexp.Compile(ignoreRegex)
		if err != nil {
			return nil, fmt.Errorf("Invalid --ignore-regex %q: %s", ignoreRegex, err)
		}
		opts.IgnoreRegexp = re
	}

	return tokenize.NewTokenizer(opts), nil
}

func (o *ScanOptions) colorsEnabled() bool {
	switch o.Color {
	case "always":
		return true
	case "never":
		return false
	default:
		fi, err := os.Stdout.Stat()
		return err == nil && (fi.Mode()&os.ModeCharDevice) != 0
	}
}

func (o *ScanOptions) writeChanges(filesScanned []*files.File, findings []scan.Finding, ui cmdui.UI) error {
	byPath := map[string][]scan.Finding{}
	for _, finding := range findings {
		if finding.Fix && finding.Position.IsKnown() {
			path := finding.Position.GetFile()
			byPath[path] = append(byPath[path], finding)
		}
	}

	for _, f := range filesScanned {
		path := f.RelativePath()
		fileFindings := byPath[path]
		if len(fileFindings) == 0 {
			continue
		}

		lines, err := f.Lines()
		if err != nil {
			continue
		}

		fixed, changed := fix.Apply(lines, fileFindings)
		if changed == 0 {
			continue
		}

		ui.Debugf("%s", fix.Diff(path, lines, fixed))

		if err := os.WriteFile(path, []byte(fix.Render(fixed)), 0600); err != nil {
			return fmt.Errorf("Writing fixes to '%s': %s", path, err)
		}
		ui.Warnf("FIXED: %s\n", path)
	}

	return nil
}

func newLogger(debug bool) logrus.FieldLogger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	if debug {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}
