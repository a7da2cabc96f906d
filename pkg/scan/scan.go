// Copyright 2025 The Spellscan Authors.
// SPDX-License-Identifier: Apache-2.0

package scan

import (
	"context"
	"fmt"
	"sync"

	"spellscan.dev/spellscan/pkg/filepos"
	"spellscan.dev/spellscan/pkg/files"
	"spellscan.dev/spellscan/pkg/rules"
	"spellscan.dev/spellscan/pkg/suppress"
	"spellscan.dev/spellscan/pkg/tokenize"
)

// Finding is one reported misspelling occurrence. Findings are immutable
// once emitted; ownership transfers to the reporting side.
type Finding struct {
	Position    filepos.Position
	Word        string
	Corrections []string
	Reason      string

	// Fix marks the finding as safe to correct automatically.
	Fix bool

	// Line is the containing line's text; LineIndex its 0-based index
	// within the file. Both back the write-changes path.
	Line      string
	LineIndex int
}

// Diagnostic is a recoverable problem recorded alongside findings.
type Diagnostic struct {
	Kind string
	Path string
	Msg  string
}

const (
	DiagFileReadFailure = "file-read-failure"
	DiagBinaryFile      = "binary-file"
)

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s", d.Path, d.Msg)
}

// Result aggregates one scan invocation's output in file-path order.
type Result struct {
	Findings    []Finding
	Diagnostics []Diagnostic
}

func (r Result) HasFindings() bool { return len(r.Findings) > 0 }

// Opts configure the orchestrator around the shared read-only stores.
type Opts struct {
	// CheckFilenames also tokenizes each file's path.
	CheckFilenames bool

	// Jobs is the worker-pool width; values below 2 scan serially.
	Jobs int
}

// Scanner drives the pipeline per file per line: tokenize, evaluate,
// suppress, emit. All referenced state is immutable during the scan, so
// files may be processed in parallel.
type Scanner struct {
	evaluator  *rules.Evaluator
	tokenizer  *tokenize.Tokenizer
	suppressor *suppress.Context
	opts       Opts
}

func NewScanner(evaluator *rules.Evaluator, tokenizer *tokenize.Tokenizer,
	suppressor *suppress.Context, opts Opts) *Scanner {
	return &Scanner{evaluator: evaluator, tokenizer: tokenizer, suppressor: suppressor, opts: opts}
}

// Scan processes the given files. Output order always follows input file
// order regardless of worker completion order, keeping re-runs
// byte-identical. Cancelling the context stops dispatching new files;
// in-flight files complete.
func (s *Scanner) Scan(ctx context.Context, fs []*files.File) Result {
	if s.opts.Jobs < 2 || len(fs) < 2 {
		var result Result
		for _, f := range fs {
			if ctx.Err() != nil {
				break
			}
			fileResult := s.scanFile(f)
			result.Findings = append(result.Findings, fileResult.Findings...)
			result.Diagnostics = append(result.Diagnostics, fileResult.Diagnostics...)
		}
		return result
	}

	perFile := make([]Result, len(fs))
	sem := make(chan struct{}, s.opts.Jobs)
	var wg sync.WaitGroup

	for i, f := range fs {
		if ctx.Err() != nil {
			break
		}
		sem <- struct{}{}
		wg.Add(1)
		go func(i int, f *files.File) {
			defer wg.Done()
			defer func() { <-sem }()
			perFile[i] = s.scanFile(f)
		}(i, f)
	}
	wg.Wait()

	var result Result
	for _, fileResult := range perFile {
		result.Findings = append(result.Findings, fileResult.Findings...)
		result.Diagnostics = append(result.Diagnostics, fileResult.Diagnostics...)
	}
	return result
}

func (s *Scanner) scanFile(f *files.File) Result {
	var result Result

	path := f.RelativePath()

	// cheap to decide before any read
	if s.suppressor.SkipPath(path) {
		return result
	}

	if s.opts.CheckFilenames {
		result.Findings = append(result.Findings, s.checkFilename(path)...)
	}

	isText, err := f.IsText()
	if err != nil {
		result.Diagnostics = append(result.Diagnostics, Diagnostic{
			Kind: DiagFileReadFailure, Path: path, Msg: err.Error(),
		})
		return result
	}
	if !isText {
		result.Diagnostics = append(result.Diagnostics, Diagnostic{
			Kind: DiagBinaryFile, Path: path, Msg: "binary file skipped",
		})
		return result
	}

	lines, err := f.Lines()
	if err != nil {
		result.Diagnostics = append(result.Diagnostics, Diagnostic{
			Kind: DiagFileReadFailure, Path: path, Msg: err.Error(),
		})
		return result
	}

	for i, line := range lines {
		result.Findings = append(result.Findings, s.scanLine(path, i, line)...)
	}

	return result
}

func (s *Scanner) scanLine(path string, lineIndex int, line string) []Finding {
	var findings []Finding

	tokens := s.tokenizer.Tokenize(line)
	for i, tok := range tokens {
		var lineCtx rules.LineContext
		if i > 0 {
			lineCtx.Prev = tokens[i-1].Normalized
		}
		if i+1 < len(tokens) {
			lineCtx.Next = tokens[i+1].Normalized
		}

		candidate, ok := s.evaluator.Evaluate(tok, lineCtx)
		if !ok {
			continue
		}
		if s.suppressor.Suppress(tok.Normalized, path, line) {
			continue
		}

		findings = append(findings, Finding{
			Position:    filepos.NewPositionInFile(lineIndex+1, tok.Start, path),
			Word:        candidate.Word,
			Corrections: candidate.Corrections,
			Reason:      candidate.Reason,
			Fix:         candidate.Fix,
			Line:        line,
			LineIndex:   lineIndex,
		})
	}

	return findings
}

func (s *Scanner) checkFilename(path string) []Finding {
	var findings []Finding

	for _, tok := range s.tokenizer.Tokenize(path) {
		candidate, ok := s.evaluator.Evaluate(tok, rules.LineContext{})
		if !ok {
			continue
		}
		if s.suppressor.SuppressWord(tok.Normalized) || s.suppressor.SkipPath(path) {
			continue
		}

		findings = append(findings, Finding{
			Position:    filepos.NewUnknownPositionInFile(path),
			Word:        candidate.Word,
			Corrections: candidate.Corrections,
			Reason:      candidate.Reason,
			Fix:         candidate.Fix,
		})
	}

	return findings
}
