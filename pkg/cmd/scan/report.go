// Copyright 2025 The Spellscan Authors.
// SPDX-License-Identifier: Apache-2.0

package scan

import (
	"strings"

	cmdui "spellscan.dev/spellscan/pkg/cmd/ui"
	"spellscan.dev/spellscan/pkg/scan"
)

// TermColors holds the ANSI sequences used when rendering findings.
type TermColors struct {
	File    string
	Wrong   string
	Fixed   string
	Disable string
}

func NewTermColors(enabled bool) TermColors {
	if !enabled {
		return TermColors{}
	}
	return TermColors{
		File:    "\033[33m",
		Wrong:   "\033[31m",
		Fixed:   "\033[32m",
		Disable: "\033[0m",
	}
}

type Printer struct {
	ui     cmdui.UI
	colors TermColors
}

func NewPrinter(ui cmdui.UI, colorsEnabled bool) *Printer {
	return &Printer{ui: ui, colors: NewTermColors(colorsEnabled)}
}

// PrintFindings renders one line per finding:
//
//	path:line: word ==> correction1, correction2  | reason
//
// Findings against a file name carry no line number.
func (p *Printer) PrintFindings(findings []scan.Finding) {
	for _, finding := range findings {
		location := finding.Position.GetFile()
		if finding.Position.IsKnown() {
			location = finding.Position.AsCompactString()
		}

		reason := ""
		if finding.Reason != "" {
			reason = "  | " + p.colors.File + finding.Reason + p.colors.Disable
		}

		corrections := strings.Join(finding.Corrections, ", ")

		p.ui.Printf("%s%s%s: %s%s%s ==> %s%s%s%s\n",
			p.colors.File, location, p.colors.Disable,
			p.colors.Wrong, finding.Word, p.colors.Disable,
			p.colors.Fixed, corrections, p.colors.Disable,
			reason)
	}
}
