// Copyright 2025 The Spellscan Authors.
// SPDX-License-Identifier: Apache-2.0

package filepos

import (
	"fmt"
)

// Position locates a word within a scanned file. Lines are 1 based;
// columns are 0 based byte offsets within the line.
type Position struct {
	file    string
	lineNum int
	column  int
	known   bool
}

func NewPosition(lineNum, column int) Position {
	if lineNum <= 0 {
		panic("Lines are 1 based")
	}
	if column < 0 {
		panic("Columns are 0 based")
	}
	return Position{lineNum: lineNum, column: column, known: true}
}

// NewPositionInFile returns the Position of the word at "column" of line
// "lineNum" within the file "file".
func NewPositionInFile(lineNum, column int, file string) Position {
	p := NewPosition(lineNum, column)
	p.file = file
	return p
}

// NewUnknownPositionInFile produces a Position of a known file at an
// unknown line, e.g. for findings against the file name itself.
func NewUnknownPositionInFile(file string) Position {
	return Position{file: file}
}

func (p Position) IsKnown() bool { return p.known }

func (p Position) GetFile() string { return p.file }

func (p Position) LineNum() int {
	if !p.known {
		panic("Position is unknown")
	}
	return p.lineNum
}

func (p Position) Column() int {
	if !p.known {
		panic("Position is unknown")
	}
	return p.column
}

func (p Position) AsString() string {
	return "line " + p.AsCompactString()
}

func (p Position) AsCompactString() string {
	filePrefix := p.file
	if len(filePrefix) > 0 {
		filePrefix += ":"
	}
	if p.known {
		return fmt.Sprintf("%s%d", filePrefix, p.lineNum)
	}
	return fmt.Sprintf("%s?", filePrefix)
}
