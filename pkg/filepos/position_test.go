// Copyright 2025 The Spellscan Authors.
// SPDX-License-Identifier: Apache-2.0

package filepos_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"spellscan.dev/spellscan/pkg/filepos"
)

func TestPositionInFile(t *testing.T) {
	pos := filepos.NewPositionInFile(3, 7, "a.txt")

	assert.True(t, pos.IsKnown())
	assert.Equal(t, 3, pos.LineNum())
	assert.Equal(t, 7, pos.Column())
	assert.Equal(t, "a.txt:3", pos.AsCompactString())
	assert.Equal(t, "line a.txt:3", pos.AsString())
}

func TestUnknownPosition(t *testing.T) {
	pos := filepos.NewUnknownPositionInFile("a.txt")

	assert.False(t, pos.IsKnown())
	assert.Equal(t, "a.txt:?", pos.AsCompactString())
	assert.Panics(t, func() { pos.LineNum() })
}

func TestOneBasedLines(t *testing.T) {
	assert.Panics(t, func() { filepos.NewPosition(0, 0) })
	assert.Panics(t, func() { filepos.NewPosition(1, -1) })
}
