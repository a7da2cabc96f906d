// Copyright 2025 The Spellscan Authors.
// SPDX-License-Identifier: Apache-2.0

package dictionary_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spellscan.dev/spellscan/pkg/dictionary"
	"spellscan.dev/spellscan/pkg/files"
)

func TestParseLineSingleCorrection(t *testing.T) {
	entry, err := dictionary.ParseLine("teh->the")
	require.NoError(t, err)

	assert.Equal(t, "teh", entry.Misspelling)
	assert.Equal(t, []string{"the"}, entry.Corrections)
	assert.Equal(t, "", entry.Reason)
	assert.True(t, entry.Fix)
}

func TestParseLineMultipleCorrections(t *testing.T) {
	entry, err := dictionary.ParseLine("wether->weather, whether,")
	require.NoError(t, err)

	assert.Equal(t, []string{"weather", "whether"}, entry.Corrections)
	assert.Equal(t, "", entry.Reason)
	assert.False(t, entry.Fix, "multiple corrections are never auto-fixable")
}

func TestParseLineWithReason(t *testing.T) {
	entry, err := dictionary.ParseLine("uint->unit, disabled due to being a valid integer type name")
	require.NoError(t, err)

	assert.Equal(t, []string{"unit"}, entry.Corrections)
	assert.Equal(t, "disabled due to being a valid integer type name", entry.Reason)
	assert.False(t, entry.Fix, "a reason disables automatic fixing")
}

func TestParseLineKeepsCorrectionCasing(t *testing.T) {
	entry, err := dictionary.ParseLine("linux->Linux")
	require.NoError(t, err)

	assert.Equal(t, "linux", entry.Misspelling)
	assert.Equal(t, []string{"Linux"}, entry.Corrections, "stored casing is data, not noise")
	assert.True(t, entry.Fix)

	entry, err = dictionary.ParseLine("guiness->Guinness, see the brewery")
	require.NoError(t, err)
	assert.Equal(t, []string{"Guinness"}, entry.Corrections)
	assert.Equal(t, "see the brewery", entry.Reason)
}

func TestParseLineKeyIsNormalizedLowercase(t *testing.T) {
	entry, err := dictionary.ParseLine("Teh->the")
	require.NoError(t, err)

	assert.Equal(t, "teh", entry.Misspelling)
}

func TestParseLineEmptyCorrections(t *testing.T) {
	entry, err := dictionary.ParseLine("wontfix->,")
	require.NoError(t, err)

	assert.Empty(t, entry.Corrections)
	assert.False(t, entry.Fix)
}

func TestParseLineMalformed(t *testing.T) {
	for _, line := range []string{
		"no separator here",
		"->the",
		"t eh->the",
	} {
		_, err := dictionary.ParseLine(line)
		require.Error(t, err, "line %q", line)
		require.IsType(t, dictionary.MalformedLineError{}, err)
	}
}

func TestLoadSkipsCommentsAndBlankLines(t *testing.T) {
	src := files.NewBytesSource("test.txt", []byte("# comment\n\nteh->the\n"))

	store := dictionary.NewStore()
	collisions, err := store.Load(src, nil)
	require.NoError(t, err)
	require.Empty(t, collisions)

	assert.Equal(t, 1, store.Len())
}

func TestLoadReportsAllMalformedLines(t *testing.T) {
	src := files.NewBytesSource("test.txt", []byte("teh->the\nbroken\nalso broken\n"))

	store := dictionary.NewStore()
	_, err := store.Load(src, nil)
	require.Error(t, err)

	assert.Contains(t, err.Error(), "test.txt:2")
	assert.Contains(t, err.Error(), "test.txt:3")
}

func TestLoadDropsIgnoredWords(t *testing.T) {
	src := files.NewBytesSource("test.txt", []byte("teh->the\nrecieve->receive\n"))

	store := dictionary.NewStore()
	_, err := store.Load(src, map[string]struct{}{"teh": {}})
	require.NoError(t, err)

	assert.False(t, store.Contains("teh"))
	assert.True(t, store.Contains("recieve"))
}

func TestLookupIsCaseInsensitive(t *testing.T) {
	store := dictionary.NewStore()
	_, err := store.Load(files.NewBytesSource("test.txt", []byte("teh->the\n")), nil)
	require.NoError(t, err)

	entry, ok := store.Lookup("TEH")
	require.True(t, ok)
	assert.Equal(t, "teh", entry.Misspelling)
}

func TestMergeLastWriterWins(t *testing.T) {
	first := dictionary.NewStore()
	_, err := first.Load(files.NewBytesSource("first.txt", []byte("teh->the\nabotu->about\n")), nil)
	require.NoError(t, err)

	second := dictionary.NewStore()
	_, err = second.Load(files.NewBytesSource("second.txt", []byte("teh->then\n")), nil)
	require.NoError(t, err)

	collisions := first.Merge(second)
	assert.Equal(t, []string{"teh"}, collisions)

	entry, ok := first.Lookup("teh")
	require.True(t, ok)
	assert.Equal(t, []string{"then"}, entry.Corrections, "most recently merged entry wins")

	entry, ok = first.Lookup("abotu")
	require.True(t, ok)
	assert.Equal(t, []string{"about"}, entry.Corrections)
}

func TestLoadCollisionLaterEntryWins(t *testing.T) {
	store := dictionary.NewStore()
	_, err := store.Load(files.NewBytesSource("first.txt", []byte("teh->the\n")), nil)
	require.NoError(t, err)

	collisions, err := store.Load(files.NewBytesSource("second.txt", []byte("teh->then\n")), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"teh"}, collisions)

	entry, _ := store.Lookup("teh")
	assert.Equal(t, []string{"then"}, entry.Corrections)
}

func TestBuiltinSources(t *testing.T) {
	srcs, err := dictionary.BuiltinSources(dictionary.DefaultBuiltins)
	require.NoError(t, err)
	require.Len(t, srcs, 2)

	store := dictionary.NewStore()
	for _, src := range srcs {
		_, err := store.Load(src, nil)
		require.NoError(t, err)
	}

	assert.True(t, store.Contains("teh"))
	assert.Greater(t, store.Len(), 50)
}

func TestBuiltinSourcesUnknownCategory(t *testing.T) {
	_, err := dictionary.BuiltinSources("clear,nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Unknown builtin dictionary: nope")
}

func TestBuiltinCategoriesAllLoadable(t *testing.T) {
	for _, builtin := range dictionary.Builtins {
		src, err := dictionary.BuiltinSource(builtin.Name)
		require.NoError(t, err, "category %s", builtin.Name)

		store := dictionary.NewStore()
		_, err = store.Load(src, nil)
		require.NoError(t, err, "category %s", builtin.Name)
		assert.Greater(t, store.Len(), 0, "category %s", builtin.Name)
	}
}
