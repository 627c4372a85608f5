package wikidoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitTagsBodyOnly(t *testing.T) {
	res := splitTags([]string{"Greets the user."})
	assert.Equal(t, "Greets the user.", res.body)
	assert.Empty(t, res.tags.remainingNames())
}

func TestSplitTagsSimpleAndSymbolTags(t *testing.T) {
	res := splitTags([]string{
		"Doc.",
		"@author Alice",
		"@param x the",
		"first parameter",
		"@param y second",
	})
	assert.Equal(t, "Doc.", res.body)

	authors := res.tags.entries("author")
	require.Len(t, authors, 1)
	assert.Equal(t, "Alice", authors[0].value)

	params := res.tags.entries("param")
	require.Len(t, params, 2)
	assert.Equal(t, SymbolTagKey("param", "x"), params[0].key)
	assert.Equal(t, "the\nfirst parameter", params[0].value)
	assert.Equal(t, SymbolTagKey("param", "y"), params[1].key)
	assert.Equal(t, "second", params[1].value)
}

func TestSplitTagsContinuationUnderBareBodyPanics(t *testing.T) {
	// appendContinuation is only ever reached through splitTags's own
	// dispatch (which always checks for a current occurrence index first),
	// so this exercises the multimap's internal invariant directly.
	m := newTagMultimap()
	assert.PanicsWithValue(t, "oops: continuation line under a tag with no accumulated entry", func() {
		m.appendContinuation(-1, "stray")
	})
}

func TestSplitTagsRepeatedSimpleTagIsTwoOccurrences(t *testing.T) {
	res := splitTags([]string{"Doc.", "@since 1.0", "@since 2.0"})
	entries := res.tags.entries("since")
	require.Len(t, entries, 2)
	assert.Equal(t, "1.0", entries[0].value)
	assert.Equal(t, "2.0", entries[1].value)
}

func TestSplitTagsCodeFenceHidesTagsButKeepsMarkers(t *testing.T) {
	res := splitTags([]string{
		"Example.",
		"{{{",
		"@param not a tag",
		"}}}",
	})
	assert.Equal(t, "Example.\n{{{\n@param not a tag\n}}}", res.body)
	assert.Empty(t, res.tags.remainingNames())
}

func TestSplitTagsFenceOnOneLineWithTrailingText(t *testing.T) {
	res := splitTags([]string{
		"{{{ raw code",
		"}}}",
	})
	assert.Equal(t, "{{{\nraw code\n}}}", res.body)
}

func TestTagMultimapRemoveAndRemainingNames(t *testing.T) {
	m := newTagMultimap()
	m.appendLine(SimpleTagKey("return"), "a value")
	m.appendLine(SimpleTagKey("version"), "1.0")
	assert.ElementsMatch(t, []string{"return", "version"}, m.remainingNames())
	m.remove("return")
	assert.Equal(t, []string{"version"}, m.remainingNames())
}
