package wikidoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanLinesStripsDelimitersAndMarkers(t *testing.T) {
	raw := "/** Greets the user.\n  * @author Alice\n  * @return the greeting */"
	out := cleanLines(raw, nil, NopReporter{})
	assert.Equal(t, []string{"Greets the user.", "@author Alice", "@return the greeting"}, out)
}

func TestCleanLinesDropsBlankLines(t *testing.T) {
	raw := "/**\n * First.\n *\n * Second.\n */"
	out := cleanLines(raw, nil, NopReporter{})
	assert.Equal(t, []string{"First.", "", "Second."}, out)
}

func TestCleanLinesWarnsOnMissingMarker(t *testing.T) {
	raw := "/** one\nrogue line\n */"
	rep := &CollectingReporter{}
	out := cleanLines(raw, "pos", rep)
	assert.Equal(t, []string{"one", "rogue line"}, out)
	assert.Len(t, rep.Warnings, 1)
	assert.Equal(t, "pos", rep.Warnings[0].Pos)
}

func TestCleanLinesIsIdempotent(t *testing.T) {
	raw := "/** a\n * b\n */"
	once := cleanLines(raw, nil, NopReporter{})
	// re-cleaning the already-cleaned, marker-free lines should be a no-op:
	// joining them back with "* " prefixes and cleaning again reproduces the
	// same content.
	rejoined := "/**"
	for _, l := range once {
		rejoined += "\n * " + l
	}
	rejoined += "\n */"
	twice := cleanLines(rejoined, nil, NopReporter{})
	assert.Equal(t, once, twice)
}
