package wikidoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReaderCurrentAndAdvance(t *testing.T) {
	r := newReader("ab")
	assert.Equal(t, 'a', r.current())
	r.advance()
	assert.Equal(t, 'b', r.current())
	r.advance()
	assert.True(t, r.atEnd())
	assert.Equal(t, endOfText, r.current())
}

func TestReaderCheckIsPureLookahead(t *testing.T) {
	r := newReader("hello")
	assert.True(t, r.check("hel"))
	assert.False(t, r.check("xyz"))
	// check must never mutate the cursor
	assert.Equal(t, 'h', r.current())
}

func TestReaderJumpVsCheckedJump(t *testing.T) {
	r := newReader("abcdef")
	assert.True(t, r.jump("abc"))
	assert.Equal(t, 'd', r.current())

	r2 := newReader("abXdef")
	assert.False(t, r2.jump("abc"))
	// partial match of "ab" was still consumed
	assert.Equal(t, 'X', r2.current())

	r3 := newReader("abXdef")
	assert.False(t, r3.checkedJump("abc"))
	// checkedJump leaves the cursor untouched on failure
	assert.Equal(t, 'a', r3.current())
}

func TestReaderRepeatJump(t *testing.T) {
	r := newReader("===title")
	n := r.repeatJump("=", -1)
	assert.Equal(t, 3, n)
	assert.Equal(t, 't', r.current())

	r2 := newReader("==a")
	n2 := r2.repeatJump("=", 1)
	assert.Equal(t, 1, n2)
	assert.Equal(t, '=', r2.current())
}

func TestReaderReadUntilString(t *testing.T) {
	r := newReader("hello}}}world")
	r.readUntilString("}}}")
	assert.Equal(t, "hello", r.getRead())
	assert.True(t, r.check("}}}"))
}

func TestReaderReadUntilStringRunsToEnd(t *testing.T) {
	r := newReader("no closer here")
	r.readUntilString("}}}")
	assert.Equal(t, "no closer here", r.getRead())
	assert.True(t, r.atEnd())
}

func TestReaderWhitespaceExcludesNewline(t *testing.T) {
	r := newReader("  \n x")
	assert.Equal(t, 2, r.countWhitespace())
	r.jumpWhitespace()
	assert.Equal(t, lineSeparator, r.current())
}

func TestReaderGetReadDrainsBuffer(t *testing.T) {
	r := newReader("abc")
	r.readChar()
	r.readChar()
	assert.Equal(t, "ab", r.getRead())
	assert.Equal(t, "", r.getRead())
}
