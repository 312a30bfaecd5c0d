package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/libklein/nand2tetris/jackcompiler/internal/diag"
	"github.com/libklein/nand2tetris/jackcompiler/internal/token"
)

func TestCursorPeekAdvancePosition(t *testing.T) {
	tokens := []token.Token{
		{Tag: token.Keyword, Value: "class", Index: 0},
		{Tag: token.Identifier, Value: "Foo", Index: 1},
	}
	c := token.NewCursor(tokens)

	peeked, ok := c.Peek()
	require.True(t, ok)
	assert.Equal(t, "class", peeked.Value)
	assert.Equal(t, 0, c.Position())

	advanced, ok := c.Advance()
	require.True(t, ok)
	assert.Equal(t, "class", advanced.Value)
	assert.Equal(t, 1, c.Position())

	advanced, ok = c.Advance()
	require.True(t, ok)
	assert.Equal(t, "Foo", advanced.Value)

	_, ok = c.Advance()
	assert.False(t, ok, "end of stream must yield absence, not panic")
}

func TestCursorRewind(t *testing.T) {
	tokens := []token.Token{{Tag: token.Symbol, Value: "{"}}
	c := token.NewCursor(tokens)

	c.Advance()
	assert.Equal(t, 1, c.Position())
	c.Rewind()
	assert.Equal(t, 0, c.Position())

	// Rewinding at position 0 is a no-op.
	c.Rewind()
	assert.Equal(t, 0, c.Position())
}

func TestExpectRecordsDiagnosticOnMismatchButAdvances(t *testing.T) {
	tokens := []token.Token{{Tag: token.Symbol, Value: ";", Index: 4}}
	c := token.NewCursor(tokens)
	sink := diag.NewSink("test.xml")

	_, ok := c.Expect(sink, token.Symbol, "}")
	assert.False(t, ok)
	assert.Equal(t, 1, sink.Errors())
	assert.Equal(t, 1, c.Position(), "mismatched token is still consumed so parsing can continue")
}

func TestExpectAtEndOfStreamReportsAndReturnsFalse(t *testing.T) {
	c := token.NewCursor(nil)
	sink := diag.NewSink("test.xml")

	_, ok := c.Expect(sink, token.Symbol, ";")
	assert.False(t, ok)
	assert.Equal(t, 1, sink.Errors())
}
