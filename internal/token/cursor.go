package token

import "github.com/libklein/nand2tetris/jackcompiler/internal/diag"

// Cursor is a buffered, read-only view over a token stream whose
// position only moves backwards through Rewind. It never panics:
// running past the end of the stream simply yields the absent sentinel.
type Cursor struct {
	tokens []Token
	pos    int
}

// NewCursor returns a Cursor positioned before the first token.
func NewCursor(tokens []Token) *Cursor {
	return &Cursor{tokens: tokens}
}

// Peek returns the token at the current position without consuming it.
// ok is false at end of stream.
func (c *Cursor) Peek() (Token, bool) {
	if c.pos >= len(c.tokens) {
		return Token{}, false
	}
	return c.tokens[c.pos], true
}

// Advance consumes and returns the token at the current position.
// ok is false at end of stream, in which case the cursor does not move.
func (c *Cursor) Advance() (Token, bool) {
	tok, ok := c.Peek()
	if !ok {
		return Token{}, false
	}
	c.pos++
	return tok, true
}

// Position returns the current cursor index.
func (c *Cursor) Position() int {
	return c.pos
}

// Rewind backs up the cursor by one token; at position 0 it does
// nothing. The compilation engine does not call it: its productions
// decide with Peek instead.
func (c *Cursor) Rewind() {
	if c.pos > 0 {
		c.pos--
	}
}

// Expect advances the cursor and records a diagnostic on sink if the
// consumed token's tag or value doesn't match what was expected. It
// always returns the consumed token (or the zero token at end of
// stream) so callers can keep parsing after a mismatch.
//
// A zero-value tag or value is treated as "don't care".
func (c *Cursor) Expect(sink *diag.Sink, tag Tag, value string) (Token, bool) {
	tok, ok := c.Advance()
	if !ok {
		sink.AddError(c.pos, "unexpected end of token stream, expected %s", describe(tag, value))
		return Token{}, false
	}
	if tag != Invalid && tok.Tag != tag {
		sink.AddError(tok.Index, "expected token tag %q, got %q (%q)", tag, tok.Tag, tok.Value)
		return tok, false
	}
	if value != "" && tok.Value != value {
		sink.AddError(tok.Index, "expected %q, got %q", value, tok.Value)
		return tok, false
	}
	return tok, true
}

func describe(tag Tag, value string) string {
	if value != "" {
		return "\"" + value + "\""
	}
	return string(tag)
}
