package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/libklein/nand2tetris/jackcompiler/internal/token"
)

func TestTokenIs(t *testing.T) {
	tok := token.Token{Tag: token.Symbol, Value: "+"}
	assert.True(t, tok.Is("+", "-"))
	assert.False(t, tok.Is("*", "/"))
}

func TestAsIntRejectsOutOfRangeAndNegative(t *testing.T) {
	cases := []struct {
		value string
		ok    bool
		want  int
	}{
		{"0", true, 0},
		{"32767", true, 32767},
		{"32768", false, 0},
		{"-1", false, 0},
		{"abc", false, 0},
	}
	for _, c := range cases {
		tok := token.Token{Tag: token.IntegerConstant, Value: c.value}
		got, ok := tok.AsInt()
		assert.Equal(t, c.ok, ok, c.value)
		assert.Equal(t, c.want, got, c.value)
	}
}
