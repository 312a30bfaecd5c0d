package lexer_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/libklein/nand2tetris/jackcompiler/internal/diag"
	"github.com/libklein/nand2tetris/jackcompiler/internal/lexer"
	"github.com/libklein/nand2tetris/jackcompiler/internal/token"
)

func TestScanStripsCommentsAndRecognizesEachTag(t *testing.T) {
	src := `
// leading comment
class Foo { /* a block
   comment */ field int x; }
`
	sink := diag.NewSink("Foo.jack")
	tokens := lexer.Scan([]byte(src), sink)
	require.False(t, sink.HasIssues())

	var values []string
	for _, tok := range tokens {
		values = append(values, tok.Value)
	}
	assert.Equal(t, []string{"class", "Foo", "{", "field", "int", "x", ";", "}"}, values)
	assert.Equal(t, token.Keyword, tokens[0].Tag)
	assert.Equal(t, token.Identifier, tokens[1].Tag)
	assert.Equal(t, token.Symbol, tokens[2].Tag)
}

func TestScanStringConstant(t *testing.T) {
	sink := diag.NewSink("Foo.jack")
	tokens := lexer.Scan([]byte(`"Hi there"`), sink)
	require.Len(t, tokens, 1)
	assert.Equal(t, token.StringConstant, tokens[0].Tag)
	assert.Equal(t, "Hi there", tokens[0].Value)
}

func TestScanKeywordIsNotConfusedWithLongerIdentifier(t *testing.T) {
	sink := diag.NewSink("Foo.jack")
	tokens := lexer.Scan([]byte("classroom"), sink)
	require.Len(t, tokens, 1)
	assert.Equal(t, token.Identifier, tokens[0].Tag)
	assert.Equal(t, "classroom", tokens[0].Value)
}

func TestScanUnclosedCommentReportsError(t *testing.T) {
	sink := diag.NewSink("Foo.jack")
	lexer.Scan([]byte("/* never closed"), sink)
	assert.Equal(t, 1, sink.Errors())
}

func TestScanStrayCommentCloseReportsWarning(t *testing.T) {
	sink := diag.NewSink("Foo.jack")
	lexer.Scan([]byte("class */ Foo"), sink)
	assert.Equal(t, 1, sink.Warnings())
}

func TestWriteXMLWrapsLexemesAndEscapesText(t *testing.T) {
	tokens := []token.Token{
		{Tag: token.Keyword, Value: "class"},
		{Tag: token.Identifier, Value: "Foo"},
		{Tag: token.StringConstant, Value: "a & b"},
	}

	var buf bytes.Buffer
	require.NoError(t, lexer.WriteXML(tokens, &buf))
	assert.Contains(t, buf.String(), "<keyword> class </keyword>")
	assert.Contains(t, buf.String(), "a &amp; b")
}
