package token_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/libklein/nand2tetris/jackcompiler/internal/diag"
	"github.com/libklein/nand2tetris/jackcompiler/internal/token"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "Foo_myT.xml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadStripsOneLeadingAndTrailingSpace(t *testing.T) {
	path := writeTemp(t, `<tokens>
<keyword> class </keyword>
<identifier> Foo </identifier>
</tokens>`)

	sink := diag.NewSink(path)
	tokens := token.Load(path, sink)

	require.False(t, sink.HasIssues())
	require.Len(t, tokens, 2)
	assert.Equal(t, token.Token{Tag: token.Keyword, Value: "class", Index: 0}, tokens[0])
	assert.Equal(t, token.Token{Tag: token.Identifier, Value: "Foo", Index: 1}, tokens[1])
}

func TestLoadRejectsWrongRoot(t *testing.T) {
	path := writeTemp(t, `<nottokens></nottokens>`)
	sink := diag.NewSink(path)

	token.Load(path, sink)
	assert.Equal(t, 1, sink.Errors())
}

func TestLoadRejectsEmptyRoot(t *testing.T) {
	path := writeTemp(t, `<tokens></tokens>`)
	sink := diag.NewSink(path)

	tokens := token.Load(path, sink)
	assert.Equal(t, 1, sink.Errors())
	assert.Empty(t, tokens)
}

func TestLoadSkipsUnknownChildTagButKeepsGoing(t *testing.T) {
	path := writeTemp(t, `<tokens>
<bogus> ? </bogus>
<symbol> { </symbol>
</tokens>`)
	sink := diag.NewSink(path)

	tokens := token.Load(path, sink)
	assert.Equal(t, 1, sink.Errors())
	require.Len(t, tokens, 1)
	assert.Equal(t, "{", tokens[0].Value)
}

func TestLoadMalformedXML(t *testing.T) {
	path := writeTemp(t, `<tokens><keyword> class </tokens>`)
	sink := diag.NewSink(path)

	token.Load(path, sink)
	assert.Equal(t, 1, sink.Errors())
}
