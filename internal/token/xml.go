package token

import (
	"encoding/xml"
	"os"

	"github.com/libklein/nand2tetris/jackcompiler/internal/diag"
)

// xmlTokens is the raw shape of a tokenizer dump: a <tokens> root whose
// children are tagged by token kind. encoding/xml is the only XML reader
// grounded anywhere in the example pack — no sibling repo reaches for a
// third-party decoder for this, so the standard library is the idiomatic
// choice here.
type xmlTokens struct {
	XMLName  xml.Name   `xml:"tokens"`
	Children []xmlChild `xml:",any"`
}

type xmlChild struct {
	XMLName xml.Name
	Value   string `xml:",chardata"`
}

var tagFor = map[string]Tag{
	"keyword":         Keyword,
	"symbol":          Symbol,
	"identifier":      Identifier,
	"integerConstant": IntegerConstant,
	"stringConstant":  StringConstant,
}

// Load reads a *_myT.xml token file and returns the tokens it contains.
// Malformed XML, a wrong root element name, an unrecognized child tag, or
// an empty root are reported to sink; Load still returns whatever tokens
// it could recover so a caller can attempt best-effort compilation.
func Load(path string, sink *diag.Sink) []Token {
	raw, err := os.ReadFile(path)
	if err != nil {
		sink.AddError(0, "could not read token file %q: %v", path, err)
		return nil
	}

	var doc xmlTokens
	if err := xml.Unmarshal(raw, &doc); err != nil {
		sink.AddError(0, "malformed XML in %q: %v", path, err)
		return nil
	}
	if doc.XMLName.Local != "tokens" {
		sink.AddError(0, "root element is %q, expected \"tokens\"", doc.XMLName.Local)
		return nil
	}
	if len(doc.Children) == 0 {
		sink.AddError(0, "empty token file %q — no tokens found", path)
		return nil
	}

	tokens := make([]Token, 0, len(doc.Children))
	idx := 0
	for _, child := range doc.Children {
		tag, known := tagFor[child.XMLName.Local]
		if !known {
			sink.AddError(idx, "unknown token tag %q", child.XMLName.Local)
			continue
		}
		// The tokenizer wraps every lexeme in exactly one leading and one
		// trailing whitespace character; strip that, not all whitespace.
		value := stripOneEachSide(child.Value)
		tokens = append(tokens, Token{Tag: tag, Value: value, Index: idx})
		idx++
	}
	return tokens
}

func stripOneEachSide(s string) string {
	if len(s) < 2 {
		return ""
	}
	return s[1 : len(s)-1]
}
