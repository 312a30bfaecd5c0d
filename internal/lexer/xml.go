package lexer

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"

	"github.com/libklein/nand2tetris/jackcompiler/internal/token"
)

// WriteXML renders tokens as a <tokens> document in the exact shape
// internal/token.Load expects: one child element per token, tagged by
// kind, whose text is the lexeme wrapped in exactly one leading and one
// trailing space.
func WriteXML(tokens []token.Token, w io.Writer) error {
	if _, err := io.WriteString(w, "<tokens>\n"); err != nil {
		return err
	}
	for _, t := range tokens {
		var escaped bytes.Buffer
		if err := xml.EscapeText(&escaped, []byte(t.Value)); err != nil {
			return fmt.Errorf("lexer: escaping token %q: %w", t.Value, err)
		}
		if _, err := fmt.Fprintf(w, "<%s> %s </%s>\n", t.Tag, escaped.String(), t.Tag); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</tokens>\n")
	return err
}
