package compiler

import (
	"github.com/libklein/nand2tetris/jackcompiler/internal/symtab"
	"github.com/libklein/nand2tetris/jackcompiler/internal/token"
)

// compileClass: 'class' className '{' classVarDec* subroutineDec* '}'
func (c *Compiler) compileClass() {
	c.expect(token.Keyword, "class")

	if name, ok := c.expect(token.Identifier, ""); ok {
		c.className = name.Value
	} else {
		c.className = "Unknown"
	}

	c.expect(token.Symbol, "{")

	for {
		tok, ok := c.peek()
		if !ok {
			c.sink.AddError(c.cursor.Position(), "unexpected end of file in class body")
			return
		}
		switch {
		case tok.IsTag(token.Keyword) && tok.Is("static", "field"):
			c.compileClassVarDec()
		case tok.IsTag(token.Keyword) && tok.Is("constructor", "function", "method"):
			c.compileSubroutineDec()
		case tok.IsTag(token.Symbol) && tok.Is("}"):
			c.advance()
			return
		default:
			c.sink.AddError(tok.Index, "unexpected token in class body: %q", tok.Value)
			c.advance() // make progress on malformed input
		}
	}
}

// compileClassVarDec: ('static' | 'field') type varName (',' varName)* ';'
func (c *Compiler) compileClassVarDec() {
	kindTok, _ := c.advance() // 'static' or 'field', already peeked by the caller
	kind := symtab.Static
	if kindTok.Value == "field" {
		kind = symtab.Field
	}
	c.compileVarSequence(kind)
}

// compileVarSequence handles the "type name (, name)* ;" tail shared by
// class-var and local-var declarations, parameterized on the symbol
// kind being defined.
func (c *Compiler) compileVarSequence(kind symtab.Kind) {
	typ, ok := c.parseTypeToken()
	if !ok {
		// No usable type: skip this declaration rather than risk
		// inserting a symbol with a garbage type.
		c.skipToSemicolon()
		return
	}

	for {
		nameTok, ok := c.expect(token.Identifier, "")
		if !ok {
			c.skipToSemicolon()
			return
		}
		c.syms.Define(nameTok.Value, typ, kind)

		if c.atValue(",") {
			c.advance()
			continue
		}
		break
	}
	c.expect(token.Symbol, ";")
}

// parseTypeToken consumes and returns a type name: either a primitive
// keyword (int, char, boolean) or a class identifier. ok is false if the
// next token is neither, in which case nothing is consumed beyond the
// diagnostic's position.
func (c *Compiler) parseTypeToken() (string, bool) {
	tok, ok := c.peek()
	if !ok {
		c.sink.AddError(c.cursor.Position(), "expected a type, got end of file")
		return "", false
	}
	if tok.IsTag(token.Keyword) && tok.Is("int", "char", "boolean") {
		c.advance()
		return tok.Value, true
	}
	if tok.IsTag(token.Identifier) {
		c.advance()
		return tok.Value, true
	}
	c.sink.AddError(tok.Index, "invalid type %q", tok.Value)
	return "", false
}

// skipToSemicolon advances past tokens until (and including) the next
// ';', or end of stream — best-effort recovery after a malformed
// declaration.
func (c *Compiler) skipToSemicolon() {
	for {
		tok, ok := c.advance()
		if !ok || tok.Is(";") {
			return
		}
	}
}
