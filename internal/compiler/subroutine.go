package compiler

import (
	"github.com/libklein/nand2tetris/jackcompiler/internal/symtab"
	"github.com/libklein/nand2tetris/jackcompiler/internal/token"
	"github.com/libklein/nand2tetris/jackcompiler/internal/vmwriter"
)

// subroutineKind is the closed set of Jack subroutine flavors, each with
// its own prologue.
type subroutineKind string

const (
	method      subroutineKind = "method"
	function    subroutineKind = "function"
	constructor subroutineKind = "constructor"
)

// compileSubroutineDec: ('constructor'|'function'|'method') (type|'void') name
// '(' parameterList ')' subroutineBody
func (c *Compiler) compileSubroutineDec() {
	kindTok, _ := c.advance()
	kind := subroutineKind(kindTok.Value)

	// Return type is parsed and discarded: no type checking beyond name
	// resolution is in scope for this engine.
	if tok, ok := c.peek(); ok && tok.Is("void") {
		c.advance()
	} else {
		c.parseTypeToken()
	}

	nameTok, ok := c.expect(token.Identifier, "")
	name := "unknown"
	if ok {
		name = nameTok.Value
	}

	c.syms.StartSubroutine()
	if kind == method {
		// Synthetic receiver argument, must land in argument slot 0
		// before any declared parameter.
		c.syms.Define("this", c.className, symtab.Arg)
	}

	c.expect(token.Symbol, "(")
	if !c.atValue(")") {
		c.compileParameterList()
	}
	c.expect(token.Symbol, ")")

	c.compileSubroutineBody(name, kind)
}

// compileParameterList: (type varName (',' type varName)*)?
func (c *Compiler) compileParameterList() {
	for {
		typ, ok := c.parseTypeToken()
		if !ok {
			return
		}
		nameTok, ok := c.expect(token.Identifier, "")
		if !ok {
			return
		}
		c.syms.Define(nameTok.Value, typ, symtab.Arg)

		if c.atValue(",") {
			c.advance()
			continue
		}
		return
	}
}

// compileSubroutineBody: '{' varDec* statements '}', with the
// constructor/method/function prologue emitted right after the function
// directive and before any user statement.
func (c *Compiler) compileSubroutineBody(name string, kind subroutineKind) {
	c.expect(token.Symbol, "{")

	nLocals := 0
	for c.atValue("var") {
		nLocals += c.compileVarDec()
	}

	c.out.Function(c.className+"."+name, nLocals)

	switch kind {
	case constructor:
		nFields := c.syms.VarCount(symtab.Field)
		c.out.Push(vmwriter.Constant, nFields)
		c.out.Call("Memory.alloc", 1)
		c.out.Pop(vmwriter.Pointer, 0)
	case method:
		c.out.Push(vmwriter.Argument, 0)
		c.out.Pop(vmwriter.Pointer, 0)
	case function:
		// No prologue.
	}

	c.compileStatements()
	c.expect(token.Symbol, "}")
}

// compileVarDec: 'var' type varName (',' varName)* ';', returning the
// count of names declared.
func (c *Compiler) compileVarDec() int {
	c.expect(token.Keyword, "var")
	before := c.syms.VarCount(symtab.Var)
	c.compileVarSequence(symtab.Var)
	return c.syms.VarCount(symtab.Var) - before
}
