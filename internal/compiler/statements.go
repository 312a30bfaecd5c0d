package compiler

import (
	"github.com/libklein/nand2tetris/jackcompiler/internal/token"
	"github.com/libklein/nand2tetris/jackcompiler/internal/vmwriter"
)

// compileStatements: statement*, dispatching on the leading keyword.
func (c *Compiler) compileStatements() {
	for {
		tok, ok := c.peek()
		if !ok || !tok.IsTag(token.Keyword) {
			return
		}
		switch tok.Value {
		case "let":
			c.compileLet()
		case "if":
			c.compileIf()
		case "while":
			c.compileWhile()
		case "do":
			c.compileDo()
		case "return":
			c.compileReturn()
		default:
			return
		}
	}
}

// compileLet: 'let' varName ('[' expression ']')? '=' expression ';'
func (c *Compiler) compileLet() {
	c.expect(token.Keyword, "let")
	nameTok, ok := c.expect(token.Identifier, "")
	if !ok {
		c.skipToSemicolon()
		return
	}
	name := nameTok.Value

	isArray := c.atValue("[")
	if isArray {
		c.advance()
		// Index expression, then base address: leaves the target slot's
		// address on the stack after 'add'.
		c.compileExpression()
		segment, index := c.resolve(name, nameTok.Index, "let target")
		c.out.Push(segment, index)
		c.out.Arithmetic(vmwriter.Add)
		c.expect(token.Symbol, "]")
	}

	c.expect(token.Symbol, "=")
	c.compileExpression()
	c.expect(token.Symbol, ";")

	if isArray {
		// RHS may itself clobber THAT/pointer 1 while evaluating an
		// array read, so the result has to be spilled to temp before the
		// target address (left on the stack above) is restored into
		// pointer 1.
		c.out.Pop(vmwriter.Temp, 0)
		c.out.Pop(vmwriter.Pointer, 1)
		c.out.Push(vmwriter.Temp, 0)
		c.out.Pop(vmwriter.That, 0)
	} else {
		segment, index := c.resolve(name, nameTok.Index, "let statement")
		c.out.Pop(segment, index)
	}
}

// compileWhile: 'while' '(' expression ')' '{' statements '}'
func (c *Compiler) compileWhile() {
	c.expect(token.Keyword, "while")
	c.expect(token.Symbol, "(")

	// One counter value is shared by the pair, so both labels carry the
	// same k.
	k := c.labels.Generate("")
	start := "WHILE_EXP" + k
	end := "WHILE_END" + k

	c.out.Label(start)
	c.compileExpression()
	c.out.Arithmetic(vmwriter.Not)
	c.out.IfGoto(end)

	c.expect(token.Symbol, ")")
	c.expect(token.Symbol, "{")
	c.compileStatements()
	c.expect(token.Symbol, "}")

	c.out.Goto(start)
	c.out.Label(end)
}

// compileIf: 'if' '(' expression ')' '{' statements '}' ('else' '{' statements '}')?
//
// The false/end labels are minted even when no else clause is present:
// the unused jump target is still emitted.
func (c *Compiler) compileIf() {
	c.expect(token.Keyword, "if")
	c.expect(token.Symbol, "(")

	k := c.labels.Generate("")
	falseLabel := "IF_FALSE_" + k
	endLabel := "IF_END_" + k

	c.compileExpression()
	c.out.Arithmetic(vmwriter.Not)
	c.out.IfGoto(falseLabel)

	c.expect(token.Symbol, ")")
	c.expect(token.Symbol, "{")
	c.compileStatements()
	c.expect(token.Symbol, "}")

	c.out.Goto(endLabel)
	c.out.Label(falseLabel)

	if c.atValue("else") {
		c.advance()
		c.expect(token.Symbol, "{")
		c.compileStatements()
		c.expect(token.Symbol, "}")
	}

	c.out.Label(endLabel)
}

// compileDo: 'do' subroutineCall ';' — the return value is always
// discarded.
func (c *Compiler) compileDo() {
	c.expect(token.Keyword, "do")
	c.compileSubroutineCall()
	c.out.Pop(vmwriter.Temp, 0)
	c.expect(token.Symbol, ";")
}

// compileReturn: 'return' expression? ';'
//
// A bare 'return;' still needs a value on the stack for the VM calling
// convention, hence the 0 sentinel for void returns.
func (c *Compiler) compileReturn() {
	c.expect(token.Keyword, "return")
	if c.atValue(";") {
		c.out.Push(vmwriter.Constant, 0)
	} else {
		c.compileExpression()
	}
	c.out.Return()
	c.expect(token.Symbol, ";")
}
