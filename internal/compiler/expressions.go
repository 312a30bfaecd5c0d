package compiler

import (
	"github.com/libklein/nand2tetris/jackcompiler/internal/token"
	"github.com/libklein/nand2tetris/jackcompiler/internal/vmwriter"
)

var binaryOps = map[string]vmwriter.Op{
	"+": vmwriter.Add,
	"-": vmwriter.Sub,
	"*": vmwriter.Mul,
	"/": vmwriter.Div,
	"&": vmwriter.And,
	"|": vmwriter.Or,
	"<": vmwriter.Lt,
	">": vmwriter.Gt,
	"=": vmwriter.Eq,
}

var unaryOps = map[string]vmwriter.Op{
	"-": vmwriter.Neg,
	"~": vmwriter.Not,
}

// compileExpression: term (op term)*
//
// Deliberately flat and left-associative, with no operator precedence:
// each operator is applied immediately after its right operand, in the
// order the tokens appear. This is not a Pratt parser.
func (c *Compiler) compileExpression() {
	c.compileTerm()
	for {
		tok, ok := c.peek()
		if !ok {
			return
		}
		op, isOp := binaryOps[tok.Value]
		if !tok.IsTag(token.Symbol) || !isOp {
			return
		}
		c.advance()
		c.compileTerm()
		c.out.Arithmetic(op)
	}
}

// compileExpressionList: (expression (',' expression)*)?, returning the
// number of expressions compiled.
func (c *Compiler) compileExpressionList() int {
	if c.atValue(")") {
		return 0
	}
	count := 0
	for {
		c.compileExpression()
		count++
		if c.atValue(",") {
			c.advance()
			continue
		}
		return count
	}
}

// compileTerm: integerConstant | stringConstant | keywordConstant |
// varName | varName '[' expression ']' | subroutineCall |
// '(' expression ')' | unaryOp term
func (c *Compiler) compileTerm() {
	tok, ok := c.peek()
	if !ok {
		c.sink.AddError(c.cursor.Position(), "unexpected end of file in term")
		return
	}

	switch {
	case tok.IsTag(token.IntegerConstant):
		c.advance()
		value, ok := tok.AsInt()
		if !ok {
			c.sink.AddError(tok.Index, "invalid integer constant %q", tok.Value)
		}
		c.out.Push(vmwriter.Constant, value)

	case tok.IsTag(token.StringConstant):
		c.advance()
		c.out.StringConstant(tok.Value)

	case tok.IsTag(token.Keyword) && tok.Is("true", "false", "null", "this"):
		c.advance()
		switch tok.Value {
		case "true":
			c.out.Push(vmwriter.Constant, 0)
			c.out.Arithmetic(vmwriter.Not)
		case "false", "null":
			c.out.Push(vmwriter.Constant, 0)
		case "this":
			c.out.Push(vmwriter.Pointer, 0)
		}

	case tok.Is("("):
		c.advance()
		c.compileExpression()
		c.expect(token.Symbol, ")")

	case unaryOps[tok.Value] != "" && tok.IsTag(token.Symbol):
		op := unaryOps[tok.Value]
		c.advance()
		c.compileTerm()
		c.out.Arithmetic(op)

	case tok.IsTag(token.Identifier):
		c.compileIdentifierTerm()

	default:
		c.sink.AddError(tok.Index, "unexpected token in term: %q", tok.Value)
		c.advance()
	}
}

// compileIdentifierTerm distinguishes the three identifier-led term
// forms by one token of lookahead: array read, subroutine call, or bare
// variable reference.
func (c *Compiler) compileIdentifierTerm() {
	nameTok, _ := c.advance()
	name := nameTok.Value

	switch {
	case c.atValue("["):
		c.advance()
		c.compileExpression()
		segment, index := c.resolve(name, nameTok.Index, "array read")
		c.out.Push(segment, index)
		c.out.Arithmetic(vmwriter.Add)
		c.expect(token.Symbol, "]")
		c.out.Pop(vmwriter.Pointer, 1)
		c.out.Push(vmwriter.That, 0)

	case c.atValue("(", "."):
		c.compileSubroutineCallNamed(name, nameTok.Index)

	default:
		segment, index := c.resolve(name, nameTok.Index, "term")
		c.out.Push(segment, index)
	}
}

// compileSubroutineCall parses a call appearing directly (e.g. a 'do'
// statement target), where the leading identifier hasn't been consumed
// yet.
func (c *Compiler) compileSubroutineCall() {
	nameTok, ok := c.expect(token.Identifier, "")
	if !ok {
		return
	}
	c.compileSubroutineCallNamed(nameTok.Value, nameTok.Index)
}

// compileSubroutineCallNamed implements the three calling conventions of
// §4.5.6, given the already-consumed leading identifier.
func (c *Compiler) compileSubroutineCallNamed(name string, nameIndex int) {
	if c.atValue(".") {
		c.advance()
		methodTok, ok := c.expect(token.Identifier, "")
		method := "unknown"
		if ok {
			method = methodTok.Value
		}

		nArgs := 0
		var fullName string
		if typ, known := c.syms.TypeOf(name); known {
			// Method call on a known variable: push its value as the
			// receiver, dispatch on its declared type.
			segment, index := c.resolve(name, nameIndex, "dotted call receiver")
			c.out.Push(segment, index)
			nArgs++
			fullName = typ + "." + method
		} else {
			// Not a known variable: treat as a call to a static function.
			fullName = name + "." + method
		}

		c.expect(token.Symbol, "(")
		nArgs += c.compileExpressionList()
		c.expect(token.Symbol, ")")

		c.out.Call(fullName, nArgs)
		return
	}

	// Unqualified call: must be a method of the current class, so pass
	// the current receiver along.
	c.out.Push(vmwriter.Pointer, 0)
	c.expect(token.Symbol, "(")
	nArgs := 1 + c.compileExpressionList()
	c.expect(token.Symbol, ")")
	c.out.Call(c.className+"."+name, nArgs)
}
