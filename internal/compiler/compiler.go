// Package compiler implements the Jack compilation engine: a recursive
// descent parser that is simultaneously a code generator. Every grammar
// production both advances the token cursor and appends to the VM
// writer in the same left-to-right pass — there is no intermediate
// representation and no second pass.
package compiler

import (
	"github.com/libklein/nand2tetris/jackcompiler/internal/diag"
	"github.com/libklein/nand2tetris/jackcompiler/internal/symtab"
	"github.com/libklein/nand2tetris/jackcompiler/internal/token"
	"github.com/libklein/nand2tetris/jackcompiler/internal/vmwriter"
)

// Compiler drives the grammar over one compilation unit (one class). It
// carries every other component as a narrow dependency: a cursor to
// read from, a symbol table and VM writer to write to, a diagnostics
// sink to record into, and a label generator scoped to this class.
type Compiler struct {
	cursor *token.Cursor
	sink   *diag.Sink
	syms   *symtab.Table
	out    *vmwriter.Writer
	labels vmwriter.LabelGen

	className string
}

// New returns a Compiler reading from cursor, reporting to sink, and
// writing symbols/instructions into syms/out. Each compilation unit
// must get its own Compiler: none of its state is safe to share.
func New(cursor *token.Cursor, sink *diag.Sink, syms *symtab.Table, out *vmwriter.Writer) *Compiler {
	return &Compiler{cursor: cursor, sink: sink, syms: syms, out: out}
}

// Compile parses and lowers exactly one class, per the grammar's
// top-level production. It always runs to completion: a malformed unit
// still produces best-effort VM output, with issues recorded in the
// diagnostics sink passed to New.
func (c *Compiler) Compile() {
	c.compileClass()
}

// peek/advance/expect are thin wrappers kept for readability at call
// sites; they carry no state of their own beyond the cursor's.

func (c *Compiler) peek() (token.Token, bool) {
	return c.cursor.Peek()
}

func (c *Compiler) advance() (token.Token, bool) {
	return c.cursor.Advance()
}

func (c *Compiler) expect(tag token.Tag, value string) (token.Token, bool) {
	return c.cursor.Expect(c.sink, tag, value)
}

// atValue reports whether the next token (without consuming it) has one
// of the given textual values.
func (c *Compiler) atValue(values ...string) bool {
	tok, ok := c.peek()
	return ok && tok.Is(values...)
}

// segmentForKind maps a symbol-table kind to the VM segment used to
// address it.
func segmentForKind(kind symtab.Kind) vmwriter.Segment {
	switch kind {
	case symtab.Static:
		return vmwriter.Static
	case symtab.Field:
		return vmwriter.This
	case symtab.Arg:
		return vmwriter.Argument
	case symtab.Var:
		return vmwriter.Local
	default:
		// Unreachable: symtab.Table never hands back a kind it doesn't
		// itself define.
		return vmwriter.Local
	}
}

// resolve looks up name and reports an undefined-variable diagnostic at
// the use site (never at a declaration site, per the lookup rule) if
// it's missing. On failure it returns a segment/index pair that's safe
// to emit so compilation can continue producing plausible output.
func (c *Compiler) resolve(name string, useTokenIndex int, context string) (vmwriter.Segment, int) {
	kind, ok := c.syms.KindOf(name)
	if !ok {
		c.sink.AddError(useTokenIndex, "undefined variable %q in %s", name, context)
		return vmwriter.Constant, 0
	}
	index, _ := c.syms.IndexOf(name)
	return segmentForKind(kind), index
}
