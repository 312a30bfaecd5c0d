// Package symtab implements the two-scope symbol table of a Jack
// compilation unit: class scope (static, field) and subroutine scope
// (arg, var), each with its own dense, origin-zero per-kind counter.
package symtab

import "fmt"

// Kind is the storage class of a Jack variable.
type Kind string

const (
	Static Kind = "static"
	Field  Kind = "field"
	Arg    Kind = "arg"
	Var    Kind = "var"
)

func (k Kind) isClassScoped() bool {
	return k == Static || k == Field
}

type entry struct {
	typ   string
	kind  Kind
	index int
}

// Table holds the class-scope and subroutine-scope symbols of a single
// compilation unit, plus the four monotone per-kind counters.
type Table struct {
	classScope map[string]entry
	subrScope  map[string]entry
	counts     map[Kind]int
}

// New returns an empty Table ready for a fresh compilation unit.
func New() *Table {
	return &Table{
		classScope: make(map[string]entry),
		subrScope:  make(map[string]entry),
		counts:     map[Kind]int{Static: 0, Field: 0, Arg: 0, Var: 0},
	}
}

// StartSubroutine clears subroutine scope and resets the arg/var
// counters. Class scope and its counters are left untouched.
func (t *Table) StartSubroutine() {
	t.subrScope = make(map[string]entry)
	t.counts[Arg] = 0
	t.counts[Var] = 0
}

// Define inserts name into the scope matching kind and assigns it the
// next dense index for that kind. Redefinition of an existing name in
// the same scope is not detected: the later definition replaces the
// earlier entry, and the kind's counter still advances. The caller, not
// this table, owns deciding whether that's worth a diagnostic.
//
// Define panics on an unrecognized kind: that is a bug in the engine,
// never something malformed Jack source can trigger.
func (t *Table) Define(name, typ string, kind Kind) (index int) {
	if _, known := t.counts[kind]; !known {
		panic(fmt.Sprintf("symtab: invalid kind %q", kind))
	}
	index = t.counts[kind]
	t.counts[kind]++

	e := entry{typ: typ, kind: kind, index: index}
	if kind.isClassScoped() {
		t.classScope[name] = e
	} else {
		t.subrScope[name] = e
	}
	return index
}

// VarCount returns how many symbols of kind have been defined in the
// scope that currently holds it.
func (t *Table) VarCount(kind Kind) int {
	return t.counts[kind]
}

func (t *Table) lookup(name string) (entry, bool) {
	if e, ok := t.subrScope[name]; ok {
		return e, true
	}
	if e, ok := t.classScope[name]; ok {
		return e, true
	}
	return entry{}, false
}

// KindOf returns the storage kind of name, honoring subroutine-then-class
// lookup order. ok is false if name is undefined.
func (t *Table) KindOf(name string) (Kind, bool) {
	e, ok := t.lookup(name)
	return e.kind, ok
}

// TypeOf returns the declared type of name. ok is false if name is
// undefined.
func (t *Table) TypeOf(name string) (string, bool) {
	e, ok := t.lookup(name)
	return e.typ, ok
}

// IndexOf returns the per-kind index of name. ok is false if name is
// undefined.
func (t *Table) IndexOf(name string) (int, bool) {
	e, ok := t.lookup(name)
	return e.index, ok
}
