package symtab_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/libklein/nand2tetris/jackcompiler/internal/symtab"
)

func TestDefineAssignsDenseIndices(t *testing.T) {
	st := symtab.New()

	idx0 := st.Define("x", "int", symtab.Field)
	idx1 := st.Define("y", "int", symtab.Field)
	idx2 := st.Define("z", "int", symtab.Field)

	assert.Equal(t, 0, idx0)
	assert.Equal(t, 1, idx1)
	assert.Equal(t, 2, idx2)
	assert.Equal(t, 3, st.VarCount(symtab.Field))
}

func TestScopesHaveIndependentCounters(t *testing.T) {
	st := symtab.New()
	st.Define("f1", "int", symtab.Field)
	st.Define("f2", "int", symtab.Field)

	st.StartSubroutine()
	st.Define("a", "int", symtab.Arg)

	assert.Equal(t, 2, st.VarCount(symtab.Field))
	assert.Equal(t, 1, st.VarCount(symtab.Arg))
}

func TestStartSubroutineClearsSubroutineScopeOnly(t *testing.T) {
	st := symtab.New()
	st.Define("count", "int", symtab.Field)

	st.StartSubroutine()
	st.Define("i", "int", symtab.Var)
	_, ok := st.KindOf("i")
	require.True(t, ok)

	st.StartSubroutine()

	_, ok = st.KindOf("i")
	assert.False(t, ok, "local variable from a previous subroutine must not leak")

	kind, ok := st.KindOf("count")
	require.True(t, ok)
	assert.Equal(t, symtab.Field, kind)
	assert.Equal(t, 0, st.VarCount(symtab.Var))
}

func TestLookupPrefersSubroutineScope(t *testing.T) {
	st := symtab.New()
	st.Define("x", "int", symtab.Field)
	st.StartSubroutine()
	st.Define("x", "Array", symtab.Var)

	typ, ok := st.TypeOf("x")
	require.True(t, ok)
	assert.Equal(t, "Array", typ, "subroutine scope shadows class scope")

	kind, _ := st.KindOf("x")
	assert.Equal(t, symtab.Var, kind)
}

func TestLookupMissingNameFails(t *testing.T) {
	st := symtab.New()
	_, ok := st.KindOf("nope")
	assert.False(t, ok)
}

func TestDefineWithInvalidKindPanics(t *testing.T) {
	st := symtab.New()
	assert.Panics(t, func() {
		st.Define("x", "int", symtab.Kind("bogus"))
	})
}
