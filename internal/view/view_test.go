package view_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spirvcfg/internal/spirv"
	"spirvcfg/internal/spirv/spirvtest"
	"spirvcfg/internal/view"
)

func load(t *testing.T, b *spirvtest.Builder) *spirv.Module {
	t.Helper()
	m, err := spirv.Parse(b.Bytes())
	require.NoError(t, err)
	return m
}

func TestResolve(t *testing.T) {
	d := spirvtest.Diamond()
	v := view.New(load(t, d.Builder))

	assert.Equal(t, "main(%5)", v.Resolve(d.Fn))
	assert.Equal(t, "entry(%6)", v.Resolve(d.Entry))
	assert.Equal(t, "%7", v.Resolve(d.Then))
	assert.Equal(t, "%1", v.Resolve(d.Void))
	assert.Equal(t, 3, v.Len())
	assert.Equal(t, []uint32{d.Fn, d.Entry, d.Merge}, v.IDs())
}

func TestFunctionAndBlockNames(t *testing.T) {
	d := spirvtest.Diamond()
	m := load(t, d.Builder)
	v := view.New(m)
	assert.Same(t, m, v.Module())

	f := &m.Functions[0]
	name, ok := v.FunctionName(f)
	assert.True(t, ok)
	assert.Equal(t, "main", name)

	name, ok = v.BlockName(&f.Blocks[0])
	assert.True(t, ok)
	assert.Equal(t, "entry", name)

	_, ok = v.BlockName(&f.Blocks[1])
	assert.False(t, ok)
}

func TestLastNameWins(t *testing.T) {
	b := spirvtest.New()
	id := b.ID()
	b.Name(id, "first")
	b.Name(id, "second")
	v := view.New(load(t, b))

	name, ok := v.Name(id)
	require.True(t, ok)
	assert.Equal(t, "second", name)
	assert.Equal(t, "second(%1)", v.Resolve(id))
}

func TestEmptyName(t *testing.T) {
	b := spirvtest.New()
	id := b.ID()
	b.Name(id, "")
	v := view.New(load(t, b))
	assert.Equal(t, "(%1)", v.Resolve(id))
}

func TestMalformedNamePanics(t *testing.T) {
	m := &spirv.Module{Debugs: []spirv.Instruction{{
		Op:       spirv.OpName,
		Operands: []spirv.Operand{{Kind: spirv.KindIDRef, Value: 1}},
	}}}
	assert.PanicsWithError(t, "view: OpName at offset 0x0: 1 operands, want 2", func() { view.New(m) })

	m.Debugs[0].Operands = []spirv.Operand{
		{Kind: spirv.KindLiteralInteger, Value: 1},
		{Kind: spirv.KindLiteralString, Str: "x"},
	}
	assert.Panics(t, func() { view.New(m) })
}
