// Package spirvtest encodes small SPIR-V modules for tests.
package spirvtest

import (
	"encoding/binary"

	"spirvcfg/internal/spirv"
)

// Builder accumulates instructions in emission order and encodes them
// behind a standard header. It performs no layout validation, so tests can
// also produce malformed modules.
type Builder struct {
	words  []uint32
	nextID uint32
}

// New creates a builder whose first allocated id is 1.
func New() *Builder {
	return &Builder{nextID: 1}
}

// ID allocates a fresh id.
func (b *Builder) ID() uint32 {
	id := b.nextID
	b.nextID++
	return id
}

// Inst appends a raw instruction with the given operand words.
func (b *Builder) Inst(op spirv.Op, operands ...uint32) *Builder {
	wc := uint32(len(operands) + 1)
	b.words = append(b.words, wc<<16|uint32(op))
	b.words = append(b.words, operands...)
	return b
}

// String packs s as a nul-terminated, word-padded literal string.
func String(s string) []uint32 {
	bs := append([]byte(s), 0)
	for len(bs)%4 != 0 {
		bs = append(bs, 0)
	}
	words := make([]uint32, 0, len(bs)/4)
	for i := 0; i < len(bs); i += 4 {
		words = append(words, binary.LittleEndian.Uint32(bs[i:]))
	}
	return words
}

// Name emits OpName binding name to id.
func (b *Builder) Name(id uint32, name string) *Builder {
	return b.Inst(spirv.OpName, append([]uint32{id}, String(name)...)...)
}

// EntryPoint emits OpEntryPoint for fn.
func (b *Builder) EntryPoint(model, fn uint32, name string) *Builder {
	return b.Inst(spirv.OpEntryPoint, append([]uint32{model, fn}, String(name)...)...)
}

// TypeVoid emits OpTypeVoid and returns its id.
func (b *Builder) TypeVoid() uint32 {
	id := b.ID()
	b.Inst(spirv.OpTypeVoid, id)
	return id
}

// TypeBool emits OpTypeBool and returns its id.
func (b *Builder) TypeBool() uint32 {
	id := b.ID()
	b.Inst(spirv.OpTypeBool, id)
	return id
}

// TypeInt emits OpTypeInt and returns its id.
func (b *Builder) TypeInt(width uint32, signed bool) uint32 {
	id := b.ID()
	var s uint32
	if signed {
		s = 1
	}
	b.Inst(spirv.OpTypeInt, id, width, s)
	return id
}

// TypeFunction emits OpTypeFunction and returns its id.
func (b *Builder) TypeFunction(ret uint32, params ...uint32) uint32 {
	id := b.ID()
	b.Inst(spirv.OpTypeFunction, append([]uint32{id, ret}, params...)...)
	return id
}

// Constant emits OpConstant and returns its id.
func (b *Builder) Constant(typ uint32, value uint32) uint32 {
	id := b.ID()
	b.Inst(spirv.OpConstant, typ, id, value)
	return id
}

// ConstantTrue emits OpConstantTrue and returns its id.
func (b *Builder) ConstantTrue(boolType uint32) uint32 {
	id := b.ID()
	b.Inst(spirv.OpConstantTrue, boolType, id)
	return id
}

// Function emits OpFunction with the given pre-allocated result id.
func (b *Builder) Function(ret, id, fnType uint32) *Builder {
	return b.Inst(spirv.OpFunction, ret, id, 0, fnType)
}

// FunctionEnd emits OpFunctionEnd.
func (b *Builder) FunctionEnd() *Builder {
	return b.Inst(spirv.OpFunctionEnd)
}

// Label emits OpLabel with a pre-allocated id.
func (b *Builder) Label(id uint32) *Builder {
	return b.Inst(spirv.OpLabel, id)
}

// Branch emits OpBranch.
func (b *Builder) Branch(target uint32) *Builder {
	return b.Inst(spirv.OpBranch, target)
}

// BranchConditional emits OpBranchConditional.
func (b *Builder) BranchConditional(cond, t, f uint32) *Builder {
	return b.Inst(spirv.OpBranchConditional, cond, t, f)
}

// SelectionMerge emits OpSelectionMerge with no selection control.
func (b *Builder) SelectionMerge(merge uint32) *Builder {
	return b.Inst(spirv.OpSelectionMerge, merge, 0)
}

// LoopMerge emits OpLoopMerge with no loop control.
func (b *Builder) LoopMerge(merge, cont uint32) *Builder {
	return b.Inst(spirv.OpLoopMerge, merge, cont, 0)
}

// Switch emits OpSwitch; cases alternate literal value and target label.
func (b *Builder) Switch(selector, def uint32, cases ...uint32) *Builder {
	return b.Inst(spirv.OpSwitch, append([]uint32{selector, def}, cases...)...)
}

// Call emits OpFunctionCall and returns the result id.
func (b *Builder) Call(ret, fn uint32, args ...uint32) uint32 {
	id := b.ID()
	b.Inst(spirv.OpFunctionCall, append([]uint32{ret, id, fn}, args...)...)
	return id
}

// Return emits OpReturn.
func (b *Builder) Return() *Builder {
	return b.Inst(spirv.OpReturn)
}

// Words returns the encoded module: header followed by all instructions.
func (b *Builder) Words() []uint32 {
	header := []uint32{spirv.MagicNumber, 0x00010300, 0, b.nextID, 0}
	return append(header, b.words...)
}

// Bytes encodes the module in little-endian byte order.
func (b *Builder) Bytes() []byte {
	return encode(b.Words(), binary.LittleEndian)
}

// BigEndianBytes encodes the module in big-endian byte order.
func (b *Builder) BigEndianBytes() []byte {
	return encode(b.Words(), binary.BigEndian)
}

func encode(words []uint32, order binary.ByteOrder) []byte {
	buf := make([]byte, len(words)*4)
	for i, w := range words {
		order.PutUint32(buf[i*4:], w)
	}
	return buf
}

// Diamond builds the canonical if/else module used across tests:
//
//	main (%fn):
//	  entry: OpSelectionMerge %merge; OpBranchConditional %cond %then %else
//	  then:  OpBranch %merge
//	  else:  OpBranch %merge
//	  merge: OpReturn
//
// The returned DiamondModule carries every allocated id.
func Diamond() *DiamondModule {
	b := New()
	d := &DiamondModule{Builder: b}
	d.Void = b.ID()
	d.Bool = b.ID()
	d.FnType = b.ID()
	d.Cond = b.ID()
	d.Fn = b.ID()
	d.Entry = b.ID()
	d.Then = b.ID()
	d.Else = b.ID()
	d.Merge = b.ID()

	b.Inst(spirv.OpCapability, 1)
	b.Inst(spirv.OpMemoryModel, 0, 1)
	b.EntryPoint(4, d.Fn, "main")
	b.Name(d.Fn, "main")
	b.Name(d.Entry, "entry")
	b.Name(d.Merge, "merge")
	b.Inst(spirv.OpTypeVoid, d.Void)
	b.Inst(spirv.OpTypeBool, d.Bool)
	b.Inst(spirv.OpTypeFunction, d.FnType, d.Void)
	b.Inst(spirv.OpConstantTrue, d.Bool, d.Cond)
	b.Function(d.Void, d.Fn, d.FnType)
	b.Label(d.Entry)
	b.SelectionMerge(d.Merge)
	b.BranchConditional(d.Cond, d.Then, d.Else)
	b.Label(d.Then)
	b.Branch(d.Merge)
	b.Label(d.Else)
	b.Branch(d.Merge)
	b.Label(d.Merge)
	b.Return()
	b.FunctionEnd()
	return d
}

// DiamondModule is the module produced by Diamond.
type DiamondModule struct {
	*Builder
	Void, Bool, FnType, Cond uint32
	Fn                       uint32
	Entry, Then, Else, Merge uint32
}
