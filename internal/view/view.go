// Package view gives read-only access to a loaded module together with the
// debug names attached to its ids.
package view

import (
	"fmt"
	"slices"

	"spirvcfg/internal/spirv"
)

// View pairs a module with its OpName table. Values, types, labels and
// functions share one id namespace, so a single table serves all of them.
type View struct {
	m     *spirv.Module
	names map[uint32]string
}

// NameError is the panic value for an OpName whose operands do not match
// the instruction's grammar.
type NameError struct {
	Offset int
	Msg    string
}

func (e *NameError) Error() string {
	return fmt.Sprintf("view: OpName at offset 0x%x: %s", e.Offset, e.Msg)
}

// New scans the module's debug section once. When an id is named more than
// once the last OpName in document order wins. A malformed OpName panics
// with a *NameError.
func New(m *spirv.Module) *View {
	v := &View{m: m, names: make(map[uint32]string)}
	for _, inst := range m.Debugs {
		if inst.Op != spirv.OpName {
			continue
		}
		if len(inst.Operands) < 2 {
			panic(&NameError{Offset: inst.Offset, Msg: fmt.Sprintf("%d operands, want 2", len(inst.Operands))})
		}
		id, ok := inst.Operands[0].ID()
		if !ok {
			panic(&NameError{Offset: inst.Offset, Msg: fmt.Sprintf("first operand is %s, want IdRef", inst.Operands[0].Kind)})
		}
		if inst.Operands[1].Kind != spirv.KindLiteralString {
			panic(&NameError{Offset: inst.Offset, Msg: fmt.Sprintf("second operand is %s, want LiteralString", inst.Operands[1].Kind)})
		}
		v.names[id] = inst.Operands[1].Str
	}
	return v
}

// Module returns the underlying module.
func (v *View) Module() *spirv.Module { return v.m }

// Len returns the number of named ids.
func (v *View) Len() int { return len(v.names) }

// Name returns the debug name bound to id.
func (v *View) Name(id uint32) (string, bool) {
	n, ok := v.names[id]
	return n, ok
}

// Resolve renders id for display: "name(%id)" when named, "%id" otherwise.
func (v *View) Resolve(id uint32) string {
	if n, ok := v.names[id]; ok {
		return fmt.Sprintf("%s(%%%d)", n, id)
	}
	return fmt.Sprintf("%%%d", id)
}

// FunctionName returns the debug name of f's result id.
func (v *View) FunctionName(f *spirv.Function) (string, bool) {
	return v.Name(f.ID())
}

// BlockName returns the debug name of b's label id.
func (v *View) BlockName(b *spirv.Block) (string, bool) {
	return v.Name(b.ID())
}

// IDs returns the named ids in ascending order.
func (v *View) IDs() []uint32 {
	ids := make([]uint32, 0, len(v.names))
	for id := range v.names {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
