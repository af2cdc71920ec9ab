// Package cfg derives control flow from SPIR-V basic blocks: terminator
// classification, a per-function block index and depth-first traversal.
package cfg

import (
	"fmt"

	"spirvcfg/internal/spirv"
)

// Kind is the control-flow construct that ends a block.
type Kind int

const (
	End Kind = iota // no further control flow (return, kill, unreachable, missing terminator)
	Branch
	BranchConditional
	Switch
)

func (k Kind) String() string {
	switch k {
	case End:
		return "End"
	case Branch:
		return "Branch"
	case BranchConditional:
		return "BranchConditional"
	case Switch:
		return "Switch"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Terminator describes how control leaves a block. It is derived from the
// block on demand and never stored.
//
// Targets is ordered as Successors returns it: [target] for Branch,
// [true, false] for BranchConditional, and the case targets followed by the
// default for Switch. Values holds the switch case literals, parallel to
// Targets without the trailing default. Merge is the structured merge block,
// 0 when absent.
type Terminator struct {
	Kind    Kind
	Targets []uint32
	Values  []uint32
	Merge   uint32
}

// Successors returns the control-flow successors in emission order.
func (t Terminator) Successors() []uint32 {
	return t.Targets
}

// MergeBlock returns the merge target declared for this terminator.
func (t Terminator) MergeBlock() (uint32, bool) {
	return t.Merge, t.Merge != 0
}

// InvariantError reports IR that violates a structural assumption of the
// CFG code, such as a branch operand that is not an id or a successor that
// names no block of the function.
type InvariantError struct {
	Block uint32
	Op    spirv.Op
	Msg   string
}

func (e *InvariantError) Error() string {
	if e.Op != 0 {
		return fmt.Sprintf("cfg: block %%%d: Op%s: %s", e.Block, e.Op, e.Msg)
	}
	return fmt.Sprintf("cfg: block %%%d: %s", e.Block, e.Msg)
}

func invariant(block uint32, op spirv.Op, format string, args ...any) {
	panic(&InvariantError{Block: block, Op: op, Msg: fmt.Sprintf(format, args...)})
}

// Classify inspects the last instruction of b. A block with no instructions
// or with a terminator that transfers no control within the function
// classifies as End.
//
// Only the instruction directly before the terminator is checked for a
// merge declaration, and only OpSelectionMerge counts; OpLoopMerge headers
// carry no Merge.
func Classify(b *spirv.Block) Terminator {
	n := len(b.Instructions)
	if n == 0 {
		return Terminator{Kind: End}
	}
	last := &b.Instructions[n-1]

	switch last.Op {
	case spirv.OpBranch:
		return Terminator{
			Kind:    Branch,
			Targets: []uint32{idOperand(b, last, 0)},
		}

	case spirv.OpBranchConditional:
		return Terminator{
			Kind:    BranchConditional,
			Targets: []uint32{idOperand(b, last, 1), idOperand(b, last, 2)},
			Merge:   selectionMerge(b),
		}

	case spirv.OpSwitch:
		def := idOperand(b, last, 1)
		pairs := last.Operands[2:]
		if len(pairs)%2 != 0 {
			invariant(b.ID(), last.Op, "%d case operands do not form (value, target) pairs", len(pairs))
		}
		t := Terminator{
			Kind:    Switch,
			Targets: make([]uint32, 0, len(pairs)/2+1),
			Values:  make([]uint32, 0, len(pairs)/2),
			Merge:   selectionMerge(b),
		}
		for i := 2; i < len(last.Operands); i += 2 {
			v := last.Operands[i]
			if v.Kind != spirv.KindLiteralInteger {
				invariant(b.ID(), last.Op, "operand %d is %s, want LiteralInteger", i, v.Kind)
			}
			t.Values = append(t.Values, v.Value)
			t.Targets = append(t.Targets, idOperand(b, last, i+1))
		}
		t.Targets = append(t.Targets, def)
		return t
	}
	return Terminator{Kind: End}
}

// selectionMerge returns the merge block if the instruction just before the
// terminator is OpSelectionMerge.
func selectionMerge(b *spirv.Block) uint32 {
	n := len(b.Instructions)
	if n < 2 {
		return 0
	}
	prev := &b.Instructions[n-2]
	if prev.Op != spirv.OpSelectionMerge {
		return 0
	}
	return idOperand(b, prev, 0)
}

func idOperand(b *spirv.Block, inst *spirv.Instruction, i int) uint32 {
	if i >= len(inst.Operands) {
		invariant(b.ID(), inst.Op, "missing operand %d", i)
	}
	id, ok := inst.Operands[i].ID()
	if !ok {
		invariant(b.ID(), inst.Op, "operand %d is %s, want IdRef", i, inst.Operands[i].Kind)
	}
	return id
}
