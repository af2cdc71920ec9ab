package cfg

import (
	"errors"
	"reflect"
	"testing"

	"spirvcfg/internal/spirv"
)

func id(v uint32) spirv.Operand  { return spirv.Operand{Kind: spirv.KindIDRef, Value: v} }
func lit(v uint32) spirv.Operand { return spirv.Operand{Kind: spirv.KindLiteralInteger, Value: v} }

func inst(op spirv.Op, operands ...spirv.Operand) spirv.Instruction {
	return spirv.Instruction{Op: op, Operands: operands}
}

func block(label uint32, insts ...spirv.Instruction) *spirv.Block {
	return &spirv.Block{
		Label:        &spirv.Instruction{Op: spirv.OpLabel, ResultID: label},
		Instructions: insts,
	}
}

func TestClassify_Branch(t *testing.T) {
	term := Classify(block(1, inst(spirv.OpBranch, id(7))))
	if term.Kind != Branch {
		t.Fatalf("kind = %v, want Branch", term.Kind)
	}
	if got := term.Successors(); !reflect.DeepEqual(got, []uint32{7}) {
		t.Errorf("succs = %v, want [7]", got)
	}
	if _, ok := term.MergeBlock(); ok {
		t.Error("Branch should carry no merge block")
	}
}

func TestClassify_BranchConditional(t *testing.T) {
	term := Classify(block(1,
		inst(spirv.OpSelectionMerge, id(9), lit(0)),
		inst(spirv.OpBranchConditional, id(4), id(7), id(8)),
	))
	if term.Kind != BranchConditional {
		t.Fatalf("kind = %v, want BranchConditional", term.Kind)
	}
	if got := term.Successors(); !reflect.DeepEqual(got, []uint32{7, 8}) {
		t.Errorf("succs = %v, want [7 8]", got)
	}
	merge, ok := term.MergeBlock()
	if !ok || merge != 9 {
		t.Errorf("merge = %d,%v, want 9,true", merge, ok)
	}
}

func TestClassify_MergeNotAdjacent(t *testing.T) {
	// A merge declaration separated from the terminator is not recognized.
	term := Classify(block(1,
		inst(spirv.OpSelectionMerge, id(9), lit(0)),
		inst(spirv.OpNop),
		inst(spirv.OpBranchConditional, id(4), id(7), id(8)),
	))
	if _, ok := term.MergeBlock(); ok {
		t.Errorf("merge = %d, want none", term.Merge)
	}
}

func TestClassify_LoopMergeIgnored(t *testing.T) {
	term := Classify(block(1,
		inst(spirv.OpLoopMerge, id(9), id(10), lit(0)),
		inst(spirv.OpBranchConditional, id(4), id(7), id(9)),
	))
	if _, ok := term.MergeBlock(); ok {
		t.Errorf("OpLoopMerge produced merge %d", term.Merge)
	}
	if len(term.Successors()) != 2 {
		t.Errorf("succs = %v, want 2", term.Successors())
	}
}

func TestClassify_Switch(t *testing.T) {
	term := Classify(block(1,
		inst(spirv.OpSelectionMerge, id(20), lit(0)),
		inst(spirv.OpSwitch, id(3), id(19),
			lit(1), id(10),
			lit(2), id(11),
			lit(5), id(12),
		),
	))
	if term.Kind != Switch {
		t.Fatalf("kind = %v, want Switch", term.Kind)
	}
	if got, want := term.Successors(), []uint32{10, 11, 12, 19}; !reflect.DeepEqual(got, want) {
		t.Errorf("targets = %v, want %v", got, want)
	}
	if got, want := term.Values, []uint32{1, 2, 5}; !reflect.DeepEqual(got, want) {
		t.Errorf("values = %v, want %v", got, want)
	}
	if term.Merge != 20 {
		t.Errorf("merge = %d, want 20", term.Merge)
	}
}

func TestClassify_SwitchDefaultOnly(t *testing.T) {
	term := Classify(block(1, inst(spirv.OpSwitch, id(3), id(19))))
	if got := term.Successors(); !reflect.DeepEqual(got, []uint32{19}) {
		t.Errorf("targets = %v, want [19]", got)
	}
	if len(term.Values) != 0 {
		t.Errorf("values = %v, want none", term.Values)
	}
	if _, ok := term.MergeBlock(); ok {
		t.Error("switch without merge declaration reported a merge")
	}
}

func TestClassify_End(t *testing.T) {
	tests := []struct {
		name string
		blk  *spirv.Block
	}{
		{"empty", block(1)},
		{"return", block(1, inst(spirv.OpReturn))},
		{"return value", block(1, inst(spirv.OpReturnValue, id(3)))},
		{"kill", block(1, inst(spirv.OpKill))},
		{"unreachable", block(1, inst(spirv.OpUnreachable))},
		{"terminate invocation", block(1, inst(spirv.OpTerminateInvocation))},
		{"no terminator", block(1, inst(spirv.OpNop))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			term := Classify(tt.blk)
			if term.Kind != End {
				t.Errorf("kind = %v, want End", term.Kind)
			}
			if len(term.Successors()) != 0 {
				t.Errorf("succs = %v, want none", term.Successors())
			}
			if _, ok := term.MergeBlock(); ok {
				t.Error("End should carry no merge block")
			}
		})
	}
}

func TestClassify_MergeDisjointFromSuccessors(t *testing.T) {
	term := Classify(block(1,
		inst(spirv.OpSelectionMerge, id(9), lit(0)),
		inst(spirv.OpBranchConditional, id(4), id(7), id(8)),
	))
	for _, s := range term.Successors() {
		if s == term.Merge {
			t.Errorf("merge %d listed as successor", s)
		}
	}
}

func TestClassify_InvariantViolations(t *testing.T) {
	tests := []struct {
		name string
		blk  *spirv.Block
	}{
		{"branch literal target", block(1, inst(spirv.OpBranch, lit(7)))},
		{"branch missing target", block(1, inst(spirv.OpBranch))},
		{"conditional missing false", block(1, inst(spirv.OpBranchConditional, id(4), id(7)))},
		{"switch odd pairs", block(1, inst(spirv.OpSwitch, id(3), id(19), lit(1)))},
		{"switch id value", block(1, inst(spirv.OpSwitch, id(3), id(19), id(1), id(10)))},
		{"merge literal", block(1,
			inst(spirv.OpSelectionMerge, lit(9), lit(0)),
			inst(spirv.OpBranchConditional, id(4), id(7), id(8)),
		)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				r := recover()
				if r == nil {
					t.Fatal("expected panic")
				}
				err, ok := r.(error)
				if !ok {
					t.Fatalf("panic value %T, want error", r)
				}
				var ie *InvariantError
				if !errors.As(err, &ie) {
					t.Fatalf("panic %v, want *InvariantError", err)
				}
				if ie.Block != 1 {
					t.Errorf("block = %d, want 1", ie.Block)
				}
			}()
			Classify(tt.blk)
		})
	}
}
