package cfg

import (
	"reflect"
	"testing"

	"spirvcfg/internal/spirv"
	"spirvcfg/internal/spirv/spirvtest"
)

func parse(t *testing.T, b *spirvtest.Builder) *spirv.Module {
	t.Helper()
	m, err := spirv.Parse(b.Bytes())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return m
}

func TestTraverse_Diamond(t *testing.T) {
	d := spirvtest.Diamond()
	m := parse(t, d.Builder)
	f := &m.Functions[0]

	var order []uint32
	var merges []uint32
	Traverse(f, func(id uint32, term Terminator) {
		order = append(order, id)
		if mb, ok := term.MergeBlock(); ok {
			merges = append(merges, mb)
		}
	})

	want := []uint32{d.Entry, d.Then, d.Merge, d.Else}
	if !reflect.DeepEqual(order, want) {
		t.Errorf("order = %v, want %v", order, want)
	}
	if !reflect.DeepEqual(merges, []uint32{d.Merge}) {
		t.Errorf("merges = %v, want [%d]", merges, d.Merge)
	}
}

// loopModule builds entry -> header; header -> body | exit; body -> header.
func loopModule() (b *spirvtest.Builder, entry, header, body, exit, dead uint32) {
	b = spirvtest.New()
	void := b.TypeVoid()
	boolT := b.TypeBool()
	fnType := b.TypeFunction(void)
	cond := b.ConstantTrue(boolT)
	fn := b.ID()
	entry, header, body, exit, dead = b.ID(), b.ID(), b.ID(), b.ID(), b.ID()

	b.Function(void, fn, fnType)
	b.Label(entry).Branch(header)
	b.Label(header)
	b.LoopMerge(exit, body)
	b.BranchConditional(cond, body, exit)
	b.Label(body).Branch(header)
	b.Label(exit).Return()
	b.Label(dead).Branch(exit)
	b.FunctionEnd()
	return
}

func TestTraverse_LoopVisitsOnce(t *testing.T) {
	b, entry, header, body, exit, dead := loopModule()
	f := &parse(t, b).Functions[0]

	seen := make(map[uint32]int)
	var order []uint32
	Traverse(f, func(id uint32, _ Terminator) {
		seen[id]++
		order = append(order, id)
	})

	if want := []uint32{entry, header, body, exit}; !reflect.DeepEqual(order, want) {
		t.Errorf("order = %v, want %v", order, want)
	}
	for id, n := range seen {
		if n != 1 {
			t.Errorf("block %d visited %d times", id, n)
		}
	}
	if seen[dead] != 0 {
		t.Errorf("unreachable block %d was visited", dead)
	}
}

func TestTraverse_Restartable(t *testing.T) {
	b, _, _, _, _, _ := loopModule()
	f := &parse(t, b).Functions[0]

	first := Reachable(f)
	second := Reachable(f)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("second traversal %v differs from first %v", second, first)
	}
	if len(first) != 4 {
		t.Errorf("reachable = %d, want 4", len(first))
	}
}

func TestTraverse_NoBlocks(t *testing.T) {
	f := &spirv.Function{}
	Traverse(f, func(uint32, Terminator) {
		t.Fatal("visit called for function without blocks")
	})
	if got := Reachable(f); len(got) != 0 {
		t.Errorf("reachable = %v, want none", got)
	}
}

func TestTraverse_SwitchOrder(t *testing.T) {
	// Cases are explored before the default, each subtree fully first.
	f := &spirv.Function{Blocks: []spirv.Block{
		*block(1, inst(spirv.OpSwitch, id(99), id(4), lit(0), id(2), lit(1), id(3))),
		*block(2, inst(spirv.OpBranch, id(5))),
		*block(3, inst(spirv.OpBranch, id(5))),
		*block(4, inst(spirv.OpBranch, id(5))),
		*block(5, inst(spirv.OpReturn)),
	}}
	if got, want := Reachable(f), []uint32{1, 2, 5, 3, 4}; !reflect.DeepEqual(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
}

func TestTraverse_DeepChain(t *testing.T) {
	const n = 100000
	f := &spirv.Function{Blocks: make([]spirv.Block, n)}
	for i := range n {
		id := uint32(i + 1)
		term := inst(spirv.OpReturn)
		if i+1 < n {
			term = inst(spirv.OpBranch, spirv.Operand{Kind: spirv.KindIDRef, Value: id + 1})
		}
		f.Blocks[i] = *block(id, term)
	}
	if got := len(Reachable(f)); got != n {
		t.Errorf("reachable = %d, want %d", got, n)
	}
}

func TestIndex_MissingBlockPanics(t *testing.T) {
	f := &spirv.Function{Blocks: []spirv.Block{
		*block(1, inst(spirv.OpBranch, id(42))),
	}}
	defer func() {
		r := recover()
		ie, ok := r.(*InvariantError)
		if !ok {
			t.Fatalf("panic = %v, want *InvariantError", r)
		}
		if ie.Block != 42 {
			t.Errorf("block = %d, want 42", ie.Block)
		}
	}()
	Traverse(f, func(uint32, Terminator) {})
}

func TestNewIndex(t *testing.T) {
	d := spirvtest.Diamond()
	f := &parse(t, d.Builder).Functions[0]
	idx := NewIndex(f)
	if len(idx) != 4 {
		t.Fatalf("index size = %d, want 4", len(idx))
	}
	if got := idx.Block(d.Else); got != &f.Blocks[2] {
		t.Errorf("Block(%d) = %p, want &Blocks[2]", d.Else, got)
	}
}
