package callgraph

import (
	"reflect"
	"testing"

	"github.com/zboralski/lattice/render"

	"spirvcfg/internal/spirv"
	"spirvcfg/internal/spirv/spirvtest"
	"spirvcfg/internal/view"
)

// callModule builds:
//
//	helper: return
//	orphan: return
//	main:   entry: merge %join; br %cond %then %else
//	        then:  call helper; br %join
//	        else:  call helper; br %join
//	        join:  return
//
// main is the only OpEntryPoint; orphan is never called.
type callModule struct {
	b                      *spirvtest.Builder
	helper, orphan, main   uint32
	entry, then, els, join uint32
}

func newCallModule() *callModule {
	b := spirvtest.New()
	c := &callModule{b: b}
	void := b.TypeVoid()
	boolT := b.TypeBool()
	fnType := b.TypeFunction(void)
	cond := b.ConstantTrue(boolT)
	c.helper, c.orphan, c.main = b.ID(), b.ID(), b.ID()
	c.entry, c.then, c.els, c.join = b.ID(), b.ID(), b.ID(), b.ID()
	hEntry, oEntry := b.ID(), b.ID()

	b.EntryPoint(4, c.main, "main")
	b.Name(c.main, "main")
	b.Name(c.helper, "helper")

	b.Function(void, c.helper, fnType)
	b.Label(hEntry).Return()
	b.FunctionEnd()

	b.Function(void, c.orphan, fnType)
	b.Label(oEntry).Return()
	b.FunctionEnd()

	b.Function(void, c.main, fnType)
	b.Label(c.entry)
	b.SelectionMerge(c.join)
	b.BranchConditional(cond, c.then, c.els)
	b.Label(c.then)
	b.Call(void, c.helper)
	b.Branch(c.join)
	b.Label(c.els)
	b.Call(void, c.helper)
	b.Branch(c.join)
	b.Label(c.join).Return()
	b.FunctionEnd()
	return c
}

func (c *callModule) view(t *testing.T) *view.View {
	t.Helper()
	m, err := spirv.Parse(c.b.Bytes())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return view.New(m)
}

func TestBuildCFG_DOTOutput(t *testing.T) {
	c := newCallModule()
	v := c.view(t)

	cg := BuildCFG(v)
	if len(cg.Funcs) != 3 {
		t.Fatalf("expected 3 functions, got %d", len(cg.Funcs))
	}
	f := cg.Funcs[2]
	if f.Name != "main(%7)" {
		t.Errorf("func name = %q", f.Name)
	}
	if len(f.Blocks) != 4 {
		t.Fatalf("expected 4 blocks, got %d", len(f.Blocks))
	}

	// B0: entry, conditional T->B1, F->B2, no calls.
	b0 := f.Blocks[0]
	want := []struct {
		id   int
		cond string
	}{{1, "T"}, {2, "F"}}
	if len(b0.Succs) != 2 {
		t.Fatalf("B0 succs = %+v", b0.Succs)
	}
	for i, w := range want {
		if b0.Succs[i].BlockID != w.id || b0.Succs[i].Cond != w.cond {
			t.Errorf("B0 succ %d = %+v, want %d/%s", i, b0.Succs[i], w.id, w.cond)
		}
	}
	if b0.Term {
		t.Error("B0 should not be terminal")
	}

	// B1: call helper, unconditional -> B3.
	b1 := f.Blocks[1]
	if len(b1.Calls) != 1 || b1.Calls[0].Callee != "helper(%5)" {
		t.Errorf("B1 calls = %+v", b1.Calls)
	}
	if len(b1.Succs) != 1 || b1.Succs[0].BlockID != 3 || b1.Succs[0].Cond != "" {
		t.Errorf("B1 succs = %+v", b1.Succs)
	}
	if b1.Start != 2 || b1.End != 4 || b1.Calls[0].Offset != 2 {
		t.Errorf("B1 range = [%d,%d) call@%d, want [2,4) call@2", b1.Start, b1.End, b1.Calls[0].Offset)
	}

	// B3: join, terminal.
	if !f.Blocks[3].Term {
		t.Error("B3 should be terminal")
	}

	dot := render.DOTCFG(cg, "spirvcfg CFG")
	if dot == "" {
		t.Error("expected non-empty DOT output")
	}
}

func TestBuildFuncCFG_Switch(t *testing.T) {
	f := &spirv.Function{
		Def: &spirv.Instruction{Op: spirv.OpFunction, ResultID: 1},
		Blocks: []spirv.Block{
			{
				Label: &spirv.Instruction{Op: spirv.OpLabel, ResultID: 10},
				Instructions: []spirv.Instruction{{Op: spirv.OpSwitch, Operands: []spirv.Operand{
					{Kind: spirv.KindIDRef, Value: 99},
					{Kind: spirv.KindIDRef, Value: 12},
					{Kind: spirv.KindLiteralInteger, Value: 0},
					{Kind: spirv.KindIDRef, Value: 11},
				}}},
			},
			{Label: &spirv.Instruction{Op: spirv.OpLabel, ResultID: 11}, Instructions: []spirv.Instruction{{Op: spirv.OpReturn}}},
			{Label: &spirv.Instruction{Op: spirv.OpLabel, ResultID: 12}, Instructions: []spirv.Instruction{{Op: spirv.OpReturn}}},
		},
	}
	v := view.New(&spirv.Module{Functions: []spirv.Function{*f}})

	lcfg, n := BuildFuncCFG(v, f)
	if n != 3 {
		t.Fatalf("blocks = %d, want 3", n)
	}
	var got []int
	for _, s := range lcfg.Blocks[0].Succs {
		if s.Cond != "" {
			t.Errorf("switch successor has cond %q", s.Cond)
		}
		got = append(got, s.BlockID)
	}
	if !reflect.DeepEqual(got, []int{1, 2}) {
		t.Errorf("succs = %v, want [1 2] (case, then default)", got)
	}
}

func TestBuildCallGraph_DOTOutput(t *testing.T) {
	c := newCallModule()
	v := c.view(t)

	cg := BuildCallGraph(v)
	if len(cg.Nodes) != 3 {
		t.Errorf("expected 3 nodes, got %d", len(cg.Nodes))
	}
	if len(cg.Edges) != 1 {
		t.Fatalf("expected 1 deduplicated edge, got %+v", cg.Edges)
	}
	if e := cg.Edges[0]; e.Caller != "main(%7)" || e.Callee != "helper(%5)" {
		t.Errorf("edge = %+v", e)
	}

	dot := render.DOT(cg, "spirvcfg call graph")
	if dot == "" {
		t.Error("expected non-empty DOT output")
	}
}

func TestReachability(t *testing.T) {
	c := newCallModule()
	v := c.view(t)
	g := BuildCallGraph(v)

	entries := EntryPoints(v)
	if !reflect.DeepEqual(entries, []string{"main(%7)"}) {
		t.Fatalf("entry points = %v", entries)
	}

	reach := ReachableSet(entries, g)
	if !reach["main(%7)"] || !reach["helper(%5)"] {
		t.Errorf("reachable = %v, want main and helper", reach)
	}
	if reach["%6"] {
		t.Error("orphan should not be reachable")
	}

	sub := Filter(g, reach)
	if len(sub.Nodes) != 2 || len(sub.Edges) != 1 {
		t.Errorf("filtered graph = %d nodes, %d edges, want 2, 1", len(sub.Nodes), len(sub.Edges))
	}

	roots := Roots(g)
	if !reflect.DeepEqual(roots, []string{"%6", "main(%7)"}) {
		t.Errorf("roots = %v", roots)
	}
}
