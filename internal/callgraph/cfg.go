package callgraph

import (
	"github.com/zboralski/lattice"

	"spirvcfg/internal/cfg"
	"spirvcfg/internal/spirv"
	"spirvcfg/internal/view"
)

// BuildCFG constructs a lattice.CFGGraph with one FuncCFG per function in
// module order.
func BuildCFG(v *view.View) *lattice.CFGGraph {
	m := v.Module()
	cg := &lattice.CFGGraph{}
	for i := range m.Functions {
		lcfg, _ := BuildFuncCFG(v, &m.Functions[i])
		cg.Funcs = append(cg.Funcs, lcfg)
	}
	return cg
}

// BuildFuncCFG maps f to a lattice.FuncCFG. Lattice blocks are numbered in
// function order; Start and End index the function's instructions with
// labels excluded. Conditional successors carry Cond "T" and "F", switch and
// unconditional successors none. Blocks classified as End are terminal.
// Returns the FuncCFG and the number of basic blocks.
func BuildFuncCFG(v *view.View, f *spirv.Function) (*lattice.FuncCFG, int) {
	pos := make(map[uint32]int, len(f.Blocks))
	for i := range f.Blocks {
		pos[f.Blocks[i].ID()] = i
	}

	lcfg := &lattice.FuncCFG{Name: FuncName(v, f)}
	offset := 0
	for i := range f.Blocks {
		blk := &f.Blocks[i]
		term := cfg.Classify(blk)
		lb := &lattice.BasicBlock{
			ID:    i,
			Start: offset,
			End:   offset + len(blk.Instructions),
			Term:  term.Kind == cfg.End,
		}

		for j, target := range term.Successors() {
			bid, ok := pos[target]
			if !ok {
				panic(&cfg.InvariantError{Block: target, Msg: "no such block in function"})
			}
			s := lattice.Successor{BlockID: bid}
			if term.Kind == cfg.BranchConditional {
				s.Cond = "T"
				if j == 1 {
					s.Cond = "F"
				}
			}
			lb.Succs = append(lb.Succs, s)
		}

		for j := range blk.Instructions {
			if callee, ok := calleeOf(&blk.Instructions[j]); ok {
				lb.Calls = append(lb.Calls, lattice.CallSite{
					Offset: offset + j,
					Callee: v.Resolve(callee),
				})
			}
		}

		lcfg.Blocks = append(lcfg.Blocks, lb)
		offset = lb.End
	}
	return lcfg, len(f.Blocks)
}
