// Package callgraph converts SPIR-V modules into lattice graphs: compact
// per-function CFGs and the module call graph.
package callgraph

import (
	"sort"

	"github.com/zboralski/lattice"

	"spirvcfg/internal/spirv"
	"spirvcfg/internal/view"
)

// FuncName is the display name of f in lattice graphs. Resolved names carry
// the id, so overloads sharing a debug name stay distinct.
func FuncName(v *view.View, f *spirv.Function) string {
	return v.Resolve(f.ID())
}

// BuildCallGraph constructs a lattice.Graph from the module's functions.
// Each function becomes a node. Each OpFunctionCall becomes an edge from the
// calling function to the callee.
func BuildCallGraph(v *view.View) *lattice.Graph {
	m := v.Module()
	g := &lattice.Graph{}
	for i := range m.Functions {
		f := &m.Functions[i]
		caller := FuncName(v, f)
		g.Nodes = append(g.Nodes, caller)
		for _, callee := range calls(f) {
			g.Edges = append(g.Edges, lattice.Edge{
				Caller: caller,
				Callee: v.Resolve(callee),
			})
		}
	}
	g.Dedup()
	return g
}

// calls returns the callee ids of every OpFunctionCall in f, in order.
func calls(f *spirv.Function) []uint32 {
	var ids []uint32
	for _, b := range f.Blocks {
		for _, inst := range b.Instructions {
			if callee, ok := calleeOf(&inst); ok {
				ids = append(ids, callee)
			}
		}
	}
	return ids
}

func calleeOf(inst *spirv.Instruction) (uint32, bool) {
	if inst.Op != spirv.OpFunctionCall || len(inst.Operands) == 0 {
		return 0, false
	}
	return inst.Operands[0].ID()
}

// EntryPoints returns the display names of the functions named by
// OpEntryPoint, sorted and without duplicates. A function exported under
// several execution models is listed once.
func EntryPoints(v *view.View) []string {
	seen := make(map[string]bool)
	var entries []string
	for _, inst := range v.Module().EntryPoints {
		if len(inst.Operands) < 2 {
			continue
		}
		id, ok := inst.Operands[1].ID()
		if !ok {
			continue
		}
		name := v.Resolve(id)
		if !seen[name] {
			seen[name] = true
			entries = append(entries, name)
		}
	}
	sort.Strings(entries)
	return entries
}

// Roots returns the nodes of g that no edge calls into. Modules without
// OpEntryPoint (libraries, linkage-only modules) use these as entry points.
func Roots(g *lattice.Graph) []string {
	called := make(map[string]bool)
	for _, e := range g.Edges {
		called[e.Callee] = true
	}
	var roots []string
	for _, n := range g.Nodes {
		if !called[n] {
			roots = append(roots, n)
		}
	}
	sort.Strings(roots)
	return roots
}

// ReachableSet performs BFS from entry points following call edges
// and returns the set of all reachable function names.
func ReachableSet(entryPoints []string, g *lattice.Graph) map[string]bool {
	adj := make(map[string][]string)
	for _, e := range g.Edges {
		adj[e.Caller] = append(adj[e.Caller], e.Callee)
	}

	reachable := make(map[string]bool)
	queue := make([]string, 0, len(entryPoints))
	for _, ep := range entryPoints {
		if !reachable[ep] {
			reachable[ep] = true
			queue = append(queue, ep)
		}
	}

	for len(queue) > 0 {
		fn := queue[0]
		queue = queue[1:]
		for _, target := range adj[fn] {
			if !reachable[target] {
				reachable[target] = true
				queue = append(queue, target)
			}
		}
	}
	return reachable
}

// Filter returns the subgraph of g induced by keep.
func Filter(g *lattice.Graph, keep map[string]bool) *lattice.Graph {
	out := &lattice.Graph{}
	for _, n := range g.Nodes {
		if keep[n] {
			out.Nodes = append(out.Nodes, n)
		}
	}
	for _, e := range g.Edges {
		if keep[e.Caller] && keep[e.Callee] {
			out.Edges = append(out.Edges, e)
		}
	}
	return out
}
