package cfg

import "spirvcfg/internal/spirv"

// Index maps block label ids to the blocks of one function.
type Index map[uint32]*spirv.Block

// NewIndex indexes every labelled block of f.
func NewIndex(f *spirv.Function) Index {
	idx := make(Index, len(f.Blocks))
	for i := range f.Blocks {
		b := &f.Blocks[i]
		if b.Label == nil {
			continue
		}
		idx[b.ID()] = b
	}
	return idx
}

// Block returns the block labelled id. A missing id means a branch targets
// a label outside the function, which is invalid IR; Block panics with an
// *InvariantError.
func (idx Index) Block(id uint32) *spirv.Block {
	b, ok := idx[id]
	if !ok {
		panic(&InvariantError{Block: id, Msg: "no such block in function"})
	}
	return b
}

// Traverse calls visit once for every block reachable from the first block
// of f, in depth-first pre-order. Successors are explored in the order
// Terminator.Successors returns them. Unreachable blocks are skipped and a
// function without blocks is a no-op.
//
// The walk uses an explicit stack, so deep block chains do not grow the
// goroutine stack. Traverse does not modify f and may be called repeatedly.
func Traverse(f *spirv.Function, visit func(id uint32, t Terminator)) {
	if len(f.Blocks) == 0 {
		return
	}
	idx := NewIndex(f)
	visited := make(map[uint32]bool, len(f.Blocks))
	stack := []uint32{f.Blocks[0].ID()}

	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[id] {
			continue
		}
		visited[id] = true

		t := Classify(idx.Block(id))
		visit(id, t)

		succs := t.Successors()
		for i := len(succs) - 1; i >= 0; i-- {
			if !visited[succs[i]] {
				stack = append(stack, succs[i])
			}
		}
	}
}

// Reachable returns the ids of the blocks reachable from the entry of f in
// visitation order.
func Reachable(f *spirv.Function) []uint32 {
	var ids []uint32
	Traverse(f, func(id uint32, _ Terminator) {
		ids = append(ids, id)
	})
	return ids
}
