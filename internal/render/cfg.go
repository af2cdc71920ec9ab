package render

import (
	"fmt"
	"io"
	"strings"

	"spirvcfg/internal/cfg"
	"spirvcfg/internal/spirv"
	"spirvcfg/internal/view"
)

// Options controls CFG document rendering.
type Options struct {
	Theme Theme
	Prune bool // omit nodes for blocks unreachable from the entry
}

// FunctionDOT renders one function as a standalone digraph: a box node for
// the function with an edge into its entry block, one HTML-table node per
// block listing its instructions, then the control-flow edges found by a
// depth-first walk from the entry. Merge edges are written before the
// successor edges of the same block.
func FunctionDOT(v *view.View, f *spirv.Function, opts Options) string {
	t := opts.Theme.withDefaults()

	var b strings.Builder
	b.WriteString("digraph {\n")
	for _, kind := range []string{"graph", "node", "edge"} {
		fmt.Fprintf(&b, "%s [fontname=%s, fontsize=%g];\n", kind, dotQuote(t.FontName), t.FontSize)
	}

	fnID := f.ID()
	label, ok := v.FunctionName(f)
	if !ok {
		label = fmt.Sprintf("%%%d", fnID)
	}
	fmt.Fprintf(&b, "%d [shape=\"box\", label=%s];\n", fnID, dotQuote(label))
	if len(f.Blocks) > 0 {
		fmt.Fprintf(&b, "%d -> %d\n", fnID, f.Blocks[0].ID())
	}

	var keep map[uint32]bool
	if opts.Prune {
		// Merge targets stay declared even when no path reaches them.
		keep = make(map[uint32]bool, len(f.Blocks))
		cfg.Traverse(f, func(id uint32, term cfg.Terminator) {
			keep[id] = true
			if merge, ok := term.MergeBlock(); ok {
				keep[merge] = true
			}
		})
	}

	for i := range f.Blocks {
		blk := &f.Blocks[i]
		id := blk.ID()
		if keep != nil && !keep[id] {
			continue
		}
		fmt.Fprintf(&b, "  %d [shape=none, label=<\n", id)
		b.WriteString("\t<table>\n")
		fmt.Fprintf(&b, "\t\t<tr><td align=\"center\" bgcolor=%s colspan=\"1\">%s</td></tr>\n",
			dotQuote(t.HeaderColor), dotEscape(v.Resolve(id)))
		b.WriteString("\t\t<tr><td align=\"left\" balign=\"left\">\n")
		for j := range blk.Instructions {
			fmt.Fprintf(&b, "\t\t\t%s<br/>\n", FormatInstruction(v, &blk.Instructions[j]))
		}
		b.WriteString("\t</td></tr></table>>];\n")
	}

	cfg.Traverse(f, func(node uint32, term cfg.Terminator) {
		if merge, ok := term.MergeBlock(); ok {
			fmt.Fprintf(&b, "\t%d -> %d[style=%s]\n", node, merge, dotQuote(t.MergeStyle))
		}
		for _, target := range term.Successors() {
			fmt.Fprintf(&b, "  %d -> %d\n", node, target)
		}
	})

	b.WriteString("}\n")
	return b.String()
}

// WriteModule renders every function of the module, in module order, into w.
// The first write error aborts rendering and is returned.
func WriteModule(w io.Writer, v *view.View, opts Options) error {
	m := v.Module()
	for i := range m.Functions {
		f := &m.Functions[i]
		if _, err := io.WriteString(w, FunctionDOT(v, f, opts)); err != nil {
			return fmt.Errorf("render: write function %%%d: %w", f.ID(), err)
		}
	}
	return nil
}
