package render

import (
	"strings"

	"spirvcfg/internal/spirv"
	"spirvcfg/internal/view"
)

// FormatInstruction renders inst as one line of a block listing:
//
//	[<result> = ]Op<Name>[ <result type>][ <operands>]
//
// Ids are resolved through v. The result is escaped for an HTML label.
func FormatInstruction(v *view.View, inst *spirv.Instruction) string {
	var b strings.Builder
	if inst.ResultID != 0 {
		b.WriteString(dotEscape(v.Resolve(inst.ResultID)))
		b.WriteString(" = ")
	}
	b.WriteString("Op")
	b.WriteString(inst.Op.String())
	if inst.ResultType != 0 {
		b.WriteByte(' ')
		b.WriteString(dotEscape(v.Resolve(inst.ResultType)))
	}
	for _, op := range inst.Operands {
		b.WriteByte(' ')
		if id, ok := op.ID(); ok {
			b.WriteString(dotEscape(v.Resolve(id)))
		} else {
			b.WriteString(dotEscape(op.String()))
		}
	}
	return b.String()
}
