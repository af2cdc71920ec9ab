package spirv

import "fmt"

//go:generate go run ./gen -in grammar/spirv.core.grammar.json -out grammar_gen.go

// Op is a SPIR-V opcode (low 16 bits of an instruction's first word).
// The constants live in grammar_gen.go.
type Op uint16

// quantifier says how many times an operand kind may repeat.
type quantifier uint8

const (
	one quantifier = iota
	optional
	variadic
)

type operandSpec struct {
	kind  OperandKind
	quant quantifier
}

// opInfo is the grammar entry for one opcode. Result type and result id
// are not part of operands.
type opInfo struct {
	name      string
	hasType   bool
	hasResult bool
	operands  []operandSpec
}

// String returns the opcode name without the "Op" prefix, e.g. "Branch".
// Unknown opcodes render as "Unknown<n>".
func (op Op) String() string {
	if info, ok := grammar[op]; ok {
		return info.name
	}
	return fmt.Sprintf("Unknown%d", uint16(op))
}

// Known reports whether the opcode has a grammar entry.
func (op Op) Known() bool {
	_, ok := grammar[op]
	return ok
}

// IsBlockTerminator reports whether op ends a basic block: a branch or one
// of the termination instructions.
func (op Op) IsBlockTerminator() bool {
	switch op {
	case OpBranch, OpBranchConditional, OpSwitch, OpReturn, OpReturnValue,
		OpKill, OpUnreachable, OpTerminateInvocation,
		OpIgnoreIntersectionKHR, OpTerminateRayKHR, OpEmitMeshTasksEXT:
		return true
	}
	return false
}
