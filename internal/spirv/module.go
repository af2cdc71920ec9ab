// Package spirv decodes SPIR-V binaries into an in-memory module of
// functions, basic blocks and instructions.
package spirv

import "fmt"

// MagicNumber is the first word of every SPIR-V module.
const MagicNumber uint32 = 0x07230203

// Header is the five-word SPIR-V module header.
type Header struct {
	Magic     uint32
	Version   uint32 // 0x00MMmm00
	Generator uint32
	Bound     uint32 // every id in the module is < Bound
	Schema    uint32
	BigEndian bool // words were byte-swapped in the file
}

// VersionString formats the header version as "major.minor".
func (h Header) VersionString() string {
	return fmt.Sprintf("%d.%d", (h.Version>>16)&0xff, (h.Version>>8)&0xff)
}

// Instruction is one decoded SPIR-V instruction. ResultType and ResultID are
// zero when the opcode does not produce them; SPIR-V never uses id 0.
type Instruction struct {
	Op         Op
	ResultType uint32
	ResultID   uint32
	Operands   []Operand
	Offset     int // byte offset of the instruction in the binary
}

// Block is a basic block: its label followed by the instructions up to and
// including the terminator. Instructions does not contain the label.
type Block struct {
	Label        *Instruction
	Instructions []Instruction
}

// ID returns the block's label id, or 0 if the block has no label.
func (b *Block) ID() uint32 {
	if b.Label == nil {
		return 0
	}
	return b.Label.ResultID
}

// Function is a function definition or declaration.
type Function struct {
	Def        *Instruction
	Parameters []Instruction
	Blocks     []Block
	End        *Instruction
}

// ID returns the function's result id, or 0 if it has no definition.
func (f *Function) ID() uint32 {
	if f.Def == nil {
		return 0
	}
	return f.Def.ResultID
}

// Module is a loaded SPIR-V module. Instructions are grouped by the logical
// layout sections of the format.
type Module struct {
	Header         Header
	Capabilities   []Instruction
	Extensions     []Instruction
	ExtInstImports []Instruction
	MemoryModel    *Instruction
	EntryPoints    []Instruction
	ExecutionModes []Instruction // OpExecutionMode, OpExecutionModeId
	Debugs         []Instruction // OpString, OpSource*, OpName, OpMemberName, OpModuleProcessed
	Annotations    []Instruction // OpDecorate*, OpMemberDecorate*, decoration groups
	Globals        []Instruction // types, constants, global variables, OpUndef, OpLine
	Functions      []Function
}

// InstructionCount returns the number of instructions in all functions,
// including labels and function delimiters.
func (m *Module) InstructionCount() int {
	n := 0
	for i := range m.Functions {
		f := &m.Functions[i]
		n += 2 + len(f.Parameters)
		for _, b := range f.Blocks {
			n += 1 + len(b.Instructions)
		}
	}
	return n
}
