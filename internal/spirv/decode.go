package spirv

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"
)

var (
	ErrInvalidMagic = errors.New("spirv: invalid magic number")
	ErrTruncated    = errors.New("spirv: truncated binary")
	ErrWordCount    = errors.New("spirv: invalid instruction word count")
	ErrStructure    = errors.New("spirv: invalid module structure")
)

const headerWords = 5

// ParseError reports a decoding failure at a byte offset in the binary.
type ParseError struct {
	Offset int
	Op     Op
	Err    error
}

func (e *ParseError) Error() string {
	if e.Op != 0 {
		return fmt.Sprintf("%v (Op%s at offset 0x%x)", e.Err, e.Op, e.Offset)
	}
	return fmt.Sprintf("%v (at offset 0x%x)", e.Err, e.Offset)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Load reads and parses the SPIR-V binary at path. The whole file is read
// before decoding starts.
func Load(path string) (*Module, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("spirv: read: %w", err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	Logger().Debug("loaded module",
		zap.String("path", path),
		zap.String("version", m.Header.VersionString()),
		zap.Uint32("bound", m.Header.Bound),
		zap.Int("functions", len(m.Functions)),
	)
	return m, nil
}

// Parse decodes a SPIR-V binary. Both little- and big-endian word order are
// accepted; the magic number decides which.
func Parse(data []byte) (*Module, error) {
	if len(data) < headerWords*4 {
		return nil, &ParseError{Offset: len(data), Err: fmt.Errorf("%w: %d bytes, header needs %d", ErrTruncated, len(data), headerWords*4)}
	}
	if len(data)%4 != 0 {
		return nil, &ParseError{Offset: len(data) - len(data)%4, Err: fmt.Errorf("%w: length %d is not a multiple of 4", ErrTruncated, len(data))}
	}

	var order binary.ByteOrder
	switch {
	case binary.LittleEndian.Uint32(data) == MagicNumber:
		order = binary.LittleEndian
	case binary.BigEndian.Uint32(data) == MagicNumber:
		order = binary.BigEndian
	default:
		return nil, &ParseError{Err: fmt.Errorf("%w: 0x%08x", ErrInvalidMagic, binary.LittleEndian.Uint32(data))}
	}

	words := make([]uint32, len(data)/4)
	for i := range words {
		words[i] = order.Uint32(data[i*4:])
	}

	m := &Module{Header: Header{
		Magic:     words[0],
		Version:   words[1],
		Generator: words[2],
		Bound:     words[3],
		Schema:    words[4],
		BigEndian: order == binary.BigEndian,
	}}

	asm := assembler{m: m}
	for pos := headerWords; pos < len(words); {
		first := words[pos]
		wc := int(first >> 16)
		op := Op(first & 0xffff)
		offset := pos * 4
		if wc == 0 {
			return nil, &ParseError{Offset: offset, Op: op, Err: ErrWordCount}
		}
		if pos+wc > len(words) {
			return nil, &ParseError{Offset: offset, Op: op, Err: fmt.Errorf("%w: instruction needs %d words, %d left", ErrTruncated, wc, len(words)-pos)}
		}
		inst, err := decodeInstruction(op, words[pos+1:pos+wc])
		if err != nil {
			return nil, &ParseError{Offset: offset, Op: op, Err: err}
		}
		inst.Offset = offset
		if err := asm.add(inst); err != nil {
			return nil, &ParseError{Offset: offset, Op: op, Err: err}
		}
		pos += wc
	}
	if err := asm.finish(); err != nil {
		return nil, &ParseError{Offset: len(data), Err: err}
	}
	return m, nil
}

// decodeInstruction splits an instruction's operand words according to the
// opcode's grammar entry.
func decodeInstruction(op Op, words []uint32) (Instruction, error) {
	inst := Instruction{Op: op}
	if !op.Known() {
		Logger().Debug("unknown opcode, keeping raw words", zap.Uint16("op", uint16(op)), zap.Int("words", len(words)))
		for _, w := range words {
			inst.Operands = append(inst.Operands, Operand{Kind: KindLiteralInteger, Value: w})
		}
		return inst, nil
	}
	info := grammar[op]

	i := 0
	if info.hasType {
		if i >= len(words) {
			return inst, fmt.Errorf("%w: missing result type", ErrWordCount)
		}
		inst.ResultType = words[i]
		i++
	}
	if info.hasResult {
		if i >= len(words) {
			return inst, fmt.Errorf("%w: missing result id", ErrWordCount)
		}
		inst.ResultID = words[i]
		i++
	}

	n, err := decodeOperands(&inst, info.operands, words[i:])
	if err != nil {
		return inst, err
	}
	i += n

	// Trailing words the grammar does not describe (extension operands)
	// are kept as literals so nothing is silently dropped.
	for ; i < len(words); i++ {
		inst.Operands = append(inst.Operands, Operand{Kind: KindLiteralInteger, Value: words[i]})
	}
	return inst, nil
}

// decodeOperands decodes words against a list of operand shapes and returns
// the number of words consumed.
func decodeOperands(inst *Instruction, shapes []operandSpec, words []uint32) (int, error) {
	i := 0
	for _, shape := range shapes {
		switch shape.quant {
		case one:
			if i >= len(words) {
				return i, fmt.Errorf("%w: missing %s operand", ErrWordCount, shape.kind)
			}
			n, err := decodeOperand(inst, shape.kind, words[i:])
			if err != nil {
				return i, err
			}
			i += n
		case optional:
			if i < len(words) {
				n, err := decodeOperand(inst, shape.kind, words[i:])
				if err != nil {
					return i, err
				}
				i += n
			}
		case variadic:
			for i < len(words) {
				n, err := decodeOperand(inst, shape.kind, words[i:])
				if err != nil {
					return i, err
				}
				i += n
			}
		}
	}
	return i, nil
}

// decodeOperand appends one operand of the given kind, plus any parameters
// its enumerant carries, and returns the number of words consumed.
func decodeOperand(inst *Instruction, kind OperandKind, words []uint32) (int, error) {
	switch kind {
	case KindLiteralString:
		s, n, err := decodeString(words)
		if err != nil {
			return 0, err
		}
		inst.Operands = append(inst.Operands, Operand{Kind: KindLiteralString, Str: s})
		return n, nil
	case KindPairLiteralIntegerIDRef, KindPairIDRefLiteralInteger, KindPairIDRefIDRef:
		if len(words) < 2 {
			return 0, fmt.Errorf("%w: incomplete %s", ErrWordCount, kind)
		}
		first, second := KindIDRef, KindIDRef
		switch kind {
		case KindPairLiteralIntegerIDRef:
			first = KindLiteralInteger
		case KindPairIDRefLiteralInteger:
			second = KindLiteralInteger
		}
		inst.Operands = append(inst.Operands,
			Operand{Kind: first, Value: words[0]},
			Operand{Kind: second, Value: words[1]},
		)
		return 2, nil
	case KindLiteralSpecConstantOpInteger:
		inst.Operands = append(inst.Operands, Operand{Kind: kind, Value: words[0]})
		embedded, ok := grammar[Op(words[0])]
		if !ok {
			return 1, nil
		}
		n, err := decodeOperands(inst, embedded.operands, words[1:])
		return 1 + n, err
	}

	inst.Operands = append(inst.Operands, Operand{Kind: kind, Value: words[0]})
	e, ok := enumKinds[kind]
	if !ok {
		return 1, nil
	}
	n := 1
	for _, p := range e.params(words[0]) {
		if n >= len(words) {
			return n, fmt.Errorf("%w: %s %s is missing its %s parameter", ErrWordCount, kind, e.format(words[0]), p)
		}
		m, err := decodeOperand(inst, p, words[n:])
		if err != nil {
			return n, err
		}
		n += m
	}
	return n, nil
}

// decodeString reads a nul-terminated UTF-8 string packed four bytes per
// word, lowest-order byte first.
func decodeString(words []uint32) (string, int, error) {
	var buf []byte
	for i, w := range words {
		for shift := 0; shift < 32; shift += 8 {
			b := byte(w >> shift)
			if b == 0 {
				return string(buf), i + 1, nil
			}
			buf = append(buf, b)
		}
	}
	return "", 0, fmt.Errorf("%w: unterminated string", ErrWordCount)
}

// assembler groups the flat instruction stream into module sections,
// functions and blocks.
type assembler struct {
	m     *Module
	fn    *Function
	block *Block
}

func (a *assembler) add(inst Instruction) error {
	switch inst.Op {
	case OpFunction:
		if a.fn != nil {
			return fmt.Errorf("%w: OpFunction inside function %%%d", ErrStructure, a.fn.ID())
		}
		def := inst
		a.fn = &Function{Def: &def}
		return nil
	case OpFunctionParameter:
		if a.fn == nil || len(a.fn.Blocks) > 0 {
			return fmt.Errorf("%w: OpFunctionParameter outside a function header", ErrStructure)
		}
		a.fn.Parameters = append(a.fn.Parameters, inst)
		return nil
	case OpLabel:
		if a.fn == nil {
			return fmt.Errorf("%w: OpLabel %%%d outside a function", ErrStructure, inst.ResultID)
		}
		if a.block != nil {
			Logger().Debug("block has no terminator", zap.Uint32("block", a.block.ID()))
		}
		label := inst
		a.fn.Blocks = append(a.fn.Blocks, Block{Label: &label})
		a.block = &a.fn.Blocks[len(a.fn.Blocks)-1]
		return nil
	case OpFunctionEnd:
		if a.fn == nil {
			return fmt.Errorf("%w: OpFunctionEnd without OpFunction", ErrStructure)
		}
		if a.block != nil {
			Logger().Debug("block has no terminator", zap.Uint32("block", a.block.ID()))
		}
		end := inst
		a.fn.End = &end
		a.m.Functions = append(a.m.Functions, *a.fn)
		a.fn, a.block = nil, nil
		return nil
	}

	if a.fn != nil {
		if a.block == nil {
			if inst.Op == OpLine || inst.Op == OpNoLine {
				return nil
			}
			return fmt.Errorf("%w: Op%s outside a block in function %%%d", ErrStructure, inst.Op, a.fn.ID())
		}
		a.block.Instructions = append(a.block.Instructions, inst)
		if inst.Op.IsBlockTerminator() {
			a.block = nil
		}
		return nil
	}

	m := a.m
	switch inst.Op {
	case OpCapability:
		m.Capabilities = append(m.Capabilities, inst)
	case OpExtension:
		m.Extensions = append(m.Extensions, inst)
	case OpExtInstImport:
		m.ExtInstImports = append(m.ExtInstImports, inst)
	case OpMemoryModel:
		mm := inst
		m.MemoryModel = &mm
	case OpEntryPoint:
		m.EntryPoints = append(m.EntryPoints, inst)
	case OpExecutionMode, OpExecutionModeId:
		m.ExecutionModes = append(m.ExecutionModes, inst)
	case OpString, OpSource, OpSourceContinued, OpSourceExtension,
		OpName, OpMemberName, OpModuleProcessed:
		m.Debugs = append(m.Debugs, inst)
	case OpDecorate, OpMemberDecorate, OpDecorateId, OpDecorateString,
		OpMemberDecorateString, OpDecorationGroup, OpGroupDecorate, OpGroupMemberDecorate:
		m.Annotations = append(m.Annotations, inst)
	default:
		m.Globals = append(m.Globals, inst)
	}
	return nil
}

func (a *assembler) finish() error {
	if a.fn != nil {
		return fmt.Errorf("%w: function %%%d has no OpFunctionEnd", ErrStructure, a.fn.ID())
	}
	return nil
}
