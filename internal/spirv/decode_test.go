package spirv_test

import (
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spirvcfg/internal/spirv"
	"spirvcfg/internal/spirv/spirvtest"
)

func TestParse_Diamond(t *testing.T) {
	d := spirvtest.Diamond()
	m, err := spirv.Parse(d.Bytes())
	require.NoError(t, err)

	assert.Equal(t, spirv.MagicNumber, m.Header.Magic)
	assert.Equal(t, "1.3", m.Header.VersionString())
	assert.False(t, m.Header.BigEndian)
	assert.Len(t, m.Capabilities, 1)
	require.NotNil(t, m.MemoryModel)
	assert.Len(t, m.EntryPoints, 1)
	assert.Len(t, m.Debugs, 3)
	assert.Len(t, m.Globals, 4)

	require.Len(t, m.Functions, 1)
	f := m.Functions[0]
	assert.Equal(t, d.Fn, f.ID())
	require.NotNil(t, f.End)
	require.Len(t, f.Blocks, 4)

	ids := make([]uint32, len(f.Blocks))
	for i := range f.Blocks {
		ids[i] = f.Blocks[i].ID()
	}
	assert.Equal(t, []uint32{d.Entry, d.Then, d.Else, d.Merge}, ids)

	entry := f.Blocks[0]
	require.Len(t, entry.Instructions, 2)
	assert.Equal(t, spirv.OpSelectionMerge, entry.Instructions[0].Op)
	assert.Equal(t, spirv.OpBranchConditional, entry.Instructions[1].Op)
	assert.Equal(t, spirv.OpReturn, f.Blocks[3].Instructions[0].Op)
}

func TestParse_BigEndian(t *testing.T) {
	d := spirvtest.Diamond()
	le, err := spirv.Parse(d.Bytes())
	require.NoError(t, err)
	be, err := spirv.Parse(d.BigEndianBytes())
	require.NoError(t, err)

	assert.True(t, be.Header.BigEndian)
	require.Len(t, be.Functions, 1)
	assert.Equal(t, len(le.Functions[0].Blocks), len(be.Functions[0].Blocks))
	assert.Equal(t, le.Debugs[0].Operands, be.Debugs[0].Operands)
}

func TestParse_Operands(t *testing.T) {
	d := spirvtest.Diamond()
	m, err := spirv.Parse(d.Bytes())
	require.NoError(t, err)

	name := m.Debugs[0]
	assert.Equal(t, spirv.OpName, name.Op)
	require.Len(t, name.Operands, 2)
	id, ok := name.Operands[0].ID()
	assert.True(t, ok)
	assert.Equal(t, d.Fn, id)
	assert.Equal(t, "main", name.Operands[1].Str)
	assert.Equal(t, `"main"`, name.Operands[1].String())

	fn := m.Functions[0].Def
	assert.Equal(t, d.Void, fn.ResultType)
	assert.Equal(t, d.Fn, fn.ResultID)
	require.Len(t, fn.Operands, 2)
	assert.Equal(t, spirv.KindFunctionControl, fn.Operands[0].Kind)
	assert.Equal(t, "None", fn.Operands[0].String())
	assert.Equal(t, "%3", fn.Operands[1].String())

	ep := m.EntryPoints[0]
	assert.Equal(t, "Fragment", ep.Operands[0].String())
}

func TestParse_SwitchPairs(t *testing.T) {
	b := spirvtest.New()
	void, i32 := b.ID(), b.ID()
	fnType, sel := b.ID(), b.ID()
	fn, entry, c1, c2, def := b.ID(), b.ID(), b.ID(), b.ID(), b.ID()
	b.Inst(spirv.OpTypeVoid, void)
	b.Inst(spirv.OpTypeInt, i32, 32, 1)
	b.Inst(spirv.OpTypeFunction, fnType, void)
	b.Inst(spirv.OpConstant, i32, sel, 7)
	b.Function(void, fn, fnType)
	b.Label(entry)
	b.SelectionMerge(def)
	b.Switch(sel, def, 1, c1, 2, c2)
	b.Label(c1).Branch(def)
	b.Label(c2).Branch(def)
	b.Label(def).Return()
	b.FunctionEnd()

	m, err := spirv.Parse(b.Bytes())
	require.NoError(t, err)
	sw := m.Functions[0].Blocks[0].Instructions[1]
	require.Equal(t, spirv.OpSwitch, sw.Op)

	kinds := make([]spirv.OperandKind, len(sw.Operands))
	for i, op := range sw.Operands {
		kinds[i] = op.Kind
	}
	assert.Equal(t, []spirv.OperandKind{
		spirv.KindIDRef, spirv.KindIDRef,
		spirv.KindLiteralInteger, spirv.KindIDRef,
		spirv.KindLiteralInteger, spirv.KindIDRef,
	}, kinds)
	assert.Equal(t, uint32(2), sw.Operands[4].Value)
	assert.Equal(t, c2, sw.Operands[5].Value)
}

// allInstructions flattens the module-level sections in layout order.
func allInstructions(m *spirv.Module) []spirv.Instruction {
	var out []spirv.Instruction
	out = append(out, m.Capabilities...)
	out = append(out, m.Extensions...)
	out = append(out, m.ExtInstImports...)
	if m.MemoryModel != nil {
		out = append(out, *m.MemoryModel)
	}
	out = append(out, m.EntryPoints...)
	out = append(out, m.ExecutionModes...)
	out = append(out, m.Debugs...)
	out = append(out, m.Annotations...)
	out = append(out, m.Globals...)
	return out
}

func TestParse_ShaderOpcodes(t *testing.T) {
	words := func(ws ...uint32) []uint32 { return ws }
	tests := []struct {
		name     string
		op       spirv.Op
		words    []uint32
		wantName string
		typ, res uint32
		want     []string // Operand.String of each operand
	}{
		{"image fetch", spirv.OpImageFetch, words(2, 9, 4, 5), "ImageFetch", 2, 9, []string{"%4", "%5"}},
		{"image fetch lod", spirv.OpImageFetch, words(2, 9, 4, 5, 0x2, 6), "ImageFetch", 2, 9, []string{"%4", "%5", "Lod", "%6"}},
		{"sample grad const offset", spirv.OpImageSampleExplicitLod, words(2, 9, 4, 5, 0x4|0x8, 6, 7, 8), "ImageSampleExplicitLod", 2, 9,
			[]string{"%4", "%5", "Grad|ConstOffset", "%6", "%7", "%8"}},
		{"sample dref", spirv.OpImageSampleDrefImplicitLod, words(2, 9, 4, 5, 6), "ImageSampleDrefImplicitLod", 2, 9, []string{"%4", "%5", "%6"}},
		{"image read", spirv.OpImageRead, words(2, 9, 4, 5), "ImageRead", 2, 9, []string{"%4", "%5"}},
		{"image write", spirv.OpImageWrite, words(4, 5, 6), "ImageWrite", 0, 0, []string{"%4", "%5", "%6"}},
		{"image query size lod", spirv.OpImageQuerySizeLod, words(2, 9, 4, 5), "ImageQuerySizeLod", 2, 9, []string{"%4", "%5"}},
		{"atomic load", spirv.OpAtomicLoad, words(2, 9, 4, 5, 6), "AtomicLoad", 2, 9, []string{"%4", "%5", "%6"}},
		{"atomic store", spirv.OpAtomicStore, words(4, 5, 6, 7), "AtomicStore", 0, 0, []string{"%4", "%5", "%6", "%7"}},
		{"atomic iadd", spirv.OpAtomicIAdd, words(2, 9, 4, 5, 6, 7), "AtomicIAdd", 2, 9, []string{"%4", "%5", "%6", "%7"}},
		{"atomic compare exchange", spirv.OpAtomicCompareExchange, words(2, 9, 4, 5, 6, 7, 8, 10), "AtomicCompareExchange", 2, 9,
			[]string{"%4", "%5", "%6", "%7", "%8", "%10"}},
		{"subgroup reduce", spirv.OpGroupNonUniformIAdd, words(2, 9, 5, 0, 7), "GroupNonUniformIAdd", 2, 9, []string{"%5", "Reduce", "%7"}},
		{"clustered reduce", spirv.OpGroupNonUniformFMax, words(2, 9, 5, 3, 7, 8), "GroupNonUniformFMax", 2, 9, []string{"%5", "ClusteredReduce", "%7", "%8"}},
		{"subgroup ballot", spirv.OpGroupNonUniformBallot, words(2, 9, 5, 7), "GroupNonUniformBallot", 2, 9, []string{"%5", "%7"}},
		{"bitfield insert", spirv.OpBitFieldInsert, words(2, 9, 4, 5, 6, 7), "BitFieldInsert", 2, 9, []string{"%4", "%5", "%6", "%7"}},
		{"bit count", spirv.OpBitCount, words(2, 9, 4), "BitCount", 2, 9, []string{"%4"}},
		{"fine derivative", spirv.OpDPdxFine, words(2, 9, 4), "DPdxFine", 2, 9, []string{"%4"}},
		{"ptr access chain", spirv.OpPtrAccessChain, words(2, 9, 4, 5, 6), "PtrAccessChain", 2, 9, []string{"%4", "%5", "%6"}},
		{"phi", spirv.OpPhi, words(2, 9, 4, 5, 6, 7), "Phi", 2, 9, []string{"%4", "%5", "%6", "%7"}},
		{"spec constant op", spirv.OpSpecConstantOp, words(2, 9, uint32(spirv.OpIAdd), 4, 5), "SpecConstantOp", 2, 9, []string{"IAdd", "%4", "%5"}},
		{"spec constant extract", spirv.OpSpecConstantOp, words(2, 9, uint32(spirv.OpCompositeExtract), 4, 1), "SpecConstantOp", 2, 9,
			[]string{"CompositeExtract", "%4", "1"}},
		{"load aligned", spirv.OpLoad, words(2, 9, 4, 0x2, 16), "Load", 2, 9, []string{"%4", "Aligned", "16"}},
		{"loop merge dependency length", spirv.OpLoopMerge, words(4, 5, 0x8, 3), "LoopMerge", 0, 0, []string{"%4", "%5", "DependencyLength", "3"}},
		{"decorate binding", spirv.OpDecorate, words(4, 33, 1), "Decorate", 0, 0, []string{"%4", "Binding", "1"}},
		{"decorate builtin", spirv.OpDecorate, words(4, 11, 15), "Decorate", 0, 0, []string{"%4", "BuiltIn", "FragCoord"}},
		{"decorate string", spirv.OpDecorateString, append(words(4, 5635), spirvtest.String("TEXCOORD")...), "DecorateString", 0, 0,
			[]string{"%4", "UserSemantic", `"TEXCOORD"`}},
		{"execution mode local size", spirv.OpExecutionMode, words(4, 17, 8, 8, 1), "ExecutionMode", 0, 0, []string{"%4", "LocalSize", "8", "8", "1"}},
		{"execution mode id", spirv.OpExecutionModeId, words(4, 38, 5, 6, 7), "ExecutionModeId", 0, 0, []string{"%4", "LocalSizeId", "%5", "%6", "%7"}},
		{"type image", spirv.OpTypeImage, words(9, 2, 1, 0, 0, 0, 2, 4), "TypeImage", 0, 9, []string{"%2", "2D", "0", "0", "0", "2", "Rgba8"}},
		{"variable", spirv.OpVariable, words(2, 9, 12), "Variable", 2, 9, []string{"StorageBuffer"}},
		{"capability", spirv.OpCapability, words(61), "Capability", 0, 0, []string{"GroupNonUniform"}},
		{"demote", spirv.OpDemoteToHelperInvocation, nil, "DemoteToHelperInvocation", 0, 0, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := spirvtest.New()
			b.Inst(tt.op, tt.words...)
			m, err := spirv.Parse(b.Bytes())
			require.NoError(t, err)
			insts := allInstructions(m)
			require.Len(t, insts, 1)
			inst := insts[0]

			assert.True(t, inst.Op.Known())
			assert.Equal(t, tt.wantName, inst.Op.String())
			assert.Equal(t, tt.typ, inst.ResultType)
			assert.Equal(t, tt.res, inst.ResultID)
			got := make([]string, len(inst.Operands))
			for i, op := range inst.Operands {
				got[i] = op.String()
			}
			if len(tt.want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_EnumerantParameterMissing(t *testing.T) {
	// ImageOperands Lod with no id after the mask.
	b := spirvtest.New()
	b.Inst(spirv.OpImageFetch, 2, 9, 4, 5, 0x2)
	_, err := spirv.Parse(b.Bytes())
	require.Error(t, err)
	assert.ErrorIs(t, err, spirv.ErrWordCount)
	assert.Contains(t, err.Error(), "Lod")
}

func TestParse_UnknownOpcodeKeepsWords(t *testing.T) {
	b := spirvtest.New()
	b.Inst(spirv.Op(65000), 11, 22)
	m, err := spirv.Parse(b.Bytes())
	require.NoError(t, err)
	require.Len(t, m.Globals, 1)
	inst := m.Globals[0]
	assert.Equal(t, "Unknown65000", inst.Op.String())
	assert.False(t, inst.Op.Known())
	require.Len(t, inst.Operands, 2)
	assert.Equal(t, spirv.KindLiteralInteger, inst.Operands[0].Kind)
	assert.Equal(t, uint32(22), inst.Operands[1].Value)
}

func TestOp_IsBlockTerminator(t *testing.T) {
	for _, op := range []spirv.Op{
		spirv.OpBranch, spirv.OpBranchConditional, spirv.OpSwitch, spirv.OpReturn,
		spirv.OpReturnValue, spirv.OpKill, spirv.OpUnreachable, spirv.OpTerminateInvocation,
		spirv.OpIgnoreIntersectionKHR, spirv.OpTerminateRayKHR, spirv.OpEmitMeshTasksEXT,
	} {
		assert.True(t, op.IsBlockTerminator(), "Op%s", op)
	}
	for _, op := range []spirv.Op{spirv.OpLabel, spirv.OpSelectionMerge, spirv.OpLoopMerge, spirv.OpDemoteToHelperInvocation} {
		assert.False(t, op.IsBlockTerminator(), "Op%s", op)
	}
}

func TestParse_BlockWithoutTerminator(t *testing.T) {
	b := spirvtest.New()
	void, fnType := b.ID(), b.ID()
	fn, l1, l2 := b.ID(), b.ID(), b.ID()
	b.Inst(spirv.OpTypeVoid, void)
	b.Inst(spirv.OpTypeFunction, fnType, void)
	b.Function(void, fn, fnType)
	b.Label(l1)
	b.Inst(spirv.OpNop)
	b.Label(l2).Return()
	b.FunctionEnd()

	m, err := spirv.Parse(b.Bytes())
	require.NoError(t, err)
	require.Len(t, m.Functions[0].Blocks, 2)
	assert.Equal(t, spirv.OpNop, m.Functions[0].Blocks[0].Instructions[0].Op)
}

func TestParse_Errors(t *testing.T) {
	valid := spirvtest.Diamond().Bytes()

	badMagic := append([]byte(nil), valid...)
	binary.LittleEndian.PutUint32(badMagic, 0xdeadbeef)

	zeroWC := append([]byte(nil), valid...)
	binary.LittleEndian.PutUint32(zeroWC[20:], uint32(spirv.OpCapability))

	truncated := spirvtest.New().Inst(spirv.OpNop).Bytes()
	binary.LittleEndian.PutUint32(truncated[20:], 3<<16|uint32(spirv.OpNop))

	noEndWord := append([]byte(nil), valid[:len(valid)-4]...)

	noEnd := spirvtest.New()
	void := noEnd.ID()
	noEnd.Inst(spirv.OpTypeVoid, void)
	noEnd.Function(void, noEnd.ID(), noEnd.ID())

	labelOutside := spirvtest.New()
	labelOutside.Label(labelOutside.ID())

	afterTerm := spirvtest.New()
	afterTerm.Function(1, 2, 3)
	afterTerm.Label(4).Return()
	afterTerm.Inst(spirv.OpNop)
	afterTerm.FunctionEnd()

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"short header", valid[:12], spirv.ErrTruncated},
		{"unaligned", append(append([]byte(nil), valid...), 0), spirv.ErrTruncated},
		{"bad magic", badMagic, spirv.ErrInvalidMagic},
		{"zero word count", zeroWC, spirv.ErrWordCount},
		{"truncated instruction", truncated, spirv.ErrTruncated},
		{"dropped function end", noEndWord, spirv.ErrStructure},
		{"missing function end", noEnd.Bytes(), spirv.ErrStructure},
		{"label outside function", labelOutside.Bytes(), spirv.ErrStructure},
		{"instruction after terminator", afterTerm.Bytes(), spirv.ErrStructure},
		{"missing operand", spirvtest.New().Inst(spirv.OpBranch).Bytes(), spirv.ErrWordCount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := spirv.Parse(tt.data)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
			var pe *spirv.ParseError
			assert.True(t, errors.As(err, &pe))
		})
	}
}

func TestParse_TruncatedString(t *testing.T) {
	b := spirvtest.New()
	// OpName with a string that never hits a nul byte.
	b.Inst(spirv.OpName, 1, 0x41414141)
	_, err := spirv.Parse(b.Bytes())
	require.Error(t, err)
	assert.ErrorIs(t, err, spirv.ErrWordCount)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "diamond.spv")
	require.NoError(t, os.WriteFile(path, spirvtest.Diamond().Bytes(), 0644))

	m, err := spirv.Load(path)
	require.NoError(t, err)
	assert.Len(t, m.Functions, 1)
	assert.Equal(t, 2+5+4, m.InstructionCount())

	_, err = spirv.Load(filepath.Join(dir, "missing.spv"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
