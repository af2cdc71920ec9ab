package spirv

import (
	"strconv"
	"strings"
)

// OperandKind identifies how an operand's words are interpreted.
type OperandKind uint8

// Kinds the decoder handles itself. The value and bit enumeration kinds
// follow kindEnumBase and are generated with the grammar.
const (
	KindIDRef OperandKind = iota
	KindLiteralInteger
	KindLiteralString
	KindLiteralContextDependentNumber
	// KindLiteralSpecConstantOpInteger is the opcode embedded in
	// OpSpecConstantOp; the embedded instruction's operands follow it.
	KindLiteralSpecConstantOpInteger
	// The pair kinds only appear in the grammar; the decoder splits each
	// pair into two single-word operands.
	KindPairLiteralIntegerIDRef
	KindPairIDRefLiteralInteger
	KindPairIDRefIDRef

	kindEnumBase
)

var baseKindNames = [...]string{
	KindIDRef:                         "IdRef",
	KindLiteralInteger:                "LiteralInteger",
	KindLiteralString:                 "LiteralString",
	KindLiteralContextDependentNumber: "LiteralContextDependentNumber",
	KindLiteralSpecConstantOpInteger:  "LiteralSpecConstantOpInteger",
	KindPairLiteralIntegerIDRef:       "PairLiteralIntegerIdRef",
	KindPairIDRefLiteralInteger:       "PairIdRefLiteralInteger",
	KindPairIDRefIDRef:                "PairIdRefIdRef",
}

func (k OperandKind) String() string {
	if int(k) < len(baseKindNames) {
		return baseKindNames[k]
	}
	if e, ok := enumKinds[k]; ok {
		return e.name
	}
	return "OperandKind(" + strconv.Itoa(int(k)) + ")"
}

// enumKind is a value or bit enumeration from the grammar.
type enumKind struct {
	name    string
	bitmask bool
	values  map[uint32]enumerant
}

type enumerant struct {
	name   string
	params []OperandKind
}

// params returns the operand kinds that follow an enumerant word. For a
// bitmask, each set bit contributes its parameters in ascending bit order.
func (e enumKind) params(v uint32) []OperandKind {
	if !e.bitmask {
		return e.values[v].params
	}
	var ps []OperandKind
	for bit := uint32(1); bit != 0 && bit <= v; bit <<= 1 {
		if v&bit != 0 {
			ps = append(ps, e.values[bit].params...)
		}
	}
	return ps
}

func (e enumKind) format(v uint32) string {
	if !e.bitmask {
		if n, ok := e.values[v]; ok {
			return n.name
		}
		return strconv.FormatUint(uint64(v), 10)
	}
	if v == 0 {
		if n, ok := e.values[0]; ok {
			return n.name
		}
		return "None"
	}
	var parts []string
	var rest uint32
	for bit := uint32(1); bit != 0 && bit <= v; bit <<= 1 {
		if v&bit == 0 {
			continue
		}
		if n, ok := e.values[bit]; ok {
			parts = append(parts, n.name)
		} else {
			rest |= bit
		}
	}
	if rest != 0 {
		parts = append(parts, "0x"+strconv.FormatUint(uint64(rest), 16))
	}
	return strings.Join(parts, "|")
}

// Operand is one decoded instruction operand.
type Operand struct {
	Kind  OperandKind
	Value uint32 // id, single-word literal, or enumerant value
	Str   string // KindLiteralString only
}

// ID returns the referenced id when the operand is an id reference.
func (op Operand) ID() (uint32, bool) {
	if op.Kind != KindIDRef {
		return 0, false
	}
	return op.Value, true
}

// String renders the operand's literal textual form. Id references render
// as "%<id>" without name resolution.
func (op Operand) String() string {
	switch op.Kind {
	case KindIDRef:
		return "%" + strconv.FormatUint(uint64(op.Value), 10)
	case KindLiteralString:
		return strconv.Quote(op.Str)
	case KindLiteralInteger, KindLiteralContextDependentNumber:
		return strconv.FormatUint(uint64(op.Value), 10)
	case KindLiteralSpecConstantOpInteger:
		return Op(op.Value).String()
	}
	if e, ok := enumKinds[op.Kind]; ok {
		return e.format(op.Value)
	}
	return strconv.FormatUint(uint64(op.Value), 10)
}
