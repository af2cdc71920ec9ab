// Command gen writes the opcode and operand tables of package spirv from a
// SPIR-V core grammar JSON file (the Khronos spirv.core.grammar.json schema).
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

type grammarFile struct {
	MajorVersion int           `json:"major_version"`
	MinorVersion int           `json:"minor_version"`
	Revision     int           `json:"revision"`
	Instructions []instruction `json:"instructions"`
	OperandKinds []operandKind `json:"operand_kinds"`
}

type instruction struct {
	OpName   string    `json:"opname"`
	Opcode   int       `json:"opcode"`
	Operands []operand `json:"operands"`
}

type operand struct {
	Kind       string `json:"kind"`
	Quantifier string `json:"quantifier"`
}

type operandKind struct {
	Category   string      `json:"category"`
	Kind       string      `json:"kind"`
	Enumerants []enumerant `json:"enumerants"`
}

type enumerant struct {
	Enumerant  string          `json:"enumerant"`
	Value      json.RawMessage `json:"value"`
	Parameters []operand       `json:"parameters"`
}

// value decodes an enumerant value: a number for ValueEnum kinds, a
// "0x..." string for BitEnum kinds.
func (e enumerant) value() (uint32, error) {
	var s string
	if err := json.Unmarshal(e.Value, &s); err == nil {
		v, err := strconv.ParseUint(s, 0, 32)
		return uint32(v), err
	}
	var v uint32
	err := json.Unmarshal(e.Value, &v)
	return v, err
}

var quantifiers = map[string]string{
	"":  "one",
	"?": "optional",
	"*": "variadic",
}

func main() {
	var in, out string
	cmd := &cobra.Command{
		Use:           "gen",
		Short:         "Generate spirv grammar tables",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(in, out)
		},
	}
	cmd.Flags().StringVar(&in, "in", "grammar/spirv.core.grammar.json", "grammar JSON file")
	cmd.Flags().StringVar(&out, "out", "grammar_gen.go", "output Go file")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "gen: %v\n", err)
		os.Exit(1)
	}
}

func run(in, out string) error {
	data, err := os.ReadFile(in)
	if err != nil {
		return err
	}
	var g grammarFile
	if err := json.Unmarshal(data, &g); err != nil {
		return fmt.Errorf("%s: %w", in, err)
	}
	src, err := generate(&g, filepath.Base(in))
	if err != nil {
		return err
	}
	return os.WriteFile(out, src, 0o644)
}

func generate(g *grammarFile, source string) ([]byte, error) {
	categories := make(map[string]string, len(g.OperandKinds))
	var enums []operandKind
	for _, k := range g.OperandKinds {
		categories[k.Kind] = k.Category
		if k.Category == "ValueEnum" || k.Category == "BitEnum" {
			enums = append(enums, k)
		}
	}
	sort.Slice(enums, func(i, j int) bool { return enums[i].Kind < enums[j].Kind })

	// Later entries sharing an opcode are aliases.
	insts := append([]instruction(nil), g.Instructions...)
	sort.SliceStable(insts, func(i, j int) bool { return insts[i].Opcode < insts[j].Opcode })
	seen := make(map[int]bool, len(insts))
	ops := insts[:0]
	for _, inst := range insts {
		if seen[inst.Opcode] {
			continue
		}
		seen[inst.Opcode] = true
		ops = append(ops, inst)
	}

	var b bytes.Buffer
	fmt.Fprintf(&b, "// Code generated by gen from %s. DO NOT EDIT.\n\n", source)
	b.WriteString("package spirv\n\n")
	fmt.Fprintf(&b, "// SPIR-V grammar %d.%d revision %d.\n\n", g.MajorVersion, g.MinorVersion, g.Revision)

	b.WriteString("const (\n")
	for _, inst := range ops {
		fmt.Fprintf(&b, "\t%s Op = %d\n", inst.OpName, inst.Opcode)
	}
	b.WriteString(")\n\n")

	b.WriteString("const (\n")
	for i, k := range enums {
		if i == 0 {
			fmt.Fprintf(&b, "\tKind%s OperandKind = kindEnumBase + iota\n", k.Kind)
			continue
		}
		fmt.Fprintf(&b, "\tKind%s\n", k.Kind)
	}
	b.WriteString(")\n\n")

	b.WriteString("var grammar = map[Op]opInfo{\n")
	for _, inst := range ops {
		var hasType, hasResult bool
		var specs []string
		for _, o := range inst.Operands {
			switch o.Kind {
			case "IdResultType":
				hasType = true
				continue
			case "IdResult":
				hasResult = true
				continue
			}
			kind, err := goKind(o.Kind, categories)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", inst.OpName, err)
			}
			q, ok := quantifiers[o.Quantifier]
			if !ok {
				return nil, fmt.Errorf("%s: unknown quantifier %q", inst.OpName, o.Quantifier)
			}
			specs = append(specs, "{"+kind+", "+q+"}")
		}
		list := "nil"
		if len(specs) > 0 {
			list = "[]operandSpec{" + strings.Join(specs, ", ") + "}"
		}
		fmt.Fprintf(&b, "\t%s: {%q, %t, %t, %s},\n",
			inst.OpName, strings.TrimPrefix(inst.OpName, "Op"), hasType, hasResult, list)
	}
	b.WriteString("}\n\n")

	b.WriteString("var enumKinds = map[OperandKind]enumKind{\n")
	for _, k := range enums {
		bitmask := k.Category == "BitEnum"
		fmt.Fprintf(&b, "\tKind%s: {\n", k.Kind)
		fmt.Fprintf(&b, "\t\tname: %q,\n", k.Kind)
		if bitmask {
			b.WriteString("\t\tbitmask: true,\n")
		}
		b.WriteString("\t\tvalues: map[uint32]enumerant{\n")
		values := make(map[uint32]bool, len(k.Enumerants))
		for _, e := range k.Enumerants {
			v, err := e.value()
			if err != nil {
				return nil, fmt.Errorf("%s.%s: %w", k.Kind, e.Enumerant, err)
			}
			if values[v] {
				continue
			}
			values[v] = true
			key := strconv.FormatUint(uint64(v), 10)
			if bitmask {
				key = fmt.Sprintf("0x%04x", v)
			}
			fmt.Fprintf(&b, "\t\t\t%s: {name: %q", key, e.Enumerant)
			if len(e.Parameters) > 0 {
				params := make([]string, len(e.Parameters))
				for i, p := range e.Parameters {
					kind, err := goKind(p.Kind, categories)
					if err != nil {
						return nil, fmt.Errorf("%s.%s: %w", k.Kind, e.Enumerant, err)
					}
					params[i] = kind
				}
				fmt.Fprintf(&b, ", params: []OperandKind{%s}", strings.Join(params, ", "))
			}
			b.WriteString("},\n")
		}
		b.WriteString("\t\t},\n\t},\n")
	}
	b.WriteString("}\n")

	return format.Source(b.Bytes())
}

// goKind maps a grammar operand kind to the OperandKind constant the decoder
// uses for it. Every id category collapses to KindIDRef and every other
// single-word literal to KindLiteralInteger.
func goKind(kind string, categories map[string]string) (string, error) {
	switch kind {
	case "LiteralString", "LiteralContextDependentNumber", "LiteralSpecConstantOpInteger",
		"PairLiteralIntegerIdRef", "PairIdRefLiteralInteger", "PairIdRefIdRef":
		return "Kind" + strings.ReplaceAll(kind, "IdRef", "IDRef"), nil
	}
	switch categories[kind] {
	case "Id":
		return "KindIDRef", nil
	case "Literal":
		return "KindLiteralInteger", nil
	case "ValueEnum", "BitEnum":
		return "Kind" + kind, nil
	}
	return "", fmt.Errorf("unsupported operand kind %q", kind)
}
