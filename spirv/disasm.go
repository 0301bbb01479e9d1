package spirv

import (
	"fmt"
	"strings"
)

// opcodeNames covers the opcodes the transcoder names in listings.
// Anything else is rendered numerically; the listing is an inspection
// aid, not a round-trippable assembly form.
var opcodeNames = map[Opcode]string{
	OpNop:              "OpNop",
	OpUndef:            "OpUndef",
	OpSourceContinued:  "OpSourceContinued",
	OpSource:           "OpSource",
	OpSourceExtension:  "OpSourceExtension",
	OpName:             "OpName",
	OpMemberName:       "OpMemberName",
	OpString:           "OpString",
	OpLine:             "OpLine",
	OpExtension:        "OpExtension",
	OpExtInstImport:    "OpExtInstImport",
	OpExtInst:          "OpExtInst",
	OpMemoryModel:      "OpMemoryModel",
	OpEntryPoint:       "OpEntryPoint",
	OpExecutionMode:    "OpExecutionMode",
	OpCapability:       "OpCapability",
	OpTypeVoid:         "OpTypeVoid",
	OpTypeBool:         "OpTypeBool",
	OpTypeInt:          "OpTypeInt",
	OpTypeFloat:        "OpTypeFloat",
	OpTypeVector:       "OpTypeVector",
	OpTypeMatrix:       "OpTypeMatrix",
	OpTypePointer:      "OpTypePointer",
	OpTypeFunction:     "OpTypeFunction",
	OpConstantTrue:     "OpConstantTrue",
	OpConstantFalse:    "OpConstantFalse",
	OpConstant:         "OpConstant",
	OpFunction:         "OpFunction",
	OpFunctionParam:    "OpFunctionParameter",
	OpFunctionEnd:      "OpFunctionEnd",
	OpFunctionCall:     "OpFunctionCall",
	OpVariable:         "OpVariable",
	OpLoad:             "OpLoad",
	OpStore:            "OpStore",
	OpAccessChain:      "OpAccessChain",
	OpDecorate:         "OpDecorate",
	OpMemberDecorate:   "OpMemberDecorate",
	OpVectorShuffle:    "OpVectorShuffle",
	OpCompositeExtract: "OpCompositeExtract",
	OpFAdd:             "OpFAdd",
	OpFMul:             "OpFMul",
	OpDot:              "OpDot",
	OpLabel:            "OpLabel",
	OpBranch:           "OpBranch",
	OpReturn:           "OpReturn",
	OpReturnValue:      "OpReturnValue",
	OpNoLine:           "OpNoLine",
	OpModuleProcessed:  "OpModuleProcessed",
}

// String returns the opcode's SPIR-V name, or "Op<n>" when unnamed.
func (op Opcode) String() string {
	if name, ok := opcodeNames[op]; ok {
		return name
	}
	return fmt.Sprintf("Op%d", uint16(op))
}

// Disassemble renders a validated module as a human-readable listing:
// a header summary followed by one line per retained instruction. Used
// by the CLI list mode and the interactive inspector.
func Disassemble(data []byte, removeUnused bool) (string, error) {
	h := parseHeader(data)

	var b strings.Builder
	fmt.Fprintf(&b, "; SPIR-V %d.%d\n", h.VersionMajor(), h.VersionMinor())
	fmt.Fprintf(&b, "; generator 0x%08X\n", h.Generator)
	fmt.Fprintf(&b, "; bound %d\n", h.Bound)

	err := Walk(data, removeUnused, func(ins Instruction) error {
		fmt.Fprintf(&b, "0x%06X  %-20s", ins.Offset, ins.Opcode)
		for i := 0; i < ins.OperandCount(); i++ {
			fmt.Fprintf(&b, " %#x", ins.Operand(i))
		}
		b.WriteByte('\n')
		return nil
	})
	if err != nil {
		return "", err
	}
	return b.String(), nil
}
