package spirv

// SPIR-V binary format magic number and framing constants.
const (
	// Magic is the SPIR-V binary magic number in little-endian byte order.
	Magic uint32 = 0x07230203

	// MagicSwapped is the magic as produced by a big-endian writer.
	// Rejected with a distinct diagnostic rather than the generic one.
	MagicSwapped uint32 = 0x03022307

	// WordSize is the unit of the instruction encoding in bytes.
	WordSize = 4

	// HeaderSize is the fixed module header length in bytes.
	HeaderSize = 20

	// MinModuleSize is the smallest accepted input: the header plus one
	// trivial single-word instruction.
	MinModuleSize = HeaderSize + WordSize

	// MaxModuleSize is the input capacity. An input exactly this large is
	// rejected; the last byte is kept as a truncation-safety margin.
	MaxModuleSize = 256 << 10

	// MaxBound is the largest id bound the packed formats can carry;
	// both store the bound in two bytes.
	MaxBound = 0xFFFF
)

// Header field byte offsets within the 20-byte module header.
const (
	offMagic     = 0
	offVersion   = 4
	offGenerator = 8
	offBound     = 12
	offSchema    = 16
)

// versionReservedMask selects the version word's reserved high and low
// bytes; both must be zero, leaving only the major/minor pair.
const versionReservedMask uint32 = 0xFF0000FF

// Opcode is a 16-bit SPIR-V operation identifier, the low half of an
// instruction's first word.
type Opcode uint16

// Opcodes the transcoder classifies or names. Numbering follows the
// SPIR-V specification.
const (
	OpNop              Opcode = 0
	OpUndef            Opcode = 1
	OpSourceContinued  Opcode = 2
	OpSource           Opcode = 3
	OpSourceExtension  Opcode = 4
	OpName             Opcode = 5
	OpMemberName       Opcode = 6
	OpString           Opcode = 7
	OpLine             Opcode = 8
	OpExtension        Opcode = 10
	OpExtInstImport    Opcode = 11
	OpExtInst          Opcode = 12
	OpMemoryModel      Opcode = 14
	OpEntryPoint       Opcode = 15
	OpExecutionMode    Opcode = 16
	OpCapability       Opcode = 17
	OpTypeVoid         Opcode = 19
	OpTypeBool         Opcode = 20
	OpTypeInt          Opcode = 21
	OpTypeFloat        Opcode = 22
	OpTypeVector       Opcode = 23
	OpTypeMatrix       Opcode = 24
	OpTypePointer      Opcode = 32
	OpTypeFunction     Opcode = 33
	OpConstantTrue     Opcode = 41
	OpConstantFalse    Opcode = 42
	OpConstant         Opcode = 43
	OpFunction         Opcode = 54
	OpFunctionParam    Opcode = 55
	OpFunctionEnd      Opcode = 56
	OpFunctionCall     Opcode = 57
	OpVariable         Opcode = 59
	OpLoad             Opcode = 61
	OpStore            Opcode = 62
	OpAccessChain      Opcode = 65
	OpDecorate         Opcode = 71
	OpMemberDecorate   Opcode = 72
	OpVectorShuffle    Opcode = 79
	OpCompositeExtract Opcode = 81
	OpFAdd             Opcode = 129
	OpFMul             Opcode = 133
	OpDot              Opcode = 148
	OpLabel            Opcode = 248
	OpBranch           Opcode = 249
	OpReturn           Opcode = 253
	OpReturnValue      Opcode = 254
	OpNoLine           Opcode = 317
	OpModuleProcessed  Opcode = 330
)
