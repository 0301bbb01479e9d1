package spirv

import "encoding/binary"

// Instruction is a decoded view of one instruction in the stream. It
// borrows its operand bytes from the module buffer; nothing is copied
// and nothing outlives the walk that produced it.
type Instruction struct {
	// Operands holds the operand words verbatim, little-endian,
	// WordCount-1 words of four bytes each.
	Operands []byte

	// Offset is the instruction's byte offset from the start of the
	// module, header included. Used only for diagnostics.
	Offset int

	// Opcode is the operation identifier from the first word's low half.
	Opcode Opcode
}

// OperandCount returns the number of operand words.
func (ins Instruction) OperandCount() int {
	return len(ins.Operands) / WordSize
}

// WordCount returns the instruction's total length in words, the
// opcode word included.
func (ins Instruction) WordCount() int {
	return 1 + ins.OperandCount()
}

// Operand returns operand word n as a uint32.
func (ins Instruction) Operand(n int) uint32 {
	return binary.LittleEndian.Uint32(ins.Operands[n*WordSize:])
}

// OperandByte returns byte pos (0..3, by significance) of operand word n.
// This is the transposed encoder's plane extraction primitive.
func (ins Instruction) OperandByte(n, pos int) byte {
	return ins.Operands[n*WordSize+pos]
}

// Droppable reports whether the opcode has no effect on the decoded
// shader's semantics: the no-op and the source, line, name, string and
// processed-marker metadata. Droppable instructions are removed when
// filtering is enabled; everything else is always retained.
func (op Opcode) Droppable() bool {
	switch op {
	case OpNop,
		OpSourceContinued,
		OpSource,
		OpSourceExtension,
		OpName,
		OpMemberName,
		OpString,
		OpLine,
		OpNoLine,
		OpModuleProcessed:
		return true
	}
	return false
}
