package pack

import (
	"github.com/gpukit/spvpack/internal/binary"
	"github.com/gpukit/spvpack/spirv"
)

// ReservedBytes is the length of the zeroed region at the head of a
// transposed artifact. The runtime consumer overwrites it in place with
// a resolved shader-object handle; the encoder never touches it.
const ReservedBytes = 8

// encodeTransposed builds the byte-plane layout. One counting pass
// computes the length fields, then eight independent walks extract one
// plane each. Planes over instructions are one byte per retained
// instruction; planes over operands are one byte per retained operand
// word, in (instruction, operand) order.
func encodeTransposed(header spirv.Header, module []byte, removeUnused bool) ([]byte, error) {
	instructions, words, err := spirv.Count(module, removeUnused)
	if err != nil {
		return nil, err
	}

	w := binary.NewWriter()
	w.Zeros(ReservedBytes)
	w.WriteU16LE(uint16(words))
	w.WriteU16LE(uint16(instructions))
	w.WriteU16LE(header.VersionTag())
	w.WriteU16LE(uint16(header.Bound))

	// Per-instruction planes come in lo/hi pairs around the first
	// operand plane; the hi planes are near-constant zero for valid
	// modules but the length fields depend on their presence.
	planes := []spirv.Visitor{
		func(ins spirv.Instruction) error { // opcode-lo
			w.Byte(byte(ins.Opcode))
			return nil
		},
		func(ins spirv.Instruction) error { // count-lo
			w.Byte(byte(ins.OperandCount()))
			return nil
		},
		operandPlane(w, 0), // operand-byte0
		func(ins spirv.Instruction) error { // opcode-hi
			w.Byte(byte(ins.Opcode >> 8))
			return nil
		},
		func(ins spirv.Instruction) error { // count-hi
			w.Byte(byte(ins.OperandCount() >> 8))
			return nil
		},
		operandPlane(w, 1),
		operandPlane(w, 2),
		operandPlane(w, 3),
	}

	for _, visit := range planes {
		if err := spirv.Walk(module, removeUnused, visit); err != nil {
			return nil, err
		}
	}
	return w.Bytes(), nil
}

// operandPlane extracts byte position pos of every retained operand word.
func operandPlane(w *binary.Writer, pos int) spirv.Visitor {
	return func(ins spirv.Instruction) error {
		for n := 0; n < ins.OperandCount(); n++ {
			w.Byte(ins.OperandByte(n, pos))
		}
		return nil
	}
}
