package pack

import (
	"github.com/gpukit/spvpack/internal/binary"
	"github.com/gpukit/spvpack/spirv"
)

// encodeFlat builds the header-preserving layout: the retained word
// count, two bytes of alignment padding, the original 20-byte header
// verbatim, then each retained instruction as a fixed-width record.
func encodeFlat(module []byte, removeUnused bool) ([]byte, error) {
	_, words, err := spirv.Count(module, removeUnused)
	if err != nil {
		return nil, err
	}

	w := binary.NewWriter()
	w.WriteU16LE(uint16(words))
	w.Zeros(2)
	w.WriteBytes(module[:spirv.HeaderSize])

	err = spirv.Walk(module, removeUnused, func(ins spirv.Instruction) error {
		w.WriteU16LE(uint16(ins.Opcode))
		w.WriteU16LE(uint16(ins.WordCount()))
		w.WriteBytes(ins.Operands)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}
