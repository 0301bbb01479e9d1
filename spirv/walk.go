package spirv

import (
	"github.com/gpukit/spvpack/errors"
	"github.com/gpukit/spvpack/internal/binary"
)

// Visitor is invoked once per retained instruction, in stream order.
// Returning an error aborts the walk and surfaces the error unchanged.
type Visitor func(ins Instruction) error

// Walk iterates the instruction stream of a validated module, starting
// at the first byte after the header. Dropped instructions are skipped
// silently when removeUnused is set: the visitor is not invoked and the
// instruction is not counted.
//
// Walk holds no state between invocations. The drop filter is a pure
// function of the opcode, so repeated walks over the same buffer with
// the same flag observe an identical retained set in identical order;
// the multi-pass encoders depend on exactly that.
func Walk(module []byte, removeUnused bool, visit Visitor) error {
	r := binary.NewReader(module[HeaderSize:])

	for r.Remaining() > 0 {
		offset := HeaderSize + r.Position()

		first, err := r.ReadWord()
		if err != nil {
			// Cannot happen on a size-validated module, but the walker
			// does not assume its caller validated.
			return errors.Truncated(offset, WordSize, r.Remaining())
		}

		opcode := Opcode(first & 0xFFFF)
		wordCount := int(first >> 16)
		if wordCount == 0 {
			return errors.ZeroWordCount(offset)
		}

		operandBytes := (wordCount - 1) * WordSize
		if operandBytes > r.Remaining() {
			return errors.Truncated(offset, wordCount*WordSize, WordSize+r.Remaining())
		}

		operands, err := r.ReadBytes(operandBytes)
		if err != nil {
			return errors.Truncated(offset, wordCount*WordSize, WordSize+r.Remaining())
		}

		if removeUnused && opcode.Droppable() {
			continue
		}
		if visit != nil {
			if err := visit(Instruction{
				Opcode:   opcode,
				Offset:   offset,
				Operands: operands,
			}); err != nil {
				return err
			}
		}
	}
	return nil
}

// Count performs a counting-only walk and returns the number of
// retained instructions and their total word count, opcode words
// included.
func Count(module []byte, removeUnused bool) (instructions, words int, err error) {
	err = Walk(module, removeUnused, func(ins Instruction) error {
		instructions++
		words += ins.WordCount()
		return nil
	})
	if err != nil {
		return 0, 0, err
	}
	return instructions, words, nil
}
