package spirv_test

import (
	"encoding/binary"

	"github.com/gpukit/spvpack/spirv"
)

// testGenerator is an arbitrary producer id; the validator ignores it.
const testGenerator uint32 = 0x00080001

// ins builds one encoded instruction: first word is wordcount<<16|opcode,
// followed by the operand words.
func ins(op spirv.Opcode, operands ...uint32) []uint32 {
	words := make([]uint32, 0, 1+len(operands))
	words = append(words, uint32(1+len(operands))<<16|uint32(op))
	return append(words, operands...)
}

// buildModule assembles a module from a header and instruction words.
func buildModule(version, bound uint32, instructions ...[]uint32) []byte {
	words := []uint32{spirv.Magic, version, testGenerator, bound, 0}
	for _, i := range instructions {
		words = append(words, i...)
	}
	out := make([]byte, len(words)*4)
	for i, w := range words {
		binary.LittleEndian.PutUint32(out[i*4:], w)
	}
	return out
}

// validModule is the smallest accepted module: header plus one OpNop.
func validModule() []byte {
	return buildModule(0x00010300, 1, ins(spirv.OpNop))
}
