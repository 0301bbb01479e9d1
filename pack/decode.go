package pack

import (
	"fmt"

	"github.com/gpukit/spvpack/errors"
	"github.com/gpukit/spvpack/internal/binary"
	"github.com/gpukit/spvpack/spirv"
)

// Decoded is the instruction sequence recovered from a packed artifact.
// Flat artifacts carry the full original header; transposed artifacts
// carry only the version tag and bound, so Header is reconstructed with
// the magic and those two fields.
type Decoded struct {
	Header       spirv.Header
	Instructions []spirv.Instruction
}

// DecodeFlat reverses the flat layout.
func DecodeFlat(artifact []byte) (*Decoded, error) {
	r := binary.NewReader(artifact)

	words, err := r.ReadU16()
	if err != nil {
		return nil, errors.InvalidData(errors.PhaseDecode, "artifact shorter than its length field")
	}
	if err := r.Skip(2); err != nil {
		return nil, errors.InvalidData(errors.PhaseDecode, "artifact missing padding bytes")
	}

	headerBytes, err := r.ReadBytes(spirv.HeaderSize)
	if err != nil {
		return nil, errors.InvalidData(errors.PhaseDecode, "artifact missing module header")
	}
	d := &Decoded{Header: readHeader(headerBytes)}

	total := 0
	for r.Remaining() > 0 {
		opcode, err := r.ReadU16()
		if err != nil {
			return nil, errors.InvalidData(errors.PhaseDecode, "truncated instruction record")
		}
		wordCount, err := r.ReadU16()
		if err != nil {
			return nil, errors.InvalidData(errors.PhaseDecode, "truncated instruction record")
		}
		if wordCount == 0 {
			return nil, errors.InvalidData(errors.PhaseDecode, "record declares zero words")
		}
		operands, err := r.ReadBytes(int(wordCount-1) * spirv.WordSize)
		if err != nil {
			return nil, errors.InvalidData(errors.PhaseDecode, "record operands run past artifact end")
		}
		d.Instructions = append(d.Instructions, spirv.Instruction{
			Opcode:   spirv.Opcode(opcode),
			Operands: operands,
		})
		total += int(wordCount)
	}

	if total != int(words) {
		return nil, errors.InvalidData(errors.PhaseDecode,
			fmt.Sprintf("length field says %d words, records hold %d", words, total))
	}
	return d, nil
}

// DecodeTransposed reverses the byte-plane layout, reassembling each
// retained instruction positionally from the eight planes.
func DecodeTransposed(artifact []byte) (*Decoded, error) {
	r := binary.NewReader(artifact)

	reserved, err := r.ReadBytes(ReservedBytes)
	if err != nil {
		return nil, errors.InvalidData(errors.PhaseDecode, "artifact shorter than reserved region")
	}
	for _, b := range reserved {
		if b != 0 {
			return nil, errors.InvalidData(errors.PhaseDecode, "reserved region not zero")
		}
	}

	var words, instructions, versionTag, bound uint16
	for _, field := range []*uint16{&words, &instructions, &versionTag, &bound} {
		v, err := r.ReadU16()
		if err != nil {
			return nil, errors.InvalidData(errors.PhaseDecode, "artifact missing count fields")
		}
		*field = v
	}
	if words < instructions {
		return nil, errors.InvalidData(errors.PhaseDecode, "word count below instruction count")
	}

	numIns := int(instructions)
	numOps := int(words) - numIns
	if want := 4*numIns + 4*numOps; r.Remaining() != want {
		return nil, errors.InvalidData(errors.PhaseDecode,
			fmt.Sprintf("plane region is %d bytes, counts require %d", r.Remaining(), want))
	}

	plane := func(n int) []byte {
		p, _ := r.ReadBytes(n) // length verified above
		return p
	}
	opcodeLo := plane(numIns)
	countLo := plane(numIns)
	opByte0 := plane(numOps)
	opcodeHi := plane(numIns)
	countHi := plane(numIns)
	opByte1 := plane(numOps)
	opByte2 := plane(numOps)
	opByte3 := plane(numOps)

	d := &Decoded{
		Header: spirv.Header{
			Magic:   spirv.Magic,
			Version: uint32(versionTag) << 8,
			Bound:   uint32(bound),
		},
		Instructions: make([]spirv.Instruction, 0, numIns),
	}

	opIdx := 0
	for i := 0; i < numIns; i++ {
		operandCount := int(countLo[i]) | int(countHi[i])<<8
		if opIdx+operandCount > numOps {
			return nil, errors.InvalidData(errors.PhaseDecode, "operand counts exceed operand planes")
		}
		operands := make([]byte, operandCount*spirv.WordSize)
		for n := 0; n < operandCount; n++ {
			operands[n*4+0] = opByte0[opIdx+n]
			operands[n*4+1] = opByte1[opIdx+n]
			operands[n*4+2] = opByte2[opIdx+n]
			operands[n*4+3] = opByte3[opIdx+n]
		}
		opIdx += operandCount
		d.Instructions = append(d.Instructions, spirv.Instruction{
			Opcode:   spirv.Opcode(uint16(opcodeLo[i]) | uint16(opcodeHi[i])<<8),
			Operands: operands,
		})
	}
	if opIdx != numOps {
		return nil, errors.InvalidData(errors.PhaseDecode, "operand planes longer than counts account for")
	}
	return d, nil
}

// readHeader decodes the five header words of a flat artifact.
func readHeader(data []byte) spirv.Header {
	r := binary.NewReader(data)
	word := func() uint32 {
		w, _ := r.ReadWord() // caller sized the buffer
		return w
	}
	return spirv.Header{
		Magic:     word(),
		Version:   word(),
		Generator: word(),
		Bound:     word(),
		Schema:    word(),
	}
}
