package pack_test

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/gpukit/spvpack/pack"
	"github.com/gpukit/spvpack/spirv"
)

func TestTransposedLayoutGolden(t *testing.T) {
	// Three operand words across four instructions, one of them with a
	// non-zero opcode high byte (OpNoLine = 0x013D).
	module := buildModule(0x00010000, 4,
		ins(spirv.OpCapability, 1),
		ins(spirv.OpDecorate, 0xAABBCCDD, 0x11223344),
		ins(spirv.OpNoLine),
		ins(spirv.OpFunctionEnd),
	)

	got, err := pack.Encode("g.spv", module, pack.Options{Shuffle: true})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	want := []byte{
		0, 0, 0, 0, 0, 0, 0, 0, // reserved handle slot
		0x07, 0x00, // total retained words: 7
		0x04, 0x00, // retained instructions: 4
		0x00, 0x01, // version tag 1.0
		0x04, 0x00, // bound
		0x11, 0x47, 0x3D, 0x38, // opcode-lo
		0x01, 0x02, 0x00, 0x00, // count-lo
		0x01, 0xDD, 0x44, // operand-byte0
		0x00, 0x00, 0x01, 0x00, // opcode-hi
		0x00, 0x00, 0x00, 0x00, // count-hi
		0x00, 0xCC, 0x33, // operand-byte1
		0x00, 0xBB, 0x22, // operand-byte2
		0x00, 0xAA, 0x11, // operand-byte3
	}
	if !bytes.Equal(got, want) {
		t.Errorf("layout mismatch:\n got % X\nwant % X", got, want)
	}
}

func TestTransposedPlaneSizes(t *testing.T) {
	tests := []struct {
		name         string
		removeUnused bool
		module       []byte
	}{
		{"plain", false, sample()},
		{"filtered", true, sample()},
		{"single nop", false, buildModule(0x00010000, 1, ins(spirv.OpNop))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := pack.Encode("p.spv", tt.module, pack.Options{
				Shuffle:      true,
				RemoveUnused: tt.removeUnused,
			})
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}

			words := int(binary.LittleEndian.Uint16(out[pack.ReservedBytes:]))
			instructions := int(binary.LittleEndian.Uint16(out[pack.ReservedBytes+2:]))
			operands := words - instructions

			// Four one-byte-per-instruction planes and four
			// one-byte-per-operand-word planes after the 16-byte prefix.
			wantLen := pack.ReservedBytes + 8 + 4*instructions + 4*operands
			if len(out) != wantLen {
				t.Errorf("artifact is %d bytes, plane sizes require %d", len(out), wantLen)
			}

			gotIns, gotWords, err := spirv.Count(tt.module, tt.removeUnused)
			if err != nil {
				t.Fatalf("Count: %v", err)
			}
			if gotIns != instructions || gotWords != words {
				t.Errorf("count fields %d/%d disagree with walk %d/%d",
					instructions, words, gotIns, gotWords)
			}
		})
	}
}

func TestTransposedNopModule(t *testing.T) {
	module := buildModule(0x00010000, 1, ins(spirv.OpNop))

	filtered, err := pack.Encode("nop.spv", module, pack.Options{Shuffle: true, RemoveUnused: true})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if got := binary.LittleEndian.Uint16(filtered[pack.ReservedBytes+2:]); got != 0 {
		t.Errorf("expected zero retained instructions, got %d", got)
	}
	// Nothing but the prefix remains.
	if len(filtered) != pack.ReservedBytes+8 {
		t.Errorf("expected %d-byte artifact, got %d", pack.ReservedBytes+8, len(filtered))
	}

	plain, err := pack.Encode("nop.spv", module, pack.Options{Shuffle: true})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if got := binary.LittleEndian.Uint16(plain[pack.ReservedBytes+2:]); got != 1 {
		t.Errorf("expected one retained instruction without filtering, got %d", got)
	}
}
