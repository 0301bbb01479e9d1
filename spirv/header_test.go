package spirv_test

import (
	stderrors "errors"
	"testing"

	"github.com/gpukit/spvpack/errors"
	"github.com/gpukit/spvpack/spirv"
)

func kindError(kind errors.Kind) *errors.Error {
	return &errors.Error{Phase: errors.PhaseValidate, Kind: kind}
}

func TestValidateAcceptsMinimalModule(t *testing.T) {
	h, err := spirv.Validate("min.spv", validModule())
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if h.Magic != spirv.Magic {
		t.Errorf("magic mismatch: 0x%08X", h.Magic)
	}
	if h.VersionMajor() != 1 || h.VersionMinor() != 3 {
		t.Errorf("expected version 1.3, got %d.%d", h.VersionMajor(), h.VersionMinor())
	}
	if h.VersionTag() != 0x0103 {
		t.Errorf("expected version tag 0x0103, got 0x%04X", h.VersionTag())
	}
	if h.Bound != 1 {
		t.Errorf("expected bound 1, got %d", h.Bound)
	}
	if h.Generator != testGenerator {
		t.Errorf("generator not carried through: 0x%08X", h.Generator)
	}
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		kind errors.Kind
	}{
		{
			// A bare header has no room for even a trivial instruction.
			name: "header only",
			data: buildModule(0x00010000, 1),
			kind: errors.KindTooSmall,
		},
		{
			name: "empty input",
			data: nil,
			kind: errors.KindTooSmall,
		},
		{
			name: "misaligned size",
			data: append(validModule(), 0xAA),
			kind: errors.KindMisaligned,
		},
		{
			name: "byte-swapped magic",
			data: swapWord(validModule(), 0),
			kind: errors.KindByteOrder,
		},
		{
			name: "garbage magic",
			data: patchWord(validModule(), 0, 0xDEADBEEF),
			kind: errors.KindBadMagic,
		},
		{
			name: "version high byte set",
			data: patchWord(validModule(), 4, 0x01010000),
			kind: errors.KindUnsupported,
		},
		{
			name: "version low byte set",
			data: patchWord(validModule(), 4, 0x00010001),
			kind: errors.KindUnsupported,
		},
		{
			name: "version beyond ceiling",
			data: patchWord(validModule(), 4, 0x00020000),
			kind: errors.KindUnsupported,
		},
		{
			name: "bound overflows 16 bits",
			data: patchWord(validModule(), 12, 0x10000),
			kind: errors.KindBoundOverflow,
		},
		{
			name: "reserved schema word set",
			data: patchWord(validModule(), 16, 7),
			kind: errors.KindReserved,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := spirv.Validate("bad.spv", tt.data)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !stderrors.Is(err, kindError(tt.kind)) {
				t.Errorf("expected kind %q, got %v", tt.kind, err)
			}
		})
	}
}

func TestValidateBigEndianIsDistinct(t *testing.T) {
	_, err := spirv.Validate("be.spv", swapWord(validModule(), 0))
	if !stderrors.Is(err, kindError(errors.KindByteOrder)) {
		t.Fatalf("expected byte_order diagnostic, got %v", err)
	}
	if stderrors.Is(err, kindError(errors.KindBadMagic)) {
		t.Error("big-endian diagnostic must not match the generic bad_magic")
	}
}

func TestValidateCapacityBoundary(t *testing.T) {
	// Fill the module with OpNops up to the exact capacity.
	fill := func(total int) []byte {
		nops := (total - spirv.HeaderSize) / spirv.WordSize
		instructions := make([][]uint32, nops)
		for i := range instructions {
			instructions[i] = ins(spirv.OpNop)
		}
		return buildModule(0x00010000, 1, instructions...)
	}

	atCapacity := fill(spirv.MaxModuleSize)
	if len(atCapacity) != spirv.MaxModuleSize {
		t.Fatalf("fixture is %d bytes, want %d", len(atCapacity), spirv.MaxModuleSize)
	}
	if _, err := spirv.Validate("cap.spv", atCapacity); !stderrors.Is(err, kindError(errors.KindTooLarge)) {
		t.Errorf("input exactly at capacity must be rejected, got %v", err)
	}

	oneWordUnder := fill(spirv.MaxModuleSize - spirv.WordSize)
	if _, err := spirv.Validate("cap.spv", oneWordUnder); err != nil {
		t.Errorf("input below capacity should validate: %v", err)
	}
}

func TestValidateBoundBoundary(t *testing.T) {
	atMax := patchWord(validModule(), 12, 0xFFFF)
	if _, err := spirv.Validate("bound.spv", atMax); err != nil {
		t.Errorf("bound 0xFFFF should be accepted: %v", err)
	}

	over := patchWord(validModule(), 12, 0x10000)
	if _, err := spirv.Validate("bound.spv", over); !stderrors.Is(err, kindError(errors.KindBoundOverflow)) {
		t.Errorf("bound 0x10000 must be rejected, got %v", err)
	}
}

func TestValidateNamesFile(t *testing.T) {
	_, err := spirv.Validate("shader.frag.spv", nil)
	if err == nil {
		t.Fatal("expected error")
	}
	var e *errors.Error
	if !stderrors.As(err, &e) {
		t.Fatalf("expected structured error, got %T", err)
	}
	if e.File != "shader.frag.spv" {
		t.Errorf("diagnostic does not name the file: %q", e.File)
	}
}

// patchWord returns a copy of data with the little-endian word at byte
// offset off replaced.
func patchWord(data []byte, off int, v uint32) []byte {
	out := append([]byte(nil), data...)
	out[off] = byte(v)
	out[off+1] = byte(v >> 8)
	out[off+2] = byte(v >> 16)
	out[off+3] = byte(v >> 24)
	return out
}

// swapWord returns a copy of data with the word at off byte-reversed.
func swapWord(data []byte, off int) []byte {
	out := append([]byte(nil), data...)
	out[off], out[off+1], out[off+2], out[off+3] = out[off+3], out[off+2], out[off+1], out[off]
	return out
}
