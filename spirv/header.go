package spirv

import (
	"encoding/binary"

	"github.com/coreos/go-semver/semver"

	"github.com/gpukit/spvpack/errors"
)

// maxSupportedVersion is the newest SPIR-V version the transcoder accepts.
var maxSupportedVersion = semver.Version{Major: 1, Minor: 6}

// Header is the fixed 20-byte module prefix. It is read once during
// validation and never mutated.
type Header struct {
	Magic     uint32
	Version   uint32
	Generator uint32 // producer tool id, deliberately unchecked
	Bound     uint32
	Schema    uint32 // reserved, must be zero
}

// VersionMajor returns the major version byte.
func (h Header) VersionMajor() uint8 {
	return uint8(h.Version >> 16)
}

// VersionMinor returns the minor version byte.
func (h Header) VersionMinor() uint8 {
	return uint8(h.Version >> 8)
}

// VersionTag returns the major/minor byte pair as the 16-bit value the
// packed formats store: (version word >> 8) truncated to 16 bits.
func (h Header) VersionTag() uint16 {
	return uint16(h.Version >> 8)
}

// Semver returns the module version as a semantic version for gating.
func (h Header) Semver() semver.Version {
	return semver.Version{
		Major: int64(h.VersionMajor()),
		Minor: int64(h.VersionMinor()),
	}
}

// parseHeader reads the five header words. The caller has already
// checked the buffer is long enough.
func parseHeader(data []byte) Header {
	return Header{
		Magic:     binary.LittleEndian.Uint32(data[offMagic:]),
		Version:   binary.LittleEndian.Uint32(data[offVersion:]),
		Generator: binary.LittleEndian.Uint32(data[offGenerator:]),
		Bound:     binary.LittleEndian.Uint32(data[offBound:]),
		Schema:    binary.LittleEndian.Uint32(data[offSchema:]),
	}
}

// Validate checks the module for structural soundness before any
// instruction is read. Checks run in a fixed order and the first
// failure is returned as a distinct diagnostic naming the input file.
// On success it returns the parsed header.
func Validate(file string, data []byte) (Header, error) {
	if len(data) < MinModuleSize {
		return Header{}, errors.TooSmall(file, len(data), MinModuleSize)
	}
	if len(data)%WordSize != 0 {
		return Header{}, errors.Misaligned(file, len(data))
	}
	// Strict: an input exactly filling the capacity is rejected too.
	if len(data) >= MaxModuleSize {
		return Header{}, errors.TooLarge(file, len(data), MaxModuleSize)
	}

	h := parseHeader(data)

	if h.Magic != Magic {
		if h.Magic == MagicSwapped {
			return Header{}, errors.ByteOrder(file)
		}
		return Header{}, errors.BadMagic(file, h.Magic)
	}
	if h.Version&versionReservedMask != 0 {
		return Header{}, errors.UnsupportedVersion(file, h.Version)
	}
	if v := h.Semver(); maxSupportedVersion.LessThan(v) {
		return Header{}, errors.New(errors.PhaseValidate, errors.KindUnsupported).
			File(file).
			Value(h.Version).
			Detail("SPIR-V %s is newer than supported %s", v.String(), maxSupportedVersion.String()).
			Build()
	}
	if h.Bound > MaxBound {
		return Header{}, errors.BoundOverflow(file, h.Bound)
	}
	if h.Schema != 0 {
		return Header{}, errors.ReservedNonzero(file, h.Schema)
	}

	return h, nil
}
