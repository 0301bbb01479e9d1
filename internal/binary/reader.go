package binary

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrShortBuffer is returned when a read would pass the end of the buffer.
var ErrShortBuffer = errors.New("read past end of buffer")

// Reader walks a byte buffer as a stream of little-endian 32-bit words,
// tracking its position for diagnostics. SPIR-V has no variable-width
// integers, so every read is a fixed 1, 2 or 4 bytes.
type Reader struct {
	data []byte
	pos  int
}

// NewReader creates a Reader over the given buffer.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Position returns the current byte position.
func (r *Reader) Position() int {
	return r.pos
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.data) - r.pos
}

// Reset seeks to the given position.
func (r *Reader) Reset(pos int) error {
	if pos < 0 || pos > len(r.data) {
		return fmt.Errorf("reset to %d outside buffer of %d bytes", pos, len(r.data))
	}
	r.pos = pos
	return nil
}

// ReadByte reads a single byte and advances the position.
func (r *Reader) ReadByte() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, r.wrapError(ErrShortBuffer)
	}
	b := r.data[r.pos]
	r.pos++
	return b, nil
}

// ReadBytes reads exactly n bytes.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if n < 0 || r.pos+n > len(r.data) {
		return nil, r.wrapError(ErrShortBuffer)
	}
	buf := r.data[r.pos : r.pos+n]
	r.pos += n
	return buf, nil
}

// ReadU16 reads a little-endian uint16 (fixed 2 bytes).
func (r *Reader) ReadU16() (uint16, error) {
	buf, err := r.ReadBytes(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(buf), nil
}

// ReadWord reads a little-endian uint32 (fixed 4 bytes).
func (r *Reader) ReadWord() (uint32, error) {
	buf, err := r.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(buf), nil
}

// PeekWord reads the word at the current position without advancing.
func (r *Reader) PeekWord() (uint32, error) {
	if r.pos+4 > len(r.data) {
		return 0, r.wrapError(ErrShortBuffer)
	}
	return binary.LittleEndian.Uint32(r.data[r.pos:]), nil
}

// Skip advances the position by n bytes.
func (r *Reader) Skip(n int) error {
	if n < 0 || r.pos+n > len(r.data) {
		return r.wrapError(ErrShortBuffer)
	}
	r.pos += n
	return nil
}

// ReadRemaining returns all unread bytes.
func (r *Reader) ReadRemaining() []byte {
	buf := r.data[r.pos:]
	r.pos = len(r.data)
	return buf
}

func (r *Reader) wrapError(err error) error {
	return fmt.Errorf("at position %d: %w", r.pos, err)
}
