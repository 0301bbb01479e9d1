package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in the transcode pipeline the error occurred
type Phase string

const (
	PhaseValidate Phase = "validate" // header validation
	PhaseWalk     Phase = "walk"     // instruction stream traversal
	PhaseEncode   Phase = "encode"   // output buffer construction
	PhaseDecode   Phase = "decode"   // artifact decoding
	PhaseEmit     Phase = "emit"     // artifact serialization
)

// Kind categorizes the error
type Kind string

const (
	KindTooSmall      Kind = "too_small"       // input below minimum module size
	KindMisaligned    Kind = "misaligned"      // input size not word-aligned
	KindTooLarge      Kind = "too_large"       // input at or above capacity
	KindBadMagic      Kind = "bad_magic"       // first word is not the magic
	KindByteOrder     Kind = "byte_order"      // byte-swapped magic (big-endian producer)
	KindUnsupported   Kind = "unsupported"     // version outside the accepted range
	KindBoundOverflow Kind = "bound_overflow"  // id bound does not fit in 16 bits
	KindReserved      Kind = "reserved"        // reserved schema word non-zero
	KindZeroWordCount Kind = "zero_word_count" // instruction declares zero words
	KindOutOfBounds   Kind = "out_of_bounds"   // instruction reads past buffer end
	KindInvalidData   Kind = "invalid_data"    // malformed artifact or field
	KindIO            Kind = "io"              // open/read/write failure
)

// Error is the structured error type used throughout the transcoder
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	File   string
	Detail string
	Offset int
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.File != "" {
		b.WriteString(": ")
		b.WriteString(e.File)
	}

	if e.Offset > 0 {
		fmt.Fprintf(&b, " at offset 0x%X", e.Offset)
	}

	if e.Detail != "" {
		if e.File != "" || e.Offset > 0 {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error. Two Errors match when
// their Phase and Kind agree, so callers can assert distinct diagnostics
// without string comparison.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// File names the offending input or output file
func (b *Builder) File(name string) *Builder {
	b.err.File = name
	return b
}

// Offset records the byte offset the error was detected at
func (b *Builder) Offset(off int) *Builder {
	b.err.Offset = off
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for the validator's ordered checks

// TooSmall reports an input below the minimum module size
func TooSmall(file string, size, min int) *Error {
	return &Error{
		Phase:  PhaseValidate,
		Kind:   KindTooSmall,
		File:   file,
		Detail: fmt.Sprintf("%d bytes, minimum module size is %d", size, min),
		Value:  size,
	}
}

// Misaligned reports an input whose size is not a multiple of the word size
func Misaligned(file string, size int) *Error {
	return &Error{
		Phase:  PhaseValidate,
		Kind:   KindMisaligned,
		File:   file,
		Detail: fmt.Sprintf("size %d is not word-aligned", size),
		Value:  size,
	}
}

// TooLarge reports an input at or above the accepted capacity
func TooLarge(file string, size, capacity int) *Error {
	return &Error{
		Phase:  PhaseValidate,
		Kind:   KindTooLarge,
		File:   file,
		Detail: fmt.Sprintf("%d bytes, capacity is %d", size, capacity),
		Value:  size,
	}
}

// BadMagic reports a first word that is not the module magic
func BadMagic(file string, got uint32) *Error {
	return &Error{
		Phase:  PhaseValidate,
		Kind:   KindBadMagic,
		File:   file,
		Detail: fmt.Sprintf("not a SPIR-V module (magic 0x%08X)", got),
		Value:  got,
	}
}

// ByteOrder reports a byte-swapped magic word
func ByteOrder(file string) *Error {
	return &Error{
		Phase:  PhaseValidate,
		Kind:   KindByteOrder,
		File:   file,
		Detail: "big-endian input not supported",
	}
}

// UnsupportedVersion reports a version word outside the accepted range
func UnsupportedVersion(file string, word uint32) *Error {
	return &Error{
		Phase:  PhaseValidate,
		Kind:   KindUnsupported,
		File:   file,
		Detail: fmt.Sprintf("unsupported version word 0x%08X", word),
		Value:  word,
	}
}

// BoundOverflow reports an id bound that does not fit in 16 bits
func BoundOverflow(file string, bound uint32) *Error {
	return &Error{
		Phase:  PhaseValidate,
		Kind:   KindBoundOverflow,
		File:   file,
		Detail: fmt.Sprintf("id bound %d exceeds 16 bits", bound),
		Value:  bound,
	}
}

// ReservedNonzero reports a non-zero reserved schema word
func ReservedNonzero(file string, word uint32) *Error {
	return &Error{
		Phase:  PhaseValidate,
		Kind:   KindReserved,
		File:   file,
		Detail: fmt.Sprintf("unrecognized reserved value 0x%08X", word),
		Value:  word,
	}
}

// Stream-structural errors detected during a walk

// ZeroWordCount reports an instruction declaring zero words
func ZeroWordCount(offset int) *Error {
	return &Error{
		Phase:  PhaseWalk,
		Kind:   KindZeroWordCount,
		Offset: offset,
		Detail: "instruction declares zero words",
	}
}

// Truncated reports an instruction whose declared length reads past the buffer
func Truncated(offset, declared, remaining int) *Error {
	return &Error{
		Phase:  PhaseWalk,
		Kind:   KindOutOfBounds,
		Offset: offset,
		Detail: fmt.Sprintf("instruction declares %d bytes with %d remaining", declared, remaining),
		Value:  declared,
	}
}

// InvalidData creates an invalid data error
func InvalidData(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Detail: detail,
	}
}

// IO wraps a filesystem error with the path it occurred on
func IO(file string, cause error) *Error {
	return &Error{
		Phase: PhaseEmit,
		Kind:  KindIO,
		File:  file,
		Cause: cause,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
