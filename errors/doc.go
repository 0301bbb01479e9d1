// Package errors provides structured error types for the spvpack transcoder.
//
// Errors are categorized by Phase (where in the pipeline the error occurred)
// and Kind (error category). The Error type carries the offending file name,
// the byte offset for stream errors, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseWalk, errors.KindOutOfBounds).
//		Offset(0x24).
//		Detail("instruction declares 16 bytes with 8 remaining").
//		Build()
//
// Or use convenience constructors for the validator's checks:
//
//	err := errors.BadMagic("shader.spv", 0xDEADBEEF)
//	err := errors.Truncated(0x24, 16, 8)
//
// All errors implement the standard error interface. errors.Is matches on
// Phase and Kind, so each validator check stays a distinct diagnostic.
package errors
