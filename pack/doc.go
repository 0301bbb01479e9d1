// Package pack builds the compact shader artifacts the spvpack tool
// emits, and decodes them back for verification.
//
// Two mutually exclusive layouts exist. The transposed layout groups
// bytes of similar statistical distribution into planes so a downstream
// general-purpose compressor shrinks the artifact further:
//
//	8 bytes   reserved, zero (handle slot for the runtime consumer)
//	u16le     total retained word count
//	u16le     retained instruction count
//	u16le     version tag (version word >> 8)
//	u16le     id bound
//	planes    opcode-lo, count-lo, operand-byte0,
//	          opcode-hi, count-hi, operand-byte1..byte3
//
// The flat layout preserves the original header and keeps instructions
// in record order:
//
//	u16le     total retained word count
//	2 bytes   padding
//	20 bytes  original module header, verbatim
//	records   u16le opcode, u16le word count, operand words verbatim
//
// Every plane of the transposed layout is produced by an independent
// walk over the raw module; the dead-instruction filter is a pure
// function of the opcode, so all nine passes observe the same retained
// set in the same order.
//
// The runtime consumer of these artifacts lives outside this
// repository. The 8 reserved bytes are assumed to be overwritten in
// place with a resolved shader-object handle, and planes reassembled
// positionally; DecodeTransposed and DecodeFlat implement that
// assumption so the layouts stay testable here.
package pack
