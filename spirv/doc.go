// Package spirv provides SPIR-V binary module validation and
// instruction-stream traversal.
//
// The package works directly on raw module bytes. Validate checks the
// fixed 20-byte header for structural soundness; Walk then iterates the
// instruction stream, invoking a visitor per retained instruction. The
// walker is stateless and re-entrant: the packed encoders call it once
// per output plane and rely on every pass observing the same retained
// set in the same order, which holds because the dead-instruction
// filter is a pure function of the opcode.
//
// Validate a module and list its instructions:
//
//	header, err := spirv.Validate("shader.spv", data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = spirv.Walk(data, false, func(ins spirv.Instruction) error {
//	    fmt.Println(ins.Opcode, ins.OperandCount())
//	    return nil
//	})
//
// Only structural well-formedness is checked: enough to walk the stream
// safely. Semantic validation (types, control flow) is out of scope.
package spirv
