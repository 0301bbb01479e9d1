// Package spvpack is a build-time transcoder that converts SPIR-V
// shader modules into compact, custom-framed artifacts for executables
// with severe size budgets.
//
// # Architecture Overview
//
// The library is organized into packages with distinct responsibilities:
//
//	spvpack/             Root package (documentation only)
//	├── spirv/           Header validation, instruction walking, disassembly
//	├── pack/            Transposed and flat encoders, decoders, output sinks
//	├── errors/          Structured error types with distinct diagnostics
//	├── internal/binary/ Word-oriented little-endian reader and writer
//	└── cmd/spirv-encode CLI front end with an interactive inspector
//
// # Quick Start
//
// Encode a module into the transposed layout and write it as a Go
// source array:
//
//	data, _ := os.ReadFile("shader.frag.spv")
//	artifact, err := pack.Encode("shader.frag.spv", data, pack.Options{
//	    Shuffle:      true,
//	    RemoveUnused: true,
//	    Name:         "fragShader",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = pack.EmitSource("shaders/frag.go", "shaders", "fragShader", artifact)
//
// # Design
//
// The transposed layout regroups instruction bytes into planes of
// similar statistical distribution so a downstream general-purpose
// compressor produces a smaller final artifact than an instruction-order
// dump would. Only structural well-formedness of the input is checked;
// semantic validation of the bytecode is out of scope, as is the
// runtime consumer that turns artifacts back into shader objects.
//
// Everything is single-threaded and deterministic: the output bytes are
// a pure function of the validated input bytes and the options.
package spvpack
