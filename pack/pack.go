package pack

import (
	"go.uber.org/zap"

	"github.com/gpukit/spvpack/spirv"
)

// Options configures one encode operation. It is immutable for the
// duration of the operation; no state survives between invocations.
type Options struct {
	// Name is the identifier declared by the source-array sink.
	Name string

	// RemoveUnused drops instructions with no effect on the decoded
	// shader (debug, line, name and source metadata).
	RemoveUnused bool

	// Shuffle selects the byte-plane transposed layout. When false the
	// flat header-preserving layout is used instead.
	Shuffle bool

	// Binary selects raw binary emission instead of a source array.
	Binary bool
}

// Encode validates the module and builds the packed artifact selected
// by the options. The output is a pure function of the input bytes and
// the options: encoding the same module twice is byte-identical.
func Encode(file string, data []byte, opts Options) ([]byte, error) {
	header, err := spirv.Validate(file, data)
	if err != nil {
		return nil, err
	}

	var out []byte
	if opts.Shuffle {
		out, err = encodeTransposed(header, data, opts.RemoveUnused)
	} else {
		out, err = encodeFlat(data, opts.RemoveUnused)
	}
	if err != nil {
		return nil, err
	}

	Logger().Debug("encoded module",
		zap.String("file", file),
		zap.Bool("transposed", opts.Shuffle),
		zap.Bool("remove_unused", opts.RemoveUnused),
		zap.Int("input_bytes", len(data)),
		zap.Int("output_bytes", len(out)),
	)
	return out, nil
}
