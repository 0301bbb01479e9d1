package pack

import (
	"fmt"
	"os"
	"strings"

	"github.com/gpukit/spvpack/errors"
)

// bytesPerLine is the source-array line width in byte literals.
const bytesPerLine = 16

// EmitBinary writes the encoded buffer verbatim to path. On a failed or
// partial write the file is removed so no truncated artifact survives
// looking valid.
func EmitBinary(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		os.Remove(path)
		return errors.IO(path, err)
	}
	return nil
}

// EmitSource writes a generated Go source file declaring the artifact
// as a byte array named name inside package pkg, suitable for direct
// inclusion in a build.
func EmitSource(path, pkg, name string, data []byte) error {
	if err := os.WriteFile(path, FormatSource(pkg, name, data), 0o644); err != nil {
		os.Remove(path)
		return errors.IO(path, err)
	}
	return nil
}

// FormatSource renders the source-array declaration: hexadecimal byte
// literals, sixteen per line.
func FormatSource(pkg, name string, data []byte) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "// Code generated by spirv-encode. DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "package %s\n\n", pkg)
	fmt.Fprintf(&b, "var %s = []byte{\n", name)

	for i, v := range data {
		if i%bytesPerLine == 0 {
			b.WriteByte('\t')
		}
		fmt.Fprintf(&b, "0x%02X,", v)
		if i%bytesPerLine == bytesPerLine-1 {
			b.WriteByte('\n')
		} else {
			b.WriteByte(' ')
		}
	}
	if len(data)%bytesPerLine != 0 {
		// Trailing line has no padding space after the last literal.
		s := b.String()
		return []byte(strings.TrimRight(s, " ") + "\n}\n")
	}
	return []byte(b.String() + "}\n")
}
