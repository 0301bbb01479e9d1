package pack_test

import (
	"bytes"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gpukit/spvpack/errors"
	"github.com/gpukit/spvpack/pack"
)

func TestEmitBinary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.bin")
	data := []byte{0x01, 0x02, 0x03, 0xFF}

	if err := pack.EmitBinary(path, data); err != nil {
		t.Fatalf("EmitBinary: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Errorf("written bytes differ: % X", got)
	}
}

func TestEmitBinaryFailure(t *testing.T) {
	err := pack.EmitBinary(filepath.Join(t.TempDir(), "missing", "out.bin"), []byte{1})
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseEmit, Kind: errors.KindIO}) {
		t.Fatalf("expected io error, got %v", err)
	}
}

func TestEmitSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shader.go")
	data := make([]byte, 20)
	for i := range data {
		data[i] = byte(i)
	}

	if err := pack.EmitSource(path, "shaders", "blitFrag", data); err != nil {
		t.Fatalf("EmitSource: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	text := string(got)

	for _, want := range []string{
		"// Code generated by spirv-encode. DO NOT EDIT.",
		"package shaders",
		"var blitFrag = []byte{",
		"0x00, 0x01,",
		"0x13,\n}",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("source output missing %q:\n%s", want, text)
		}
	}
}

func TestFormatSourceLineWidth(t *testing.T) {
	data := make([]byte, 33) // two full lines and one straggler
	text := string(pack.FormatSource("shaders", "x", data))

	lines := strings.Split(text, "\n")
	var literalLines []string
	for _, l := range lines {
		if strings.HasPrefix(l, "\t0x") {
			literalLines = append(literalLines, l)
		}
	}
	if len(literalLines) != 3 {
		t.Fatalf("expected 3 literal lines, got %d:\n%s", len(literalLines), text)
	}
	if got := strings.Count(literalLines[0], "0x"); got != 16 {
		t.Errorf("expected 16 literals on a full line, got %d", got)
	}
	if got := strings.Count(literalLines[2], "0x"); got != 1 {
		t.Errorf("expected 1 literal on the last line, got %d", got)
	}
}

func TestFormatSourceExactMultiple(t *testing.T) {
	text := string(pack.FormatSource("shaders", "x", make([]byte, 16)))
	if !strings.HasSuffix(text, ",\n}\n") {
		t.Errorf("unexpected tail: %q", text[len(text)-8:])
	}
}
