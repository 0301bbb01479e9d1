package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/gpukit/spvpack/pack"
	"github.com/gpukit/spvpack/spirv"
)

func main() {
	var (
		removeUnused = flag.Bool("remove-unused", false, "Drop instructions with no effect on the decoded shader")
		noShuffle    = flag.Bool("no-shuffle", false, "Use the flat layout instead of byte-plane transposition")
		binaryOut    = flag.Bool("binary", false, "Write the raw artifact instead of a source array")
		pkgName      = flag.String("pkg", "shaders", "Package name for source-array output")
		list         = flag.Bool("list", false, "List the module's retained instructions and exit")
		interactive  = flag.Bool("i", false, "Interactive inspector TUI")
		verbose      = flag.Bool("v", false, "Verbose logging")
	)
	flag.Parse()

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		pack.SetLogger(logger)
	}

	opts := pack.Options{
		RemoveUnused: *removeUnused,
		Shuffle:      !*noShuffle,
		Binary:       *binaryOut,
	}

	switch {
	case *interactive:
		if flag.NArg() != 1 {
			usage()
		}
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode needs a terminal")
			os.Exit(1)
		}
		if err := runInteractive(flag.Arg(0), opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

	case *list:
		if flag.NArg() != 1 {
			usage()
		}
		if err := listModule(flag.Arg(0), *removeUnused); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

	default:
		if flag.NArg() != 3 {
			usage()
		}
		opts.Name = flag.Arg(0)
		if err := run(flag.Arg(1), flag.Arg(2), *pkgName, opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: spirv-encode [-remove-unused] [-no-shuffle] [-binary] <NAME> <INPUT> <OUTPUT>")
	fmt.Fprintln(os.Stderr, "       spirv-encode [-remove-unused] -list <INPUT>")
	fmt.Fprintln(os.Stderr, "       spirv-encode -i <INPUT>  (interactive inspector)")
	os.Exit(1)
}

func run(inputFile, outputFile, pkgName string, opts pack.Options) error {
	data, err := os.ReadFile(inputFile)
	if err != nil {
		return fmt.Errorf("read %s: %w", inputFile, err)
	}

	encoded, err := pack.Encode(inputFile, data, opts)
	if err != nil {
		return err
	}

	if opts.Binary {
		return pack.EmitBinary(outputFile, encoded)
	}
	return pack.EmitSource(outputFile, pkgName, opts.Name, encoded)
}

func listModule(inputFile string, removeUnused bool) error {
	data, err := os.ReadFile(inputFile)
	if err != nil {
		return fmt.Errorf("read %s: %w", inputFile, err)
	}

	if _, err := spirv.Validate(inputFile, data); err != nil {
		return err
	}
	listing, err := spirv.Disassemble(data, removeUnused)
	if err != nil {
		return err
	}
	fmt.Print(listing)
	return nil
}
