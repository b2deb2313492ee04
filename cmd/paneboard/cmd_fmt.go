package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"

	"github.com/sadopc/paneboard/internal/core/board"
	"github.com/sadopc/paneboard/internal/diff"
)

func fmtCmd() {
	fs := flag.NewFlagSet("fmt", flag.ExitOnError)
	writeFlag := fs.Bool("w", false, "Write result to file instead of stdout")
	checkFlag := fs.Bool("check", false, "Check if files are formatted (exit 1 if not)")
	diffFlag := fs.Bool("d", false, "Print a diff of the changes instead of the formatted file")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: paneboard fmt [flags] <board.yaml> [files...]\n\n")
		fmt.Fprintf(os.Stderr, "Format and normalize board YAML files.\n\n")
		fmt.Fprintf(os.Stderr, "By default, formatted output is written to stdout.\n")
		fmt.Fprintf(os.Stderr, "Use -w to write back to the source file.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  paneboard fmt board.yaml            # print formatted to stdout\n")
		fmt.Fprintf(os.Stderr, "  paneboard fmt -w board.yaml         # overwrite file in-place\n")
		fmt.Fprintf(os.Stderr, "  paneboard fmt -d board.yaml         # show what would change\n")
		fmt.Fprintf(os.Stderr, "  paneboard fmt --check *.yaml        # check formatting (CI)\n")
	}

	if err := fs.Parse(os.Args[2:]); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Error: at least one file path is required\n\n")
		fs.Usage()
		os.Exit(1)
	}

	hasUnformatted := false
	for _, path := range fs.Args() {
		formatted, changed, err := formatFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error formatting %s: %v\n", path, err)
			os.Exit(1)
		}

		switch {
		case *diffFlag:
			original, err := os.ReadFile(path)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", path, err)
				os.Exit(1)
			}
			fmt.Print(diff.Unified(string(original), string(formatted), path, path+" (formatted)", 3))
		case *checkFlag:
			if changed {
				fmt.Fprintf(os.Stderr, "UNFORMATTED %s\n", path)
				hasUnformatted = true
			} else {
				fmt.Printf("OK          %s\n", path)
			}
		case *writeFlag:
			if err := os.WriteFile(path, formatted, 0644); err != nil {
				fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", path, err)
				os.Exit(1)
			}
			fmt.Printf("Formatted %s\n", path)
		default:
			os.Stdout.Write(formatted)
		}
	}

	if *checkFlag && hasUnformatted {
		os.Exit(1)
	}
}

// formatFile parses and re-serializes a board, filling in missing panel IDs
// and the version. changed reports whether the output differs from the file.
func formatFile(path string) (formatted []byte, changed bool, err error) {
	original, err := os.ReadFile(path)
	if err != nil {
		return nil, false, fmt.Errorf("reading file: %w", err)
	}

	b, err := board.LoadFromBytes(original)
	if err != nil {
		return nil, false, fmt.Errorf("parsing: %w", err)
	}

	formatted, err = board.Marshal(b)
	if err != nil {
		return nil, false, fmt.Errorf("serializing: %w", err)
	}
	return formatted, !bytes.Equal(original, formatted), nil
}
