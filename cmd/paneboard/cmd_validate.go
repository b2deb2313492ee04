package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/sadopc/paneboard/internal/core/board"
)

func validateCmd() {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: paneboard validate <board.yaml> [files...]\n\n")
		fmt.Fprintf(os.Stderr, "Validate board YAML files.\n\n")
		fmt.Fprintf(os.Stderr, "Examples:\n")
		fmt.Fprintf(os.Stderr, "  paneboard validate board.yaml\n")
		fmt.Fprintf(os.Stderr, "  paneboard validate boards/*.yaml\n")
	}

	if err := fs.Parse(os.Args[2:]); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Error: at least one file path is required\n\n")
		fs.Usage()
		os.Exit(1)
	}

	hasErrors := false
	for _, path := range fs.Args() {
		if err := validateFile(os.Stdout, path); err != nil {
			fmt.Fprintf(os.Stderr, "FAIL %s: %v\n", path, err)
			hasErrors = true
		}
	}

	if hasErrors {
		os.Exit(1)
	}
}

// validateFile checks one board file and prints a summary line to w when it
// is well formed.
func validateFile(w io.Writer, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading file: %w", err)
	}

	if len(data) == 0 {
		return fmt.Errorf("file is empty")
	}

	b, err := board.LoadFromBytes(data)
	if err != nil {
		return err
	}

	if warnings := board.Validate(b); len(warnings) > 0 {
		return fmt.Errorf("validation warnings:\n  - %s", strings.Join(warnings, "\n  - "))
	}

	panels := 0
	for _, p := range b.Pages {
		panels += len(p.Panels)
	}
	fmt.Fprintf(w, "OK   %s (%d pages, %d panels, %s)\n",
		path, len(b.Pages), panels, humanize.Bytes(uint64(len(data))))
	return nil
}
