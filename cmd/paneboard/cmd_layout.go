package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sadopc/paneboard/internal/core/board"
	"github.com/sadopc/paneboard/internal/ui/layout"
)

func layoutCmd() {
	fs := flag.NewFlagSet("layout", flag.ExitOnError)
	widthFlag := fs.Int("width", 120, "Terminal width in columns")
	heightFlag := fs.Int("height", 40, "Terminal height in rows")
	pageFlag := fs.String("page", "", "Only print the named page")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: paneboard layout [flags] <board.yaml>\n\n")
		fmt.Fprintf(os.Stderr, "Print the columns each panel occupies at a terminal size.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  paneboard layout board.yaml\n")
		fmt.Fprintf(os.Stderr, "  paneboard layout --width 80 --page Main board.yaml\n")
	}

	if err := fs.Parse(os.Args[2:]); err != nil {
		os.Exit(1)
	}

	if fs.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Error: exactly one board file is required\n\n")
		fs.Usage()
		os.Exit(1)
	}

	b, err := board.LoadFromFile(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := printLayout(os.Stdout, b, *pageFlag, *widthFlag, *heightFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printLayout(w io.Writer, b *board.Board, page string, width, height int) error {
	if width <= 0 {
		return fmt.Errorf("width must be positive, got %d", width)
	}

	found := false
	for _, p := range b.Pages {
		if page != "" && p.Name != page {
			continue
		}
		found = true
		l := layout.Calculate(width, height, p.Widths())
		fmt.Fprintf(w, "# %s (%dx%d)\n", p.Name, width, l.ContentHeight)
		fmt.Fprint(w, layout.Describe(p.Panels, l))
	}
	if !found {
		return fmt.Errorf("page %q not found", page)
	}
	return nil
}
