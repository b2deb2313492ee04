package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sadopc/paneboard/internal/core/board"
	"github.com/sadopc/paneboard/internal/templates"
)

func initCmd() {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	nameFlag := fs.String("name", "", "Board name (default: prompt interactively)")
	outputFlag := fs.String("output", "", "Output file path (default: <name>.paneboard.yaml)")
	templateFlag := fs.String("template", "", "Page layout for the first page (default: prompt)")
	listFlag := fs.Bool("list", false, "List available page layouts and exit")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: paneboard init [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Create a new .paneboard.yaml board file.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  paneboard init\n")
		fmt.Fprintf(os.Stderr, "  paneboard init --name \"Sprint\" --template Kanban\n")
		fmt.Fprintf(os.Stderr, "  paneboard init --list\n")
	}

	if err := fs.Parse(os.Args[2:]); err != nil {
		os.Exit(1)
	}

	if *listFlag {
		listTemplates(os.Stdout)
		return
	}

	reader := bufio.NewReader(os.Stdin)
	name := *nameFlag
	if name == "" {
		fmt.Print("Board name: ")
		input, _ := reader.ReadString('\n')
		name = strings.TrimSpace(input)
		if name == "" {
			name = "My Board"
		}
	}

	tmplName := *templateFlag
	if tmplName == "" {
		listTemplates(os.Stdout)
		fmt.Print("Page layout [Notes and Log]: ")
		input, _ := reader.ReadString('\n')
		tmplName = strings.TrimSpace(input)
		if tmplName == "" {
			tmplName = "Notes and Log"
		}
	}

	b, err := newBoard(name, tmplName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	outputPath := *outputFlag
	if outputPath == "" {
		safeName := strings.ToLower(strings.ReplaceAll(name, " ", "-"))
		outputPath = safeName + ".paneboard.yaml"
	}

	if _, err := os.Stat(outputPath); err == nil {
		fmt.Fprintf(os.Stderr, "Error: file %q already exists\n", outputPath)
		os.Exit(1)
	}

	if err := board.SaveToFile(b, outputPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Created %s\n", outputPath)
}

// newBoard builds a board whose first page uses the named layout. Layout
// names match case-insensitively.
func newBoard(name, tmplName string) (*board.Board, error) {
	for _, t := range templates.All() {
		if strings.EqualFold(t.Name, tmplName) {
			return t.Board(name), nil
		}
	}
	return nil, fmt.Errorf("unknown page layout %q (see paneboard init --list)", tmplName)
}

func listTemplates(w io.Writer) {
	for _, cat := range templates.Categories() {
		fmt.Fprintf(w, "%s:\n", cat)
		for _, t := range templates.ByCategory(cat) {
			fmt.Fprintf(w, "  %-14s %s\n", t.Name, t.Description)
		}
	}
}
