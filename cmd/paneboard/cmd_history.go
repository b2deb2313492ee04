package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/sadopc/paneboard/internal/config"
	"github.com/sadopc/paneboard/internal/core/history"
)

func historyCmd() {
	cfg := config.Load()

	fs := flag.NewFlagSet("history", flag.ExitOnError)
	dbFlag := fs.String("db", cfg.History, "Path to the history database")
	limitFlag := fs.Int("limit", 20, "Maximum number of entries to show")
	panelFlag := fs.String("panel", "", "Only show resizes of this panel ID")
	clearFlag := fs.Bool("clear", false, "Delete all recorded resizes")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: paneboard history [flags]\n\n")
		fmt.Fprintf(os.Stderr, "List recent panel resizes, newest first.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(os.Args[2:]); err != nil {
		os.Exit(1)
	}

	path := *dbFlag
	if path == "-" {
		fmt.Fprintf(os.Stderr, "Error: resize history is disabled in the config\n")
		os.Exit(1)
	}
	if path == "" {
		path = history.DefaultPath()
	}

	store, err := history.NewStore(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if *clearFlag {
		if err := store.Clear(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("History cleared")
		return
	}

	var entries []history.Entry
	if *panelFlag != "" {
		entries, err = store.ForPanel(*panelFlag, *limitFlag)
	} else {
		entries, err = store.List(*limitFlag, 0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	printHistory(os.Stdout, entries)
}

func printHistory(w io.Writer, entries []history.Entry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No resizes recorded")
		return
	}
	for _, e := range entries {
		fmt.Fprintf(w, "%-16s %-12s %-16s %6s -> %-6s %s\n",
			humanize.Time(e.Timestamp), e.Page, e.Title,
			widthOrAuto(e.Before), widthOrAuto(e.After), e.Board)
	}
}

func widthOrAuto(w string) string {
	if w == "" {
		return "auto"
	}
	return w
}
