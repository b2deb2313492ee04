package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sadopc/paneboard/internal/core/board"
	"github.com/sadopc/paneboard/internal/core/history"
	"github.com/sadopc/paneboard/internal/diff"
)

const sampleBoard = `name: Demo
pages:
  - name: Main
    panels:
      - title: Notes
        width: 30%
      - title: Log
`

func writeBoard(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "demo.paneboard.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing board: %v", err)
	}
	return path
}

func TestValidateFileOK(t *testing.T) {
	path := writeBoard(t, sampleBoard)

	var buf bytes.Buffer
	if err := validateFile(&buf, path); err != nil {
		t.Fatalf("validateFile: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "OK   "+path) {
		t.Errorf("unexpected output: %q", out)
	}
	if !strings.Contains(out, "1 pages, 2 panels") {
		t.Errorf("expected page/panel counts, got %q", out)
	}
	if !strings.Contains(out, " B)") {
		t.Errorf("expected humanized size, got %q", out)
	}
}

func TestValidateFileWarnings(t *testing.T) {
	path := writeBoard(t, `name: Demo
pages:
  - name: Main
    panels:
      - title: A
        width: 80%
      - title: B
        width: 40%
      - title: C
`)

	var buf bytes.Buffer
	err := validateFile(&buf, path)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "add up to 120%") {
		t.Errorf("expected width total warning, got %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output on failure, got %q", buf.String())
	}
}

func TestValidateFileEmpty(t *testing.T) {
	path := writeBoard(t, "")
	if err := validateFile(&bytes.Buffer{}, path); err == nil || !strings.Contains(err.Error(), "empty") {
		t.Errorf("expected empty file error, got %v", err)
	}
}

func TestValidateFileMissing(t *testing.T) {
	err := validateFile(&bytes.Buffer{}, filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil || !strings.Contains(err.Error(), "reading file") {
		t.Errorf("expected read error, got %v", err)
	}
}

func TestFormatFileAssignsIDs(t *testing.T) {
	path := writeBoard(t, sampleBoard)

	formatted, changed, err := formatFile(path)
	if err != nil {
		t.Fatalf("formatFile: %v", err)
	}
	if !changed {
		t.Error("expected a board without ids to be reformatted")
	}

	b, err := board.LoadFromBytes(formatted)
	if err != nil {
		t.Fatalf("formatted output does not parse: %v", err)
	}
	for _, p := range b.Pages[0].Panels {
		if p.ID == "" {
			t.Errorf("panel %q has no id after fmt", p.Title)
		}
	}
	if b.Version != "1" {
		t.Errorf("expected version 1, got %q", b.Version)
	}
}

func TestFormatFileStable(t *testing.T) {
	data, err := board.Marshal(board.Default())
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	path := writeBoard(t, string(data))

	formatted, changed, err := formatFile(path)
	if err != nil {
		t.Fatalf("formatFile: %v", err)
	}
	if changed {
		t.Errorf("expected formatted board to be unchanged, got:\n%s", formatted)
	}
}

func TestFormatFileInvalidYAML(t *testing.T) {
	path := writeBoard(t, "pages: [unclosed")
	if _, _, err := formatFile(path); err == nil || !strings.Contains(err.Error(), "parsing") {
		t.Errorf("expected parse error, got %v", err)
	}
}

func TestPrintLayout(t *testing.T) {
	b, err := board.LoadFromBytes([]byte(sampleBoard))
	if err != nil {
		t.Fatalf("LoadFromBytes: %v", err)
	}

	var buf bytes.Buffer
	if err := printLayout(&buf, b, "", 100, 20); err != nil {
		t.Fatalf("printLayout: %v", err)
	}
	want := "# Main (100x18)\n" +
		"PANEL  WIDTH  COLS\n" +
		"Notes  30%    30\n" +
		"Log    auto   69\n"
	if buf.String() != want {
		t.Errorf("layout mismatch:\ngot:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestPrintLayoutUnknownPage(t *testing.T) {
	b := board.Default()
	err := printLayout(&bytes.Buffer{}, b, "Nope", 100, 20)
	if err == nil || !strings.Contains(err.Error(), `"Nope"`) {
		t.Errorf("expected page not found error, got %v", err)
	}
}

func TestPrintLayoutBadWidth(t *testing.T) {
	if err := printLayout(&bytes.Buffer{}, board.Default(), "", 0, 20); err == nil {
		t.Error("expected error for zero width")
	}
}

func TestLoadBoardFallsBackToDefault(t *testing.T) {
	b, err := loadBoard("")
	if err != nil {
		t.Fatalf("loadBoard: %v", err)
	}
	if len(b.Pages) == 0 {
		t.Error("expected default board pages")
	}

	b, err = loadBoard(filepath.Join(t.TempDir(), "new.paneboard.yaml"))
	if err != nil {
		t.Fatalf("loadBoard missing file: %v", err)
	}
	if b.Name != "paneboard" {
		t.Errorf("expected default board for missing file, got %q", b.Name)
	}
}

func TestLoadBoardFromFile(t *testing.T) {
	b, err := loadBoard(writeBoard(t, sampleBoard))
	if err != nil {
		t.Fatalf("loadBoard: %v", err)
	}
	if b.Name != "Demo" || len(b.Pages[0].Panels) != 2 {
		t.Errorf("unexpected board: %+v", b)
	}
}

func TestVersionString(t *testing.T) {
	if !strings.HasPrefix(versionString(), "paneboard dev") {
		t.Errorf("unexpected version string %q", versionString())
	}
}

func TestPrintHistory(t *testing.T) {
	var buf bytes.Buffer
	printHistory(&buf, []history.Entry{{
		Board:     "work.paneboard.yaml",
		Page:      "Main",
		Title:     "Notes",
		Before:    "",
		After:     "40%",
		Timestamp: time.Now().Add(-2 * time.Hour),
	}})

	out := buf.String()
	for _, want := range []string{"2 hours ago", "Main", "Notes", "auto -> 40%", "work.paneboard.yaml"} {
		if !strings.Contains(out, want) {
			t.Errorf("history output %q missing %q", out, want)
		}
	}
}

func TestPrintHistoryEmpty(t *testing.T) {
	var buf bytes.Buffer
	printHistory(&buf, nil)
	if buf.String() != "No resizes recorded\n" {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestOpenHistory(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)

	if hs := openHistory("-", logger); hs != nil {
		hs.Close()
		t.Error("\"-\" should disable history")
	}

	hs := openHistory(filepath.Join(t.TempDir(), "history.db"), logger)
	if hs == nil {
		t.Fatal("expected a history store")
	}
	hs.Close()
}

func TestNewBoardFromTemplate(t *testing.T) {
	b, err := newBoard("Sprint", "kanban")
	if err != nil {
		t.Fatalf("newBoard: %v", err)
	}
	if b.Name != "Sprint" || len(b.Pages) != 1 || len(b.Pages[0].Panels) != 4 {
		t.Errorf("unexpected board %+v", b)
	}

	if _, err := newBoard("x", "Nope"); err == nil || !strings.Contains(err.Error(), "--list") {
		t.Errorf("expected unknown layout error, got %v", err)
	}
}

func TestListTemplates(t *testing.T) {
	var buf bytes.Buffer
	listTemplates(&buf)
	out := buf.String()
	for _, want := range []string{"Columns:", "Sidebar:", "Workflow:", "Kanban", "Two Columns"} {
		if !strings.Contains(out, want) {
			t.Errorf("template list missing %q:\n%s", want, out)
		}
	}
}

func TestFormatDiff(t *testing.T) {
	path := writeBoard(t, sampleBoard)
	formatted, _, err := formatFile(path)
	if err != nil {
		t.Fatalf("formatFile: %v", err)
	}

	out := diff.Unified(sampleBoard, string(formatted), path, path+" (formatted)", 3)
	if !strings.HasPrefix(out, "--- "+path+"\n+++ "+path+" (formatted)\n@@ ") {
		t.Errorf("unexpected diff header:\n%s", out)
	}
	if !strings.Contains(out, "+version: \"1\"") {
		t.Errorf("diff should show the added version:\n%s", out)
	}
}
