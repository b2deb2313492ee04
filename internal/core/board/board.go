package board

import "github.com/google/uuid"

// Board is a set of pages, each holding a row of panels.
type Board struct {
	Name    string  `yaml:"name"`
	Version string  `yaml:"version"`
	Pages   []*Page `yaml:"pages"`
}

// Page is one row of side-by-side panels.
type Page struct {
	Name   string   `yaml:"name"`
	Panels []*Panel `yaml:"panels"`
}

// Panel is a resizable board panel. Width is a CSS-style length,
// normally a percentage of the board width ("30%"). Empty means auto.
type Panel struct {
	ID    string `yaml:"id"`
	Title string `yaml:"title"`
	Body  string `yaml:"body,omitempty"`
	Width string `yaml:"width,omitempty"`
}

// NewPanel creates a panel with a fresh ID and automatic width.
func NewPanel(title string) *Panel {
	return &Panel{
		ID:    uuid.New().String(),
		Title: title,
	}
}

// SetWidth stores a committed width.
func (p *Panel) SetWidth(w string) {
	p.Width = w
}

// Widths returns the width strings of the page's panels in order.
func (p *Page) Widths() []string {
	widths := make([]string, len(p.Panels))
	for i, panel := range p.Panels {
		widths[i] = panel.Width
	}
	return widths
}

// Move removes the panel at from and reinserts it at to.
// Out of range indexes leave the page unchanged.
func (p *Page) Move(from, to int) bool {
	n := len(p.Panels)
	if from < 0 || from >= n || to < 0 || to >= n || from == to {
		return false
	}
	panel := p.Panels[from]
	p.Panels = append(p.Panels[:from], p.Panels[from+1:]...)
	p.Panels = append(p.Panels[:to], append([]*Panel{panel}, p.Panels[to:]...)...)
	return true
}

// Add appends a panel to the page.
func (p *Page) Add(panel *Panel) {
	p.Panels = append(p.Panels, panel)
}

// Default returns the board shown when no board file is available.
func Default() *Board {
	notes := NewPanel("Notes")
	notes.Body = "Drag the bar to the right of a panel to resize it.\nPress ? for help."
	notes.Width = "30%"

	todo := NewPanel("Todo")
	todo.Body = "- resize me\n- move me with H / L\n- save with ctrl+s"
	todo.Width = "30%"

	log := NewPanel("Log")
	log.Body = "The last panel takes whatever width is left."

	return &Board{
		Name:    "paneboard",
		Version: "1",
		Pages: []*Page{
			{Name: "Main", Panels: []*Panel{notes, todo, log}},
		},
	}
}
