// Package templates holds built-in page layouts used when adding a page or
// creating a new board file.
package templates

import (
	"github.com/sadopc/paneboard/internal/core/board"
)

// PanelSpec is one panel of a template. Width is "" for automatic.
type PanelSpec struct {
	Title string
	Width string
	Body  string
}

// Template is a named page layout.
type Template struct {
	Name        string
	Description string
	Category    string
	Panels      []PanelSpec
}

// Categories returns all template categories.
func Categories() []string {
	return []string{"Columns", "Sidebar", "Workflow"}
}

// All returns all built-in templates.
func All() []Template {
	return []Template{
		{
			Name:        "Single",
			Description: "One panel filling the page",
			Category:    "Columns",
			Panels: []PanelSpec{
				{Title: "Main"},
			},
		},
		{
			Name:        "Two Columns",
			Description: "Two equal columns",
			Category:    "Columns",
			Panels: []PanelSpec{
				{Title: "Left", Width: "50%"},
				{Title: "Right"},
			},
		},
		{
			Name:        "Three Columns",
			Description: "Three roughly equal columns",
			Category:    "Columns",
			Panels: []PanelSpec{
				{Title: "Left", Width: "33%"},
				{Title: "Center", Width: "33%"},
				{Title: "Right"},
			},
		},
		{
			Name:        "Left Sidebar",
			Description: "Narrow sidebar with a wide main panel",
			Category:    "Sidebar",
			Panels: []PanelSpec{
				{Title: "Sidebar", Width: "25%"},
				{Title: "Main"},
			},
		},
		{
			Name:        "Holy Grail",
			Description: "Navigation, content and details columns",
			Category:    "Sidebar",
			Panels: []PanelSpec{
				{Title: "Navigation", Width: "20%"},
				{Title: "Content", Width: "55%"},
				{Title: "Details"},
			},
		},
		{
			Name:        "Kanban",
			Description: "Four-column task board",
			Category:    "Workflow",
			Panels: []PanelSpec{
				{Title: "Backlog", Width: "25%", Body: "- "},
				{Title: "Doing", Width: "25%", Body: "- "},
				{Title: "Review", Width: "25%", Body: "- "},
				{Title: "Done", Body: "- "},
			},
		},
		{
			Name:        "Notes and Log",
			Description: "Notes beside a running log",
			Category:    "Workflow",
			Panels: []PanelSpec{
				{Title: "Notes", Width: "40%"},
				{Title: "Log"},
			},
		},
	}
}

// ByCategory returns templates filtered by category.
func ByCategory(category string) []Template {
	var filtered []Template
	for _, t := range All() {
		if t.Category == category {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

// ByName finds a template by name.
func ByName(name string) *Template {
	for _, t := range All() {
		if t.Name == name {
			return &t
		}
	}
	return nil
}

// Page builds a page named name from the template. Every call creates fresh
// panel IDs.
func (t Template) Page(name string) *board.Page {
	if name == "" {
		name = t.Name
	}
	p := &board.Page{Name: name}
	for _, spec := range t.Panels {
		panel := board.NewPanel(spec.Title)
		panel.Width = spec.Width
		panel.Body = spec.Body
		p.Add(panel)
	}
	return p
}

// Board builds a single-page board from the template.
func (t Template) Board(name string) *board.Board {
	return &board.Board{
		Name:    name,
		Version: "1",
		Pages:   []*board.Page{t.Page("Main")},
	}
}
