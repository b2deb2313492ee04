package board

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// LoadFromFile loads a board from a YAML file.
func LoadFromFile(path string) (*Board, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading board file: %w", err)
	}
	return LoadFromBytes(data)
}

// LoadFromBytes parses a board from YAML bytes.
func LoadFromBytes(data []byte) (*Board, error) {
	var b Board
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("parsing board: %w", err)
	}
	if b.Version == "" {
		b.Version = "1"
	}
	// Drop empty entries so callers never see nil pages or panels
	pages := b.Pages[:0]
	for _, page := range b.Pages {
		if page == nil {
			continue
		}
		panels := page.Panels[:0]
		for _, panel := range page.Panels {
			if panel != nil {
				panels = append(panels, panel)
			}
		}
		page.Panels = panels
		pages = append(pages, page)
	}
	b.Pages = pages
	assignIDs(b.Pages)
	return &b, nil
}

func assignIDs(pages []*Page) {
	for _, page := range pages {
		for _, panel := range page.Panels {
			if panel.ID == "" {
				panel.ID = uuid.New().String()
			}
		}
	}
}
