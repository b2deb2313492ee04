package board

import (
	"fmt"
	"strconv"
)

// Validate returns structural warnings for a board. An empty result means
// the board is well formed.
func Validate(b *Board) []string {
	var warnings []string

	if b.Name == "" {
		warnings = append(warnings, "missing board name")
	}
	if len(b.Pages) == 0 {
		warnings = append(warnings, "board has no pages")
	}

	seen := make(map[string]bool)
	for i, page := range b.Pages {
		label := page.Name
		if label == "" {
			label = fmt.Sprintf("page %d", i+1)
		}
		if len(page.Panels) == 0 {
			warnings = append(warnings, fmt.Sprintf("%s: no panels", label))
		}

		total := 0.0
		for _, panel := range page.Panels {
			if seen[panel.ID] {
				warnings = append(warnings, fmt.Sprintf("%s: duplicate panel id %q", label, panel.ID))
			}
			seen[panel.ID] = true

			if panel.Width == "" {
				continue
			}
			pct, ok := ParseWidth(panel.Width)
			if !ok {
				warnings = append(warnings, fmt.Sprintf("%s: panel %q has invalid width %q", label, panel.Title, panel.Width))
				continue
			}
			total += pct
		}
		if total > 100 {
			warnings = append(warnings, fmt.Sprintf("%s: panel widths add up to %s%%", label, strconv.FormatFloat(total, 'f', -1, 64)))
		}
	}

	return warnings
}
