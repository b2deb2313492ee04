package layout

import (
	"fmt"
	"strings"

	"github.com/sadopc/paneboard/internal/core/board"
)

// Describe renders one line per panel with its title, stored width and the
// columns it occupies in l. Panels beyond l's panes report 0 columns.
func Describe(panels []*board.Panel, l BoardLayout) string {
	titleW, widthW := len("PANEL"), len("WIDTH")
	for _, p := range panels {
		titleW = max(titleW, len(p.Title))
		widthW = max(widthW, len(widthLabel(p.Width)))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%-*s  %-*s  %s\n", titleW, "PANEL", widthW, "WIDTH", "COLS")
	for i, p := range panels {
		cols := 0
		if i < len(l.Panes) {
			cols = l.Panes[i].W
		}
		fmt.Fprintf(&b, "%-*s  %-*s  %d\n", titleW, p.Title, widthW, widthLabel(p.Width), cols)
	}
	return b.String()
}

func widthLabel(w string) string {
	if w == "" {
		return "auto"
	}
	return w
}
