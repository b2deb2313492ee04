package layout

import (
	"math"

	"github.com/sadopc/paneboard/internal/core/board"
)

// PaneRect is the horizontal extent of a pane or handle, in cells.
type PaneRect struct {
	X int
	W int
}

// Right returns the first column after the rect.
func (r PaneRect) Right() int {
	return r.X + r.W
}

// BoardLayout holds calculated dimensions for a row of panels.
type BoardLayout struct {
	Width  int
	Height int

	ContentHeight int // height minus tab bar and status bar

	Panes   []PaneRect
	Handles []PaneRect // Handles[i] sits right after Panes[i]
}

const (
	tabBarHeight    = 1
	statusBarHeight = 1
	handleWidth     = 1
	minPaneWidth    = 4

	// maxPercent bounds a parsed width before it is turned into cells.
	maxPercent = 1000
)

// Calculate computes pane and handle positions from terminal dimensions and
// the panels' width strings. Widths are percentages of the full width.
// Panels without a usable width share what is left, and the last panel
// always fills the remainder. Drawn widths are clamped so every pane stays
// visible; the width strings themselves are never rewritten.
func Calculate(width, height int, widths []string) BoardLayout {
	l := BoardLayout{
		Width:         width,
		Height:        height,
		ContentHeight: height - tabBarHeight - statusBarHeight,
	}

	if l.ContentHeight < 1 {
		l.ContentHeight = 1
	}

	n := len(widths)
	if n == 0 || width <= 0 {
		return l
	}

	avail := width - (n-1)*handleWidth
	if avail < 0 {
		avail = 0
	}

	want := make([]int, n)
	set := make([]bool, n)
	fixed, unset := 0, 1 // the last panel always takes the remainder
	for i := 0; i < n-1; i++ {
		pct, ok := board.ParseWidth(widths[i])
		if !ok {
			unset++
			continue
		}
		pct = math.Max(-maxPercent, math.Min(maxPercent, pct))
		want[i] = int(math.Round(pct * float64(width) / 100))
		set[i] = true
		fixed += want[i]
	}

	share := (avail - fixed) / unset
	if share < minPaneWidth {
		share = minPaneWidth
	}

	used := 0
	x := 0
	for i := 0; i < n-1; i++ {
		w := share
		if set[i] {
			w = want[i]
		}
		rest := n - 1 - i
		w = clamp(w, minPaneWidth, avail-used-rest*minPaneWidth)

		l.Panes = append(l.Panes, PaneRect{X: x, W: w})
		x += w
		used += w
		l.Handles = append(l.Handles, PaneRect{X: x, W: handleWidth})
		x += handleWidth
	}

	last := avail - used
	if last < 0 {
		last = 0
	}
	l.Panes = append(l.Panes, PaneRect{X: x, W: last})

	return l
}

// clamp bounds v to [lo, hi]; hi wins when the range is empty.
func clamp(v, lo, hi int) int {
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	if v < 0 {
		v = 0
	}
	return v
}
