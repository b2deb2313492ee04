// Package diff computes line diffs between two texts and renders them in
// unified format, for showing what `paneboard fmt` would change.
package diff

import (
	"fmt"
	"strings"
)

// Op is the kind of a diff line.
type Op int

const (
	Equal Op = iota
	Insert
	Delete
)

// Line is one line of an edit script. Old and New are 1-based line numbers;
// 0 means the line does not exist on that side.
type Line struct {
	Op   Op
	Text string
	Old  int
	New  int
}

// Lines returns the shortest edit script turning a into b, one entry per line.
func Lines(a, b string) []Line {
	return script(split(a), split(b))
}

// Unified renders the diff of a and b in unified format with context lines
// around each change. It returns "" when the texts are equal.
func Unified(a, b, oldName, newName string, context int) string {
	lines := Lines(a, b)

	changed := false
	for _, l := range lines {
		if l.Op != Equal {
			changed = true
			break
		}
	}
	if !changed {
		return ""
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "--- %s\n+++ %s\n", oldName, newName)
	for _, h := range hunks(lines, context) {
		writeHunk(&sb, lines[h[0]:h[1]])
	}
	return sb.String()
}

// hunks groups changed lines with up to context lines around them. Each
// hunk is a [start, end) range into lines.
func hunks(lines []Line, context int) [][2]int {
	var out [][2]int
	for i := 0; i < len(lines); i++ {
		if lines[i].Op == Equal {
			continue
		}
		start := max(i-context, 0)
		end := i + 1
		// Extend while the next change is within reach of the trailing context
		for j := i + 1; j < len(lines) && j <= end+2*context; j++ {
			if lines[j].Op != Equal {
				end = j + 1
			}
		}
		end = min(end+context, len(lines))

		if n := len(out); n > 0 && start <= out[n-1][1] {
			out[n-1][1] = end
		} else {
			out = append(out, [2]int{start, end})
		}
		i = end - 1
	}
	return out
}

func writeHunk(sb *strings.Builder, lines []Line) {
	oldStart, newStart := 0, 0
	oldCount, newCount := 0, 0
	for _, l := range lines {
		if l.Old > 0 {
			if oldStart == 0 {
				oldStart = l.Old
			}
			oldCount++
		}
		if l.New > 0 {
			if newStart == 0 {
				newStart = l.New
			}
			newCount++
		}
	}
	fmt.Fprintf(sb, "@@ -%s +%s @@\n", span(oldStart, oldCount), span(newStart, newCount))

	for _, l := range lines {
		switch l.Op {
		case Equal:
			sb.WriteString(" ")
		case Insert:
			sb.WriteString("+")
		case Delete:
			sb.WriteString("-")
		}
		sb.WriteString(l.Text)
		sb.WriteString("\n")
	}
}

func span(start, count int) string {
	if count == 1 {
		return fmt.Sprint(start)
	}
	return fmt.Sprintf("%d,%d", start, count)
}

func split(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

// script runs Myers' greedy algorithm, keeping the frontier of every round
// so the path can be walked back from the end.
func script(a, b []string) []Line {
	n, m := len(a), len(b)
	offset := n + m
	frontier := make([]int, 2*offset+2)
	var rounds [][]int

search:
	for d := 0; d <= offset; d++ {
		for k := -d; k <= d; k += 2 {
			var x int
			if k == -d || (k != d && frontier[offset+k-1] < frontier[offset+k+1]) {
				x = frontier[offset+k+1]
			} else {
				x = frontier[offset+k-1] + 1
			}
			y := x - k
			for x < n && y < m && a[x] == b[y] {
				x++
				y++
			}
			frontier[offset+k] = x
			if x >= n && y >= m {
				rounds = append(rounds, append([]int(nil), frontier...))
				break search
			}
		}
		rounds = append(rounds, append([]int(nil), frontier...))
	}

	var rev []Line
	x, y := n, m
	for d := len(rounds) - 1; d > 0; d-- {
		prev := rounds[d-1]
		k := x - y
		var pk int
		if k == -d || (k != d && prev[offset+k-1] < prev[offset+k+1]) {
			pk = k + 1
		} else {
			pk = k - 1
		}
		px := prev[offset+pk]
		py := px - pk

		for x > px && y > py {
			x--
			y--
			rev = append(rev, Line{Op: Equal, Text: a[x], Old: x + 1, New: y + 1})
		}
		if x == px {
			y--
			rev = append(rev, Line{Op: Insert, Text: b[y], New: y + 1})
		} else {
			x--
			rev = append(rev, Line{Op: Delete, Text: a[x], Old: x + 1})
		}
	}
	for x > 0 && y > 0 {
		x--
		y--
		rev = append(rev, Line{Op: Equal, Text: a[x], Old: x + 1, New: y + 1})
	}

	out := make([]Line, len(rev))
	for i, l := range rev {
		out[len(rev)-1-i] = l
	}
	return out
}
