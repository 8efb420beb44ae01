package mcc

import (
	"fmt"
	"strings"
)

// Dump renders the whole store as Knuth-style tables: one block for
// the item headers, one for the item head nodes, then the option cells
// in fixed-width rows. It exists for debugging and for the restore
// harness, which compares dumps character for character; the output is
// fully determined by the store's contents.
func (s *Solver) Dump() string {
	n := int(s.numItems())

	width := 5
	for i := 1; i <= n; i++ {
		if len(s.headers[i].name)+1 > width {
			width = len(s.headers[i].name) + 1
		}
	}
	for _, name := range s.colorNames {
		if len(name)+1 > width {
			width = len(name) + 1
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d primary, %d secondary, %d cells\n", s.nPrimary, s.nSecondary, len(s.cells))

	separator := strings.Repeat("_", (n+2)*width+8) + "\n"

	row := func(label string, hi int, f func(i int) string) {
		fmt.Fprintf(&b, "%8s", label)
		for i := 0; i <= hi; i++ {
			fmt.Fprintf(&b, "%*s", width, f(i))
		}
		b.WriteByte('\n')
	}

	b.WriteString(separator)
	row("i", n+1, func(i int) string { return fmt.Sprint(i) })
	row("NAME", n+1, func(i int) string { return s.headers[i].name })
	row("LLINK", n+1, func(i int) string { return fmt.Sprint(s.headers[i].llink) })
	row("RLINK", n+1, func(i int) string { return fmt.Sprint(s.headers[i].rlink) })
	row("SLACK", n+1, func(i int) string { return fmt.Sprint(s.headers[i].slack) })
	row("BOUND", n+1, func(i int) string { return fmt.Sprint(s.headers[i].bound) })
	b.WriteString(separator)

	row("x", n+1, func(i int) string { return fmt.Sprint(i) })
	row("LEN", n+1, func(i int) string { return fmt.Sprint(s.cells[i].len) })
	row("ULINK", n+1, func(i int) string { return fmt.Sprint(s.cells[i].ulink) })
	row("DLINK", n+1, func(i int) string { return fmt.Sprint(s.cells[i].dlink) })
	row("COLOR", n+1, func(i int) string { return s.colorLabel(s.cells[i].color) })
	b.WriteString(separator)

	for start := n + 2; start < len(s.cells); start += n + 2 {
		count := len(s.cells) - start
		if count > n+2 {
			count = n + 2
		}
		at := func(i int) int32 { return int32(start + i) }
		row("x", count-1, func(i int) string { return fmt.Sprint(at(i)) })
		row("TOP", count-1, func(i int) string { return fmt.Sprint(s.cells[at(i)].top) })
		row("ULINK", count-1, func(i int) string { return fmt.Sprint(s.cells[at(i)].ulink) })
		row("DLINK", count-1, func(i int) string { return fmt.Sprint(s.cells[at(i)].dlink) })
		row("COLOR", count-1, func(i int) string { return s.colorLabel(s.cells[at(i)].color) })
		b.WriteString(separator)
	}

	return b.String()
}

// colorLabel prints a color id as its palette name, keeping the 0/−1
// sentinels numeric.
func (s *Solver) colorLabel(c int32) string {
	if c > 0 {
		return s.colorNames[c]
	}

	return fmt.Sprint(c)
}
