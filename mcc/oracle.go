package mcc

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"strings"
)

// oracle proves, at run time, that every level restore reproduces the
// store byte-identically: the state at the end of a level's Restore
// must equal the state captured when that level was entered. Two modes
// are available — full snapshots give field-level diagnostics, the CRC
// keeps a constant-size checksum per level for faster debug runs.
//
// Any mismatch is an engine defect, never a caller error, so the
// oracle panics with the diff and a structure dump.
type oracle struct {
	s    *Solver
	mode CheckMode

	headSnaps [][]header
	cellSnaps [][]cell
	crcs      []uint32
}

func newOracle(s *Solver, mode CheckMode) *oracle {
	depth := len(s.x)
	o := &oracle{s: s, mode: mode}
	if mode == ChecksFull {
		o.headSnaps = make([][]header, depth)
		o.cellSnaps = make([][]cell, depth)
	} else {
		o.crcs = make([]uint32, depth)
	}

	return o
}

// enter captures the store as level l begins branching.
func (o *oracle) enter(l int32) {
	if o.mode != ChecksFull {
		o.crcs[l] = o.checksum()

		return
	}

	o.s.validateStructure(l)

	if o.headSnaps[l] == nil {
		o.headSnaps[l] = make([]header, len(o.s.headers))
		o.cellSnaps[l] = make([]cell, len(o.s.cells))
	}
	copy(o.headSnaps[l], o.s.headers)
	copy(o.cellSnaps[l], o.s.cells)
}

// restore compares the store against the snapshot taken at enter(l).
func (o *oracle) restore(l int32) {
	if o.mode != ChecksFull {
		if o.checksum() != o.crcs[l] {
			panic(fmt.Sprintf("mcc: internal invariant violated (level %d): store checksum changed across do/undo\n%s", l, o.s.Dump()))
		}

		return
	}

	o.s.validateStructure(l)

	var diffs []string
	report := func(kind string, idx int, field string, got, want int32) {
		if len(diffs) < 16 {
			diffs = append(diffs, fmt.Sprintf("%s %d: %s = %d, want %d", kind, idx, field, got, want))
		}
	}

	for idx, h := range o.s.headers {
		want := o.headSnaps[l][idx]
		if h.llink != want.llink {
			report("header", idx, "llink", h.llink, want.llink)
		}
		if h.rlink != want.rlink {
			report("header", idx, "rlink", h.rlink, want.rlink)
		}
		if h.bound != want.bound {
			report("header", idx, "bound", h.bound, want.bound)
		}
		if h.slack != want.slack {
			report("header", idx, "slack", h.slack, want.slack)
		}
	}
	for idx, c := range o.s.cells {
		want := o.cellSnaps[l][idx]
		if c.top != want.top {
			report("cell", idx, "top", c.top, want.top)
		}
		if c.len != want.len {
			report("cell", idx, "len", c.len, want.len)
		}
		if c.ulink != want.ulink {
			report("cell", idx, "ulink", c.ulink, want.ulink)
		}
		if c.dlink != want.dlink {
			report("cell", idx, "dlink", c.dlink, want.dlink)
		}
		if c.color != want.color {
			report("cell", idx, "color", c.color, want.color)
		}
	}

	if diffs != nil {
		panic(fmt.Sprintf("mcc: internal invariant violated (level %d): store differs from its pre-branch snapshot:\n  %s\n%s",
			l, strings.Join(diffs, "\n  "), o.s.Dump()))
	}
}

// checksum folds every mutable field of both arrays into one CRC-32.
// Names are immutable and excluded.
func (o *oracle) checksum() uint32 {
	var crc uint32
	var buf [20]byte
	for idx := range o.s.headers {
		h := &o.s.headers[idx]
		binary.LittleEndian.PutUint32(buf[0:], uint32(h.llink))
		binary.LittleEndian.PutUint32(buf[4:], uint32(h.rlink))
		binary.LittleEndian.PutUint32(buf[8:], uint32(h.bound))
		binary.LittleEndian.PutUint32(buf[12:], uint32(h.slack))
		crc = crc32.Update(crc, crc32.IEEETable, buf[:16])
	}
	for idx := range o.s.cells {
		c := &o.s.cells[idx]
		binary.LittleEndian.PutUint32(buf[0:], uint32(c.top))
		binary.LittleEndian.PutUint32(buf[4:], uint32(c.len))
		binary.LittleEndian.PutUint32(buf[8:], uint32(c.ulink))
		binary.LittleEndian.PutUint32(buf[12:], uint32(c.dlink))
		binary.LittleEndian.PutUint32(buf[16:], uint32(c.color))
		crc = crc32.Update(crc, crc32.IEEETable, buf[:20])
	}

	return crc
}

// validateStructure checks the store's structural invariants at a
// level boundary; violations panic with a diagnostic and a dump.
func (s *Solver) validateStructure(l int32) {
	fail := func(format string, args ...any) {
		panic(fmt.Sprintf("mcc: internal invariant violated (level %d): %s\n%s", l, fmt.Sprintf(format, args...), s.Dump()))
	}

	n := s.numItems()

	// Both header rings are consistent doubly linked cycles.
	inRing := make(map[int32]bool, n)
	for _, anchor := range []int32{0, n + 1} {
		steps := int32(0)
		for j := s.headers[anchor].rlink; j != anchor; j = s.headers[j].rlink {
			if steps++; steps > n+1 {
				fail("header ring %d does not close", anchor)
			}
			if s.headers[s.headers[j].rlink].llink != j {
				fail("header %d: rlink/llink mismatch", j)
			}
			if anchor == 0 {
				if !s.isPrimary(j) {
					fail("header %d: non-primary item on the active ring", j)
				}
				inRing[j] = true
			}
		}
	}

	for j := int32(1); j <= n; j++ {
		// Every vertical list is a closed doubly linked cycle whose
		// length matches the head's count.
		count := int32(0)
		for q := s.cells[j].dlink; q != j; q = s.cells[q].dlink {
			if count++; count > int32(len(s.cells)) {
				fail("item %d: vertical list does not close", j)
			}
			if s.cells[q].top != j {
				fail("cell %d: top = %d, want %d", q, s.cells[q].top, j)
			}
			if s.cells[s.cells[q].dlink].ulink != q {
				fail("cell %d: dlink/ulink mismatch", q)
			}
		}
		if count != s.cells[j].len {
			fail("item %d: len = %d, counted %d", j, s.cells[j].len, count)
		}

		if s.isPrimary(j) {
			it := s.problem.Primary[j-1]
			if s.headers[j].bound < 0 || s.headers[j].bound > int32(it.V) {
				fail("item %d: bound = %d outside [0,%d]", j, s.headers[j].bound, it.V)
			}
			if s.headers[j].slack != int32(it.V-it.U) {
				fail("item %d: slack mutated to %d", j, s.headers[j].slack)
			}
			if s.headers[j].bound == 0 && inRing[j] {
				fail("item %d: covered but still on the active ring", j)
			}

			continue
		}

		// Secondary color consistency. A purified item keeps mismatching
		// cells on its list (their options were hidden through them), so
		// the invariant is: with a color asserted, every matching cell
		// carries the satisfied mark; with none, no marks exist.
		asserted := s.cells[j].color
		for q := s.cells[j].dlink; q != j; q = s.cells[q].dlink {
			if asserted > 0 && s.cells[q].color == asserted {
				fail("cell %d: unmarked color %d on purified item %d", q, asserted, j)
			}
			if asserted == 0 && s.cells[q].color < 0 {
				fail("cell %d: satisfied mark without an asserted color on item %d", q, j)
			}
		}
	}
}
