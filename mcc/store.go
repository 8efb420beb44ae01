package mcc

import (
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/exactcover/cover"
)

// header is one item header. Headers live in a flat array laid out
// primary-first then secondary, so primaryness is a range test on the
// index. llink/rlink thread two circular rings: index 0 anchors the
// ring of active primary items, index N+1 anchors the secondary ring.
//
// bound and slack are meaningful for primary items only: slack is the
// immutable v−u, bound the remaining capacity v−used, decremented as
// the search tentatively assigns the item.
type header struct {
	name  string
	llink int32
	rlink int32
	bound int32
	slack int32
}

// cell is one record of the cell arena. The arena serves three roles by
// index range:
//
//   - 1..N are item head nodes: len counts the live cells on the item's
//     vertical list, ulink/dlink close the list into a ring, and color
//     holds a secondary item's currently asserted color (0 = none).
//   - spacer nodes carry top ≤ 0; a spacer's ulink points at the first
//     cell of the preceding option and its dlink at the last cell of
//     the following option, which is how option walks wrap around.
//   - option cells carry top = their item's index and color = the
//     reference's color id (0 none, −1 purified-and-satisfied).
//
// Index 0 is reserved; no live link ever points at it.
type cell struct {
	top   int32
	len   int32
	ulink int32
	dlink int32
	color int32
}

// Solver is a self-contained Algorithm M engine over one problem. All
// search state — arena, rings, level stack, counters — lives in the
// Solver value, so independent solvers never interfere and tests can
// create and discard instances freely.
type Solver struct {
	problem *cover.Problem

	nPrimary   int32
	nSecondary int32
	headers    []header
	cells      []cell

	colorNames []string // color id (1-based) → name

	// optionStart maps each option's first cell index to the option's
	// insertion index; used only when reporting solutions.
	optionStart map[int32]int

	// Level stack: x holds the candidate under trial per level (an
	// option cell, or the item itself for the use-no-further branch),
	// ft the first tweaked candidate, and count the remaining branches
	// out of the level's branching factor.
	x     []int32
	ft    []int32
	count []int32

	// dirty marks a store left mid-search by a MaxSolutions stop.
	dirty bool

	oracle *oracle

	setup time.Duration
	stats Stats
}

// New builds a solver for the given problem: interns every item and
// color name to an arena index, lays out headers and cells (cells are
// appended at the bottom of each item's list, which reproduces Knuth's
// branching order), records the option-start map and preallocates the
// level stack to Σv+1.
//
// Returns ErrNilProblem, ErrInvalidProblem (wrapping the cover
// sentinel) or ErrProblemTooLarge.
func New(p *cover.Problem) (*Solver, error) {
	if p == nil {
		return nil, ErrNilProblem
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidProblem, err)
	}

	start := time.Now()

	nPrimary := len(p.Primary)
	nSecondary := len(p.Secondary)
	n := nPrimary + nSecondary

	// Arena size: reserved slot 0, one head per item, the leading
	// spacer, every option cell, and one trailing spacer per option.
	nCells := int64(n) + 2
	for _, opt := range p.Options {
		nCells += int64(len(opt)) + 1
	}
	var maxDepth int64 = 1
	for _, it := range p.Primary {
		maxDepth += int64(it.V)
	}
	if int64(n)+2 > math.MaxInt32 || nCells > math.MaxInt32 || maxDepth > math.MaxInt32 {
		return nil, ErrProblemTooLarge
	}

	s := &Solver{
		problem:     p,
		nPrimary:    int32(nPrimary),
		nSecondary:  int32(nSecondary),
		headers:     make([]header, n+2),
		cells:       make([]cell, nCells),
		optionStart: make(map[int32]int, len(p.Options)),
		x:           make([]int32, maxDepth),
		ft:          make([]int32, maxDepth),
		count:       make([]int32, maxDepth),
	}

	// Intern item and color names. Identity comparisons in the hot path
	// are integer comparisons on these indices.
	itemIndex := make(map[string]int32, n)
	colorIndex := make(map[string]int32, len(p.Colors))

	// Primary ring, anchored at header 0.
	s.headers[0].llink = int32(nPrimary)
	s.headers[0].rlink = int32(1 % (nPrimary + 1))
	for i, it := range p.Primary {
		idx := int32(i + 1)
		s.headers[idx] = header{
			name:  it.Name,
			llink: idx - 1,
			rlink: int32((i + 2) % (nPrimary + 1)),
			bound: int32(it.V),
			slack: int32(it.V - it.U),
		}
		itemIndex[it.Name] = idx
	}

	// Secondary ring, anchored at header N+1.
	sentinel := int32(n + 1)
	if nSecondary == 0 {
		s.headers[sentinel].llink = sentinel
		s.headers[sentinel].rlink = sentinel
	} else {
		for i, name := range p.Secondary {
			idx := int32(nPrimary + 1 + i)
			s.headers[idx] = header{name: name, llink: idx - 1, rlink: idx + 1}
			itemIndex[name] = idx
		}
		s.headers[int32(nPrimary+1)].llink = sentinel
		s.headers[sentinel].llink = int32(n)
		s.headers[sentinel].rlink = int32(nPrimary + 1)
	}

	s.colorNames = make([]string, len(p.Colors)+1)
	for i, name := range p.Colors {
		colorIndex[name] = int32(i + 1)
		s.colorNames[i+1] = name
	}

	// Item head nodes: empty self-looped vertical rings.
	for i := int32(1); i <= int32(n); i++ {
		s.cells[i].ulink = i
		s.cells[i].dlink = i
	}

	// Leading spacer.
	idx := sentinel
	s.cells[idx] = cell{top: 0}

	// Option cells with a spacer after each option. Each new cell is
	// threaded in above its item head, i.e. appended at the bottom.
	spacerID := int32(0)
	for optIdx, opt := range p.Options {
		prevSpacer := idx
		first := idx + 1
		for _, ref := range opt {
			idx++
			item, color := cover.SplitRef(ref)
			it := itemIndex[item]
			var c int32
			if color != "" {
				c = colorIndex[color]
			}

			last := s.cells[it].ulink
			s.cells[idx] = cell{top: it, ulink: last, dlink: it, color: c}
			s.cells[last].dlink = idx
			s.cells[it].ulink = idx
			s.cells[it].len++
		}
		idx++
		spacerID--
		s.cells[idx] = cell{top: spacerID, ulink: first}
		s.cells[prevSpacer].dlink = idx - 1

		s.optionStart[first] = optIdx
	}

	s.setup = time.Since(start)

	return s, nil
}

// isPrimary reports whether header index j is a primary item; the
// primary-first layout makes this a range test.
func (s *Solver) isPrimary(j int32) bool { return j >= 1 && j <= s.nPrimary }

// numItems is the total item count N; cell indices 1..N are head nodes.
func (s *Solver) numItems() int32 { return s.nPrimary + s.nSecondary }

// Stats returns the counters of the most recent Solve run (Solutions,
// Loops, Levels are zero before the first run) plus the setup time.
func (s *Solver) Stats() Stats {
	st := s.stats
	st.Setup = s.setup

	return st
}
