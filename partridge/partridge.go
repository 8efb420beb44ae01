// Package partridge encodes the partridge puzzle as an exact-cover
// problem: tile a side-n(n+1)/2 square with exactly i squares of side
// i for every i in 1..n.
//
// Encoding:
//
//   - One primary item "#i" per size, with u = v = i: each size must be
//     placed exactly i times.
//   - One primary item "(r,c)" per grid cell, with u = v = 1: each cell
//     is covered exactly once, which is what makes every solution a
//     genuine tiling.
//   - One option per (size, position): the size item plus the i×i block
//     of cell items it would occupy.
//
// The identity Σ i·i² = (n(n+1)/2)² makes the areas come out exactly;
// whether a tiling exists is another matter — the smallest solvable
// order for squares is n = 8.
package partridge

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/exactcover/cover"
)

// Sentinel errors for puzzle construction and rendering.
var (
	// ErrBadOrder indicates the requested order is below 1.
	ErrBadOrder = errors.New("partridge: order must be at least 1")

	// ErrBadSolution indicates a solution that does not decode to a
	// tiling of the board (unknown option, overlap, malformed cell).
	ErrBadSolution = errors.New("partridge: solution does not decode to a tiling")
)

// Puzzle is one partridge instance of a fixed order.
type Puzzle struct {
	n       int
	side    int
	problem *cover.Problem
}

// New builds a puzzle of the given order n ≥ 1; the board side is
// n(n+1)/2.
func New(n int) (*Puzzle, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadOrder, n)
	}

	return &Puzzle{n: n, side: n * (n + 1) / 2}, nil
}

// Order returns n.
func (z *Puzzle) Order() int { return z.n }

// Side returns the board side n(n+1)/2.
func (z *Puzzle) Side() int { return z.side }

// Problem builds (once) and returns the cover problem. Items and
// options are emitted in a fixed order — sizes, then cells row-major,
// then placements by size, row, column — so solver runs over the same
// order are identical.
func (z *Puzzle) Problem() *cover.Problem {
	if z.problem != nil {
		return z.problem
	}

	p := cover.New()
	for k := 1; k <= z.n; k++ {
		p.AddPrimary(sizeName(k), k, k)
	}
	for row := 0; row < z.side; row++ {
		for col := 0; col < z.side; col++ {
			p.AddPrimaryOnce(cellName(row, col))
		}
	}

	for k := 1; k <= z.n; k++ {
		for row := 0; row+k <= z.side; row++ {
			for col := 0; col+k <= z.side; col++ {
				refs := make([]string, 0, 1+k*k)
				refs = append(refs, sizeName(k))
				for y := 0; y < k; y++ {
					for x := 0; x < k; x++ {
						refs = append(refs, cellName(row+y, col+x))
					}
				}
				p.AddOption(refs...)
			}
		}
	}

	z.problem = p

	return p
}

// Render paints one solution as a side×side character grid, each cell
// labeled with the size of the square covering it (sizes above 9 use
// letters, 'a' = 10).
func (z *Puzzle) Render(sol []int) (string, error) {
	p := z.Problem()

	grid := make([][]byte, z.side)
	for i := range grid {
		grid[i] = []byte(strings.Repeat(".", z.side))
	}

	for _, idx := range sol {
		if idx < 0 || idx >= len(p.Options) {
			return "", fmt.Errorf("%w: option %d out of range", ErrBadSolution, idx)
		}
		refs := p.Options[idx]
		var k int
		if _, err := fmt.Sscanf(refs[0], "#%d", &k); err != nil {
			return "", fmt.Errorf("%w: option %d has no size item", ErrBadSolution, idx)
		}
		for _, ref := range refs[1:] {
			var row, col int
			if _, err := fmt.Sscanf(ref, "(%d,%d)", &row, &col); err != nil {
				return "", fmt.Errorf("%w: bad cell reference %q", ErrBadSolution, ref)
			}
			if grid[row][col] != '.' {
				return "", fmt.Errorf("%w: cell (%d,%d) covered twice", ErrBadSolution, row, col)
			}
			grid[row][col] = sizeLabel(k)
		}
	}

	var b strings.Builder
	for _, line := range grid {
		b.Write(line)
		b.WriteByte('\n')
	}

	return b.String(), nil
}

func sizeName(k int) string { return fmt.Sprintf("#%d", k) }

func cellName(row, col int) string { return fmt.Sprintf("(%d,%d)", row, col) }

func sizeLabel(k int) byte {
	if k <= 9 {
		return byte('0' + k)
	}

	return byte('a' + k - 10)
}
