// Package wordsearch encodes word-search construction as an exact
// cover with colors: place every word on a w×h grid, in any of the
// eight compass directions, with crossing words agreeing on the shared
// letter.
//
// Encoding:
//
//   - One primary item per word (u = v = 1): each word is placed once.
//   - One secondary item per grid position, colored by the letter that
//     ends up there; two placements may share a position exactly when
//     they put the same letter on it.
//   - One option per legal (word, start, direction) triple.
package wordsearch

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/exactcover/cover"
)

// Sentinel errors for search construction and rendering.
var (
	// ErrBadGrid indicates non-positive grid dimensions.
	ErrBadGrid = errors.New("wordsearch: grid dimensions must be positive")

	// ErrNoWords indicates an empty word list.
	ErrNoWords = errors.New("wordsearch: at least one word is required")

	// ErrWordTooLong indicates a word that cannot fit the grid in any
	// direction.
	ErrWordTooLong = errors.New("wordsearch: word does not fit the grid")

	// ErrBadSolution indicates a solution with an out-of-range option.
	ErrBadSolution = errors.New("wordsearch: solution references an unknown option")
)

// directions are the eight compass steps, scanned in a fixed order so
// option enumeration is deterministic.
var directions = [8][2]int{
	{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
}

// Search is one word-search construction instance.
type Search struct {
	width   int
	height  int
	words   []string
	problem *cover.Problem
}

// New validates the dimensions and word list (duplicates collapse into
// one placement requirement) and returns a Search.
func New(width, height int, words []string) (*Search, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadGrid, width, height)
	}
	if len(words) == 0 {
		return nil, ErrNoWords
	}

	seen := make(map[string]bool, len(words))
	kept := make([]string, 0, len(words))
	for _, w := range words {
		if seen[w] {
			continue
		}
		seen[w] = true
		if len(w) > width && len(w) > height {
			return nil, fmt.Errorf("%w: %q on a %dx%d grid", ErrWordTooLong, w, width, height)
		}
		kept = append(kept, w)
	}

	return &Search{width: width, height: height, words: kept}, nil
}

// Width returns the grid width.
func (s *Search) Width() int { return s.width }

// Height returns the grid height.
func (s *Search) Height() int { return s.height }

// Problem builds (once) and returns the cover problem: words as
// primary items, positions as letter-colored secondary items, and one
// option per legal placement.
func (s *Search) Problem() *cover.Problem {
	if s.problem != nil {
		return s.problem
	}

	p := cover.New()
	for _, w := range s.words {
		p.AddPrimaryOnce(w)
	}
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			p.AddSecondary(posName(y, x))
		}
	}
	for c := byte('a'); c <= 'z'; c++ {
		p.AddColors(string(c))
	}

	// One option per word, start position and direction that stays on
	// the grid.
	for _, w := range s.words {
		l := len(w)
		for x := 0; x < s.width; x++ {
			for y := 0; y < s.height; y++ {
				for _, dir := range directions {
					endX := x + dir[0]*(l-1)
					endY := y + dir[1]*(l-1)
					if endX < 0 || endX >= s.width || endY < 0 || endY >= s.height {
						continue
					}
					refs := make([]string, 0, l+1)
					refs = append(refs, w)
					for j := 0; j < l; j++ {
						refs = append(refs, fmt.Sprintf("%s:%c", posName(y+dir[1]*j, x+dir[0]*j), w[j]))
					}
					p.AddOption(refs...)
				}
			}
		}
	}

	s.problem = p

	return p
}

// Render decodes a solution into the finished letter grid; positions
// no word touches print as '-'. The xspacing and yspacing arguments
// pad between columns and rows.
func (s *Search) Render(sol []int, xspacing, yspacing int) (string, error) {
	p := s.Problem()

	grid := make([][]byte, s.height)
	for i := range grid {
		grid[i] = make([]byte, s.width)
		for j := range grid[i] {
			grid[i][j] = '-'
		}
	}

	for _, idx := range sol {
		if idx < 0 || idx >= len(p.Options) {
			return "", fmt.Errorf("%w: option %d", ErrBadSolution, idx)
		}
		for _, ref := range p.Options[idx] {
			item, color := cover.SplitRef(ref)
			if color == "" {
				continue
			}
			var y, x int
			if _, err := fmt.Sscanf(item, "%d_%d", &y, &x); err != nil {
				return "", fmt.Errorf("%w: bad position %q", ErrBadSolution, item)
			}
			grid[y][x] = color[0]
		}
	}

	pad := strings.Repeat(" ", xspacing)
	var b strings.Builder
	for y, line := range grid {
		if y > 0 {
			b.WriteString(strings.Repeat("\n", yspacing))
		}
		for x, c := range line {
			if x > 0 {
				b.WriteString(pad)
			}
			b.WriteByte(c)
		}
		b.WriteByte('\n')
	}

	return b.String(), nil
}

func posName(y, x int) string { return fmt.Sprintf("%d_%d", y, x) }
