// Package wordrect encodes word rectangles as exact cover with
// multiplicities and colors: fill a width×height grid with letters so
// that every row reads a width-letter word and every column a
// height-letter word, using at most a budgeted number of distinct
// letters.
//
// Encoding (Knuth's, TAOCP 7.2.2.1):
//
//   - Primary items "A<r>" and "D<c>" (u = v = 1) demand one word per
//     row and column.
//   - Secondary position items carry the grid letters as colors, so a
//     row word and a column word crossing at (r,c) must agree there.
//   - The distinct-letter budget is a counting gadget: per letter x a
//     primary "#x" chooses between the options "#x x:0" (x unused) and
//     "#x x:1 #" (x used), and the primary "#" (u = 1, v = budget)
//     absorbs one use per distinct letter. Word options reference
//     "x:1" for each of their letters, forcing the used branch.
//   - The '#'-prefixed bookkeeping items would otherwise look most
//     constrained to the MRV chooser; solve with the engine's
//     non-sharp preference so the real rows and columns branch first.
package wordrect

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/exactcover/cover"
	"github.com/katalvlaran/exactcover/wordlist"
)

// Sentinel errors for rectangle construction and rendering.
var (
	// ErrBadSize indicates non-positive grid dimensions.
	ErrBadSize = errors.New("wordrect: grid dimensions must be positive")

	// ErrNoWords indicates the word list has no word of the required
	// row or column length.
	ErrNoWords = errors.New("wordrect: word list has no words of the required lengths")

	// ErrBadSolution indicates a solution that does not decode to a
	// full rectangle.
	ErrBadSolution = errors.New("wordrect: solution does not decode to a rectangle")
)

// Options tunes rectangle generation.
//
// RowLimit           – cap on row words taken from the list (default 2000).
// ColumnLimit        – cap on column words taken from the list (default 1000).
// MaxDistinctLetters – budget for distinct letters in the grid (default 8).
type Options struct {
	RowLimit           int
	ColumnLimit        int
	MaxDistinctLetters int
}

// Option is a functional option for New.
type Option func(*Options)

// DefaultOptions returns the defaults described on Options.
func DefaultOptions() Options {
	return Options{RowLimit: 2000, ColumnLimit: 1000, MaxDistinctLetters: 8}
}

// WithRowLimit caps how many row words are taken from the list.
func WithRowLimit(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic("wordrect: RowLimit must be at least 1")
		}
		o.RowLimit = n
	}
}

// WithColumnLimit caps how many column words are taken from the list.
func WithColumnLimit(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic("wordrect: ColumnLimit must be at least 1")
		}
		o.ColumnLimit = n
	}
}

// WithMaxDistinctLetters sets the distinct-letter budget.
func WithMaxDistinctLetters(n int) Option {
	if n < 1 || n > 26 {
		panic("wordrect: MaxDistinctLetters must be in 1..26")
	}

	return func(o *Options) { o.MaxDistinctLetters = n }
}

// Rectangle is one word-rectangle instance: fixed dimensions plus the
// filtered row and column word lists.
type Rectangle struct {
	width    int
	height   int
	rowWords []string
	colWords []string
	budget   int
	problem  *cover.Problem
}

// New filters words by length (width-letter words become row
// candidates, height-letter words column candidates) and returns a
// Rectangle.
func New(width, height int, words []string, opts ...Option) (*Rectangle, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadSize, width, height)
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	rows := wordlist.OfLength(words, width, cfg.RowLimit)
	cols := wordlist.OfLength(words, height, cfg.ColumnLimit)
	if len(rows) == 0 || len(cols) == 0 {
		return nil, fmt.Errorf("%w: need %d- and %d-letter words", ErrNoWords, width, height)
	}

	return &Rectangle{
		width:    width,
		height:   height,
		rowWords: rows,
		colWords: cols,
		budget:   cfg.MaxDistinctLetters,
	}, nil
}

// Width returns the grid width.
func (r *Rectangle) Width() int { return r.width }

// Height returns the grid height.
func (r *Rectangle) Height() int { return r.height }

// Problem builds (once) and returns the cover problem. Solve it with
// mcc.WithNonSharpPreference, as the '#' bookkeeping items rely on it.
func (r *Rectangle) Problem() *cover.Problem {
	if r.problem != nil {
		return r.problem
	}

	p := cover.New()
	for row := 0; row < r.height; row++ {
		p.AddPrimaryOnce(rowName(row))
	}
	for col := 0; col < r.width; col++ {
		p.AddPrimaryOnce(colName(col))
	}
	for c := byte('a'); c <= 'z'; c++ {
		p.AddPrimaryOnce("#" + string(c))
	}
	p.AddPrimary("#", 1, r.budget)

	for row := 0; row < r.height; row++ {
		for col := 0; col < r.width; col++ {
			p.AddSecondary(posName(row, col))
		}
	}
	for c := byte('a'); c <= 'z'; c++ {
		p.AddSecondary(string(c))
	}

	for c := byte('a'); c <= 'z'; c++ {
		p.AddColors(string(c))
	}
	p.AddColors("0", "1")

	// Column words: pin a word down column col, letter by letter, and
	// mark each of its distinct letters used.
	for _, w := range r.colWords {
		for col := 0; col < r.width; col++ {
			refs := make([]string, 0, r.height+len(w)+1)
			refs = append(refs, colName(col))
			for row := 0; row < r.height; row++ {
				refs = append(refs, fmt.Sprintf("%s:%c", posName(row, col), w[row]))
			}
			for _, c := range wordlist.Letters(w) {
				refs = append(refs, fmt.Sprintf("%c:1", c))
			}
			p.AddOption(refs...)
		}
	}

	// Row words, same shape across each row.
	for _, w := range r.rowWords {
		for row := 0; row < r.height; row++ {
			refs := make([]string, 0, r.width+len(w)+1)
			refs = append(refs, rowName(row))
			for col := 0; col < r.width; col++ {
				refs = append(refs, fmt.Sprintf("%s:%c", posName(row, col), w[col]))
			}
			for _, c := range wordlist.Letters(w) {
				refs = append(refs, fmt.Sprintf("%c:1", c))
			}
			p.AddOption(refs...)
		}
	}

	// Letter counting: '#x x:0' (unused) or '#x x:1 #' (used).
	for c := byte('a'); c <= 'z'; c++ {
		p.AddOption("#"+string(c), string(c)+":0")
		p.AddOption("#"+string(c), string(c)+":1", "#")
	}

	r.problem = p

	return p
}

// Render decodes a solution back into its letter grid, with xspacing
// blanks between columns and yspacing blank lines between rows.
func (r *Rectangle) Render(sol []int, xspacing, yspacing int) (string, error) {
	p := r.Problem()

	rows := make([]string, r.height)
	found := 0
	for _, idx := range sol {
		if idx < 0 || idx >= len(p.Options) {
			return "", fmt.Errorf("%w: option %d out of range", ErrBadSolution, idx)
		}
		refs := p.Options[idx]
		var row int
		if _, err := fmt.Sscanf(refs[0], "A%d", &row); err != nil {
			continue // not a row-word option
		}
		letters := make([]byte, r.width)
		for col := 0; col < r.width; col++ {
			_, color := cover.SplitRef(refs[1+col])
			letters[col] = color[0]
		}
		rows[row] = string(letters)
		found++
	}
	if found != r.height {
		return "", fmt.Errorf("%w: found %d of %d row words", ErrBadSolution, found, r.height)
	}

	pad := strings.Repeat(" ", xspacing)
	var b strings.Builder
	for i, row := range rows {
		if i > 0 {
			b.WriteString(strings.Repeat("\n", yspacing))
		}
		for j := 0; j < len(row); j++ {
			if j > 0 {
				b.WriteString(pad)
			}
			b.WriteByte(row[j])
		}
		b.WriteByte('\n')
	}

	return b.String(), nil
}

func rowName(row int) string { return fmt.Sprintf("A%d", row) }

func colName(col int) string { return fmt.Sprintf("D%d", col) }

func posName(row, col int) string { return fmt.Sprintf("%d_%d", row, col) }
