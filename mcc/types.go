// Package mcc defines core types, configuration options, and sentinel
// errors for the Algorithm M exact-cover engine.
package mcc

import (
	"errors"
	"io"
	"time"
)

// Sentinel errors returned by solver construction and Solve.
var (
	// ErrNilProblem indicates a nil *cover.Problem was passed to New.
	ErrNilProblem = errors.New("mcc: problem is nil")

	// ErrInvalidProblem indicates the problem failed validation; the
	// wrapped cause carries the cover package's sentinel.
	ErrInvalidProblem = errors.New("mcc: invalid problem")

	// ErrProblemTooLarge indicates the problem does not fit the 32-bit
	// arena (headers, cells and multiplicity totals are int32-indexed).
	ErrProblemTooLarge = errors.New("mcc: problem exceeds 32-bit arena limits")

	// ErrSolverDirty indicates Solve was called on a solver whose
	// previous run stopped at MaxSolutions: such a run leaves the store
	// mid-search by design, so a fresh solver is required. A run that
	// exhausts the search space restores the store and the solver stays
	// reusable.
	ErrSolverDirty = errors.New("mcc: solver left mid-search by a truncated run; build a new solver")
)

// Non-sharp preference tuning. Items whose name starts with sharpPrefix
// have their branching factor inflated by nonSharpPenalty when it
// exceeds one, which forces the solver to resolve all other items
// first. Surfaced for the word-rectangle encoder; not a general knob.
const (
	sharpPrefix     = '#'
	nonSharpPenalty = 10000
)

// CheckMode selects how much self-verification the engine performs
// while searching.
//
// ChecksOff  – no verification; production speed.
// ChecksCRC  – per-level CRC-32 of the store, compared after every
//
//	restore; cheap and catches almost everything.
//
// ChecksFull – per-level field-by-field store snapshot plus structural
//
//	validation; mismatch diagnostics name the exact record
//	and field.
type CheckMode int

const (
	// ChecksOff disables the integrity oracle.
	ChecksOff CheckMode = iota

	// ChecksCRC keeps a constant-size checksum per level.
	ChecksCRC

	// ChecksFull keeps full snapshots per level and validates structure.
	ChecksFull
)

// Options configures a single Solve run.
//
// MaxSolutions       – stop after this many solutions (must be ≥ 1).
// NonSharpPreference – enable the '#'-prefix branching penalty.
// Trace              – optional step trace destination; nil disables.
// Checks             – integrity oracle mode (default ChecksOff).
type Options struct {
	MaxSolutions       int
	NonSharpPreference bool
	Trace              io.Writer
	Checks             CheckMode
}

// Option is a functional option for configuring Solve.
type Option func(*Options)

// DefaultOptions returns the Options used when no functional options
// are supplied: one solution, no preference, no trace, no checks.
func DefaultOptions() Options {
	return Options{MaxSolutions: 1}
}

// WithMaxSolutions caps the number of solutions to enumerate.
// n must be at least 1; invalid values panic, signalling a programming
// error at the call site.
func WithMaxSolutions(n int) Option {
	if n < 1 {
		panic("mcc: MaxSolutions must be at least 1")
	}

	return func(o *Options) { o.MaxSolutions = n }
}

// WithNonSharpPreference makes the chooser defer items whose name
// begins with '#' until every other item is resolved (unless such an
// item is forced, i.e. its branching factor is exactly 1).
func WithNonSharpPreference() Option {
	return func(o *Options) { o.NonSharpPreference = true }
}

// WithTrace streams one line per state-machine step to w, plus the
// option under trial at every descent. Tracing is out of band: it never
// affects the search.
func WithTrace(w io.Writer) Option {
	return func(o *Options) { o.Trace = w }
}

// WithIntegrityChecks enables the integrity oracle for the run. Every
// level entry snapshots the store and every restore is compared against
// the snapshot; a mismatch panics with a diagnostic, since it proves a
// defect in the engine itself rather than in the caller's problem.
func WithIntegrityChecks(mode CheckMode) Option {
	return func(o *Options) { o.Checks = mode }
}

// Solution is one exact cover: the chosen options' indices in the order
// the search committed them.
type Solution []int

// Stats reports counters from the most recent Solve run, mirroring the
// engine's internal bookkeeping.
//
// Solutions – number of solutions recorded.
// Loops     – state-machine iterations executed.
// Levels    – level entries (descents counted once each).
// Setup     – time spent building the arena in New.
// Run       – wall time of the Solve run.
type Stats struct {
	Solutions int
	Loops     int64
	Levels    int64
	Setup     time.Duration
	Run       time.Duration
}
