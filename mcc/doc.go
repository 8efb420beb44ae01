// Package mcc is the engine room of exactcover: Knuth's Algorithm M,
// exact covering with item multiplicities and colors, on dancing links.
//
// Overview:
//
//   - A Solver is built once per problem by New: every item and color
//     name is interned to a 32-bit arena index, headers and cells are
//     laid out in two flat arrays, and the level stack is preallocated
//     to Σv+1. The arena replaces pointer soup with indices — same
//     cache behavior, no aliasing, and snapshots become plain copies.
//   - Solve drives an explicit state machine over the arena. Descending
//     applies cover/hide/tweak/commit; ascending applies the exact
//     inverses in exactly reversed order, restoring every link
//     byte-identically.
//   - Branching is MRV on the branching factor len − (bound − slack) + 1
//     over the active primary ring, with a stable declaration-order
//     tie-break, so runs are fully deterministic.
//
// When to use:
//
//   - Any constraint problem expressible as exact cover: tilings and
//     packings, placement puzzles, scheduling with per-resource
//     multiplicities, grid problems with color-style compatibility.
//   - The encoders in partridge/, wordrect/ and wordsearch/ are worked
//     examples of driving this package.
//
// Key features:
//
//   - WithMaxSolutions(n): enumerate up to n solutions, then stop.
//   - WithNonSharpPreference(): defer '#'-prefixed bookkeeping items
//     until everything else is resolved (word-rectangle encoding).
//   - WithTrace(w): out-of-band step trace of the state machine.
//   - WithIntegrityChecks(mode): the built-in oracle snapshots the
//     store at every level entry and verifies every restore; ChecksFull
//     diagnoses to the record and field, ChecksCRC is the fast mode.
//
// Error handling:
//
//   - ErrNilProblem / ErrInvalidProblem / ErrProblemTooLarge from New.
//   - An empty Solve result is the normal no-solution outcome.
//   - ErrSolverDirty from Solve when a previous run was truncated by
//     MaxSolutions (the store is intentionally left mid-search).
//   - Integrity violations panic: they prove a defect in the engine,
//     not in the caller's input.
//
// API reference:
//
//	s, err := mcc.New(problem)          // build arena
//	sols, err := s.Solve(
//	    mcc.WithMaxSolutions(10),
//	    mcc.WithIntegrityChecks(mcc.ChecksFull),
//	)
//	st := s.Stats()                      // loops, levels, timings
//
// Thread safety:
//
//   - A Solver owns its arrays exclusively and must not be shared
//     across goroutines; distinct Solvers are fully independent, even
//     over the same Problem (which is only read).
package mcc
