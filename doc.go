// Package exactcover is an exact-cover solver toolkit built around
// Knuth's Algorithm M (dancing links with item multiplicities and
// colors, TAOCP 7.2.2.1).
//
// 🚀 What is exactcover?
//
//	A deterministic, in-memory solver library plus a family of
//	problem encoders:
//
//	  • Core engine: doubly linked arena, reversible primitives,
//	    iterative backtracking driver with MRV branching
//	  • Problem model: primary items with (u,v) multiplicities,
//	    secondary items, color annotations
//	  • Encoders: partridge tilings, word rectangles, word searches
//
// ✨ Why choose exactcover?
//
//   - Exact semantics — every mutating primitive has a byte-identical
//     inverse, enforced by a built-in integrity oracle
//   - Deterministic  — identical inputs yield identical solution
//     sequences, always
//   - Pure Go        — no cgo, no hidden dependencies
//
// Under the hood, everything is organized into focused subpackages:
//
//	cover/      — problem description, validation, random generator
//	mcc/        — the Algorithm M engine (store, primitives, driver)
//	partridge/  — side-n(n+1)/2 square tilings with i squares of side i
//	wordrect/   — letter grids with a word per row and column
//	wordsearch/ — word placements in eight directions
//	wordlist/   — word-list readers shared by the word encoders
//
// Quick ASCII example (Knuth's toy exact cover, items 1..7):
//
//	{3,5} {1,4,7} {2,3,6} {1,4,6} {2,7} {4,5,7}
//
//	has the unique cover {1,4,6} + {3,5} + {2,7}.
//
// See each subpackage's doc.go for API details and worked examples.
//
//	go get github.com/katalvlaran/exactcover
package exactcover
