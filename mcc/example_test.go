package mcc_test

import (
	"fmt"

	"github.com/katalvlaran/exactcover/cover"
	"github.com/katalvlaran/exactcover/mcc"
)

// ExampleSolver_Solve walks the classic items-1..7 exact cover from
// TAOCP 7.2.2.1. The engine branches on item 1 first (smallest
// branching factor), discards the option {1,4,7} and commits {1,4,6},
// after which {2,7} and {3,5} are forced.
func ExampleSolver_Solve() {
	p := cover.New()
	for _, name := range []string{"1", "2", "3", "4", "5", "6", "7"} {
		p.AddPrimaryOnce(name)
	}
	p.AddOption("3", "5")
	p.AddOption("1", "4", "7")
	p.AddOption("2", "3", "6")
	p.AddOption("1", "4", "6")
	p.AddOption("2", "7")
	p.AddOption("4", "5", "7")

	s, err := mcc.New(p)
	if err != nil {
		fmt.Println(err)

		return
	}
	sols, err := s.Solve()
	if err != nil {
		fmt.Println(err)

		return
	}
	for _, sol := range sols {
		for _, idx := range sol {
			fmt.Println(p.FormatOption(idx))
		}
	}

	// Output:
	// 1 4 6
	// 2 7
	// 3 5
}

// ExampleSolver_Solve_multiplicities shows an item wanted two or three
// times: every subset of size two or three of the candidate options is
// a solution.
func ExampleSolver_Solve_multiplicities() {
	p := cover.New()
	p.AddPrimary("A", 2, 3)
	p.AddOption("A")
	p.AddOption("A")
	p.AddOption("A")

	s, _ := mcc.New(p)
	sols, _ := s.Solve(mcc.WithMaxSolutions(10))
	fmt.Println("solutions:", len(sols))

	// Output:
	// solutions: 4
}
