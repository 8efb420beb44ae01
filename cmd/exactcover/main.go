// Command exactcover is a thin front-end over the solver and the
// bundled problem encoders.
//
// Usage:
//
//	exactcover [flags] partridge|wordrect|wordsearch|random
//
// Modes:
//
//	partridge   tile a side-n(n+1)/2 square (-n)
//	wordrect    fill a width×height grid with row and column words
//	            (-width, -height, -words; solved with the non-sharp
//	            preference unless -nonsharp=false)
//	wordsearch  place every word of the list on the grid
//	random      a seeded random cover problem (-items, -options, -length)
//
// Exit status is 0 on success (including "no solutions"), 1 on runtime
// errors, and 2 on usage errors.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/katalvlaran/exactcover/cover"
	"github.com/katalvlaran/exactcover/mcc"
	"github.com/katalvlaran/exactcover/partridge"
	"github.com/katalvlaran/exactcover/wordlist"
	"github.com/katalvlaran/exactcover/wordrect"
	"github.com/katalvlaran/exactcover/wordsearch"
)

var (
	flagN      = flag.Int("n", 8, "partridge order")
	flagWidth  = flag.Int("width", 5, "grid width")
	flagHeight = flag.Int("height", 4, "grid height")
	flagWords  = flag.String("words", "", "word list file (wordrect and wordsearch modes)")
	flagMax    = flag.Int("max", 1, "maximum number of solutions to enumerate")
	flagSharp  = flag.Bool("nonsharp", true, "use the non-sharp preference heuristic (wordrect)")
	flagTrace  = flag.Bool("trace", false, "print the state-machine trace to stderr")
	flagStats  = flag.Bool("stats", false, "print run statistics")
	flagItems  = flag.Int("items", 16, "random mode: item count")
	flagOpts   = flag.Int("options", 60, "random mode: option count")
	flagLen    = flag.Int("length", 4, "random mode: references per option")
	flagSeed   = flag.Int64("seed", 1, "random mode: generator seed")
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage: exactcover [flags] partridge|wordrect|wordsearch|random")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 1 {
		usage()
		os.Exit(2)
	}

	if err := run(flag.Arg(0)); err != nil {
		fmt.Fprintln(os.Stderr, "exactcover:", err)
		os.Exit(1)
	}
}

func run(mode string) error {
	switch mode {
	case "partridge":
		return runPartridge()
	case "wordrect":
		return runWordRect()
	case "wordsearch":
		return runWordSearch()
	case "random":
		return runRandom()
	default:
		usage()
		os.Exit(2)
	}

	return nil
}

// solve runs the engine with the shared flags applied and prints the
// no-solution notice or the stats line as requested.
func solve(p *cover.Problem, extra ...mcc.Option) ([]mcc.Solution, error) {
	s, err := mcc.New(p)
	if err != nil {
		return nil, err
	}

	opts := append(extra, mcc.WithMaxSolutions(*flagMax))
	if *flagTrace {
		opts = append(opts, mcc.WithTrace(os.Stderr))
	}

	sols, err := s.Solve(opts...)
	if err != nil {
		return nil, err
	}

	if *flagStats {
		st := s.Stats()
		fmt.Printf("%d solutions; %d loops, %d level transitions; setup %v, run %v\n",
			st.Solutions, st.Loops, st.Levels, st.Setup, st.Run)
	}

	return sols, nil
}

func runPartridge() error {
	z, err := partridge.New(*flagN)
	if err != nil {
		return err
	}

	sols, err := solve(z.Problem())
	if err != nil {
		return err
	}
	if len(sols) == 0 {
		fmt.Println("no solutions")

		return nil
	}
	for i, sol := range sols {
		grid, rerr := z.Render(sol)
		if rerr != nil {
			return rerr
		}
		fmt.Printf("solution %d:\n%s", i, grid)
	}

	return nil
}

func runWordRect() error {
	words, err := readWords()
	if err != nil {
		return err
	}
	r, err := wordrect.New(*flagWidth, *flagHeight, words)
	if err != nil {
		return err
	}

	var extra []mcc.Option
	if *flagSharp {
		extra = append(extra, mcc.WithNonSharpPreference())
	}
	sols, err := solve(r.Problem(), extra...)
	if err != nil {
		return err
	}
	if len(sols) == 0 {
		fmt.Println("no solutions")

		return nil
	}
	for i, sol := range sols {
		grid, rerr := r.Render(sol, 1, 1)
		if rerr != nil {
			return rerr
		}
		fmt.Printf("solution %d:\n%s", i, grid)
	}

	return nil
}

func runWordSearch() error {
	words, err := readWords()
	if err != nil {
		return err
	}
	s, err := wordsearch.New(*flagWidth, *flagHeight, words)
	if err != nil {
		return err
	}

	sols, err := solve(s.Problem())
	if err != nil {
		return err
	}
	if len(sols) == 0 {
		fmt.Println("no solutions")

		return nil
	}
	for i, sol := range sols {
		grid, rerr := s.Render(sol, 2, 1)
		if rerr != nil {
			return rerr
		}
		fmt.Printf("solution %d:\n%s", i, grid)
	}

	return nil
}

func runRandom() error {
	p := cover.Generate(*flagItems, *flagOpts, *flagLen, *flagSeed)

	sols, err := solve(p)
	if err != nil {
		return err
	}
	if len(sols) == 0 {
		fmt.Println("no solutions")

		return nil
	}
	for i, sol := range sols {
		fmt.Printf("solution %d:\n%s", i, p.FormatSolution(sol))
	}

	return nil
}

func readWords() (words []string, err error) {
	if *flagWords == "" {
		return nil, fmt.Errorf("this mode needs -words <file>")
	}

	return wordlist.ReadFile(*flagWords)
}
