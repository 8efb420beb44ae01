// Package mcc_test contains end-to-end tests for the Algorithm M
// engine: the literal scenarios from TAOCP 7.2.2.1 (toy exact cover,
// colors, multiplicities, slack), the no-solution path, enumeration
// caps, determinism, and solver reuse semantics. Most solves run with
// the integrity oracle enabled, so those tests also prove that every
// level restore reproduced the store byte-identically.
package mcc_test

import (
	"bytes"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/exactcover/cover"
	"github.com/katalvlaran/exactcover/mcc"
)

// knuthToy builds the items-1..7 example from TAOCP 7.2.2.1: six
// options whose unique exact cover is {1,4,6} + {3,5} + {2,7}.
func knuthToy() *cover.Problem {
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

	return p
}

// knuthColors builds figure 49 of TAOCP 7.2.2.1 (the knuth_sample
// problem): primary p,q,r, secondary x,y with colors. Its unique
// solution is options 1 and 3 ("p r x:A y" and "q x:A").
func knuthColors() *cover.Problem {
	p := cover.New()
	p.AddPrimaryOnce("p")
	p.AddPrimaryOnce("q")
	p.AddPrimaryOnce("r")
	p.AddSecondary("x", "y")
	p.AddColors("A", "B", "C", "D")
	p.AddOption("p", "q", "x", "y:A")
	p.AddOption("p", "r", "x:A", "y")
	p.AddOption("p", "x:B")
	p.AddOption("q", "x:A")
	p.AddOption("r", "y:B")

	return p
}

// solveAll runs an exhaustive, oracle-checked enumeration.
func solveAll(t *testing.T, p *cover.Problem, opts ...mcc.Option) []mcc.Solution {
	t.Helper()
	s, err := mcc.New(p)
	require.NoError(t, err)
	opts = append(opts,
		mcc.WithMaxSolutions(1000),
		mcc.WithIntegrityChecks(mcc.ChecksFull),
	)
	sols, err := s.Solve(opts...)
	require.NoError(t, err)

	return sols
}

// sortedSets normalizes solutions to sorted index slices for
// order-insensitive comparison.
func sortedSets(sols []mcc.Solution) [][]int {
	out := make([][]int, len(sols))
	for i, sol := range sols {
		set := append([]int(nil), sol...)
		sort.Ints(set)
		out[i] = set
	}

	return out
}

// ------------------------------------------------------------------------
// 1. Construction errors.
// ------------------------------------------------------------------------

func TestNew_NilProblem(t *testing.T) {
	_, err := mcc.New(nil)
	require.ErrorIs(t, err, mcc.ErrNilProblem)
}

func TestNew_InvalidProblem(t *testing.T) {
	p := cover.New()
	p.AddPrimaryOnce("a")
	p.AddPrimaryOnce("a") // duplicate
	_, err := mcc.New(p)
	require.ErrorIs(t, err, mcc.ErrInvalidProblem)
	require.ErrorIs(t, err, cover.ErrDuplicateName)
}

func TestWithMaxSolutions_PanicsBelowOne(t *testing.T) {
	require.Panics(t, func() { mcc.WithMaxSolutions(0) })
}

// ------------------------------------------------------------------------
// 2. Scenario suite: the literal inputs from the specification of the
//    algorithm, solved exhaustively under the full integrity oracle.
// ------------------------------------------------------------------------

type ScenarioSuite struct {
	suite.Suite
}

// TestKnuthToy checks the unique cover of the items-1..7 example.
func (s *ScenarioSuite) TestKnuthToy() {
	sols := solveAll(s.T(), knuthToy())
	s.Require().Len(sols, 1)
	s.Require().ElementsMatch([]int{3, 0, 4}, []int(sols[0]))
}

// TestKnuthColors checks the unique color-consistent cover of
// figure 49: options 1 and 3, with x purified to A.
func (s *ScenarioSuite) TestKnuthColors() {
	sols := solveAll(s.T(), knuthColors())
	s.Require().Len(sols, 1)
	s.Require().ElementsMatch([]int{1, 3}, []int(sols[0]))
}

// TestSimpleMultiplicity: a single item wanted exactly twice, two
// one-item options; both must be used.
func (s *ScenarioSuite) TestSimpleMultiplicity() {
	p := cover.New()
	p.AddPrimary("A", 2, 2)
	p.AddOption("A")
	p.AddOption("A")

	sols := solveAll(s.T(), p)
	s.Require().Len(sols, 1)
	s.Require().ElementsMatch([]int{0, 1}, []int(sols[0]))
}

// TestSlack: u=2, v=3 over three one-item options enumerates every
// subset of size 2 or 3 — four solutions in total.
func (s *ScenarioSuite) TestSlack() {
	p := cover.New()
	p.AddPrimary("A", 2, 3)
	p.AddOption("A")
	p.AddOption("A")
	p.AddOption("A")

	sols := solveAll(s.T(), p)
	s.Require().Len(sols, 4)
	s.Require().ElementsMatch(
		[][]int{{0, 1, 2}, {0, 1}, {0, 2}, {1, 2}},
		sortedSets(sols),
	)
}

// TestUnsolvable: one option cannot cover an item twice.
func (s *ScenarioSuite) TestUnsolvable() {
	p := cover.New()
	p.AddPrimary("A", 2, 2)
	p.AddOption("A")

	sols := solveAll(s.T(), p)
	s.Require().Empty(sols)
}

// TestNoPrimaries: with nothing to cover, the empty solution is
// recorded immediately.
func (s *ScenarioSuite) TestNoPrimaries() {
	p := cover.New()
	p.AddSecondary("x")
	p.AddColors("A")
	p.AddOption("x:A")

	sv, err := mcc.New(p)
	s.Require().NoError(err)
	sols, err := sv.Solve()
	s.Require().NoError(err)
	s.Require().Len(sols, 1)
	s.Require().Empty(sols[0])
}

func TestScenarioSuite(t *testing.T) {
	suite.Run(t, new(ScenarioSuite))
}

// ------------------------------------------------------------------------
// 3. Universal properties: enumeration bound, solution correctness,
//    determinism, restore-on-exhaustion.
// ------------------------------------------------------------------------

// TestEnumerationBound verifies |solutions| never exceeds the cap and
// that capped runs return the deterministic prefix of the full run.
func TestEnumerationBound(t *testing.T) {
	p := cover.New()
	p.AddPrimary("A", 2, 3)
	p.AddOption("A")
	p.AddOption("A")
	p.AddOption("A")

	full := solveAll(t, p)
	require.Len(t, full, 4)

	for max := 1; max <= 4; max++ {
		s, err := mcc.New(p)
		require.NoError(t, err)
		sols, err := s.Solve(mcc.WithMaxSolutions(max), mcc.WithIntegrityChecks(mcc.ChecksCRC))
		require.NoError(t, err)
		require.Len(t, sols, max)
		require.Equal(t, full[:max], sols)
	}
}

// checkCover asserts the multiplicity and color conditions of a
// solution directly against the problem description.
func checkCover(t *testing.T, p *cover.Problem, sol mcc.Solution) {
	t.Helper()

	uses := map[string]int{}
	colors := map[string]string{}
	for _, idx := range sol {
		for _, ref := range p.Options[idx] {
			item, color := cover.SplitRef(ref)
			uses[item]++
			if color == "" {
				continue
			}
			if prev, ok := colors[item]; ok {
				require.Equal(t, prev, color, "item %s color conflict", item)
			} else {
				colors[item] = color
			}
		}
	}
	for _, it := range p.Primary {
		require.GreaterOrEqual(t, uses[it.Name], it.U, "item %s under-covered", it.Name)
		require.LessOrEqual(t, uses[it.Name], it.V, "item %s over-covered", it.Name)
	}
}

// TestSolutionCorrectness validates every enumerated solution of a
// batch of random problems against the problem description itself.
func TestSolutionCorrectness(t *testing.T) {
	for seed := int64(1); seed <= 6; seed++ {
		p := cover.Generate(8, 20, 3, seed)
		for _, sol := range solveAll(t, p) {
			checkCover(t, p, sol)
		}
	}
}

// TestDeterminism runs two independent solvers over the same input and
// requires identical solution sequences.
func TestDeterminism(t *testing.T) {
	p := cover.Generate(10, 28, 4, 42)
	first := solveAll(t, p)
	second := solveAll(t, p)
	require.Equal(t, first, second)
}

// TestExhaustedSolverIsReusable: a run that exhausts the search space
// restores the store, so a second run reproduces the first exactly.
func TestExhaustedSolverIsReusable(t *testing.T) {
	s, err := mcc.New(knuthToy())
	require.NoError(t, err)

	first, err := s.Solve(mcc.WithMaxSolutions(100), mcc.WithIntegrityChecks(mcc.ChecksFull))
	require.NoError(t, err)
	second, err := s.Solve(mcc.WithMaxSolutions(100), mcc.WithIntegrityChecks(mcc.ChecksFull))
	require.NoError(t, err)
	require.Equal(t, first, second)
}

// TestTruncatedSolverIsDirty: stopping at MaxSolutions leaves the store
// mid-search by design; further solves must refuse to run.
func TestTruncatedSolverIsDirty(t *testing.T) {
	p := cover.New()
	p.AddPrimary("A", 2, 3)
	p.AddOption("A")
	p.AddOption("A")
	p.AddOption("A")

	s, err := mcc.New(p)
	require.NoError(t, err)
	sols, err := s.Solve(mcc.WithMaxSolutions(1))
	require.NoError(t, err)
	require.Len(t, sols, 1)

	_, err = s.Solve()
	require.ErrorIs(t, err, mcc.ErrSolverDirty)
}

// ------------------------------------------------------------------------
// 4. Trace and stats plumbing.
// ------------------------------------------------------------------------

func TestTrace(t *testing.T) {
	var buf bytes.Buffer
	s, err := mcc.New(knuthToy())
	require.NoError(t, err)
	_, err = s.Solve(mcc.WithTrace(&buf))
	require.NoError(t, err)

	out := buf.String()
	require.Contains(t, out, "EnterLevel")
	require.Contains(t, out, "PrepareToBranch")
	require.Contains(t, out, "trying: ")
}

func TestStats(t *testing.T) {
	s, err := mcc.New(knuthToy())
	require.NoError(t, err)
	sols, err := s.Solve()
	require.NoError(t, err)
	require.Len(t, sols, 1)

	st := s.Stats()
	require.Equal(t, 1, st.Solutions)
	require.Greater(t, st.Loops, int64(0))
	require.Greater(t, st.Levels, int64(0))
}
