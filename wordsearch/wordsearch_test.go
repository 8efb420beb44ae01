package wordsearch_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/exactcover/cover"
	"github.com/katalvlaran/exactcover/mcc"
	"github.com/katalvlaran/exactcover/wordsearch"
)

func TestNew_Validation(t *testing.T) {
	_, err := wordsearch.New(0, 3, []string{"cat"})
	require.ErrorIs(t, err, wordsearch.ErrBadGrid)

	_, err = wordsearch.New(3, 3, nil)
	require.ErrorIs(t, err, wordsearch.ErrNoWords)

	_, err = wordsearch.New(3, 3, []string{"elephant"})
	require.ErrorIs(t, err, wordsearch.ErrWordTooLong)
}

func TestProblemShape(t *testing.T) {
	s, err := wordsearch.New(3, 3, []string{"cat", "dog", "cat"})
	require.NoError(t, err)

	p := s.Problem()
	require.NoError(t, p.Validate())
	require.Len(t, p.Primary, 2, "duplicate words collapse")
	require.Len(t, p.Secondary, 9)
	require.Len(t, p.Colors, 26)

	// A length-3 word on a 3×3 grid: two directions along each of the
	// three rows and three columns, plus four diagonal runs = 16.
	count := 0
	for _, opt := range p.Options {
		if opt[0] == "cat" {
			count++
		}
	}
	require.Equal(t, 16, count)
}

// checkPlacements validates a solution directly against the encoding:
// every word placed exactly once and crossings letter-consistent.
func checkPlacements(t *testing.T, p *cover.Problem, sol mcc.Solution) {
	t.Helper()

	placed := map[string]int{}
	letters := map[string]string{}
	for _, idx := range sol {
		refs := p.Options[idx]
		placed[refs[0]]++
		for _, ref := range refs[1:] {
			pos, letter := cover.SplitRef(ref)
			if prev, ok := letters[pos]; ok {
				require.Equal(t, prev, letter, "conflicting letters at %s", pos)
			} else {
				letters[pos] = letter
			}
		}
	}
	for _, it := range p.Primary {
		require.Equal(t, 1, placed[it.Name], "word %s placement count", it.Name)
	}
}

func TestSolve_TwoWords(t *testing.T) {
	s, err := wordsearch.New(3, 3, []string{"cat", "dog"})
	require.NoError(t, err)

	sv, err := mcc.New(s.Problem())
	require.NoError(t, err)
	sols, err := sv.Solve(mcc.WithMaxSolutions(5), mcc.WithIntegrityChecks(mcc.ChecksCRC))
	require.NoError(t, err)
	require.NotEmpty(t, sols)
	for _, sol := range sols {
		checkPlacements(t, s.Problem(), sol)
	}
}

// TestSolve_NoRoom: three 2-letter words on a 2×2 grid must overlap,
// and with all letters distinct no overlap is consistent.
func TestSolve_NoRoom(t *testing.T) {
	s, err := wordsearch.New(2, 2, []string{"ab", "cd", "ef"})
	require.NoError(t, err)

	sv, err := mcc.New(s.Problem())
	require.NoError(t, err)
	sols, err := sv.Solve(mcc.WithMaxSolutions(1), mcc.WithIntegrityChecks(mcc.ChecksCRC))
	require.NoError(t, err)
	require.Empty(t, sols)
}

func TestRender(t *testing.T) {
	s, err := wordsearch.New(3, 3, []string{"cat"})
	require.NoError(t, err)
	p := s.Problem()

	// Find the left-to-right placement along the top row.
	target := -1
	for idx, refs := range p.Options {
		if len(refs) == 4 && refs[0] == "cat" && refs[1] == "0_0:c" && refs[2] == "0_1:a" {
			target = idx

			break
		}
	}
	require.GreaterOrEqual(t, target, 0)

	out, err := s.Render([]int{target}, 0, 0)
	require.NoError(t, err)
	require.Equal(t, "cat\n---\n---\n", out)

	padded, err := s.Render([]int{target}, 1, 1)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(padded, "c a t\n\n"), "got %q", padded)
}
