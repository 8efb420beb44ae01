package cover

import (
	"math/rand"
	"strconv"
)

// Generate builds a random classical exact-cover problem for testing
// and benchmarking: items are named "0".."items-1", all primary with
// u = v = 1, and each of the optionCount options draws optionLen item
// references uniformly at random.
//
// A draw that repeats an item already present in the option is skipped
// rather than redrawn, so options may come out shorter than optionLen.
// The same (items, optionCount, optionLen, seed) tuple always produces
// the same problem.
func Generate(items, optionCount, optionLen int, seed int64) *Problem {
	rng := rand.New(rand.NewSource(seed))

	p := New()
	for i := 0; i < items; i++ {
		p.AddPrimaryOnce(strconv.Itoa(i))
	}

	seen := make(map[int]bool, optionLen)
	for i := 0; i < optionCount; i++ {
		clear(seen)
		refs := make([]string, 0, optionLen)
		for j := 0; j < optionLen; j++ {
			v := rng.Intn(items)
			if seen[v] {
				continue
			}
			seen[v] = true
			refs = append(refs, strconv.Itoa(v))
		}
		p.AddOption(refs...)
	}

	return p
}
