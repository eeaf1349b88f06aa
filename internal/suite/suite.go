package suite

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Case is one named input for the smallest-free-number search together with
// the value the search is expected to produce.
type Case struct {
	Label    string
	Numbers  []uint64
	Expected uint64
}

// Default returns the fixed scenario set covering the empty input, gap
// positions at the start, middle, and end, and a large range with a single
// hole.
func Default() []Case {
	return []Case{
		{Label: "empty", Numbers: nil, Expected: 0},
		{Label: "single above zero", Numbers: []uint64{1}, Expected: 0},
		{Label: "gap in middle", Numbers: []uint64{0, 1, 2, 3, 5, 7, 9}, Expected: 4},
		{Label: "gap near start", Numbers: []uint64{0, 2, 3, 4, 5, 6, 7, 8, 9}, Expected: 1},
		{Label: "unordered with gap", Numbers: []uint64{9, 0, 4, 6, 1, 3, 5, 2, 8}, Expected: 7},
		RangeWithHole(999, 756),
	}
}

// FullRange returns the gap-free case {0, 1, ..., n-1}, whose answer is n.
func FullRange(n uint64) Case {
	numbers := make([]uint64, n)
	for i := range numbers {
		numbers[i] = uint64(i)
	}
	return Case{
		Label:    fmt.Sprintf("full range [0, %d)", n),
		Numbers:  numbers,
		Expected: n,
	}
}

// RangeWithHole returns the case {0, 1, ..., n} \ {hole}, whose answer is
// hole. Panics if hole > n, since the case would have no hole to find.
func RangeWithHole(n, hole uint64) Case {
	if hole > n {
		panic(fmt.Sprintf("hole %d is outside [0, %d]", hole, n))
	}
	numbers := make([]uint64, 0, n)
	for v := uint64(0); v <= n; v++ {
		if v == hole {
			continue
		}
		numbers = append(numbers, v)
	}
	return Case{
		Label:    fmt.Sprintf("range [0, %d] without %d", n, hole),
		Numbers:  numbers,
		Expected: hole,
	}
}

// Shuffled returns a copy of c with its numbers deterministically permuted.
// The permutation is derived from the case label and salt, so the same case
// shuffles the same way on every run and across Go releases. The expected
// answer is unchanged: the search is order-independent.
func Shuffled(c Case, salt string) Case {
	numbers := make([]uint64, len(c.Numbers))
	copy(numbers, c.Numbers)

	state := xxhash.Sum64String(c.Label + "\x00" + salt)
	for i := len(numbers) - 1; i > 0; i-- {
		j := splitmix64(&state) % uint64(i+1)
		numbers[i], numbers[j] = numbers[j], numbers[i]
	}
	return Case{
		Label:    fmt.Sprintf("%s shuffled:%s", c.Label, salt),
		Numbers:  numbers,
		Expected: c.Expected,
	}
}

// splitmix64 advances state and returns the next value of the stream.
func splitmix64(state *uint64) uint64 {
	*state += 0x9e3779b97f4a7c15
	z := *state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
