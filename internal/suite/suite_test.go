package suite

import (
	"slices"
	"testing"

	"github.com/garethgeorge/gominfree/internal/minfree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cases := Default()
	require.NotEmpty(t, cases)

	seen := make(map[string]bool)
	for _, c := range cases {
		require.False(t, seen[c.Label], "duplicate label %q", c.Label)
		seen[c.Label] = true
		assert.Equal(t, c.Expected, minfree.Find(c.Numbers), "case %q", c.Label)
	}
}

func TestFullRange(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		c := FullRange(0)
		assert.Empty(t, c.Numbers)
		assert.Equal(t, uint64(0), c.Expected)
	})

	t.Run("contents", func(t *testing.T) {
		c := FullRange(5)
		assert.Equal(t, []uint64{0, 1, 2, 3, 4}, c.Numbers)
		assert.Equal(t, uint64(5), c.Expected)
		assert.Equal(t, c.Expected, minfree.Find(c.Numbers))
	})
}

func TestRangeWithHole(t *testing.T) {
	t.Run("hole in middle", func(t *testing.T) {
		c := RangeWithHole(5, 3)
		assert.Equal(t, []uint64{0, 1, 2, 4, 5}, c.Numbers)
		assert.Equal(t, uint64(3), c.Expected)
	})

	t.Run("hole at zero", func(t *testing.T) {
		c := RangeWithHole(3, 0)
		assert.Equal(t, []uint64{1, 2, 3}, c.Numbers)
		assert.Equal(t, uint64(0), c.Expected)
	})

	t.Run("hole at end", func(t *testing.T) {
		c := RangeWithHole(3, 3)
		assert.Equal(t, []uint64{0, 1, 2}, c.Numbers)
		assert.Equal(t, uint64(3), c.Expected)
	})

	t.Run("hole outside range panics", func(t *testing.T) {
		assert.Panics(t, func() { RangeWithHole(3, 4) })
	})

	t.Run("answer matches", func(t *testing.T) {
		c := RangeWithHole(999, 756)
		assert.Equal(t, c.Expected, minfree.Find(c.Numbers))
	})
}

func TestShuffled(t *testing.T) {
	base := RangeWithHole(200, 77)

	t.Run("is a permutation", func(t *testing.T) {
		c := Shuffled(base, "a")
		require.Equal(t, len(base.Numbers), len(c.Numbers))
		assert.NotEqual(t, base.Numbers, c.Numbers)

		sorted := slices.Clone(c.Numbers)
		slices.Sort(sorted)
		assert.Equal(t, base.Numbers, sorted)
	})

	t.Run("deterministic", func(t *testing.T) {
		assert.Equal(t, Shuffled(base, "a"), Shuffled(base, "a"))
	})

	t.Run("salt varies the permutation", func(t *testing.T) {
		assert.NotEqual(t, Shuffled(base, "a").Numbers, Shuffled(base, "b").Numbers)
	})

	t.Run("does not modify the source case", func(t *testing.T) {
		before := slices.Clone(base.Numbers)
		Shuffled(base, "a")
		assert.Equal(t, before, base.Numbers)
	})

	t.Run("expected answer unchanged", func(t *testing.T) {
		c := Shuffled(base, "a")
		assert.Equal(t, base.Expected, c.Expected)
		assert.Equal(t, c.Expected, minfree.Find(c.Numbers))
	})
}
