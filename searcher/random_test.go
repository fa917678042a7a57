package searcher

import (
	"connect4/game"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRandom(t *testing.T) {
	t.Run("fixed seed reproduces the column sequence", func(t *testing.T) {
		b := game.New(game.PlayerA)
		r1 := NewRandomWithSeed(game.PlayerA, 7)
		r2 := NewRandomWithSeed(game.PlayerA, 7)

		for i := 0; i < 50; i++ {
			c1, err := r1.ChooseColumn(b)
			require.NoError(t, err)
			c2, err := r2.ChooseColumn(b)
			require.NoError(t, err)
			require.Equal(t, c1, c2, "Same seed should give the same choice at call %d", i)
		}
	})

	t.Run("only legal columns", func(t *testing.T) {
		b := fillExcept(t, 1, 4)
		r := NewRandomWithSeed(game.PlayerA, 3)

		seen := map[int]bool{}
		for i := 0; i < 100; i++ {
			column, err := r.ChooseColumn(b)
			require.NoError(t, err)
			require.Contains(t, []int{1, 4}, column)
			seen[column] = true
		}
		require.Len(t, seen, 2, "Both legal columns should come up in 100 draws")
	})

	t.Run("nil source falls back to clock seed", func(t *testing.T) {
		r := NewRandom(game.PlayerB, nil)
		require.Equal(t, game.PlayerB, r.Side())

		column, err := r.ChooseColumn(game.New(game.PlayerB))
		require.NoError(t, err)
		require.True(t, column >= 0 && column < game.Columns)
	})
}
