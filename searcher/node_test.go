package searcher

import (
	"connect4/game"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestNewTree(t *testing.T) {
	b := game.New(game.PlayerA)
	tr := newTree(b, game.PlayerA)

	root := tr.root()
	require.Equal(t, noParent, root.parent)
	require.Equal(t, game.PlayerB, root.mover, "Root mover is the side that moved last")
	require.ElementsMatch(t, b.LegalColumns(), root.untried)
	require.False(t, root.terminal)

	require.NoError(t, root.board.Play(0, game.PlayerA))
	require.Zero(t, b.Filled(), "Root should hold a clone of the board")
}

func TestExpand(t *testing.T) {
	t.Run("adds one child for an untried column", func(t *testing.T) {
		tr := newTree(game.New(game.PlayerA), game.PlayerA)
		rng := rand.New(rand.NewSource(1))

		ci := tr.expand(0, rng)
		child := tr.nodes[ci]
		require.Equal(t, 1, ci)
		require.Equal(t, 0, child.parent)
		require.Equal(t, game.PlayerA, child.mover)
		require.Equal(t, 1, child.depth)
		require.Equal(t, game.PlayerA, child.board.SlotAt(0, child.column))
		require.NotContains(t, tr.root().untried, child.column)
		require.Len(t, tr.root().untried, game.Columns-1)
		require.Equal(t, []int{ci}, tr.root().children)
	})

	t.Run("expands every column exactly once", func(t *testing.T) {
		tr := newTree(game.New(game.PlayerA), game.PlayerA)
		rng := rand.New(rand.NewSource(2))

		columns := []int{}
		for !tr.isFullyExpanded(0) {
			ci := tr.expand(0, rng)
			columns = append(columns, tr.nodes[ci].column)
		}
		require.ElementsMatch(t, []int{0, 1, 2, 3, 4, 5, 6}, columns)
	})

	t.Run("marks game ending children terminal", func(t *testing.T) {
		b := fillExcept(t, 3)
		play(t, b, game.PlayerB, 3)
		play(t, b, game.PlayerA, 3)
		play(t, b, game.PlayerB, 3)
		play(t, b, game.PlayerA, 3)
		play(t, b, game.PlayerB, 3)
		tr := newTree(b, game.PlayerA)

		ci := tr.expand(0, rand.New(rand.NewSource(1)))
		require.True(t, tr.nodes[ci].terminal, "Filling the last slot ends the game")
		require.Equal(t, game.Empty, tr.nodes[ci].winner)
		require.Empty(t, tr.nodes[ci].untried)
	})
}

func TestBackup(t *testing.T) {
	tr := newTree(game.New(game.PlayerA), game.PlayerA)
	rng := rand.New(rand.NewSource(1))
	child := tr.expand(0, rng)
	grandChild := tr.expand(child, rng)

	t.Run("win for the side that moved into the leaf", func(t *testing.T) {
		tr.backup(grandChild, game.PlayerB)

		require.Equal(t, 1.0, tr.nodes[grandChild].visits)
		require.Equal(t, WIN, tr.nodes[grandChild].wins, "PlayerB moved into the grandchild")
		require.Equal(t, LOSS, tr.nodes[child].wins, "PlayerA moved into the child")
		require.Equal(t, WIN, tr.root().wins)
		require.Equal(t, 1.0, tr.root().visits)
	})

	t.Run("draw counts half for everyone", func(t *testing.T) {
		tr.backup(child, game.Empty)

		require.Equal(t, 2.0, tr.nodes[child].visits)
		require.Equal(t, DRAW, tr.nodes[child].wins)
		require.Equal(t, 1.0, tr.nodes[grandChild].visits, "Backup stops at the root")
		require.Equal(t, WIN+DRAW, tr.root().wins)
	})
}

func TestSelectChild(t *testing.T) {
	tr := newTree(game.New(game.PlayerA), game.PlayerA)
	rng := rand.New(rand.NewSource(1))
	a := tr.expand(0, rng)
	b := tr.expand(0, rng)
	tr.backup(a, game.PlayerA)
	tr.backup(b, game.PlayerB)

	require.Equal(t, a, tr.selectChild(0, 0), "Pure exploitation picks the winning child")

	t.Run("unvisited child first", func(t *testing.T) {
		c := tr.expand(0, rng)
		require.Equal(t, c, tr.selectChild(0, 0))
	})

	t.Run("panics without children", func(t *testing.T) {
		require.Panics(t, func() {
			tr.selectChild(a, 1)
		})
	})
}

func TestMostVisited(t *testing.T) {
	tr := newTree(game.New(game.PlayerA), game.PlayerA)
	rng := rand.New(rand.NewSource(4))
	for !tr.isFullyExpanded(0) {
		tr.expand(0, rng)
	}
	for _, ci := range tr.root().children {
		tr.nodes[ci].visits = 2
	}
	require.Equal(t, 0, tr.mostVisited(), "Ties go to the lowest column")

	for _, ci := range tr.root().children {
		if tr.nodes[ci].column == 4 {
			tr.nodes[ci].visits = 3
		}
	}
	require.Equal(t, 4, tr.mostVisited())
}
