package engine

import (
	"connect4/game"
	"connect4/searcher"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// fixedBot always answers with the same column.
type fixedBot struct {
	column int
	err    error
}

func (f fixedBot) ChooseColumn(b *game.Board) (int, error) {
	return f.column, f.err
}

// mutatingBot plays on the board it is given before answering.
type mutatingBot struct{}

func (mutatingBot) ChooseColumn(b *game.Board) (int, error) {
	column := b.LegalColumns()[0]
	if err := b.Play(column, b.ToMove()); err != nil {
		return -1, err
	}
	return column, nil
}

func randomPlayer(name string, side game.Piece, seed uint64) Player {
	return Player{Name: name, Searcher: searcher.NewRandomWithSeed(side, seed)}
}

func TestLocalEngineRun(t *testing.T) {
	t.Run("random bots play to the end", func(t *testing.T) {
		e := LocalEngine(game.PlayerB,
			randomPlayer("r1", game.PlayerA, 1),
			randomPlayer("r2", game.PlayerB, 2),
		)
		result, err := e.Run(context.Background())
		require.NoError(t, err)

		require.True(t, result.Board.IsOver())
		require.Equal(t, result.Board.Winner(), result.Winner)
		require.Equal(t, game.PlayerB, result.Game.Starter)
		require.Equal(t, result.Board.Filled(), result.Game.TotalMoves)
		require.Len(t, result.Moves, result.Game.TotalMoves)

		movesA, movesB := result.Game.Moves[game.PlayerA], result.Game.Moves[game.PlayerB]
		require.Equal(t, result.Game.TotalMoves, movesA+movesB)
		require.Contains(t, []int{0, 1}, movesB-movesA, "Starter makes the same or one more move")

		for i, move := range result.Moves {
			require.Equal(t, i+1, move.Step)
			if i%2 == 0 {
				require.Equal(t, game.PlayerB, move.Player)
				require.Equal(t, "r2", move.Bot)
			} else {
				require.Equal(t, game.PlayerA, move.Player)
			}
			require.GreaterOrEqual(t, move.Column, 0)
		}
	})

	t.Run("alpha-beta beats random", func(t *testing.T) {
		e := LocalEngine(game.PlayerA,
			Player{Name: "alphabeta", Searcher: searcher.NewAlphaBeta(game.PlayerA, searcher.WithDepth(4))},
			randomPlayer("random", game.PlayerB, 3),
		)
		result, err := e.Run(context.Background())
		require.NoError(t, err)
		require.Equal(t, game.PlayerA, result.Winner)
	})

	t.Run("starts from a given board", func(t *testing.T) {
		b := game.New(game.PlayerA)
		for i := 0; i < 3; i++ {
			require.NoError(t, b.Play(0, game.PlayerA))
			require.NoError(t, b.Play(6, game.PlayerB))
		}

		e := LocalEngine(game.PlayerB,
			Player{Name: "alphabeta", Searcher: searcher.NewAlphaBeta(game.PlayerA, searcher.WithDepth(2))},
			randomPlayer("random", game.PlayerB, 1),
			WithBoard(b),
		)
		result, err := e.Run(context.Background())
		require.NoError(t, err)
		require.Equal(t, game.PlayerA, result.Game.Starter, "Side to move on the given board starts")
		require.Equal(t, game.PlayerA, result.Winner)
		require.Equal(t, 1, result.Game.TotalMoves)
		require.Equal(t, 6, b.Filled(), "Given board should not be modified")
	})

	t.Run("bots get a copy of the board", func(t *testing.T) {
		e := LocalEngine(game.PlayerA,
			Player{Name: "mutating", Searcher: mutatingBot{}},
			randomPlayer("random", game.PlayerB, 1),
		)
		result, err := e.Run(context.Background())
		require.NoError(t, err)
		require.Equal(t, result.Board.Filled(), result.Game.TotalMoves)
	})
}

func TestLocalEngineErrors(t *testing.T) {
	t.Run("illegal column ends the game", func(t *testing.T) {
		e := LocalEngine(game.PlayerA,
			Player{Name: "bad", Searcher: fixedBot{column: 9}},
			randomPlayer("random", game.PlayerB, 1),
		)
		result, err := e.Run(context.Background())
		require.ErrorIs(t, err, game.ErrIllegalMove)
		require.Zero(t, result.Game.TotalMoves, "No move should be substituted")
		require.Zero(t, result.Board.Filled())
	})

	t.Run("full column ends the game", func(t *testing.T) {
		e := LocalEngine(game.PlayerA,
			Player{Name: "stubborn", Searcher: fixedBot{column: 0}},
			Player{Name: "stubborn too", Searcher: fixedBot{column: 0}},
		)
		result, err := e.Run(context.Background())
		require.ErrorIs(t, err, game.ErrIllegalMove)
		require.Equal(t, game.Rows, result.Game.TotalMoves)
	})

	t.Run("bot errors are returned", func(t *testing.T) {
		boom := errors.New("boom")
		e := LocalEngine(game.PlayerA,
			randomPlayer("random", game.PlayerA, 1),
			Player{Name: "broken", Searcher: fixedBot{err: boom}},
		)
		_, err := e.Run(context.Background())
		require.ErrorIs(t, err, boom)
	})

	t.Run("cancelled context stops between turns", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		e := LocalEngine(game.PlayerA,
			randomPlayer("r1", game.PlayerA, 1),
			randomPlayer("r2", game.PlayerB, 2),
		)
		result, err := e.Run(ctx)
		require.ErrorIs(t, err, context.Canceled)
		require.Zero(t, result.Game.TotalMoves)
	})

	t.Run("missing searcher panics", func(t *testing.T) {
		require.Panics(t, func() {
			LocalEngine(game.PlayerA, Player{Name: "nobody"}, randomPlayer("r", game.PlayerB, 1))
		})
	})
}
