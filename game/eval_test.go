package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScore(t *testing.T) {
	t.Run("empty board scores zero", func(t *testing.T) {
		require.Zero(t, NewScorer(PlayerA).Score(New(PlayerA)))
	})

	t.Run("three center pieces score positive", func(t *testing.T) {
		b := New(PlayerA)
		for i := 0; i < 3; i++ {
			require.NoError(t, b.Play(3, PlayerA))
		}

		// Center bonus 3*3, window A A A _ is +5, window A A _ _ is +2
		require.Equal(t, 16, NewScorer(PlayerA).Score(b))
	})

	t.Run("opponent three is penalized", func(t *testing.T) {
		b := New(PlayerA)
		place(b, 0, 0, PlayerB)
		place(b, 0, 1, PlayerB)
		place(b, 0, 2, PlayerB)

		require.Equal(t, OpponentThree, NewScorer(PlayerA).Score(b))
	})

	t.Run("scores are side relative", func(t *testing.T) {
		b := New(PlayerA)
		place(b, 0, 0, PlayerB)
		place(b, 0, 1, PlayerB)
		place(b, 0, 2, PlayerB)

		// B B B _ and B B _ _ along the bottom row
		require.Equal(t, ThreeScore+TwoScore, NewScorer(PlayerB).Score(b))
	})

	t.Run("line window scores four", func(t *testing.T) {
		b := New(PlayerA)
		for c := 0; c < 4; c++ {
			place(b, 0, c, PlayerA)
		}

		// Windows starting at columns 0, 1 and 2, plus the piece at (0,3)
		expected := FourScore + ThreeScore + TwoScore + CenterPieceScore
		require.Equal(t, expected, NewScorer(PlayerA).Score(b))
	})
}

func TestEvaluateWindow(t *testing.T) {
	s := NewScorer(PlayerA)
	tests := []struct {
		name   string
		window [WinLength]Piece
		want   int
	}{
		{"four own", [WinLength]Piece{PlayerA, PlayerA, PlayerA, PlayerA}, FourScore},
		{"three own", [WinLength]Piece{PlayerA, Empty, PlayerA, PlayerA}, ThreeScore},
		{"two own", [WinLength]Piece{Empty, PlayerA, Empty, PlayerA}, TwoScore},
		{"three opponent", [WinLength]Piece{PlayerB, PlayerB, Empty, PlayerB}, OpponentThree},
		{"blocked three", [WinLength]Piece{PlayerA, PlayerA, PlayerA, PlayerB}, 0},
		{"mixed", [WinLength]Piece{PlayerA, PlayerB, PlayerA, PlayerB}, 0},
		{"single own", [WinLength]Piece{PlayerA, Empty, Empty, Empty}, 0},
		{"empty", [WinLength]Piece{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, s.evaluateWindow(tt.window))
		})
	}
}

func TestIsTerminal(t *testing.T) {
	s := NewScorer(PlayerA)

	t.Run("empty board", func(t *testing.T) {
		require.False(t, s.IsTerminal(New(PlayerA)))
	})

	t.Run("opponent line", func(t *testing.T) {
		b := New(PlayerA)
		for r := 0; r < 4; r++ {
			place(b, r, 5, PlayerB)
		}
		require.True(t, s.IsTerminal(b))
	})

	t.Run("full board", func(t *testing.T) {
		require.True(t, s.IsTerminal(fillDrawn(t, false)))
	})
}
