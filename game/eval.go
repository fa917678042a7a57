package game

// Window weights for Scorer.
const (
	FourScore        = 100
	ThreeScore       = 5
	TwoScore         = 2
	OpponentThree    = -4
	CenterPieceScore = 3
)

// Scorer evaluates non-terminal boards from the point of view of one side.
type Scorer struct {
	side     Piece
	opponent Piece
}

func NewScorer(side Piece) Scorer {
	return Scorer{side: side, opponent: side.Opponent()}
}

func (s Scorer) Side() Piece { return s.side }

// Score sums the window contributions over every window on the grid plus a
// flat bonus per own piece in the center column.
//
// Score does not check for terminal boards. The FourScore term is only
// reached when a caller scores a board that already holds a line.
func (s Scorer) Score(b *Board) int {
	score := 0

	center := b.Columns() / 2
	for r := 0; r < b.Rows(); r++ {
		if b.SlotAt(r, center) == s.side {
			score += CenterPieceScore
		}
	}

	b.windows(func(window [WinLength]Piece) {
		score += s.evaluateWindow(window)
	})
	return score
}

// IsTerminal reports whether either side has a line or no column is playable.
func (s Scorer) IsTerminal(b *Board) bool {
	return b.IsWinningFor(s.side) || b.IsWinningFor(s.opponent) || len(b.LegalColumns()) == 0
}

func (s Scorer) evaluateWindow(window [WinLength]Piece) int {
	own, opponent, empty := 0, 0, 0
	for _, p := range window {
		switch p {
		case s.side:
			own++
		case s.opponent:
			opponent++
		default:
			empty++
		}
	}

	score := 0
	switch {
	case own == 4:
		score += FourScore
	case own == 3 && empty == 1:
		score += ThreeScore
	case own == 2 && empty == 2:
		score += TwoScore
	}
	if opponent == 3 && empty == 1 {
		score += OpponentThree
	}
	return score
}
