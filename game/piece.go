package game

// Piece is the content of a board slot, and doubles as the identity of a side.
type Piece int8

const (
	Empty Piece = iota
	PlayerA
	PlayerB
)

// Opponent returns the other side. Empty has no opponent and maps to itself.
func (p Piece) Opponent() Piece {
	switch p {
	case PlayerA:
		return PlayerB
	case PlayerB:
		return PlayerA
	default:
		return Empty
	}
}

func (p Piece) String() string {
	switch p {
	case PlayerA:
		return "A"
	case PlayerB:
		return "B"
	default:
		return "."
	}
}
