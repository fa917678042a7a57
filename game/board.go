package game

import (
	"fmt"
	"strings"
)

const (
	Rows      = 6
	Columns   = 7
	WinLength = 4
)

// Board is a connect-four grid. Row 0 is the bottom row.
//
// A Board is mutated only through Play; searches explore hypothetical
// continuations on clones.
type Board struct {
	rows    int
	columns int
	slots   []Piece // row-major, len rows*columns
	heights []int   // pieces per column
	filled  int
	toMove  Piece

	lastColumn int
	lastSide   Piece
}

// New returns an empty standard 6x7 board with first to move.
func New(first Piece) *Board {
	b, err := NewWithSize(Rows, Columns, first)
	if err != nil {
		panic(err)
	}
	return b
}

func NewWithSize(rows, columns int, first Piece) (*Board, error) {
	if rows <= 0 || columns <= 0 {
		return nil, fmt.Errorf("%dx%d: %w", rows, columns, ErrInvalidDimensions)
	}
	if first == Empty {
		return nil, fmt.Errorf("first side must not be empty: %w", ErrInvalidDimensions)
	}
	return &Board{
		rows:       rows,
		columns:    columns,
		slots:      make([]Piece, rows*columns),
		heights:    make([]int, columns),
		toMove:     first,
		lastColumn: -1,
	}, nil
}

func (b *Board) Rows() int     { return b.rows }
func (b *Board) Columns() int  { return b.columns }
func (b *Board) Filled() int   { return b.filled }
func (b *Board) ToMove() Piece { return b.toMove }

// LastMove reports the most recently played column and side. ok is false on a
// board no piece has been dropped on.
func (b *Board) LastMove() (column int, side Piece, ok bool) {
	if b.lastColumn < 0 {
		return -1, Empty, false
	}
	return b.lastColumn, b.lastSide, true
}

// SlotAt returns the content of a slot, or Empty for coordinates off the grid.
func (b *Board) SlotAt(row, column int) Piece {
	if row < 0 || row >= b.rows || column < 0 || column >= b.columns {
		return Empty
	}
	return b.slots[row*b.columns+column]
}

func (b *Board) IsLegal(column int) bool {
	return column >= 0 && column < b.columns && b.heights[column] < b.rows
}

// LegalColumns returns the playable columns in ascending order.
func (b *Board) LegalColumns() []int {
	columns := make([]int, 0, b.columns)
	for c := 0; c < b.columns; c++ {
		if b.heights[c] < b.rows {
			columns = append(columns, c)
		}
	}
	return columns
}

// Play drops a piece for side into the lowest empty slot of column and hands
// the move to the opponent of side.
func (b *Board) Play(column int, side Piece) error {
	if side != PlayerA && side != PlayerB {
		return fmt.Errorf("side %d: %w", side, ErrIllegalMove)
	}
	if column < 0 || column >= b.columns {
		return fmt.Errorf("column %d out of range [0,%d): %w", column, b.columns, ErrIllegalMove)
	}
	row := b.heights[column]
	if row >= b.rows {
		return fmt.Errorf("column %d is full: %w", column, ErrIllegalMove)
	}

	b.slots[row*b.columns+column] = side
	b.heights[column]++
	b.filled++
	b.toMove = side.Opponent()
	b.lastColumn = column
	b.lastSide = side
	return nil
}

// IsWinningFor scans the whole grid in all four orientations. It makes no
// assumption about where the last piece landed.
func (b *Board) IsWinningFor(side Piece) bool {
	if side == Empty {
		return false
	}
	for _, d := range directions {
		for r := 0; r < b.rows; r++ {
			for c := 0; c < b.columns; c++ {
				if b.lineFrom(r, c, d, side) {
					return true
				}
			}
		}
	}
	return false
}

func (b *Board) IsFull() bool {
	return b.filled == b.rows*b.columns
}

func (b *Board) IsDraw() bool {
	return b.IsFull() && !b.IsWinningFor(PlayerA) && !b.IsWinningFor(PlayerB)
}

// Winner returns the side holding a line, or Empty.
func (b *Board) Winner() Piece {
	switch {
	case b.IsWinningFor(PlayerA):
		return PlayerA
	case b.IsWinningFor(PlayerB):
		return PlayerB
	default:
		return Empty
	}
}

// IsOver reports whether either side has a line or the board is full.
func (b *Board) IsOver() bool {
	return b.IsFull() || b.Winner() != Empty
}

func (b *Board) Clone() *Board {
	slots := make([]Piece, len(b.slots))
	copy(slots, b.slots)
	heights := make([]int, len(b.heights))
	copy(heights, b.heights)

	return &Board{
		rows:       b.rows,
		columns:    b.columns,
		slots:      slots,
		heights:    heights,
		filled:     b.filled,
		toMove:     b.toMove,
		lastColumn: b.lastColumn,
		lastSide:   b.lastSide,
	}
}

// String renders the grid top row first.
func (b *Board) String() string {
	var sb strings.Builder
	for r := b.rows - 1; r >= 0; r-- {
		for c := 0; c < b.columns; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(b.SlotAt(r, c).String())
		}
		sb.WriteByte('\n')
	}
	for c := 0; c < b.columns; c++ {
		if c > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%d", c%10)
	}
	return sb.String()
}

type direction struct{ dr, dc int }

// Horizontal, vertical, rising diagonal, falling diagonal.
var directions = [4]direction{{0, 1}, {1, 0}, {1, 1}, {-1, 1}}

func (b *Board) lineFrom(row, column int, d direction, side Piece) bool {
	endRow := row + d.dr*(WinLength-1)
	endColumn := column + d.dc*(WinLength-1)
	if endRow < 0 || endRow >= b.rows || endColumn < 0 || endColumn >= b.columns {
		return false
	}
	for i := 0; i < WinLength; i++ {
		if b.slots[(row+d.dr*i)*b.columns+column+d.dc*i] != side {
			return false
		}
	}
	return true
}

// windows calls fn with every WinLength-slot window on the grid.
func (b *Board) windows(fn func(window [WinLength]Piece)) {
	var window [WinLength]Piece
	for _, d := range directions {
		for r := 0; r < b.rows; r++ {
			for c := 0; c < b.columns; c++ {
				endRow := r + d.dr*(WinLength-1)
				endColumn := c + d.dc*(WinLength-1)
				if endRow < 0 || endRow >= b.rows || endColumn < 0 || endColumn >= b.columns {
					continue
				}
				for i := 0; i < WinLength; i++ {
					window[i] = b.slots[(r+d.dr*i)*b.columns+c+d.dc*i]
				}
				fn(window)
			}
		}
	}
}
