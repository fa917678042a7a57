package engine

import (
	"connect4/experiments/metrics"
	"connect4/game"
	"context"
)

type Engine interface {
	// Run plays a game till there's a winner or the board is full
	Run(ctx context.Context) (Result, error)
}

type Result struct {
	Winner game.Piece // Empty on a draw
	Board  *game.Board
	Game   metrics.GameMetric
	Moves  []metrics.MoveMetric
}
