package searcher

import (
	"connect4/experiments/metrics"
	"connect4/game"
	"connect4/meta"
	"math"
)

// WinScore is the value of a won position. Terminal values are shifted by
// the remaining depth so that quicker wins and slower losses rank higher.
// Any terminal value outweighs every heuristic score.
const WinScore = 1_000_000

const infinity = math.MaxInt32

type AlphaBetaOption func(a *AlphaBeta)

// AlphaBeta is a depth-limited minimax search with alpha-beta pruning that
// scores cutoff positions with game.Scorer.
type AlphaBeta struct {
	side    game.Piece
	depth   int
	scorer  game.Scorer
	metrics metrics.Collector
}

// WithDepth sets how many plies are searched below each candidate column.
func WithDepth(depth int) AlphaBetaOption {
	return func(a *AlphaBeta) {
		if depth > 0 {
			a.depth = depth
		}
	}
}

func WithAlphaBetaMetrics() AlphaBetaOption {
	return func(a *AlphaBeta) {
		a.metrics = metrics.NewCollector()
	}
}

func NewAlphaBeta(side game.Piece, options ...AlphaBetaOption) *AlphaBeta {
	a := &AlphaBeta{
		side:    side,
		depth:   meta.DEPTH,
		scorer:  game.NewScorer(side),
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(a)
	}
	return a
}

func (a *AlphaBeta) Side() game.Piece { return a.side }
func (a *AlphaBeta) Depth() int       { return a.depth }

func (a *AlphaBeta) ChooseColumn(b *game.Board) (int, error) {
	column, _, err := a.Search(b)
	return column, err
}

// Search returns the best column for the searcher's side. Equal values go to
// the column closest to the center.
func (a *AlphaBeta) Search(b *game.Board) (int, metrics.SearchMetric, error) {
	columns, err := legalOrFail(b)
	if err != nil {
		return -1, metrics.SearchMetric{}, err
	}
	a.metrics.Start(a.depth)

	best, bestScore := -1, -infinity
	alpha, beta := -infinity, infinity
	for _, column := range centerFirst(columns, b.Columns()) {
		child := b.Clone()
		if err := child.Play(column, a.side); err != nil {
			panic(err)
		}
		score := a.minimax(child, a.depth, alpha, beta, false, 1)
		if score > bestScore {
			best, bestScore = column, score
		}
		alpha = max(alpha, bestScore)
	}
	return best, a.metrics.Complete(), nil
}

func (a *AlphaBeta) minimax(b *game.Board, depth, alpha, beta int, maximizing bool, ply int) int {
	a.metrics.AddNode()
	a.metrics.ObserveDepth(ply)

	opponent := a.side.Opponent()
	switch {
	case b.IsWinningFor(a.side):
		return WinScore + depth
	case b.IsWinningFor(opponent):
		return -WinScore - depth
	}
	columns := b.LegalColumns()
	if len(columns) == 0 {
		return 0
	}
	if depth == 0 {
		return a.scorer.Score(b)
	}

	if maximizing {
		value := -infinity
		for _, column := range centerFirst(columns, b.Columns()) {
			child := b.Clone()
			if err := child.Play(column, a.side); err != nil {
				panic(err)
			}
			value = max(value, a.minimax(child, depth-1, alpha, beta, false, ply+1))
			alpha = max(alpha, value)
			if alpha >= beta {
				break
			}
		}
		return value
	}

	value := infinity
	for _, column := range centerFirst(columns, b.Columns()) {
		child := b.Clone()
		if err := child.Play(column, opponent); err != nil {
			panic(err)
		}
		value = min(value, a.minimax(child, depth-1, alpha, beta, true, ply+1))
		beta = min(beta, value)
		if alpha >= beta {
			break
		}
	}
	return value
}
