package searcher

import (
	"connect4/experiments/metrics"
	"connect4/game"
	"time"

	"golang.org/x/exp/rand"
)

// Random picks uniformly among the legal columns.
type Random struct {
	side game.Piece
	rng  *rand.Rand
}

func NewRandom(side game.Piece, rng *rand.Rand) *Random {
	if rng == nil {
		rng = newRand()
	}
	return &Random{side: side, rng: rng}
}

func NewRandomWithSeed(side game.Piece, seed uint64) *Random {
	return NewRandom(side, rand.New(rand.NewSource(seed)))
}

func (r *Random) Side() game.Piece { return r.side }

func (r *Random) ChooseColumn(b *game.Board) (int, error) {
	column, _, err := r.Search(b)
	return column, err
}

func (r *Random) Search(b *game.Board) (int, metrics.SearchMetric, error) {
	start := time.Now()
	columns, err := legalOrFail(b)
	if err != nil {
		return -1, metrics.SearchMetric{}, err
	}
	column := columns[r.rng.Intn(len(columns))]
	return column, metrics.SearchMetric{Duration: time.Since(start)}, nil
}
