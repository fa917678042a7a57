package searcher

import (
	"connect4/experiments/metrics"
	"connect4/game"
	"sort"

	"github.com/pkg/errors"
)

// ErrNoLegalMove is returned when a bot is asked to move on a board without
// a playable column.
var ErrNoLegalMove = errors.New("no legal move")

// Searcher picks a column for its side. Implementations own a private random
// source and are not safe for concurrent use; build one per goroutine.
type Searcher interface {
	ChooseColumn(b *game.Board) (int, error)
}

// Reporter is a Searcher that also reports how its search went.
type Reporter interface {
	Searcher
	Search(b *game.Board) (int, metrics.SearchMetric, error)
}

func legalOrFail(b *game.Board) ([]int, error) {
	columns := b.LegalColumns()
	if len(columns) == 0 {
		return nil, errors.Wrapf(ErrNoLegalMove, "%d of %d slots filled", b.Filled(), b.Rows()*b.Columns())
	}
	return columns, nil
}

// centerFirst orders columns by distance from the center column, left before
// right on equal distance.
func centerFirst(columns []int, width int) []int {
	center := width / 2
	ordered := make([]int, len(columns))
	copy(ordered, columns)
	sort.SliceStable(ordered, func(i, j int) bool {
		di, dj := distance(ordered[i], center), distance(ordered[j], center)
		if di != dj {
			return di < dj
		}
		return ordered[i] < ordered[j]
	})
	return ordered
}

func distance(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
