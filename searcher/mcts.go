package searcher

import (
	"connect4/experiments/metrics"
	"connect4/game"
	"connect4/meta"
	"time"

	"golang.org/x/exp/rand"
)

type Option func(m *MCTS)

// MCTS picks columns by UCT tree search with uniformly random rollouts.
type MCTS struct {
	side        game.Piece
	iterations  int
	duration    time.Duration
	exploration float64
	rng         *rand.Rand
	metrics     metrics.Collector
}

// WithIterations sets a fixed iteration budget. It takes precedence over
// WithDuration.
func WithIterations(iterations int) Option {
	return func(m *MCTS) {
		if iterations > 0 {
			m.iterations = iterations
		}
	}
}

func WithDuration(duration time.Duration) Option {
	return func(m *MCTS) {
		if duration > 0 {
			m.duration = duration
		}
	}
}

func WithExploration(c float64) Option {
	return func(m *MCTS) {
		if c >= 0 {
			m.exploration = c
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(m *MCTS) {
		m.rng = rand.New(rand.NewSource(seed))
	}
}

func WithRand(rng *rand.Rand) Option {
	return func(m *MCTS) {
		if rng != nil {
			m.rng = rng
		}
	}
}

func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMCTS(side game.Piece, options ...Option) *MCTS {
	m := &MCTS{ // Default values
		side:        side,
		exploration: meta.EXPLORATION,
		metrics:     metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.iterations <= 0 && m.duration <= 0 {
		m.iterations = meta.ITERATIONS
	}
	if m.rng == nil {
		m.rng = newRand()
	}
	return m
}

func (m *MCTS) Side() game.Piece { return m.side }

func (m *MCTS) ChooseColumn(b *game.Board) (int, error) {
	column, _, err := m.Search(b)
	return column, err
}

func (m *MCTS) Search(b *game.Board) (int, metrics.SearchMetric, error) {
	t, err := m.search(b)
	if err != nil {
		return -1, metrics.SearchMetric{}, err
	}
	return t.mostVisited(), m.metrics.Complete(), nil
}

// search builds a fresh tree for b. After N iterations the root has N visits
// and its children's visits sum to N.
func (m *MCTS) search(b *game.Board) (*tree, error) {
	if _, err := legalOrFail(b); err != nil {
		return nil, err
	}

	m.metrics.Start(0)
	t := newTree(b, m.side)
	m.metrics.AddNode()

	if m.iterations > 0 {
		for i := 0; i < m.iterations; i++ {
			m.simulate(t)
		}
	} else {
		deadline := time.Now().Add(m.duration)
		for ok := true; ok; ok = time.Now().Before(deadline) {
			m.simulate(t)
		}
	}
	return t, nil
}

func (m *MCTS) simulate(t *tree) {
	i := m.selectThenExpand(t)
	winner, plies := m.rollout(&t.nodes[i])
	m.metrics.ObserveDepth(t.nodes[i].depth + plies)
	t.backup(i, winner)
	m.metrics.AddIteration()
}

// selectThenExpand descends through fully expanded nodes and expands one
// child of the first node that still has untried columns.
func (m *MCTS) selectThenExpand(t *tree) int {
	i := 0
	for !t.nodes[i].terminal && t.isFullyExpanded(i) {
		i = t.selectChild(i, m.exploration)
	}
	if t.nodes[i].terminal {
		return i
	}
	m.metrics.AddNode()
	return t.expand(i, m.rng)
}

// rollout plays uniformly random columns from n's position until the game
// ends, returning the winner (Empty on a draw) and the plies played.
func (m *MCTS) rollout(n *node) (game.Piece, int) {
	if n.terminal {
		m.metrics.AddFullPlayout()
		return n.winner, 0
	}

	b := n.board.Clone()
	plies := 0
	for {
		columns := b.LegalColumns()
		if len(columns) == 0 {
			m.metrics.AddFullPlayout()
			return game.Empty, plies
		}
		side := b.ToMove()
		if err := b.Play(columns[m.rng.Intn(len(columns))], side); err != nil {
			panic(err)
		}
		plies++
		if b.IsWinningFor(side) {
			m.metrics.AddFullPlayout()
			return side, plies
		}
	}
}

func newRand() *rand.Rand {
	return rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
}
