package metrics

import (
	"connect4/game"
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Duration     time.Duration
	Depth        int // Configured depth limit, alpha-beta only
	Iterations   int // MCTS iterations completed
	Nodes        int // Positions visited or tree nodes created
	FullPlayouts int
	MaxDepth     int // Deepest ply reached
}

type MoveMetric struct {
	Step   int
	Player game.Piece
	Bot    string
	Column int
	SearchMetric
}

type GameMetric struct {
	Starter    game.Piece
	Winner     game.Piece // Empty on a draw
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
	ThinkTime  map[game.Piece]time.Duration // Time spent in ChooseColumn per side
	Moves      map[game.Piece]int
}

type Collector interface {
	Start(depth int)
	AddIteration()
	AddNode()
	AddFullPlayout()
	ObserveDepth(depth int)
	Complete() SearchMetric
}

type collector struct {
	depth        int
	startTime    time.Time
	iterations   atomic.Int64
	nodes        atomic.Int64
	fullPlayouts atomic.Int64
	maxDepth     atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

// Start resets the counters so a collector can be reused across searches.
func (m *collector) Start(depth int) {
	m.startTime = time.Now()
	m.depth = depth
	m.iterations.Store(0)
	m.nodes.Store(0)
	m.fullPlayouts.Store(0)
	m.maxDepth.Store(0)
}

func (m *collector) AddIteration() {
	m.iterations.Add(1)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddFullPlayout() {
	m.fullPlayouts.Add(1)
}

func (m *collector) ObserveDepth(depth int) {
	d := int64(depth)
	for {
		current := m.maxDepth.Load()
		if d <= current || m.maxDepth.CompareAndSwap(current, d) {
			return
		}
	}
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Duration:     time.Since(m.startTime),
		Depth:        m.depth,
		Iterations:   int(m.iterations.Load()),
		Nodes:        int(m.nodes.Load()),
		FullPlayouts: int(m.fullPlayouts.Load()),
		MaxDepth:     int(m.maxDepth.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth int)        {}
func (m *dummyCollector) AddIteration()          {}
func (m *dummyCollector) AddNode()               {}
func (m *dummyCollector) AddFullPlayout()        {}
func (m *dummyCollector) ObserveDepth(depth int) {}
func (m *dummyCollector) Complete() SearchMetric { return SearchMetric{} }
