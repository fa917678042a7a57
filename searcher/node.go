package searcher

import (
	"connect4/game"
	"math"

	"golang.org/x/exp/rand"
)

const noParent = -1

// node is one explored position. Nodes live in a tree arena and refer to
// each other by index.
type node struct {
	parent   int
	column   int        // Column played to reach this node, -1 at the root
	mover    game.Piece // Side that played column
	depth    int
	board    *game.Board
	children []int
	untried  []int
	visits   float64
	wins     float64 // Rewards from mover's point of view
	terminal bool
	winner   game.Piece
}

// tree is the arena for one ChooseColumn call. It is dropped as a whole when
// the call returns.
type tree struct {
	nodes []node
}

// newTree roots a tree at a clone of b with side to play. The root is always
// expandable over b's legal columns, even when b already holds a line.
func newTree(b *game.Board, side game.Piece) *tree {
	root := b.Clone()
	return &tree{nodes: []node{{
		parent:  noParent,
		column:  -1,
		mover:   side.Opponent(),
		board:   root,
		untried: root.LegalColumns(),
	}}}
}

func (t *tree) root() *node {
	return &t.nodes[0]
}

func (t *tree) isFullyExpanded(i int) bool {
	return len(t.nodes[i].untried) == 0
}

// selectChild returns the child of i with the highest UCT value. Unvisited
// children win immediately.
func (t *tree) selectChild(i int, c float64) int {
	parent := &t.nodes[i]
	if len(parent.children) == 0 {
		panic("selecting from a node without children")
	}

	best, bestValue := -1, math.Inf(-1)
	policy := newUCT(c, parent.visits)
	for _, ci := range parent.children {
		child := &t.nodes[ci]
		if child.visits == 0 {
			return ci
		}
		value := policy.evaluate(child.wins, child.visits)
		if value > bestValue {
			best, bestValue = ci, value
		}
	}
	return best
}

// expand adds one child of i for a random untried column and returns its index.
func (t *tree) expand(i int, rng *rand.Rand) int {
	parent := &t.nodes[i]
	k := rng.Intn(len(parent.untried))
	column := parent.untried[k]
	last := len(parent.untried) - 1
	parent.untried[k] = parent.untried[last]
	parent.untried = parent.untried[:last]

	mover := parent.mover.Opponent()
	board := parent.board.Clone()
	if err := board.Play(column, mover); err != nil {
		panic(err)
	}

	child := node{
		parent: i,
		column: column,
		mover:  mover,
		depth:  parent.depth + 1,
		board:  board,
		winner: board.Winner(),
	}
	child.terminal = child.winner != game.Empty || board.IsFull()
	if !child.terminal {
		child.untried = board.LegalColumns()
	}

	// append may move the arena, so index the parent again
	t.nodes = append(t.nodes, child)
	ci := len(t.nodes) - 1
	t.nodes[i].children = append(t.nodes[i].children, ci)
	return ci
}

// backup walks from i to the root adding one visit and the reward for winner
// as seen by each node's mover.
func (t *tree) backup(i int, winner game.Piece) {
	for i != noParent {
		n := &t.nodes[i]
		n.visits++
		n.wins += reward(n.mover, winner)
		i = n.parent
	}
}

func reward(mover, winner game.Piece) float64 {
	switch winner {
	case game.Empty:
		return DRAW
	case mover:
		return WIN
	default:
		return LOSS
	}
}

// mostVisited returns the column of the root child with the most visits,
// ties going to the lowest column.
func (t *tree) mostVisited() int {
	bestColumn, bestVisits := -1, -1.0
	for _, ci := range t.root().children {
		child := &t.nodes[ci]
		if child.visits > bestVisits || (child.visits == bestVisits && child.column < bestColumn) {
			bestColumn, bestVisits = child.column, child.visits
		}
	}
	return bestColumn
}
