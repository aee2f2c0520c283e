package searcher

import (
	"connect4/game"

	"golang.org/x/exp/rand"
)

const noParent = -1

// node is one move in a simulated line of play. Nodes live in their tree's arena and
// refer to each other by index; parent is only followed upwards during backup.
type node struct {
	column   int
	value    int
	parent   int
	children []int
}

// tree is the search tree of a single root column. Index 0 is the root.
// A tree is owned by one goroutine at a time.
type tree struct {
	nodes []node
}

func newTree(column int) *tree {
	return &tree{nodes: []node{{column: column, parent: noParent}}}
}

func (t *tree) root() node {
	return t.nodes[0]
}

// size returns the number of live nodes.
func (t *tree) size() int {
	return len(t.nodes)
}

// addNode returns the child of parent reached by column, creating it on first visit.
func (t *tree) addNode(parent int, column int) int {
	for _, child := range t.nodes[parent].children {
		if t.nodes[child].column == column {
			return child
		}
	}

	child := len(t.nodes)
	t.nodes = append(t.nodes, node{column: column, parent: parent})
	t.nodes[parent].children = append(t.nodes[parent].children, child)
	return child
}

// simulate plays one random game from board, starting with the computer dropping into
// the root column, extends the tree along the line played and backs up the outcome.
// It returns the terminal node.
func (t *tree) simulate(board *game.Board, computer game.Cell, rng *rand.Rand) int {
	b := board.Clone()
	mover := computer
	current := 0
	result := mustPlay(b, mover, t.nodes[current].column)

	for result.Outcome == game.Ongoing {
		mover = mover.Opponent()
		columns := b.OpenColumns() // Never empty: a full board is a Draw
		column := columns[rng.Intn(len(columns))]
		result = mustPlay(b, mover, column)
		current = t.addNode(current, column)
	}

	value := leafValue(result.Outcome, mover == computer)
	if current == 0 {
		// The root move ended the game
		t.nodes[0].value += value
		return current
	}
	t.nodes[current].value = value
	t.backup(current, value)
	return current
}

func leafValue(outcome game.Outcome, byComputer bool) int {
	switch {
	case outcome != game.Win:
		return DRAW
	case byComputer:
		return WIN
	default:
		return LOSS
	}
}

// backup adds the leaf value to every ancestor of leaf, up to and including the root.
// Draws are worth 0 and leave the ancestors unchanged.
func (t *tree) backup(leaf int, value int) {
	for id := t.nodes[leaf].parent; id != noParent; id = t.nodes[id].parent {
		t.nodes[id].value += value
	}
}

// destroy releases every node in post-order and returns how many were released.
func (t *tree) destroy() int {
	if len(t.nodes) == 0 {
		return 0
	}
	released := t.release(0)
	t.nodes = nil
	return released
}

func (t *tree) release(id int) int {
	released := 0
	for _, child := range t.nodes[id].children {
		released += t.release(child)
	}
	t.nodes[id] = node{}
	return released + 1
}
