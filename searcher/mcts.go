package searcher

import (
	"sync"

	"connect4/experiments/metrics"
	"connect4/game"
	"connect4/utils"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Option func(mcts *MCTS)

// MCTS scores every open column by playing a fixed number of uniformly random games that
// start with that column, sharing one search tree per column across those games. Moves
// inside a simulation are never weighted by earlier outcomes.
// An MCTS is not safe for concurrent use; give each goroutine its own.
type MCTS struct {
	branches   int
	goroutines int
	rng        *rand.Rand
	metrics    metrics.Collector
}

// WithBranches sets the number of simulations run per root column.
func WithBranches(branches int) Option {
	return func(m *MCTS) {
		if branches > 0 {
			m.branches = branches
		}
	}
}

// WithGoroutines sets how many root trees are grown at once.
func WithGoroutines(goroutines int) Option {
	return func(m *MCTS) {
		if goroutines > 0 {
			m.goroutines = goroutines
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(m *MCTS) {
		m.rng = newRand(seed)
	}
}

func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMCTS(options ...Option) *MCTS {
	m := &MCTS{ // Default values
		branches:   DefaultBranches,
		goroutines: 1,
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.rng == nil {
		m.rng = newRand(NewSeed())
	}
	return m
}

func (m *MCTS) ChooseColumn(board *game.Board) (int, error) {
	decision, _, err := m.Search(board)
	return decision.Column, err
}

// Search grows one tree per open column, then picks, in order of precedence, the
// leftmost column that wins at once, the leftmost column that blocks an immediate win
// of the opponent, or the first column with the highest aggregated value.
// Every tree is released before Search returns.
func (m *MCTS) Search(board *game.Board) (Decision, metrics.SearchMetric, error) {
	computer, human := game.ResolveRoles(board)
	columns := board.OpenColumns()
	if len(columns) == 0 {
		return Decision{}, metrics.SearchMetric{}, ErrNoMovesAvailable
	}

	m.metrics.Start(string(KindMCTS), m.goroutines, m.branches, len(columns))

	trees := make([]*tree, len(columns))
	seeds := make([]uint64, len(columns))
	for i, column := range columns {
		trees[i] = newTree(column)
		seeds[i] = m.rng.Uint64()
	}
	m.iterate(board, computer, trees, seeds)

	scores := make([]Score, len(trees))
	values := make([]int, len(trees))
	for i, t := range trees {
		root := t.root()
		scores[i] = Score{Column: root.column, Value: root.value}
		values[i] = root.value
		m.metrics.AddNodes(t.size())
	}
	for _, t := range trees {
		m.metrics.ReleaseNodes(t.destroy())
	}

	decision := Decision{Scores: scores}
	if column, ok := firstImmediateWin(board, computer, columns); ok {
		decision.Column, decision.Reason = column, ReasonWin
	} else if column, ok := firstImmediateWin(board, human, columns); ok {
		decision.Column, decision.Reason = column, ReasonBlock
	} else {
		decision.Column, decision.Reason = columns[utils.ArgMax(values)], ReasonSimulation
	}

	log.Debug().
		Str("player", computer.String()).
		Ints("columns", columns).
		Ints("values", values).
		Int("column", decision.Column).
		Str("reason", decision.Reason).
		Msg("mcts decision")

	m.metrics.SetReason(decision.Reason)
	return decision, m.metrics.Complete(), nil
}

// iterate runs the simulation budget of every tree, handing whole trees to workers so
// that no tree is shared between goroutines.
func (m *MCTS) iterate(board *game.Board, computer game.Cell, trees []*tree, seeds []uint64) {
	task := make(chan int, len(trees))
	for i := range trees {
		task <- i
	}
	close(task)

	var wg sync.WaitGroup
	for i := 0; i < min(m.goroutines, len(trees)); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for index := range task {
				rng := newRand(seeds[index])
				for j := 0; j < m.branches; j++ {
					trees[index].simulate(board, computer, rng)
					m.metrics.AddSimulation()
				}
			}
		}()
	}

	wg.Wait()
}
