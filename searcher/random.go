package searcher

import (
	"time"

	"connect4/experiments/metrics"
	"connect4/game"

	"golang.org/x/exp/rand"
)

// Random picks uniformly among the open columns.
// It is not safe for concurrent use.
type Random struct {
	rng *rand.Rand
}

func NewRandom(seed uint64) *Random {
	return &Random{rng: newRand(seed)}
}

func (r *Random) ChooseColumn(board *game.Board) (int, error) {
	decision, _, err := r.Search(board)
	return decision.Column, err
}

func (r *Random) Search(board *game.Board) (Decision, metrics.SearchMetric, error) {
	start := time.Now()
	columns := board.OpenColumns()
	if len(columns) == 0 {
		return Decision{}, metrics.SearchMetric{}, ErrNoMovesAvailable
	}

	decision := Decision{
		Column: columns[r.rng.Intn(len(columns))],
		Reason: ReasonRandom,
	}
	return decision, metrics.SearchMetric{
		Strategy: string(KindRandom),
		Roots:    len(columns),
		Duration: time.Since(start),
		Reason:   decision.Reason,
	}, nil
}
