package searcher

import (
	"fmt"
	"math"
	"slices"
	"time"

	"connect4/experiments/metrics"
	"connect4/game"
	"connect4/utils"

	"golang.org/x/exp/rand"
)

const (
	rankDefault = 1
	rankBlock   = math.MaxInt - 1
	rankWin     = math.MaxInt
)

// Heuristic looks one ply ahead: it takes an immediate win, otherwise blocks the
// opponent's immediate win, otherwise plays a random open column. It does not notice
// moves that hand the opponent a win on the following ply.
// It is not safe for concurrent use.
type Heuristic struct {
	rng *rand.Rand
}

func NewHeuristic(seed uint64) *Heuristic {
	return &Heuristic{rng: newRand(seed)}
}

func (h *Heuristic) ChooseColumn(board *game.Board) (int, error) {
	decision, _, err := h.Search(board)
	return decision.Column, err
}

func (h *Heuristic) Search(board *game.Board) (Decision, metrics.SearchMetric, error) {
	start := time.Now()
	computer, human := game.ResolveRoles(board)
	columns := board.OpenColumns()
	if len(columns) == 0 {
		return Decision{}, metrics.SearchMetric{}, ErrNoMovesAvailable
	}

	ranks := make([]int, len(columns))
	for i, column := range columns {
		ranks[i] = rankDefault
		if isImmediateWin(board, human, column) {
			ranks[i] = rankBlock
		}
		// Winning outranks blocking
		if isImmediateWin(board, computer, column) {
			ranks[i] = rankWin
		}
	}

	best := slices.Max(ranks)
	candidates := utils.Filter(columns, ranks, func(rank int) bool { return rank == best })

	decision := Decision{
		Column: candidates[h.rng.Intn(len(candidates))],
		Reason: rankReason(best),
	}
	return decision, metrics.SearchMetric{
		Strategy: string(KindHeuristic),
		Roots:    len(columns),
		Duration: time.Since(start),
		Reason:   decision.Reason,
	}, nil
}

func rankReason(rank int) string {
	switch rank {
	case rankWin:
		return ReasonWin
	case rankBlock:
		return ReasonBlock
	default:
		return ReasonRandom
	}
}

// isImmediateWin reports whether dropping symbol into the open column wins at once.
func isImmediateWin(board *game.Board, symbol game.Cell, column int) bool {
	result := mustPlay(board.Clone(), symbol, column)
	return result.Outcome == game.Win
}

// mustPlay applies a move that strategies have already checked to be legal.
func mustPlay(board *game.Board, symbol game.Cell, column int) game.MoveResult {
	result, err := board.Play(symbol, column)
	if err != nil {
		panic(fmt.Sprintf("strategy played an illegal move: %v", err))
	}
	return result
}

// firstImmediateWin returns the leftmost column where symbol wins at once.
func firstImmediateWin(board *game.Board, symbol game.Cell, columns []int) (int, bool) {
	for _, column := range columns {
		if isImmediateWin(board, symbol, column) {
			return column, true
		}
	}
	return 0, false
}
