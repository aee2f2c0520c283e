package searcher

import (
	"errors"
	"fmt"
	"time"

	"connect4/experiments/metrics"
	"connect4/game"

	"golang.org/x/exp/rand"
)

var (
	ErrNoMovesAvailable = errors.New("no moves available")
	ErrUnknownStrategy  = errors.New("unknown strategy")
)

type Kind string

const (
	KindRandom    Kind = "random"
	KindHeuristic Kind = "heuristic"
	KindMCTS      Kind = "mcts"
)

// Why a column was chosen
const (
	ReasonRandom     = "random"
	ReasonWin        = "win"
	ReasonBlock      = "block"
	ReasonSimulation = "simulation"
)

// Strategy picks the next column (1-based) for whichever side is to move on board.
// Implementations never mutate board.
type Strategy interface {
	ChooseColumn(board *game.Board) (int, error)
}

// Searcher is a Strategy that also explains its choice.
type Searcher interface {
	Strategy
	Search(board *game.Board) (Decision, metrics.SearchMetric, error)
}

// Score is the aggregated simulation value of a root column.
type Score struct {
	Column int
	Value  int
}

type Decision struct {
	Column int
	Reason string
	Scores []Score // MCTS only
}

// ParseKind maps a strategy name, including the "brute-force" alias, to its Kind.
func ParseKind(name string) (Kind, error) {
	switch name {
	case string(KindRandom), "randomizer":
		return KindRandom, nil
	case string(KindHeuristic), "brute-force", "bruteforce":
		return KindHeuristic, nil
	case string(KindMCTS):
		return KindMCTS, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// New builds a strategy of the given kind. Options only apply to KindMCTS; its seed is
// taken from seed unless an option overrides it.
func New(kind Kind, seed uint64, options ...Option) (Searcher, error) {
	switch kind {
	case KindRandom:
		return NewRandom(seed), nil
	case KindHeuristic:
		return NewHeuristic(seed), nil
	case KindMCTS:
		return NewMCTS(append([]Option{WithSeed(seed)}, options...)...), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, kind)
}

// NewSeed returns a time-based seed for callers that do not need reproducible games.
func NewSeed() uint64 {
	return uint64(time.Now().UnixNano())
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
