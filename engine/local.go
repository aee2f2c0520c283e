package engine

import (
	"fmt"
	"io"
	"time"

	"connect4/experiments/metrics"
	"connect4/game"
	"connect4/searcher"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Engine alternates two agents on one board until the game is decided.
type Engine struct {
	Board  *game.Board
	Agents [2]searcher.Strategy // Agents[0] plays X, Agents[1] plays O
	Out    io.Writer            // Receives the rendered board after every move, if set
}

type Result struct {
	Outcome game.Outcome
	Winner  game.Cell // Empty unless Outcome is Win
	Game    metrics.GameMetric
	Moves   []metrics.MoveMetric
}

func LocalEngine(board *game.Board, agents ...searcher.Strategy) *Engine {
	if len(agents) != 2 {
		panic("need exactly two agents")
	}
	return &Engine{
		Board:  board,
		Agents: [2]searcher.Strategy{agents[0], agents[1]},
	}
}

// Run plays from the current position, whoever is to move, until a win or a draw.
func (e *Engine) Run() (Result, error) {
	first, _ := game.ResolveRoles(e.Board)
	gameMetric := metrics.GameMetric{
		ID:             uuid.New().String(),
		StartingPlayer: first.String(),
		StartTime:      time.Now(),
	}
	logger := log.With().Str("game", gameMetric.ID).Logger()
	logger.Info().Msgf("player %s is starting", first)

	if e.Out != nil {
		Render(e.Out, e.Board)
	}

	result := Result{Outcome: game.Ongoing}
	for step := 1; result.Outcome == game.Ongoing; step++ {
		// The previous move may have filled the board
		if e.Board.IsFull() {
			result.Outcome = game.Draw
			break
		}

		mover, _ := game.ResolveRoles(e.Board)
		column, searchMetric, err := choose(e.agent(mover), e.Board)
		if err != nil {
			return result, fmt.Errorf("player %s failed to choose a column: %w", mover, err)
		}

		move, err := e.Board.Play(mover, column)
		if err != nil {
			return result, fmt.Errorf("player %s chose column %d: %w", mover, column, err)
		}
		result.Moves = append(result.Moves, metrics.MoveMetric{
			Step:         step,
			Player:       mover.String(),
			Column:       column,
			SearchMetric: searchMetric,
		})
		logger.Debug().Msgf("turn %d: player %s dropped into column %d (%s)", step, mover, column, searchMetric.Reason)

		if e.Out != nil {
			Render(e.Out, e.Board)
		}

		result.Outcome = move.Outcome
		if move.Outcome == game.Win {
			result.Winner = mover
		}
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(result.Moves)
	if result.Winner != game.Empty {
		gameMetric.Winner = result.Winner.String()
	}
	result.Game = gameMetric

	logger.Info().Msgf("game over after %d moves: %s %s", gameMetric.TotalMoves, result.Outcome, gameMetric.Winner)
	return result, nil
}

func (e *Engine) agent(symbol game.Cell) searcher.Strategy {
	if symbol == game.X {
		return e.Agents[0]
	}
	return e.Agents[1]
}

// choose asks a strategy for a column, collecting search metrics when it reports them.
func choose(agent searcher.Strategy, board *game.Board) (int, metrics.SearchMetric, error) {
	if s, ok := agent.(searcher.Searcher); ok {
		decision, metric, err := s.Search(board)
		return decision.Column, metric, err
	}
	column, err := agent.ChooseColumn(board)
	return column, metrics.SearchMetric{}, err
}
