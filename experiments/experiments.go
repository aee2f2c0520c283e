package experiments

import (
	"fmt"

	"connect4/engine"
	"connect4/experiments/metrics"
	"connect4/game"
	"connect4/meta"
	"connect4/searcher"

	"github.com/rs/zerolog/log"
)

// Experiment plays every matchup a number of times and stores the results as CSV files.
type Experiment struct {
	Name    string
	Root    string // Output folder, results land in Root/Name/<timestamp>
	Rows    int
	Columns int
	Games   int // Per match up
	Seed    uint64
	Configs []metrics.AgentConfig
	// Each matchup is a pair of AgentConfig.IDs, the first one plays X
	MatchUps [][2]int
}

// StrengthExperiment pairs every strategy against every other, each side starting half
// of the games.
func StrengthExperiment(root string, games int, seed uint64) Experiment {
	configs := []metrics.AgentConfig{
		{ID: 1, Strategy: string(searcher.KindRandom)},
		{ID: 2, Strategy: string(searcher.KindHeuristic)},
		{ID: 3, Strategy: string(searcher.KindMCTS), Branches: meta.BRANCHES, Goroutines: meta.GO_ROUTINES},
	}
	matchUps := [][2]int{}
	for _, a := range configs {
		for _, b := range configs {
			if a.ID != b.ID {
				matchUps = append(matchUps, [2]int{a.ID, b.ID})
			}
		}
	}

	return Experiment{
		Name:     "strength",
		Root:     root,
		Rows:     meta.ROWS,
		Columns:  meta.COLUMNS,
		Games:    games,
		Seed:     seed,
		Configs:  configs,
		MatchUps: matchUps,
	}
}

// BranchesExperiment pairs MCTS agents with growing simulation budgets against the
// heuristic baseline.
func BranchesExperiment(root string, games int, seed uint64) Experiment {
	baseline := metrics.AgentConfig{ID: 0, Strategy: string(searcher.KindHeuristic)}
	configs := []metrics.AgentConfig{baseline}
	matchUps := [][2]int{}
	for i, branches := range []int{10, 100, 1000, 10000} {
		config := metrics.AgentConfig{
			ID:         i + 1,
			Strategy:   string(searcher.KindMCTS),
			Branches:   branches,
			Goroutines: meta.GO_ROUTINES,
		}
		configs = append(configs, config)
		matchUps = append(matchUps, [2]int{baseline.ID, config.ID}, [2]int{config.ID, baseline.ID})
	}

	return Experiment{
		Name:     "branches",
		Root:     root,
		Rows:     meta.ROWS,
		Columns:  meta.COLUMNS,
		Games:    games,
		Seed:     seed,
		Configs:  configs,
		MatchUps: matchUps,
	}
}

// Run plays the experiment and returns the folder holding its results.
func (x Experiment) Run() (string, error) {
	byID := map[int]metrics.AgentConfig{}
	for _, config := range x.Configs {
		byID[config.ID] = config
	}

	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}
	seed := x.Seed

	log.Info().Msgf("starting %s experiment...", x.Name)

	for mi, matchup := range x.MatchUps {
		config1, ok1 := byID[matchup[0]]
		config2, ok2 := byID[matchup[1]]
		if !ok1 || !ok2 {
			return "", fmt.Errorf("matchup %d refers to an unknown agent: %v", mi+1, matchup)
		}

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(x.MatchUps), config1, config2)

		for i := 0; i < x.Games; i++ {
			seed += 2
			result, err := x.runGame(config1, config2, seed)
			if err != nil {
				return "", fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}

			gameRecords = append(gameRecords, metrics.GameRecord{
				Agent1:     config1.ID,
				Agent2:     config2.ID,
				GameMetric: result.Game,
			})
			for _, mm := range result.Moves {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       result.Game.ID,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with outcome: %s %s", mi+1, len(x.MatchUps), i+1, result.Outcome, result.Game.Winner)
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(x.MatchUps))
	}

	log.Info().Msgf("completed %s experiment", x.Name)

	writer, err := metrics.NewWriter(x.Root, x.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteAgentConfigs(x.Configs)
	if err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return writer.Dir(), nil
}

// runGame plays one game on an empty board, config1 as X.
func (x Experiment) runGame(config1, config2 metrics.AgentConfig, seed uint64) (engine.Result, error) {
	board, err := game.NewBoard(x.Rows, x.Columns)
	if err != nil {
		return engine.Result{}, err
	}
	agent1, err := createAgent(config1, seed)
	if err != nil {
		return engine.Result{}, err
	}
	agent2, err := createAgent(config2, seed+1)
	if err != nil {
		return engine.Result{}, err
	}

	return engine.LocalEngine(board, agent1, agent2).Run()
}

func createAgent(config metrics.AgentConfig, seed uint64) (searcher.Searcher, error) {
	kind, err := searcher.ParseKind(config.Strategy)
	if err != nil {
		return nil, err
	}

	options := []searcher.Option{}
	if config.Branches > 0 {
		options = append(options, searcher.WithBranches(config.Branches))
	}
	if config.Goroutines > 0 {
		options = append(options, searcher.WithGoroutines(config.Goroutines))
	}

	options = append(options, searcher.WithMetrics())
	return searcher.New(kind, seed, options...)
}
