package experiments

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"connect4/experiments/metrics"
	"connect4/searcher"

	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestExperimentRun(t *testing.T) {
	t.Run("storing every game and move", func(t *testing.T) {
		root := t.TempDir()
		x := Experiment{
			Name:    "smoke",
			Root:    root,
			Rows:    4,
			Columns: 5,
			Games:   2,
			Seed:    7,
			Configs: []metrics.AgentConfig{
				{ID: 1, Strategy: string(searcher.KindRandom)},
				{ID: 2, Strategy: string(searcher.KindMCTS), Branches: 5, Goroutines: 2},
			},
			MatchUps: [][2]int{{1, 2}, {2, 1}},
		}

		dir, err := x.Run()

		require.NoError(t, err)
		require.Equal(t, filepath.Join(root, "smoke"), filepath.Dir(dir))

		configs := readCSV(t, filepath.Join(dir, "agent_configs.csv"))
		require.Equal(t, []string{"2", "mcts", "5", "2"}, configs[2])

		games := readCSV(t, filepath.Join(dir, "game_records.csv"))
		require.Len(t, games, 1+4, "Header plus two games per matchup")
		require.Equal(t, "1", games[1][1])
		require.Equal(t, "2", games[3][1], "Second matchup should let agent 2 start")

		moves := readCSV(t, filepath.Join(dir, "move_records.csv"))
		require.Greater(t, len(moves), 1+4*4, "Every game needs at least seven moves to finish")
		for _, move := range moves[1:] {
			require.Contains(t, []string{"random", "mcts"}, move[4])
		}
	})

	t.Run("rejecting unknown agents", func(t *testing.T) {
		x := Experiment{
			Name:     "broken",
			Root:     t.TempDir(),
			Rows:     4,
			Columns:  5,
			Games:    1,
			Configs:  []metrics.AgentConfig{{ID: 1, Strategy: string(searcher.KindRandom)}},
			MatchUps: [][2]int{{1, 3}},
		}

		_, err := x.Run()

		require.ErrorContains(t, err, "unknown agent")
	})

	t.Run("rejecting unknown strategies", func(t *testing.T) {
		x := Experiment{
			Name:    "broken",
			Root:    t.TempDir(),
			Rows:    4,
			Columns: 5,
			Games:   1,
			Configs: []metrics.AgentConfig{
				{ID: 1, Strategy: string(searcher.KindRandom)},
				{ID: 2, Strategy: "minimax"},
			},
			MatchUps: [][2]int{{1, 2}},
		}

		_, err := x.Run()

		require.ErrorIs(t, err, searcher.ErrUnknownStrategy)
	})
}

func TestPresets(t *testing.T) {
	t.Run("pairing every strategy both ways", func(t *testing.T) {
		x := StrengthExperiment("out", 3, 1)

		require.Len(t, x.Configs, 3)
		require.Len(t, x.MatchUps, 6)
		require.Contains(t, x.MatchUps, [2]int{3, 1})
	})

	t.Run("pairing every budget against the baseline", func(t *testing.T) {
		x := BranchesExperiment("out", 3, 1)

		require.Len(t, x.Configs, 5)
		require.Len(t, x.MatchUps, 8)
		for _, matchup := range x.MatchUps {
			require.Contains(t, matchup, 0)
		}
	})
}
