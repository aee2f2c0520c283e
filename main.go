package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"connect4/engine"
	"connect4/experiments"
	"connect4/game"
	"connect4/meta"
	"connect4/searcher"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	modeTwoPlayer  = "two-player"
	modeExperiment = "experiment"
)

type config struct {
	rows       int
	columns    int
	mode       string
	symbol     string
	branches   int
	goroutines int
	seed       uint64
	experiment string
	games      int
	out        string
	debug      bool
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("connect4 failed")
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	cfg, err := parseFlags(args)
	if err != nil {
		return err
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if cfg.debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if cfg.mode == modeExperiment {
		return runExperiment(cfg)
	}

	board, err := game.NewBoard(cfg.rows, cfg.columns)
	if err != nil {
		return err
	}
	in := bufio.NewScanner(stdin)

	if cfg.mode == modeTwoPlayer {
		e := engine.LocalEngine(board,
			engine.NewHuman("Player 1", in, stdout),
			engine.NewHuman("Player 2", in, stdout),
		)
		e.Out = stdout
		result, err := e.Run()
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, twoPlayerMessage(result))
		return nil
	}

	kind, err := searcher.ParseKind(cfg.mode)
	if err != nil {
		return err
	}
	computer, err := searcher.New(kind, cfg.seed,
		searcher.WithBranches(cfg.branches),
		searcher.WithGoroutines(cfg.goroutines),
	)
	if err != nil {
		return err
	}

	symbol, err := humanSymbol(cfg.symbol, in, stdout)
	if err != nil {
		return err
	}
	human := engine.NewHuman("", in, stdout)
	var e *engine.Engine
	if symbol == game.X {
		e = engine.LocalEngine(board, human, computer)
	} else {
		e = engine.LocalEngine(board, computer, human)
	}
	e.Out = stdout

	result, err := e.Run()
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, singlePlayerMessage(result, symbol))
	return nil
}

func parseFlags(args []string) (config, error) {
	cfg := config{}
	fs := flag.NewFlagSet("connect4", flag.ContinueOnError)
	fs.IntVar(&cfg.rows, "rows", meta.ROWS, "number of rows on the board")
	fs.IntVar(&cfg.columns, "columns", meta.COLUMNS, "number of columns on the board")
	fs.StringVar(&cfg.mode, "mode", string(searcher.KindMCTS), "random, heuristic, mcts, two-player or experiment")
	fs.StringVar(&cfg.symbol, "symbol", "", "x or o for the human player, asked for when empty")
	fs.IntVar(&cfg.branches, "branches", searcher.DefaultBranches, "mcts simulations per candidate column")
	fs.IntVar(&cfg.goroutines, "goroutines", 1, "mcts root trees grown at once")
	fs.Uint64Var(&cfg.seed, "seed", 0, "random seed, time based when 0")
	fs.StringVar(&cfg.experiment, "experiment", "strength", "strength or branches")
	fs.IntVar(&cfg.games, "games", meta.GAMES, "games per experiment matchup")
	fs.StringVar(&cfg.out, "out", meta.EXPERIMENT_DIR, "experiment output folder")
	fs.BoolVar(&cfg.debug, "debug", false, "log every search decision")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if cfg.seed == 0 {
		cfg.seed = searcher.NewSeed()
	}
	return cfg, nil
}

func runExperiment(cfg config) error {
	var x experiments.Experiment
	switch cfg.experiment {
	case "strength":
		x = experiments.StrengthExperiment(cfg.out, cfg.games, cfg.seed)
	case "branches":
		x = experiments.BranchesExperiment(cfg.out, cfg.games, cfg.seed)
	default:
		return fmt.Errorf("unknown experiment %q", cfg.experiment)
	}
	x.Rows, x.Columns = cfg.rows, cfg.columns

	dir, err := x.Run()
	if err != nil {
		return err
	}
	log.Info().Msgf("results stored in %s", dir)
	return nil
}

func humanSymbol(flagValue string, in *bufio.Scanner, out io.Writer) (game.Cell, error) {
	switch flagValue {
	case "x", "X":
		return game.X, nil
	case "o", "O":
		return game.O, nil
	case "":
		return engine.ReadSymbol(in, out)
	}
	return game.Empty, fmt.Errorf("%w: %q", game.ErrInvalidSymbol, flagValue)
}

func singlePlayerMessage(result engine.Result, human game.Cell) string {
	switch {
	case result.Outcome == game.Draw:
		return "Draw.\n"
	case result.Winner == human:
		return "You Won!!!\n"
	default:
		return "Game Over. You Lost.\n"
	}
}

func twoPlayerMessage(result engine.Result) string {
	switch result.Winner {
	case game.X:
		return "Player 1 Won!!!\n"
	case game.O:
		return "Player 2 Won!!!\n"
	default:
		return "Draw.\n"
	}
}
