// meta/meta.go
package meta

// ROWS defines the default board height.
const ROWS = 6

// COLUMNS defines the default board width.
const COLUMNS = 7

// GO_ROUTINES defines the number of root trees grown at once in experiments.
const GO_ROUTINES = 8

// BRANCHES defines the simulations per root column used by experiment agents.
const BRANCHES = 2000

// GAMES defines the number of games per experiment matchup.
const GAMES = 20

// EXPERIMENT_DIR is where experiment results are written.
const EXPERIMENT_DIR = "results"
