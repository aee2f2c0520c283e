package searcher

// Hyperparameters for MCTS

const DefaultBranches = 50000 // Simulations per root column

// Leaf values from the computer's perspective
const WIN = 1
const LOSS = -WIN
const DRAW = 0
