package game

// WinLength is the number of consecutive equal symbols that wins the game.
const WinLength = 4

type Outcome int

const (
	Ongoing Outcome = iota
	Win
	Draw
)

func (o Outcome) String() string {
	switch o {
	case Win:
		return "win"
	case Draw:
		return "draw"
	default:
		return "ongoing"
	}
}

// MoveResult describes a move once it has been applied to a board.
type MoveResult struct {
	Coord
	Symbol  Cell
	Outcome Outcome
}

// Evaluate reports Win if the row, column or either diagonal running through the placed
// cell contains WinLength consecutive copies of that cell's symbol, otherwise Ongoing.
// Each line is scanned end to end, so a run that does not touch the placed cell still
// counts. Evaluate never reports Draw.
func Evaluate(b *Board, row, column int) Outcome {
	symbol := b.At(row, column)
	if symbol == Empty {
		return Ongoing
	}

	// Entire row
	if b.hasRun(symbol, row, 0, 0, 1) {
		return Win
	}
	// Entire column
	if b.hasRun(symbol, 0, column, 1, 0) {
		return Win
	}
	// Descending diagonal, from its top-left end
	back := min(row, column)
	if b.hasRun(symbol, row-back, column-back, 1, 1) {
		return Win
	}
	// Ascending diagonal, from its bottom-left end
	back = min(column, b.rows-1-row)
	if b.hasRun(symbol, row+back, column-back, -1, 1) {
		return Win
	}
	return Ongoing
}

// hasRun walks from (row, column) in steps of (dRow, dColumn) until it leaves the board.
func (b *Board) hasRun(symbol Cell, row, column, dRow, dColumn int) bool {
	count := 0
	for row >= 0 && row < b.rows && column >= 0 && column < b.columns {
		if b.At(row, column) == symbol {
			count++
			if count == WinLength {
				return true
			}
		} else {
			count = 0
		}
		row += dRow
		column += dColumn
	}
	return false
}

// Play applies a move and classifies the resulting position. A move that wins on the
// last open cell is a Win, not a Draw.
func (b *Board) Play(symbol Cell, column int) (MoveResult, error) {
	coord, err := b.ApplyMove(symbol, column)
	if err != nil {
		return MoveResult{}, err
	}
	result := MoveResult{Coord: coord, Symbol: symbol, Outcome: Evaluate(b, coord.Row, coord.Column)}
	if result.Outcome == Ongoing && b.IsFull() {
		result.Outcome = Draw
	}
	return result, nil
}
