package game

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidDimensions = errors.New("board must have at least one row and one column")
	ErrColumnOutOfRange  = errors.New("column out of range")
	ErrColumnFull        = errors.New("column is full")
	ErrInvalidSymbol     = errors.New("invalid symbol")
)

// Cell is the content of a single board position.
type Cell int8

const (
	Empty Cell = iota
	X          // Moves first
	O
)

func (c Cell) String() string {
	switch c {
	case X:
		return "x"
	case O:
		return "o"
	default:
		return " "
	}
}

// Opponent returns the other player's symbol, or Empty for Empty.
func (c Cell) Opponent() Cell {
	switch c {
	case X:
		return O
	case O:
		return X
	default:
		return Empty
	}
}

// Coord is a 0-based board position; row 0 is the top row.
type Coord struct {
	Row    int
	Column int
}

// Board is a rows x columns grid where pieces fall to the lowest empty cell of a column.
// Columns are 1-based in the exported API and 0-based internally.
type Board struct {
	rows    int
	columns int
	cells   []Cell // Row-major
}

// NewBoard returns an empty board of the given dimensions.
func NewBoard(rows, columns int) (*Board, error) {
	if rows < 1 || columns < 1 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, rows, columns)
	}
	return &Board{
		rows:    rows,
		columns: columns,
		cells:   make([]Cell, rows*columns),
	}, nil
}

// NewBoardFromRows parses a board from its rows, top row first, using 'x', 'o' and '.'.
// Gravity is not enforced; callers are expected to describe reachable positions.
func NewBoardFromRows(rows ...string) (*Board, error) {
	if len(rows) == 0 {
		return nil, ErrInvalidDimensions
	}
	b, err := NewBoard(len(rows), len(rows[0]))
	if err != nil {
		return nil, err
	}
	for r, line := range rows {
		if len(line) != b.columns {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrInvalidDimensions, r, len(line), b.columns)
		}
		for c, ch := range strings.ToLower(line) {
			switch ch {
			case 'x':
				b.set(r, c, X)
			case 'o':
				b.set(r, c, O)
			case '.', ' ', '_':
			default:
				return nil, fmt.Errorf("%w: %q at row %d column %d", ErrInvalidSymbol, ch, r, c)
			}
		}
	}
	return b, nil
}

func (b *Board) Rows() int {
	return b.rows
}

func (b *Board) Columns() int {
	return b.columns
}

// At returns the cell at a 0-based position.
func (b *Board) At(row, column int) Cell {
	return b.cells[row*b.columns+column]
}

func (b *Board) set(row, column int, c Cell) {
	b.cells[row*b.columns+column] = c
}

// Clone returns a deep copy that shares no state with b.
func (b *Board) Clone() *Board {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return &Board{
		rows:    b.rows,
		columns: b.columns,
		cells:   cells,
	}
}

// ApplyMove drops symbol into the 1-based column and returns where it landed.
func (b *Board) ApplyMove(symbol Cell, column int) (Coord, error) {
	if symbol != X && symbol != O {
		return Coord{}, fmt.Errorf("%w: %d", ErrInvalidSymbol, symbol)
	}
	if column < 1 || column > b.columns {
		return Coord{}, fmt.Errorf("%w: %d not in [1, %d]", ErrColumnOutOfRange, column, b.columns)
	}
	col := column - 1
	for row := b.rows - 1; row >= 0; row-- {
		if b.At(row, col) == Empty {
			b.set(row, col, symbol)
			return Coord{Row: row, Column: col}, nil
		}
	}
	return Coord{}, fmt.Errorf("%w: %d", ErrColumnFull, column)
}

// IsColumnOpen reports whether the top cell of the 1-based column is empty.
// Columns outside the board are never open.
func (b *Board) IsColumnOpen(column int) bool {
	if column < 1 || column > b.columns {
		return false
	}
	return b.At(0, column-1) == Empty
}

// OpenColumns lists the 1-based open columns from left to right.
func (b *Board) OpenColumns() []int {
	open := make([]int, 0, b.columns)
	for col := 0; col < b.columns; col++ {
		if b.At(0, col) == Empty {
			open = append(open, col+1)
		}
	}
	return open
}

// IsFull reports whether every column is closed.
func (b *Board) IsFull() bool {
	for col := 0; col < b.columns; col++ {
		if b.At(0, col) == Empty {
			return false
		}
	}
	return true
}

// Count returns the number of cells holding symbol.
func (b *Board) Count(symbol Cell) int {
	n := 0
	for _, c := range b.cells {
		if c == symbol {
			n++
		}
	}
	return n
}
