package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	t.Run("creating an empty board", func(t *testing.T) {
		b, err := NewBoard(6, 7)

		require.NoError(t, err)
		require.Equal(t, 6, b.Rows())
		require.Equal(t, 7, b.Columns())
		require.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, b.OpenColumns(), "All columns should be open")
		require.Zero(t, b.Count(X)+b.Count(O), "Board should hold no pieces")
	})

	t.Run("rejecting empty dimensions", func(t *testing.T) {
		_, err := NewBoard(0, 7)
		require.ErrorIs(t, err, ErrInvalidDimensions)

		_, err = NewBoard(6, -1)
		require.ErrorIs(t, err, ErrInvalidDimensions)
	})

	t.Run("parsing rows", func(t *testing.T) {
		b, err := NewBoardFromRows(
			"...",
			".o.",
			"xx.",
		)

		require.NoError(t, err)
		require.Equal(t, X, b.At(2, 0))
		require.Equal(t, X, b.At(2, 1))
		require.Equal(t, O, b.At(1, 1))
		require.Equal(t, Empty, b.At(2, 2))
	})

	t.Run("rejecting ragged or unknown rows", func(t *testing.T) {
		_, err := NewBoardFromRows("...", "..")
		require.ErrorIs(t, err, ErrInvalidDimensions)

		_, err = NewBoardFromRows("..z")
		require.ErrorIs(t, err, ErrInvalidSymbol)
	})
}

func TestApplyMove(t *testing.T) {
	t.Run("filling a column bottom to top", func(t *testing.T) {
		b, err := NewBoard(6, 7)
		require.NoError(t, err)

		for i := 0; i < 6; i++ {
			coord, err := b.ApplyMove(X, 3)

			require.NoError(t, err)
			require.Equal(t, Coord{Row: 5 - i, Column: 2}, coord, "Piece should land on the lowest empty cell")
		}
		require.False(t, b.IsColumnOpen(3), "Column should be closed once filled")

		_, err = b.ApplyMove(O, 3)
		require.ErrorIs(t, err, ErrColumnFull)
		require.Equal(t, 6, b.Count(X), "Failed move should not change the board")
		require.Zero(t, b.Count(O), "Failed move should not change the board")
	})

	t.Run("rejecting columns outside the board", func(t *testing.T) {
		b, err := NewBoard(6, 7)
		require.NoError(t, err)

		_, err = b.ApplyMove(X, 0)
		require.ErrorIs(t, err, ErrColumnOutOfRange)

		_, err = b.ApplyMove(X, 8)
		require.ErrorIs(t, err, ErrColumnOutOfRange)
	})

	t.Run("rejecting the empty symbol", func(t *testing.T) {
		b, err := NewBoard(6, 7)
		require.NoError(t, err)

		_, err = b.ApplyMove(Empty, 1)
		require.ErrorIs(t, err, ErrInvalidSymbol)
	})
}

func TestIsFull(t *testing.T) {
	b, err := NewBoard(2, 3)
	require.NoError(t, err)

	symbol := X
	for column := 1; column <= 3; column++ {
		for row := 0; row < 2; row++ {
			require.False(t, b.IsFull(), "Board with an open column should not be full")
			_, err := b.ApplyMove(symbol, column)
			require.NoError(t, err)
			symbol = symbol.Opponent()
		}
		require.False(t, b.IsColumnOpen(column))
	}

	require.True(t, b.IsFull(), "Board should be full once every column is closed")
	require.Empty(t, b.OpenColumns())
}

func TestIsColumnOpen(t *testing.T) {
	b, err := NewBoardFromRows(
		"x..",
		"o..",
	)
	require.NoError(t, err)

	require.False(t, b.IsColumnOpen(1))
	require.True(t, b.IsColumnOpen(2))
	require.False(t, b.IsColumnOpen(0), "Columns outside the board should never be open")
	require.False(t, b.IsColumnOpen(4), "Columns outside the board should never be open")
	require.Equal(t, []int{2, 3}, b.OpenColumns())
}

func TestClone(t *testing.T) {
	b, err := NewBoard(6, 7)
	require.NoError(t, err)
	_, err = b.ApplyMove(X, 4)
	require.NoError(t, err)

	clone := b.Clone()
	_, err = clone.ApplyMove(O, 4)
	require.NoError(t, err)

	require.Equal(t, 1, b.Count(X)+b.Count(O), "Moves on the clone should not reach the source")
	require.Equal(t, 2, clone.Count(X)+clone.Count(O), "Clone should keep the source's pieces")
	require.Equal(t, X, clone.At(5, 3))
}

func TestCell(t *testing.T) {
	require.Equal(t, O, X.Opponent())
	require.Equal(t, X, O.Opponent())
	require.Equal(t, Empty, Empty.Opponent())
	require.Equal(t, "x", X.String())
	require.Equal(t, "o", O.String())
	require.Equal(t, " ", Empty.String())
}
