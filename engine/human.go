package engine

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"connect4/game"
)

var ErrInputClosed = errors.New("input closed")

// Human reads columns from a line-oriented input and asks again until the column is
// playable. An empty name prompts without addressing anyone. Share one scanner between every reader of the same input.
type Human struct {
	name string
	in   *bufio.Scanner
	out  io.Writer
}

func NewHuman(name string, in *bufio.Scanner, out io.Writer) *Human {
	return &Human{
		name: name,
		in:   in,
		out:  out,
	}
}

func (h *Human) ChooseColumn(board *game.Board) (int, error) {
	for {
		if h.name == "" {
			fmt.Fprint(h.out, "Please choose your next move: ")
		} else {
			fmt.Fprintf(h.out, "%s please choose your next move: ", h.name)
		}
		if !h.in.Scan() {
			if err := h.in.Err(); err != nil {
				return 0, err
			}
			return 0, ErrInputClosed
		}

		column, err := strconv.Atoi(strings.TrimSpace(h.in.Text()))
		switch {
		case err != nil:
			fmt.Fprintln(h.out, "Warning. Please enter a column number.")
		case column < 1 || column > board.Columns():
			fmt.Fprintf(h.out, "Warning. Please choose between 1 and %d for column number.\n", board.Columns())
		case !board.IsColumnOpen(column):
			fmt.Fprintln(h.out, "Warning. The chosen column is filled up. Please choose another column.")
		default:
			return column, nil
		}
	}
}

// ReadSymbol asks until the answer is x or o.
func ReadSymbol(in *bufio.Scanner, out io.Writer) (game.Cell, error) {
	for {
		fmt.Fprint(out, "Please choose x or o. x will go first: ")
		if !in.Scan() {
			if err := in.Err(); err != nil {
				return game.Empty, err
			}
			return game.Empty, ErrInputClosed
		}
		switch strings.ToLower(strings.TrimSpace(in.Text())) {
		case "x", "1":
			return game.X, nil
		case "o", "0":
			return game.O, nil
		}
	}
}
