package engine

import (
	"fmt"
	"io"
	"strings"

	"connect4/game"
)

// Render prints the board with row numbers on the left and column numbers below.
func Render(w io.Writer, b *game.Board) {
	var sb strings.Builder
	sb.WriteString("\n")
	for row := 0; row < b.Rows(); row++ {
		fmt.Fprintf(&sb, "%d", row+1)
		for col := 0; col < b.Columns(); col++ {
			fmt.Fprintf(&sb, "%2s", b.At(row, col))
		}
		sb.WriteString("\n")
	}
	sb.WriteString(" ")
	for col := 1; col <= b.Columns(); col++ {
		fmt.Fprintf(&sb, "%2d", col)
	}
	sb.WriteString("\n\n")
	io.WriteString(w, sb.String())
}
