package formatter

import (
	"strings"

	"github.com/gnolang/entail/internal/tictactoe"
)

var (
	xStyle = errorStyle
	oStyle = idStyle
)

// GenerateBoard renders a board with row and column indices so that
// a player can name a cell.
func GenerateBoard(b tictactoe.Board) string {
	var builder strings.Builder
	builder.WriteString(lineStyle.Sprint("    0   1   2") + "\n")
	for i := range tictactoe.Size {
		if i > 0 {
			builder.WriteString(lineStyle.Sprint("   ---+---+---") + "\n")
		}
		cells := make([]string, tictactoe.Size)
		for j := range tictactoe.Size {
			cells[j] = " " + cell(b[i][j]) + " "
		}
		builder.WriteString(lineStyle.Sprintf("%d ", i) + " " + strings.Join(cells, lineStyle.Sprint("|")) + "\n")
	}
	return builder.String()
}

func cell(p tictactoe.Player) string {
	switch p {
	case tictactoe.X:
		return xStyle.Sprint("X")
	case tictactoe.O:
		return oStyle.Sprint("O")
	default:
		return " "
	}
}

// GenerateOutcome describes a finished game.
func GenerateOutcome(b tictactoe.Board) string {
	switch w := tictactoe.Winner(b); w {
	case tictactoe.Empty:
		return warningStyle.Sprint("Game over: tie.") + "\n"
	default:
		return successStyle.Sprintf("Game over: %s wins.", w) + "\n"
	}
}
