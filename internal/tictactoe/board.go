// Package tictactoe implements tic-tac-toe rules and an alpha-beta
// pruned minimax player.
package tictactoe

import (
	"errors"
	"fmt"
	"strings"
)

// Size is the width and height of the board.
const Size = 3

// ErrInvalidAction is returned when an action targets an occupied or
// out-of-range cell, or the game is already over.
var ErrInvalidAction = errors.New("invalid action")

// Player is the content of a cell, or the side to move.
type Player int

const (
	Empty Player = iota
	X
	O
)

func (p Player) String() string {
	switch p {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return " "
	}
}

// Board is a tic-tac-toe position. Boards are values; copying one
// copies the whole grid.
type Board [Size][Size]Player

// Action is a move at (Row, Col), zero based.
type Action struct {
	Row int
	Col int
}

func (a Action) String() string {
	return fmt.Sprintf("(%d, %d)", a.Row, a.Col)
}

// InitialState returns the empty starting board.
func InitialState() Board {
	return Board{}
}

// CurrentPlayer returns the player who moves next. X always moves first.
func CurrentPlayer(b Board) Player {
	filled := 0
	for i := range Size {
		for j := range Size {
			if b[i][j] != Empty {
				filled++
			}
		}
	}
	if filled%2 == 1 {
		return O
	}
	return X
}

// Actions returns every empty cell in row-major order.
func Actions(b Board) []Action {
	actions := make([]Action, 0, Size*Size)
	for i := range Size {
		for j := range Size {
			if b[i][j] == Empty {
				actions = append(actions, Action{Row: i, Col: j})
			}
		}
	}
	return actions
}

// Result returns the board after the current player takes action.
// The input board is not modified.
func Result(b Board, a Action) (Board, error) {
	if a.Row < 0 || a.Row >= Size || a.Col < 0 || a.Col >= Size {
		return b, fmt.Errorf("%w: %s is off the board", ErrInvalidAction, a)
	}
	if b[a.Row][a.Col] != Empty {
		return b, fmt.Errorf("%w: %s is occupied", ErrInvalidAction, a)
	}
	if Terminal(b) {
		return b, fmt.Errorf("%w: game is over", ErrInvalidAction)
	}
	next := b
	next[a.Row][a.Col] = CurrentPlayer(b)
	return next, nil
}

// Winner returns the player with three in a row, or Empty if there is none.
func Winner(b Board) Player {
	for i := range Size {
		if b[i][0] != Empty && b[i][0] == b[i][1] && b[i][1] == b[i][2] {
			return b[i][0]
		}
		if b[0][i] != Empty && b[0][i] == b[1][i] && b[1][i] == b[2][i] {
			return b[0][i]
		}
	}
	center := b[1][1]
	if center != Empty {
		if (b[0][0] == center && b[2][2] == center) || (b[0][2] == center && b[2][0] == center) {
			return center
		}
	}
	return Empty
}

// Terminal reports whether the game is over.
func Terminal(b Board) bool {
	return Winner(b) != Empty || len(Actions(b)) == 0
}

// Utility returns 1 if X has won, -1 if O has won and 0 otherwise.
func Utility(b Board) int {
	switch Winner(b) {
	case X:
		return 1
	case O:
		return -1
	default:
		return 0
	}
}

// String renders the board as three rows separated by dividers.
func (b Board) String() string {
	rows := make([]string, Size)
	for i := range Size {
		cells := make([]string, Size)
		for j := range Size {
			cells[j] = " " + b[i][j].String() + " "
		}
		rows[i] = strings.Join(cells, "|")
	}
	return strings.Join(rows, "\n---+---+---\n")
}
