package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/entail/formatter"
	"github.com/gnolang/entail/internal/tictactoe"
)

var playAs string

// playCmd: entail play
var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play tic-tac-toe against a minimax opponent",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		human, err := parsePlayer(playAs)
		if err != nil {
			logger.Error("Error starting game", zap.Error(err))
			os.Exit(1)
		}
		if err := runPlay(cmd.InOrStdin(), cmd.OutOrStdout(), human, minimaxOpponent{}); err != nil {
			logger.Error("Error playing game", zap.Error(err))
			os.Exit(1)
		}
	},
}

func init() {
	playCmd.Flags().StringVar(&playAs, "as", "X", "Side to play (X moves first)")
}

// opponent chooses moves for the computer side.
type opponent interface {
	Move(b tictactoe.Board) (tictactoe.Action, bool)
}

type minimaxOpponent struct{}

func (minimaxOpponent) Move(b tictactoe.Board) (tictactoe.Action, bool) {
	return tictactoe.BestMove(b)
}

func parsePlayer(s string) (tictactoe.Player, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "X":
		return tictactoe.X, nil
	case "O":
		return tictactoe.O, nil
	default:
		return tictactoe.Empty, fmt.Errorf("unknown side %q, want X or O", s)
	}
}

// runPlay runs one game. The human's moves are read from in as
// "row col" lines; invalid lines are reported and asked for again.
func runPlay(in io.Reader, out io.Writer, human tictactoe.Player, ai opponent) error {
	scanner := bufio.NewScanner(in)
	board := tictactoe.InitialState()

	for !tictactoe.Terminal(board) {
		if tictactoe.CurrentPlayer(board) != human {
			a, ok := ai.Move(board)
			if !ok {
				return errors.New("opponent found no move")
			}
			next, err := tictactoe.Result(board, a)
			if err != nil {
				return fmt.Errorf("opponent move %s: %w", a, err)
			}
			fmt.Fprintf(out, "Computer plays %s\n", a)
			board = next
			continue
		}

		fmt.Fprint(out, formatter.GenerateBoard(board))
		next, err := readMove(scanner, out, board)
		if err != nil {
			return err
		}
		board = next
	}

	fmt.Fprint(out, formatter.GenerateBoard(board))
	fmt.Fprint(out, formatter.GenerateOutcome(board))
	return nil
}

func readMove(scanner *bufio.Scanner, out io.Writer, board tictactoe.Board) (tictactoe.Board, error) {
	for {
		fmt.Fprintf(out, "Your move (%s), as row col: ", tictactoe.CurrentPlayer(board))
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return board, err
			}
			return board, io.ErrUnexpectedEOF
		}

		a, err := parseAction(scanner.Text())
		if err != nil {
			fmt.Fprintf(out, "%v\n", err)
			continue
		}
		next, err := tictactoe.Result(board, a)
		if err != nil {
			fmt.Fprintf(out, "%v\n", err)
			continue
		}
		return next, nil
	}
}

func parseAction(line string) (tictactoe.Action, error) {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
	if len(fields) != 2 {
		return tictactoe.Action{}, fmt.Errorf("expected two numbers, got %q", strings.TrimSpace(line))
	}
	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return tictactoe.Action{}, fmt.Errorf("bad row %q", fields[0])
	}
	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return tictactoe.Action{}, fmt.Errorf("bad column %q", fields[1])
	}
	return tictactoe.Action{Row: row, Col: col}, nil
}
