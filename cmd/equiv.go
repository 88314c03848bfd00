package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/entail/internal/logic"
)

// equivCmd: entail equiv <a> <b>
var equivCmd = &cobra.Command{
	Use:   "equiv <a> <b>",
	Short: "Decide whether two formulas are logically equivalent",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		equivalent, err := runEquiv(logger, cmd.OutOrStdout(), args[0], args[1], maxSymbols)
		if err != nil {
			logger.Error("Error checking equivalence", zap.Error(err))
			os.Exit(1)
		}
		if !equivalent {
			os.Exit(1)
		}
	},
}

func runEquiv(logger *zap.Logger, out io.Writer, left, right string, limit int) (bool, error) {
	a, err := logic.Parse(left)
	if err != nil {
		return false, fmt.Errorf("%q: %w", left, err)
	}
	b, err := logic.Parse(right)
	if err != nil {
		return false, fmt.Errorf("%q: %w", right, err)
	}

	ok, witness, err := logic.NewChecker(logic.CheckConfig{MaxSymbols: limit}, logger).Equivalent(a, b)
	if err != nil {
		return false, err
	}
	if ok {
		fmt.Fprintf(out, "%s ≡ %s\n", a.Formula(), b.Formula())
		return true, nil
	}
	fmt.Fprintf(out, "%s ≢ %s\n", a.Formula(), b.Formula())
	fmt.Fprintf(out, "differ at: %s\n", witness)
	return false, nil
}
