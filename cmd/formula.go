package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/entail/internal/logic"
)

var showStructure bool

// formulaCmd: entail formula <expr>
var formulaCmd = &cobra.Command{
	Use:   "formula <expr>",
	Short: "Parse a formula and print its canonical rendering and symbols",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runFormula(cmd.OutOrStdout(), args[0], showStructure); err != nil {
			logger.Error("Error parsing formula", zap.Error(err))
			os.Exit(1)
		}
	},
}

func init() {
	formulaCmd.Flags().BoolVar(&showStructure, "structure", false, "Also print the constructor form of the sentence")
}

func runFormula(out io.Writer, src string, structure bool) error {
	s, err := logic.Parse(src)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, s.Formula())
	if structure {
		fmt.Fprintln(out, s.String())
	}
	fmt.Fprintf(out, "symbols: {%s}\n", strings.Join(s.Symbols().Sorted(), ", "))
	return nil
}
