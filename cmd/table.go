package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/entail/formatter"
	"github.com/gnolang/entail/internal/logic"
)

// tableCmd: entail table <expr>...
var tableCmd = &cobra.Command{
	Use:   "table <expr>...",
	Short: "Print the truth table of one or more formulas",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runTable(logger, cmd.OutOrStdout(), args, maxSymbols); err != nil {
			logger.Error("Error building truth table", zap.Error(err))
			os.Exit(1)
		}
	},
}

func runTable(logger *zap.Logger, out io.Writer, sources []string, limit int) error {
	sentences := make([]logic.Sentence, 0, len(sources))
	for _, src := range sources {
		s, err := logic.Parse(src)
		if err != nil {
			return fmt.Errorf("%q: %w", src, err)
		}
		sentences = append(sentences, s)
	}

	table, err := logic.NewChecker(logic.CheckConfig{MaxSymbols: limit}, logger).TruthTable(sentences...)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(out, formatter.GenerateTruthTable(table))
	return err
}
