package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/entail/internal/kb"
	"github.com/gnolang/entail/internal/logic"
)

var maxSymbols int

// entailsCmd: entail entails <query> [knowledge...]
var entailsCmd = &cobra.Command{
	Use:   "entails <query> [knowledge...]",
	Short: "Decide whether the conjunction of the knowledge formulas entails the query",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		entailed, err := runEntails(logger, cmd.OutOrStdout(), args[0], args[1:], maxSymbols)
		if err != nil {
			logger.Error("Error checking entailment", zap.Error(err))
			os.Exit(1)
		}
		if !entailed {
			os.Exit(1)
		}
	},
}

func init() {
	entailsCmd.Flags().IntVar(&maxSymbols, "max-symbols", kb.DefaultMaxSymbols, "Maximum number of symbols to enumerate (0 for no limit)")
	tableCmd.Flags().IntVar(&maxSymbols, "max-symbols", kb.DefaultMaxSymbols, "Maximum number of symbols to enumerate (0 for no limit)")
	equivCmd.Flags().IntVar(&maxSymbols, "max-symbols", kb.DefaultMaxSymbols, "Maximum number of symbols to enumerate (0 for no limit)")
}

// runEntails parses the formulas, checks entailment and prints the verdict
// together with a counterexample when there is one.
func runEntails(logger *zap.Logger, out io.Writer, query string, knowledge []string, limit int) (bool, error) {
	q, err := logic.Parse(query)
	if err != nil {
		return false, fmt.Errorf("query %q: %w", query, err)
	}
	k, err := parseKnowledge(knowledge)
	if err != nil {
		return false, err
	}

	checker := logic.NewChecker(logic.CheckConfig{MaxSymbols: limit}, logger)
	model, found, err := checker.Counterexample(k, q)
	if err != nil {
		return false, err
	}

	if !found {
		fmt.Fprintf(out, "%s ⊨ %s\n", knowledgeFormula(k), q.Formula())
		return true, nil
	}
	fmt.Fprintf(out, "%s ⊭ %s\n", knowledgeFormula(k), q.Formula())
	fmt.Fprintf(out, "counterexample: %s\n", model)
	return false, nil
}

func parseKnowledge(sources []string) (*logic.And, error) {
	k := logic.Must(logic.NewAnd())
	for i, src := range sources {
		s, err := logic.Parse(src)
		if err != nil {
			return nil, fmt.Errorf("knowledge[%d] %q: %w", i, src, err)
		}
		if err := k.Add(s); err != nil {
			return nil, err
		}
	}
	return k, nil
}

// knowledgeFormula renders empty knowledge as ⊤ rather than an empty string.
func knowledgeFormula(k *logic.And) string {
	if len(k.Conjuncts) == 0 {
		return "⊤"
	}
	return k.Formula()
}
