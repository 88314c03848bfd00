package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/entail/internal/kb"
)

// initCmd: entail init
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a sample knowledge base file",
	Run: func(cmd *cobra.Command, args []string) {
		path, err := kb.WriteSample(cfgFile)
		if err != nil {
			logger.Error("Error initializing knowledge base file", zap.Error(err))
			return
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Knowledge base file created/updated: %s\n", path)
	},
}
