package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/entail/formatter"
	"github.com/gnolang/entail/internal/kb"
)

var (
	checkJsonOutput bool
	outPath         string
	watchConfig     bool
	workers         int
	showProgress    bool
)

// checkCmd: entail check [config]
var checkCmd = &cobra.Command{
	Use:   "check [config]",
	Short: "Check every query of a knowledge base file",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := configPath(args)

		ctx := context.Background()
		if watchConfig {
			ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
			defer stop()

			// Verdicts are kept across re-runs so only edited queries are re-checked.
			opts := checkOptions(cmd)
			opts.Cache = kb.NewCache()
			rerun := func(ctx context.Context) error {
				_, err := runCheck(ctx, logger, cmd.OutOrStdout(), path, opts, checkJsonOutput, outPath)
				return err
			}
			if err := rerun(ctx); err != nil {
				logger.Error("Error checking knowledge base", zap.Error(err))
			}
			if err := kb.Watch(ctx, logger, path, rerun); err != nil {
				logger.Error("Error watching knowledge base", zap.Error(err))
				os.Exit(1)
			}
			return
		}

		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		report, err := runCheck(ctx, logger, cmd.OutOrStdout(), path, checkOptions(cmd), checkJsonOutput, outPath)
		if err != nil {
			logger.Error("Error checking knowledge base", zap.Error(err))
			os.Exit(1)
		}
		if !report.AllEntailed() {
			os.Exit(1)
		}
	},
}

func init() {
	checkCmd.Flags().BoolVar(&checkJsonOutput, "json", false, "Output the report in JSON format")
	checkCmd.Flags().StringVarP(&outPath, "output", "o", "", "Output path (when using JSON)")
	checkCmd.Flags().BoolVarP(&watchConfig, "watch", "w", false, "Re-run the check whenever the file changes")
	checkCmd.Flags().IntVar(&workers, "workers", 0, "Number of queries checked concurrently (default: number of CPUs)")
	checkCmd.Flags().BoolVar(&showProgress, "progress", false, "Show a progress bar on stderr (default: when stderr is a terminal)")
}

func configPath(args []string) string {
	switch {
	case len(args) > 0:
		return args[0]
	case cfgFile != "":
		return cfgFile
	default:
		return kb.DefaultConfigPath
	}
}

func checkOptions(cmd *cobra.Command) kb.Options {
	opts := kb.Options{Workers: workers}
	if wantProgress(cmd) {
		opts.Progress = cmd.ErrOrStderr()
	}
	return opts
}

func wantProgress(cmd *cobra.Command) bool {
	if cmd.Flags().Changed("progress") || checkJsonOutput {
		return showProgress
	}
	f, ok := cmd.ErrOrStderr().(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

// runCheck loads, compiles and checks the knowledge base at path, then
// prints the report.
func runCheck(ctx context.Context, logger *zap.Logger, out io.Writer, path string, opts kb.Options, isJson bool, jsonOutput string) (*kb.Report, error) {
	config, err := kb.Load(path)
	if err != nil {
		return nil, err
	}
	prog, err := kb.Compile(config)
	if err != nil {
		return nil, err
	}
	report, err := kb.Run(ctx, logger, prog, opts)
	if err != nil {
		return nil, err
	}
	if err := printReport(out, report, isJson, jsonOutput); err != nil {
		return nil, err
	}
	return report, nil
}

func printReport(out io.Writer, report *kb.Report, isJson bool, jsonOutput string) error {
	if !isJson {
		_, err := fmt.Fprint(out, formatter.GenerateFormattedReport(report))
		return err
	}

	d, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("error marshalling report to JSON: %w", err)
	}
	if jsonOutput == "" {
		_, err = fmt.Fprintln(out, string(d))
		return err
	}

	f, err := os.Create(jsonOutput)
	if err != nil {
		return fmt.Errorf("error creating JSON output file: %w", err)
	}
	defer f.Close()
	if _, err := f.Write(d); err != nil {
		return fmt.Errorf("error writing JSON output file: %w", err)
	}
	return nil
}
