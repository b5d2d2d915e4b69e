package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hare",
		Short: "Hare - turn-indexed evaluation of conversation toxicity detectors",
		Long: `Hare evaluates toxicity detectors on labelled conversations.

It computes how a detector's metrics evolve turn by turn, how each speaker's
toxicity status builds up over a conversation, and precision-recall or ROC
curves over a swept decision threshold. Results are printed as tables or as
JSON documents ready for plotting.`,
		Version:      version,
		SilenceUsage: true,
	}

	debugLogging := cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if *debugLogging {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}
	}

	// Add subcommands
	cmd.AddCommand(newSeriesCommand())
	cmd.AddCommand(newStackCommand())
	cmd.AddCommand(newCurveCommand())
	cmd.AddCommand(newValidateCommand())

	return cmd
}

func execute() error {
	rootCmd := newRootCommand()
	return rootCmd.Execute()
}
