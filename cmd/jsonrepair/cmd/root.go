// Package cmd implements the jsonrepair command-line tool: a thin
// wrapper around the jsonrepair library for repairing a file or stdin
// stream of malformed JSON.
package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:          "jsonrepair",
		Short:        "jsonrepair",
		SilenceUsage: true,
		Long:         `Repair malformed JSON from LLM output, hand-edited config, or garbled input into strictly valid JSON.`,
	}

	maxDepth int
	verbose  bool
	logger   = logrus.New()
)

// Execute runs the root command.
func Execute() error {
	rootCmd.PersistentFlags().IntVar(&maxDepth, "max-depth", 0, "maximum nesting depth allowed (0 uses the config file value, or 100 if unset)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log repair details to stderr")
	return rootCmd.Execute()
}

func init() {
	logger.SetOutput(logrus.StandardLogger().Out)
}
