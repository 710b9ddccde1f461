// Package cli wires the negfilt command line.
package cli

import (
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/charmingruby/negfilt/internal/printer"
	"github.com/charmingruby/negfilt/negative"
)

// NewRootCommand builds the negfilt command. Results go to out; logger
// receives diagnostics only.
func NewRootCommand(out io.Writer, logger *zap.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "negfilt",
		Short: "Print the negative values of the built-in sample, one per line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(out, logger)
		},
	}
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	cmd.SetOut(out)
	return cmd
}

func run(out io.Writer, logger *zap.Logger) error {
	in := negative.Sample()
	res := negative.Filter(in)
	logger.Debug("filtered sample",
		zap.Int("input", len(in)),
		zap.Int("negatives", len(res)),
	)
	return printer.WriteLines(out, res)
}
