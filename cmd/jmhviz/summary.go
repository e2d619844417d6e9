// cmd/jmhviz/summary.go
package jmhviz

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mwiater/jmhviz/internal/summary"
	"github.com/mwiater/jmhviz/internal/viz"
)

// summaryCmd implements 'summary', which prints per-benchmark statistics.
var summaryCmd = &cobra.Command{
	Use:   "summary [file]",
	Short: "Print score statistics per benchmark",
	Long:  `The 'summary' command prints one table row per benchmark with the min, median, max and mean score over the swept parameter, the growth from the first to the last value and the widest relative confidence interval.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolve(args)
		if err != nil {
			return err
		}
		records, err := viz.Load(cfg.Input, cfg.InputFormat, cfg.Param, logger)
		if err != nil {
			return err
		}
		_, buf, err := viz.Analyze(records, cfg.Param)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), summary.Table(summary.Summarize(buf.Placed)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}
