// cmd/jmhviz/render.go
package jmhviz

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mwiater/jmhviz/internal/viz"
)

// renderCmd implements 'render', which writes one figure per benchmark class.
var renderCmd = &cobra.Command{
	Use:   "render [file]",
	Short: "Render one figure per benchmark class",
	Long:  `The 'render' command reads the results file (default jmh-results.json) and writes one figure per benchmark class to the output directory, plus an index.html linking them.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolve(args)
		if err != nil {
			return err
		}
		res, err := viz.Run(cfg.Options(), logger)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, f := range res.Files {
			fmt.Fprintln(out, f)
		}
		if res.IndexPath != "" {
			fmt.Fprintln(out, res.IndexPath)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)
}
