// cmd/jmhviz/list_benchmarks.go
package jmhviz

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/k0kubun/pp"
	"github.com/spf13/cobra"

	"github.com/mwiater/jmhviz/internal/collect"
	"github.com/mwiater/jmhviz/internal/layout"
	"github.com/mwiater/jmhviz/internal/viz"
)

// benchmarksCmd implements 'list benchmarks', which prints the inferred
// charts without drawing anything.
var benchmarksCmd = &cobra.Command{
	Use:   "benchmarks [file]",
	Short: "List inferred charts and their benchmarks",
	Long:  `The 'benchmarks' subcommand reads the results file and prints every chart that would be drawn, with its benchmark count, grid and the benchmarks in slot order.`,
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
		st, buf, err := viz.Analyze(records, cfg.Param)
		if err != nil {
			return err
		}
		if cfg.Debug {
			pp.Fprintln(cmd.ErrOrStderr(), st)
		}
		listBenchmarks(cmd.OutOrStdout(), st, buf.Chart)
		return nil
	},
}

func init() {
	listCmd.AddCommand(benchmarksCmd)
}

var chartTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5"))

// listBenchmarks prints one table per chart. chart returns the series of a
// chart in slot order.
func listBenchmarks(w io.Writer, st layout.Structure, chart func(int) []collect.Series) {
	for i, g := range st.Charts {
		grid := g.Grid()
		fmt.Fprintf(w, "%s  %d benchmarks, %dx%d grid\n", chartTitleStyle.Render(g.Title), g.Count, grid.Rows, grid.Cols)

		t := table.New().
			Border(lipgloss.RoundedBorder()).
			Headers("SLOT", "BENCHMARK", "POINTS")
		for j, s := range chart(i) {
			row, col := grid.Slot(j)
			t.Row(fmt.Sprintf("%d,%d", row, col), s.Title(), fmt.Sprint(len(s.Points)))
		}
		fmt.Fprintln(w, t.Render())
	}
}
