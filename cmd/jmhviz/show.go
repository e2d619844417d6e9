// cmd/jmhviz/show.go
package jmhviz

import (
	"fmt"
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mwiater/jmhviz/internal/view"
)

// startGUI is swapped out in tests.
var startGUI = view.StartGUI

// showCmd implements 'show', which renders the figures and opens the
// terminal browser over them.
var showCmd = &cobra.Command{
	Use:   "show [file]",
	Short: "Render figures and browse them",
	Long:  `The 'show' command renders the figures like 'render' and then opens an interactive terminal browser listing every chart and its series. Press 'o' to open a figure in the system viewer.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolve(args)
		if err != nil {
			return err
		}

		// The alternate screen owns stderr while the browser runs.
		var w io.Writer = io.Discard
		if cfg.Debug {
			f, err := tea.LogToFile("debug.log", "debug")
			if err != nil {
				return fmt.Errorf("could not open debug log: %w", err)
			}
			defer f.Close()
			w = f
		}
		l := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: cfg.Level()}))
		return startGUI(cfg.Options(), l)
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
