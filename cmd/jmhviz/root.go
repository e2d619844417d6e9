// cmd/jmhviz/root.go
package jmhviz

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mwiater/jmhviz/internal/config"
)

var (
	// cfgFile is the --config flag.
	cfgFile string
	// logger is built in PersistentPreRunE once the log level is known.
	logger = slog.Default()
)

// rootCmd is the base Cobra command for the jmhviz application.
// All subcommands are attached to this root to form the complete CLI.
var rootCmd = &cobra.Command{
	Use:   "jmhviz",
	Short: "Chart JMH benchmark results",
	Long: `jmhviz reads a JMH JSON results file, groups benchmarks by class and method
and renders one figure per class with a score vs. N chart for every benchmark.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(viper.GetViper(), cfgFile); err != nil {
			return err
		}
		cfg, err := config.Resolve(viper.GetViper())
		if err != nil {
			return err
		}
		logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: cfg.Level()}))
		logger.Debug("config loaded", "file", viper.ConfigFileUsed())
		return nil
	},
}

// Execute runs the root Cobra command and all registered subcommands.
// It prints any returned error and exits the process with a non-zero
// status code on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default ./jmhviz.yaml)")
	pf.Bool("debug", false, "dump inferred structures and log the browser to debug.log")
	pf.String("log-level", "info", "log level: debug, info, warn or error")
	pf.String("input-format", "jmh", "input format: jmh or gobench")
	pf.String("param", "N", "benchmark parameter plotted on the x axis")
	pf.String("output-dir", "charts", "directory figures are written to")
	pf.String("format", "png", "image format: png, svg, pdf, eps, jpg or tif")
	pf.Float64("width", 20, "figure width in inches")
	pf.Float64("height", 12, "figure height in inches")
	pf.Bool("index", true, "write index.html next to the figures")

	for key, flag := range map[string]string{
		"debug":        "debug",
		"log_level":    "log-level",
		"input_format": "input-format",
		"param":        "param",
		"output_dir":   "output-dir",
		"format":       "format",
		"width":        "width",
		"height":       "height",
		"index":        "index",
	} {
		_ = viper.BindPFlag(key, pf.Lookup(flag))
	}
}

// resolve returns the effective config for a command. A positional file
// argument takes precedence over the configured input.
func resolve(args []string) (config.Config, error) {
	cfg, err := config.Resolve(viper.GetViper())
	if err != nil {
		return cfg, err
	}
	if len(args) > 0 {
		cfg.Input = args[0]
	}
	return cfg, nil
}
