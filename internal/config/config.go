// internal/config/config.go
// Package: config
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gonum.org/v1/plot/vg"

	"github.com/mwiater/jmhviz/internal/render"
	"github.com/mwiater/jmhviz/internal/viz"
)

// DefaultInput is the results file read when none is given.
const DefaultInput = "jmh-results.json"

// Config is the resolved configuration of one command.
type Config struct {
	Input       string  `mapstructure:"input" validate:"required"`
	InputFormat string  `mapstructure:"input_format" validate:"oneof=jmh gobench"`
	Param       string  `mapstructure:"param" validate:"required"`
	OutputDir   string  `mapstructure:"output_dir" validate:"required"`
	Format      string  `mapstructure:"format" validate:"oneof=png svg pdf eps jpg jpeg tif tiff"`
	Width       float64 `mapstructure:"width" validate:"gt=0"`  // inches
	Height      float64 `mapstructure:"height" validate:"gt=0"` // inches
	Index       bool    `mapstructure:"index"`
	LogLevel    string  `mapstructure:"log_level" validate:"oneof=debug info warn error"`
	Debug       bool    `mapstructure:"debug"`
}

// SetDefaults registers the default of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("input", DefaultInput)
	v.SetDefault("input_format", viz.FormatJMH)
	v.SetDefault("param", "N")
	v.SetDefault("output_dir", "charts")
	v.SetDefault("format", "png")
	v.SetDefault("width", 20.0)
	v.SetDefault("height", 12.0)
	v.SetDefault("index", true)
	v.SetDefault("log_level", "info")
	v.SetDefault("debug", false)
}

// Load reads .env, the config file (cfgFile, or ./jmhviz.yaml when empty)
// and JMHVIZ_* environment variables into v. A missing default config file
// is not an error.
func Load(v *viper.Viper, cfgFile string) error {
	_ = godotenv.Load()

	SetDefaults(v)
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("jmhviz")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("JMHVIZ")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("could not read config: %w", err)
		}
	}
	return nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Resolve unmarshals and validates v.
func Resolve(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("could not decode config: %w", err)
	}
	cfg.Format = strings.ToLower(cfg.Format)
	if err := validate.Struct(cfg); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Options turns the config into pipeline options.
func (c Config) Options() viz.Options {
	return viz.Options{
		Input:       c.Input,
		InputFormat: c.InputFormat,
		Param:       c.Param,
		Index:       c.Index,
		Render: render.Options{
			Dir:    c.OutputDir,
			Format: c.Format,
			Width:  vg.Length(c.Width) * vg.Inch,
			Height: vg.Length(c.Height) * vg.Inch,
		},
	}
}

// Level maps LogLevel onto slog.
func (c Config) Level() slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return l
}
