package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"

	"github.com/mwiater/jmhviz/internal/viz"
)

// withTempWorkdir changes into a fresh temporary directory for the test.
func withTempWorkdir(t *testing.T) string {
	t.Helper()
	oldWd, err := os.Getwd()
	require.NoError(t, err)
	dir := t.TempDir()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(oldWd) })
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	withTempWorkdir(t)
	v := viper.New()
	require.NoError(t, Load(v, ""))

	cfg, err := Resolve(v)
	require.NoError(t, err)
	assert.Equal(t, DefaultInput, cfg.Input)
	assert.Equal(t, viz.FormatJMH, cfg.InputFormat)
	assert.Equal(t, "N", cfg.Param)
	assert.Equal(t, "charts", cfg.OutputDir)
	assert.Equal(t, "png", cfg.Format)
	assert.True(t, cfg.Index)

	opts := cfg.Options()
	assert.Equal(t, 20*vg.Inch, opts.Render.Width)
	assert.Equal(t, 12*vg.Inch, opts.Render.Height)
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := withTempWorkdir(t)
	yaml := "input: results/run.json\nformat: SVG\nwidth: 10\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "jmhviz.yaml"), []byte(yaml), 0o644))
	t.Setenv("JMHVIZ_PARAM", "size")

	v := viper.New()
	require.NoError(t, Load(v, ""))
	cfg, err := Resolve(v)
	require.NoError(t, err)
	assert.Equal(t, "results/run.json", cfg.Input)
	assert.Equal(t, "svg", cfg.Format)
	assert.Equal(t, 10.0, cfg.Width)
	assert.Equal(t, "size", cfg.Param)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := withTempWorkdir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("JMHVIZ_OUTPUT_DIR=out\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("JMHVIZ_OUTPUT_DIR") })

	v := viper.New()
	require.NoError(t, Load(v, ""))
	cfg, err := Resolve(v)
	require.NoError(t, err)
	assert.Equal(t, "out", cfg.OutputDir)
}

func TestLoad_ExplicitMissingFile(t *testing.T) {
	withTempWorkdir(t)
	assert.Error(t, Load(viper.New(), "nope.yaml"))
}

func TestResolve_Invalid(t *testing.T) {
	withTempWorkdir(t)
	v := viper.New()
	require.NoError(t, Load(v, ""))
	v.Set("format", "bmp")
	_, err := Resolve(v)
	assert.Error(t, err)

	v.Set("format", "png")
	v.Set("input_format", "csv")
	_, err = Resolve(v)
	assert.Error(t, err)
}

func TestLevel(t *testing.T) {
	assert.Equal(t, "DEBUG", Config{LogLevel: "debug"}.Level().String())
	assert.Equal(t, "INFO", Config{LogLevel: "bogus"}.Level().String())
}
