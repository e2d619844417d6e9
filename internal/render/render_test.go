package render

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"

	"github.com/mwiater/jmhviz/internal/collect"
	"github.com/mwiater/jmhviz/internal/jmh"
	"github.com/mwiater/jmhviz/internal/layout"
)

func series(method string, pts ...collect.Point) collect.Series {
	return collect.Series{Class: "Q", Method: method, Unit: "ms", Points: pts}
}

func pt(label string, score, low, high float64) collect.Point {
	return collect.Point{Label: label, N: collect.ParseN(label), Score: score, Low: low, High: high}
}

func TestBand_ClampsNegativeLow(t *testing.T) {
	low, high := Band([]collect.Point{pt("10", 1, -5, 7), pt("20", 2, 1, 3)})
	assert.Equal(t, 0.0, low[0].Y)
	assert.Equal(t, 7.0, high[0].Y)
	assert.Equal(t, 1.0, low[1].Y)
	assert.Equal(t, 3.0, high[1].Y)
}

func TestDrawable_DropsInvalidAndSorts(t *testing.T) {
	s := series("m", pt("1000", 3, 2, 4), pt("bad", 9, 8, 10), pt("10", 1, 0, 2), pt("100", 2, 1, 3))
	got := drawable(s)
	require.Len(t, got, 3)
	assert.Equal(t, []float64{10, 100, 1000}, []float64{got[0].N, got[1].N, got[2].N})
}

func TestTicks_UseExactNValues(t *testing.T) {
	ticks := Ticks(drawable(series("m", pt("100", 1, 0, 2), pt("5000", 2, 1, 3), pt("100000", 3, 2, 4))))
	require.Len(t, ticks, 3)
	assert.Equal(t, 5000.0, ticks[1].Value)
	assert.Equal(t, "5000", ticks[1].Label)
}

func TestPanel_TitleAndRotation(t *testing.T) {
	p, err := Panel(series("m1", pt("10", 1, 0.5, 1.5), pt("20", 2, 1.5, 2.5)), DarkGrid)
	require.NoError(t, err)
	assert.Equal(t, "m1 [ms]", p.Title.Text)
	assert.InDelta(t, math.Pi/4, p.X.Tick.Label.Rotation, 1e-9)
	assert.Equal(t, DarkGrid.Background, p.BackgroundColor)
}

func TestPanel_SinglePointAndNoPoints(t *testing.T) {
	_, err := Panel(series("one", pt("10", 5, 4, 6)), DarkGrid)
	require.NoError(t, err)

	p, err := Panel(series("none", pt("x", 5, 4, 6)), DarkGrid)
	require.NoError(t, err)
	assert.Equal(t, "none [ms]", p.Title.Text)
}

func TestFigure_Place(t *testing.T) {
	f := NewFigure(layout.ChartGroup{Title: "Q", Count: 4}, DarkGrid)
	require.Equal(t, layout.Grid{Rows: 2, Cols: 3}, f.Grid)

	p, err := Panel(series("m", pt("1", 1, 0, 2)), DarkGrid)
	require.NoError(t, err)
	require.NoError(t, f.Place(3, p))
	assert.Same(t, p, f.At(1, 0))
	assert.Nil(t, f.At(1, 2))

	assert.Error(t, f.Place(3, p))
	assert.Error(t, f.Place(6, p))
}

func TestCanvas_Series(t *testing.T) {
	c := NewCanvas(layout.Structure{Charts: []layout.ChartGroup{{Title: "Q", Count: 2}}}, DarkGrid, nil)
	require.NoError(t, c.Series(0, 1, series("m2", pt("10", 5, 4, 6))))
	assert.NotNil(t, c.Figures[0].At(0, 1))
	assert.Error(t, c.Series(1, 0, series("m3")))
}

func TestCanvas_WriteFixture(t *testing.T) {
	records, err := jmh.Load(filepath.Join("..", "jmh", "testdata", "jmh-results.json"), jmh.DefaultParam)
	require.NoError(t, err)
	st := layout.Infer(records)
	c := NewCanvas(st, DarkGrid, nil)
	require.NoError(t, collect.Collect(records, st, jmh.DefaultParam, c))

	dir := t.TempDir()
	for _, format := range []string{"png", "svg"} {
		paths, err := c.Write(Options{Dir: dir, Format: format, Width: 8 * vg.Inch, Height: 5 * vg.Inch})
		require.NoError(t, err)
		require.Len(t, paths, 2)
		assert.Equal(t, filepath.Join(dir, "01_Map_Benchmark."+format), paths[0])
		assert.Equal(t, filepath.Join(dir, "02_Set_Benchmark."+format), paths[1])
		for _, p := range paths {
			info, err := os.Stat(p)
			require.NoError(t, err)
			assert.Positive(t, info.Size())
		}
	}
}

func TestCanvas_WriteUnknownFormat(t *testing.T) {
	c := NewCanvas(layout.Structure{Charts: []layout.ChartGroup{{Title: "Q", Count: 1}}}, DarkGrid, nil)
	_, err := c.Write(Options{Dir: t.TempDir(), Format: "bmp", Width: vg.Inch, Height: vg.Inch})
	assert.Error(t, err)
}

func TestWriteIndex(t *testing.T) {
	c := NewCanvas(layout.Structure{Charts: []layout.ChartGroup{{Title: "Map_Benchmark", Count: 1}}}, DarkGrid, nil)
	require.NoError(t, c.Series(0, 0, series("m", pt("1", 1, 0, 2))))

	dir := t.TempDir()
	path, err := WriteIndex(dir, "JMH results", c.Entries([]string{filepath.Join(dir, "01_Map_Benchmark.png")}))
	require.NoError(t, err)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	html := string(b)
	assert.True(t, strings.Contains(html, `src="01_Map_Benchmark.png"`))
	assert.Contains(t, html, "(1 benchmarks)")
}

func TestWriteIndex_LinksDocumentFormats(t *testing.T) {
	dir := t.TempDir()
	path, err := WriteIndex(dir, "JMH results", []IndexEntry{
		{Title: "Map_Benchmark", File: "01_Map_Benchmark.pdf", Count: 2},
		{Title: "Set_Benchmark", File: "02_Set_Benchmark.svg", Count: 4},
	})
	require.NoError(t, err)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	html := string(b)
	assert.Contains(t, html, `<a href="01_Map_Benchmark.pdf">`)
	assert.NotContains(t, html, `src="01_Map_Benchmark.pdf"`)
	assert.Contains(t, html, `src="02_Set_Benchmark.svg"`)
}

func TestIndexEntry_Embeddable(t *testing.T) {
	for file, want := range map[string]bool{"a.png": true, "a.SVG": true, "a.jpg": true, "a.pdf": false, "a.eps": false, "a.tif": false} {
		assert.Equal(t, want, IndexEntry{File: file}.Embeddable(), file)
	}
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "03_Outer_Inner.svg", FileName(2, "Outer$Inner", "svg"))
	assert.Equal(t, "01_a_b.png", FileName(0, "a/b", "png"))
}
