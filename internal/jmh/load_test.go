package jmh

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Fixture(t *testing.T) {
	records, err := Load(filepath.Join("testdata", "jmh-results.json"), DefaultParam)
	require.NoError(t, err)
	require.Len(t, records, 14)

	first := records[0]
	assert.Equal(t, "Map_Benchmark", first.Class())
	assert.Equal(t, "arrayMap", first.Method())
	assert.Equal(t, "100", first.Param("N"))
	assert.Equal(t, "ns/op", first.Unit())
	assert.Equal(t, Key{Class: "Map_Benchmark", Method: "arrayMap"}, first.SeriesKey())

	low, high := records[len(records)-1].Confidence()
	assert.Less(t, low, high)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"), DefaultParam)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{"invalid json", `[{"benchmark":`, ErrMalformed},
		{"empty array", `[]`, ErrNoRecords},
		{"missing benchmark", `[{"params":{"N":"1"},"primaryMetric":{"scoreConfidence":[0,1]}}]`, ErrMalformed},
		{"no class", `[{"benchmark":"solo","params":{"N":"1"},"primaryMetric":{"scoreConfidence":[0,1]}}]`, ErrMalformed},
		{"missing param", `[{"benchmark":"p.Q.m","params":{"M":"1"},"primaryMetric":{"scoreConfidence":[0,1]}}]`, ErrMalformed},
		{"short confidence", `[{"benchmark":"p.Q.m","params":{"N":"1"},"primaryMetric":{"scoreConfidence":[0]}}]`, ErrMalformed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.in), DefaultParam)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDecode_CustomParam(t *testing.T) {
	in := `[{"benchmark":"p.Q.m","params":{"size":"8"},"primaryMetric":{"score":1,"scoreConfidence":[0.5,1.5],"scoreUnit":"us/op"}}]`
	records, err := Decode(strings.NewReader(in), "size")
	require.NoError(t, err)
	assert.Equal(t, "8", records[0].Param("size"))
}

func TestRecord_ShortIdentifier(t *testing.T) {
	r := Record{Benchmark: "Q.m"}
	assert.Equal(t, "Q", r.Class())
	assert.Equal(t, "m", r.Method())
}

func TestDecode_NonFiniteError(t *testing.T) {
	in := `[{"benchmark":"p.Q.m","params":{"N":"1"},"primaryMetric":{"score":3.5,"scoreError":"NaN","scoreConfidence":["NaN","NaN"],"scoreUnit":"ns/op"}}]`
	records, err := Decode(strings.NewReader(in), DefaultParam)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(records[0].PrimaryMetric.ScoreError))
	assert.Equal(t, 3.5, records[0].Score())

	low, high := records[0].Confidence()
	assert.Equal(t, 3.5, low)
	assert.Equal(t, 3.5, high)
}

func TestDecode_BadNumber(t *testing.T) {
	in := `[{"benchmark":"p.Q.m","params":{"N":"1"},"primaryMetric":{"score":"fast","scoreConfidence":[0,1]}}]`
	_, err := Decode(strings.NewReader(in), DefaultParam)
	assert.ErrorIs(t, err, ErrMalformed)
}
