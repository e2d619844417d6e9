package runs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func identity(s string) string { return s }

func TestSplit_Empty(t *testing.T) {
	assert.Empty(t, Split([]string{}, identity))
	assert.Empty(t, Split[string, string](nil, identity))
}

func TestSplit_AdjacencyNotKey(t *testing.T) {
	got := Split([]string{"a", "a", "b", "a", "c", "c"}, identity)
	require.Len(t, got, 4)
	assert.Equal(t, []string{"a", "b", "a", "c"}, Keys(got))
	assert.Equal(t, []string{"a", "a"}, got[0].Items)
	assert.Equal(t, []string{"c", "c"}, got[3].Items)
}

func TestSplit_AppendDoesNotClobberNextRun(t *testing.T) {
	in := []string{"a", "b"}
	got := Split(in, identity)
	_ = append(got[0].Items, "z")
	assert.Equal(t, []string{"a", "b"}, in)
}

func TestSplit_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		items := rapid.SliceOf(rapid.IntRange(0, 3)).Draw(t, "items")
		key := func(v int) int { return v % 2 }
		got := Split(items, key)

		var joined []int
		for i, r := range got {
			if len(r.Items) == 0 {
				t.Fatalf("run %d is empty", i)
			}
			for _, v := range r.Items {
				if key(v) != r.Key {
					t.Fatalf("run %d holds %d with key %d, want %d", i, v, key(v), r.Key)
				}
			}
			if i > 0 && got[i-1].Key == r.Key {
				t.Fatalf("adjacent runs %d and %d share key %d", i-1, i, r.Key)
			}
			joined = append(joined, r.Items...)
		}
		if len(joined) != len(items) {
			t.Fatalf("runs hold %d items, want %d", len(joined), len(items))
		}
		for i := range items {
			if joined[i] != items[i] {
				t.Fatalf("item %d: got %d, want %d", i, joined[i], items[i])
			}
		}
	})
}
