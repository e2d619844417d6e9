// Package runs splits ordered sequences into maximal runs of equal keys.
package runs

// Run is a maximal stretch of adjacent items that share Key.
type Run[T any, K comparable] struct {
	Key   K
	Items []T
}

// Split groups items by adjacency: a new run starts whenever key changes
// from the previous item. Items with equal keys that are not adjacent end up
// in different runs. The returned Items slices alias items.
func Split[T any, K comparable](items []T, key func(T) K) []Run[T, K] {
	var out []Run[T, K]
	start := 0
	for i := 1; i <= len(items); i++ {
		if i < len(items) && key(items[i]) == key(items[start]) {
			continue
		}
		out = append(out, Run[T, K]{Key: key(items[start]), Items: items[start:i:i]})
		start = i
	}
	return out
}

// Keys returns the key of every run in order.
func Keys[T any, K comparable](rs []Run[T, K]) []K {
	keys := make([]K, len(rs))
	for i, r := range rs {
		keys[i] = r.Key
	}
	return keys
}
