package walker

import "sort"

// Group partitions an entry list under sorted string keys. Per-key lists
// preserve the entries' relative order; the underlying entries are shared,
// never copied or mutated.
type Group struct {
	keys  []string
	byKey map[string][]Entry
}

// Keys returns the group keys in ascending order.
func (g Group) Keys() []string { return g.keys }

// Entries returns the entries filed under key, in their original relative
// order.
func (g Group) Entries(key string) []Entry { return g.byKey[key] }

// Len returns the number of distinct keys.
func (g Group) Len() int { return len(g.keys) }

func group(entries []Entry, keyOf func(Entry) string) Group {
	byKey := make(map[string][]Entry)
	for _, e := range entries {
		k := keyOf(e)
		byKey[k] = append(byKey[k], e)
	}
	keys := make([]string, 0, len(byKey))
	for k := range byKey {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return Group{keys: keys, byKey: byKey}
}

// GroupByKind partitions entries by node kind display name.
func GroupByKind(entries []Entry) Group {
	return group(entries, func(e Entry) string { return e.Kind.String() })
}

// GroupByFirstSegment partitions entries by the first hierarchy level
// beneath the traversal root: Path[1] when the path has more than one
// segment, else Path[0].
func GroupByFirstSegment(entries []Entry) Group {
	return group(entries, func(e Entry) string {
		if len(e.Path) > 1 {
			return e.Path[1]
		}
		return e.Path[0]
	})
}
