package daft

import (
	"fmt"
	"maps"
)

// MapDiff is the diff of two maps.
//
// Common holds entries present on both sides, as leaves over the two values.
// Added holds entries only present after, Removed entries only present before.
type MapDiff[K comparable, V any] struct {
	Common  map[K]Leaf[V]
	Added   map[K]*V
	Removed map[K]*V
}

// DiffMap compares before with after key by key.
//
// Map values are not addressable, so each leaf and each added or removed
// entry points at a copy of the value taken during the comparison.
func DiffMap[K comparable, V any](before, after map[K]V) MapDiff[K, V] {
	d := MapDiff[K, V]{
		Common:  make(map[K]Leaf[V]),
		Added:   make(map[K]*V),
		Removed: make(map[K]*V),
	}

	for k, bv := range before {
		if av, ok := after[k]; ok {
			d.Common[k] = NewLeaf(&bv, &av)
			continue
		}

		d.Removed[k] = &bv
	}

	for k, av := range after {
		if _, ok := before[k]; !ok {
			d.Added[k] = &av
		}
	}

	return d
}

// Modified returns the common entries whose values differ.
func (d MapDiff[K, V]) Modified() map[K]Leaf[V] {
	out := make(map[K]Leaf[V])
	for k, l := range d.Common {
		if l.Modified() {
			out[k] = l
		}
	}

	return out
}

// UnchangedEntries returns the common entries whose values are equal.
func (d MapDiff[K, V]) UnchangedEntries() map[K]*V {
	out := make(map[K]*V)
	for k, l := range d.Common {
		if l.Unchanged() {
			out[k] = l.Before
		}
	}

	return out
}

// IsModified reports whether k is present on both sides with different values.
func (d MapDiff[K, V]) IsModified(k K) bool {
	l, ok := d.Common[k]
	return ok && l.Modified()
}

// IsUnchanged reports whether k is present on both sides with equal values.
func (d MapDiff[K, V]) IsUnchanged(k K) bool {
	l, ok := d.Common[k]
	return ok && l.Unchanged()
}

// Equal reports whether d and other hold the same entries.
func (d MapDiff[K, V]) Equal(other MapDiff[K, V]) bool {
	return maps.EqualFunc(d.Common, other.Common, Leaf[V].Equal) &&
		maps.EqualFunc(d.Added, other.Added, deepEqual[V]) &&
		maps.EqualFunc(d.Removed, other.Removed, deepEqual[V])
}

// Unchanged reports whether nothing was added, removed or modified.
func (d MapDiff[K, V]) Unchanged() bool {
	if len(d.Added) != 0 || len(d.Removed) != 0 {
		return false
	}

	for _, l := range d.Common {
		if l.Modified() {
			return false
		}
	}

	return true
}

// String formats d with sorted keys, as fmt does for maps.
func (d MapDiff[K, V]) String() string {
	return fmt.Sprintf("{Common: %v, Added: %v, Removed: %v}",
		d.Common, derefValues(d.Added), derefValues(d.Removed))
}

func derefValues[K comparable, V any](m map[K]*V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		if v != nil {
			out[k] = *v
		}
	}

	return out
}

var _ Diff[MapDiff[string, int]] = MapDiff[string, int]{}
