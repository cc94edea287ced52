package daft

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// SetDiff is the diff of two sets represented as map[K]struct{}.
type SetDiff[K comparable] struct {
	Common  map[K]struct{}
	Added   map[K]struct{}
	Removed map[K]struct{}
}

// DiffSet compares before with after.
func DiffSet[K comparable](before, after map[K]struct{}) SetDiff[K] {
	d := SetDiff[K]{
		Common:  make(map[K]struct{}),
		Added:   make(map[K]struct{}),
		Removed: make(map[K]struct{}),
	}

	for k := range before {
		if _, ok := after[k]; ok {
			d.Common[k] = struct{}{}
		} else {
			d.Removed[k] = struct{}{}
		}
	}

	for k := range after {
		if _, ok := before[k]; !ok {
			d.Added[k] = struct{}{}
		}
	}

	return d
}

// Equal reports whether d and other hold the same entries.
func (d SetDiff[K]) Equal(other SetDiff[K]) bool {
	return maps.Equal(d.Common, other.Common) &&
		maps.Equal(d.Added, other.Added) &&
		maps.Equal(d.Removed, other.Removed)
}

// Unchanged reports whether nothing was added or removed.
func (d SetDiff[K]) Unchanged() bool {
	return len(d.Added) == 0 && len(d.Removed) == 0
}

// String formats d with each part sorted by its formatted value.
func (d SetDiff[K]) String() string {
	return fmt.Sprintf("{Common: %s, Added: %s, Removed: %s}",
		formatSet(d.Common), formatSet(d.Added), formatSet(d.Removed))
}

func formatSet[K comparable](s map[K]struct{}) string {
	items := make([]string, 0, len(s))
	for k := range s {
		items = append(items, fmt.Sprint(k))
	}

	slices.Sort(items)

	return "[" + strings.Join(items, " ") + "]"
}

var _ Diff[SetDiff[string]] = SetDiff[string]{}
