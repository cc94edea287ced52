package daft

import "fmt"

// Diffable is implemented by pointers to types that can be compared
// structurally. D is the diff type produced by a comparison.
//
// Generated code implements it as
//
//	func (before *T) Diff(after *T) TDiff
type Diffable[T, D any] interface {
	Diff(other *T) D
}

// Equaler is implemented by diff types that can be compared with each other.
type Equaler[D any] interface {
	Equal(other D) bool
}

// Witness is implemented by diff types that can tell whether the two
// compared values were equal.
type Witness interface {
	Unchanged() bool
}

// Diff is the full capability set of a diff value.
type Diff[D any] interface {
	fmt.Stringer
	Equaler[D]
	Witness
}

// DiffPair re-diffs the two sides of a leaf with diff. It is the way back
// into a structural diff once a caller decides a leaf is worth inspecting,
// e.g. the two values of an enum-like type that share a variant.
func DiffPair[T, D any](l Leaf[T], diff func(before, after *T) D) D {
	return diff(l.Before, l.After)
}
