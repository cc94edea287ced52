package daft

import (
	"fmt"
	"reflect"
)

// Leaf is a primitive or atomic change: the point at which diffing stops.
type Leaf[T any] struct {
	Before *T
	After  *T
}

// NewLeaf pairs before with after.
func NewLeaf[T any](before, after *T) Leaf[T] {
	return Leaf[T]{Before: before, After: after}
}

// Equal reports whether both sides of l and other hold equal values.
func (l Leaf[T]) Equal(other Leaf[T]) bool {
	return deepEqual(l.Before, other.Before) && deepEqual(l.After, other.After)
}

// Unchanged reports whether the before and after values are equal.
func (l Leaf[T]) Unchanged() bool {
	return deepEqual(l.Before, l.After)
}

// Modified is the negation of Unchanged.
func (l Leaf[T]) Modified() bool {
	return !l.Unchanged()
}

// String formats l as {Before: x, After: y}.
func (l Leaf[T]) String() string {
	return fmt.Sprintf("{Before: %v, After: %v}", deref(l.Before), deref(l.After))
}

func deepEqual[T any](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}

	if a == b {
		return true
	}

	return reflect.DeepEqual(*a, *b)
}

func deref[T any](p *T) any {
	if p == nil {
		return nil
	}

	return *p
}
