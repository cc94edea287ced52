// Package daft is the runtime half of daftgen: the small set of types that
// generated Diff methods return and call into.
//
// A diff always borrows from the two values it compares. A Leaf holds
// pointers to the before and after values, so no copy is made and the diff
// is only meaningful while both values are left untouched.
//
// Diff types:
//   - Leaf: the base case, an opaque before/after pair. Used for scalars,
//     slices, pointers, enum-like types and fields marked daft:"leaf".
//   - MapDiff: entries common to both maps, added and removed entries.
//   - SetDiff: the same for map[K]struct{} sets.
//   - Generated <Name>Diff types: one field per diffed struct field.
package daft
