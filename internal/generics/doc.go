// Package generics rewrites the generic parameter list of a declaration
// for its diff companion.
//
// The companion borrows the values it compares for as long as the diff
// scope lasts. The rewriter records that as an extra scope parameter that
// every other parameter must outlive. Go pointers need no such annotation,
// so the renderers erase the scope and its bounds; the augmented list is
// still what the synthesizers reason about.
package generics
