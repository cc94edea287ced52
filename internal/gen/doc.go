// Package gen synthesizes the Go source of diff companions.
//
// Generation uses text/template for each fragment and
// golang.org/x/tools/imports for the assembled file, which both formats
// the output and prunes imports the fragments did not use.
//
// Fragments per declaration:
//   - the declaration itself, for schema input that has no Go source yet
//   - the companion type with String, Equal and Unchanged methods
//   - the Diff method (or DiffX function) of the declaration
package gen
