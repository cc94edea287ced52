// Package analyze loads Go packages and extracts the declarations to
// generate diffs for.
//
// It uses golang.org/x/tools/go/packages with syntax and go/types. A type
// is selected by name (the -type flag) or by a //daft:diffable line in its
// doc comment. Field attributes come from `daft:"..."` struct tags; a
// struct key may repeat within one tag. Previous output is loaded as an
// empty file, so stale generated code does not stop regeneration.
//
// Declaration kinds:
//   - struct types, where a blank `_ struct{}` field marks the struct
//     non-exhaustive
//   - defined non-struct types, diffed as enums whose variants are the
//     package constants of the type
//   - interface types, diffed as enums through a DiffX function
package analyze
