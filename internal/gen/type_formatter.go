package gen

import (
	"sort"
	"strconv"

	"daftgen/internal/decl"
	"daftgen/internal/generics"
)

// ImportSpec represents an import statement.
type ImportSpec struct {
	Alias string
	Path  string
}

// String renders the spec as it appears in an import block.
func (s ImportSpec) String() string {
	if s.Alias == "" {
		return strconv.Quote(s.Path)
	}

	return s.Alias + " " + strconv.Quote(s.Path)
}

// mergeImports dedups specs by path, keeping the first alias seen, and
// sorts them by path.
func mergeImports(specs []ImportSpec, extra ...ImportSpec) []ImportSpec {
	seen := make(map[string]bool, len(specs)+len(extra))

	var out []ImportSpec

	for _, s := range append(append([]ImportSpec(nil), specs...), extra...) {
		if s.Path == "" || seen[s.Path] {
			continue
		}

		seen[s.Path] = true

		out = append(out, s)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Path < out[j].Path
	})

	return out
}

// typeRef is a reference to a generic declaration instantiated with its
// own parameters, e.g. Pair[K, V].
type typeRef struct {
	Name     string
	Generics decl.Generics
}

// String returns the instantiated type, e.g. "Pair[K, V]".
func (t typeRef) String() string {
	return t.Name + generics.UseList(t.Generics)
}

// Decl returns the declared form, e.g. "Pair[K comparable, V any]".
func (t typeRef) Decl() string {
	return t.Name + generics.DeclList(t.Generics)
}

// receivers picks the names of the two compared values so that they never
// shadow a type parameter.
func receivers(g decl.Generics) (before, after string) {
	before = generics.Fresh(g, "before")
	after = generics.Fresh(g, "after", before)

	return before, after
}

// selfNames picks the receiver and argument names of companion methods.
func selfNames(g decl.Generics) (self, other string) {
	self = generics.Fresh(g, "d")
	other = generics.Fresh(g, "other", self)

	return self, other
}
