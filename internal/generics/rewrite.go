package generics

import (
	"go/ast"
	"slices"
	"strconv"
	"strings"

	"daftgen/internal/decl"
)

// ScopeName is the preferred name of the diff scope. Go identifiers cannot
// start with an apostrophe, so it never clashes with a type parameter; it
// is still checked against the declared names.
const ScopeName = "'__daft"

// DiffScope returns a fresh scope parameter for g.
func DiffScope(g decl.Generics) decl.Param {
	return decl.Param{Kind: decl.ParamLifetime, Name: Fresh(g, ScopeName)}
}

// Augment returns g with scope inserted first and one Outlives(scope) bound
// appended to every declared parameter. Existing bounds keep their order
// and the where clause is carried over untouched. g itself is not modified.
func Augment(g decl.Generics, scope decl.Param) decl.Generics {
	out := g.Clone()

	params := make([]decl.Param, 0, len(out.Params)+1)
	params = append(params, decl.Param{Kind: decl.ParamLifetime, Name: scope.Name})

	for _, p := range out.Params {
		p.Bounds = append(p.Bounds, decl.Outlives(scope.Name))
		params = append(params, p)
	}

	out.Params = params

	return out
}

// WithBound returns the base where clause followed by one predicate per
// type requiring bound.
func WithBound(where []decl.Predicate, types []ast.Expr, bound decl.Bound) []decl.Predicate {
	out := make([]decl.Predicate, 0, len(where)+len(types))
	for _, w := range where {
		w.Bounds = slices.Clone(w.Bounds)
		out = append(out, w)
	}

	for _, t := range types {
		out = append(out, decl.Predicate{Type: t, Bounds: []decl.Bound{bound}})
	}

	return out
}

// Fresh returns want, or want followed by the smallest number that makes
// it differ from every parameter name of g and every name in taken.
func Fresh(g decl.Generics, want string, taken ...string) string {
	used := make(map[string]bool, len(g.Params)+len(taken))
	for _, p := range g.Params {
		used[p.Name] = true
	}

	for _, t := range taken {
		used[t] = true
	}

	if !used[want] {
		return want
	}

	for i := 1; ; i++ {
		name := want + strconv.Itoa(i)
		if !used[name] {
			return name
		}
	}
}

// DeclList renders the type parameter list of a Go declaration, e.g.
// "[K comparable, V any]". Scope parameters and outlives bounds are
// erased. It returns "" when there are no type parameters.
func DeclList(g decl.Generics) string {
	params := g.TypeParams()
	if len(params) == 0 {
		return ""
	}

	parts := make([]string, 0, len(params))
	for _, p := range params {
		parts = append(parts, p.Name+" "+constraint(p.Bounds))
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

// UseList renders the type arguments that instantiate a declaration with
// its own parameters, e.g. "[K, V]".
func UseList(g decl.Generics) string {
	params := g.TypeParams()
	if len(params) == 0 {
		return ""
	}

	names := make([]string, 0, len(params))
	for _, p := range params {
		names = append(names, p.Name)
	}

	return "[" + strings.Join(names, ", ") + "]"
}

func constraint(bounds []decl.Bound) string {
	var exprs []string
	for _, b := range bounds {
		if b.Kind == decl.BoundConstraint {
			exprs = append(exprs, decl.ExprString(b.Constraint))
		}
	}

	switch len(exprs) {
	case 0:
		return "any"
	case 1:
		return exprs[0]
	default:
		return "interface{ " + strings.Join(exprs, "; ") + " }"
	}
}
