package decl

import "go/ast"

//go:generate go tool stringer -type=ParamKind,BoundKind -output=generics_string.go

// ParamKind is the kind of a generic parameter.
type ParamKind int

const (
	// ParamLifetime is a borrow scope. Go source never declares one; the
	// generator adds one to model how long a diff may borrow its inputs.
	ParamLifetime ParamKind = iota
	ParamType
)

// BoundKind is the kind of a parameter bound.
type BoundKind int

const (
	// BoundOutlives requires the parameter to outlive the named scope.
	BoundOutlives BoundKind = iota
	// BoundConstraint is a Go type constraint.
	BoundConstraint
)

// Bound is one bound of a generic parameter or predicate.
type Bound struct {
	Kind BoundKind
	// Scope names the outlived scope of a BoundOutlives.
	Scope string
	// Constraint is the constraint expression of a BoundConstraint.
	Constraint ast.Expr
	// Instantiate applies a generic constraint to the constrained type
	// itself: Equaler on T reads Equaler[T].
	Instantiate bool
}

// Outlives returns a bound requiring the outlived scope.
func Outlives(scope string) Bound {
	return Bound{Kind: BoundOutlives, Scope: scope}
}

// Constraint returns a type-constraint bound.
func Constraint(e ast.Expr) Bound {
	return Bound{Kind: BoundConstraint, Constraint: e}
}

// SelfConstraint returns a constraint bound instantiated with the type it
// constrains.
func SelfConstraint(e ast.Expr) Bound {
	return Bound{Kind: BoundConstraint, Constraint: e, Instantiate: true}
}

// String renders the bound: the scope name for outlives bounds, the
// constraint expression otherwise.
func (b Bound) String() string {
	if b.Kind == BoundOutlives {
		return b.Scope
	}

	return ExprString(b.Constraint)
}

// For renders the constraint as it applies to the type t.
func (b Bound) For(t ast.Expr) string {
	if b.Instantiate {
		return ExprString(b.Constraint) + "[" + ExprString(t) + "]"
	}

	return b.String()
}

// Param is one generic parameter.
type Param struct {
	Kind   ParamKind
	Name   string
	Bounds []Bound
}

// Predicate is a where-clause entry: Type must satisfy every bound.
type Predicate struct {
	Type   ast.Expr
	Bounds []Bound
}

// Generics is an ordered generic parameter list with its where clause.
type Generics struct {
	Params []Param
	Where  []Predicate
}

// TypeParams returns the type parameters in declaration order.
func (g Generics) TypeParams() []Param {
	var out []Param
	for _, p := range g.Params {
		if p.Kind == ParamType {
			out = append(out, p)
		}
	}

	return out
}

// Clone returns a deep copy of g; bound and predicate slices are not shared.
func (g Generics) Clone() Generics {
	out := Generics{}
	if g.Params != nil {
		out.Params = make([]Param, len(g.Params))
		for i, p := range g.Params {
			p.Bounds = append([]Bound(nil), p.Bounds...)
			out.Params[i] = p
		}
	}

	if g.Where != nil {
		out.Where = make([]Predicate, len(g.Where))
		for i, w := range g.Where {
			w.Bounds = append([]Bound(nil), w.Bounds...)
			out.Where[i] = w
		}
	}

	return out
}

// Names returns every parameter name.
func (g Generics) Names() []string {
	names := make([]string, 0, len(g.Params))
	for _, p := range g.Params {
		names = append(names, p.Name)
	}

	return names
}
