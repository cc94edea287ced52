package resolve

import (
	"fmt"
	"go/ast"

	"daftgen/internal/decl"
)

//go:generate go tool stringer -type=Kind -output=resolve_string.go

// Kind is the way a field type is diffed.
type Kind int

const (
	// KindLeaf pairs before and after values.
	KindLeaf Kind = iota
	// KindSet diffs a map[K]struct{} with DiffSet.
	KindSet
	// KindMap diffs any other map with DiffMap.
	KindMap
	// KindMethod calls the type's own Diff method.
	KindMethod
	// KindFunc calls a generated DiffX function; used for types that
	// cannot carry methods.
	KindFunc
)

// Resolution is the outcome of resolving one field type.
type Resolution struct {
	Kind Kind
	// Key and Elem are the key and value types of KindSet and KindMap.
	Key, Elem ast.Expr
	// Diff is the diff type of KindMethod and KindFunc, as written in the
	// generated file.
	Diff string
	// Func is the function called for KindFunc.
	Func string
}

// Type renders the companion field type for a field of type fieldType. rt
// is the name the runtime package is imported under.
func (r Resolution) Type(rt, fieldType string) string {
	switch r.Kind {
	case KindSet:
		return fmt.Sprintf("%s.SetDiff[%s]", rt, decl.ExprString(r.Key))
	case KindMap:
		return fmt.Sprintf("%s.MapDiff[%s, %s]", rt, decl.ExprString(r.Key), decl.ExprString(r.Elem))
	case KindMethod, KindFunc:
		return r.Diff
	default:
		return LeafType(rt, fieldType)
	}
}

// Call renders the expression diffing before against after, both given as
// addressable operands.
func (r Resolution) Call(rt, before, after string) string {
	switch r.Kind {
	case KindSet:
		return fmt.Sprintf("%s.DiffSet(%s, %s)", rt, before, after)
	case KindMap:
		return fmt.Sprintf("%s.DiffMap(%s, %s)", rt, before, after)
	case KindMethod:
		return fmt.Sprintf("%s.Diff(&%s)", before, after)
	case KindFunc:
		return fmt.Sprintf("%s(&%s, &%s)", r.Func, before, after)
	default:
		return LeafCall(rt, before, after)
	}
}

// LeafType renders the leaf type over t.
func LeafType(rt, t string) string {
	return fmt.Sprintf("%s.Leaf[%s]", rt, t)
}

// LeafCall renders the construction of a leaf over two operands.
func LeafCall(rt, before, after string) string {
	return fmt.Sprintf("%s.NewLeaf(&%s, &%s)", rt, before, after)
}

// NotDiffableError reports a local struct type that has no Diff method and
// is not generated in the same run.
type NotDiffableError struct {
	Type string
}

func (e *NotDiffableError) Error() string {
	return fmt.Sprintf("%s does not implement Diff (mark it //daft:diffable, or tag the field daft:\"leaf\")", e.Type)
}

// Resolver resolves field types of one declaration.
type Resolver struct {
	// TypeParams are the type parameter names in scope. A bare type
	// parameter is always a leaf: Go methods cannot add the type
	// parameters a recursive diff would need.
	TypeParams map[string]bool
	Env        Env
}

// Resolve classifies e.
func (r *Resolver) Resolve(e ast.Expr) (Resolution, error) {
	switch t := e.(type) {
	case *ast.ParenExpr:
		return r.Resolve(t.X)
	case *ast.MapType:
		if isEmptyStruct(t.Value) {
			return Resolution{Kind: KindSet, Key: t.Key}, nil
		}

		return Resolution{Kind: KindMap, Key: t.Key, Elem: t.Value}, nil
	case *ast.Ident:
		if r.TypeParams[t.Name] {
			return Resolution{Kind: KindLeaf}, nil
		}

		return r.named(e)
	case *ast.SelectorExpr, *ast.IndexExpr, *ast.IndexListExpr:
		return r.named(e)
	default:
		// Pointers, slices, arrays, channels, functions, interfaces and
		// anonymous structs. A pointer is a leaf because either side may
		// be nil, leaving no pointee to diff; Leaf compares pointees.
		return Resolution{Kind: KindLeaf}, nil
	}
}

func (r *Resolver) named(e ast.Expr) (Resolution, error) {
	if r.Env == nil {
		return Resolution{Kind: KindLeaf}, nil
	}

	n, ok := r.Env.Named(e)
	if !ok {
		return Resolution{Kind: KindLeaf}, nil
	}

	switch {
	case n.Func != "":
		return Resolution{Kind: KindFunc, Diff: n.Diff, Func: n.Func}, nil
	case n.Diff != "":
		return Resolution{Kind: KindMethod, Diff: n.Diff}, nil
	case n.LocalStruct:
		return Resolution{}, &NotDiffableError{Type: decl.ExprString(e)}
	default:
		return Resolution{Kind: KindLeaf}, nil
	}
}

func isEmptyStruct(e ast.Expr) bool {
	st, ok := e.(*ast.StructType)

	return ok && (st.Fields == nil || len(st.Fields.List) == 0)
}
