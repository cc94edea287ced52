package resolve

import (
	"go/ast"
	"go/types"
	"strings"

	"daftgen/internal/decl"
)

// Named describes how a named type is diffed.
type Named struct {
	// Diff is the diff type as written in the generated file; empty when
	// the type has no Diff.
	Diff string
	// Func is set when the diff is produced by a function instead of a
	// method.
	Func string
	// LocalStruct marks a struct declared in the package being generated.
	LocalStruct bool
}

// Env answers what syntax alone cannot tell about named types.
type Env interface {
	// Named looks up the named type e. ok is false when e is unknown.
	Named(e ast.Expr) (n Named, ok bool)
}

// Chain consults each Env in order and returns the first answer.
type Chain []Env

func (c Chain) Named(e ast.Expr) (Named, bool) {
	for _, env := range c {
		if env == nil {
			continue
		}

		if n, ok := env.Named(e); ok {
			return n, true
		}
	}

	return Named{}, false
}

// BatchEntry is a declaration generated in the current run.
type BatchEntry struct {
	// Companion is the generated companion type name.
	Companion string
	// Opaque declarations diff to a leaf over themselves.
	Opaque bool
	// Func is the generated diff function of declarations that cannot
	// carry methods. Implies Opaque.
	Func string
}

// Batch is the Env of declarations generated together.
type Batch struct {
	runtime string
	entries map[string]BatchEntry
}

// NewBatch creates an empty batch; rt is the runtime package name used in
// the generated file.
func NewBatch(rt string) *Batch {
	return &Batch{runtime: rt, entries: map[string]BatchEntry{}}
}

// Add registers the declaration name.
func (b *Batch) Add(name string, e BatchEntry) {
	b.entries[name] = e
}

// Len returns the number of registered declarations.
func (b *Batch) Len() int {
	return len(b.entries)
}

func (b *Batch) Named(e ast.Expr) (Named, bool) {
	name, args := splitInstance(e)
	if name == "" {
		return Named{}, false
	}

	entry, ok := b.entries[name]
	if !ok {
		return Named{}, false
	}

	switch {
	case entry.Func != "":
		return Named{Diff: LeafType(b.runtime, decl.ExprString(e)), Func: entry.Func}, true
	case entry.Opaque:
		return Named{Diff: LeafType(b.runtime, decl.ExprString(e))}, true
	}

	if len(args) == 0 {
		return Named{Diff: entry.Companion}, true
	}

	parts := make([]string, 0, len(args))
	for _, a := range args {
		parts = append(parts, decl.ExprString(a))
	}

	return Named{Diff: entry.Companion + "[" + strings.Join(parts, ", ") + "]"}, true
}

// splitInstance splits Name or Name[A, B] into the name and its type
// arguments. Qualified names belong to other packages and yield "".
func splitInstance(e ast.Expr) (string, []ast.Expr) {
	switch t := e.(type) {
	case *ast.Ident:
		return t.Name, nil
	case *ast.IndexExpr:
		if id, ok := t.X.(*ast.Ident); ok {
			return id.Name, []ast.Expr{t.Index}
		}
	case *ast.IndexListExpr:
		if id, ok := t.X.(*ast.Ident); ok {
			return id.Name, t.Indices
		}
	}

	return "", nil
}

// Types is the Env of a type-checked package.
type Types struct {
	Pkg  *types.Package
	Info *types.Info
}

func (t *Types) Named(e ast.Expr) (Named, bool) {
	if t.Info == nil {
		return Named{}, false
	}

	typ := t.Info.TypeOf(e)
	if typ == nil {
		return Named{}, false
	}

	named, ok := types.Unalias(typ).(*types.Named)
	if !ok {
		return Named{}, false
	}

	obj, _, _ := types.LookupFieldOrMethod(named, true, t.Pkg, "Diff")
	if fn, ok := obj.(*types.Func); ok {
		sig, _ := fn.Type().(*types.Signature)
		if sig != nil && sig.Params().Len() == 1 && sig.Results().Len() == 1 {
			return Named{Diff: types.TypeString(sig.Results().At(0).Type(), t.qualifier)}, true
		}
	}

	_, isStruct := named.Underlying().(*types.Struct)

	return Named{LocalStruct: isStruct && named.Obj().Pkg() == t.Pkg}, true
}

// Declared reports whether name is declared in the package scope.
func (t *Types) Declared(name string) bool {
	return t.Pkg != nil && t.Pkg.Scope().Lookup(name) != nil
}

// HasMethod reports whether the package-level type typeName declares
// method itself; promoted methods do not count.
func (t *Types) HasMethod(typeName, method string) bool {
	if t.Pkg == nil {
		return false
	}

	obj, ok := t.Pkg.Scope().Lookup(typeName).(*types.TypeName)
	if !ok {
		return false
	}

	named, ok := types.Unalias(obj.Type()).(*types.Named)
	if !ok {
		return false
	}

	for i := range named.NumMethods() {
		if named.Method(i).Name() == method {
			return true
		}
	}

	return false
}

func (t *Types) qualifier(p *types.Package) string {
	if p == t.Pkg {
		return ""
	}

	return p.Name()
}
