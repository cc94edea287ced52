package decl

import (
	"go/ast"
	"go/token"
	"go/types"
	"strconv"

	"daftgen/internal/diagnostic"
)

//go:generate go tool stringer -type=Kind,Shape -output=types_string.go

// Kind is the kind of a declaration.
type Kind int

const (
	KindStruct Kind = iota
	// KindEnum is a closed set of variants: a defined non-struct type whose
	// variants are its constants, or a schema enum.
	KindEnum
	// KindUnion is a schema union, rendered as a tagged variant.
	KindUnion
	// KindInterface is a Go interface type. Go forbids methods on it, so its
	// Diff is a function.
	KindInterface
)

// Shape is the field layout of a struct or variant.
type Shape int

const (
	ShapeNamed Shape = iota
	ShapeTuple
	ShapeUnit
)

// Attr is the raw contents of one daft attribute, e.g. "leaf, ignore" for
// the struct tag daft:"leaf, ignore" or the directive //daft:leaf, ignore.
type Attr struct {
	Text string
	// Pos is the position of the first byte of Text.
	Pos diagnostic.Position
}

// Field is one field of a struct, variant or union.
type Field struct {
	// Name is empty for tuple fields.
	Name  string
	Index int
	// Type is the field type as written in source.
	Type ast.Expr
	// GoType is set when the declaration came from type-checked Go source.
	GoType types.Type
	Attrs  []Attr
	Pos    diagnostic.Position
}

// Member returns the expression used to access the field: its name, or
// F<index> for tuple fields.
func (f *Field) Member() string {
	if f.Name != "" {
		return f.Name
	}

	return TupleMember(f.Index)
}

// Variant is one variant of an enum.
type Variant struct {
	Name   string
	Shape  Shape
	Fields []Field
	Attrs  []Attr
	Pos    diagnostic.Position
}

// TypeDeclaration is a parsed struct, enum, union or interface declaration.
type TypeDeclaration struct {
	Name     string
	Exported bool
	Doc      string
	Kind     Kind
	Generics Generics
	// Shape and Fields describe structs and unions.
	Shape  Shape
	Fields []Field
	// Variants describe enums.
	Variants []Variant
	// Attrs are the declaration-level daft attributes.
	Attrs []Attr
	// NonExhaustive marks structs that may grow fields; in Go source this is
	// a blank `_ struct{}` field.
	NonExhaustive bool
	// Underlying is the type a defined enum-like type is declared over
	// (schema enums and unions leave it nil).
	Underlying ast.Expr
	// Source is true when the declaration already exists in Go source and
	// must not be emitted again.
	Source bool
	Pos    diagnostic.Position
}

// IsGeneric reports whether the declaration has type parameters.
func (d *TypeDeclaration) IsGeneric() bool {
	return len(d.Generics.TypeParams()) > 0
}

// TupleMember is the Go field name of the tuple field at index i.
func TupleMember(i int) string {
	return "F" + strconv.Itoa(i)
}

// Expr parses a Go type expression. It panics on malformed input and is
// meant for constants and tests.
func Expr(src string) ast.Expr {
	e, err := ParseType(src)
	if err != nil {
		panic(err)
	}

	return e
}

// ExprString formats a type expression as Go source.
func ExprString(e ast.Expr) string {
	if e == nil {
		return ""
	}

	return types.ExprString(e)
}

// IsExported reports whether name is an exported Go identifier.
func IsExported(name string) bool {
	return token.IsExported(name)
}
