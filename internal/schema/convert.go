package schema

import (
	"fmt"
	"go/token"
	"slices"

	"daftgen/internal/common"
	"daftgen/internal/decl"
	"daftgen/internal/diagnostic"
	"daftgen/internal/gen"
	"daftgen/internal/match"
	"daftgen/internal/pipeline"
)

// Declaration kinds.
const (
	KindStruct = "struct"
	KindTuple  = "tuple"
	KindUnit   = "unit"
	KindEnum   = "enum"
	KindUnion  = "union"
)

// Variant kinds.
const (
	VariantUnit   = "unit"
	VariantTuple  = "tuple"
	VariantStruct = "struct"
)

var (
	typeKinds    = []string{KindStruct, KindTuple, KindUnit, KindEnum, KindUnion}
	variantKinds = []string{VariantUnit, VariantTuple, VariantStruct}
)

// Unit converts f into pipeline input. path names the schema file in
// diagnostics; output is the file to generate. Declarations with schema
// errors are reported and left out.
func (f *File) Unit(path, output string) *pipeline.Unit {
	c := &converter{path: path, names: map[string]bool{}}

	u := &pipeline.Unit{
		Name:        path,
		Filename:    output,
		PackageName: f.Package,
	}

	if !token.IsIdentifier(f.Package) {
		c.errorf(diagnostic.NewPosition(path, 1, 1), "", "package must be a Go identifier, got %q", f.Package)
	}

	for _, imp := range f.Imports {
		u.Imports = append(u.Imports, gen.ImportSpec{Alias: imp.Alias, Path: imp.Path})
	}

	for i := range f.Types {
		if d := c.typeDecl(&f.Types[i]); d != nil {
			u.Decls = append(u.Decls, d)
		}
	}

	u.Diagnostics = c.diags

	return u
}

type converter struct {
	path  string
	names map[string]bool
	diags []diagnostic.Diagnostic
	// failed is set when the declaration being converted had an error.
	failed bool
}

func (c *converter) typeDecl(t *TypeDef) *decl.TypeDeclaration {
	c.failed = false
	name := t.Name.Value
	pos := c.pos(t.Line, t.Column)

	switch {
	case name == "":
		c.errorf(pos, "", "type name is required")

		return nil
	case !token.IsIdentifier(name):
		c.errorf(c.scalarPos(t.Name), name, "type name %q is not a Go identifier", name)

		return nil
	case c.names[name]:
		c.errorf(c.scalarPos(t.Name), name, "type %s declared more than once", name)

		return nil
	}

	c.names[name] = true

	d := &decl.TypeDeclaration{
		Name:          name,
		Exported:      decl.IsExported(name),
		Doc:           t.Doc,
		Generics:      c.generics(t),
		Attrs:         c.attrs(t.Attrs),
		NonExhaustive: t.NonExhaustive,
		Pos:           c.scalarPos(t.Name),
	}

	switch t.Kind.Value {
	case KindStruct, KindTuple, KindUnit:
		d.Kind = decl.KindStruct
		d.Shape = shapeOf(t.Kind.Value)
		d.Fields = c.fields(name, t.Fields, d.Shape)
		c.noVariants(t)
	case KindEnum:
		d.Kind = decl.KindEnum
		d.Variants = c.variants(name, t.Variants)
		c.noFields(t)
		c.noNonExhaustive(t)
	case KindUnion:
		d.Kind = decl.KindUnion
		d.Fields = c.fields(name, t.Fields, decl.ShapeNamed)
		c.noVariants(t)
		c.noNonExhaustive(t)

		if len(t.Fields) == 0 {
			c.errorf(pos, name, "union %s needs at least one field", name)
		}
	case "":
		c.errorf(pos, name, "kind is required (one of: struct, tuple, unit, enum, union)")
	default:
		c.unknownKind(t.Kind, name, typeKinds)
	}

	if c.failed {
		return nil
	}

	return d
}

func (c *converter) generics(t *TypeDef) decl.Generics {
	var g decl.Generics

	seen := map[string]bool{}

	for _, p := range t.Params {
		name := p.Name.Value
		if !token.IsIdentifier(name) || seen[name] {
			c.errorf(c.scalarPos(p.Name), t.Name.Value, "invalid or repeated parameter name %q", name)

			continue
		}

		seen[name] = true

		if p.Lifetime {
			g.Params = append(g.Params, decl.Param{Kind: decl.ParamLifetime, Name: name})

			continue
		}

		constraint, err := decl.ParseType(p.Constraint.Value)
		if err != nil {
			c.errorf(c.scalarPos(p.Constraint), t.Name.Value, "%v", err)

			continue
		}

		g.Params = append(g.Params, decl.Param{
			Kind:   decl.ParamType,
			Name:   name,
			Bounds: []decl.Bound{decl.Constraint(constraint)},
		})
	}

	return g
}

func (c *converter) fields(owner string, defs []FieldDef, shape decl.Shape) []decl.Field {
	if shape == decl.ShapeUnit {
		if f, ok := common.First(defs); ok {
			c.errorf(c.pos(f.Line, f.Column), owner, "unit declarations have no fields")
		}

		return nil
	}

	out := make([]decl.Field, 0, len(defs))
	seen := map[string]bool{}

	for i, fd := range defs {
		pos := c.pos(fd.Line, fd.Column)
		name := fd.Name.Value

		switch {
		case shape == decl.ShapeTuple && name != "":
			c.errorf(c.scalarPos(fd.Name), owner, "tuple fields have no names, got %q", name)

			continue
		case shape == decl.ShapeNamed && !token.IsIdentifier(name):
			c.errorf(pos, owner, "field name %q is not a Go identifier", name)

			continue
		case seen[name] && name != "":
			c.errorf(c.scalarPos(fd.Name), owner, "field %s declared more than once", name)

			continue
		}

		seen[name] = true

		typ, err := decl.ParseType(fd.Type.Value)
		if err != nil {
			c.errorf(c.scalarPos(fd.Type), owner, "%v", err)

			continue
		}

		out = append(out, decl.Field{
			Name:  name,
			Index: i,
			Type:  typ,
			Attrs: c.attrs(fd.Attrs),
			Pos:   pos,
		})
	}

	return out
}

func (c *converter) variants(owner string, defs []VariantDef) []decl.Variant {
	out := make([]decl.Variant, 0, len(defs))
	seen := map[string]bool{}

	for _, vd := range defs {
		name := vd.Name.Value

		if !token.IsIdentifier(name) || seen[name] {
			c.errorf(c.scalarPos(vd.Name), owner, "invalid or repeated variant name %q", name)

			continue
		}

		seen[name] = true

		if !slices.Contains(variantKinds, vd.Kind.Value) {
			c.unknownKind(vd.Kind, owner, variantKinds)

			continue
		}

		shape := shapeOf(vd.Kind.Value)

		out = append(out, decl.Variant{
			Name:   name,
			Shape:  shape,
			Fields: c.fields(owner+"."+name, vd.Fields, shape),
			Attrs:  c.attrs(vd.Attrs),
			Pos:    c.scalarPos(vd.Name),
		})
	}

	return out
}

func (c *converter) attrs(list AttrList) []decl.Attr {
	if len(list) == 0 {
		return nil
	}

	out := make([]decl.Attr, 0, len(list))
	for _, s := range list {
		out = append(out, decl.Attr{Text: s.Value, Pos: c.pos(s.Line, s.ContentColumn())})
	}

	return out
}

func (c *converter) noVariants(t *TypeDef) {
	if v, ok := common.First(t.Variants); ok {
		c.errorf(c.scalarPos(v.Name), t.Name.Value, "variants are only allowed on enums")
	}
}

func (c *converter) noFields(t *TypeDef) {
	if f, ok := common.First(t.Fields); ok {
		c.errorf(c.pos(f.Line, f.Column), t.Name.Value, "enum fields belong to a variant")
	}
}

func (c *converter) noNonExhaustive(t *TypeDef) {
	if t.NonExhaustive {
		c.errorf(c.pos(t.Line, t.Column), t.Name.Value, "non_exhaustive is only allowed on struct, tuple and unit kinds")
	}
}

func (c *converter) unknownKind(kind Scalar, owner string, supported []string) {
	d := diagnostic.Diagnostic{
		Severity: diagnostic.DiagnosticError,
		Code:     diagnostic.CodeSchema,
		Message:  fmt.Sprintf("unknown kind %q", kind.Value),
		Pos:      c.scalarPos(kind),
		TypeName: owner,
	}

	if s, ok := match.Suggest(kind.Value, supported); ok {
		d.Suggestions = append(d.Suggestions, fmt.Sprintf("did you mean %q?", s))
	}

	c.push(d)
}

func (c *converter) errorf(pos diagnostic.Position, owner, format string, args ...any) {
	c.push(diagnostic.Diagnostic{
		Severity: diagnostic.DiagnosticError,
		Code:     diagnostic.CodeSchema,
		Message:  fmt.Sprintf(format, args...),
		Pos:      pos,
		TypeName: owner,
	})
}

func (c *converter) push(d diagnostic.Diagnostic) {
	c.failed = true
	c.diags = append(c.diags, d)
}

func (c *converter) pos(line, column int) diagnostic.Position {
	return diagnostic.NewPosition(c.path, line, column)
}

func (c *converter) scalarPos(s Scalar) diagnostic.Position {
	return c.pos(s.Line, s.ContentColumn())
}

func shapeOf(kind string) decl.Shape {
	switch kind {
	case KindTuple:
		return decl.ShapeTuple
	case KindUnit:
		return decl.ShapeUnit
	default:
		return decl.ShapeNamed
	}
}
