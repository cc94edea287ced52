package attr

import (
	"daftgen/internal/decl"
	"daftgen/internal/diagnostic"
)

//go:generate go tool stringer -type=Site -output=visitor_string.go

// Site is where the visitor currently stands inside a declaration.
type Site int

const (
	SiteGeneral Site = iota
	SiteOpaqueStruct
	SiteOpaqueStructField
	SiteEnum
	SiteVariant
	SiteVariantField
	SiteUnion
	SiteUnionField
)

// Variant is the site entered when descending into an enum variant.
func (s Site) Variant() Site {
	if s == SiteEnum {
		return SiteVariant
	}

	return SiteGeneral
}

// Field is the site entered when descending into a field.
func (s Site) Field() Site {
	switch s {
	case SiteOpaqueStruct:
		return SiteOpaqueStructField
	case SiteVariant:
		return SiteVariantField
	case SiteUnion:
		return SiteUnionField
	default:
		return SiteGeneral
	}
}

// Location names the site in diagnostics. It is empty where daft
// attributes are allowed.
func (s Site) Location() string {
	switch s {
	case SiteOpaqueStructField:
		return "fields of structs annotated with //" + Namespace + ":" + NameLeaf
	case SiteVariant:
		return "enum variants"
	case SiteVariantField:
		return "enum variant fields"
	case SiteUnionField:
		return "union fields"
	default:
		return ""
	}
}

// Visit walks every variant and field below d, starting at root, and
// reports each daft attribute found where it has no meaning. It never
// changes what is generated.
func Visit(d *decl.TypeDeclaration, root Site, sink *diagnostic.Sink) {
	v := visitor{sink: sink.Child(), typeName: d.Name}

	for i := range d.Variants {
		vr := &d.Variants[i]
		site := root.Variant()
		v.check(site, vr.Attrs, vr.Name)

		for j := range vr.Fields {
			f := &vr.Fields[j]
			v.check(site.Field(), f.Attrs, vr.Name+"."+f.Member())
		}
	}

	for i := range d.Fields {
		f := &d.Fields[i]
		v.check(root.Field(), f.Attrs, f.Member())
	}
}

type visitor struct {
	sink     *diagnostic.Sink
	typeName string
}

func (v *visitor) check(site Site, attrs []decl.Attr, path string) {
	loc := site.Location()
	if loc == "" {
		return
	}

	for _, a := range attrs {
		v.sink.Push(diagnostic.Diagnostic{
			Severity:  diagnostic.DiagnosticError,
			Code:      diagnostic.CodeMisplaced,
			Message:   Namespace + " attributes are not allowed on " + loc,
			Pos:       a.Pos,
			TypeName:  v.typeName,
			FieldPath: path,
		})
	}
}
