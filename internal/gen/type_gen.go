package gen

import (
	"errors"
	"strconv"
	"strings"

	"daftgen/internal/decl"
)

type origField struct {
	Name string
	Type string
	Tag  string
}

type origStruct struct {
	Doc           []string
	Decl          string
	Fields        []origField
	NonExhaustive bool
}

type origVariant struct {
	Name    string
	Variant string
	Decl    string
	Type    string
	Fields  []origField
}

type origSealed struct {
	Comments bool
	Doc      []string
	Name     string
	Decl     string
	Marker   string
	Variants []origVariant
}

// Original renders a declaration that has no Go source yet. Structs keep
// their daft tags so the output still documents the requested modes.
// Enums and unions become a sealed interface with one struct per variant;
// union fields each become a single-value variant.
func (g *Generator) Original(d *decl.TypeDeclaration) (string, error) {
	if d.Source {
		return "", errors.New("declaration " + d.Name + " already exists in source")
	}

	ref := typeRef{Name: d.Name, Generics: d.Generics}

	switch d.Kind {
	case decl.KindStruct:
		return execute(structTemplate, origStruct{
			Doc:           docLines(d.Doc),
			Decl:          ref.Decl(),
			Fields:        origFields(d.Fields, true),
			NonExhaustive: d.NonExhaustive,
		})
	case decl.KindEnum, decl.KindUnion:
		return execute(sealedTemplate, g.sealed(d, ref))
	default:
		return "", errors.New("cannot emit " + d.Kind.String() + " " + d.Name)
	}
}

func (g *Generator) sealed(d *decl.TypeDeclaration, ref typeRef) origSealed {
	out := origSealed{
		Comments: g.config.GenerateComments,
		Doc:      docLines(d.Doc),
		Name:     d.Name,
		Decl:     ref.Decl(),
		Marker:   "is" + d.Name,
	}

	add := func(name string, fields []origField) {
		v := typeRef{Name: d.Name + name, Generics: d.Generics}
		out.Variants = append(out.Variants, origVariant{
			Name:    v.Name,
			Variant: name,
			Decl:    v.Decl(),
			Type:    v.String(),
			Fields:  fields,
		})
	}

	if d.Kind == decl.KindUnion {
		for _, f := range d.Fields {
			add(f.Member(), []origField{{Name: "Value", Type: decl.ExprString(f.Type)}})
		}

		return out
	}

	for _, v := range d.Variants {
		add(v.Name, origFields(v.Fields, false))
	}

	return out
}

func origFields(fields []decl.Field, tags bool) []origField {
	out := make([]origField, 0, len(fields))
	for _, f := range fields {
		of := origField{Name: f.Member(), Type: decl.ExprString(f.Type)}
		if tags {
			of.Tag = structTag(f.Attrs)
		}

		out = append(out, of)
	}

	return out
}

func structTag(attrs []decl.Attr) string {
	if len(attrs) == 0 {
		return ""
	}

	parts := make([]string, 0, len(attrs))
	for _, a := range attrs {
		parts = append(parts, "daft:"+strconv.Quote(a.Text))
	}

	return "`" + strings.Join(parts, " ") + "`"
}

func docLines(doc string) []string {
	doc = strings.TrimSpace(doc)
	if doc == "" {
		return nil
	}

	return strings.Split(doc, "\n")
}
