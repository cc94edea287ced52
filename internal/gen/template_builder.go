package gen

import (
	"fmt"

	"daftgen/internal/decl"
	"daftgen/internal/resolve"
)

type fieldData struct {
	Member string
	Type   string
	Call   string
}

type companionData struct {
	Comments      bool
	RT            string
	Name          string
	Orig          string
	Decl          string
	Type          string
	Tuple         bool
	NonExhaustive bool
	Fields        []fieldData
	Self, Other   string
	Assertions    []string
}

type implData struct {
	Comments      bool
	RT            string
	Func          string
	TypeParams    string
	Orig          string
	Result        string
	Before, After string
	Fields        []fieldData
	Assertion     string
}

// Companion renders the companion type of c with its String, Equal and
// Unchanged methods.
func (g *Generator) Companion(c *Companion) (string, error) {
	self, other := selfNames(c.Decl.Generics)
	ref := c.Type()

	data := companionData{
		Comments:      g.config.GenerateComments,
		RT:            g.config.RuntimeName,
		Name:          c.Name,
		Orig:          c.Decl.Name,
		Decl:          ref.Decl(),
		Type:          ref.String(),
		Tuple:         c.Decl.Shape == decl.ShapeTuple,
		NonExhaustive: c.Decl.NonExhaustive,
		Fields:        fieldsData(c.Fields),
		Self:          self,
		Other:         other,
	}

	// Package-level assertions cannot mention type parameters.
	if !c.Decl.IsGeneric() {
		data.Assertions = assertions(append(append(append([]decl.Predicate(nil),
			c.StringWhere...), c.EqualWhere...), c.WitnessWhere...))
		data.Assertions = append(data.Assertions,
			fmt.Sprintf("_ %s.Diff[%s] = %s{}", data.RT, data.Type, data.Type))
	}

	return execute(companionTemplate, data)
}

// DiffImpl renders the Diff method of a struct diffed field by field.
func (g *Generator) DiffImpl(c *Companion) (string, error) {
	orig, result := c.Orig().String(), c.Type().String()

	data := implData{
		Comments: g.config.GenerateComments,
		RT:       g.config.RuntimeName,
		Orig:     orig,
		Result:   result,
		Before:   c.Before,
		After:    c.After,
		Fields:   fieldsData(c.Fields),
	}

	if !c.Decl.IsGeneric() {
		data.Assertion = fmt.Sprintf("_ %s.Diffable[%s, %s] = (*%s)(nil)", data.RT, orig, result, orig)
	}

	return execute(diffImplTemplate, data)
}

// LeafImpl renders the Diff of a declaration diffed as a whole: a method
// on the declaration, or a DiffX function when d is an interface.
func (g *Generator) LeafImpl(d *decl.TypeDeclaration) (string, error) {
	rt := g.config.RuntimeName
	orig := typeRef{Name: d.Name, Generics: d.Generics}
	before, after := receivers(d.Generics)

	data := implData{
		Comments: g.config.GenerateComments,
		RT:       rt,
		Orig:     orig.String(),
		Result:   resolve.LeafType(rt, orig.String()),
		Before:   before,
		After:    after,
	}

	if NeedsFunc(d) {
		data.Func = g.FuncName(d.Name)
		data.TypeParams = typeRef{Generics: d.Generics}.Decl()

		return execute(leafFuncTemplate, data)
	}

	if !d.IsGeneric() {
		data.Assertion = fmt.Sprintf("_ %s.Diffable[%s, %s] = (*%s)(nil)", rt, data.Orig, data.Result, data.Orig)
	}

	return execute(leafImplTemplate, data)
}

// NeedsFunc reports whether the Diff of d must be a function: Go does not
// allow methods on interface types, and schema enums and unions are
// emitted as interfaces.
func NeedsFunc(d *decl.TypeDeclaration) bool {
	switch d.Kind {
	case decl.KindInterface:
		return true
	case decl.KindEnum, decl.KindUnion:
		return !d.Source
	default:
		return false
	}
}

func fieldsData(fields []DiffField) []fieldData {
	out := make([]fieldData, 0, len(fields))
	for _, f := range fields {
		out = append(out, fieldData{Member: f.Member, Type: decl.ExprString(f.Type), Call: f.Call})
	}

	return out
}

// assertions renders every constraint of preds as an interface
// conformance check, dropping repeats.
func assertions(preds []decl.Predicate) []string {
	seen := map[string]bool{}

	var out []string

	for _, p := range preds {
		typ := decl.ExprString(p.Type)

		for _, b := range p.Bounds {
			if b.Kind != decl.BoundConstraint {
				continue
			}

			line := fmt.Sprintf("_ %s = (*%s)(nil)", b.For(p.Type), typ)
			if !seen[line] {
				seen[line] = true

				out = append(out, line)
			}
		}
	}

	return out
}
