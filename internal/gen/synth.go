package gen

import (
	"go/ast"

	"daftgen/internal/attr"
	"daftgen/internal/decl"
	"daftgen/internal/diagnostic"
	"daftgen/internal/generics"
	"daftgen/internal/resolve"
)

// PlannedField is a field whose attributes parsed cleanly.
type PlannedField struct {
	Field *decl.Field
	Mode  attr.FieldMode
}

// DiffField is one field of a companion.
type DiffField struct {
	// Member is the field name, shared by the original and the companion.
	Member string
	// Type is the companion field type.
	Type ast.Expr
	// Call builds the field from the two compared values.
	Call string
}

// Companion is the synthesized diff type of a struct.
type Companion struct {
	Decl *decl.TypeDeclaration
	// Generics are the declaration generics augmented with the diff scope.
	Generics decl.Generics
	Name     string
	Fields   []DiffField
	// Before and After name the compared values inside Call expressions.
	Before, After string
	// Requirements each capability method places on the field diff types.
	StringWhere  []decl.Predicate
	EqualWhere   []decl.Predicate
	WitnessWhere []decl.Predicate
}

// Type is the companion instantiated with its own parameters.
func (c *Companion) Type() typeRef {
	return typeRef{Name: c.Name, Generics: c.Generics}
}

// Orig is the original declaration instantiated with its own parameters.
func (c *Companion) Orig() typeRef {
	return typeRef{Name: c.Decl.Name, Generics: c.Decl.Generics}
}

// methodNames are declared on every companion and cannot be field names.
var methodNames = map[string]bool{"String": true, "Equal": true, "Unchanged": true}

// Synthesize builds the companion of d from its planned fields. Ignored
// fields are dropped; a field whose type cannot be diffed is reported and
// dropped.
func (g *Generator) Synthesize(
	d *decl.TypeDeclaration,
	fields []PlannedField,
	r *resolve.Resolver,
	sink *diagnostic.Sink,
) *Companion {
	rt := g.config.RuntimeName
	before, after := receivers(d.Generics)

	c := &Companion{
		Decl:     d,
		Generics: generics.Augment(d.Generics, generics.DiffScope(d.Generics)),
		Name:     g.CompanionName(d.Name),
		Before:   before,
		After:    after,
	}

	for _, pf := range fields {
		f := pf.Field
		member := f.Member()
		lhs, rhs := before+"."+member, after+"."+member

		if pf.Mode == attr.FieldIgnore {
			continue
		}

		if methodNames[member] {
			sink.Push(diagnostic.Diagnostic{
				Severity:  diagnostic.DiagnosticError,
				Code:      diagnostic.CodeUnsupported,
				Message:   "field " + member + " collides with the " + member + " method of " + c.Name,
				Pos:       f.Pos,
				TypeName:  d.Name,
				FieldPath: member,
			})

			continue
		}

		fieldType := decl.ExprString(f.Type)

		var typ, call string

		if pf.Mode == attr.FieldLeaf {
			typ, call = resolve.LeafType(rt, fieldType), resolve.LeafCall(rt, lhs, rhs)
		} else {
			res, err := r.Resolve(f.Type)
			if err != nil {
				sink.Push(diagnostic.Diagnostic{
					Severity:  diagnostic.DiagnosticError,
					Code:      diagnostic.CodeNotDiffable,
					Message:   "field type " + err.Error(),
					Pos:       f.Pos,
					TypeName:  d.Name,
					FieldPath: member,
				})

				continue
			}

			typ, call = res.Type(rt, fieldType), res.Call(rt, lhs, rhs)
		}

		expr, err := decl.ParseType(typ)
		if err != nil {
			sink.Errorf(diagnostic.CodeGeneratedInternal, f.Pos, "generated field type: %v", err)

			continue
		}

		c.Fields = append(c.Fields, DiffField{Member: member, Type: expr, Call: call})
	}

	types := make([]ast.Expr, 0, len(c.Fields))
	for _, f := range c.Fields {
		types = append(types, f.Type)
	}

	c.StringWhere = generics.WithBound(d.Generics.Where, types, decl.Constraint(decl.Expr("fmt.Stringer")))
	c.EqualWhere = generics.WithBound(d.Generics.Where, types, decl.SelfConstraint(decl.Expr(rt+".Equaler")))
	c.WitnessWhere = generics.WithBound(d.Generics.Where, types, decl.Constraint(decl.Expr(rt+".Witness")))

	return c
}
