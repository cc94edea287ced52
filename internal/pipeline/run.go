package pipeline

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"daftgen/internal/attr"
	"daftgen/internal/decl"
	"daftgen/internal/diagnostic"
	"daftgen/internal/gen"
	"daftgen/internal/resolve"
)

// Unit is one output file worth of declarations.
type Unit struct {
	// Name identifies the unit in errors, e.g. a package path.
	Name        string
	Filename    string
	PackageName string
	Imports     []gen.ImportSpec
	Decls       []*decl.TypeDeclaration
	// Types is the type-checked package the declarations come from; nil
	// for schema input.
	Types *resolve.Types
	// Diagnostics were found while loading the unit.
	Diagnostics []diagnostic.Diagnostic
}

// Output is the outcome of one unit.
type Output struct {
	Unit *Unit
	// File is nil when nothing was generated.
	File        *gen.GeneratedFile
	Results     []Result
	Diagnostics diagnostic.Diagnostics
}

// Run processes units concurrently, at most jobs at a time (unlimited when
// jobs <= 0). Outputs keep the order of units. Diagnostics never fail the
// run; only a cancelled context or a file that cannot be assembled does.
func Run(ctx context.Context, g *gen.Generator, units []*Unit, jobs int) ([]Output, error) {
	outputs := make([]Output, len(units))

	eg, ctx := errgroup.WithContext(ctx)
	if jobs > 0 {
		eg.SetLimit(jobs)
	}

	for i, u := range units {
		eg.Go(func() error {
			out, err := runUnit(ctx, g, u)
			if err != nil {
				return fmt.Errorf("%s: %w", u.Name, err)
			}

			outputs[i] = out

			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return outputs, nil
}

func runUnit(ctx context.Context, g *gen.Generator, u *Unit) (Output, error) {
	out := Output{Unit: u}
	out.Diagnostics.AddAll(u.Diagnostics)

	scope := unitScope{names: map[string]bool{}, types: u.Types}
	for _, d := range u.Decls {
		scope.names[d.Name] = true
	}

	// A declaration that fails generates no diff code, so siblings must
	// diff it as a leaf. Leaves never fail; a second pass settles.
	failed := map[string]bool{}

	for {
		chain := resolve.Chain{Batch(g, u.Decls, failed)}
		if u.Types != nil {
			chain = append(chain, u.Types)
		}

		env := Env{Gen: g, Types: chain, Scope: scope}

		results := make([]Result, 0, len(u.Decls))
		settled := true

		for _, d := range u.Decls {
			if err := ctx.Err(); err != nil {
				return Output{}, err
			}

			res := Derive(d, env)
			if res.HasErrors() && !failed[d.Name] {
				failed[d.Name] = true
				settled = false
			}

			results = append(results, res)
		}

		if settled {
			out.Results = results

			break
		}
	}

	var fragments []string

	for _, res := range out.Results {
		out.Diagnostics.AddAll(res.Diagnostics)
		fragments = append(fragments, res.Fragments...)
	}

	if len(fragments) == 0 {
		return out, nil
	}

	file, err := g.File(gen.FileInput{
		Filename:    u.Filename,
		PackageName: u.PackageName,
		Imports:     u.Imports,
		Fragments:   fragments,
	})
	if err != nil {
		return Output{}, err
	}

	out.File = file

	return out, nil
}

// Batch registers how each declaration of one output file is diffed, so
// fields referring to a sibling declaration resolve to its generated diff.
// Declarations in failed get no diff code and are registered as leaves.
func Batch(g *gen.Generator, decls []*decl.TypeDeclaration, failed map[string]bool) *resolve.Batch {
	cfg := g.Config()
	b := resolve.NewBatch(cfg.RuntimeName)

	for _, d := range decls {
		entry := resolve.BatchEntry{Companion: g.CompanionName(d.Name)}

		switch {
		case failed[d.Name]:
			entry = resolve.BatchEntry{Opaque: true}
		case gen.NeedsFunc(d):
			entry = resolve.BatchEntry{Opaque: true, Func: g.FuncName(d.Name)}
		case d.Kind != decl.KindStruct || structMode(d) == attr.StructLeaf:
			entry = resolve.BatchEntry{Opaque: true}
		}

		b.Add(d.Name, entry)
	}

	return b
}

// structMode peeks at the declaration mode; errors are reported later by
// Derive.
func structMode(d *decl.TypeDeclaration) attr.StructMode {
	cfg, _ := attr.ParseStructConfig(d.Attrs, diagnostic.NewStore().Sink())

	return cfg.Mode
}

// unitScope is the Scope of one unit: its own declarations plus, for Go
// source, the package scope.
type unitScope struct {
	names map[string]bool
	types *resolve.Types
}

func (s unitScope) Declared(name string) bool {
	return s.names[name] || (s.types != nil && s.types.Declared(name))
}

func (s unitScope) HasMethod(typeName, method string) bool {
	return s.types != nil && s.types.HasMethod(typeName, method)
}
