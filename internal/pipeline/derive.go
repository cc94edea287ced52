package pipeline

import (
	"daftgen/internal/attr"
	"daftgen/internal/decl"
	"daftgen/internal/diagnostic"
	"daftgen/internal/gen"
	"daftgen/internal/resolve"
)

// Env is what Derive needs besides the declaration.
type Env struct {
	Gen *gen.Generator
	// Types answers questions about named field types. It may be nil.
	Types resolve.Env
	// Scope holds the names the generated code must not redeclare. It may
	// be nil.
	Scope Scope
}

// Scope answers which names already exist in the output package.
type Scope interface {
	// Declared reports whether name is declared at package level.
	Declared(name string) bool
	// HasMethod reports whether the named type declares method itself.
	HasMethod(typeName, method string) bool
}

// Result is the outcome of one declaration.
type Result struct {
	Decl *decl.TypeDeclaration
	// Fragments are the generated declarations in output order.
	Fragments   []string
	Diagnostics []diagnostic.Diagnostic
}

// HasErrors reports whether any diagnostic is an error.
func (r Result) HasErrors() bool {
	for _, d := range r.Diagnostics {
		if d.Severity == diagnostic.DiagnosticError {
			return true
		}
	}

	return false
}

// Derive generates everything for d. On error the diff code is dropped;
// a declaration without Go source is still emitted so that code using it
// keeps compiling.
func Derive(d *decl.TypeDeclaration, env Env) Result {
	store := diagnostic.NewStore()
	sink := store.Sink()

	var fragments []string

	if !d.Source {
		orig, err := env.Gen.Original(d)
		if err != nil {
			sink.Errorf(diagnostic.CodeGeneratedInternal, d.Pos, "%v", err)
		} else {
			fragments = append(fragments, orig)
		}
	}

	code := derive(d, env, sink)

	res := Result{Decl: d, Diagnostics: tag(store.Finish(), d.Name)}
	if sink.HasErrors() {
		res.Fragments = fragments

		return res
	}

	res.Fragments = append(fragments, code...)

	return res
}

func derive(d *decl.TypeDeclaration, env Env, sink *diagnostic.Sink) []string {
	cfg, ok := attr.ParseStructConfig(d.Attrs, sink)
	if !ok {
		return nil
	}

	checkNames(d, cfg.Mode, env, sink)

	switch d.Kind {
	case decl.KindEnum:
		attr.Visit(d, attr.SiteEnum, sink)
	case decl.KindUnion:
		attr.Visit(d, attr.SiteUnion, sink)
	case decl.KindInterface:
		attr.Visit(d, attr.SiteGeneral, sink)
	case decl.KindStruct:
		if cfg.Mode == attr.StructLeaf {
			attr.Visit(d, attr.SiteOpaqueStruct, sink)

			break
		}

		return deriveStruct(d, env, sink)
	}

	if sink.HasErrors() {
		return nil
	}

	return render(sink, d.Pos, func() (string, error) { return env.Gen.LeafImpl(d) })
}

func deriveStruct(d *decl.TypeDeclaration, env Env, sink *diagnostic.Sink) []string {
	var fields []gen.PlannedField

	for i := range d.Fields {
		f := &d.Fields[i]

		cfg, ok := attr.ParseFieldConfig(f.Attrs, sink)
		if !ok {
			continue
		}

		fields = append(fields, gen.PlannedField{Field: f, Mode: cfg.Mode})
	}

	params := map[string]bool{}
	for _, p := range d.Generics.TypeParams() {
		params[p.Name] = true
	}

	r := &resolve.Resolver{TypeParams: params, Env: env.Types}
	c := env.Gen.Synthesize(d, fields, r, sink)

	if sink.HasErrors() {
		return nil
	}

	return render(sink, d.Pos,
		func() (string, error) { return env.Gen.Companion(c) },
		func() (string, error) { return env.Gen.DiffImpl(c) },
	)
}

// checkNames reports generated identifiers that would collide with what
// the output package or the declaration already has.
func checkNames(d *decl.TypeDeclaration, mode attr.StructMode, env Env, sink *diagnostic.Sink) {
	if gen.NeedsFunc(d) {
		checkDeclared(d, env.Gen.FuncName(d.Name), env, sink)

		return
	}

	if d.Kind == decl.KindStruct {
		for i := range d.Fields {
			f := &d.Fields[i]
			if f.Member() != "Diff" {
				continue
			}

			sink.Push(diagnostic.Diagnostic{
				Severity:  diagnostic.DiagnosticError,
				Code:      diagnostic.CodeUnsupported,
				Message:   "field Diff collides with the Diff method generated for " + d.Name,
				Pos:       f.Pos,
				FieldPath: f.Member(),
			})
		}

		if mode == attr.StructDefault {
			checkDeclared(d, env.Gen.CompanionName(d.Name), env, sink)
		}
	}

	if env.Scope != nil && env.Scope.HasMethod(d.Name, "Diff") {
		sink.Errorf(diagnostic.CodeUnsupported, d.Pos, "%s already declares a Diff method", d.Name)
	}
}

func checkDeclared(d *decl.TypeDeclaration, name string, env Env, sink *diagnostic.Sink) {
	if env.Scope == nil || !env.Scope.Declared(name) {
		return
	}

	sink.Errorf(diagnostic.CodeUnsupported, d.Pos,
		"generated %s for %s collides with an existing declaration", name, d.Name)
}

func render(sink *diagnostic.Sink, pos diagnostic.Position, steps ...func() (string, error)) []string {
	out := make([]string, 0, len(steps))

	for _, step := range steps {
		code, err := step()
		if err != nil {
			sink.Errorf(diagnostic.CodeGeneratedInternal, pos, "%v", err)

			return nil
		}

		out = append(out, code)
	}

	return out
}

func tag(diags []diagnostic.Diagnostic, typeName string) []diagnostic.Diagnostic {
	for i := range diags {
		if diags[i].TypeName == "" {
			diags[i].TypeName = typeName
		}
	}

	return diags
}
