package analyze

import (
	"errors"
	"fmt"
	"maps"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/tools/go/packages"

	"daftgen/internal/resolve"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Analyzer loads Go packages and extracts declarations.
type Analyzer struct {
	opts Options
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer(opts Options) *Analyzer {
	return &Analyzer{opts: opts}
}

// LoadPackages loads the packages matching patterns (e.g. ".",
// "daftgen/examples/geo") and extracts their declarations.
func (a *Analyzer) LoadPackages(patterns ...string) ([]*Package, error) {
	overlay, err := a.stubOutputs(patterns)
	if err != nil {
		return nil, err
	}

	cfg := &packages.Config{
		Mode:    LoadMode,
		Dir:     a.opts.Dir,
		Overlay: overlay,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	var errs []error

	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %w", errors.Join(errs...))
	}

	out := make([]*Package, 0, len(pkgs))
	found := map[string]bool{}

	for _, pkg := range pkgs {
		p, selected := a.processPackage(pkg)
		for _, name := range selected {
			found[name] = true
		}

		out = append(out, p)
	}

	var missing []string

	for _, name := range a.opts.Types {
		if !found[name] {
			missing = append(missing, name)
		}
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("types not found: %s", strings.Join(missing, ", "))
	}

	return out, nil
}

// stubOutputs lists the packages and replaces every previous output file
// with a bare package clause, so stale generated code neither breaks type
// checking nor contributes declarations.
func (a *Analyzer) stubOutputs(patterns []string) (map[string][]byte, error) {
	overlay := maps.Clone(a.opts.Overlay)
	if a.opts.SkipSuffix == "" && len(a.opts.Outputs) == 0 {
		return overlay, nil
	}

	pkgs, err := packages.Load(&packages.Config{
		Mode:    packages.NeedName | packages.NeedFiles,
		Dir:     a.opts.Dir,
		Overlay: a.opts.Overlay,
	}, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to list packages: %w", err)
	}

	for _, pkg := range pkgs {
		for _, f := range pkg.GoFiles {
			if !a.isOutput(f) {
				continue
			}

			if overlay == nil {
				overlay = map[string][]byte{}
			}

			overlay[f] = []byte("package " + pkg.Name + "\n")
		}
	}

	return overlay, nil
}

func (a *Analyzer) isOutput(file string) bool {
	if a.opts.SkipSuffix != "" && strings.HasSuffix(file, a.opts.SkipSuffix) {
		return true
	}

	return slices.Contains(a.opts.Outputs, file)
}

// processPackage extracts the selected declarations of a loaded package.
// It also returns the names of every selected type, including the ones
// rejected with a diagnostic.
func (a *Analyzer) processPackage(pkg *packages.Package) (*Package, []string) {
	p := &Package{
		Path:  pkg.PkgPath,
		Name:  pkg.Name,
		Types: &resolve.Types{Pkg: pkg.Types, Info: pkg.TypesInfo},
	}

	if len(pkg.GoFiles) > 0 {
		p.Dir = filepath.Dir(pkg.GoFiles[0])
	}

	x := newExtractor(pkg, a.opts)
	x.run()

	p.Decls = x.decls
	p.Imports = x.imports
	p.Diagnostics = x.diags

	return p, x.selected
}
