package analyze

import (
	"path/filepath"

	"daftgen/internal/decl"
	"daftgen/internal/diagnostic"
	"daftgen/internal/gen"
	"daftgen/internal/pipeline"
	"daftgen/internal/resolve"
)

// Package is a loaded package with its selected declarations.
type Package struct {
	Path string
	Name string
	// Dir is the directory of the package files; generated output goes
	// there.
	Dir     string
	Decls   []*decl.TypeDeclaration
	Imports []gen.ImportSpec
	Types   *resolve.Types
	// Diagnostics were found while extracting declarations.
	Diagnostics []diagnostic.Diagnostic
}

// Options selects what LoadPackages extracts.
type Options struct {
	// Types selects declarations by name. When empty, declarations opt in
	// with //daft:diffable.
	Types []string
	// SkipSuffix marks previous output: files with this suffix are
	// loaded as empty files of their package.
	SkipSuffix string
	// Outputs are further previous output files, as absolute paths.
	Outputs []string
	// Dir is the directory patterns are resolved in.
	Dir string
	// Overlay maps absolute file paths to contents replacing the files on
	// disk, as in packages.Config.
	Overlay map[string][]byte
}

// Unit turns p into the pipeline input writing <package><suffix> next to
// the package files.
func (p *Package) Unit(suffix string) *pipeline.Unit {
	return &pipeline.Unit{
		Name:        p.Path,
		Filename:    filepath.Join(p.Dir, p.Name+suffix),
		PackageName: p.Name,
		Imports:     p.Imports,
		Decls:       p.Decls,
		Types:       p.Types,
		Diagnostics: p.Diagnostics,
	}
}
