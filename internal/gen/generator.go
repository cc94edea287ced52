package gen

import (
	"bytes"
	"fmt"
	"path/filepath"
	"text/template"

	"golang.org/x/tools/imports"

	"daftgen/internal/common"
)

// DefaultRuntimePath is the import path of the runtime package generated
// code calls into.
const DefaultRuntimePath = "daftgen/daft"

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// RuntimePath is the import path of the runtime package.
	RuntimePath string
	// RuntimeName is the name the runtime package is referred to by.
	RuntimeName string
	// Suffix is appended to a declaration name to name its companion.
	Suffix string
	// OutputSuffix is appended to the package name to name the output file.
	OutputSuffix string
	// OutputDir receives the .unformatted.go sidecar when formatting fails.
	// When empty the sidecar goes next to the output file, if its name has
	// a directory.
	OutputDir string
	// GenerateComments enables doc comments on generated declarations.
	GenerateComments bool
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		RuntimePath:      DefaultRuntimePath,
		RuntimeName:      "daft",
		Suffix:           "Diff",
		OutputSuffix:     "_daft.go",
		GenerateComments: true,
	}
}

// Generator renders diff companions and assembles generated files.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{config: config}
}

// Config returns the configuration of g.
func (g *Generator) Config() GeneratorConfig {
	return g.config
}

// CompanionName returns the companion type name of a declaration.
func (g *Generator) CompanionName(name string) string {
	return name + g.config.Suffix
}

// FuncName returns the diff function name of declarations that cannot
// carry methods.
func (g *Generator) FuncName(name string) string {
	return g.config.Suffix + name
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "geo_daft.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// FileInput is everything assembled into one generated file.
type FileInput struct {
	Filename    string
	PackageName string
	// Imports are candidates; the ones the fragments do not use are
	// dropped.
	Imports []ImportSpec
	// Fragments are declarations in output order.
	Fragments []string
}

// File assembles fragments into one formatted Go file. When formatting
// fails the unformatted source is returned along with the error and
// written to a sidecar next to the intended output.
func (g *Generator) File(in FileInput) (*GeneratedFile, error) {
	data := fileData{
		PackageName: in.PackageName,
		Imports:     mergeImports(in.Imports, ImportSpec{Alias: g.runtimeAlias(), Path: g.config.RuntimePath}),
		Fragments:   in.Fragments,
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := imports.Process(in.Filename, buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: false,
	})
	if err != nil {
		_ = writeDebugUnformatted(g.debugDir(in.Filename), in.Filename, buf.Bytes())

		return &GeneratedFile{
			Filename: in.Filename,
			Content:  buf.Bytes(),
		}, fmt.Errorf("formatting code: %w (unformatted code returned)", err)
	}

	return &GeneratedFile{
		Filename: in.Filename,
		Content:  formatted,
	}, nil
}

// debugDir is where the unformatted sidecar of filename goes: OutputDir,
// or the directory of filename when it names one.
func (g *Generator) debugDir(filename string) string {
	if g.config.OutputDir != "" {
		return g.config.OutputDir
	}

	if dir := filepath.Dir(filename); dir != "." {
		return dir
	}

	return ""
}

// runtimeAlias is the explicit import name of the runtime package, or ""
// when the path already ends in that name.
func (g *Generator) runtimeAlias() string {
	if common.PkgAlias(g.config.RuntimePath) == g.config.RuntimeName {
		return ""
	}

	return g.config.RuntimeName
}

func execute(t *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing %s template: %w", t.Name(), err)
	}

	return buf.String(), nil
}

type fileData struct {
	PackageName string
	Imports     []ImportSpec
	Fragments   []string
}
