package analyze

import (
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/packages"

	"daftgen/internal/decl"
	"daftgen/internal/diagnostic"
	"daftgen/internal/gen"
)

func checkSource(t *testing.T, src string) *packages.Package {
	t.Helper()

	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "shapes.go", src, parser.ParseComments)
	require.NoError(t, err)

	info := &types.Info{
		Types: map[ast.Expr]types.TypeAndValue{},
		Defs:  map[*ast.Ident]types.Object{},
		Uses:  map[*ast.Ident]types.Object{},
	}

	var conf types.Config

	tpkg, err := conf.Check("example.com/shapes", fset, []*ast.File{f}, info)
	require.NoError(t, err)

	return &packages.Package{
		Name:      tpkg.Name(),
		PkgPath:   tpkg.Path(),
		GoFiles:   []string{"shapes.go"},
		Fset:      fset,
		Syntax:    []*ast.File{f},
		Types:     tpkg,
		TypesInfo: info,
	}
}

func extract(t *testing.T, src string, opts Options) *extractor {
	t.Helper()

	x := newExtractor(checkSource(t, src), opts)
	x.run()

	return x
}

func findDecl(t *testing.T, x *extractor, name string) *decl.TypeDeclaration {
	t.Helper()

	for _, d := range x.decls {
		if d.Name == name {
			return d
		}
	}

	require.Failf(t, "declaration not extracted", "%s", name)

	return nil
}

func TestExtract_OptIn(t *testing.T) {
	src := `package shapes

//daft:diffable
type Point struct {
	X, Y int
}

type Ignored struct {
	A int
}

// Size is selected by name.
type Size struct {
	W int
}
`

	x := extract(t, src, Options{Types: []string{"Size"}})

	require.Len(t, x.decls, 2)
	assert.Equal(t, "Point", x.decls[0].Name)
	assert.Equal(t, "Size", x.decls[1].Name)
	assert.Equal(t, []string{"Point", "Size"}, x.selected)
	assert.Empty(t, x.diags)
}

func TestExtract_StructFields(t *testing.T) {
	src := `package shapes

type Base struct{}

//daft:diffable
type Shape[T any] struct {
	Base
	X, Y   T ` + "`json:\"x\" daft:\"leaf\"`" + `
	Tags   map[string]struct{}
	hidden int
	_      struct{}
}
`

	x := extract(t, src, Options{})
	d := findDecl(t, x, "Shape")

	assert.Equal(t, decl.KindStruct, d.Kind)
	assert.True(t, d.Exported)
	assert.True(t, d.Source)
	assert.True(t, d.NonExhaustive)
	assert.Equal(t, "shapes.go:6:6", d.Pos.String())

	var names []string
	for _, f := range d.Fields {
		names = append(names, f.Name)
	}

	assert.Equal(t, []string{"Base", "X", "Y", "Tags", "hidden"}, names)

	for i, f := range d.Fields {
		assert.Equal(t, i, f.Index)
		assert.NotNil(t, f.GoType, f.Name)
	}

	require.Len(t, d.Fields[1].Attrs, 1)
	assert.Equal(t, "leaf", d.Fields[1].Attrs[0].Text)
	assert.Equal(t, d.Fields[1].Attrs, d.Fields[2].Attrs)
	assert.Equal(t, "shapes.go:8:27", d.Fields[1].Attrs[0].Pos.String())

	require.Len(t, d.Generics.Params, 1)
	assert.Equal(t, "T", d.Generics.Params[0].Name)
	assert.Equal(t, decl.ParamType, d.Generics.Params[0].Kind)
}

func TestExtract_RepeatedTagKey(t *testing.T) {
	src := `package shapes

//daft:diffable
type Pair struct {
	A int ` + "`daft:\"leaf\" daft:\"ignore\"`" + `
}
`

	x := extract(t, src, Options{})
	d := findDecl(t, x, "Pair")

	require.Len(t, d.Fields, 1)
	require.Len(t, d.Fields[0].Attrs, 2)
	assert.Equal(t, "leaf", d.Fields[0].Attrs[0].Text)
	assert.Equal(t, "ignore", d.Fields[0].Attrs[1].Text)
}

func TestExtract_Directives(t *testing.T) {
	src := `package shapes

// Circle is round.
//
//daft:diffable
//daft:leaf
type Circle struct {
	R float64
}
`

	x := extract(t, src, Options{})
	d := findDecl(t, x, "Circle")

	require.Len(t, d.Attrs, 2)
	assert.Equal(t, "diffable", d.Attrs[0].Text)
	assert.Equal(t, "leaf", d.Attrs[1].Text)
	assert.Equal(t, "shapes.go:6:8", d.Attrs[1].Pos.String())
	assert.Contains(t, d.Doc, "Circle is round.")
}

func TestExtract_EnumVariants(t *testing.T) {
	src := `package shapes

//daft:diffable
type Color int

const (
	Red Color = iota
	//daft:leaf
	Green
	Blue
)

const Unrelated = 3
`

	x := extract(t, src, Options{})
	d := findDecl(t, x, "Color")

	assert.Equal(t, decl.KindEnum, d.Kind)
	require.NotNil(t, d.Underlying)
	assert.Equal(t, "int", decl.ExprString(d.Underlying))

	require.Len(t, d.Variants, 3)
	assert.Equal(t, "Red", d.Variants[0].Name)
	assert.Equal(t, "Green", d.Variants[1].Name)
	assert.Equal(t, "Blue", d.Variants[2].Name)
	assert.Empty(t, d.Variants[0].Attrs)
	require.Len(t, d.Variants[1].Attrs, 1)
	assert.Equal(t, decl.ShapeUnit, d.Variants[1].Shape)
}

func TestExtract_Interface(t *testing.T) {
	src := `package shapes

//daft:diffable
type Drawer interface {
	Draw() string
}
`

	x := extract(t, src, Options{})
	d := findDecl(t, x, "Drawer")

	assert.Equal(t, decl.KindInterface, d.Kind)
	assert.Empty(t, x.diags)
}

func TestExtract_Unsupported(t *testing.T) {
	src := `package shapes

type Point struct{ X int }

//daft:diffable
type Alias = Point

//daft:diffable
type Ref *Point

//daft:diffable
type Number interface {
	~int | ~float64
}
`

	x := extract(t, src, Options{})

	assert.Empty(t, x.decls)
	assert.Equal(t, []string{"Alias", "Ref", "Number"}, x.selected)
	require.Len(t, x.diags, 3)

	for _, d := range x.diags {
		assert.Equal(t, diagnostic.CodeUnsupported, d.Code)
		assert.Equal(t, diagnostic.DiagnosticError, d.Severity)
	}

	assert.Equal(t, "Alias", x.diags[0].TypeName)
	assert.Contains(t, x.diags[0].Message, "type aliases")
	assert.Contains(t, x.diags[1].Message, "pointer")
	assert.Contains(t, x.diags[2].Message, "constraint interfaces")
}

func TestExtract_SkipSuffix(t *testing.T) {
	pkg := checkSource(t, `package shapes

//daft:diffable
type Point struct{ X int }
`)

	x := newExtractor(pkg, Options{SkipSuffix: "shapes.go"})
	x.run()

	assert.Empty(t, x.decls)
}

func TestExtract_Imports(t *testing.T) {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "a.go", `package a

import (
	"time"
	tm "text/template"
	_ "embed"
	. "strings"
	"time"
)
`, parser.ImportsOnly)
	require.NoError(t, err)

	x := newExtractor(&packages.Package{Fset: fset}, Options{})
	x.addImports(f)

	assert.Equal(t, []gen.ImportSpec{
		{Path: "time"},
		{Alias: "tm", Path: "text/template"},
		{Alias: ".", Path: "strings"},
	}, x.imports)
}

func TestScanTag(t *testing.T) {
	tests := []struct {
		name string
		tag  string
		want []tagEntry
	}{
		{
			name: "single",
			tag:  `daft:"leaf"`,
			want: []tagEntry{{key: "daft", value: "leaf", offset: 6}},
		},
		{
			name: "several",
			tag:  `json:"x"  daft:"leaf, ignore"`,
			want: []tagEntry{
				{key: "json", value: "x", offset: 6},
				{key: "daft", value: "leaf, ignore", offset: 16},
			},
		},
		{
			name: "stops at malformed",
			tag:  `daft:"leaf" bogus daft:"ignore"`,
			want: []tagEntry{{key: "daft", value: "leaf", offset: 6}},
		},
		{
			name: "empty",
			tag:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, scanTag(tt.tag))
		})
	}
}
