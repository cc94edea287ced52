package gen

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"daftgen/internal/attr"
	"daftgen/internal/decl"
	"daftgen/internal/diagnostic"
	"daftgen/internal/resolve"
)

func field(name, typ string) decl.Field {
	return decl.Field{Name: name, Type: decl.Expr(typ)}
}

func plan(d *decl.TypeDeclaration, modes ...attr.FieldMode) []PlannedField {
	out := make([]PlannedField, 0, len(d.Fields))
	for i := range d.Fields {
		mode := attr.FieldDefault
		if i < len(modes) {
			mode = modes[i]
		}

		out = append(out, PlannedField{Field: &d.Fields[i], Mode: mode})
	}

	return out
}

func synth(t *testing.T, g *Generator, d *decl.TypeDeclaration, modes ...attr.FieldMode) (*Companion, []diagnostic.Diagnostic) {
	t.Helper()

	b := resolve.NewBatch("daft")
	b.Add("Point", resolve.BatchEntry{Companion: "PointDiff"})
	b.Add("Color", resolve.BatchEntry{Opaque: true})

	store := diagnostic.NewStore()
	r := &resolve.Resolver{TypeParams: typeParams(d), Env: b}
	c := g.Synthesize(d, plan(d, modes...), r, store.Sink())

	return c, store.Finish()
}

func typeParams(d *decl.TypeDeclaration) map[string]bool {
	out := map[string]bool{}
	for _, p := range d.Generics.TypeParams() {
		out[p.Name] = true
	}

	return out
}

func point() *decl.TypeDeclaration {
	return &decl.TypeDeclaration{
		Name:     "Point",
		Exported: true,
		Kind:     decl.KindStruct,
		Fields:   []decl.Field{field("X", "int"), field("Y", "int")},
	}
}

func TestGenerator_Companion_Point(t *testing.T) {
	g := NewGenerator(DefaultGeneratorConfig())

	c, diags := synth(t, g, point())
	require.Empty(t, diags)
	require.Len(t, c.Fields, 2)

	code, err := g.Companion(c)
	require.NoError(t, err)

	assert.Contains(t, code, "// PointDiff is the diff of two Point values.")
	assert.Contains(t, code, "type PointDiff struct {")
	assert.Contains(t, code, "\tX daft.Leaf[int]\n")
	assert.Contains(t, code, `return daft.DebugStruct("PointDiff").`)
	assert.Contains(t, code, `Field("Y", d.Y).`)
	assert.Contains(t, code, "\t\tFinish()")
	assert.Contains(t, code, "return d.X.Equal(other.X) &&\n\t\td.Y.Equal(other.Y)")
	assert.Contains(t, code, "return d.X.Unchanged() &&\n\t\td.Y.Unchanged()")
	assert.Contains(t, code, "_ fmt.Stringer = (*daft.Leaf[int])(nil)")
	assert.Contains(t, code, "_ daft.Equaler[daft.Leaf[int]] = (*daft.Leaf[int])(nil)")
	assert.Contains(t, code, "_ daft.Witness = (*daft.Leaf[int])(nil)")
	assert.Contains(t, code, "_ daft.Diff[PointDiff] = PointDiff{}")
	assert.Equal(t, 1, strings.Count(code, "_ fmt.Stringer"), "repeated field types are asserted once")

	impl, err := g.DiffImpl(c)
	require.NoError(t, err)

	assert.Contains(t, impl, "func (before *Point) Diff(after *Point) PointDiff {")
	assert.Contains(t, impl, "X: daft.NewLeaf(&before.X, &after.X),")
	assert.Contains(t, impl, "var _ daft.Diffable[Point, PointDiff] = (*Point)(nil)")
}

func TestGenerator_IgnoredFieldIsOmitted(t *testing.T) {
	g := NewGenerator(DefaultGeneratorConfig())
	d := &decl.TypeDeclaration{
		Name:   "Config",
		Kind:   decl.KindStruct,
		Fields: []decl.Field{field("Name", "string"), field("Cache", "map[string][]byte"), field("Tags", "[]string")},
	}

	c, diags := synth(t, g, d, attr.FieldDefault, attr.FieldIgnore, attr.FieldLeaf)
	require.Empty(t, diags)

	code, err := g.Companion(c)
	require.NoError(t, err)

	impl, err := g.DiffImpl(c)
	require.NoError(t, err)

	for _, out := range []string{code, impl} {
		assert.NotContains(t, out, "Cache")
	}

	assert.Contains(t, code, "Tags daft.Leaf[[]string]")
	assert.Contains(t, impl, "Tags: daft.NewLeaf(&before.Tags, &after.Tags),")
}

func TestGenerator_RecursiveFields(t *testing.T) {
	g := NewGenerator(DefaultGeneratorConfig())
	d := &decl.TypeDeclaration{
		Name: "Scene",
		Kind: decl.KindStruct,
		Fields: []decl.Field{
			field("Origin", "Point"),
			field("Fill", "Color"),
			field("Layers", "map[string]int"),
			field("Visible", "map[string]struct{}"),
		},
	}

	c, diags := synth(t, g, d)
	require.Empty(t, diags)

	code, err := g.Companion(c)
	require.NoError(t, err)

	impl, err := g.DiffImpl(c)
	require.NoError(t, err)

	assert.Contains(t, code, "Origin PointDiff")
	assert.Contains(t, code, "Fill daft.Leaf[Color]")
	assert.Contains(t, code, "Layers daft.MapDiff[string, int]")
	assert.Contains(t, code, "Visible daft.SetDiff[string]")

	assert.Contains(t, impl, "Origin: before.Origin.Diff(&after.Origin),")
	assert.Contains(t, impl, "Layers: daft.DiffMap(before.Layers, after.Layers),")
	assert.Contains(t, impl, "Visible: daft.DiffSet(before.Visible, after.Visible),")
}

func TestGenerator_Tuple_NonExhaustive(t *testing.T) {
	g := NewGenerator(DefaultGeneratorConfig())
	d := &decl.TypeDeclaration{
		Name:          "Pair",
		Kind:          decl.KindStruct,
		Shape:         decl.ShapeTuple,
		NonExhaustive: true,
		Fields: []decl.Field{
			{Index: 0, Type: decl.Expr("string")},
			{Index: 1, Type: decl.Expr("float64")},
		},
	}

	c, diags := synth(t, g, d)
	require.Empty(t, diags)

	code, err := g.Companion(c)
	require.NoError(t, err)

	assert.Contains(t, code, "F0 daft.Leaf[string]")
	assert.Contains(t, code, "\t_ struct{}\n")
	assert.Contains(t, code, `daft.DebugTuple("PairDiff").`)
	assert.Contains(t, code, "Field(d.F1).")
	assert.Contains(t, code, "FinishNonExhaustive()")
}

func TestGenerator_Unit(t *testing.T) {
	g := NewGenerator(DefaultGeneratorConfig())
	d := &decl.TypeDeclaration{Name: "Marker", Kind: decl.KindStruct, Shape: decl.ShapeUnit}

	c, diags := synth(t, g, d)
	require.Empty(t, diags)

	code, err := g.Companion(c)
	require.NoError(t, err)

	assert.Contains(t, code, "type MarkerDiff struct {\n}")
	assert.Equal(t, 2, strings.Count(code, "\treturn true\n"))
}

func TestGenerator_Generic(t *testing.T) {
	g := NewGenerator(DefaultGeneratorConfig())
	d := &decl.TypeDeclaration{
		Name: "Entry",
		Kind: decl.KindStruct,
		Generics: decl.Generics{Params: []decl.Param{
			{Kind: decl.ParamType, Name: "K", Bounds: []decl.Bound{decl.Constraint(decl.Expr("comparable"))}},
			{Kind: decl.ParamType, Name: "d"},
		}},
		Fields: []decl.Field{field("Key", "K"), field("Values", "map[K]d")},
	}

	c, diags := synth(t, g, d)
	require.Empty(t, diags)

	assert.Equal(t, "'__daft", c.Generics.Params[0].Name)

	code, err := g.Companion(c)
	require.NoError(t, err)

	assert.Contains(t, code, "type EntryDiff[K comparable, d any] struct {")
	assert.Contains(t, code, "func (d1 EntryDiff[K, d]) Equal(other EntryDiff[K, d]) bool {")
	assert.Contains(t, code, "Key daft.Leaf[K]")
	assert.Contains(t, code, "Values daft.MapDiff[K, d]")
	assert.NotContains(t, code, "var (")

	impl, err := g.DiffImpl(c)
	require.NoError(t, err)

	assert.Contains(t, impl, "func (before *Entry[K, d]) Diff(after *Entry[K, d]) EntryDiff[K, d] {")
	assert.NotContains(t, impl, "Diffable")
}

func TestGenerator_Synthesize_Errors(t *testing.T) {
	g := NewGenerator(DefaultGeneratorConfig())
	d := &decl.TypeDeclaration{
		Name:   "Report",
		Kind:   decl.KindStruct,
		Fields: []decl.Field{field("String", "string"), field("Body", "string")},
	}

	c, diags := synth(t, g, d)
	require.Len(t, diags, 1)
	assert.Equal(t, diagnostic.CodeUnsupported, diags[0].Code)
	assert.Equal(t, "field String collides with the String method of ReportDiff", diags[0].Message)
	require.Len(t, c.Fields, 1)
	assert.Equal(t, "Body", c.Fields[0].Member)
}

func TestGenerator_LeafImpl(t *testing.T) {
	g := NewGenerator(DefaultGeneratorConfig())

	code, err := g.LeafImpl(&decl.TypeDeclaration{Name: "Color", Kind: decl.KindEnum, Source: true})
	require.NoError(t, err)
	assert.Contains(t, code, "func (before *Color) Diff(after *Color) daft.Leaf[Color] {")
	assert.Contains(t, code, "return daft.NewLeaf(before, after)")
	assert.Contains(t, code, "var _ daft.Diffable[Color, daft.Leaf[Color]] = (*Color)(nil)")

	code, err = g.LeafImpl(&decl.TypeDeclaration{
		Name:     "Shape",
		Kind:     decl.KindEnum,
		Generics: decl.Generics{Params: []decl.Param{{Kind: decl.ParamType, Name: "T"}}},
	})
	require.NoError(t, err)
	assert.Contains(t, code, "func DiffShape[T any](before, after *Shape[T]) daft.Leaf[Shape[T]] {")
}

func TestGenerator_File(t *testing.T) {
	g := NewGenerator(DefaultGeneratorConfig())

	c, diags := synth(t, g, point())
	require.Empty(t, diags)

	companion, err := g.Companion(c)
	require.NoError(t, err)

	impl, err := g.DiffImpl(c)
	require.NoError(t, err)

	file, err := g.File(FileInput{
		Filename:    "geo_daft.go",
		PackageName: "geo",
		Imports:     []ImportSpec{{Path: "fmt"}, {Path: "time"}},
		Fragments:   []string{companion, impl},
	})
	require.NoError(t, err)

	content := string(file.Content)
	assert.Equal(t, "geo_daft.go", file.Filename)
	assert.True(t, strings.HasPrefix(content, "// Code generated by daftgen. DO NOT EDIT."))
	assert.Contains(t, content, "package geo")
	assert.Contains(t, content, `"daftgen/daft"`)
	assert.Contains(t, content, `"fmt"`)
	assert.NotContains(t, content, `"time"`)
}

func TestGenerator_File_UnformattableWritesSidecar(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultGeneratorConfig()
	cfg.OutputDir = dir
	g := NewGenerator(cfg)

	file, err := g.File(FileInput{
		Filename:    "bad_daft.go",
		PackageName: "bad",
		Fragments:   []string{"func {"},
	})
	require.Error(t, err)
	require.NotNil(t, file)
	assert.Contains(t, string(file.Content), "func {")

	_, statErr := os.Stat(filepath.Join(dir, "bad_daft.unformatted.go"))
	assert.NoError(t, statErr)
}

func TestGenerator_Names(t *testing.T) {
	cfg := DefaultGeneratorConfig()
	cfg.Suffix = "Delta"
	g := NewGenerator(cfg)

	assert.Equal(t, "PointDelta", g.CompanionName("Point"))
	assert.Equal(t, "DeltaShape", g.FuncName("Shape"))
	assert.Equal(t, "Delta", g.Config().Suffix)
}

func TestWriteFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")

	err := WriteFiles([]GeneratedFile{{Filename: "a_daft.go", Content: []byte("package a\n")}}, dir)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "a_daft.go"))
	require.NoError(t, err)
	assert.Equal(t, "package a\n", string(data))
}
