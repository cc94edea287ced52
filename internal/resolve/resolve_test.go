package resolve

import (
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"daftgen/internal/decl"
)

func batch() *Batch {
	b := NewBatch("daft")
	b.Add("Point", BatchEntry{Companion: "PointDiff"})
	b.Add("Pair", BatchEntry{Companion: "PairDiff"})
	b.Add("Color", BatchEntry{Opaque: true})
	b.Add("Shape", BatchEntry{Opaque: true, Func: "DiffShape"})

	return b
}

func TestResolver_Syntax(t *testing.T) {
	r := &Resolver{TypeParams: map[string]bool{"T": true}, Env: batch()}

	tests := []struct {
		typ      string
		kind     Kind
		wantType string
		wantCall string
	}{
		{"int", KindLeaf, "daft.Leaf[int]", "daft.NewLeaf(&before.F, &after.F)"},
		{"*Point", KindLeaf, "daft.Leaf[*Point]", "daft.NewLeaf(&before.F, &after.F)"},
		{"[]string", KindLeaf, "daft.Leaf[[]string]", "daft.NewLeaf(&before.F, &after.F)"},
		{"[4]byte", KindLeaf, "daft.Leaf[[4]byte]", "daft.NewLeaf(&before.F, &after.F)"},
		{"func()", KindLeaf, "daft.Leaf[func()]", "daft.NewLeaf(&before.F, &after.F)"},
		{"T", KindLeaf, "daft.Leaf[T]", "daft.NewLeaf(&before.F, &after.F)"},
		{"time.Time", KindLeaf, "daft.Leaf[time.Time]", "daft.NewLeaf(&before.F, &after.F)"},
		{"map[string]struct{}", KindSet, "daft.SetDiff[string]", "daft.DiffSet(before.F, after.F)"},
		{"map[string][]int", KindMap, "daft.MapDiff[string, []int]", "daft.DiffMap(before.F, after.F)"},
		{"Point", KindMethod, "PointDiff", "before.F.Diff(&after.F)"},
		{"(Point)", KindMethod, "PointDiff", "before.F.Diff(&after.F)"},
		{"Pair[int, T]", KindMethod, "PairDiff[int, T]", "before.F.Diff(&after.F)"},
		{"Color", KindMethod, "daft.Leaf[Color]", "before.F.Diff(&after.F)"},
		{"Shape", KindFunc, "daft.Leaf[Shape]", "DiffShape(&before.F, &after.F)"},
	}

	for _, tt := range tests {
		t.Run(tt.typ, func(t *testing.T) {
			res, err := r.Resolve(decl.Expr(tt.typ))
			require.NoError(t, err)

			assert.Equal(t, tt.kind, res.Kind)
			assert.Equal(t, tt.wantType, res.Type("daft", tt.typ))
			assert.Equal(t, tt.wantCall, res.Call("daft", "before.F", "after.F"))
		})
	}
}

func TestResolver_NoEnvIsLeaf(t *testing.T) {
	res, err := (&Resolver{}).Resolve(decl.Expr("Point"))
	require.NoError(t, err)
	assert.Equal(t, KindLeaf, res.Kind)
}

const typesSrc = `package p

type Inner struct{ A int }

type Celsius float64

type Diffy struct{}

type DiffyDiff struct{}

func (d *Diffy) Diff(other *Diffy) DiffyDiff { return DiffyDiff{} }

type Outer struct {
	I Inner
	C Celsius
	D Diffy
	N int
}
`

func checkSource(t *testing.T) (*Types, *ast.StructType) {
	t.Helper()

	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "p.go", typesSrc, 0)
	require.NoError(t, err)

	info := &types.Info{Types: map[ast.Expr]types.TypeAndValue{}}
	pkg, err := (&types.Config{}).Check("p", fset, []*ast.File{f}, info)
	require.NoError(t, err)

	var outer *ast.StructType

	ast.Inspect(f, func(n ast.Node) bool {
		if ts, ok := n.(*ast.TypeSpec); ok && ts.Name.Name == "Outer" {
			outer, _ = ts.Type.(*ast.StructType)
		}

		return outer == nil
	})
	require.NotNil(t, outer)

	return &Types{Pkg: pkg, Info: info}, outer
}

func TestResolver_TypesEnv(t *testing.T) {
	env, outer := checkSource(t)
	r := &Resolver{Env: Chain{NewBatch("daft"), env}}

	fields := outer.Fields.List
	require.Len(t, fields, 4)

	_, err := r.Resolve(fields[0].Type)
	var nd *NotDiffableError
	require.ErrorAs(t, err, &nd)
	assert.Equal(t, "Inner", nd.Type)
	assert.Contains(t, err.Error(), "does not implement Diff")

	res, err := r.Resolve(fields[1].Type)
	require.NoError(t, err)
	assert.Equal(t, KindLeaf, res.Kind)

	res, err = r.Resolve(fields[2].Type)
	require.NoError(t, err)
	assert.Equal(t, KindMethod, res.Kind)
	assert.Equal(t, "DiffyDiff", res.Diff)

	res, err = r.Resolve(fields[3].Type)
	require.NoError(t, err)
	assert.Equal(t, KindLeaf, res.Kind)
}

func TestChain_BatchWins(t *testing.T) {
	env, outer := checkSource(t)

	b := NewBatch("daft")
	b.Add("Inner", BatchEntry{Companion: "InnerDiff"})

	r := &Resolver{Env: Chain{b, env}}
	res, err := r.Resolve(outer.Fields.List[0].Type)
	require.NoError(t, err)
	assert.Equal(t, "InnerDiff", res.Diff)
	assert.Equal(t, 1, b.Len())
}

func TestTypes_DeclaredAndHasMethod(t *testing.T) {
	env, _ := checkSource(t)

	assert.True(t, env.Declared("DiffyDiff"))
	assert.False(t, env.Declared("InnerDiff"))

	assert.True(t, env.HasMethod("Diffy", "Diff"))
	assert.False(t, env.HasMethod("Inner", "Diff"))
	assert.False(t, env.HasMethod("Outer", "Diff"))
	assert.False(t, env.HasMethod("Missing", "Diff"))

	assert.False(t, (&Types{}).Declared("Diffy"))
}

func TestResolver_PointerIsLeafEvenWhenPointeeDiffs(t *testing.T) {
	env, _ := checkSource(t)

	b := NewBatch("daft")
	b.Add("Inner", BatchEntry{Companion: "InnerDiff"})

	r := &Resolver{Env: Chain{b, env}}

	for _, src := range []string{"*Inner", "*Diffy"} {
		res, err := r.Resolve(decl.Expr(src))
		require.NoError(t, err)
		assert.Equal(t, KindLeaf, res.Kind, src)
		assert.Equal(t, "daft.Leaf["+src+"]", res.Type("daft", src))
	}
}
