package attr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"daftgen/internal/decl"
	"daftgen/internal/diagnostic"
)

func TestSite_Transitions(t *testing.T) {
	assert.Equal(t, SiteVariant, SiteEnum.Variant())
	assert.Equal(t, SiteGeneral, SiteUnion.Variant())
	assert.Equal(t, SiteGeneral, SiteVariant.Variant())

	assert.Equal(t, SiteOpaqueStructField, SiteOpaqueStruct.Field())
	assert.Equal(t, SiteVariantField, SiteVariant.Field())
	assert.Equal(t, SiteUnionField, SiteUnion.Field())
	assert.Equal(t, SiteGeneral, SiteEnum.Field())
	assert.Equal(t, SiteGeneral, SiteUnionField.Field())

	assert.Empty(t, SiteGeneral.Location())
	assert.Empty(t, SiteEnum.Location())
	assert.Equal(t, "SiteUnionField", SiteUnionField.String())
}

func TestVisit_Enum(t *testing.T) {
	d := &decl.TypeDeclaration{
		Name: "Shape",
		Kind: decl.KindEnum,
		Variants: []decl.Variant{
			{Name: "Empty", Attrs: []decl.Attr{at("leaf")}},
			{
				Name:  "Circle",
				Shape: decl.ShapeTuple,
				Fields: []decl.Field{
					{Index: 0, Attrs: []decl.Attr{at("ignore")}},
					{Index: 1},
				},
			},
		},
	}

	store := diagnostic.NewStore()
	sink := store.Sink()
	Visit(d, SiteEnum, sink)

	diags := store.Finish()
	require.Len(t, diags, 2)
	assert.True(t, sink.HasErrors())

	assert.Equal(t, "daft attributes are not allowed on enum variants", diags[0].Message)
	assert.Equal(t, "Empty", diags[0].FieldPath)
	assert.Equal(t, "daft attributes are not allowed on enum variant fields", diags[1].Message)
	assert.Equal(t, "Circle.F0", diags[1].FieldPath)
	assert.Equal(t, diagnostic.CodeMisplaced, diags[1].Code)
}

func TestVisit_UnionAndOpaqueStruct(t *testing.T) {
	fields := []decl.Field{
		{Name: "A", Attrs: []decl.Attr{at("leaf")}},
		{Name: "B", Attrs: []decl.Attr{at("ignore"), at("leaf")}},
		{Name: "C"},
	}

	tests := []struct {
		root Site
		kind decl.Kind
		want string
	}{
		{SiteUnion, decl.KindUnion, "daft attributes are not allowed on union fields"},
		{SiteOpaqueStruct, decl.KindStruct, "daft attributes are not allowed on fields of structs annotated with //daft:leaf"},
	}

	for _, tt := range tests {
		t.Run(tt.root.String(), func(t *testing.T) {
			store := diagnostic.NewStore()
			Visit(&decl.TypeDeclaration{Name: "U", Kind: tt.kind, Fields: fields}, tt.root, store.Sink())

			diags := store.Finish()
			require.Len(t, diags, 3)

			for _, d := range diags {
				assert.Equal(t, tt.want, d.Message)
				assert.Equal(t, "U", d.TypeName)
			}
		})
	}
}

func TestVisit_GeneralAllowsFieldAttributes(t *testing.T) {
	store := diagnostic.NewStore()
	sink := store.Sink()

	Visit(&decl.TypeDeclaration{
		Name:   "Point",
		Fields: []decl.Field{{Name: "X", Attrs: []decl.Attr{at("leaf")}}},
	}, SiteGeneral, sink)

	assert.False(t, sink.HasErrors())
	assert.Empty(t, store.Finish())
}
