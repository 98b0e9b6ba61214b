package gen

import (
	"bytes"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resolver-generator/internal/catalog"
	"resolver-generator/internal/spec"
)

func shopCatalog() *catalog.Catalog {
	return &catalog.Catalog{
		ModulePath: "example.com/shop",
		Types: []*catalog.Type{
			{
				ID: catalog.TypeID{PkgPath: "example.com/shop/store", Name: "Order"},
				Properties: []catalog.Property{
					{Name: "ID"},
					{Name: "AccountId"},
				},
			},
			{
				ID: catalog.TypeID{PkgPath: "example.com/shop/store", Name: "Customer"},
				Properties: []catalog.Property{
					{Name: "AccountId", Nullable: true, Pointer: true},
					{Name: "Tags", Nullable: true},
				},
			},
			{
				ID: catalog.TypeID{PkgPath: "example.com/shop/warehouse", Name: "Shipment"},
				Properties: []catalog.Property{
					{Name: "AccountID"},
					{Name: "Carrier"},
				},
			},
		},
	}
}

func TestEmitter_Emit_DispatchArtifact(t *testing.T) {
	emitter := NewEmitter(Config{})

	files, err := emitter.Emit(shopCatalog(), []spec.Resolver{{Property: "AccountId"}})
	require.NoError(t, err)
	require.Len(t, files, 1)

	assert.Equal(t, "accountid_resolver.go", files[0].Filename)

	content := string(files[0].Content)
	spew.Dump(files[0].Filename)

	assert.Contains(t, content, "// Code generated by resolver-generator. DO NOT EDIT.")
	assert.Contains(t, content, "package shop")
	assert.Contains(t, content, "type AccountIdResolver struct{}")
	assert.Contains(t, content, "func (AccountIdResolver) GetAccountId(v any) (string, bool)")

	// Dispatch entries in catalog traversal order.
	orderIdx := bytes.Index(files[0].Content, []byte("case store.Order:"))
	customerIdx := bytes.Index(files[0].Content, []byte("case store.Customer:"))
	shipmentIdx := bytes.Index(files[0].Content, []byte("case warehouse.Shipment:"))
	require.GreaterOrEqual(t, orderIdx, 0)
	require.GreaterOrEqual(t, customerIdx, 0)
	require.GreaterOrEqual(t, shipmentIdx, 0)
	assert.Less(t, orderIdx, customerIdx)
	assert.Less(t, customerIdx, shipmentIdx)

	// Properties are matched per type in their declared casing.
	assert.Contains(t, content, "fmt.Sprint(x.AccountId)")
	assert.Contains(t, content, "fmt.Sprint(x.AccountID)")

	assert.Contains(t, content, `"example.com/shop/store"`)
	assert.Contains(t, content, `"example.com/shop/warehouse"`)
}

func TestEmitter_Emit_NullableExtraction(t *testing.T) {
	emitter := NewEmitter(Config{})

	files, err := emitter.Emit(shopCatalog(), []spec.Resolver{
		{Property: "AccountId", Include: []string{"example.com/shop/store"}},
	})
	require.NoError(t, err)
	require.Len(t, files, 1)

	content := string(files[0].Content)

	// Pointer property: nil check plus dereference.
	assert.Contains(t, content, "if x.AccountId == nil {")
	assert.Contains(t, content, "fmt.Sprint(*x.AccountId)")

	// Non-nullable property on Order: direct stringification, no guard.
	assert.Contains(t, content, "return fmt.Sprint(x.AccountId), true")
}

func TestEmitter_Emit_NilableReferenceKind(t *testing.T) {
	emitter := NewEmitter(Config{})

	files, err := emitter.Emit(shopCatalog(), []spec.Resolver{{Property: "Tags"}})
	require.NoError(t, err)
	require.Len(t, files, 1)

	content := string(files[0].Content)

	// Nil check without dereference.
	assert.Contains(t, content, "if x.Tags == nil {")
	assert.Contains(t, content, "fmt.Sprint(x.Tags)")
	assert.NotContains(t, content, "*x.Tags")
}

func TestEmitter_Emit_EmptyMatchStillEmits(t *testing.T) {
	emitter := NewEmitter(Config{})

	files, err := emitter.Emit(shopCatalog(), []spec.Resolver{{Property: "Missing"}})
	require.NoError(t, err)
	require.Len(t, files, 1)

	content := string(files[0].Content)

	assert.Contains(t, content, "type MissingResolver struct{}")
	assert.Contains(t, content, `return "", false`)
	assert.NotContains(t, content, "switch")
	assert.NotContains(t, content, `"fmt"`)
}

func TestEmitter_Emit_Deterministic(t *testing.T) {
	specs := []spec.Resolver{
		{Property: "AccountId"},
		{Property: "Carrier"},
		{Property: "Missing"},
	}

	first, err := NewEmitter(Config{}).Emit(shopCatalog(), specs)
	require.NoError(t, err)

	second, err := NewEmitter(Config{}).Emit(shopCatalog(), specs)
	require.NoError(t, err)

	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, first[i].Filename, second[i].Filename)
		assert.True(t, bytes.Equal(first[i].Content, second[i].Content),
			"artifact %s differs between runs", first[i].Filename)
	}
}

func TestEmitter_PackageName(t *testing.T) {
	tests := []struct {
		name       string
		config     Config
		modulePath string
		expected   string
	}{
		{"explicit override", Config{PackageName: "custom"}, "example.com/shop", "custom"},
		{"derived from module path", Config{}, "example.com/shop", "shop"},
		{"sanitized module base", Config{}, "example.com/my-shop", "myshop"},
		{"fallback sentinel when undeterminable", Config{}, "", FallbackPackageName},
		{"fallback when base is all digits", Config{}, "example.com/123", FallbackPackageName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEmitter(tt.config)
			got := e.packageName(&catalog.Catalog{ModulePath: tt.modulePath})
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestEmitter_Emit_ArtifactUsesSpecCasing(t *testing.T) {
	emitter := NewEmitter(Config{})

	// The catalog declares AccountId/AccountID; the artifact name follows
	// the specification's declared casing instead.
	files, err := emitter.Emit(shopCatalog(), []spec.Resolver{{Property: "ACCOUNTID"}})
	require.NoError(t, err)
	require.Len(t, files, 1)

	content := string(files[0].Content)
	assert.Contains(t, content, "type ACCOUNTIDResolver struct{}")
	assert.Contains(t, content, "GetACCOUNTID(v any)")
}
