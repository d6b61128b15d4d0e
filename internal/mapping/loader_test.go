package mapping

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"serializer-generator/internal/model"
)

const libraryYaml = `
version: "1"
types:
  - name: title
    shape: primitive
  - name: book
    shape: element
    type: catalog.Book
    fields:
      - name: Title
        type: title
      - name: Related
        type: books
  - name: books
    shape: array
    item: book
  - name: library
    shape: element
    type: catalog.Library
    fields:
      - name: Shelf
        type: books
roots:
  - key: library
    element: Library
    namespace: urn:catalog
    type: library
supported:
  - type: catalog.Library
  - type: catalog.Book
`

func TestLoadBuildsGraph(t *testing.T) {
	f, err := Load(strings.NewReader(libraryYaml))
	require.NoError(t, err)
	assert.Equal(t, "1", f.Version)

	b, err := f.Build()
	require.NoError(t, err)

	require.Len(t, b.Roots, 1)
	root := b.Roots[0]
	assert.Equal(t, "library", root.Key)
	assert.Equal(t, "Library", root.Accessor.Name)
	assert.Equal(t, "urn:catalog", root.Accessor.Namespace)

	require.NotNil(t, root.Root)
	assert.Equal(t, model.KindElement, root.Root.Kind)
	assert.Equal(t, "Library", root.Root.TypeName)

	require.Len(t, root.Root.Fields, 1)
	shelf := root.Root.Fields[0].Mapping
	require.NotNil(t, shelf)
	assert.Equal(t, model.KindArray, shelf.Kind)

	book := shelf.Item
	require.NotNil(t, book)
	assert.Equal(t, model.KindElement, book.Kind)
}

func TestBuildResolvesCycles(t *testing.T) {
	f, err := Load(strings.NewReader(libraryYaml))
	require.NoError(t, err)

	b, err := f.Build()
	require.NoError(t, err)

	book := b.Roots[0].Root.Fields[0].Mapping.Item
	require.Len(t, book.Fields, 2)

	// Related points back through the array at the same book node.
	related := book.Fields[1].Mapping
	require.NotNil(t, related)
	assert.Same(t, book, related.Item)
}

func TestBuildInternsRuntimeTypes(t *testing.T) {
	f, err := Load(strings.NewReader(libraryYaml))
	require.NoError(t, err)

	b, err := f.Build()
	require.NoError(t, err)

	require.Len(t, b.Supported, 2)
	assert.Same(t, b.Roots[0].Root.Type, b.Supported[0])
	assert.Equal(t, "catalog", b.Supported[0].PkgPath)
	assert.Equal(t, "Library", b.Supported[0].Name)
	assert.True(t, b.Supported[0].Exported)
}

func TestBuildExportedOverride(t *testing.T) {
	no := false

	f := &File{
		Types: []TypeDef{
			{Name: "rec", Shape: "element", Type: "store.Record"},
		},
		Roots: []RootDef{
			{Key: "rec", Element: "Record", Type: "rec"},
		},
		Supported: []TypeRef{
			{Type: "store.Record", Exported: &no},
			{Type: "store.temp"},
			{Type: "store.List", Open: true},
		},
	}

	b, err := f.Build()
	require.NoError(t, err)

	assert.False(t, b.Supported[0].Exported)
	assert.False(t, b.Supported[0].Serializable())
	assert.False(t, b.Supported[1].Exported)
	assert.True(t, b.Supported[2].Open)
	assert.False(t, b.Supported[2].Serializable())
}

func TestBuildRejectsInvalidDescription(t *testing.T) {
	f := &File{
		Types: []TypeDef{
			{Name: "rec", Shape: "element"},
		},
		Roots: []RootDef{
			{Key: "rec", Element: "Record", Type: "missing"},
		},
	}

	b, err := f.Build()
	assert.Nil(t, b)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown-type")
}

func TestLoadRejectsMalformedYaml(t *testing.T) {
	_, err := Load(strings.NewReader("types: {not: [a, list"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing mapping description")
}

func TestLoadFileExample(t *testing.T) {
	f, err := LoadFile("../../examples/library/mapping.yaml")
	require.NoError(t, err)

	b, err := f.Build()
	require.NoError(t, err)
	assert.NotEmpty(t, b.Roots)
}
