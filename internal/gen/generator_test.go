package gen

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"serializer-generator/internal/contract"
	"serializer-generator/internal/model"
	"serializer-generator/internal/session"
)

// recordRoot builds a root mapping for a simple record type with two
// scalar fields.
func recordRoot(g *model.Graph, key, name string, typ *model.RuntimeType) *model.XmlMapping {
	record := g.NewMapping(model.KindElement, name)
	record.Type = typ
	record.Fields = []model.Field{
		{Name: "id", Mapping: g.NewMapping(model.KindPrimitive, "string")},
		{Name: "count", Mapping: g.NewMapping(model.KindPrimitive, "int")},
	}

	return &model.XmlMapping{
		Key:      key,
		Accessor: model.Accessor{Name: name, Namespace: "urn:test"},
		Root:     record,
	}
}

func TestGenerateSimpleRecord(t *testing.T) {
	g := model.NewGraph()
	typ := &model.RuntimeType{Name: "Invoice", Exported: true}
	root := recordRoot(g, "invoice", "Invoice", typ)

	res, err := NewGenerator(DefaultConfig()).Generate(
		[]*model.XmlMapping{root},
		[]*model.RuntimeType{typ},
	)
	require.NoError(t, err)

	c := res.Contract

	// Scalar fields are inlined: one read and one write procedure total.
	assert.Len(t, c.ReadProcedures(), 1)
	assert.Len(t, c.WriteProcedures(), 1)
	assert.Len(t, c.TypedSerializers(), 1)
	assert.Contains(t, c.ReadProcedures(), "invoice")

	writer, ok := c.Artifacts().Class("XmlSerializationWriter1")
	require.True(t, ok)
	assert.Len(t, writer.Methods(), 1, "scalar fields do not get standalone procedures")

	reader, ok := c.Artifacts().Class("XmlSerializationReader1")
	require.True(t, ok)
	assert.Len(t, reader.Methods(), 1)

	assert.Empty(t, res.Diagnostics.Warnings)
	assert.True(t, c.CanSerialize(typ))
}

func TestGenerateThreeCycle(t *testing.T) {
	g := model.NewGraph()

	a := g.NewMapping(model.KindElement, "A")
	b := g.NewMapping(model.KindElement, "B")
	c := g.NewMapping(model.KindElement, "C")
	a.Fields = []model.Field{{Name: "b", Mapping: b}}
	b.Fields = []model.Field{{Name: "c", Mapping: c}}
	c.Fields = []model.Field{{Name: "a", Mapping: a}}

	typ := &model.RuntimeType{Name: "A", Exported: true}
	a.Type = typ

	root := &model.XmlMapping{
		Key:      "a",
		Accessor: model.Accessor{Name: "a"},
		Root:     a,
	}

	res, err := NewGenerator(DefaultConfig()).Generate([]*model.XmlMapping{root}, nil)
	require.NoError(t, err)

	writer, ok := res.Contract.Artifacts().Class("XmlSerializationWriter1")
	require.True(t, ok)
	require.Len(t, writer.Methods(), 3)

	// Every cycle member's body names another member's procedure.
	names := make(map[string]struct{}, 3)
	for _, m := range writer.Methods() {
		names[m.Name] = struct{}{}
	}

	for _, m := range writer.Methods() {
		var called string

		for _, op := range m.Body {
			if op.Code == "call" {
				called = op.Args[0]
			}
		}

		require.NotEmpty(t, called)
		assert.Contains(t, names, called)
	}
}

func TestGenerateDuplicateKeyFails(t *testing.T) {
	g := model.NewGraph()
	typ := &model.RuntimeType{Name: "Invoice", Exported: true}

	res, err := NewGenerator(DefaultConfig()).Generate([]*model.XmlMapping{
		recordRoot(g, "invoice", "Invoice", typ),
		recordRoot(g, "invoice", "InvoiceAlt", typ),
	}, nil)
	require.Error(t, err)
	assert.Nil(t, res)

	var derr *contract.DuplicateKeyError
	assert.True(t, errors.As(err, &derr))
}

func TestGenerateUnsupportedShapeAborts(t *testing.T) {
	g := model.NewGraph()
	broken := g.NewMapping(model.KindArray, "Items") // no item mapping

	root := &model.XmlMapping{Key: "items", Root: broken}

	res, err := NewGenerator(DefaultConfig()).Generate([]*model.XmlMapping{root}, nil)
	require.Error(t, err)
	assert.Nil(t, res, "no partial contract on generation error")

	var serr *session.UnsupportedShapeError
	assert.True(t, errors.As(err, &serr))
}

func TestGenerateWriteOnlyRoot(t *testing.T) {
	g := model.NewGraph()
	typ := &model.RuntimeType{Name: "Audit", Exported: true}
	root := recordRoot(g, "audit", "Audit", typ)
	root.WriteOnly = true

	res, err := NewGenerator(DefaultConfig()).Generate([]*model.XmlMapping{root}, nil)
	require.NoError(t, err)

	c := res.Contract
	assert.Empty(t, c.ReadProcedures())
	assert.Len(t, c.WriteProcedures(), 1)

	s, ok := c.GetSerializer(typ)
	require.True(t, ok)

	_, hasRead := s.ReadProcedure()
	assert.False(t, hasRead)
}

func TestGenerateRoundTrip(t *testing.T) {
	g := model.NewGraph()

	types := []*model.RuntimeType{
		{Name: "Invoice", Exported: true},
		{Name: "Receipt", Exported: true},
		{Name: "Statement", Exported: true},
	}

	roots := []*model.XmlMapping{
		recordRoot(g, "invoice", "Invoice", types[0]),
		recordRoot(g, "receipt", "Receipt", types[1]),
		recordRoot(g, "statement", "Statement", types[2]),
	}

	res, err := NewGenerator(DefaultConfig()).Generate(roots, types)
	require.NoError(t, err)

	for i, root := range roots {
		s, ok := res.Contract.GetSerializer(types[i])
		require.True(t, ok, "serializer for %s", root.Key)

		assert.True(t, s.CanDeserialize(root.Accessor.Name, root.Accessor.Namespace),
			"%s accepts its own accessor", root.Key)
	}
}

func TestGenerateWarnsOnSkippedTypes(t *testing.T) {
	g := model.NewGraph()

	hidden := &model.RuntimeType{Name: "ledger", Exported: false}
	root := recordRoot(g, "ledger", "Ledger", hidden)

	res, err := NewGenerator(DefaultConfig()).Generate(
		[]*model.XmlMapping{root},
		[]*model.RuntimeType{hidden},
	)
	require.NoError(t, err)

	require.Len(t, res.Diagnostics.Warnings, 2)
	assert.Equal(t, "undispatchable-root", res.Diagnostics.Warnings[0].Code)
	assert.Equal(t, "unsupported-type", res.Diagnostics.Warnings[1].Code)

	assert.False(t, res.Contract.CanSerialize(hidden))
}
