package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func errorCodes(t *testing.T, f *File) []string {
	t.Helper()

	diags := f.Validate()

	codes := make([]string, 0, len(diags.Errors))
	for _, d := range diags.Errors {
		codes = append(codes, d.Code)
	}

	return codes
}

func TestValidateCleanDescription(t *testing.T) {
	f := &File{
		Types: []TypeDef{
			{Name: "text", Shape: "primitive"},
			{Name: "rec", Shape: "element", Fields: []FieldDef{{Name: "Body", Type: "text"}}},
		},
		Roots: []RootDef{
			{Key: "rec", Element: "Record", Type: "rec"},
		},
	}

	diags := f.Validate()
	assert.False(t, diags.HasErrors())
	assert.Empty(t, diags.Warnings)
}

func TestValidateShapeErrors(t *testing.T) {
	tests := []struct {
		name string
		def  TypeDef
		code string
	}{
		{"unknown shape", TypeDef{Name: "x", Shape: "blob"}, "unknown-shape"},
		{"array without item", TypeDef{Name: "x", Shape: "array"}, "missing-item"},
		{"array with dangling item", TypeDef{Name: "x", Shape: "array", Item: "nope"}, "unknown-type"},
		{"choice without arms", TypeDef{Name: "x", Shape: "choice"}, "missing-arms"},
		{"choice with dangling arm", TypeDef{Name: "x", Shape: "choice", Arms: []string{"nope"}}, "unknown-type"},
		{"enum without values", TypeDef{Name: "x", Shape: "enum"}, "missing-values"},
		{"field without name", TypeDef{Name: "x", Shape: "element", Fields: []FieldDef{{Type: "x"}}}, "unnamed-field"},
		{"dangling field type", TypeDef{Name: "x", Shape: "element", Fields: []FieldDef{{Name: "F", Type: "nope"}}}, "unknown-type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &File{Types: []TypeDef{tt.def}}
			assert.Contains(t, errorCodes(t, f), tt.code)
		})
	}
}

func TestValidateDuplicateType(t *testing.T) {
	f := &File{
		Types: []TypeDef{
			{Name: "rec", Shape: "element"},
			{Name: "rec", Shape: "primitive"},
		},
	}

	assert.Contains(t, errorCodes(t, f), "duplicate-type")
}

func TestValidateRootErrors(t *testing.T) {
	f := &File{
		Types: []TypeDef{
			{Name: "rec", Shape: "element"},
		},
		Roots: []RootDef{
			{Element: "A", Type: "rec"},
			{Key: "b", Element: "B"},
			{Key: "c", Element: "C", Type: "nope"},
			{Key: "d", Type: "rec"},
		},
	}

	codes := errorCodes(t, f)
	assert.Contains(t, codes, "unnamed-root")
	assert.Contains(t, codes, "missing-root-type")
	assert.Contains(t, codes, "unknown-type")
	assert.Contains(t, codes, "missing-element")
}

func TestValidateAnyRootMayOmitElement(t *testing.T) {
	f := &File{
		Types: []TypeDef{
			{Name: "wild", Shape: "any"},
		},
		Roots: []RootDef{
			{Key: "wild", Type: "wild"},
		},
	}

	diags := f.Validate()
	assert.False(t, diags.HasErrors())
}

func TestValidateDuplicateRootKeyWarns(t *testing.T) {
	f := &File{
		Types: []TypeDef{
			{Name: "rec", Shape: "element"},
		},
		Roots: []RootDef{
			{Key: "rec", Element: "A", Type: "rec"},
			{Key: "rec", Element: "B", Type: "rec"},
		},
	}

	diags := f.Validate()
	assert.False(t, diags.HasErrors())

	require.Len(t, diags.Warnings, 1)
	assert.Equal(t, "duplicate-root-key", diags.Warnings[0].Code)
}

func TestValidateIgnoredFieldsWarns(t *testing.T) {
	f := &File{
		Types: []TypeDef{
			{Name: "num", Shape: "primitive", Fields: []FieldDef{{Name: "F", Type: "num"}}},
		},
	}

	diags := f.Validate()
	assert.False(t, diags.HasErrors())

	require.Len(t, diags.Warnings, 1)
	assert.Equal(t, "ignored-fields", diags.Warnings[0].Code)
}
