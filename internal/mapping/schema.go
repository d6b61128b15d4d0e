package mapping

// File is the root of a YAML mapping description.
type File struct {
	Version   string    `yaml:"version"`
	Types     []TypeDef `yaml:"types"`
	Roots     []RootDef `yaml:"roots"`
	Supported []TypeRef `yaml:"supported,omitempty"`
}

// TypeDef declares one mapping node.
type TypeDef struct {
	// Name is the graph-local identifier other defs reference.
	Name string `yaml:"name"`
	// Shape is one of element, attribute, array, choice, any, enum,
	// primitive.
	Shape string `yaml:"shape"`
	// Type is the qualified runtime type, e.g. "catalog.Library".
	Type string `yaml:"type,omitempty"`
	// Fields are the members of an element shape.
	Fields []FieldDef `yaml:"fields,omitempty"`
	// Item references the element type of an array shape.
	Item string `yaml:"item,omitempty"`
	// Arms reference the alternatives of a choice shape.
	Arms []string `yaml:"arms,omitempty"`
	// Values are the admissible values of an enum shape.
	Values []string `yaml:"values,omitempty"`
}

// FieldDef declares one member of an element shape.
type FieldDef struct {
	Name      string `yaml:"name"`
	Namespace string `yaml:"namespace,omitempty"`
	// Type references a TypeDef by name.
	Type string `yaml:"type"`
}

// RootDef declares one root mapping.
type RootDef struct {
	Key       string `yaml:"key"`
	Element   string `yaml:"element"`
	Namespace string `yaml:"namespace,omitempty"`
	// Type references a TypeDef by name.
	Type      string `yaml:"type"`
	Members   bool   `yaml:"members,omitempty"`
	WriteOnly bool   `yaml:"write_only,omitempty"`
}

// TypeRef names a runtime type in the supported list.
type TypeRef struct {
	// Type is the qualified runtime type name.
	Type string `yaml:"type"`
	// Exported overrides the default visibility derived from the bare
	// name's casing.
	Exported *bool `yaml:"exported,omitempty"`
	// Open marks a generic type with free type parameters.
	Open bool `yaml:"open,omitempty"`
}
