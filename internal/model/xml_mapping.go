package model

// Accessor is the public XML name under which a root mapping's data
// appears in a document.
type Accessor struct {
	// Name is the XML local name of the root element.
	Name string
	// Namespace is the XML namespace URI, empty for unqualified roots.
	Namespace string
}

// XmlMapping is a root-level mapping, the unit a caller asks to serialize.
type XmlMapping struct {
	// Key is the stable lookup key for contract tables. Keys must be
	// unique across the roots of one generation run.
	Key string
	// Accessor is the public name/namespace of the root element.
	Accessor Accessor
	// Root is the mapping node describing the root shape.
	Root *TypeMapping
	// Members marks a multi-member root: Serialize converts its single
	// object argument to array-of-object form before delegating.
	Members bool
	// WriteOnly suppresses read procedure generation for this root; its
	// serializer has no Deserialize support.
	WriteOnly bool
}

// Any reports whether the root shape accepts arbitrary content, in which
// case the serializer's type-match test is unconditionally true.
func (x *XmlMapping) Any() bool {
	return x.Root != nil && x.Root.Kind == KindAny
}
