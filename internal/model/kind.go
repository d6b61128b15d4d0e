package model

//go:generate go tool stringer -type=Kind -output=kind_string.go

// Kind is the shape of a TypeMapping node.
type Kind int

const (
	_ Kind = iota // skip zero value, use it as a default (invalid) value for Kind

	// KindPrimitive is a scalar leaf; no procedure is generated for it.
	KindPrimitive
	// KindElement is a composite shape serialized as an XML element with
	// child element/attribute fields.
	KindElement
	// KindAttribute is a scalar serialized as an XML attribute.
	KindAttribute
	// KindArray is a repeated shape; Item describes the element mapping.
	KindArray
	// KindChoice selects exactly one of several arm mappings.
	KindChoice
	// KindAny accepts arbitrary XML content.
	KindAny
	// KindEnum is a closed set of textual values.
	KindEnum

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// NeedsProcedure reports whether mappings of this kind get their own
// generated read/write procedures. Primitive and attribute leaves are
// emitted inline by their parent; any content is handled by the
// reader/writer primitives directly.
func (k Kind) NeedsProcedure() bool {
	switch k {
	case KindElement, KindArray, KindChoice, KindEnum:
		return true
	default:
		return false
	}
}
