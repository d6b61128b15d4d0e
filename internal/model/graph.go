package model

// MappingID is a stable handle for one TypeMapping within its Graph.
// The zero value is never assigned.
type MappingID uint32

// TypeMapping describes one data shape. Nodes are created through
// Graph.NewMapping and compare by identity; two structurally equal nodes
// are still distinct mappings.
type TypeMapping struct {
	id MappingID

	Kind Kind
	// TypeName is the artifact-facing name of the mapped data type,
	// e.g. "Library" or "string".
	TypeName string
	// Type is the runtime type this mapping describes, when known.
	// Leaf mappings for anonymous shapes may leave it nil.
	Type *RuntimeType

	// Fields holds the child mappings of a KindElement node, in
	// declaration order.
	Fields []Field
	// Item is the element mapping of a KindArray node.
	Item *TypeMapping
	// Arms are the alternatives of a KindChoice node.
	Arms []*TypeMapping
	// Values are the admissible textual values of a KindEnum node.
	Values []string
}

// ID returns the handle assigned by the owning Graph.
func (m *TypeMapping) ID() MappingID { return m.id }

// Field is one element or attribute member of a composite mapping.
type Field struct {
	// Name is the XML local name of the member.
	Name string
	// Namespace is the XML namespace URI, empty for unqualified members.
	Namespace string
	// Mapping describes the member's own shape. A Field whose mapping is
	// KindAttribute or KindPrimitive is emitted inline by the parent.
	Mapping *TypeMapping
}

// Graph is the arena owning all TypeMapping nodes of one generation run.
// It is built once by the mapping-construction side and read-only afterward.
type Graph struct {
	nodes []*TypeMapping
}

// NewGraph returns an empty mapping graph.
func NewGraph() *Graph {
	return &Graph{}
}

// NewMapping allocates a node in the arena and assigns its handle.
func (g *Graph) NewMapping(kind Kind, typeName string) *TypeMapping {
	m := &TypeMapping{
		id:       MappingID(len(g.nodes) + 1),
		Kind:     kind,
		TypeName: typeName,
	}
	g.nodes = append(g.nodes, m)

	return m
}

// Len returns the number of nodes in the graph.
func (g *Graph) Len() int { return len(g.nodes) }

// Mapping returns the node for a handle, or nil for an unknown one.
func (g *Graph) Mapping(id MappingID) *TypeMapping {
	idx := int(id) - 1
	if idx < 0 || idx >= len(g.nodes) {
		return nil
	}

	return g.nodes[idx]
}
