package model

// RuntimeType describes a runtime type known to the host application.
// Descriptors are supplied by the mapping-construction side and compare
// by identity, mirroring the mapping nodes they annotate.
type RuntimeType struct {
	// PkgPath qualifies Name; empty for builtin types.
	PkgPath string
	// Name is the bare type name, e.g. "Library".
	Name string
	// Exported reports whether the type is publicly visible.
	Exported bool
	// Open reports a generic type with free type parameters. Open types
	// are never serializable.
	Open bool
}

// Serializable reports whether a contract may dispatch on this type.
// Nil descriptors, unexported types, and open generics are all treated
// as unsupported regardless of any mapping that names them.
func (t *RuntimeType) Serializable() bool {
	return t != nil && t.Exported && !t.Open
}

// String returns the qualified type name.
func (t *RuntimeType) String() string {
	if t == nil {
		return "<nil>"
	}

	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}
