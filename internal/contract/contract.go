package contract

import (
	"serializer-generator/internal/artifact"
	"serializer-generator/internal/model"
	"serializer-generator/utils"
)

// RootArtifacts pairs one root mapping with the artifacts generated for
// it. ReadProc is empty for write-only roots.
type RootArtifacts struct {
	Root      *model.XmlMapping
	ReadProc  string
	WriteProc string
	Class     *artifact.Class
}

type rootEntry struct {
	key       string
	typ       *model.RuntimeType
	accessor  model.Accessor
	any       bool
	members   bool
	readProc  string
	writeProc string
	class     *artifact.Class
}

// Contract is the queryable registry assembled at the end of a run. Its
// lookup tables are built at most once, on first access, and immutable
// afterward. A Contract is safe to read from a single goroutine; it
// carries no locking because all state is single-assignment after
// assembly.
type Contract struct {
	table     *artifact.Table
	supported []*model.RuntimeType
	// entries preserve the caller-supplied root order; GetSerializer
	// dispatch depends on it.
	entries []rootEntry

	readProcs   utils.Lazy[map[string]string]
	writeProcs  utils.Lazy[map[string]string]
	serializers utils.Lazy[map[string]string]
}

// Assemble builds the contract from the run's roots and supported types.
// Roots sharing a stable key fail immediately with a DuplicateKeyError;
// a partially assembled contract is never returned.
func Assemble(table *artifact.Table, roots []RootArtifacts, supported []*model.RuntimeType) (*Contract, error) {
	seen := make(map[string]struct{}, len(roots))
	entries := make([]rootEntry, 0, len(roots))

	for _, r := range roots {
		if _, dup := seen[r.Root.Key]; dup {
			return nil, &DuplicateKeyError{Key: r.Root.Key}
		}

		seen[r.Root.Key] = struct{}{}

		var typ *model.RuntimeType
		if r.Root.Root != nil {
			typ = r.Root.Root.Type
		}

		entries = append(entries, rootEntry{
			key:       r.Root.Key,
			typ:       typ,
			accessor:  r.Root.Accessor,
			any:       r.Root.Any(),
			members:   r.Root.Members,
			readProc:  r.ReadProc,
			writeProc: r.WriteProc,
			class:     r.Class,
		})
	}

	return &Contract{
		table:     table,
		supported: supported,
		entries:   entries,
	}, nil
}

// Artifacts returns the run's artifact table.
func (c *Contract) Artifacts() *artifact.Table { return c.table }

// Keys returns the root mapping keys in input order.
func (c *Contract) Keys() []string {
	keys := make([]string, 0, len(c.entries))
	for _, e := range c.entries {
		keys = append(keys, e.key)
	}

	return keys
}

// ReadProcedures returns the key -> read procedure name table. Roots
// without a read procedure are omitted, not stored as empty markers.
// The table is materialized on first call and cached permanently.
func (c *Contract) ReadProcedures() map[string]string {
	return c.readProcs.Get(func() map[string]string {
		out := make(map[string]string, len(c.entries))
		for _, e := range c.entries {
			if e.readProc != "" {
				out[e.key] = e.readProc
			}
		}

		return out
	})
}

// WriteProcedures returns the key -> write procedure name table, lazily
// materialized like ReadProcedures.
func (c *Contract) WriteProcedures() map[string]string {
	return c.writeProcs.Get(func() map[string]string {
		out := make(map[string]string, len(c.entries))
		for _, e := range c.entries {
			if e.writeProc != "" {
				out[e.key] = e.writeProc
			}
		}

		return out
	})
}

// TypedSerializers returns the key -> serializer artifact name table,
// lazily materialized. Many consumers never touch this view, which is
// why its construction is deferred.
func (c *Contract) TypedSerializers() map[string]string {
	return c.serializers.Get(func() map[string]string {
		out := make(map[string]string, len(c.entries))
		for _, e := range c.entries {
			out[e.key] = e.class.Name
		}

		return out
	})
}

// CanSerialize reports whether t is in the run's supported-type sequence.
// Nil, unexported, and open generic entries are skipped; duplicates in
// the sequence collapse since the scan stops on the first identity match.
func (c *Contract) CanSerialize(t *model.RuntimeType) bool {
	if !t.Serializable() {
		return false
	}

	for _, s := range c.supported {
		if !s.Serializable() {
			continue
		}

		if s == t {
			return true
		}
	}

	return false
}

// GetSerializer returns a fresh serializer instance for the first root
// mapping, in input order, whose declared type is t. The input order is
// the documented tie-break when several mappings claim the same type.
// Roots with nil, unexported, or open generic types are skipped.
func (c *Contract) GetSerializer(t *model.RuntimeType) (*Serializer, bool) {
	if !t.Serializable() {
		return nil, false
	}

	for i := range c.entries {
		e := &c.entries[i]
		if !e.typ.Serializable() {
			continue
		}

		if e.typ == t {
			return &Serializer{
				class:     e.class,
				accessor:  e.accessor,
				any:       e.any,
				members:   e.members,
				readProc:  e.readProc,
				writeProc: e.writeProc,
			}, true
		}
	}

	return nil, false
}
