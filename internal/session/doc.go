// Package session provides the demand-driven generation loop for one
// direction (read or write) of a run.
//
// A CodeGen owns the per-run mutable registries: the procedure name
// registry (mapping -> reserved name), the generated set (mappings whose
// bodies are complete), and the pending worklist. Emitters reserve a
// mapping's name before recursing into its dependencies, which is what
// makes cyclic mapping graphs terminate: a cycle's second visit finds the
// name already reserved and simply uses it.
//
// Drain pops the most recently referenced mapping and invokes the emitter
// until no pending mappings remain. The worklist may grow while it is
// being drained; a mapping is queued at most once between first reference
// and generation.
package session
