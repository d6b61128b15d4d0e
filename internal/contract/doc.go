// Package contract builds the queryable output of a generation run.
//
// Per root mapping it produces a typed-serializer class artifact (type
// match test, serialize, optional deserialize) on top of a shared base
// artifact built once per run. The assembler then folds every root into
// one Contract: key-addressed read/write/serializer lookup tables with
// lazy one-time materialization, a supported-type predicate, and
// first-match-wins type dispatch preserving the caller-supplied root
// order.
package contract
