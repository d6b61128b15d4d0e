// Package model defines the in-memory mapping graph consumed by code
// generation.
//
// Key types:
//   - TypeMapping: one data-shape node; identity is by node, not structure
//   - Graph: arena that owns all nodes and hands out stable MappingID handles
//   - XmlMapping: a root-level mapping with a stable key and an accessor
//   - RuntimeType: descriptor for a runtime type, compared by identity
//
// The graph may contain cycles (self-referential or mutually-referential
// shapes); consumers key their bookkeeping by MappingID rather than by
// structural hashing.
package model
