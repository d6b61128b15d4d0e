// Package artifact defines the generated units produced by a run and the
// bookkeeping around their names.
//
// Artifacts come in two forms: procedures (name, signature, op body) and
// class-like artifacts (name, constructor, member procedures). Both are
// registered once and never mutated afterward.
//
// The Allocator makes procedure creation idempotent within a scope:
// re-requesting an existing (scope, name) pair returns the original
// procedure and, in validating allocators, asserts the requested signature
// matches the stored one. This lets independent emitters share helper
// procedures without coordinating ahead of time.
package artifact
