// Package gen orchestrates one generation run end to end.
//
// A run takes the root mappings and supported types, drives a write and a
// read generation session to fixpoint, builds the shared base and
// per-root typed-serializer artifacts, and assembles the final contract.
// Runs either complete fully or fail with no contract; the per-run
// registries are never reused.
package gen
