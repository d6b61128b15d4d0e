// Package emit translates mapping nodes into procedure bodies.
//
// Bodies are sequences of abstract ops addressed to the reader/writer
// primitives; this package fixes which ops a shape produces and how
// composite shapes recurse, while the session package owns scheduling.
//
// Shape handling:
//   - element: attributes first, then child elements; composite children
//     become "call" ops on the child's (possibly forward-reserved) name
//   - array: an iterate op around the item conversion
//   - choice: one case per arm
//   - enum: a shared per-type value-table helper, allocated idempotently
//   - any and primitive roots: a single passthrough op
package emit
