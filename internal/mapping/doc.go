// Package mapping provides the YAML description format for mapping
// graphs, its loader, and validation.
//
// The upstream mapping-construction collaborator normally supplies the
// graph in memory; the YAML form exists so the CLI and tests can build
// graphs deterministically without it.
//
// # Schema overview
//
//	version: "1"
//	types:
//	  - name: Library          # graph-local identifier
//	    shape: element         # element|attribute|array|choice|any|enum|primitive
//	    type: catalog.Library  # runtime type, optional
//	    fields:
//	      - name: name
//	        type: String
//	      - name: books
//	        type: Books
//	  - name: Books
//	    shape: array
//	    item: Book
//	  - name: String
//	    shape: primitive
//	roots:
//	  - key: library
//	    element: library
//	    namespace: urn:example
//	    type: Library
//	supported:
//	  - type: catalog.Library
//
// Type references are by graph-local name and may be cyclic; nodes are
// created first and references resolved in a second pass.
package mapping
