// Package htmlinspect extracts structured metadata from parsed HTML
// documents: link relations, meta tags, OpenGraph properties, and
// arbitrary tag/attribute URL references. Every URL-bearing field in
// the output is resolved to an absolute, canonical form against the
// document's effective base URL.
//
// This package contains domain types, the URL normalizer, and the
// collector front-end following Ben Johnson's Standard Package Layout.
// The parser-backed Document implementation lives in the goquery/
// subdirectory, named after its primary dependency.
package htmlinspect

// Node represents one matched element in a parsed document.
type Node interface {
	// Attrs returns the element's attributes with names lower-cased.
	// The returned map is built fresh per call and may be mutated by
	// the caller.
	Attrs() Attrs
}

// Document is a parsed HTML document with query access. Implementations
// are immutable after construction: the tree, location, and base URL
// never change for the document's lifetime.
type Document interface {
	// Location returns the caller-supplied document location, verbatim.
	Location() string

	// Base returns the document's effective base URL: the first valid
	// <base href>, resolved against the location, or the normalized
	// location itself. Always an absolute URL.
	Base() string

	// ContentHash returns a fingerprint of the raw input, usable for
	// duplicate detection in a processing pipeline.
	ContentHash() uint64

	// Warnings returns advisory diagnostics accumulated during
	// construction, such as an invalid <base href> that was ignored.
	Warnings() []string

	// Find returns all elements matching the CSS selector, in
	// document order.
	Find(selector string) []Node
}

// DocumentConstructor builds a Document from raw HTML text and a
// location URL. The location must itself normalize to an absolute URL.
type DocumentConstructor interface {
	New(html string, location string) (Document, error)
}
