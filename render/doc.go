// Package render writes the options reference page for a cross-referenced
// [catalogue.Catalogue].
//
// The page lists every label's options, sorted by name, with their
// description, type, parameters, default, and links to the gallery demos and
// test pages that use them. Catalogue text is written verbatim: descriptions
// may contain HTML, and option and label names are used as anchors as-is.
// Empty type, default or description values render as [Placeholder].
//
// Output depends only on the catalogue and label index, so rendering the
// same input twice produces identical bytes.
package render
