// Package eurlex provides a client-side toolkit for the EU Cellar repository.
// It builds SPARQL queries over Cellar's metadata, runs them against the
// public endpoint, and retrieves notices and document text for the works
// found.
//
// This package contains domain types, pure query construction and the
// interfaces implemented elsewhere, following Ben Johnson's Standard Package
// Layout. Implementations live in subdirectories named after their primary
// dependency (e.g., http/, goquery/, etree/, sqlite/).
package eurlex
