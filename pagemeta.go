// Package pagemeta extracts structured metadata (title, description,
// canonical URL, representative image, and arbitrary custom categories) from
// HTML documents. It is not a fetcher: callers supply the raw markup and an
// optional source URL, and receive an immutable Result holding ordered
// candidate values per category.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, trafilatura/) or their
// concern (pipeline/).
package pagemeta
