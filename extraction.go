// Package extraction extracts coarse metadata (titles, descriptions,
// images, urls, tags, dates, feeds, authors, videos, addresses) from
// HTML documents. An ordered chain of heuristic techniques runs against
// the document and their partial results are merged into a single
// Extracted record.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., goquery/,
// trafilatura/, http/).
package extraction
