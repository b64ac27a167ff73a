// Package browseruse turns live, rendered web pages into structured
// artifacts for automation and agent pipelines: a depth-bounded DOM snapshot
// annotated with visibility, geometry, and interactivity metadata, and a
// Markdown rendering of the page's main content.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., rod/, html/, sqlite/); the pure
// extraction pipelines live in extract/ and batch orchestration in capture/.
package browseruse
