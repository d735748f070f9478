// Package siteindex builds a client-side search index for a static HTML
// site. It walks a site directory, extracts title and body text from each
// page, reconstructs breadcrumb paths from a dTree-style navigation
// document, and writes a single search.json artifact consumed by a
// browser-side search page.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, fs/).
package siteindex
