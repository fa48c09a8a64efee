// Package fbmarket provides a CLI-based toolkit for extracting structured
// listing records from Facebook Marketplace pages. It drives a headless
// browser to render search and item pages, then turns the rendered visible
// text into listing summaries and listing details using positional
// heuristics, with optional persistence for tracking listings across runs.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., rod/, sqlite/, goquery/).
package fbmarket
