// Package docsite implements the core of a personal documentation site:
// a hierarchical navigation tree, a markdown fetch/render/cache pipeline
// with stable heading identifiers, a lazily built full-text search index,
// and a scroll-position tracker for generated tables of contents.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goldmark/, goquery/, bluemonday/).
package docsite
