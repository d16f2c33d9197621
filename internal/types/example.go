// Package types provides common type definitions used throughout the showcase CLI.
// This package contains shared types to avoid circular dependencies between packages.
package types

// Example is one discovered gallery example: the metadata extracted from an
// annotated source file plus a reference back to that file.
type Example struct {
	// ID is the slug derived from the source file base name (e.g. "active-search")
	ID string `yaml:"id" json:"id"`
	// Title is the human-readable name shown on the example card
	Title string `yaml:"title" json:"title"`
	// Description explains what the example demonstrates
	Description string `yaml:"description" json:"description"`
	// HTML is the embedded demo markup, one line per captured comment line
	HTML string `yaml:"html" json:"html"`
	// BackendFile is the slash-separated path of the originating source file
	BackendFile string `yaml:"backend_file" json:"backend_file"`
	// HighlightedHTML is derived at render time and never persisted
	HighlightedHTML string `yaml:"-" json:"-"`
}

// Metadata is what a single annotated file yields before it is given an id
// and a source reference.
type Metadata struct {
	Title       string
	Description string
	HTML        string
}
