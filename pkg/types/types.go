// Package types defines the shared data model passed between the
// discovery, layout, pagination, rendering, and summary stages.
package types

// Candidate is a filesystem entry eligible for inclusion in the
// document, before the pagination estimator has ruled on it.
type Candidate struct {
	// AbsolutePath is the full path used for reading and for matching
	// against absolute ignore entries.
	AbsolutePath string

	// RelativePath is computed against the scan root and is used both
	// for display headings and for ignore matching.
	RelativePath string
}

// ProcessedFile records a file that was actually accepted into the
// document. Only accepted files are summarized and persisted back to
// the ignore file.
type ProcessedFile struct {
	AbsolutePath string
	RelativePath string
}

// LayoutBlock is the wrapped, display-ready representation of one
// file's content plus its heading (the relative path). Every line is
// guaranteed to fit the configured maximum width.
type LayoutBlock struct {
	Heading string
	Lines   []string
}
