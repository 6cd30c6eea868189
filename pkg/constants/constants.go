// Package constants holds the fixed heuristics of the pipeline in one
// place so they can be tuned without hunting through the components.
package constants

const (
	// HeadingLines is the estimated number of lines a file-path heading
	// occupies in the rendered document.
	HeadingLines = 2

	// DefaultSkipThresholdPages is how many pages past the budget a
	// candidate file may estimate to before it is skipped outright
	// rather than included with an overflow notice.
	DefaultSkipThresholdPages = 3

	// DefaultContinuationIndent is the number of extra spaces prepended
	// to continuation lines when a long line is wrapped.
	DefaultContinuationIndent = 4

	// MaxFileListInPrompt caps how many file names are shown to the
	// summarization model; the rest are elided with an ellipsis.
	MaxFileListInPrompt = 20
)
