// Package layout reflows file content for a fixed-width rendering:
// lines longer than the configured width are wrapped, continuation
// lines keep the original indentation plus a small extra indent so the
// code still reads as code.
package layout

import (
	"strings"
	"unicode"

	"github.com/arthur-debert/codepdf/pkg/constants"
	"github.com/arthur-debert/codepdf/pkg/types"
)

// Wrapper reflows text to a maximum line width. Widths are counted in
// runes, not bytes.
type Wrapper struct {
	MaxChars int
	// ContinuationIndent is the extra indent added to continuation
	// lines on top of the original line's indentation.
	ContinuationIndent int
}

// NewWrapper creates a wrapper with the default continuation indent.
func NewWrapper(maxChars int) *Wrapper {
	return &Wrapper{
		MaxChars:           maxChars,
		ContinuationIndent: constants.DefaultContinuationIndent,
	}
}

// Wrap splits content on newlines and reflows each over-width line.
// Short lines pass through unchanged. Empty content yields a single
// empty line; no trailing line is invented.
//
// Continuation lines are prefixed with the original indentation plus
// ContinuationIndent spaces. When that prefix alone would consume the
// whole width, a bare ContinuationIndent-space prefix is used instead;
// if even that leaves no room, the rest of the line is dropped. That
// last case only occurs with pathological indentation and is accepted
// lossy behavior, not a defect.
func (w *Wrapper) Wrap(content string) []string {
	var out []string
	for _, line := range strings.Split(content, "\n") {
		out = w.wrapLine(out, line)
	}
	return out
}

func (w *Wrapper) wrapLine(out []string, line string) []string {
	runes := []rune(line)
	if len(runes) <= w.MaxChars {
		return append(out, line)
	}

	indent := leadingWhitespace(runes)

	// First physical line keeps the original text, indentation included.
	out = append(out, string(runes[:w.MaxChars]))
	remaining := []rune(strings.TrimLeftFunc(string(runes[w.MaxChars:]), unicode.IsSpace))

	for len(remaining) > 0 {
		prefix := strings.Repeat(" ", indent+w.ContinuationIndent)
		available := w.MaxChars - len(prefix)
		if available <= 0 {
			// Indentation too deep to honor; fall back to the minimal
			// continuation prefix.
			prefix = strings.Repeat(" ", w.ContinuationIndent)
			available = w.MaxChars - w.ContinuationIndent
		}
		if available <= 0 {
			break
		}

		take := available
		if take > len(remaining) {
			take = len(remaining)
		}
		out = append(out, prefix+string(remaining[:take]))
		remaining = remaining[take:]
	}
	return out
}

// Block wraps one file's content into its display-ready LayoutBlock.
func (w *Wrapper) Block(heading, content string) types.LayoutBlock {
	return types.LayoutBlock{
		Heading: heading,
		Lines:   w.Wrap(content),
	}
}

func leadingWhitespace(runes []rune) int {
	for i, r := range runes {
		if !unicode.IsSpace(r) {
			return i
		}
	}
	return len(runes)
}
