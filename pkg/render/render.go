// Package render turns laid-out text into the paged PDF artifact.
// The pipeline only depends on the Renderer interface; the fpdf
// implementation lives in pdf.go so tests can substitute a fake.
package render

import (
	"github.com/arthur-debert/codepdf/pkg/types"
)

// Document is the renderer's input: a title page followed by one
// heading + preformatted block per accepted file, in order.
type Document struct {
	Title      string
	OutputPath string
	Blocks     []types.LayoutBlock
}

// Renderer produces the paged artifact and reports its true page
// count. A page count of zero means the engine could not report one
// ("unknown"). Render failures are fatal to the build: there is no
// partial-document recovery.
type Renderer interface {
	Render(doc Document) (pageCount int, err error)
}
