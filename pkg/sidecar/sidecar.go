// Package sidecar writes the plain-text metadata file that accompanies
// a rendered document.
package sidecar

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/codepdf/pkg/errors"
	"github.com/arthur-debert/codepdf/pkg/logging"
	"github.com/arthur-debert/codepdf/pkg/types"
)

// Meta is the sidecar's content.
type Meta struct {
	PageCount int
	FileCount int
	Summary   string
}

// PathFor derives the sidecar path from the artifact path:
// listing.pdf -> listing_title.txt.
func PathFor(pdfPath string) string {
	ext := filepath.Ext(pdfPath)
	return strings.TrimSuffix(pdfPath, ext) + "_title.txt"
}

// Write creates the sidecar next to the rendered artifact. Failure is
// a persistence warning for the caller to log; the artifact itself is
// never rolled back.
func Write(fs types.FS, pdfPath string, meta Meta) (string, error) {
	logger := logging.GetLogger("sidecar")

	pages := "unknown"
	if meta.PageCount > 0 {
		pages = fmt.Sprintf("%d", meta.PageCount)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "PDF: %s\n", filepath.Base(pdfPath))
	fmt.Fprintf(&b, "Pages: %s\n", pages)
	fmt.Fprintf(&b, "Files: %d\n", meta.FileCount)
	fmt.Fprintf(&b, "Summary: %s\n", meta.Summary)

	path := PathFor(pdfPath)
	if err := fs.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return "", errors.Wrapf(err, errors.ErrSidecarWrite, "could not create sidecar file %s", path)
	}

	logger.Info().Str("path", path).Msg("Sidecar file created")
	return path, nil
}
