package render

import (
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"

	"github.com/arthur-debert/codepdf/pkg/config"
	"github.com/arthur-debert/codepdf/pkg/errors"
	"github.com/arthur-debert/codepdf/pkg/logging"
)

// PDFRenderer renders documents with the fpdf engine using the
// configured page geometry and fonts.
type PDFRenderer struct {
	cfg *config.Config
}

// NewPDFRenderer creates a renderer bound to the given configuration.
func NewPDFRenderer(cfg *config.Config) *PDFRenderer {
	return &PDFRenderer{cfg: cfg}
}

// Render writes the document to doc.OutputPath and returns the true
// page count reported by the engine.
func (r *PDFRenderer) Render(doc Document) (int, error) {
	logger := logging.GetLogger("render")

	if dir := filepath.Dir(doc.OutputPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return 0, errors.Wrapf(err, errors.ErrRender, "cannot create output directory %s", dir)
		}
	}

	layout := r.cfg.Layout
	pdf := fpdf.New("P", "pt", fpdfPageSize(layout.PageSize), "")
	pdf.SetMargins(layout.Margins.Left, layout.Margins.Top, layout.Margins.Right)
	pdf.SetAutoPageBreak(true, layout.Margins.Bottom)
	pdf.AddPage()

	// Core fonts carry cp1252 text; characters outside it are mapped
	// to their closest representable form.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	r.writeTitle(pdf, tr(doc.Title))

	leading := r.cfg.CodeLeading()
	for _, block := range doc.Blocks {
		// Heading: the file's relative path.
		pdf.Ln(r.cfg.Fonts.FilePath.Size)
		pdf.SetFont(r.cfg.Fonts.FilePath.Family, "B", r.cfg.Fonts.FilePath.Size)
		pdf.MultiCell(0, r.cfg.Fonts.FilePath.Size*1.2, tr(block.Heading), "", "L", false)
		pdf.Ln(leading / 2)

		pdf.SetFont(r.cfg.Fonts.Code.Family, "", r.cfg.Fonts.Code.Size)
		for _, line := range block.Lines {
			pdf.CellFormat(0, leading, tr(line), "", 1, "L", false, 0, "")
		}
	}

	pageCount := pdf.PageCount()

	if err := pdf.OutputFileAndClose(doc.OutputPath); err != nil {
		return 0, errors.Wrapf(err, errors.ErrRender, "failed to write %s", doc.OutputPath)
	}

	logger.Info().
		Str("output", doc.OutputPath).
		Int("pages", pageCount).
		Int("blocks", len(doc.Blocks)).
		Msg("PDF generated")
	return pageCount, nil
}

func (r *PDFRenderer) writeTitle(pdf *fpdf.Fpdf, title string) {
	font := r.cfg.Fonts.Title
	pdf.SetFont(font.Family, "B", font.Size)
	align := "L"
	if font.Alignment == "center" {
		align = "C"
	}
	pdf.CellFormat(0, font.Size*1.4, title, "", 1, align, false, 0, "")
	pdf.Ln(20)
}

// fpdfPageSize maps the config's page-size name onto fpdf's.
func fpdfPageSize(name string) string {
	switch name {
	case "letter", "Letter":
		return "Letter"
	default:
		return "A4"
	}
}
