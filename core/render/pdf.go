// Package render — PDF renderer.
// Converts the parsed guide into a styled PDF using gofpdf: section
// headings, prose paragraphs, and shaded monospace code blocks.
package render

import (
	"bytes"

	"github.com/jung-kurt/gofpdf"

	"github.com/evaldasg/md--betterspecs-org/core"
)

// PDFRenderer renders the guide as a PDF document.
type PDFRenderer struct{}

// NewPDFRenderer creates a PDFRenderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// Render converts the guide into PDF bytes.
func (r *PDFRenderer) Render(g *core.Guide) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	// Document title from metadata.
	if g.Meta.Title != "" {
		pdf.SetFont("Helvetica", "B", 18)
		pdf.MultiCell(0, 8, g.Meta.Title, "", "L", false)
		pdf.Ln(4)
	}

	// Source line.
	pdf.SetFont("Helvetica", "I", 9)
	pdf.SetTextColor(100, 100, 100)
	pdf.MultiCell(0, 5, "Source: "+g.Meta.Origin, "", "L", false)
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(6)

	for _, section := range g.Sections {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 13)
		pdf.MultiCell(0, 7, section.Title, "", "L", false)
		pdf.Ln(2)

		for _, para := range section.Paragraphs {
			switch para.Kind {
			case core.KindCode:
				writeCodeBlock(pdf, para.Code)
			case core.KindPlain, core.KindLink:
				pdf.SetFont("Helvetica", "", 10)
				pdf.MultiCell(0, 5, para.Text, "", "L", false)
				pdf.Ln(3)
			case core.KindUnrecognized:
				if para.Markdown != "" {
					pdf.SetFont("Helvetica", "", 10)
					pdf.MultiCell(0, 5, para.Text, "", "L", false)
					pdf.Ln(3)
				}
			case core.KindSkip:
				// boilerplate, no output
			}
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for PDF output.
func (r *PDFRenderer) Extension() string {
	return ".pdf"
}

// writeCodeBlock renders a code example with a caption line and a shaded
// monospace body.
func writeCodeBlock(pdf *gofpdf.Fpdf, code *core.CodeExample) {
	pdf.Ln(2)
	pdf.SetFont("Courier", "", 9)
	pdf.SetFillColor(245, 245, 245)
	pdf.MultiCell(0, 4.5, "# "+code.Caption, "", "L", true)
	for _, line := range code.Lines {
		pdf.MultiCell(0, 4.5, line, "", "L", true)
	}
	pdf.Ln(3)
}
