package render

import (
	"bytes"

	"github.com/go-pdf/fpdf"

	"resume-builder/resume/model"
)

const (
	pdfMargin     = 18.0
	pdfLineHeight = 5.5
	pdfIndent     = 5.0
	pdfFont       = "Helvetica"
)

// renderPDF lays the document out on A4 pages with the core Helvetica font.
// Text is translated to cp1252; runes outside it degrade to '?'.
func renderPDF(doc model.GeneratedDocument) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin)
	pdf.SetTitle(doc.Title, true)
	pdf.SetCreator("resume-builder", true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()

	applyStyle(pdf, StyleMap["title"])
	pdf.MultiCell(0, 10, tr(doc.Title), "", "L", false)
	if label := doc.Category.Label.String(); label != "" {
		applyStyle(pdf, StyleMap["meta"])
		pdf.MultiCell(0, pdfLineHeight, tr(label), "", "L", false)
	}
	pdf.Ln(4)

	width, _ := pdf.GetPageSize()
	for _, s := range doc.Sections {
		applyStyle(pdf, StyleMap["sectionHeading"])
		pdf.MultiCell(0, 8, tr(s.Heading), "B", "L", false)
		pdf.Ln(1.5)

		applyStyle(pdf, StyleMap["body"])
		for _, b := range sectionBlocks(s) {
			for _, line := range b.Lines {
				if b.Kind == blockList {
					pdf.SetX(pdfMargin)
					pdf.CellFormat(pdfIndent, pdfLineHeight, tr("•"), "", 0, "L", false, 0, "")
					pdf.MultiCell(width-2*pdfMargin-pdfIndent, pdfLineHeight, tr(line), "", "L", false)
					continue
				}
				pdf.MultiCell(0, pdfLineHeight, tr(line), "", "L", false)
			}
			pdf.Ln(1.5)
		}
		pdf.Ln(3)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func applyStyle(pdf *fpdf.Fpdf, style RunStyle) {
	var fontStyle string
	if style.Bold {
		fontStyle += "B"
	}
	if style.Italic {
		fontStyle += "I"
	}
	pdf.SetFont(pdfFont, fontStyle, style.Points())
	r, g, b := style.RGB()
	pdf.SetTextColor(r, g, b)
}
