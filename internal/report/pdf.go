package report

import (
	_ "embed"
	"io"
	"os"

	"github.com/go-pdf/fpdf"
)

const (
	pageMargin = 15.0
	rowHeight  = 8.0
	fontFamily = "dejavu"
)

// Unicode fonts for all report text. The core PDF fonts stop at cp1252.
var (
	//go:embed fonts/DejaVuSansCondensed.ttf
	fontRegular []byte
	//go:embed fonts/DejaVuSansCondensed-Bold.ttf
	fontBold []byte
	//go:embed fonts/DejaVuSansCondensed-Oblique.ttf
	fontItalic []byte
)

var headerFill = [3]int{237, 63, 39}

func writePDF(w io.Writer, doc *Document, logoPath string) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	pdf.SetCompression(false)
	pdf.SetCatalogSort(true)
	pdf.SetCreationDate(doc.GeneratedAt)
	pdf.SetModificationDate(doc.GeneratedAt)
	pdf.SetTitle(doc.Title, true)
	pdf.SetAuthor(doc.User, true)

	pdf.AddUTF8FontFromBytes(fontFamily, "", fontRegular)
	pdf.AddUTF8FontFromBytes(fontFamily, "B", fontBold)
	pdf.AddUTF8FontFromBytes(fontFamily, "I", fontItalic)

	for i, page := range doc.Pages {
		pdf.AddPage()
		if i == 0 {
			pdfHeader(pdf, doc, logoPath)
		}
		for _, s := range page.Sections {
			pdfSection(pdf, s)
		}
	}

	if err := pdf.Error(); err != nil {
		return err
	}
	return pdf.Output(w)
}

func pdfHeader(pdf *fpdf.Fpdf, doc *Document, logoPath string) {
	if logoPath != "" {
		if _, err := os.Stat(logoPath); err == nil {
			pdf.ImageOptions(logoPath, 90, 5, 30, 0, false, fpdf.ImageOptions{ReadDpi: true}, 0, "")
			pdf.SetY(25)
		}
	}

	pdf.SetFont(fontFamily, "B", 20)
	pdf.CellFormat(0, 12, doc.Title, "", 1, "C", false, 0, "")

	pdf.SetFont(fontFamily, "", 10)
	pdf.CellFormat(0, 6, "Generated on "+doc.GeneratedOn, "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, "User: "+doc.User, "", 1, "C", false, 0, "")
	pdf.Ln(6)
}

func pdfSection(pdf *fpdf.Fpdf, s Section) {
	if s.Heading != "" {
		pdf.SetFont(fontFamily, "B", 14)
		pdf.CellFormat(0, 10, s.Heading, "", 1, "L", false, 0, "")
	}

	switch {
	case s.Table != nil:
		pdfTable(pdf, s.Table)
	case s.Placeholder != "":
		pdf.SetFont(fontFamily, "I", 10)
		pdf.CellFormat(0, rowHeight, s.Placeholder, "", 1, "L", false, 0, "")
	}

	if len(s.Footer) > 0 {
		pdf.Ln(2)
		pdf.SetFont(fontFamily, "B", 10)
		for _, line := range s.Footer {
			pdf.CellFormat(0, 6, line, "", 1, "L", false, 0, "")
		}
	}
	pdf.Ln(6)
}

func pdfTable(pdf *fpdf.Fpdf, t *Table) {
	pdf.SetFont(fontFamily, "B", 10)
	pdf.SetFillColor(headerFill[0], headerFill[1], headerFill[2])
	pdf.SetTextColor(255, 255, 255)
	for _, c := range t.Columns {
		pdf.CellFormat(c.Width, rowHeight, c.Header, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetTextColor(0, 0, 0)
	for _, row := range t.Rows {
		for i, c := range t.Columns {
			style := ""
			if c.Bold {
				style = "B"
			}
			pdf.SetFont(fontFamily, style, 10)
			value := ""
			if i < len(row) {
				value = row[i]
			}
			pdf.CellFormat(c.Width, rowHeight, value, "1", 0, pdfAlign(c.Align), false, 0, "")
		}
		pdf.Ln(-1)
	}
}

func pdfAlign(a Align) string {
	switch a {
	case AlignCenter:
		return "C"
	case AlignRight:
		return "R"
	}
	return "L"
}
