package report

import (
	"errors"
	"io"
	"strings"
	"time"
)

type Format string

const (
	FormatPDF      Format = "pdf"
	FormatXLSX     Format = "xlsx"
	FormatMarkdown Format = "md"
)

var ErrUnknownFormat = errors.New("unknown report format")

// ParseFormat maps a query value to a Format. Empty means PDF.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatPDF:
		return FormatPDF, nil
	case FormatXLSX:
		return FormatXLSX, nil
	case FormatMarkdown, "markdown":
		return FormatMarkdown, nil
	}
	return "", ErrUnknownFormat
}

func (f Format) ContentType() string {
	switch f {
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case FormatMarkdown:
		return "text/markdown; charset=utf-8"
	}
	return "application/pdf"
}

// Filename is money-management-report-YYYY-MM-DD with the format extension.
func Filename(f Format, t time.Time) string {
	return "money-management-report-" + t.Format("2006-01-02") + "." + string(f)
}

// Renderer writes documents. LogoPath, when set, is drawn at the top of the
// first PDF page.
type Renderer struct {
	LogoPath string
}

func (r Renderer) Render(w io.Writer, f Format, doc *Document) error {
	switch f {
	case FormatPDF:
		return writePDF(w, doc, r.LogoPath)
	case FormatXLSX:
		return writeXLSX(w, doc)
	case FormatMarkdown:
		return writeMarkdown(w, doc)
	}
	return ErrUnknownFormat
}
