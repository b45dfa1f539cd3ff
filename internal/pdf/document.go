// Package pdf realizes the report generator's Canvas contract on top of an
// A4 PDF document.
package pdf

import (
	"io"

	"github.com/go-pdf/fpdf"

	"control-horas/internal/errors"
	"control-horas/internal/services"
)

const fontFamily = "Helvetica"

// Document is an A4 portrait PDF drawing surface in millimeter units.
// Pagination is owned by the report generator, so the automatic page break
// is disabled.
type Document struct {
	pdf       *fpdf.Fpdf
	translate func(string) string
	pageWidth float64
}

// NewDocument creates an empty document. pageWidth is the layout width in
// millimeters used to center text.
func NewDocument(pageWidth float64) *Document {
	f := fpdf.New("P", "mm", "A4", "")
	f.SetAutoPageBreak(false, 0)

	return &Document{
		pdf: f,
		// The core fonts are cp1252; entry labels carry accented text.
		translate: f.UnicodeTranslatorFromDescriptor(""),
		pageWidth: pageWidth,
	}
}

// AddPage starts a new page.
func (d *Document) AddPage() {
	d.pdf.AddPage()
}

// SetFont selects the typeface variant and size in points.
func (d *Document) SetFont(style services.FontStyle, size float64) {
	styleStr := ""
	if style == services.FontBold {
		styleStr = "B"
	}
	d.pdf.SetFont(fontFamily, styleStr, size)
}

// SetTextColor sets the fill color for subsequent text.
func (d *Document) SetTextColor(r, g, b int) {
	d.pdf.SetTextColor(r, g, b)
}

// SetDrawColor sets the stroke color for subsequent lines.
func (d *Document) SetDrawColor(r, g, b int) {
	d.pdf.SetDrawColor(r, g, b)
}

// Text draws a string with its baseline at the given position.
func (d *Document) Text(x, y float64, s string) {
	d.pdf.Text(x, y, d.translate(s))
}

// TextCentered draws a string horizontally centered on the page.
func (d *Document) TextCentered(y float64, s string) {
	t := d.translate(s)
	x := (d.pageWidth - d.pdf.GetStringWidth(t)) / 2
	d.pdf.Text(x, y, t)
}

// Line draws a straight line between the two points.
func (d *Document) Line(x1, y1, x2, y2 float64) {
	d.pdf.Line(x1, y1, x2, y2)
}

// Output writes the rendered document to the given writer.
func (d *Document) Output(w io.Writer) error {
	if err := d.pdf.Output(w); err != nil {
		return errors.NewStorageWriteError("write pdf", err)
	}
	return nil
}

// WriteFile renders the document to the given path and closes it.
func (d *Document) WriteFile(path string) error {
	if err := d.pdf.OutputFileAndClose(path); err != nil {
		return errors.NewStorageWriteError("write pdf file", err)
	}
	return nil
}
