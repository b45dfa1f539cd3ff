package services

import (
	"fmt"

	"control-horas/internal/config"
	"control-horas/internal/domain"
	"control-horas/internal/errors"
	"control-horas/internal/format"
)

// Row spacing and fixed vertical offsets of the report layout, in the same
// units as the page geometry.
const (
	reportTitleY      = 20
	reportSubtitleY   = 28
	reportHeaderRuleY = 32
	reportTableStartY = 50
	reportRowHeight   = 8
	reportHeaderSpace = 10
	reportTotalsGap   = 5
	reportTotalsSpace = 10
	reportFooterSpace = 15
)

// reportServiceImpl implements the ReportService interface
type reportServiceImpl struct {
	calc           CalculationService
	layout         config.ReportConfig
	currencySymbol string
	clock          Clock
}

// NewReportService creates a new ReportService instance
func NewReportService(calc CalculationService, layout config.ReportConfig, currencySymbol string, clock Clock) ReportService {
	return &reportServiceImpl{
		calc:           calc,
		layout:         layout,
		currencySymbol: currencySymbol,
		clock:          clock,
	}
}

// RenderReport lays out the paginated billing table on the canvas: centered
// header, one row per entry in input order, a bold TOTAL row over the whole
// collection and a footer stating the hourly rate.
func (r *reportServiceImpl) RenderReport(entries []*domain.Entry, canvas Canvas) error {
	if len(entries) == 0 {
		return errors.NewEmptyExportSetError()
	}

	rightEdge := r.layout.PageWidth - r.layout.Margin

	canvas.AddPage()

	// Header
	canvas.SetFont(FontNormal, 20)
	canvas.SetTextColor(51, 65, 85)
	canvas.TextCentered(reportTitleY, r.layout.Title)

	canvas.SetFont(FontNormal, 10)
	canvas.SetTextColor(100, 100, 100)
	generated := r.clock.Now().Format("02/01/2006")
	canvas.TextCentered(reportSubtitleY, fmt.Sprintf("Generado: %s", generated))

	canvas.SetDrawColor(51, 65, 85)
	canvas.Line(r.layout.Margin, reportHeaderRuleY, rightEdge, reportHeaderRuleY)

	// Column headers
	y := float64(reportTableStartY)
	canvas.SetFont(FontBold, 11)
	canvas.SetTextColor(0, 0, 0)
	canvas.Text(r.layout.ColDate, y, "Fecha")
	canvas.Text(r.layout.ColTrip, y, "Tipo de Viaje")
	canvas.Text(r.layout.ColDuration, y, "Tiempo")
	canvas.Text(r.layout.ColCost, y, "Costo")

	y += reportHeaderSpace
	canvas.Line(r.layout.Margin, y-2, rightEdge, y-2)
	canvas.SetFont(FontNormal, 11)

	// Entry rows, in stored order. The page-break check runs per row:
	// past the bottom threshold the cursor resets to the top margin on a
	// fresh page before the row is drawn.
	for _, entry := range entries {
		if y > r.layout.BottomThreshold {
			canvas.AddPage()
			y = r.layout.Margin
		}

		canvas.Text(r.layout.ColDate, y, entry.Date)
		canvas.Text(r.layout.ColTrip, y, entry.TripType)
		canvas.Text(r.layout.ColDuration, y, format.DisplayDuration(entry.Hours))
		canvas.Text(r.layout.ColCost, y, format.Currency(r.currencySymbol, entry.Cost))

		y += reportRowHeight
	}

	// Totals across all entries, not just the last page
	totals := r.calc.Totals(entries)

	y += reportTotalsGap
	canvas.SetDrawColor(51, 65, 85)
	canvas.Line(r.layout.Margin, y, rightEdge, y)
	y += reportTotalsSpace

	canvas.SetFont(FontBold, 12)
	canvas.SetTextColor(51, 65, 85)
	canvas.Text(r.layout.ColDate, y, "TOTAL:")
	canvas.Text(r.layout.ColDuration, y, format.DisplayDuration(totals.TotalHours))
	canvas.Text(r.layout.ColCost, y, format.Currency(r.currencySymbol, totals.TotalCost))

	// Footer
	y += reportFooterSpace
	canvas.SetFont(FontNormal, 9)
	canvas.SetTextColor(100, 100, 100)
	rate := format.Currency(r.currencySymbol, r.calc.HourlyRate())
	canvas.TextCentered(y, fmt.Sprintf("Tarifa por hora: %s", rate))

	return nil
}

// ExportFilename derives the suggested download name from the current date
func (r *reportServiceImpl) ExportFilename() string {
	return fmt.Sprintf("facturacion_%s.pdf", r.clock.Now().Format("2006-01-02"))
}
