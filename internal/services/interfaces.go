package services

import (
	"context"
	"time"

	"control-horas/internal/domain"
)

// Clock abstracts wall-clock reads so the entry and report services stay
// independently testable.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock backed by time.Now.
type SystemClock struct{}

// Now returns the current wall-clock time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// FontStyle selects the typeface variant on a Canvas.
type FontStyle int

const (
	FontNormal FontStyle = iota
	FontBold
)

// Canvas is the abstract drawing surface the report generator renders onto.
// Coordinates are layout units on a fixed-width page (millimeters on A4 for
// the PDF implementation). The generator owns the vertical cursor and calls
// AddPage explicitly; implementations only draw.
type Canvas interface {
	AddPage()
	SetFont(style FontStyle, size float64)
	SetTextColor(r, g, b int)
	SetDrawColor(r, g, b int)
	Text(x, y float64, s string)
	TextCentered(y float64, s string)
	Line(x1, y1, x2, y2 float64)
}

// CalculationService holds the pure billing arithmetic: mode-aware duration
// conversion, cost computation and list aggregation.
type CalculationService interface {
	// TotalHours converts the mode-dependent duration fields to decimal
	// hours. Non-positive durations and unknown modes are invalid.
	TotalHours(input domain.EntryInput) (float64, error)

	// Cost computes hours times the configured hourly rate.
	Cost(hours float64) float64

	// HourlyRate exposes the configured rate for display and reporting.
	HourlyRate() float64

	// Totals sums cost and hours across the collection. Empty input
	// yields zero totals.
	Totals(entries []*domain.Entry) domain.Totals
}

// EntryService is the validated factory for entries. It performs no I/O and
// mutates no collection; the session service appends and persists.
type EntryService interface {
	CreateEntry(input domain.EntryInput) (*domain.Entry, error)
	FormResetDefaults() domain.FormDefaults
}

// ReportService lays out the paginated billing report on a Canvas.
type ReportService interface {
	RenderReport(entries []*domain.Entry, canvas Canvas) error

	// ExportFilename derives the suggested download name from the
	// current date, e.g. "facturacion_2024-03-07.pdf".
	ExportFilename() string
}

// SessionService owns the in-memory entry collection and orchestrates the
// persistence adapter around it. All access happens from a single logical
// flow; there is no cross-goroutine sharing to coordinate.
type SessionService interface {
	// Load populates the collection from storage. Read failures are
	// recovered locally as an empty collection and never propagate.
	Load(ctx context.Context)

	Entries() []*domain.Entry
	Totals() domain.Totals

	// Add runs the entry factory, prepends the result (most recent
	// first) and persists it. Validation failures abort with no state
	// change. A persistence write failure is returned to the caller but
	// the in-memory change is retained.
	Add(ctx context.Context, input domain.EntryInput) (*domain.Entry, error)

	Delete(ctx context.Context, id int64) error
	ResetMonth(ctx context.Context) error

	// Theme reads the persisted preference, defaulting to dark.
	// SetTheme persists best-effort; failures are logged and swallowed.
	Theme(ctx context.Context) bool
	SetTheme(ctx context.Context, dark bool)
}

// ServiceContainer manages all services and their dependencies
type ServiceContainer struct {
	CalculationService CalculationService
	EntryService       EntryService
	ReportService      ReportService
	SessionService     SessionService
}
