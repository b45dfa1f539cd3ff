package domain

import (
	"strings"
)

// Mode is the input method used to capture a session's duration.
type Mode string

const (
	ModeManual Mode = "manual"
	ModeTimer  Mode = "timer"
)

// Fixed trip categories offered by the form. Any category other than the
// custom sentinel is passed through verbatim; only empty custom text is
// rejected at entry creation.
const (
	TripRendicion = "Rendición"
	TripVisita    = "Visita"
	TripCustom    = "custom"
)

// Entry represents one recorded billable session.
// This is a pure domain model without database-specific concerns.
// Entries are created exclusively through the entry service and are
// immutable afterwards; the only lifecycle operations are delete by ID
// and the bulk month reset.
type Entry struct {
	ID        int64   `json:"id"`         // creation timestamp, millisecond resolution
	CreatedAt int64   `json:"created_at"` // same value as ID at creation
	TripType  string  `json:"trip_type"`
	Date      string  `json:"date"` // display form DD/MM/YYYY, immutable
	Hours     float64 `json:"hours"`
	Cost      float64 `json:"cost"` // hours * rate, computed once at creation
}

// IsValid checks if the entry honors the creation invariants.
func (e Entry) IsValid() bool {
	if e.ID <= 0 || e.CreatedAt <= 0 {
		return false
	}
	if strings.TrimSpace(e.TripType) == "" {
		return false
	}
	if e.Date == "" {
		return false
	}
	return e.Hours > 0
}

// EntryInput carries the raw form state handed to the entry service.
type EntryInput struct {
	TripType     string  `json:"trip_type"`
	CustomTrip   string  `json:"custom_trip"`
	Date         string  `json:"date"` // ISO form YYYY-MM-DD
	Mode         Mode    `json:"mode"`
	Hours        float64 `json:"hours"`
	Minutes      float64 `json:"minutes"`
	TimerSeconds int     `json:"timer_seconds"`
}

// FormDefaults is the canonical empty-form state after a successful
// submit or an explicit reset.
type FormDefaults struct {
	TripType     string  `json:"trip_type"`
	CustomTrip   string  `json:"custom_trip"`
	Hours        float64 `json:"hours"`
	Minutes      float64 `json:"minutes"`
	TimerSeconds int     `json:"timer_seconds"`
	TimerRunning bool    `json:"timer_running"`
	Date         string  `json:"date"` // today, ISO form
}

// Totals is the aggregate over the current entry collection.
type Totals struct {
	TotalCost  float64 `json:"total_cost"`
	TotalHours float64 `json:"total_hours"`
}
