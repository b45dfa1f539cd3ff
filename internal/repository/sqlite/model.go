package sqlite

import (
	"control-horas/internal/domain"
)

// Entry represents a billable session row as stored in the entries table.
// The ID doubles as the creation timestamp in milliseconds, so ordering by
// created_at descending reproduces the most-recent-first display order.
type Entry struct {
	ID        int64
	CreatedAt int64
	TripType  string
	EntryDate string
	Hours     float64
	Cost      float64
}

// FromDomain converts a domain Entry to its database row form.
func FromDomain(entry *domain.Entry) *Entry {
	return &Entry{
		ID:        entry.ID,
		CreatedAt: entry.CreatedAt,
		TripType:  entry.TripType,
		EntryDate: entry.Date,
		Hours:     entry.Hours,
		Cost:      entry.Cost,
	}
}

// ToDomain converts a database row to the domain Entry.
func (e *Entry) ToDomain() *domain.Entry {
	return &domain.Entry{
		ID:        e.ID,
		CreatedAt: e.CreatedAt,
		TripType:  e.TripType,
		Date:      e.EntryDate,
		Hours:     e.Hours,
		Cost:      e.Cost,
	}
}
