// Package repository defines the persistence adapter contract shared by the
// interchangeable backends (local SQLite, remote Postgres).
package repository

import (
	"context"

	"control-horas/internal/domain"
)

// Repository is the persistence adapter for the entry collection and the
// theme preference. Implementations return entries most-recent-first; the
// stored order is the display and export order.
type Repository interface {
	// Entry collection
	LoadEntries(ctx context.Context) ([]*domain.Entry, error)
	SaveEntry(ctx context.Context, entry *domain.Entry) error
	SaveEntries(ctx context.Context, entries []*domain.Entry) error
	DeleteEntry(ctx context.Context, id int64) error
	ClearEntries(ctx context.Context) error

	// Theme preference. Loading defaults to dark when nothing is stored.
	LoadThemePreference(ctx context.Context) (bool, error)
	SaveThemePreference(ctx context.Context, dark bool) error

	// Utility
	Close() error
}
