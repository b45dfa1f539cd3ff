package services

import (
	"context"
	"log/slog"
	"strconv"

	"control-horas/internal/domain"
	"control-horas/internal/errors"
	"control-horas/internal/repository"
	"control-horas/internal/validation"
)

// sessionServiceImpl implements the SessionService interface. It is the
// exclusive owner of the in-memory entry collection; the repository owns the
// durable copy and is the source of truth at startup.
type sessionServiceImpl struct {
	repo           repository.Repository
	entryService   EntryService
	calc           CalculationService
	entryValidator *validation.EntryValidator
	entries        []*domain.Entry
}

// NewSessionService creates a new SessionService instance
func NewSessionService(repo repository.Repository, entryService EntryService, calc CalculationService) SessionService {
	return &sessionServiceImpl{
		repo:           repo,
		entryService:   entryService,
		calc:           calc,
		entryValidator: validation.NewEntryValidator(),
		entries:        make([]*domain.Entry, 0),
	}
}

// Load populates the collection from storage. A read failure is recovered
// locally: the session starts with an empty collection and the failure is
// only logged, never surfaced. Individual rows that fail structural
// validation are dropped the same way.
func (s *sessionServiceImpl) Load(ctx context.Context) {
	entries, err := s.repo.LoadEntries(ctx)
	if err != nil {
		slog.Warn("failed to load entries, starting empty", "error", err)
		s.entries = make([]*domain.Entry, 0)
		return
	}
	loaded := make([]*domain.Entry, 0, len(entries))
	for _, entry := range entries {
		if err := s.entryValidator.ValidateEntry(*entry); err != nil {
			slog.Warn("dropping invalid stored entry", "id", entry.ID, "error", err)
			continue
		}
		loaded = append(loaded, entry)
	}
	s.entries = loaded
}

// Entries returns the current collection, most recent first
func (s *sessionServiceImpl) Entries() []*domain.Entry {
	return s.entries
}

// Totals aggregates cost and hours over the current collection
func (s *sessionServiceImpl) Totals() domain.Totals {
	return s.calc.Totals(s.entries)
}

// Add creates an entry through the factory, prepends it and persists it.
// Validation failures abort before any state change. When the persistence
// write fails the in-memory change is retained and the failure is returned
// for the caller to surface.
func (s *sessionServiceImpl) Add(ctx context.Context, input domain.EntryInput) (*domain.Entry, error) {
	entry, err := s.entryService.CreateEntry(input)
	if err != nil {
		return nil, err
	}

	s.entries = append([]*domain.Entry{entry}, s.entries...)

	if err := s.repo.SaveEntry(ctx, entry); err != nil {
		return entry, err
	}
	return entry, nil
}

// Delete removes an entry by ID from the collection and from storage
func (s *sessionServiceImpl) Delete(ctx context.Context, id int64) error {
	if err := s.entryValidator.ValidateEntryID(id); err != nil {
		return err
	}

	index := -1
	for i, entry := range s.entries {
		if entry.ID == id {
			index = i
			break
		}
	}
	if index == -1 {
		return errors.NewNotFoundError("entry", strconv.FormatInt(id, 10))
	}

	s.entries = append(s.entries[:index], s.entries[index+1:]...)

	return s.repo.DeleteEntry(ctx, id)
}

// ResetMonth clears the entire collection
func (s *sessionServiceImpl) ResetMonth(ctx context.Context) error {
	if err := s.repo.ClearEntries(ctx); err != nil {
		return err
	}
	s.entries = make([]*domain.Entry, 0)
	return nil
}

// Theme reads the persisted preference, defaulting to dark on any failure
func (s *sessionServiceImpl) Theme(ctx context.Context) bool {
	dark, err := s.repo.LoadThemePreference(ctx)
	if err != nil {
		slog.Warn("failed to load theme preference, defaulting to dark", "error", err)
		return true
	}
	return dark
}

// SetTheme persists the preference best-effort; failures are non-fatal
func (s *sessionServiceImpl) SetTheme(ctx context.Context, dark bool) {
	if err := s.repo.SaveThemePreference(ctx, dark); err != nil {
		slog.Warn("failed to save theme preference", "error", err, "dark", dark)
	}
}
