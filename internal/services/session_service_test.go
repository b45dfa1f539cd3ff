package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"control-horas/internal/config"
	"control-horas/internal/domain"
	"control-horas/internal/errors"
)

func newTestSessionService(repo *fakeRepository) SessionService {
	cfg := config.NewConfig()
	clock := fakeClock{now: testInstant}
	calc := NewCalculationService(cfg.Billing.HourlyRate)
	entrySvc := NewEntryService(calc, clock, cfg.Form.DefaultTripType)
	return NewSessionService(repo, entrySvc, calc)
}

func manualInput(hours, minutes float64) domain.EntryInput {
	return domain.EntryInput{
		Mode:     domain.ModeManual,
		TripType: domain.TripRendicion,
		Date:     "2024-03-07",
		Hours:    hours,
		Minutes:  minutes,
	}
}

func TestSessionService_Load(t *testing.T) {
	t.Run("should populate collection from storage", func(t *testing.T) {
		repo := newFakeRepository()
		repo.entries = []*domain.Entry{
			{ID: 2, CreatedAt: 2, TripType: domain.TripVisita, Date: "07/03/2024", Hours: 1, Cost: 625},
			{ID: 1, CreatedAt: 1, TripType: domain.TripRendicion, Date: "06/03/2024", Hours: 2, Cost: 1250},
		}
		service := newTestSessionService(repo)

		service.Load(context.Background())

		entries := service.Entries()
		require.Len(t, entries, 2)
		assert.Equal(t, int64(2), entries[0].ID)
		assert.Equal(t, int64(1), entries[1].ID)
	})

	t.Run("should start empty when storage read fails", func(t *testing.T) {
		repo := newFakeRepository()
		repo.failLoad = true
		service := newTestSessionService(repo)

		service.Load(context.Background())

		assert.Empty(t, service.Entries())
	})

	t.Run("should drop structurally invalid stored rows", func(t *testing.T) {
		repo := newFakeRepository()
		repo.entries = []*domain.Entry{
			{ID: 3, CreatedAt: 3, TripType: domain.TripVisita, Date: "07/03/2024", Hours: 1, Cost: 625},
			{ID: 2, CreatedAt: 2, TripType: "", Date: "06/03/2024", Hours: 2, Cost: 1250},
			{ID: 1, CreatedAt: 1, TripType: domain.TripRendicion, Date: "", Hours: 0, Cost: 0},
		}
		service := newTestSessionService(repo)

		service.Load(context.Background())

		entries := service.Entries()
		require.Len(t, entries, 1)
		assert.Equal(t, int64(3), entries[0].ID)
	})

	t.Run("should normalize nil result to empty collection", func(t *testing.T) {
		repo := newFakeRepository()
		repo.entries = nil
		service := newTestSessionService(repo)

		service.Load(context.Background())

		assert.NotNil(t, service.Entries())
		assert.Empty(t, service.Entries())
	})
}

func TestSessionService_Add(t *testing.T) {
	t.Run("should prepend new entry and persist it", func(t *testing.T) {
		repo := newFakeRepository()
		service := newTestSessionService(repo)
		service.Load(context.Background())

		first, err := service.Add(context.Background(), manualInput(1, 0))
		require.NoError(t, err)

		second, err := service.Add(context.Background(), manualInput(2, 30))
		require.NoError(t, err)

		entries := service.Entries()
		require.Len(t, entries, 2)
		assert.Equal(t, second.ID, entries[0].ID)
		assert.Equal(t, first.ID, entries[1].ID)
		assert.Equal(t, 2, repo.saveCalls)
		assert.Len(t, repo.entries, 2)
	})

	t.Run("should not change state when validation fails", func(t *testing.T) {
		repo := newFakeRepository()
		service := newTestSessionService(repo)
		service.Load(context.Background())

		input := manualInput(0, 0)
		entry, err := service.Add(context.Background(), input)

		require.Error(t, err)
		assert.Nil(t, entry)
		assert.True(t, errors.HasCode(err, errors.CodeInvalidDuration))
		assert.Empty(t, service.Entries())
		assert.Zero(t, repo.saveCalls)
	})

	t.Run("should retain entry in memory when persistence write fails", func(t *testing.T) {
		repo := newFakeRepository()
		repo.failSave = true
		service := newTestSessionService(repo)
		service.Load(context.Background())

		entry, err := service.Add(context.Background(), manualInput(2, 30))

		require.Error(t, err)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeStorage))
		require.NotNil(t, entry)

		entries := service.Entries()
		require.Len(t, entries, 1)
		assert.Equal(t, entry.ID, entries[0].ID)
	})
}

func TestSessionService_Delete(t *testing.T) {
	t.Run("should remove entry from collection and storage", func(t *testing.T) {
		repo := newFakeRepository()
		service := newTestSessionService(repo)
		service.Load(context.Background())

		entry, err := service.Add(context.Background(), manualInput(1, 0))
		require.NoError(t, err)

		err = service.Delete(context.Background(), entry.ID)
		require.NoError(t, err)

		assert.Empty(t, service.Entries())
		assert.Empty(t, repo.entries)
	})

	t.Run("should return not found for unknown entry", func(t *testing.T) {
		repo := newFakeRepository()
		service := newTestSessionService(repo)
		service.Load(context.Background())

		err := service.Delete(context.Background(), 12345)

		require.Error(t, err)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
	})

	t.Run("should reject non-positive identifier", func(t *testing.T) {
		repo := newFakeRepository()
		service := newTestSessionService(repo)

		err := service.Delete(context.Background(), 0)

		require.Error(t, err)
	})
}

func TestSessionService_ResetMonth(t *testing.T) {
	t.Run("should clear collection and storage", func(t *testing.T) {
		repo := newFakeRepository()
		service := newTestSessionService(repo)
		service.Load(context.Background())

		_, err := service.Add(context.Background(), manualInput(1, 0))
		require.NoError(t, err)

		err = service.ResetMonth(context.Background())
		require.NoError(t, err)

		assert.Empty(t, service.Entries())
		assert.Empty(t, repo.entries)
	})

	t.Run("should keep collection when clear fails", func(t *testing.T) {
		repo := newFakeRepository()
		service := newTestSessionService(repo)
		service.Load(context.Background())

		_, err := service.Add(context.Background(), manualInput(1, 0))
		require.NoError(t, err)

		repo.failClear = true
		err = service.ResetMonth(context.Background())

		require.Error(t, err)
		assert.Len(t, service.Entries(), 1)
	})
}

func TestSessionService_Totals(t *testing.T) {
	t.Run("should aggregate over current collection", func(t *testing.T) {
		repo := newFakeRepository()
		service := newTestSessionService(repo)
		service.Load(context.Background())

		_, err := service.Add(context.Background(), manualInput(2, 30))
		require.NoError(t, err)
		_, err = service.Add(context.Background(), manualInput(1, 0))
		require.NoError(t, err)

		totals := service.Totals()
		assert.InDelta(t, 3.5, totals.TotalHours, 0.0001)
		assert.InDelta(t, 2187.5, totals.TotalCost, 0.0001)
	})
}

func TestSessionService_Theme(t *testing.T) {
	t.Run("should default to dark when nothing persisted", func(t *testing.T) {
		repo := newFakeRepository()
		service := newTestSessionService(repo)

		assert.True(t, service.Theme(context.Background()))
	})

	t.Run("should round-trip persisted preference", func(t *testing.T) {
		repo := newFakeRepository()
		service := newTestSessionService(repo)

		service.SetTheme(context.Background(), false)

		assert.False(t, service.Theme(context.Background()))
	})

	t.Run("should default to dark when read fails", func(t *testing.T) {
		repo := newFakeRepository()
		repo.failTheme = true
		service := newTestSessionService(repo)

		assert.True(t, service.Theme(context.Background()))
	})
}
