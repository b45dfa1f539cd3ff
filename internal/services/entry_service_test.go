package services

import (
	"testing"

	"control-horas/internal/domain"
	"control-horas/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupEntryService() EntryService {
	calc := NewCalculationService(625)
	return NewEntryService(calc, fakeClock{now: testInstant}, domain.TripRendicion)
}

func TestEntryService_CreateEntry(t *testing.T) {
	validManual := domain.EntryInput{
		TripType: domain.TripVisita,
		Date:     "2024-03-07",
		Mode:     domain.ModeManual,
		Hours:    2,
		Minutes:  30,
	}

	t.Run("should create a manual entry with derived fields", func(t *testing.T) {
		service := setupEntryService()

		entry, err := service.CreateEntry(validManual)

		require.NoError(t, err)
		assert.Equal(t, testInstant.UnixMilli(), entry.ID)
		assert.Equal(t, entry.ID, entry.CreatedAt)
		assert.Equal(t, domain.TripVisita, entry.TripType)
		assert.Equal(t, "07/03/2024", entry.Date)
		assert.InDelta(t, 2.5, entry.Hours, 1e-9)
		assert.InDelta(t, 1562.5, entry.Cost, 1e-9)
		assert.True(t, entry.IsValid())
	})

	t.Run("should create a timer entry", func(t *testing.T) {
		service := setupEntryService()

		entry, err := service.CreateEntry(domain.EntryInput{
			TripType:     domain.TripRendicion,
			Date:         "2024-03-07",
			Mode:         domain.ModeTimer,
			TimerSeconds: 5400,
		})

		require.NoError(t, err)
		assert.InDelta(t, 1.5, entry.Hours, 1e-9)
		assert.InDelta(t, 937.5, entry.Cost, 1e-9)
	})

	t.Run("should use trimmed custom trip text", func(t *testing.T) {
		service := setupEntryService()

		entry, err := service.CreateEntry(domain.EntryInput{
			TripType:   domain.TripCustom,
			CustomTrip: "  Viaje al puerto  ",
			Date:       "2024-03-07",
			Mode:       domain.ModeManual,
			Hours:      1,
		})

		require.NoError(t, err)
		assert.Equal(t, "Viaje al puerto", entry.TripType)
	})

	t.Run("should pass unknown fixed categories through", func(t *testing.T) {
		service := setupEntryService()

		entry, err := service.CreateEntry(domain.EntryInput{
			TripType: "Mudanza",
			Date:     "2024-03-07",
			Mode:     domain.ModeManual,
			Hours:    1,
		})

		require.NoError(t, err)
		assert.Equal(t, "Mudanza", entry.TripType)
	})

	t.Run("should fail with missing trip type for blank custom text", func(t *testing.T) {
		service := setupEntryService()

		_, err := service.CreateEntry(domain.EntryInput{
			TripType:   domain.TripCustom,
			CustomTrip: "   ",
			Date:       "2024-03-07",
			Mode:       domain.ModeManual,
			Hours:      2,
		})

		require.Error(t, err)
		assert.True(t, errors.HasCode(err, errors.CodeMissingTripType))
	})

	t.Run("should fail with missing date", func(t *testing.T) {
		service := setupEntryService()

		input := validManual
		input.Date = ""
		_, err := service.CreateEntry(input)

		require.Error(t, err)
		assert.True(t, errors.HasCode(err, errors.CodeMissingDate))
	})

	t.Run("should fail for malformed date", func(t *testing.T) {
		service := setupEntryService()

		input := validManual
		input.Date = "07/03/2024"
		_, err := service.CreateEntry(input)

		require.Error(t, err)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
	})

	t.Run("should fail with invalid duration for zero manual time", func(t *testing.T) {
		service := setupEntryService()

		input := validManual
		input.Hours = 0
		input.Minutes = 0
		_, err := service.CreateEntry(input)

		require.Error(t, err)
		assert.True(t, errors.HasCode(err, errors.CodeInvalidDuration))
	})

	t.Run("should fail for negative manual time", func(t *testing.T) {
		service := setupEntryService()

		input := validManual
		input.Hours = -1
		_, err := service.CreateEntry(input)

		require.Error(t, err)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
	})

	t.Run("should fail with invalid duration for a stopped timer", func(t *testing.T) {
		service := setupEntryService()

		_, err := service.CreateEntry(domain.EntryInput{
			TripType:     domain.TripVisita,
			Date:         "2024-03-07",
			Mode:         domain.ModeTimer,
			TimerSeconds: 0,
		})

		require.Error(t, err)
		assert.True(t, errors.HasCode(err, errors.CodeInvalidDuration))
	})
}

func TestEntryService_FormResetDefaults(t *testing.T) {
	service := setupEntryService()

	defaults := service.FormResetDefaults()

	assert.Equal(t, domain.TripRendicion, defaults.TripType)
	assert.Empty(t, defaults.CustomTrip)
	assert.Zero(t, defaults.Hours)
	assert.Zero(t, defaults.Minutes)
	assert.Zero(t, defaults.TimerSeconds)
	assert.False(t, defaults.TimerRunning)
	assert.Equal(t, "2024-03-07", defaults.Date)
}
