package cli

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"control-horas/internal/domain"
)

func TestDeleteCommand_Execute(t *testing.T) {
	t.Run("should delete an existing entry", func(t *testing.T) {
		app := setupTestApp(t)
		ctx := context.Background()
		app.LoadSession(ctx)

		entry, err := app.services.SessionService.Add(ctx, domain.EntryInput{
			Mode:     domain.ModeManual,
			TripType: domain.TripRendicion,
			Date:     "2024-03-07",
			Hours:    1,
		})
		require.NoError(t, err)

		err = NewDeleteCommand(app).Execute(ctx, []string{strconv.FormatInt(entry.ID, 10)})
		require.NoError(t, err)

		assert.Empty(t, app.services.SessionService.Entries())
	})

	t.Run("should fail for an unknown id", func(t *testing.T) {
		app := setupTestApp(t)
		ctx := context.Background()
		app.LoadSession(ctx)

		err := NewDeleteCommand(app).Execute(ctx, []string{"12345"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})

	t.Run("should reject a non-numeric id", func(t *testing.T) {
		app := setupTestApp(t)
		ctx := context.Background()

		err := NewDeleteCommand(app).Execute(ctx, []string{"abc"})

		require.Error(t, err)
	})

	t.Run("should require exactly one argument", func(t *testing.T) {
		app := setupTestApp(t)
		ctx := context.Background()

		err := NewDeleteCommand(app).Execute(ctx, nil)

		require.Error(t, err)
	})
}
