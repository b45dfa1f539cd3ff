package cli

import (
	"context"
	"fmt"

	"control-horas/internal/domain"
	"control-horas/internal/format"
)

// AddCommand handles the add command
type AddCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// AddOptions carries the parsed flag values for a manual entry.
type AddOptions struct {
	TripType   string
	CustomTrip string
	Date       string
	Hours      float64
	Minutes    float64
}

// Execute records a manually timed billing entry
func (c *AddCommand) Execute(ctx context.Context, opts AddOptions) error {
	input := domain.EntryInput{
		Mode:       domain.ModeManual,
		TripType:   opts.TripType,
		CustomTrip: opts.CustomTrip,
		Date:       opts.Date,
		Hours:      opts.Hours,
		Minutes:    opts.Minutes,
	}

	entry, err := c.app.services.SessionService.Add(ctx, input)
	if err != nil {
		// The entry may exist in memory with the write unpersisted; the
		// session service keeps it either way, so just surface the failure.
		return c.errorHandler.Handle("add entry", err)
	}

	fmt.Printf("Added entry %d: %s on %s, %s (%s)\n",
		entry.ID,
		entry.TripType,
		entry.Date,
		format.DisplayDuration(entry.Hours),
		format.Currency(c.app.config.Billing.CurrencySymbol, entry.Cost),
	)
	return nil
}
