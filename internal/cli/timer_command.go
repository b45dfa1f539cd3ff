package cli

import (
	"context"

	"control-horas/internal/services"
	"control-horas/internal/tui"
)

// TimerCommand launches the interactive stopwatch screen
type TimerCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewTimerCommand creates a new timer command handler
func NewTimerCommand(app *App) *TimerCommand {
	return &TimerCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the stopwatch screen until the user quits
func (c *TimerCommand) Execute(ctx context.Context) error {
	err := tui.Launch(ctx, c.app.services.SessionService, c.app.config, services.SystemClock{})
	if err != nil {
		return c.errorHandler.Handle("run timer", err)
	}
	return nil
}
