package cli

import (
	"context"
	"fmt"
	"strconv"

	"control-horas/internal/errors"
)

// DeleteCommand handles the delete command
type DeleteCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewDeleteCommand creates a new delete command handler
func NewDeleteCommand(app *App) *DeleteCommand {
	return &DeleteCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute removes an entry by its identifier
func (c *DeleteCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("id", "", "usage: horas delete <id>")
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return errors.NewInvalidInputError("id", args[0], "entry id must be a number")
	}

	if err := c.app.services.SessionService.Delete(ctx, id); err != nil {
		return c.errorHandler.Handle("delete entry", err)
	}

	fmt.Printf("Deleted entry %d\n", id)
	return nil
}
