package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
)

// ResetCommand handles the reset command
type ResetCommand struct {
	app          *App
	errorHandler *ErrorHandler
	input        io.Reader
}

// NewResetCommand creates a new reset command handler
func NewResetCommand(app *App) *ResetCommand {
	return &ResetCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
		input:        os.Stdin,
	}
}

// Execute clears the whole entry collection after confirmation. The force
// flag skips the prompt.
func (c *ResetCommand) Execute(ctx context.Context, force bool) error {
	if !force {
		fmt.Print("This removes every entry for the month. Continue? [y/N]: ")
		reader := bufio.NewReader(c.input)
		answer, err := reader.ReadString('\n')
		if err != nil && answer == "" {
			fmt.Println("Reset cancelled")
			return nil
		}
		answer = strings.ToLower(strings.TrimSpace(answer))
		if answer != "y" && answer != "yes" {
			fmt.Println("Reset cancelled")
			return nil
		}
	}

	if err := c.app.services.SessionService.ResetMonth(ctx); err != nil {
		return c.errorHandler.Handle("reset entries", err)
	}

	fmt.Println("All entries removed")
	return nil
}
