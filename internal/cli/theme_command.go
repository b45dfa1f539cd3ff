package cli

import (
	"context"
	"fmt"

	"control-horas/internal/errors"
)

// ThemeCommand handles the theme command
type ThemeCommand struct {
	app *App
}

// NewThemeCommand creates a new theme command handler
func NewThemeCommand(app *App) *ThemeCommand {
	return &ThemeCommand{app: app}
}

// Execute shows or sets the persisted presentation preference
func (c *ThemeCommand) Execute(ctx context.Context, args []string) error {
	session := c.app.services.SessionService

	if len(args) == 0 {
		if session.Theme(ctx) {
			fmt.Println("dark")
		} else {
			fmt.Println("light")
		}
		return nil
	}

	switch args[0] {
	case "dark":
		session.SetTheme(ctx, true)
	case "light":
		session.SetTheme(ctx, false)
	default:
		return errors.NewInvalidInputError("theme", args[0], "theme must be dark or light")
	}

	fmt.Printf("Theme set to %s\n", args[0])
	return nil
}
