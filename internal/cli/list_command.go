package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"control-horas/internal/format"
)

var (
	listHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#94A3B8"))
	listTotalStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#04B575"))
)

// ListCommand handles the list command
type ListCommand struct {
	app *App
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{app: app}
}

const listRowFormat = "%-15s %-12s %-20s %-10s %s\n"

// Execute prints the entry collection, most recent first, with totals
func (c *ListCommand) Execute(ctx context.Context, args []string) error {
	entries := c.app.services.SessionService.Entries()
	if len(entries) == 0 {
		fmt.Println("No entries recorded")
		return nil
	}

	symbol := c.app.config.Billing.CurrencySymbol

	header := fmt.Sprintf(listRowFormat, "ID", "FECHA", "TIPO DE VIAJE", "TIEMPO", "COSTO")
	fmt.Print(listHeaderStyle.Render(header))
	for _, entry := range entries {
		fmt.Printf(listRowFormat,
			fmt.Sprintf("%d", entry.ID),
			entry.Date,
			entry.TripType,
			format.DisplayDuration(entry.Hours),
			format.Currency(symbol, entry.Cost),
		)
	}

	totals := c.app.services.SessionService.Totals()
	total := fmt.Sprintf("TOTAL: %s (%s)",
		format.DisplayDuration(totals.TotalHours),
		format.Currency(symbol, totals.TotalCost),
	)
	fmt.Println()
	fmt.Println(listTotalStyle.Render(total))
	return nil
}
