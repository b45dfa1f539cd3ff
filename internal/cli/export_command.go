package cli

import (
	"context"
	"fmt"

	"control-horas/internal/pdf"
)

// ExportCommand handles the export command
type ExportCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewExportCommand creates a new export command handler
func NewExportCommand(app *App) *ExportCommand {
	return &ExportCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute renders the current collection to a PDF report. An optional
// argument overrides the generated filename.
func (c *ExportCommand) Execute(ctx context.Context, args []string) error {
	reports := c.app.services.ReportService
	entries := c.app.services.SessionService.Entries()

	doc := pdf.NewDocument(c.app.config.Report.PageWidth)
	if err := reports.RenderReport(entries, doc); err != nil {
		return c.errorHandler.Handle("export report", err)
	}

	path := reports.ExportFilename()
	if len(args) > 0 {
		path = args[0]
	}

	if err := doc.WriteFile(path); err != nil {
		return c.errorHandler.Handle("export report", err)
	}

	fmt.Printf("Exported %d entries to %s\n", len(entries), path)
	return nil
}
