package services

import (
	"control-horas/internal/config"
	"control-horas/internal/repository"
)

// NewServiceContainer wires all services against the given repository and
// configuration.
func NewServiceContainer(cfg *config.Config, repo repository.Repository, clock Clock) *ServiceContainer {
	calc := NewCalculationService(cfg.Billing.HourlyRate)
	entryService := NewEntryService(calc, clock, cfg.Form.DefaultTripType)
	reportService := NewReportService(calc, cfg.Report, cfg.Billing.CurrencySymbol, clock)
	sessionService := NewSessionService(repo, entryService, calc)

	return &ServiceContainer{
		CalculationService: calc,
		EntryService:       entryService,
		ReportService:      reportService,
		SessionService:     sessionService,
	}
}
