package services

import (
	"control-horas/internal/domain"
	"control-horas/internal/errors"
)

// calculationServiceImpl implements the CalculationService interface
type calculationServiceImpl struct {
	hourlyRate float64
}

// NewCalculationService creates a new CalculationService with the given
// hourly rate. The rate is fixed for the process; historical entries keep
// the cost they were created with.
func NewCalculationService(hourlyRate float64) CalculationService {
	return &calculationServiceImpl{hourlyRate: hourlyRate}
}

// TotalHours converts mode-dependent duration fields to decimal hours
func (c *calculationServiceImpl) TotalHours(input domain.EntryInput) (float64, error) {
	switch input.Mode {
	case domain.ModeManual:
		totalHours := input.Hours + input.Minutes/60
		if totalHours <= 0 {
			return 0, errors.NewInvalidDurationError("please enter a valid time")
		}
		return totalHours, nil
	case domain.ModeTimer:
		if input.TimerSeconds <= 0 {
			return 0, errors.NewInvalidDurationError("please start the timer first")
		}
		return float64(input.TimerSeconds) / 3600, nil
	default:
		return 0, errors.NewInvalidDurationError("unknown input mode")
	}
}

// Cost computes the billable amount for the given decimal hours
func (c *calculationServiceImpl) Cost(hours float64) float64 {
	return hours * c.hourlyRate
}

// HourlyRate returns the configured rate
func (c *calculationServiceImpl) HourlyRate() float64 {
	return c.hourlyRate
}

// Totals sums cost and hours across the collection
func (c *calculationServiceImpl) Totals(entries []*domain.Entry) domain.Totals {
	totals := domain.Totals{}
	for _, entry := range entries {
		totals.TotalCost += entry.Cost
		totals.TotalHours += entry.Hours
	}
	return totals
}
