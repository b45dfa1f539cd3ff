package services

import (
	"control-horas/internal/domain"
	"control-horas/internal/errors"
	"control-horas/internal/format"
	"control-horas/internal/validation"
)

// entryServiceImpl implements the EntryService interface
type entryServiceImpl struct {
	calc            CalculationService
	entryValidator  *validation.EntryValidator
	clock           Clock
	defaultTripType string
}

// NewEntryService creates a new EntryService instance
func NewEntryService(calc CalculationService, clock Clock, defaultTripType string) EntryService {
	return &entryServiceImpl{
		calc:            calc,
		entryValidator:  validation.NewEntryValidator(),
		clock:           clock,
		defaultTripType: defaultTripType,
	}
}

// CreateEntry validates raw form input and returns a fully populated Entry.
// The only side effect is the wall-clock read for the identity stamp; the
// caller appends the result to the collection and persists it.
func (s *entryServiceImpl) CreateEntry(input domain.EntryInput) (*domain.Entry, error) {
	if err := s.entryValidator.ValidateEntryInput(input); err != nil {
		return nil, mapInputValidation(err)
	}

	tripLabel, _ := s.entryValidator.ResolveTripLabel(input.TripType, input.CustomTrip)
	displayDate, err := format.DateForDisplay(input.Date)
	if err != nil {
		return nil, errors.NewValidationError("date must be in YYYY-MM-DD form", err)
	}

	totalHours, err := s.calc.TotalHours(input)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now().UnixMilli()
	entry := &domain.Entry{
		ID:        now,
		CreatedAt: now,
		TripType:  tripLabel,
		Date:      displayDate,
		Hours:     totalHours,
		Cost:      s.calc.Cost(totalHours),
	}

	return entry, nil
}

// mapInputValidation translates field-level input failures into the coded
// errors callers key their messages on. Anything without a dedicated code
// surfaces as-is.
func mapInputValidation(err error) error {
	vErr, ok := err.(*validation.ValidationError)
	if !ok {
		return err
	}
	if len(vErr.GetFieldErrors("trip_type")) > 0 {
		return errors.NewMissingTripTypeError()
	}
	if dateErrs := vErr.GetFieldErrors("date"); len(dateErrs) > 0 {
		if dateErrs[0].Type == validation.ErrorTypeRequired {
			return errors.NewMissingDateError()
		}
		return errors.NewValidationError("date must be in YYYY-MM-DD form", vErr)
	}
	return errors.NewValidationError(vErr.GetUserFriendlyMessage(), vErr)
}

// FormResetDefaults returns the canonical empty-form state. Pure except for
// reading the current date.
func (s *entryServiceImpl) FormResetDefaults() domain.FormDefaults {
	return domain.FormDefaults{
		TripType:     s.defaultTripType,
		CustomTrip:   "",
		Hours:        0,
		Minutes:      0,
		TimerSeconds: 0,
		TimerRunning: false,
		Date:         s.clock.Now().Format("2006-01-02"),
	}
}
