package validation

import (
	"control-horas/internal/domain"
)

// EntryValidator provides validation for entry creation input
type EntryValidator struct {
	validator *Validator
}

// NewEntryValidator creates a new entry validator
func NewEntryValidator() *EntryValidator {
	return &EntryValidator{
		validator: NewValidator(),
	}
}

// ResolveTripLabel resolves the trip label from the chosen category and the
// optional custom text. For the custom sentinel the trimmed text is used and
// empty text is rejected; any other category passes through verbatim, even
// when it is not one of the fixed set.
func (ev *EntryValidator) ResolveTripLabel(tripType, customTrip string) (string, bool) {
	if tripType == domain.TripCustom {
		trimmed := ev.validator.TrimAndValidateString(customTrip)
		if trimmed == "" {
			return "", false
		}
		return trimmed, true
	}
	if !ev.validator.IsNonEmptyString(tripType) {
		return "", false
	}
	return tripType, true
}

// ValidateEntryInput validates raw form input ahead of entry creation.
// Duration validity is mode-dependent and checked by the calculation
// service, not here.
func (ev *EntryValidator) ValidateEntryInput(input domain.EntryInput) error {
	validationError := NewValidationError()

	if _, ok := ev.ResolveTripLabel(input.TripType, input.CustomTrip); !ok {
		validationError.AddRequiredError("trip_type")
	}

	if input.Date == "" {
		validationError.AddRequiredError("date")
	} else if !ev.validator.IsValidISODate(input.Date) {
		validationError.AddInvalidFormatError("date", input.Date, "YYYY-MM-DD")
	}

	switch input.Mode {
	case domain.ModeManual:
		if input.Hours < 0 {
			validationError.AddInvalidValueError("hours", input.Hours, "must not be negative")
		}
		if input.Minutes < 0 {
			validationError.AddInvalidValueError("minutes", input.Minutes, "must not be negative")
		}
	case domain.ModeTimer:
		if input.TimerSeconds < 0 {
			validationError.AddInvalidValueError("timer_seconds", input.TimerSeconds, "must not be negative")
		}
	default:
		validationError.AddInvalidValueError("mode", string(input.Mode), "must be manual or timer")
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateEntry validates a fully constructed domain.Entry
func (ev *EntryValidator) ValidateEntry(entry domain.Entry) error {
	validationError := NewValidationError()

	if !ev.validator.IsValidEntryID(entry.ID) {
		validationError.AddInvalidValueError("id", entry.ID, "must be a positive integer")
	}
	if !ev.validator.IsNonEmptyString(entry.TripType) {
		validationError.AddRequiredError("trip_type")
	}
	if !ev.validator.IsPositiveHours(entry.Hours) {
		validationError.AddInvalidValueError("hours", entry.Hours, "must be greater than zero")
	}
	if entry.Date == "" {
		validationError.AddRequiredError("date")
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateEntryID validates an entry ID used for lookups and deletes
func (ev *EntryValidator) ValidateEntryID(id int64) error {
	if !ev.validator.IsValidEntryID(id) {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("entry_id", id, "must be a positive integer")
		return validationError
	}
	return nil
}
