package validation

import (
	"regexp"
	"strings"
	"time"
)

// Validator provides common validation utilities
type Validator struct {
	isoDateRegex *regexp.Regexp
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{
		isoDateRegex: regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`),
	}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidISODate checks if a string is a well-formed calendar date in
// YYYY-MM-DD form
func (v *Validator) IsValidISODate(s string) bool {
	if !v.isoDateRegex.MatchString(s) {
		return false
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// IsPositiveHours checks if a decimal hour amount is strictly positive
func (v *Validator) IsPositiveHours(hours float64) bool {
	return hours > 0
}

// IsValidEntryID checks if an entry ID is valid (positive)
func (v *Validator) IsValidEntryID(id int64) bool {
	return id > 0
}

// TrimAndValidateString trims whitespace and returns the cleaned string
func (v *Validator) TrimAndValidateString(s string) string {
	return strings.TrimSpace(s)
}
