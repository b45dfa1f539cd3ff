// Package format holds the pure display-string helpers shared by the CLI,
// the TUI and the PDF report.
package format

import (
	"fmt"
	"math"
	"strings"

	"control-horas/internal/errors"
)

// DefaultCurrencySymbol is used when no symbol is configured.
const DefaultCurrencySymbol = "$"

// Duration formats a second count as HH:MM:SS. Fields are zero-padded to two
// digits; the hour field grows beyond two digits instead of truncating.
func Duration(totalSeconds int) string {
	if totalSeconds < 0 {
		totalSeconds = 0
	}
	h := totalSeconds / 3600
	m := (totalSeconds % 3600) / 60
	s := totalSeconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// DisplayDuration formats decimal hours as "2h 30m", dropping the minute part
// when it is zero. Minute rounding that lands on 60 carries into the hour
// field, so "1h 60m" can never be produced.
func DisplayDuration(totalHours float64) string {
	if totalHours < 0 {
		totalHours = 0
	}
	h := int(math.Floor(totalHours))
	m := int(math.Round((totalHours - math.Floor(totalHours)) * 60))
	if m == 60 {
		h++
		m = 0
	}
	if m > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dh", h)
}

// DateForDisplay converts an ISO date (YYYY-MM-DD) to the display form
// DD/MM/YYYY. Malformed input is rejected rather than reordered blindly;
// callers are expected to validate dates before they reach an Entry.
func DateForDisplay(isoDate string) (string, error) {
	parts := strings.Split(isoDate, "-")
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return "", errors.NewInvalidInputError("date", isoDate, "expected YYYY-MM-DD")
	}
	return fmt.Sprintf("%s/%s/%s", parts[2], parts[1], parts[0]), nil
}

// Currency formats an amount with the given symbol and a fixed two-decimal
// fraction. No thousands separators, no locale handling.
func Currency(symbol string, amount float64) string {
	if symbol == "" {
		symbol = DefaultCurrencySymbol
	}
	return fmt.Sprintf("%s%.2f", symbol, amount)
}
