package training

import "time"

// ExpiryStatus classifies a training expiry relative to a reference date
type ExpiryStatus string

const (
	StatusExpired     ExpiryStatus = "expired"
	StatusExpiresSoon ExpiryStatus = "expires soon"
)

// FiscalYearWindow returns the inclusive bounds of fiscal year Y:
// July 1 of Y-1 through June 30 of Y.
func FiscalYearWindow(year int) (start, end time.Time) {
	start = time.Date(year-1, time.July, 1, 0, 0, 0, 0, time.UTC)
	end = time.Date(year, time.June, 30, 0, 0, 0, 0, time.UTC)
	return start, end
}

// InFiscalYear reports whether t falls within fiscal year, both bounds
// inclusive.
//
// Pure function: No I/O operations, fully testable with direct inputs.
func InFiscalYear(t time.Time, year int) bool {
	start, end := FiscalYearWindow(year)
	return !t.Before(start) && !t.After(end)
}

// ClassifyExpiry classifies an expiry date against a reference date:
// StatusExpired when the expiry precedes the reference, StatusExpiresSoon
// when it falls within horizonDays after the reference (both ends
// inclusive). The second return is false when the expiry is far enough out
// that no status applies.
//
// Pure function: No I/O operations, fully testable with direct inputs.
func ClassifyExpiry(expiry, reference time.Time, horizonDays int) (ExpiryStatus, bool) {
	if expiry.Before(reference) {
		return StatusExpired, true
	}

	horizon := reference.AddDate(0, 0, horizonDays)
	if !expiry.After(horizon) {
		return StatusExpiresSoon, true
	}

	return "", false
}
