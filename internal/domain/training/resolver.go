package training

import (
	"fmt"
	"time"

	"github.com/ArjunAlluri/TrainingStatusApp/internal/app"
)

// TimestampLayout is the roster date format: month/day/year with a four
// digit year, zero-padding optional ("01/15/2024" and "1/15/2024" both parse).
const TimestampLayout = "1/2/2006"

// MalformedDateError reports a roster date that does not match the expected
// MM/DD/YYYY format. Every report depends on date parsing, so this error is
// fatal for the whole run; no partial output is emitted.
type MalformedDateError struct {
	Field string
	Value string
	Err   error
}

func (e *MalformedDateError) Error() string {
	return fmt.Sprintf("malformed %s date %q: %v", e.Field, e.Value, e.Err)
}

func (e *MalformedDateError) Unwrap() error {
	return e.Err
}

// ResolvedCompletion is the single most-recent completion of one training
// for one person, with both dates parsed.
type ResolvedCompletion struct {
	Training     string
	CompletedAt  time.Time
	RawTimestamp string
	ExpiresAt    *time.Time
}

// ParseDate parses a roster date string, labelling parse failures with the
// originating field name.
func ParseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(TimestampLayout, value)
	if err != nil {
		return time.Time{}, &MalformedDateError{Field: field, Value: value, Err: err}
	}
	return t, nil
}

// ResolveMostRecent reduces one person's completion history to a single
// record per training name: the chronologically latest. When two records for
// the same training carry an identical timestamp the later-scanned one wins;
// input order decides, there is no stable tie-break.
//
// Expiry dates are parsed eagerly so that any malformed date in the history
// fails the run before a report is produced.
//
// Pure function: No I/O operations, fully testable with direct inputs.
func ResolveMostRecent(completions []app.CompletionRecord) (map[string]ResolvedCompletion, error) {
	mostRecent := make(map[string]ResolvedCompletion)

	for _, completion := range completions {
		completedAt, err := ParseDate("timestamp", completion.Timestamp)
		if err != nil {
			return nil, err
		}

		var expiresAt *time.Time
		if completion.Expires != nil {
			expiry, err := ParseDate("expires", *completion.Expires)
			if err != nil {
				return nil, err
			}
			expiresAt = &expiry
		}

		best, seen := mostRecent[completion.Name]
		if seen && completedAt.Before(best.CompletedAt) {
			continue
		}

		mostRecent[completion.Name] = ResolvedCompletion{
			Training:     completion.Name,
			CompletedAt:  completedAt,
			RawTimestamp: completion.Timestamp,
			ExpiresAt:    expiresAt,
		}
	}

	return mostRecent, nil
}
