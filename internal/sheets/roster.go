package sheets

import (
	"context"
	"fmt"
	"strings"

	"github.com/ArjunAlluri/TrainingStatusApp/internal/app"

	"github.com/rs/zerolog/log"
)

// DefaultRosterRange covers the expected sheet layout:
// person | training | completed | expires, one completion per row.
const DefaultRosterRange = "Roster!A:D"

// Column positions within a roster row
const (
	colPerson = iota
	colTraining
	colCompleted
	colExpires
)

// LoadRoster reads the roster sheet and groups its flat completion rows into
// people. Date strings pass through untouched; the resolver owns date
// parsing and its failure policy.
func (c *Client) LoadRoster(ctx context.Context, spreadsheetID, readRange string) ([]app.Person, error) {
	if readRange == "" {
		readRange = DefaultRosterRange
	}

	values, err := c.ReadSheet(ctx, spreadsheetID, readRange)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster sheet: %w", err)
	}

	roster, err := ParseRosterRows(values)
	if err != nil {
		return nil, err
	}

	log.Debug().
		Str("spreadsheet_id", spreadsheetID).
		Str("range", readRange).
		Int("people", len(roster)).
		Msg("Loaded roster from sheet")

	return roster, nil
}

// ParseRosterRows converts flat sheet rows into people with completion
// histories, preserving first-seen person order. A leading header row and
// blank rows are skipped; an empty expires cell means the training never
// expires.
//
// Pure function: No I/O operations, fully testable with direct inputs.
func ParseRosterRows(values [][]interface{}) ([]app.Person, error) {
	var roster []app.Person
	index := make(map[string]int)

	for i, row := range values {
		if len(row) == 0 {
			continue
		}

		person := NewCell(row[colPerson]).String()
		if person == "" {
			continue
		}

		if i == 0 && isHeader(person) {
			continue
		}

		if len(row) <= colCompleted {
			return nil, fmt.Errorf("roster row %d: expected person, training and completed columns, got %d cells", i+1, len(row))
		}

		completion := app.CompletionRecord{
			Name:      NewCell(row[colTraining]).String(),
			Timestamp: NewCell(row[colCompleted]).String(),
		}
		if len(row) > colExpires {
			completion.Expires = NewCell(row[colExpires]).StringPtr()
		}

		if completion.Name == "" || completion.Timestamp == "" {
			return nil, fmt.Errorf("roster row %d: training and completed columns must not be empty", i+1)
		}

		pos, seen := index[person]
		if !seen {
			pos = len(roster)
			index[person] = pos
			roster = append(roster, app.Person{Name: person})
		}
		roster[pos].Completions = append(roster[pos].Completions, completion)
	}

	return roster, nil
}

func isHeader(firstCell string) bool {
	switch strings.ToLower(strings.TrimSpace(firstCell)) {
	case "person", "name":
		return true
	}
	return false
}
