// Package roster loads the training roster from its JSON file form.
package roster

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ArjunAlluri/TrainingStatusApp/internal/app"

	"github.com/rs/zerolog/log"
)

// LoadFile reads and decodes a roster JSON file: an array of people, each
// with a completion history. Date strings are not validated here; the
// resolver owns date parsing and its failure policy.
func LoadFile(path string) ([]app.Person, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster file %s: %w", path, err)
	}

	var roster []app.Person
	if err := json.Unmarshal(data, &roster); err != nil {
		return nil, fmt.Errorf("failed to parse roster file %s: %w", path, err)
	}

	log.Debug().
		Str("path", path).
		Int("people", len(roster)).
		Msg("Loaded roster from file")

	return roster, nil
}
