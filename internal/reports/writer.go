// Package reports emits the generated reports as indented JSON files.
package reports

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ArjunAlluri/TrainingStatusApp/internal/app"

	"github.com/rs/zerolog/log"
)

// Report file names within the output directory
const (
	CompletionCountsFile = "completion_counts.json"
	FiscalYearFile       = "fiscal_year_completions.json"
	ExpiringFile         = "expiring_trainings.json"
)

// FileWriter writes reports into an output directory
type FileWriter struct {
	dir string
}

// NewFileWriter creates a FileWriter, creating the output directory if needed
func NewFileWriter(dir string) (*FileWriter, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}
	return &FileWriter{dir: dir}, nil
}

// Paths returns the full paths of the three report files
func (w *FileWriter) Paths() []string {
	return []string{
		filepath.Join(w.dir, CompletionCountsFile),
		filepath.Join(w.dir, FiscalYearFile),
		filepath.Join(w.dir, ExpiringFile),
	}
}

// WriteCompletionCounts writes the per-training completion count report
func (w *FileWriter) WriteCompletionCounts(counts []app.TrainingCount) error {
	return w.writeJSON(CompletionCountsFile, counts)
}

// WriteFiscalYearCompletions writes the fiscal-year completion roster report
func (w *FileWriter) WriteFiscalYearCompletions(completions map[string][]string) error {
	return w.writeJSON(FiscalYearFile, completions)
}

// WriteExpiringTrainings writes the expired and expiring-soon report
func (w *FileWriter) WriteExpiringTrainings(expirations []app.PersonExpirations) error {
	// Keep the report an array even when nobody qualifies
	if expirations == nil {
		expirations = []app.PersonExpirations{}
	}
	return w.writeJSON(ExpiringFile, expirations)
}

func (w *FileWriter) writeJSON(name string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", name, err)
	}

	path := filepath.Join(w.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	log.Debug().
		Str("path", path).
		Int("bytes", len(data)).
		Msg("Wrote report file")

	return nil
}
