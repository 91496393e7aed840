package processing

import (
	"fmt"

	"github.com/ArjunAlluri/TrainingStatusApp/internal/app"
	"github.com/ArjunAlluri/TrainingStatusApp/internal/config"

	"github.com/rs/zerolog/log"
)

// ReportWriter is the sink for generated reports
type ReportWriter interface {
	WriteCompletionCounts(counts []app.TrainingCount) error
	WriteFiscalYearCompletions(completions map[string][]string) error
	WriteExpiringTrainings(expirations []app.PersonExpirations) error
}

// ReportProcessor runs the three training reports over a roster
type ReportProcessor struct {
	writer ReportWriter
	params *config.ReportParams
}

// NewReportProcessor creates a ReportProcessor with a writer dependency for testability
func NewReportProcessor(writer ReportWriter, params *config.ReportParams) *ReportProcessor {
	return &ReportProcessor{
		writer: writer,
		params: params,
	}
}

// Run resolves the roster once and feeds the shared resolved view into each
// report generator. Any malformed date aborts before the first report is
// written; a writer failure aborts before later reports run.
func (rp *ReportProcessor) Run(roster []app.Person) error {
	resolved, err := ResolveRoster(roster)
	if err != nil {
		return err
	}

	log.Debug().
		Int("people", len(resolved)).
		Msg("Resolved most-recent completions for roster")

	counts := CountCompletions(resolved)
	if err := rp.writer.WriteCompletionCounts(counts); err != nil {
		return fmt.Errorf("failed to write completion counts: %w", err)
	}
	log.Info().
		Int("trainings", len(counts)).
		Msg("Completed training count report")

	fiscal := ListFiscalYear(resolved, rp.params.FiscalYear, rp.params.Trainings)
	if err := rp.writer.WriteFiscalYearCompletions(fiscal); err != nil {
		return fmt.Errorf("failed to write fiscal year completions: %w", err)
	}
	log.Info().
		Int("fiscal_year", rp.params.FiscalYear).
		Int("trainings", len(fiscal)).
		Msg("Completed fiscal year report")

	reference, err := rp.params.Reference()
	if err != nil {
		return err
	}

	expirations := ClassifyExpirations(resolved, reference, rp.params.ExpiryHorizonDays)
	if err := rp.writer.WriteExpiringTrainings(expirations); err != nil {
		return fmt.Errorf("failed to write expiring trainings: %w", err)
	}
	log.Info().
		Int("people", len(expirations)).
		Time("reference_date", reference).
		Msg("Completed expiring trainings report")

	return nil
}
