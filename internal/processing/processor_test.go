package processing

import (
	"errors"
	"testing"

	"github.com/ArjunAlluri/TrainingStatusApp/internal/app"
	"github.com/ArjunAlluri/TrainingStatusApp/internal/config"
)

// captureWriter records written reports for assertions
type captureWriter struct {
	counts      []app.TrainingCount
	fiscal      map[string][]string
	expirations []app.PersonExpirations

	countsErr error
	writes    []string
}

func (w *captureWriter) WriteCompletionCounts(counts []app.TrainingCount) error {
	w.writes = append(w.writes, "counts")
	if w.countsErr != nil {
		return w.countsErr
	}
	w.counts = counts
	return nil
}

func (w *captureWriter) WriteFiscalYearCompletions(completions map[string][]string) error {
	w.writes = append(w.writes, "fiscal")
	w.fiscal = completions
	return nil
}

func (w *captureWriter) WriteExpiringTrainings(expirations []app.PersonExpirations) error {
	w.writes = append(w.writes, "expirations")
	w.expirations = expirations
	return nil
}

func TestReportProcessorRun(t *testing.T) {
	roster := []app.Person{
		{Name: "A", Completions: []app.CompletionRecord{
			{Name: "X-Ray Safety", Timestamp: "01/15/2024", Expires: strPtr("01/15/2025")},
		}},
	}

	writer := &captureWriter{}
	processor := NewReportProcessor(writer, config.DefaultReportParams())

	if err := processor.Run(roster); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(writer.writes) != 3 {
		t.Fatalf("expected 3 reports written, got %v", writer.writes)
	}

	if len(writer.counts) != 1 || writer.counts[0].Training != "X-Ray Safety" || writer.counts[0].Count != 1 {
		t.Errorf("unexpected counts %v", writer.counts)
	}

	// 01/15/2024 is in FY2024; the other configured trainings stay as empty keys
	if len(writer.fiscal) != 3 {
		t.Fatalf("expected 3 fiscal keys, got %v", writer.fiscal)
	}
	xray := writer.fiscal["X-Ray Safety"]
	if len(xray) != 1 || xray[0] != "A" {
		t.Errorf("expected X-Ray Safety [A], got %v", xray)
	}
	for _, name := range []string{"Electrical Safety for Labs", "Laboratory Safety Training"} {
		if people, ok := writer.fiscal[name]; !ok || len(people) != 0 {
			t.Errorf("expected empty key %s, got %v (present=%v)", name, people, ok)
		}
	}

	// Expiry 01/15/2025 is over a year past the 2023-10-01 reference
	if len(writer.expirations) != 0 {
		t.Errorf("expected no expirations, got %v", writer.expirations)
	}
}

func TestReportProcessorAbortsOnMalformedDate(t *testing.T) {
	roster := []app.Person{
		{Name: "A", Completions: []app.CompletionRecord{
			{Name: "X-Ray Safety", Timestamp: "15-01-2024"},
		}},
	}

	writer := &captureWriter{}
	processor := NewReportProcessor(writer, config.DefaultReportParams())

	err := processor.Run(roster)

	if err == nil {
		t.Fatal("expected error, got nil")
	}

	// Fail fast: nothing may be written when any date is malformed
	if len(writer.writes) != 0 {
		t.Errorf("expected no reports written, got %v", writer.writes)
	}
}

func TestReportProcessorStopsAfterWriterFailure(t *testing.T) {
	roster := []app.Person{
		{Name: "A", Completions: []app.CompletionRecord{
			{Name: "X-Ray Safety", Timestamp: "01/15/2024"},
		}},
	}

	writer := &captureWriter{countsErr: errors.New("disk full")}
	processor := NewReportProcessor(writer, config.DefaultReportParams())

	err := processor.Run(roster)

	if err == nil {
		t.Fatal("expected error, got nil")
	}

	if len(writer.writes) != 1 || writer.writes[0] != "counts" {
		t.Errorf("expected run to stop after first writer failure, got %v", writer.writes)
	}
}
