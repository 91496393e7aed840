package processing

import (
	"fmt"
	"sort"
	"time"

	"github.com/ArjunAlluri/TrainingStatusApp/internal/app"
	"github.com/ArjunAlluri/TrainingStatusApp/internal/domain/training"
)

// ResolvedPerson pairs a roster name with that person's most-recent
// completion per training. Computed once per run and shared by all three
// report generators.
type ResolvedPerson struct {
	Name        string
	Completions map[string]training.ResolvedCompletion
}

// ResolveRoster resolves every person's completion history exactly once.
// Any malformed date anywhere in the roster fails the whole run.
func ResolveRoster(roster []app.Person) ([]ResolvedPerson, error) {
	resolved := make([]ResolvedPerson, 0, len(roster))

	for _, person := range roster {
		completions, err := training.ResolveMostRecent(person.Completions)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve completions for %s: %w", person.Name, err)
		}

		resolved = append(resolved, ResolvedPerson{
			Name:        person.Name,
			Completions: completions,
		})
	}

	return resolved, nil
}

// CountCompletions tallies how many people hold each training, counting each
// person at most once per training regardless of how many historical
// completions they had. Output is sorted by training name so the report is
// deterministic.
//
// Pure function: No I/O operations, fully testable with direct inputs.
func CountCompletions(resolved []ResolvedPerson) []app.TrainingCount {
	tally := make(map[string]int)

	for _, person := range resolved {
		for name := range person.Completions {
			tally[name]++
		}
	}

	counts := make([]app.TrainingCount, 0, len(tally))
	for name, count := range tally {
		counts = append(counts, app.TrainingCount{Training: name, Count: count})
	}

	sort.Slice(counts, func(i, j int) bool {
		return counts[i].Training < counts[j].Training
	})

	return counts
}

// ListFiscalYear lists, per requested training, the people whose most-recent
// completion of it falls inside the fiscal year. Every requested training is
// a key in the result even when nobody qualifies; person order follows
// roster order.
//
// Pure function: No I/O operations, fully testable with direct inputs.
func ListFiscalYear(resolved []ResolvedPerson, fiscalYear int, trainings []string) map[string][]string {
	results := make(map[string][]string, len(trainings))
	requested := make(map[string]bool, len(trainings))
	for _, name := range trainings {
		results[name] = []string{}
		requested[name] = true
	}

	for _, person := range resolved {
		for name, completion := range person.Completions {
			if !requested[name] {
				continue
			}
			if training.InFiscalYear(completion.CompletedAt, fiscalYear) {
				results[name] = append(results[name], person.Name)
			}
		}
	}

	return results
}

// ClassifyExpirations reports, per person, the trainings whose most-recent
// completion has expired or expires within horizonDays of the reference
// date. Trainings that never expire are skipped; people with nothing
// classified are omitted. Per-person trainings are sorted by name for
// deterministic output.
//
// Pure function: No I/O operations, fully testable with direct inputs.
func ClassifyExpirations(resolved []ResolvedPerson, reference time.Time, horizonDays int) []app.PersonExpirations {
	var results []app.PersonExpirations

	for _, person := range resolved {
		var expiring []app.ExpiringTraining

		for name, completion := range person.Completions {
			if completion.ExpiresAt == nil {
				continue
			}

			status, classified := training.ClassifyExpiry(*completion.ExpiresAt, reference, horizonDays)
			if !classified {
				continue
			}

			expiring = append(expiring, app.ExpiringTraining{
				Training: name,
				Status:   string(status),
			})
		}

		if len(expiring) == 0 {
			continue
		}

		sort.Slice(expiring, func(i, j int) bool {
			return expiring[i].Training < expiring[j].Training
		})

		results = append(results, app.PersonExpirations{
			Name:              person.Name,
			ExpiringTrainings: expiring,
		})
	}

	return results
}
