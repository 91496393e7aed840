package app

// Person represents one roster entry with their full completion history
type Person struct {
	Name        string             `json:"name"`
	Completions []CompletionRecord `json:"completions"`
}

// CompletionRecord represents a single historical training completion.
// Timestamp and Expires use the roster's MM/DD/YYYY format; a nil or
// absent Expires means the training never expires.
type CompletionRecord struct {
	Name      string  `json:"name"`
	Timestamp string  `json:"timestamp"`
	Expires   *string `json:"expires,omitempty"`
}

// TrainingCount is one row of the completion-count report
type TrainingCount struct {
	Training string `json:"training"`
	Count    int    `json:"count"`
}

// ExpiringTraining is one classified training in the expiry report
type ExpiringTraining struct {
	Training string `json:"training"`
	Status   string `json:"status"`
}

// PersonExpirations groups a person's expired and soon-to-expire trainings.
// People with nothing classified are omitted from the report entirely.
type PersonExpirations struct {
	Name              string             `json:"name"`
	ExpiringTrainings []ExpiringTraining `json:"expiring_trainings"`
}
