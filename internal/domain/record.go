package domain

import "time"

// Label is the binary class assigned to a news record.
type Label int

const (
	LabelFake Label = 0
	LabelTrue Label = 1
)

// Record is a single labeled news document moving through the pipeline.
// Tokens and CleanText are filled in by the normalizer.
type Record struct {
	Title     string
	Text      string
	Label     Label
	Tokens    []string
	CleanText string
}

// TrainingRun is the audit snapshot persisted after a completed run.
type TrainingRun struct {
	ModelName  string
	Rows       int
	Accuracy   float64
	StartedAt  time.Time
	FinishedAt time.Time
	SavedBy    string
}
