package api

import "time"

// ProgressRecord is one remembered step event for a tour run.
type ProgressRecord struct {
	Tour      string
	Run       string
	StepID    string
	Completed bool
	At        time.Time
}

// ProgressFilter narrows List results. Zero values mean "no filter".
type ProgressFilter struct {
	Tour      string
	Run       string
	Completed *bool
}

// ProgressStore remembers which steps a user has seen or completed, so a
// host can skip finished tours across sessions. The tour writes records as
// a side effect of showing and completing steps; store errors are diagnosed
// and never fail a lifecycle transition.
type ProgressStore interface {
	// MarkShown records that the step was shown during the given run.
	MarkShown(tour, run, stepID string) error

	// MarkCompleted records that the step was completed during the run.
	MarkCompleted(tour, run, stepID string) error

	// Seen reports whether the step was ever shown for the tour, across
	// runs.
	Seen(tour, stepID string) (bool, error)

	// List returns records matching the filter, oldest first.
	List(f ProgressFilter) ([]ProgressRecord, error)
}
