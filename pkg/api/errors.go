package api

import "errors"

var (
	// ErrNoTooltipFactory is returned when a step is set up without a
	// positioning engine configured. It is the one fatal configuration
	// error: it is raised synchronously before any surface mutation, and
	// the step stays unbuilt and retryable.
	ErrNoTooltipFactory = errors.New("guidepost: no tooltip factory configured")

	// ErrButtonConflict is returned at configuration time when a button
	// declares both Action and a "click" entry in Events. The combination
	// is rejected outright rather than double-firing.
	ErrButtonConflict = errors.New(`guidepost: button declares both Action and Events["click"]`)

	// ErrStepNotFound is returned by tour lookups for unknown step ids.
	ErrStepNotFound = errors.New("guidepost: step not found")

	// ErrTourDone is returned when showing or advancing a tour that has
	// already completed or been cancelled.
	ErrTourDone = errors.New("guidepost: tour already finished")
)
