package api

import (
	"context"

	"github.com/petrijr/guidepost/pkg/dom"
)

// Step is one annotated callout in a guided tour, bound to a document
// location or centered on the viewport.
//
// Lifecycle: unbuilt → built (content, target and engine handle exist,
// hidden) → visible ⇄ hidden → destroyed. Destroy releases the visual state
// but the instance stays reusable through SetOptions and SetupElements.
type Step interface {
	// ID returns the step's id for this options generation.
	ID() string

	// Options returns the current configuration.
	Options() StepOptions

	// SetOptions replaces the configuration: existing visual state is torn
	// down, the id recomputed, and When handlers rewired. The step ends up
	// unbuilt.
	SetOptions(o StepOptions) error

	// SetupElements builds the content, resolves the target and obtains
	// the engine handle. Called on an already-built step it destroys the
	// previous set first; no two live handle sets exist per step.
	SetupElements() error

	// Show runs the show sequence, blocking on BeforeShow when configured.
	// Events fire in the fixed order before-show → (build) → show.
	Show(ctx context.Context) error

	// Hide conceals a built step: before-hide → hide. Calling it on a step
	// that is not built is a no-op.
	Hide()

	// IsOpen reports whether an engine handle exists and is visible.
	IsOpen() bool

	// Cancel forwards to the tour's Cancel, then emits the step's own
	// cancel event. The step never decides tour-level semantics.
	Cancel()

	// Complete forwards to the tour's Complete, then emits complete.
	Complete()

	// Destroy releases the engine handle, content and target references
	// and emits destroy. Idempotent: with nothing built it is a no-op
	// beyond the event.
	Destroy()

	// Target returns the resolved target element, or nil for centered
	// steps or before setup.
	Target() *dom.Element

	// Element returns the built container, or nil before setup.
	Element() *dom.Element

	// On subscribes a handler on the step's emitter.
	On(t EventType, fn Handler)

	// Off removes all handlers for the event type.
	Off(t EventType)
}

// TourController is the step-facing surface of the containing tour. Steps
// forward cancel/complete and auto-advance through it; ordering, teardown
// and sequencing stay with the tour.
type TourController interface {
	Cancel()
	Complete()
	Next(ctx context.Context) error
}
