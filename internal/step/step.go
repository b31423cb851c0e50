// Package step implements the step lifecycle: unbuilt → built → visible ⇄
// hidden → destroyed, coordinating content construction, target resolution
// and the positioning-engine handoff.
package step

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/petrijr/guidepost/internal/content"
	"github.com/petrijr/guidepost/internal/resolve"
	"github.com/petrijr/guidepost/internal/tooltip"
	"github.com/petrijr/guidepost/pkg/api"
	"github.com/petrijr/guidepost/pkg/dom"
)

// Deps are the collaborators a step borrows from its tour.
type Deps struct {
	Controller api.TourController
	Document   *dom.Document
	Factory    api.TooltipFactory
	Logger     *slog.Logger

	// StepIDs defaults missing step ids; ContentIDs uniques container ids
	// across generations. Both are owned by the tour.
	StepIDs    *api.Sequence
	ContentIDs *api.Sequence

	// Defer schedules the scroll-into-view call after show. Nil runs it
	// immediately; the headless surface has no layout to settle.
	Defer func(fn func())
}

// Step is the concrete api.Step. Not safe for concurrent use; the lifecycle
// is single-threaded and cooperative.
type Step struct {
	deps Deps
	opts api.StepOptions
	id   string

	emitter api.Emitter
	// whenBound tracks the event types wired from options.When so that
	// SetOptions can rewire without stacking stale handlers.
	whenBound []api.EventType

	el      *dom.Element
	binding *tooltip.Binding
	target  *dom.Element
}

var _ api.Step = (*Step)(nil)

// New creates a step owned by the given tour collaborators and applies the
// initial options.
func New(deps Deps, opts api.StepOptions) (*Step, error) {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	s := &Step{deps: deps}
	if err := s.SetOptions(opts); err != nil {
		return nil, err
	}
	return s, nil
}

// ID returns the step id for the current options generation.
func (s *Step) ID() string { return s.id }

// Options returns the current configuration.
func (s *Step) Options() api.StepOptions { return s.opts }

// Target returns the resolved target element, or nil.
func (s *Step) Target() *dom.Element { return s.target }

// Element returns the built container, or nil.
func (s *Step) Element() *dom.Element { return s.el }

// On subscribes a handler on the step's emitter.
func (s *Step) On(t api.EventType, fn api.Handler) { s.emitter.On(t, fn) }

// Off removes all handlers for the event type.
func (s *Step) Off(t api.EventType) { s.emitter.Off(t) }

// OnAny subscribes a handler to every step event. Used by the logging and
// metrics subscribers.
func (s *Step) OnAny(fn api.Handler) { s.emitter.OnAny(fn) }

// SetOptions replaces the step's configuration. Existing visual state is
// torn down as in Destroy (the instance survives), the id is recomputed,
// and the When handlers are rewired. The step ends up unbuilt.
func (s *Step) SetOptions(o api.StepOptions) error {
	if err := o.Validate(); err != nil {
		return err
	}

	if s.el != nil || s.binding != nil {
		s.teardown()
		s.emitter.Trigger(s.event(api.EventDestroy))
	}

	for _, t := range s.whenBound {
		s.emitter.Off(t)
	}
	s.whenBound = s.whenBound[:0]

	s.opts = o
	s.id = o.ID
	if s.id == "" {
		s.id = fmt.Sprintf("step-%d", s.deps.StepIDs.Next())
	}

	for t, fn := range o.When {
		s.emitter.On(t, fn)
		s.whenBound = append(s.whenBound, t)
	}
	return nil
}

// SetupElements moves the step from unbuilt to built: content, resolved
// target and engine handle come into existence together. Called on an
// already-built step it destroys the previous set first, so no two live
// handle sets ever exist for one step.
func (s *Step) SetupElements() error {
	if s.el != nil || s.binding != nil {
		s.Destroy()
	}

	// The factory check precedes any surface mutation; its absence is the
	// one fatal configuration error.
	if s.deps.Factory == nil {
		return api.ErrNoTooltipFactory
	}

	containerID := fmt.Sprintf("%s-%d", s.id, s.deps.ContentIDs.Next())
	el := content.Build(s.deps.Document, s.opts, containerID, s.Cancel, s.deps.Logger)

	res := resolve.Attach(s.deps.Document, s.opts.AttachTo, s.deps.Logger)

	var scroll func()
	if s.opts.ScrollTo && res.Element != nil {
		target := res.Element
		scroll = func() { s.scrollTo(target) }
	}

	binding, err := tooltip.Bind(s.deps.Factory, s.deps.Document, el, res, s.opts, scroll)
	if err != nil {
		// Leave the step unbuilt and retryable. The fragment was never
		// attached to the document; dropping its listeners erases it.
		el.Remove()
		return err
	}

	s.deps.Document.Body().AppendChild(el)

	s.el = el
	s.binding = binding
	s.target = res.Element

	if s.opts.AdvanceOn != nil {
		s.bindAdvance(*s.opts.AdvanceOn)
	}
	return nil
}

// Show runs the show sequence. When BeforeShow is configured the step
// suspends until it settles; during the wait nothing is built and no global
// marker is set, so Hide and Destroy in that window are safe no-ops.
func (s *Step) Show(ctx context.Context) error {
	if fn := s.opts.BeforeShow; fn != nil {
		if err := fn(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			// A settled-but-failed precondition does not veto the show.
			s.deps.Logger.Warn("guidepost: before-show precondition failed",
				slog.String("step", s.id),
				slog.Any("error", err),
			)
		}
	}

	s.emitter.Trigger(s.event(api.EventBeforeShow))

	if s.el == nil {
		if err := s.SetupElements(); err != nil {
			return err
		}
	}

	s.el.RemoveAttribute("hidden")
	// Forcing block display keeps legacy rendering contexts from
	// collapsing the container.
	s.el.SetStyle("display", "block")

	s.deps.Document.SetActiveStep(s.id)

	if s.target != nil {
		s.target.AddClass("guidepost-enabled", "guidepost-target")
	}

	if s.opts.ScrollTo && s.target != nil {
		target := s.target
		s.defer_(func() { s.scrollTo(target) })
	}

	s.binding.Handle.Show()
	s.emitter.Trigger(s.event(api.EventShow))
	return nil
}

// Hide conceals a built step. Calling it before anything is built is a
// no-op.
func (s *Step) Hide() {
	if s.binding == nil {
		return
	}

	s.emitter.Trigger(s.event(api.EventBeforeHide))

	s.deps.Document.ClearActiveStep()
	if s.target != nil {
		s.target.RemoveClass("guidepost-enabled", "guidepost-target")
	}

	s.binding.Handle.Hide()
	s.emitter.Trigger(s.event(api.EventHide))
}

// IsOpen reports whether an engine handle exists and is visible.
func (s *Step) IsOpen() bool {
	return s.binding != nil && s.binding.Handle.State().IsVisible
}

// Cancel forwards to the tour and then emits the step's own cancel event.
func (s *Step) Cancel() {
	if s.deps.Controller != nil {
		s.deps.Controller.Cancel()
	}
	s.emitter.Trigger(s.event(api.EventCancel))
}

// Complete forwards to the tour and then emits complete.
func (s *Step) Complete() {
	if s.deps.Controller != nil {
		s.deps.Controller.Complete()
	}
	s.emitter.Trigger(s.event(api.EventComplete))
}

// Destroy releases the content, engine handle and target references as a
// unit and emits destroy. Idempotent: with nothing built it is a no-op
// beyond the event emission.
func (s *Step) Destroy() {
	s.teardown()
	s.emitter.Trigger(s.event(api.EventDestroy))
}

func (s *Step) teardown() {
	if s.binding != nil {
		s.binding.Destroy()
		s.binding = nil
	}
	if s.el != nil {
		s.el.Remove()
		s.el = nil
	}
	s.target = nil
}

// bindAdvance wires the advance-on-external-event binding. An unresolvable
// selector is a soft failure: the behavior is skipped with a diagnostic.
func (s *Step) bindAdvance(adv api.AdvanceOn) {
	el, err := s.deps.Document.Query(adv.Selector)
	if err != nil || el == nil {
		s.deps.Logger.Warn("guidepost: advanceOn target not found, skipping",
			slog.String("step", s.id),
			slog.String("selector", adv.Selector),
		)
		return
	}
	el.On(adv.Event, func(dom.Event) {
		if s.deps.Controller != nil {
			if err := s.deps.Controller.Next(context.Background()); err != nil {
				s.deps.Logger.Warn("guidepost: advanceOn failed to advance",
					slog.String("step", s.id),
					slog.Any("error", err),
				)
			}
		}
	})
}

func (s *Step) scrollTo(target *dom.Element) {
	if s.opts.ScrollHandler != nil {
		s.opts.ScrollHandler(target)
		return
	}
	target.ScrollIntoView()
}

func (s *Step) defer_(fn func()) {
	if s.deps.Defer != nil {
		s.deps.Defer(fn)
		return
	}
	fn()
}

func (s *Step) event(t api.EventType) api.Event {
	return api.Event{Type: t, StepID: s.id}
}
