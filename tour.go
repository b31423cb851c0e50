package guidepost

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/petrijr/guidepost/internal/step"
	"github.com/petrijr/guidepost/pkg/api"
	"github.com/petrijr/guidepost/pkg/dom"
)

// Tour owns an ordered sequence of steps over one document and drives them
// one at a time. It serializes step transitions, hiding the outgoing step
// before the incoming one is shown, which is what keeps the document-wide
// active-step marker single-writer.
//
// A Tour is the step-facing api.TourController: steps forward Cancel,
// Complete and advance-on events to it and never decide tour-level
// semantics themselves.
//
// Not safe for concurrent use.
type Tour struct {
	name    string
	run     string
	doc     *dom.Document
	factory api.TooltipFactory
	logger  *slog.Logger

	steps   []*step.Step
	byID    map[string]*step.Step
	current int

	emitter    api.Emitter
	stepIDs    api.Sequence
	contentIDs api.Sequence

	progress api.ProgressStore
	deferFn  func(func())
	done     bool
}

var _ api.TourController = (*Tour)(nil)

// TourOption configures a Tour.
type TourOption func(*Tour)

// WithTooltipFactory sets the positioning engine. Without one, step setup
// fails with ErrNoTooltipFactory.
func WithTooltipFactory(f api.TooltipFactory) TourOption {
	return func(t *Tour) { t.factory = f }
}

// WithLogger sets the logger used for soft-failure diagnostics. Defaults to
// slog.Default().
func WithLogger(l *slog.Logger) TourOption {
	return func(t *Tour) { t.logger = l }
}

// WithProgressStore enables progress recording: shows and completions are
// written to the store, keyed by tour name and run id.
func WithProgressStore(s api.ProgressStore) TourOption {
	return func(t *Tour) { t.progress = s }
}

// WithDefer sets the scheduler for deferred scroll-into-view calls. The
// default runs them immediately.
func WithDefer(fn func(func())) TourOption {
	return func(t *Tour) { t.deferFn = fn }
}

// NewTour creates a tour over doc. Each tour gets a unique run id used to
// group progress records.
func NewTour(name string, doc *dom.Document, opts ...TourOption) *Tour {
	t := &Tour{
		name:    name,
		run:     uuid.NewString(),
		doc:     doc,
		logger:  slog.Default(),
		byID:    make(map[string]*step.Step),
		current: -1,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Name returns the tour name.
func (t *Tour) Name() string { return t.name }

// Run returns the unique run id for this tour instance.
func (t *Tour) Run() string { return t.run }

// Document returns the document the tour runs over.
func (t *Tour) Document() *dom.Document { return t.doc }

// Done reports whether the tour has completed or been cancelled.
func (t *Tour) Done() bool { return t.done }

// On subscribes a handler on the tour's emitter.
func (t *Tour) On(et api.EventType, fn api.Handler) { t.emitter.On(et, fn) }

// OnAny subscribes a handler to every tour event.
func (t *Tour) OnAny(fn api.Handler) { t.emitter.OnAny(fn) }

// AddStep appends a step configured by o. The returned step is owned by the
// tour; configuration errors (button conflicts) surface here.
func (t *Tour) AddStep(o api.StepOptions) (api.Step, error) {
	s, err := step.New(step.Deps{
		Controller: t,
		Document:   t.doc,
		Factory:    t.factory,
		Logger:     t.logger,
		StepIDs:    &t.stepIDs,
		ContentIDs: &t.contentIDs,
		Defer:      t.deferFn,
	}, o)
	if err != nil {
		return nil, err
	}
	t.steps = append(t.steps, s)
	t.byID[s.ID()] = s
	return s, nil
}

// Step returns the step with the given id.
func (t *Tour) Step(id string) (api.Step, error) {
	s, ok := t.byID[id]
	if !ok {
		return nil, api.ErrStepNotFound
	}
	return s, nil
}

// Steps returns the tour's steps in order.
func (t *Tour) Steps() []api.Step {
	out := make([]api.Step, len(t.steps))
	for i, s := range t.steps {
		out[i] = s
	}
	return out
}

// Current returns the step currently shown, or nil.
func (t *Tour) Current() api.Step {
	if t.current < 0 || t.current >= len(t.steps) {
		return nil
	}
	return t.steps[t.current]
}

// Start shows the first step and emits the start event.
func (t *Tour) Start(ctx context.Context) error {
	if t.done {
		return api.ErrTourDone
	}
	if len(t.steps) == 0 {
		return api.ErrStepNotFound
	}
	t.emitter.Trigger(api.Event{Type: api.EventStart, TourID: t.run})
	return t.showIndex(ctx, 0)
}

// Show hides the current step and shows the one with the given id.
func (t *Tour) Show(ctx context.Context, id string) error {
	if t.done {
		return api.ErrTourDone
	}
	for i, s := range t.steps {
		if s.ID() == id {
			return t.showIndex(ctx, i)
		}
	}
	return api.ErrStepNotFound
}

// Next advances to the next step, completing the tour after the last one.
func (t *Tour) Next(ctx context.Context) error {
	if t.done {
		return api.ErrTourDone
	}
	if t.current+1 >= len(t.steps) {
		t.Complete()
		return nil
	}
	return t.showIndex(ctx, t.current+1)
}

// Back returns to the previous step. On the first step it is a no-op.
func (t *Tour) Back(ctx context.Context) error {
	if t.done {
		return api.ErrTourDone
	}
	if t.current <= 0 {
		return nil
	}
	return t.showIndex(ctx, t.current-1)
}

// Cancel tears the tour down and emits cancel.
func (t *Tour) Cancel() {
	t.finish(api.EventCancel)
}

// Complete records the current step as completed, tears the tour down and
// emits complete.
func (t *Tour) Complete() {
	if cur := t.Current(); cur != nil {
		t.record(cur.ID(), true)
	}
	t.finish(api.EventComplete)
}

func (t *Tour) finish(et api.EventType) {
	if t.done {
		return
	}
	t.done = true

	if cur := t.Current(); cur != nil {
		cur.Hide()
	}
	for _, s := range t.steps {
		s.Destroy()
	}
	t.current = -1

	t.emitter.Trigger(api.Event{Type: et, TourID: t.run})
}

func (t *Tour) showIndex(ctx context.Context, i int) error {
	if cur := t.Current(); cur != nil && i != t.current {
		cur.Hide()
	}

	s := t.steps[i]
	if err := s.Show(ctx); err != nil {
		return err
	}
	t.current = i

	t.record(s.ID(), false)
	t.emitter.Trigger(api.Event{Type: api.EventActive, TourID: t.run, StepID: s.ID()})
	return nil
}

// record writes a progress record if a store is configured. Store errors
// are diagnosed and never fail a transition.
func (t *Tour) record(stepID string, completed bool) {
	if t.progress == nil {
		return
	}
	var err error
	if completed {
		err = t.progress.MarkCompleted(t.name, t.run, stepID)
	} else {
		err = t.progress.MarkShown(t.name, t.run, stepID)
	}
	if err != nil {
		t.logger.Warn("guidepost: progress store write failed",
			slog.String("tour", t.name),
			slog.String("step", stepID),
			slog.Any("error", err),
		)
	}
}
