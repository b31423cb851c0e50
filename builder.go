package guidepost

import (
	"fmt"

	"github.com/petrijr/guidepost/pkg/api"
	"github.com/petrijr/guidepost/pkg/dom"
)

// TourBuilder provides a fluent API for defining tours:
//
//	tour, err := guidepost.New("onboarding", doc).
//	    Step(guidepost.StepOptions{
//	        ID:       "welcome",
//	        Title:    "Welcome",
//	        Text:     guidepost.Text("Let's look around."),
//	        AttachTo: guidepost.ParseAttach(".sidebar right"),
//	    }).
//	    Step(guidepost.StepOptions{
//	        Text: guidepost.Text("That's it!"),
//	    }).
//	    Build(guidepost.WithTooltipFactory(guidepost.NewHeadlessTooltipFactory()))
type TourBuilder struct {
	name  string
	doc   *dom.Document
	steps []api.StepOptions
}

// New creates a tour builder for the given document.
func New(name string, doc *dom.Document) *TourBuilder {
	return &TourBuilder{name: name, doc: doc}
}

// Name returns the tour name.
func (b *TourBuilder) Name() string {
	return b.name
}

// Step appends a step configuration.
func (b *TourBuilder) Step(o api.StepOptions) *TourBuilder {
	b.steps = append(b.steps, o)
	return b
}

// Build validates every step configuration, constructs the tour and adds
// the steps in order.
//
// Validation catches the configuration-time contracts: the button
// Action/Events["click"] conflict and duplicate explicit step ids.
func (b *TourBuilder) Build(opts ...TourOption) (*Tour, error) {
	seen := make(map[string]int)
	for i, o := range b.steps {
		if err := o.Validate(); err != nil {
			return nil, fmt.Errorf("guidepost: step %d: %w", i, err)
		}
		if o.ID != "" {
			if prev, dup := seen[o.ID]; dup {
				return nil, fmt.Errorf("guidepost: steps %d and %d share id %q", prev, i, o.ID)
			}
			seen[o.ID] = i
		}
	}

	tour := NewTour(b.name, b.doc, opts...)
	for i, o := range b.steps {
		if _, err := tour.AddStep(o); err != nil {
			return nil, fmt.Errorf("guidepost: step %d: %w", i, err)
		}
	}
	return tour, nil
}

// MustBuild is like Build but panics on error. Useful for initialization in
// main().
func (b *TourBuilder) MustBuild(opts ...TourOption) *Tour {
	tour, err := b.Build(opts...)
	if err != nil {
		panic(err)
	}
	return tour
}
