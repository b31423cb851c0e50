package api

import (
	"context"
	"fmt"

	"github.com/petrijr/guidepost/pkg/dom"
)

// Button configures one clickable control in a step's footer.
//
// Action and Events["click"] are mutually exclusive; Validate rejects the
// combination so a click can never fire twice.
type Button struct {
	// Text is the button label.
	Text string

	// Classes is appended to the button's class attribute.
	Classes string

	// Action runs when the button is clicked.
	Action func()

	// Events maps event names to handlers wired onto the button element.
	Events map[string]dom.Listener
}

// AdvanceOn auto-advances the tour when the named event fires on the
// element matched by Selector.
type AdvanceOn struct {
	Selector string
	Event    string
}

// StepOptions is the immutable-per-generation configuration of a step.
// Replacing it via Step.SetOptions tears down any built visual state.
type StepOptions struct {
	// ID identifies the step within its tour. When empty, the tour assigns
	// "step-<n>" from its id sequence.
	ID string

	// Title is rendered as a header when non-empty and adds a has-title
	// marker class to the container.
	Title string

	// Text is the step body.
	Text TextSource

	// AttachTo anchors the step to an element. The zero value centers the
	// step on the viewport.
	AttachTo AttachSpec

	// Buttons are rendered in order in the step footer.
	Buttons []Button

	// AdvanceOn, when set, advances the tour on an external element event.
	AdvanceOn *AdvanceOn

	// BeforeShow is awaited before the show sequence proceeds. Show blocks
	// until it settles; its error is diagnosed, not fatal.
	BeforeShow func(ctx context.Context) error

	// ShowCancelLink renders a cancel control delegating to Step.Cancel.
	ShowCancelLink bool

	// ScrollTo scrolls the resolved target into view on show.
	ScrollTo bool

	// ScrollHandler overrides the default scroll-into-view behavior.
	ScrollHandler func(target *dom.Element)

	// Classes is appended to the container's class attribute.
	Classes string

	// TooltipExtra is passed through to the positioning engine verbatim,
	// merged under the adapter's own overrides.
	TooltipExtra map[string]any

	// When subscribes handlers on the step's emitter at configuration
	// time. Rewired on every SetOptions.
	When map[EventType]Handler
}

// Validate checks the configuration-time contracts: the button
// Action/Events["click"] conflict and function-variant sanity.
func (o StepOptions) Validate() error {
	for i, b := range o.Buttons {
		if b.Action != nil {
			if _, ok := b.Events["click"]; ok {
				return fmt.Errorf("button %d (%q): %w", i, b.Text, ErrButtonConflict)
			}
		}
	}
	return nil
}
