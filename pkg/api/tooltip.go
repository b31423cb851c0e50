package api

import "github.com/petrijr/guidepost/pkg/dom"

// TooltipState is the engine-reported visibility of a handle.
type TooltipState struct {
	IsVisible bool
}

// TooltipHandle is the opaque positioning-engine handle a step drives. The
// engine owns all placement math; the step only shows, hides and destroys.
type TooltipHandle interface {
	Show()
	Hide()
	Destroy()
	State() TooltipState
}

// TooltipOptions is what the adapter hands the engine factory after merging
// the step's passthrough options with the attachment mode.
type TooltipOptions struct {
	// Content is the step's built container element.
	Content *dom.Element

	// Placement is the requested side relative to the anchor. Ignored when
	// Centered is set.
	Placement Placement

	// Arrow enables the pointer indicator. Always off for centered steps.
	Arrow bool

	// PositionFixed forces fixed positioning on attached steps. The adapter
	// sets it unconditionally for legacy rendering contexts; engines that
	// do not need the shim may ignore it.
	PositionFixed bool

	// Centered pins the content box to the visual center of the viewport.
	// Applied by the adapter after the user's Extra options, so it cannot
	// be overridden.
	Centered bool

	// Extra carries engine-specific passthrough options verbatim.
	Extra map[string]any
}

// TooltipFactory produces an engine handle bound to anchor. A nil anchor
// means the step is centered on the viewport. Factories are the injection
// point for real positioning engines; the headless reference engine ships
// with the library.
type TooltipFactory func(anchor *dom.Element, opts TooltipOptions) (TooltipHandle, error)
