// Package guidepost is an embeddable guided-tour engine for Go.
//
// Guidepost drives a user through a sequence of annotated callouts
// ("steps") anchored to elements of a document. It owns the part of a tour
// with real algorithmic shape: resolving a declarative attach-to
// descriptor into a concrete element, including traversal through open
// shadow-encapsulated sub-trees, and moving a step through its
// show/hide/destroy lifecycle. The visual positioning engine is treated as
// an opaque, swappable capability.
//
// # Core Concepts
//
// The guidepost programming model is intentionally small:
//
//  1. Tour
//  2. Step
//  3. AttachSpec and the Target Resolver
//  4. TooltipFactory
//  5. Rendering surface (pkg/dom)
//
// # Tour
//
// A Tour owns an ordered sequence of steps over one document and drives
// them one at a time: Start, Next, Back, Show, Cancel, Complete. It
// serializes transitions so that exactly one step holds the document-wide
// active-step marker, and optionally records progress to a ProgressStore
// (in-memory, or SQLite for durability across sessions).
//
// Tours are built fluently:
//
//	tour, err := guidepost.New("onboarding", doc).
//	    Step(guidepost.StepOptions{
//	        Title:    "Welcome",
//	        Text:     guidepost.Text("Let's look around."),
//	        AttachTo: guidepost.ParseAttach(".sidebar right"),
//	    }).
//	    Build(guidepost.WithTooltipFactory(guidepost.NewHeadlessTooltipFactory()))
//
// # Step
//
// A Step is one callout. Its lifecycle is unbuilt → built → visible ⇄
// hidden → destroyed; content, resolved target and engine handle are
// created and destroyed together as a unit, and at most one live set exists
// per step. Show may be gated on a user-supplied precondition and emits
// events in a fixed order (before-show, show; before-hide, hide). Steps
// hold an event emitter by composition; handlers subscribe per event or via
// the step's When option.
//
// # AttachSpec and the Target Resolver
//
// Steps anchor through a tagged descriptor: an already-resolved element, a
// single selector, an ordered selector chain that enters open shadow roots
// between hops, or nothing at all (centered). The "<selector> <placement>"
// shorthand is parsed once at the configuration boundary. Resolution
// degrades softly: malformed selectors and missing elements produce a
// diagnostic and a centered step, never an error.
//
// # TooltipFactory
//
// The positioning engine is injected as a factory from anchor and options
// to an opaque handle with Show/Hide/Destroy and a visibility flag. When a
// target lives inside a shadow sub-tree the adapter synthesizes an
// invisible, absolutely-positioned virtual anchor the engine can address.
// The library ships a headless reference engine; a real engine is the
// host's concern. A missing factory is the one fatal configuration error.
//
// # Rendering surface
//
// pkg/dom is a headless document model (selector queries, classes,
// attributes, shadow roots, assignable geometry, synchronous events), so
// the whole lifecycle is testable without a browser.
//
// For examples, see the /examples directory or the project README.
package guidepost
