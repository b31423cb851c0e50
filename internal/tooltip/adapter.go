// Package tooltip adapts a resolved attachment into a positioning-engine
// handle: it merges the step's passthrough options with the attachment
// mode, synthesizes a virtual anchor for shadow-tree targets, and hosts the
// headless reference engine.
package tooltip

import (
	"fmt"

	"github.com/petrijr/guidepost/pkg/api"
	"github.com/petrijr/guidepost/pkg/dom"
)

// Binding is one live handle plus the synthetic anchor created for it, if
// any. A step owns at most one Binding at a time and destroys it before
// creating another.
type Binding struct {
	Handle api.TooltipHandle

	// Anchor is the synthetic anchor element, non-nil only for
	// shadow-tree targets.
	Anchor *dom.Element
}

// Destroy releases the handle and removes the synthetic anchor.
func (b *Binding) Destroy() {
	if b == nil {
		return
	}
	if b.Handle != nil {
		b.Handle.Destroy()
		b.Handle = nil
	}
	if b.Anchor != nil {
		b.Anchor.Remove()
		b.Anchor = nil
	}
}

// Bind obtains an engine handle for the resolved attachment.
//
// The factory check comes first: a missing positioning engine is the one
// fatal configuration error and must surface before any surface mutation.
// scroll, when non-nil, runs before a virtual anchor is measured so the
// target's visible position is accurate.
func Bind(
	factory api.TooltipFactory,
	doc *dom.Document,
	content *dom.Element,
	res api.ResolvedAttach,
	opts api.StepOptions,
	scroll func(),
) (*Binding, error) {
	if factory == nil {
		return nil, api.ErrNoTooltipFactory
	}

	if res.Centered() {
		handle, err := factory(nil, centeredOptions(content, opts))
		if err != nil {
			return nil, err
		}
		return &Binding{Handle: handle}, nil
	}

	anchor := res.Element
	var synthetic *dom.Element
	if res.VirtualAnchor {
		if scroll != nil {
			scroll()
		}
		synthetic = newVirtualAnchor(doc, res.Element)
		anchor = synthetic
	}

	handle, err := factory(anchor, attachedOptions(content, res, opts))
	if err != nil {
		if synthetic != nil {
			synthetic.Remove()
		}
		return nil, err
	}
	return &Binding{Handle: handle, Anchor: synthetic}, nil
}

// centeredOptions builds options for a step with no anchor: top placement,
// no arrow, and the centering override applied after the user's passthrough
// so it cannot be overridden.
func centeredOptions(content *dom.Element, opts api.StepOptions) api.TooltipOptions {
	out := api.TooltipOptions{
		Content:   content,
		Placement: api.PlacementTop,
		Arrow:     false,
		Extra:     mergeExtra(opts.TooltipExtra),
	}
	out.Centered = true
	return out
}

// attachedOptions builds options for an anchored step. The fixed-positioning
// flag is forced regardless of user input; legacy rendering contexts require
// it.
func attachedOptions(content *dom.Element, res api.ResolvedAttach, opts api.StepOptions) api.TooltipOptions {
	placement := res.On
	if placement == "" {
		placement = api.DefaultPlacement
	}
	out := api.TooltipOptions{
		Content:   content,
		Placement: placement,
		Arrow:     true,
		Extra:     mergeExtra(opts.TooltipExtra),
	}
	out.PositionFixed = true
	return out
}

// newVirtualAnchor creates a detached-looking stand-in for a shadow-tree
// target: transparent, non-interactive, absolutely positioned over the real
// element's box, appended to the body so the engine can address it.
func newVirtualAnchor(doc *dom.Document, target *dom.Element) *dom.Element {
	rect := target.Rect()

	anchor := doc.CreateElement("div")
	anchor.AddClass("guidepost-virtual-anchor")
	anchor.SetStyle("position", "absolute")
	anchor.SetStyle("display", "block")
	anchor.SetStyle("opacity", "0")
	anchor.SetStyle("pointer-events", "none")
	anchor.SetStyle("left", px(rect.X))
	anchor.SetStyle("top", px(rect.Y))
	anchor.SetStyle("width", px(rect.Width))
	anchor.SetStyle("height", px(rect.Height))

	doc.Body().AppendChild(anchor)
	doc.SetRect(anchor, rect)
	return anchor
}

func mergeExtra(user map[string]any) map[string]any {
	if len(user) == 0 {
		return nil
	}
	out := make(map[string]any, len(user))
	for k, v := range user {
		out[k] = v
	}
	return out
}

func px(v float64) string {
	return fmt.Sprintf("%gpx", v)
}
