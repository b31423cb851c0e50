package api

import (
	"strings"

	"github.com/petrijr/guidepost/pkg/dom"
)

// AttachKind discriminates the attach-to configuration variants. The raw
// configuration is parsed into exactly one kind at the boundary; nothing
// downstream re-inspects shapes.
type AttachKind int

const (
	// AttachNone means the step has no anchor and is centered.
	AttachNone AttachKind = iota
	// AttachToElement carries an already-resolved element.
	AttachToElement
	// AttachBySelector carries a single selector resolved against the
	// document.
	AttachBySelector
	// AttachByChain carries an ordered selector sequence resolved
	// left-to-right, entering open shadow roots between hops.
	AttachByChain
)

// AttachSpec is the tagged attach-to descriptor.
type AttachSpec struct {
	Kind     AttachKind
	Element  *dom.Element
	Selector string
	Chain    []string
	On       Placement
}

// AttachElement builds a descriptor from an already-resolved element. The
// resolver passes it through unchanged.
func AttachElement(el *dom.Element, on Placement) AttachSpec {
	if el == nil {
		return AttachSpec{On: on}
	}
	return AttachSpec{Kind: AttachToElement, Element: el, On: on}
}

// AttachSelector builds a descriptor from a single selector.
func AttachSelector(selector string, on Placement) AttachSpec {
	if selector == "" {
		return AttachSpec{On: on}
	}
	return AttachSpec{Kind: AttachBySelector, Selector: selector, On: on}
}

// AttachChain builds a descriptor from an ordered selector sequence. An
// empty sequence means no anchor.
func AttachChain(selectors []string, on Placement) AttachSpec {
	if len(selectors) == 0 {
		return AttachSpec{On: on}
	}
	if len(selectors) == 1 {
		return AttachSpec{Kind: AttachBySelector, Selector: selectors[0], On: on}
	}
	return AttachSpec{Kind: AttachByChain, Chain: selectors, On: on}
}

// ParseAttach parses the "<selector> <placement>" shorthand. The placement
// is the last space-separated token and must be a valid Placement; anything
// that does not match the grammar yields an empty descriptor, which the
// lifecycle treats as a soft failure and renders centered.
func ParseAttach(shorthand string) AttachSpec {
	s := strings.TrimSpace(shorthand)
	i := strings.LastIndexByte(s, ' ')
	if i <= 0 {
		return AttachSpec{}
	}
	selector := strings.TrimSpace(s[:i])
	on, ok := ParsePlacement(s[i+1:])
	if !ok || selector == "" {
		return AttachSpec{}
	}
	return AttachSpec{Kind: AttachBySelector, Selector: selector, On: on}
}

// ResolvedAttach is the outcome of target resolution.
//
// A nil Element means the step is centered and On is ignored. VirtualAnchor
// reports that the element lives inside a shadow-encapsulated sub-tree that
// the tooltip engine cannot address directly, so a synthetic anchor must be
// created for it.
type ResolvedAttach struct {
	Element       *dom.Element
	On            Placement
	VirtualAnchor bool
}

// Centered reports whether the step has no anchor.
func (r ResolvedAttach) Centered() bool {
	return r.Element == nil
}
