// Package dom provides the headless rendering surface guidepost steps are
// built against.
//
// It wraps golang.org/x/net/html node trees with the small set of document
// operations the step lifecycle needs: selector queries, class and attribute
// mutation, open shadow roots, per-element geometry, and synchronous event
// listeners. There is no layout engine; rects are assigned by the host (or by
// tests) and read back by the tooltip adapter.
//
// A Document and its Elements are not safe for concurrent use. The step
// lifecycle is single-threaded and cooperative, and the surface follows it.
package dom

import (
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Rect describes an element's assigned geometry in document coordinates.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Zero reports whether the rect carries no geometry.
func (r Rect) Zero() bool {
	return r == Rect{}
}

// Event is delivered to listeners registered via Element.On.
type Event struct {
	Type   string
	Target *Element
}

// Listener handles a dispatched event.
type Listener func(Event)

// Document is a headless document: an x/net/html tree plus the bookkeeping
// (shadow roots, rects, listeners, the active-step marker) that lives outside
// the markup itself.
type Document struct {
	root *html.Node
	body *html.Node

	elems     map[*html.Node]*Element
	shadows   map[*html.Node]*ShadowRoot
	rects     map[*html.Node]Rect
	listeners map[*html.Node]map[string][]Listener

	activeStep string
	scrolled   *Element
}

// NewDocument creates an empty document with html and body elements.
func NewDocument() *Document {
	doc, err := Parse(strings.NewReader("<html><head></head><body></body></html>"))
	if err != nil {
		// The constant markup above always parses.
		panic("dom: " + err.Error())
	}
	return doc
}

// Parse reads an HTML document from r.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	d := &Document{
		root:      root,
		elems:     make(map[*html.Node]*Element),
		shadows:   make(map[*html.Node]*ShadowRoot),
		rects:     make(map[*html.Node]Rect),
		listeners: make(map[*html.Node]map[string][]Listener),
	}
	d.body = findElement(root, "body")
	return d, nil
}

// MustParse is Parse from a string, panicking on error. Intended for tests
// and examples.
func MustParse(s string) *Document {
	d, err := Parse(strings.NewReader(s))
	if err != nil {
		panic("dom: " + err.Error())
	}
	return d
}

// Body returns the document's body element.
func (d *Document) Body() *Element {
	return d.wrap(d.body)
}

// CreateElement creates a detached element owned by this document.
func (d *Document) CreateElement(tag string) *Element {
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
	return d.wrap(n)
}

// SetRect assigns geometry to el. The headless surface has no layout; this
// is how hosts and tests provide bounding boxes.
func (d *Document) SetRect(el *Element, r Rect) {
	d.rects[el.node] = r
}

// SetActiveStep marks the document with the id of the step currently shown.
// Exactly one step may hold the marker at a time; serializing transitions is
// the caller's job.
func (d *Document) SetActiveStep(id string) {
	d.activeStep = id
	body := d.Body()
	body.SetAttribute("data-guidepost-step", id)
	body.AddClass("guidepost-active")
}

// ClearActiveStep removes the active-step marker.
func (d *Document) ClearActiveStep() {
	d.activeStep = ""
	body := d.Body()
	body.RemoveAttribute("data-guidepost-step")
	body.RemoveClass("guidepost-active")
}

// ActiveStep returns the id recorded by SetActiveStep, or "".
func (d *Document) ActiveStep() string {
	return d.activeStep
}

// LastScrolled returns the element most recently passed to
// Element.ScrollIntoView, or nil.
func (d *Document) LastScrolled() *Element {
	return d.scrolled
}

// wrap returns the canonical *Element for n, so wrapper identity follows
// node identity and callers can compare elements with ==.
func (d *Document) wrap(n *html.Node) *Element {
	if n == nil {
		return nil
	}
	if el, ok := d.elems[n]; ok {
		return el
	}
	el := &Element{doc: d, node: n}
	d.elems[n] = el
	return el
}

func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}
