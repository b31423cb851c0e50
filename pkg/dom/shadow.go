package dom

import (
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ShadowRoot is an open shadow-encapsulated sub-tree. Its contents are not
// reachable by selector queries on the host document; resolution must enter
// the root explicitly, which is exactly what the target resolver does when
// walking a selector chain.
type ShadowRoot struct {
	host *Element
	root *html.Node
}

// AttachShadow attaches an open shadow root to the element, or returns the
// existing one.
func (e *Element) AttachShadow() *ShadowRoot {
	if sr, ok := e.doc.shadows[e.node]; ok {
		return sr
	}
	sr := &ShadowRoot{
		host: e,
		// A detached container node keeps shadow content out of the host
		// tree, so outer queries cannot see it.
		root: &html.Node{Type: html.ElementNode, Data: "shadow-root"},
	}
	e.doc.shadows[e.node] = sr
	return sr
}

// ShadowRoot returns the element's open shadow root, or nil.
func (e *Element) ShadowRoot() *ShadowRoot {
	return e.doc.shadows[e.node]
}

// Host returns the element the shadow root is attached to.
func (s *ShadowRoot) Host() *Element {
	return s.host
}

// AppendChild attaches an element to the shadow root's content.
func (s *ShadowRoot) AppendChild(el *Element) {
	if el.node.Parent != nil {
		el.node.Parent.RemoveChild(el.node)
	}
	s.root.AppendChild(el.node)
}

// AppendHTML parses a markup fragment and appends it to the shadow content.
func (s *ShadowRoot) AppendHTML(fragment string) error {
	ctx := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), ctx)
	if err != nil {
		return err
	}
	for _, n := range nodes {
		s.root.AppendChild(n)
	}
	return nil
}

// Query resolves a CSS selector against the shadow content.
func (s *ShadowRoot) Query(selector string) (*Element, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, err
	}
	return s.host.doc.wrap(matchFirst(sel, s.root, false)), nil
}
