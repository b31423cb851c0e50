package dom

import (
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// Query resolves a CSS selector against the whole document. It returns the
// first matching element, or nil when nothing matches. A malformed selector
// is reported as an error; shadow-root contents are not reachable from here.
func (d *Document) Query(selector string) (*Element, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, err
	}
	return d.wrap(matchFirst(sel, d.root, false)), nil
}

// QueryAll resolves a CSS selector against the whole document and returns
// all matching elements in tree order.
func (d *Document) QueryAll(selector string) ([]*Element, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, err
	}
	var out []*Element
	matchAll(sel, d.root, false, func(n *html.Node) {
		out = append(out, d.wrap(n))
	})
	return out, nil
}

// Query resolves a CSS selector against the element's descendants. The
// element itself is not a candidate, matching querySelector semantics.
func (e *Element) Query(selector string) (*Element, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, err
	}
	return e.doc.wrap(matchFirst(sel, e.node, false)), nil
}

// QueryAll resolves a CSS selector against the element's descendants and
// returns all matches in tree order. The element itself is not a candidate.
func (e *Element) QueryAll(selector string) ([]*Element, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, err
	}
	var out []*Element
	matchAll(sel, e.node, false, func(n *html.Node) {
		out = append(out, e.doc.wrap(n))
	})
	return out, nil
}

// matchFirst walks n's subtree in tree order and returns the first element
// node matched by sel. When includeSelf is false, n itself is skipped.
func matchFirst(sel cascadia.Selector, n *html.Node, includeSelf bool) *html.Node {
	if includeSelf && n.Type == html.ElementNode && sel(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := matchFirst(sel, c, true); found != nil {
			return found
		}
	}
	return nil
}

func matchAll(sel cascadia.Selector, n *html.Node, includeSelf bool, visit func(*html.Node)) {
	if includeSelf && n.Type == html.ElementNode && sel(n) {
		visit(n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		matchAll(sel, c, true, visit)
	}
}
