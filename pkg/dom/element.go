package dom

import (
	"strings"

	"golang.org/x/net/html"
)

// Element is a live handle to a node in a Document (or in one of its shadow
// roots). Elements are canonical per node: resolving the same node twice
// yields the same *Element.
type Element struct {
	doc  *Document
	node *html.Node
}

// Tag returns the element's tag name.
func (e *Element) Tag() string {
	return e.node.Data
}

// Document returns the owning document.
func (e *Element) Document() *Document {
	return e.doc
}

// Attribute returns the value of the named attribute.
func (e *Element) Attribute(name string) (string, bool) {
	for _, a := range e.node.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttribute sets or replaces the named attribute.
func (e *Element) SetAttribute(name, value string) {
	for i, a := range e.node.Attr {
		if a.Key == name {
			e.node.Attr[i].Val = value
			return
		}
	}
	e.node.Attr = append(e.node.Attr, html.Attribute{Key: name, Val: value})
}

// RemoveAttribute deletes the named attribute if present.
func (e *Element) RemoveAttribute(name string) {
	for i, a := range e.node.Attr {
		if a.Key == name {
			e.node.Attr = append(e.node.Attr[:i], e.node.Attr[i+1:]...)
			return
		}
	}
}

// ID returns the element's id attribute.
func (e *Element) ID() string {
	id, _ := e.Attribute("id")
	return id
}

// AddClass adds the given class names, preserving order and uniqueness.
func (e *Element) AddClass(names ...string) {
	classes := e.classList()
	for _, name := range names {
		if name == "" || contains(classes, name) {
			continue
		}
		classes = append(classes, name)
	}
	e.SetAttribute("class", strings.Join(classes, " "))
}

// RemoveClass removes the given class names if present.
func (e *Element) RemoveClass(names ...string) {
	classes := e.classList()
	kept := classes[:0]
	for _, c := range classes {
		if !contains(names, c) {
			kept = append(kept, c)
		}
	}
	if len(kept) == 0 {
		e.RemoveAttribute("class")
		return
	}
	e.SetAttribute("class", strings.Join(kept, " "))
}

// HasClass reports whether the element carries the class name.
func (e *Element) HasClass(name string) bool {
	return contains(e.classList(), name)
}

func (e *Element) classList() []string {
	v, _ := e.Attribute("class")
	return strings.Fields(v)
}

// SetStyle sets one inline style property.
func (e *Element) SetStyle(prop, value string) {
	styles := e.styleMap()
	styles = setStyleProp(styles, prop, value)
	e.SetAttribute("style", joinStyles(styles))
}

// Style returns the value of one inline style property, or "".
func (e *Element) Style(prop string) string {
	for _, kv := range e.styleMap() {
		if kv[0] == prop {
			return kv[1]
		}
	}
	return ""
}

// styleMap parses the style attribute into ordered property pairs.
func (e *Element) styleMap() [][2]string {
	v, _ := e.Attribute("style")
	var out [][2]string
	for _, decl := range strings.Split(v, ";") {
		decl = strings.TrimSpace(decl)
		if decl == "" {
			continue
		}
		k, val, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		out = append(out, [2]string{strings.TrimSpace(k), strings.TrimSpace(val)})
	}
	return out
}

func setStyleProp(styles [][2]string, prop, value string) [][2]string {
	for i, kv := range styles {
		if kv[0] == prop {
			styles[i][1] = value
			return styles
		}
	}
	return append(styles, [2]string{prop, value})
}

func joinStyles(styles [][2]string) string {
	parts := make([]string, 0, len(styles))
	for _, kv := range styles {
		parts = append(parts, kv[0]+": "+kv[1])
	}
	return strings.Join(parts, "; ")
}

// AppendChild attaches child as the last child of e. A child already in a
// tree is detached first.
func (e *Element) AppendChild(child *Element) {
	if child.node.Parent != nil {
		child.node.Parent.RemoveChild(child.node)
	}
	e.node.AppendChild(child.node)
}

// Remove detaches the element from its parent and drops the listeners
// registered anywhere in its subtree.
func (e *Element) Remove() {
	if e.node.Parent != nil {
		e.node.Parent.RemoveChild(e.node)
	}
	purgeListeners(e.doc, e.node)
}

func purgeListeners(d *Document, n *html.Node) {
	delete(d.listeners, n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		purgeListeners(d, c)
	}
}

// SetText replaces the element's children with a single text node.
func (e *Element) SetText(s string) {
	for c := e.node.FirstChild; c != nil; {
		next := c.NextSibling
		e.node.RemoveChild(c)
		c = next
	}
	e.node.AppendChild(&html.Node{Type: html.TextNode, Data: s})
}

// Text returns the concatenated text content of the element's subtree.
func (e *Element) Text() string {
	var b strings.Builder
	collectText(e.node, &b)
	return b.String()
}

// Rect returns the geometry assigned via Document.SetRect, or a zero rect.
func (e *Element) Rect() Rect {
	return e.doc.rects[e.node]
}

// ScrollIntoView records the scroll request on the document. The headless
// surface has nothing to scroll; hosts with real viewports observe this via
// Document.LastScrolled or wrap it with their own handler.
func (e *Element) ScrollIntoView() {
	e.doc.scrolled = e
}

// On registers a listener for the named event.
func (e *Element) On(event string, fn Listener) {
	m := e.doc.listeners[e.node]
	if m == nil {
		m = make(map[string][]Listener)
		e.doc.listeners[e.node] = m
	}
	m[event] = append(m[event], fn)
}

// Dispatch synchronously invokes the listeners registered for the named
// event on this element. There is no bubbling.
func (e *Element) Dispatch(event string) {
	fns := e.doc.listeners[e.node][event]
	ev := Event{Type: event, Target: e}
	for _, fn := range fns {
		fn(ev)
	}
}

// RemoveListeners drops all listeners registered on this element.
func (e *Element) RemoveListeners() {
	delete(e.doc.listeners, e.node)
}

// HTML renders the element's subtree as markup. Intended for debugging and
// test assertions.
func (e *Element) HTML() string {
	var b strings.Builder
	if err := html.Render(&b, e.node); err != nil {
		return ""
	}
	return b.String()
}

func collectText(n *html.Node, b *strings.Builder) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
