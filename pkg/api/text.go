package api

import "github.com/petrijr/guidepost/pkg/dom"

// TextKind discriminates the step body variants.
type TextKind int

const (
	// TextNone renders no body.
	TextNone TextKind = iota
	// TextString renders one paragraph.
	TextString
	// TextList renders one paragraph per entry, in order.
	TextList
	// TextFragmentKind inserts a prebuilt element directly.
	TextFragmentKind
	// TextFuncKind invokes a function with the step container and renders
	// whatever variant it returns.
	TextFuncKind
)

// TextSource is the tagged step body. Construct values with Text, TextLines,
// TextFragment or TextFunc; the zero value renders nothing.
type TextSource struct {
	Kind     TextKind
	Value    string
	Lines    []string
	Fragment *dom.Element
	Fn       func(container *dom.Element) TextSource
}

// Text builds a single-paragraph body.
func Text(s string) TextSource {
	return TextSource{Kind: TextString, Value: s}
}

// TextLines builds a body with one paragraph per line.
func TextLines(lines ...string) TextSource {
	return TextSource{Kind: TextList, Lines: lines}
}

// TextFragment builds a body from a prebuilt element.
func TextFragment(el *dom.Element) TextSource {
	if el == nil {
		return TextSource{}
	}
	return TextSource{Kind: TextFragmentKind, Fragment: el}
}

// TextFunc defers the body to fn, called with the step container at build
// time. fn must return a non-function variant; a function returning another
// function is diagnosed and renders nothing.
func TextFunc(fn func(container *dom.Element) TextSource) TextSource {
	if fn == nil {
		return TextSource{}
	}
	return TextSource{Kind: TextFuncKind, Fn: fn}
}
