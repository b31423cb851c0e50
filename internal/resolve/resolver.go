// Package resolve turns a step's attach-to descriptor into a concrete
// element, walking open shadow roots between selector-chain hops.
//
// Resolution never fails hard: malformed selectors and missing elements
// degrade to a centered descriptor with a diagnostic, matching the soft
// failure policy of the step lifecycle.
package resolve

import (
	"log/slog"

	"github.com/petrijr/guidepost/pkg/api"
	"github.com/petrijr/guidepost/pkg/dom"
)

// Attach resolves spec against doc.
//
// A descriptor already carrying an element passes through unchanged. A
// selector (or chain) resolves from the document root; whenever the current
// root element exposes an open shadow root, resolution continues inside it
// and the virtual-anchor flag latches for the remainder of the chain.
// Selector syntax errors are treated as "not found". A non-empty selector
// matching nothing is diagnosed on logger and yields a centered descriptor.
func Attach(doc *dom.Document, spec api.AttachSpec, logger *slog.Logger) api.ResolvedAttach {
	if logger == nil {
		logger = slog.Default()
	}

	switch spec.Kind {
	case api.AttachNone:
		return api.ResolvedAttach{}
	case api.AttachToElement:
		return api.ResolvedAttach{Element: spec.Element, On: spec.On}
	case api.AttachBySelector:
		return resolveChain(doc, []string{spec.Selector}, spec.On, logger)
	case api.AttachByChain:
		return resolveChain(doc, spec.Chain, spec.On, logger)
	}
	return api.ResolvedAttach{}
}

func resolveChain(doc *dom.Document, selectors []string, on api.Placement, logger *slog.Logger) api.ResolvedAttach {
	if len(selectors) == 0 {
		return api.ResolvedAttach{}
	}

	var (
		current *dom.Element
		virtual bool
	)
	for i, selector := range selectors {
		el, err := queryFrom(doc, current, &virtual, selector)
		if err != nil {
			// Invalid selector syntax counts as "not found".
			logger.Warn("guidepost: invalid selector, step will be centered",
				slog.String("selector", selector),
				slog.Any("error", err),
			)
			return api.ResolvedAttach{}
		}
		if el == nil {
			logger.Warn("guidepost: attach target not found, step will be centered",
				slog.String("selector", selector),
				slog.Int("hop", i),
			)
			return api.ResolvedAttach{}
		}
		current = el
	}

	return api.ResolvedAttach{Element: current, On: on, VirtualAnchor: virtual}
}

// queryFrom resolves one selector hop. The first hop queries the document;
// later hops query the previous result, entering its shadow root when one
// is attached and latching the virtual-anchor flag.
func queryFrom(doc *dom.Document, root *dom.Element, virtual *bool, selector string) (*dom.Element, error) {
	if root == nil {
		return doc.Query(selector)
	}
	if sr := root.ShadowRoot(); sr != nil {
		*virtual = true
		return sr.Query(selector)
	}
	return root.Query(selector)
}
