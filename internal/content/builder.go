// Package content builds a step's visual fragment from its declarative
// options. Construction is pure: the only side effect is creating detached
// nodes on the injected surface, so the builder is testable without a real
// document.
package content

import (
	"log/slog"
	"strings"

	"github.com/petrijr/guidepost/pkg/api"
	"github.com/petrijr/guidepost/pkg/dom"
)

// Build constructs the container for one step generation.
//
// containerID is the composite id (step id + tour-owned counter) that keeps
// concurrently-live steps sharing an options id distinguishable. cancel is
// wired to the cancel control when opts.ShowCancelLink is set. The caller
// is responsible for the configuration-time contracts (opts.Validate); a
// button that still carries both Action and Events["click"] at build time
// gets only its Action wired.
func Build(doc *dom.Document, opts api.StepOptions, containerID string, cancel func(), logger *slog.Logger) *dom.Element {
	if logger == nil {
		logger = slog.Default()
	}

	container := doc.CreateElement("div")
	container.SetAttribute("id", containerID)
	container.SetAttribute("hidden", "")
	container.AddClass("guidepost-step")
	if opts.Classes != "" {
		container.AddClass(splitClasses(opts.Classes)...)
	}

	inner := doc.CreateElement("div")
	inner.AddClass("guidepost-content")
	container.AppendChild(inner)

	if opts.Title != "" || opts.ShowCancelLink {
		inner.AppendChild(buildHeader(doc, opts, container, cancel))
	}
	if body := buildBody(doc, opts.Text, container, logger); body != nil {
		inner.AppendChild(body)
	}
	if len(opts.Buttons) > 0 {
		inner.AppendChild(buildFooter(doc, opts.Buttons))
	}

	return container
}

func buildHeader(doc *dom.Document, opts api.StepOptions, container *dom.Element, cancel func()) *dom.Element {
	header := doc.CreateElement("header")
	header.AddClass("guidepost-header")

	if opts.Title != "" {
		title := doc.CreateElement("h3")
		title.AddClass("guidepost-title")
		title.SetText(opts.Title)
		header.AppendChild(title)
		container.AddClass("guidepost-has-title")
	}

	if opts.ShowCancelLink {
		link := doc.CreateElement("a")
		link.AddClass("guidepost-cancel-link")
		link.SetAttribute("href", "#")
		link.SetText("×")
		link.On("click", func(dom.Event) {
			if cancel != nil {
				cancel()
			}
		})
		header.AppendChild(link)
	}

	return header
}

// buildBody renders the tagged text variant. A function variant is invoked
// with the container and its result re-dispatched once; a function that
// returns another function is diagnosed and renders nothing.
func buildBody(doc *dom.Document, text api.TextSource, container *dom.Element, logger *slog.Logger) *dom.Element {
	if text.Kind == api.TextFuncKind {
		if text.Fn == nil {
			return nil
		}
		text = text.Fn(container)
		if text.Kind == api.TextFuncKind {
			logger.Warn("guidepost: text function returned another function, rendering no body")
			return nil
		}
	}

	switch text.Kind {
	case api.TextNone:
		return nil
	case api.TextString:
		body := newBody(doc)
		body.AppendChild(paragraph(doc, text.Value))
		return body
	case api.TextList:
		body := newBody(doc)
		for _, line := range text.Lines {
			body.AppendChild(paragraph(doc, line))
		}
		return body
	case api.TextFragmentKind:
		body := newBody(doc)
		body.AppendChild(text.Fragment)
		return body
	}
	return nil
}

func buildFooter(doc *dom.Document, buttons []api.Button) *dom.Element {
	footer := doc.CreateElement("footer")
	footer.AddClass("guidepost-footer")

	for _, b := range buttons {
		btn := doc.CreateElement("button")
		btn.AddClass("guidepost-button")
		if b.Classes != "" {
			btn.AddClass(splitClasses(b.Classes)...)
		}
		btn.SetText(b.Text)

		if b.Action != nil {
			action := b.Action
			btn.On("click", func(dom.Event) { action() })
		}
		for name, fn := range b.Events {
			if name == "click" && b.Action != nil {
				continue
			}
			btn.On(name, fn)
		}

		footer.AppendChild(btn)
	}

	return footer
}

func newBody(doc *dom.Document) *dom.Element {
	body := doc.CreateElement("div")
	body.AddClass("guidepost-text")
	return body
}

func paragraph(doc *dom.Document, text string) *dom.Element {
	p := doc.CreateElement("p")
	p.SetText(text)
	return p
}

func splitClasses(s string) []string {
	return strings.Fields(s)
}
