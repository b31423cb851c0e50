package content

import (
	"strings"
	"testing"

	"github.com/petrijr/guidepost/pkg/api"
	"github.com/petrijr/guidepost/pkg/dom"
)

func TestBuildContainerBasics(t *testing.T) {
	doc := dom.NewDocument()

	el := Build(doc, api.StepOptions{Classes: "intro highlight"}, "step-0-0", nil, nil)
	if el.ID() != "step-0-0" {
		t.Fatalf("id = %q, want step-0-0", el.ID())
	}
	if _, ok := el.Attribute("hidden"); !ok {
		t.Fatal("container should start hidden")
	}
	if !el.HasClass("guidepost-step") || !el.HasClass("intro") || !el.HasClass("highlight") {
		t.Fatalf("missing classes: %s", el.HTML())
	}
}

func TestBuildTitleAddsMarkerClass(t *testing.T) {
	doc := dom.NewDocument()

	el := Build(doc, api.StepOptions{Title: "Welcome"}, "s-0", nil, nil)
	if !el.HasClass("guidepost-has-title") {
		t.Fatal("container should carry the has-title marker")
	}

	h, err := el.Query(".guidepost-title")
	if err != nil || h == nil {
		t.Fatalf("title element missing: %v", err)
	}
	if h.Text() != "Welcome" {
		t.Fatalf("title text = %q", h.Text())
	}

	plain := Build(doc, api.StepOptions{Text: api.Text("hi")}, "s-1", nil, nil)
	if plain.HasClass("guidepost-has-title") {
		t.Fatal("untitled step should not carry the marker")
	}
}

func TestBuildTextVariants(t *testing.T) {
	doc := dom.NewDocument()

	t.Run("string", func(t *testing.T) {
		el := Build(doc, api.StepOptions{Text: api.Text("one line")}, "s", nil, nil)
		ps, _ := el.Query(".guidepost-text")
		if ps == nil || !strings.Contains(ps.Text(), "one line") {
			t.Fatalf("body missing: %s", el.HTML())
		}
	})

	t.Run("list renders one paragraph per line", func(t *testing.T) {
		el := Build(doc, api.StepOptions{Text: api.TextLines("a", "b", "c")}, "s", nil, nil)
		body, _ := el.Query(".guidepost-text")
		if body == nil {
			t.Fatalf("body missing: %s", el.HTML())
		}
		if got := strings.Count(body.HTML(), "<p>"); got != 3 {
			t.Fatalf("paragraph count = %d, want 3", got)
		}
	})

	t.Run("fragment is adopted", func(t *testing.T) {
		frag := doc.CreateElement("ul")
		frag.AddClass("custom")
		el := Build(doc, api.StepOptions{Text: api.TextFragment(frag)}, "s", nil, nil)
		got, _ := el.Query(".custom")
		if got != frag {
			t.Fatal("fragment should be appended as-is")
		}
	})

	t.Run("none renders no body", func(t *testing.T) {
		el := Build(doc, api.StepOptions{}, "s", nil, nil)
		body, _ := el.Query(".guidepost-text")
		if body != nil {
			t.Fatal("empty text should render no body")
		}
	})
}

func TestBuildTextFuncReceivesContainer(t *testing.T) {
	doc := dom.NewDocument()

	var seen *dom.Element
	opts := api.StepOptions{Text: api.TextFunc(func(container *dom.Element) api.TextSource {
		seen = container
		return api.Text("computed")
	})}

	el := Build(doc, opts, "s", nil, nil)
	if seen != el {
		t.Fatal("text function should receive the container")
	}
	body, _ := el.Query(".guidepost-text")
	if body == nil || !strings.Contains(body.Text(), "computed") {
		t.Fatalf("computed body missing: %s", el.HTML())
	}
}

func TestBuildTextFuncReturningFuncRendersNothing(t *testing.T) {
	doc := dom.NewDocument()

	opts := api.StepOptions{Text: api.TextFunc(func(*dom.Element) api.TextSource {
		return api.TextFunc(func(*dom.Element) api.TextSource { return api.Text("never") })
	})}

	el := Build(doc, opts, "s", nil, nil)
	body, _ := el.Query(".guidepost-text")
	if body != nil {
		t.Fatal("nested function variant should render no body")
	}
}

func TestBuildCancelLink(t *testing.T) {
	doc := dom.NewDocument()

	var cancelled bool
	el := Build(doc, api.StepOptions{ShowCancelLink: true}, "s", func() { cancelled = true }, nil)

	link, err := el.Query(".guidepost-cancel-link")
	if err != nil || link == nil {
		t.Fatalf("cancel link missing: %v", err)
	}
	link.Dispatch("click")
	if !cancelled {
		t.Fatal("cancel link click should invoke cancel")
	}
}

func TestBuildButtons(t *testing.T) {
	doc := dom.NewDocument()

	var clicks, hovers int
	opts := api.StepOptions{
		Buttons: []api.Button{
			{Text: "Next", Classes: "primary", Action: func() { clicks++ }},
			{Text: "Peek", Events: map[string]dom.Listener{
				"mouseover": func(dom.Event) { hovers++ },
			}},
		},
	}

	el := Build(doc, opts, "s", nil, nil)
	btns, err := el.QueryAll(".guidepost-footer button")
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if len(btns) != 2 {
		t.Fatalf("button count = %d, want 2", len(btns))
	}

	if !btns[0].HasClass("primary") || btns[0].Text() != "Next" {
		t.Fatalf("unexpected first button: %s", btns[0].HTML())
	}
	btns[0].Dispatch("click")
	if clicks != 1 {
		t.Fatalf("Action fired %d times, want 1", clicks)
	}

	btns[1].Dispatch("mouseover")
	if hovers != 1 {
		t.Fatalf("event handler fired %d times, want 1", hovers)
	}
}

func TestBuildButtonActionWinsOverClickEvent(t *testing.T) {
	doc := dom.NewDocument()

	var action, event int
	opts := api.StepOptions{
		Buttons: []api.Button{{
			Text:   "Go",
			Action: func() { action++ },
			Events: map[string]dom.Listener{"click": func(dom.Event) { event++ }},
		}},
	}

	el := Build(doc, opts, "s", nil, nil)
	btn, _ := el.Query("button")
	btn.Dispatch("click")

	if action != 1 {
		t.Fatalf("Action fired %d times, want 1", action)
	}
	if event != 0 {
		t.Fatal("Events[\"click\"] must not fire when Action is set")
	}
}
