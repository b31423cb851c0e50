package api

import "testing"

func TestParseAttach(t *testing.T) {
	cases := []struct {
		name     string
		in       string
		kind     AttachKind
		selector string
		on       Placement
	}{
		{"selector and placement", ".sidebar right", AttachBySelector, ".sidebar", PlacementRight},
		{"placement variant", "#menu bottom-start", AttachBySelector, "#menu", Placement("bottom-start")},
		{"extra whitespace", "   .a   top  ", AttachBySelector, ".a", PlacementTop},
		{"descendant selector", "#nav .item left", AttachBySelector, "#nav .item", PlacementLeft},
		{"missing placement", ".sidebar", AttachNone, "", ""},
		{"bad placement", ".sidebar sideways", AttachNone, "", ""},
		{"empty", "", AttachNone, "", ""},
		{"placement only", "right", AttachNone, "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseAttach(tc.in)
			if got.Kind != tc.kind {
				t.Fatalf("Kind = %v, want %v", got.Kind, tc.kind)
			}
			if got.Selector != tc.selector {
				t.Fatalf("Selector = %q, want %q", got.Selector, tc.selector)
			}
			if got.On != tc.on {
				t.Fatalf("On = %q, want %q", got.On, tc.on)
			}
		})
	}
}

func TestAttachConstructorsNormalizeEmpty(t *testing.T) {
	if got := AttachElement(nil, PlacementTop); got.Kind != AttachNone {
		t.Fatalf("nil element should yield AttachNone, got %v", got.Kind)
	}
	if got := AttachSelector("", PlacementTop); got.Kind != AttachNone {
		t.Fatalf("empty selector should yield AttachNone, got %v", got.Kind)
	}
	if got := AttachChain(nil, PlacementTop); got.Kind != AttachNone {
		t.Fatalf("empty chain should yield AttachNone, got %v", got.Kind)
	}
}

func TestAttachChainSingleHopDecaysToSelector(t *testing.T) {
	got := AttachChain([]string{".only"}, PlacementBottom)
	if got.Kind != AttachBySelector {
		t.Fatalf("Kind = %v, want AttachBySelector", got.Kind)
	}
	if got.Selector != ".only" {
		t.Fatalf("Selector = %q", got.Selector)
	}

	multi := AttachChain([]string{".host", ".inner"}, PlacementBottom)
	if multi.Kind != AttachByChain || len(multi.Chain) != 2 {
		t.Fatalf("unexpected chain descriptor: %+v", multi)
	}
}

func TestResolvedAttachCentered(t *testing.T) {
	if !(ResolvedAttach{}).Centered() {
		t.Fatal("zero ResolvedAttach should be centered")
	}
}

func TestParsePlacement(t *testing.T) {
	valid := []string{"auto", "top", "bottom", "left", "right", "top-start", "right-end"}
	for _, s := range valid {
		if _, ok := ParsePlacement(s); !ok {
			t.Fatalf("ParsePlacement(%q) rejected a valid placement", s)
		}
	}
	invalid := []string{"", "middle", "top-middle", "up", "-start"}
	for _, s := range invalid {
		if _, ok := ParsePlacement(s); ok {
			t.Fatalf("ParsePlacement(%q) accepted an invalid placement", s)
		}
	}
}
