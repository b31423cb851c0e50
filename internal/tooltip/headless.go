package tooltip

import (
	"github.com/petrijr/guidepost/pkg/api"
	"github.com/petrijr/guidepost/pkg/dom"
)

// headlessHandle is the reference positioning engine: it tracks visibility
// and remembers what it was bound to, and does no placement math. It plays
// the role an in-memory backend plays for a storage engine, the default
// for tests and embedding.
type headlessHandle struct {
	anchor    *dom.Element
	opts      api.TooltipOptions
	visible   bool
	destroyed bool

	shows    int
	hides    int
}

// Headless returns a factory producing headless handles.
func Headless() api.TooltipFactory {
	return func(anchor *dom.Element, opts api.TooltipOptions) (api.TooltipHandle, error) {
		return &headlessHandle{anchor: anchor, opts: opts}, nil
	}
}

func (h *headlessHandle) Show() {
	if h.destroyed {
		return
	}
	h.visible = true
	h.shows++
}

func (h *headlessHandle) Hide() {
	h.visible = false
	h.hides++
}

func (h *headlessHandle) Destroy() {
	h.visible = false
	h.destroyed = true
}

func (h *headlessHandle) State() api.TooltipState {
	return api.TooltipState{IsVisible: h.visible}
}
