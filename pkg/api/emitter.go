package api

import "sync"

// Emitter is a named-event subscribe/trigger capability. Steps and tours
// hold one by composition rather than inheriting emitter behavior; handlers
// run synchronously in subscription order.
//
// The mutex only guards the handler table so observers may subscribe from
// test goroutines; triggering itself follows the single-threaded lifecycle.
type Emitter struct {
	mu       sync.Mutex
	handlers map[EventType][]Handler
	anyFns   []Handler
}

// On subscribes fn to the named event.
func (e *Emitter) On(t EventType, fn Handler) {
	if fn == nil {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.handlers == nil {
		e.handlers = make(map[EventType][]Handler)
	}
	e.handlers[t] = append(e.handlers[t], fn)
}

// OnAny subscribes fn to every event. Used by the logging and metrics
// subscribers.
func (e *Emitter) OnAny(fn Handler) {
	if fn == nil {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.anyFns = append(e.anyFns, fn)
}

// Off removes every handler subscribed to the named event. Go functions are
// not comparable, so removal is per event, not per handler.
func (e *Emitter) Off(t EventType) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.handlers, t)
}

// Trigger delivers ev to the handlers for ev.Type, then to the OnAny
// handlers.
func (e *Emitter) Trigger(ev Event) {
	e.mu.Lock()
	fns := append([]Handler(nil), e.handlers[ev.Type]...)
	fns = append(fns, e.anyFns...)
	e.mu.Unlock()

	for _, fn := range fns {
		fn(ev)
	}
}
