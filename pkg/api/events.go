package api

// EventType identifies a step or tour lifecycle event.
type EventType string

const (
	EventBeforeShow EventType = "before-show"
	EventShow       EventType = "show"
	EventBeforeHide EventType = "before-hide"
	EventHide       EventType = "hide"
	EventDestroy    EventType = "destroy"
	EventCancel     EventType = "cancel"
	EventComplete   EventType = "complete"

	// Tour-level events.
	EventStart  EventType = "start"
	EventActive EventType = "active"
)

// Event is delivered to handlers subscribed on a step's or tour's emitter.
type Event struct {
	Type   EventType
	StepID string
	TourID string

	// Payload carries event-specific data; nil for most lifecycle events.
	Payload any
}

// Handler processes one event.
type Handler func(Event)
