package service

// EventType defines the type of event
type EventType string

const (
	EventSiteCreated      EventType = "site_created"
	EventSiteUpdated      EventType = "site_updated"
	EventSiteDeleted      EventType = "site_deleted"
	EventSiteMoved        EventType = "site_moved"
	EventSelectionChanged EventType = "selection_changed"
	EventFilterChanged    EventType = "filter_changed"
	EventCanvasResized    EventType = "canvas_resized"
)

// Event carries one state change to subscribers. A UI host surfaces these
// as toasts or list refreshes; the snapshot binary logs them.
type Event struct {
	Type    EventType   `json:"type"`
	Payload interface{} `json:"payload,omitempty"`
}

// EventBus allows publishing and subscribing to events
type EventBus struct {
	subscribers []chan<- Event
}

// NewEventBus creates a new event bus
func NewEventBus() *EventBus {
	return &EventBus{
		subscribers: make([]chan<- Event, 0),
	}
}

// Subscribe adds a subscriber to receive events
func (eb *EventBus) Subscribe(ch chan<- Event) {
	eb.subscribers = append(eb.subscribers, ch)
}

// Publish sends an event to all subscribers
func (eb *EventBus) Publish(event Event) {
	for _, ch := range eb.subscribers {
		select {
		case ch <- event:
		default:
			// Subscriber is slow, skip
		}
	}
}
