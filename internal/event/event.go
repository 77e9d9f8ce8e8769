// internal/event/event.go
package event

// EventType names a window event.
type EventType string

// Listener receives dispatched events. The returned bool reports whether the
// event was handled.
type Listener interface {
	OnEvent(event Event) bool
}

// ListenerFunc adapts a function to Listener.
type ListenerFunc func(Event) bool

func (f ListenerFunc) OnEvent(e Event) bool { return f(e) }

// Dispatcher routes events to the listeners subscribed to their type.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe adds a listener for eventType.
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// Unsubscribe removes the first registration of listener for eventType.
// Listeners must be comparable; ListenerFunc values cannot be unsubscribed.
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	if listeners, exists := d.listeners[eventType]; exists {
		for i, l := range listeners {
			if l == listener {
				d.listeners[eventType] = append(listeners[:i], listeners[i+1:]...)
				break
			}
		}
	}
}

// Dispatch sends the event to every listener of its type and reports whether
// any of them handled it. Events with no listeners are unhandled.
func (d *Dispatcher) Dispatch(event Event) bool {
	handled := false
	if listeners, exists := d.listeners[event.Type]; exists {
		for _, listener := range listeners {
			if listener.OnEvent(event) {
				handled = true
			}
		}
	}
	return handled
}
