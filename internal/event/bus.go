package event

// Observer receives every event published on a Bus.
type Observer interface {
	Notify(Event)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(Event)

// Notify calls the wrapped function.
func (f ObserverFunc) Notify(e Event) { f(e) }

// Bus is a synchronous in-process publish/subscribe dispatcher. Events
// are delivered on the publisher's call stack, one observer at a time,
// in subscription order, with no buffering. Observers must not block,
// since their work stalls the simulation.
type Bus struct {
	observers []Observer
}

// NewBus returns an empty bus.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers an observer for all subsequent publishes.
func (b *Bus) Subscribe(obs Observer) {
	if obs == nil {
		return
	}
	b.observers = append(b.observers, obs)
}

// Publish delivers the event to every observer in subscription order.
// Observers may publish further events during delivery; nested events
// reach every observer before the outer Publish returns.
func (b *Bus) Publish(e Event) {
	for _, obs := range b.observers {
		obs.Notify(e)
	}
}
