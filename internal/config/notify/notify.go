// Package notify delivers configuration reload notifications.
//
// Components subscribe an Observer and receive an Event whenever a reload
// publishes a new configuration snapshot, or when a reload attempt fails
// and the previous snapshot is kept.
package notify

import "sync"

// EventType classifies a notification.
type EventType uint8

const (
	// EventReload means a new configuration snapshot was published.
	EventReload EventType = iota
	// EventError means a reload attempt failed; the old snapshot stands.
	EventError
)

// String returns the event type name.
func (t EventType) String() string {
	switch t {
	case EventReload:
		return "reload"
	case EventError:
		return "error"
	default:
		return "unknown"
	}
}

// Event is one notification.
type Event struct {
	// Type classifies the event.
	Type EventType

	// Path is the file whose change triggered the reload, when known.
	Path string

	// Err carries the failure for EventError events.
	Err error
}

// Observer is called for each event. Observers run synchronously on the
// notifying goroutine and must not block.
type Observer func(event Event)

// Subscription is an active observer registration.
type Subscription struct {
	id       uint64
	notifier *Notifier
}

// Unsubscribe removes this subscription. Safe to call more than once.
func (s *Subscription) Unsubscribe() {
	if s.notifier != nil {
		s.notifier.unsubscribe(s.id)
		s.notifier = nil
	}
}

// Notifier manages subscriptions and fan-out.
type Notifier struct {
	mu        sync.RWMutex
	observers map[uint64]Observer
	nextID    uint64
	closed    bool
}

// New creates a Notifier.
func New() *Notifier {
	return &Notifier{observers: make(map[uint64]Observer)}
}

// Subscribe registers an observer for all events.
func (n *Notifier) Subscribe(observer Observer) *Subscription {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.closed {
		return &Subscription{}
	}
	n.nextID++
	id := n.nextID
	n.observers[id] = observer
	return &Subscription{id: id, notifier: n}
}

func (n *Notifier) unsubscribe(id uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	delete(n.observers, id)
}

// NotifyReload announces a new published snapshot.
func (n *Notifier) NotifyReload(path string) {
	n.notify(Event{Type: EventReload, Path: path})
}

// NotifyError announces a failed reload.
func (n *Notifier) NotifyError(path string, err error) {
	n.notify(Event{Type: EventError, Path: path, Err: err})
}

func (n *Notifier) notify(event Event) {
	n.mu.RLock()
	observers := make([]Observer, 0, len(n.observers))
	for _, o := range n.observers {
		observers = append(observers, o)
	}
	n.mu.RUnlock()

	for _, o := range observers {
		o(event)
	}
}

// Close drops all subscriptions; further Subscribe calls are no-ops.
func (n *Notifier) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.closed = true
	n.observers = make(map[uint64]Observer)
}
