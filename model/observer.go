package model

import "slices"

// Subscriber receives a change notification after every state-changing
// grid operation. The grid passed in is the live grid, not a copy;
// subscribers may read it but must not mutate it. Mutators called
// during a notification fail with ErrReentrantMutation.
//
// Subscribers are compared by interface identity on Unsubscribe, so
// register pointer values rather than func-backed adapters if removal
// is needed.
type Subscriber interface {
	GridChanged(g *Grid)
}

// Subscribe registers a change-notification target. Subscribers are
// notified in registration order. Registering the same subscriber
// twice is a no-op.
func (g *Grid) Subscribe(s Subscriber) {
	if s == nil {
		return
	}
	for _, existing := range g.subscribers {
		if existing == s {
			return
		}
	}
	g.subscribers = append(g.subscribers, s)
}

// Unsubscribe removes a previously registered subscriber. Unknown
// subscribers are ignored. Grid state is unaffected.
func (g *Grid) Unsubscribe(s Subscriber) {
	for i, existing := range g.subscribers {
		if existing == s {
			g.subscribers = append(g.subscribers[:i], g.subscribers[i+1:]...)
			return
		}
	}
}

// notify invokes every registered subscriber exactly once, in
// registration order, after the mutation has fully completed. The
// notifying flag makes re-entrant mutation attempts fail fast. The
// loop runs over a snapshot of the registry so callbacks may
// subscribe or unsubscribe peers without disturbing delivery.
func (g *Grid) notify() {
	g.notifying = true
	defer func() { g.notifying = false }()
	for _, s := range slices.Clone(g.subscribers) {
		s.GridChanged(g)
	}
}
