package feed

import "context"

// LocalBus is an in-process feed for single-instance deployments and tests:
// published events loop straight back to the consumer channel.
type LocalBus struct {
	events chan Event
}

func NewLocalBus() *LocalBus {
	return &LocalBus{events: make(chan Event, 256)}
}

func (b *LocalBus) Events() <-chan Event {
	return b.events
}

func (b *LocalBus) Publish(ctx context.Context, ev Event) error {
	select {
	case b.events <- ev:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
