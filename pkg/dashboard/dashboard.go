package dashboard

import (
	"context"

	"forestwatch.app/sos-dashboard-service/pkg/feed"
	"forestwatch.app/sos-dashboard-service/pkg/sos"
)

// Dashboard wires the store, notifier, subscriber and resolver around one
// broadcaster. The subscriber and resolver are the store's only writers.
type Dashboard struct {
	Events     *Broadcaster
	Store      *Store
	Notifier   *Notifier
	Subscriber *Subscriber
	Resolver   *Resolver

	query sos.IAlertQuery
}

func New(query sos.IAlertQuery, action sos.IAlertAction) *Dashboard {
	events := NewBroadcaster()
	store := NewStore(events)
	notifier := NewNotifier(events)

	return &Dashboard{
		Events:   events,
		Store:    store,
		Notifier: notifier,
		Subscriber: &Subscriber{
			Store:    store,
			Query:    query,
			Notifier: notifier,
		},
		Resolver: &Resolver{
			Store:    store,
			Action:   action,
			Notifier: notifier,
		},
		query: query,
	}
}

// LoadInitial fills the store with the current database state.
func (d *Dashboard) LoadInitial() error {
	alerts, err := d.query.FetchAlerts()
	if err != nil {
		return err
	}
	d.Store.Load(alerts)
	return nil
}

// Run consumes the change feed until the context is cancelled.
func (d *Dashboard) Run(ctx context.Context, events <-chan feed.Event) {
	d.Subscriber.Run(ctx, events)
}
