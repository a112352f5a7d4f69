package dashboard

import (
	"sync"

	"forestwatch.app/sos-dashboard-service/pkg/models"
)

type EventKind string

const (
	EventSnapshot     EventKind = "snapshot"
	EventAlertNew     EventKind = "alert_new"
	EventAlertUpdated EventKind = "alert_updated"
	EventAlertRemoved EventKind = "alert_removed"
	EventBanner       EventKind = "banner"
	EventAlarm        EventKind = "alarm"
)

const (
	AlarmStarted = "started"
	AlarmStopped = "stopped"
)

const (
	BannerLevelSuccess = "success"
	BannerLevelInfo    = "info"
	BannerLevelError   = "error"
)

// Banner is a notification surfaced to the operator. Sticky banners stay up
// until dismissed; dismissing the sticky alarm banner also stops the alarm.
type Banner struct {
	ID          string `json:"id"`
	Level       string `json:"level"`
	Message     string `json:"message"`
	Description string `json:"description,omitempty"`
	Sticky      bool   `json:"sticky"`
}

// Event is what stream clients render from: store mutations, banners and
// alarm state changes.
type Event struct {
	Kind     EventKind               `json:"event"`
	Alert    *models.FormattedAlert  `json:"alert,omitempty"`
	Alerts   []models.FormattedAlert `json:"alerts,omitempty"`
	AlertID  string                  `json:"alert_id,omitempty"`
	Status   models.AlertStatus      `json:"status,omitempty"`
	ClosedAt *string                 `json:"closed_at,omitempty"`
	Banner   *Banner                 `json:"banner,omitempty"`
	Alarm    string                  `json:"alarm,omitempty"`
}

// Broadcaster fans events out to every connected stream client. Publishing
// never blocks; a slow client loses events rather than stalling the single
// writer loop.
type Broadcaster struct {
	mu   sync.Mutex
	subs map[int]chan Event
	next int
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{subs: make(map[int]chan Event)}
}

func (b *Broadcaster) Subscribe() (<-chan Event, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.next
	b.next++
	ch := make(chan Event, 64)
	b.subs[id] = ch

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if sub, ok := b.subs[id]; ok {
			delete(b.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

func (b *Broadcaster) Publish(ev Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, ch := range b.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}

func (b *Broadcaster) SubscriberCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}
