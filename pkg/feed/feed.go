package feed

import (
	"context"
	"encoding/json"
	"fmt"

	"forestwatch.app/sos-dashboard-service/pkg/models"
)

type EventType string

const (
	EventInsert EventType = "INSERT"
	EventUpdate EventType = "UPDATE"
	EventDelete EventType = "DELETE"
)

// Event is one row-change notification for the sos_alerts table. New carries
// the bare row for inserts and updates, Old for updates and deletes. The
// payload never includes joined reporter fields; consumers re-fetch those.
type Event struct {
	Type EventType        `json:"type"`
	New  *models.SOSAlert `json:"new,omitempty"`
	Old  *models.SOSAlert `json:"old,omitempty"`
}

// AlertID returns the id of the row the event refers to.
func (e Event) AlertID() string {
	if e.New != nil {
		return e.New.ID
	}
	if e.Old != nil {
		return e.Old.ID
	}
	return ""
}

// Publisher emits row-change events onto the feed transport so that every
// dashboard instance, the writer's own included, converges through the
// same path.
type Publisher interface {
	Publish(ctx context.Context, ev Event) error
}

func Encode(ev Event) ([]byte, error) {
	return json.Marshal(ev)
}

func Decode(data []byte) (Event, error) {
	var ev Event
	if err := json.Unmarshal(data, &ev); err != nil {
		return Event{}, err
	}
	switch ev.Type {
	case EventInsert:
		if ev.New == nil {
			return Event{}, fmt.Errorf("insert event without new row")
		}
	case EventUpdate:
		if ev.New == nil {
			return Event{}, fmt.Errorf("update event without new row")
		}
	case EventDelete:
		if ev.Old == nil {
			return Event{}, fmt.Errorf("delete event without old row")
		}
	default:
		return Event{}, fmt.Errorf("unknown event type %q", ev.Type)
	}
	return ev, nil
}
