package dashboard

import (
	"forestwatch.app/sos-dashboard-service/pkg/models"
)

func openAlert(id, name string) models.FormattedAlert {
	return models.FormattedAlert{
		ID:        id,
		Status:    models.AlertStatusOpen,
		Name:      name,
		Lat:       -33.45,
		Lng:       -70.66,
		CreatedAt: "2024-06-01T09:00:00Z",
	}
}

// drain collects everything currently buffered on an event channel.
func drain(ch <-chan Event) []Event {
	var events []Event
	for {
		select {
		case ev := <-ch:
			events = append(events, ev)
		default:
			return events
		}
	}
}

func bannersOf(events []Event) []Banner {
	var banners []Banner
	for _, ev := range events {
		if ev.Kind == EventBanner && ev.Banner != nil {
			banners = append(banners, *ev.Banner)
		}
	}
	return banners
}

func alarmsOf(events []Event) []string {
	var alarms []string
	for _, ev := range events {
		if ev.Kind == EventAlarm {
			alarms = append(alarms, ev.Alarm)
		}
	}
	return alarms
}
