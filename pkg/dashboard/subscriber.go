package dashboard

import (
	"context"

	"go.uber.org/zap"

	"forestwatch.app/sos-dashboard-service/pkg/common"
	"forestwatch.app/sos-dashboard-service/pkg/feed"
	"forestwatch.app/sos-dashboard-service/pkg/models"
	"forestwatch.app/sos-dashboard-service/pkg/sos"
)

// Subscriber consumes row-change events for the sos_alerts table and
// reconciles the store against them. Events are handled strictly one at a
// time in delivery order; the consumer loop is the store's primary writer.
type Subscriber struct {
	Store    *Store
	Query    sos.IAlertQuery
	Notifier *Notifier
}

// Run drains the event channel until it closes or the context is cancelled.
func (s *Subscriber) Run(ctx context.Context, events <-chan feed.Event) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			s.Handle(ev)
		}
	}
}

// Handle dispatches one event. Exported so tests can drive the subscriber
// without a live feed.
func (s *Subscriber) Handle(ev feed.Event) {
	logger := common.GetLoggerWith(
		common.LoggerNameDashboard,
		zap.String(common.LoggerFieldSOSCategory, common.LoggerCategoryDashSubscriber),
	)

	switch ev.Type {
	case feed.EventInsert:
		if ev.New == nil {
			logger.Warn("Insert event without new row dropped")
			return
		}
		// the notification carries only the bare row; re-fetch the joined
		// row for the reporter's name and picture
		formatted, err := s.Query.FetchAlertByID(ev.New.ID)
		if err != nil {
			// no retry; the next full reload recovers
			logger.Error("Error fetching new alert", zap.Error(err), zap.String("alert_id", ev.New.ID))
			return
		}
		if _, inserted := s.Store.InsertFront(*formatted); inserted {
			s.Notifier.AlertRaised(*formatted)
		}

	case feed.EventUpdate:
		if ev.New == nil {
			logger.Warn("Update event without new row dropped")
			return
		}
		s.Store.Patch(ev.New.ID, AlertPatch{Status: ev.New.Status, ClosedAt: ev.New.ClosedAt})

		if ev.Old != nil && ev.Old.Status == models.AlertStatusOpen && ev.New.Status != models.AlertStatusOpen {
			s.Notifier.Info("Alert updated", "Status: "+statusLabel(ev.New.Status))
		}

	case feed.EventDelete:
		if ev.Old == nil {
			logger.Warn("Delete event without old row dropped")
			return
		}
		if _, removed := s.Store.Remove(ev.Old.ID); removed {
			s.Notifier.Info("Alert removed", "")
		}

	default:
		logger.Warn("Unknown feed event type dropped", zap.String("type", string(ev.Type)))
	}
}

func statusLabel(status models.AlertStatus) string {
	if status == models.AlertStatusClosed {
		return "Resolved"
	}
	return string(status)
}
