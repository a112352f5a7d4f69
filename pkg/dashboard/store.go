package dashboard

import (
	"sync"

	"go.uber.org/zap"

	"forestwatch.app/sos-dashboard-service/pkg/common"
	"forestwatch.app/sos-dashboard-service/pkg/models"
)

// AlertPatch is the partial update merged into an existing record. Both
// fields are always applied, mirroring what an update notification carries.
type AlertPatch struct {
	Status   models.AlertStatus
	ClosedAt *string
}

// Store holds the current known set of alerts as an ordered sequence,
// newest first. It is the single shared view state: the feed subscriber and
// the resolver both write into it, stream clients read snapshots out of it.
// Every mutation is broadcast so dependent views re-render.
type Store struct {
	mu     sync.RWMutex
	alerts []models.FormattedAlert
	events *Broadcaster
}

func NewStore(events *Broadcaster) *Store {
	return &Store{events: events}
}

// Load replaces the whole collection with the initial snapshot. No events
// are emitted; clients get the initial state when they connect.
func (s *Store) Load(alerts []models.FormattedAlert) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.alerts = make([]models.FormattedAlert, len(alerts))
	copy(s.alerts, alerts)
}

// InsertFront prepends the record. A record whose id is already present is
// a duplicate delivery and is ignored, keeping id uniqueness intact.
func (s *Store) InsertFront(alert models.FormattedAlert) ([]models.FormattedAlert, bool) {
	s.mu.Lock()

	for i := range s.alerts {
		if s.alerts[i].ID == alert.ID {
			logger := common.GetLoggerWith(
				common.LoggerNameDashboard,
				zap.String(common.LoggerFieldSOSCategory, common.LoggerCategoryDashStore),
			)
			logger.Warn("Duplicate alert delivery ignored", zap.String("alert_id", alert.ID))
			snapshot := s.snapshotLocked()
			s.mu.Unlock()
			return snapshot, false
		}
	}

	s.alerts = append([]models.FormattedAlert{alert}, s.alerts...)
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.events.Publish(Event{Kind: EventAlertNew, Alert: &alert})
	return snapshot, true
}

// Patch merges the partial fields into the record matching id, keeping its
// position. Unknown ids are a no-op; re-applying identical values is too.
func (s *Store) Patch(id string, patch AlertPatch) ([]models.FormattedAlert, bool) {
	s.mu.Lock()

	found := false
	for i := range s.alerts {
		if s.alerts[i].ID == id {
			s.alerts[i].Status = patch.Status
			s.alerts[i].ClosedAt = patch.ClosedAt
			found = true
			break
		}
	}
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	if found {
		s.events.Publish(Event{
			Kind:     EventAlertUpdated,
			AlertID:  id,
			Status:   patch.Status,
			ClosedAt: patch.ClosedAt,
		})
	}
	return snapshot, found
}

// Remove deletes the record matching id. Unknown ids are a no-op.
func (s *Store) Remove(id string) ([]models.FormattedAlert, bool) {
	s.mu.Lock()

	found := false
	for i := range s.alerts {
		if s.alerts[i].ID == id {
			s.alerts = append(s.alerts[:i], s.alerts[i+1:]...)
			found = true
			break
		}
	}
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	if found {
		s.events.Publish(Event{Kind: EventAlertRemoved, AlertID: id})
	}
	return snapshot, found
}

func (s *Store) Get(id string) (models.FormattedAlert, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.alerts {
		if s.alerts[i].ID == id {
			return s.alerts[i], true
		}
	}
	return models.FormattedAlert{}, false
}

func (s *Store) Snapshot() []models.FormattedAlert {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.alerts)
}

func (s *Store) snapshotLocked() []models.FormattedAlert {
	snapshot := make([]models.FormattedAlert, len(s.alerts))
	copy(snapshot, s.alerts)
	return snapshot
}
