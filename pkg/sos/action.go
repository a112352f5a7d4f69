package sos

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"forestwatch.app/sos-dashboard-service/pkg/common"
	"forestwatch.app/sos-dashboard-service/pkg/feed"
	"forestwatch.app/sos-dashboard-service/pkg/models"
)

func (s *SOS) createAlert(profileID string, lat, lng float64) (*models.SOSAlert, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameSOSCore,
		zap.String(common.LoggerFieldSOSCategory, common.LoggerCategorySOSAlert),
	)

	alert := models.SOSAlert{
		ID:        uuid.NewString(),
		ProfileID: profileID,
		Status:    models.AlertStatusOpen,
		Lat:       lat,
		Lng:       lng,
		CreatedAt: common.NowTimestamp(),
	}

	logger.Info("Raising SOS alert", zap.Reflect("alert", alert))

	if err := s.Db.Conn.Create(&alert).Error; err != nil {
		return nil, err
	}

	logger.Info("SOS alert saved", zap.Reflect("alert", alert))

	s.publish(feed.Event{Type: feed.EventInsert, New: &alert})
	return &alert, nil
}

func (s *SOS) updateAlertStatus(alertID string, status models.AlertStatus) error {
	logger := common.GetLoggerWith(
		common.LoggerNameSOSCore,
		zap.String(common.LoggerFieldSOSCategory, common.LoggerCategorySOSAlert),
	)

	var current models.SOSAlert
	if err := s.Db.Conn.First(&current, "id = ?", alertID).Error; err != nil {
		logger.Error("Error updating SOS alert", zap.Error(err),
			zap.String("alert_id", alertID), zap.String("status", string(status)))
		return err
	}

	updated := current
	updated.Status = status
	if status != models.AlertStatusOpen {
		// closed_at is stamped on any transition away from open
		ts := common.NowTimestamp()
		updated.ClosedAt = &ts
	} else {
		updated.ClosedAt = nil
	}

	err := s.Db.Conn.Model(&models.SOSAlert{}).
		Where("id = ?", alertID).
		Updates(map[string]any{"status": updated.Status, "closed_at": updated.ClosedAt}).Error
	if err != nil {
		logger.Error("Error updating SOS alert", zap.Error(err),
			zap.String("alert_id", alertID), zap.String("status", string(status)))
		return err
	}

	logger.Info("Updated SOS alert status",
		zap.String("alert_id", alertID), zap.String("status", string(status)))

	s.publish(feed.Event{Type: feed.EventUpdate, New: &updated, Old: &current})
	return nil
}

func (s *SOS) deleteAlert(alertID string) error {
	logger := common.GetLoggerWith(
		common.LoggerNameSOSCore,
		zap.String(common.LoggerFieldSOSCategory, common.LoggerCategorySOSAlert),
	)

	var current models.SOSAlert
	if err := s.Db.Conn.First(&current, "id = ?", alertID).Error; err != nil {
		return err
	}

	if err := s.Db.Conn.Delete(&models.SOSAlert{}, "id = ?", alertID).Error; err != nil {
		logger.Error("Error deleting SOS alert", zap.Error(err), zap.String("alert_id", alertID))
		return err
	}

	logger.Info("Deleted SOS alert", zap.String("alert_id", alertID))

	s.publish(feed.Event{Type: feed.EventDelete, Old: &current})
	return nil
}

// publish emits the row change onto the feed so every dashboard instance,
// this one included, converges through the same subscription path. A feed
// error never fails the write that already happened.
func (s *SOS) publish(ev feed.Event) {
	if s.Feed == nil {
		return
	}
	if err := s.Feed.Publish(context.Background(), ev); err != nil {
		common.GetLoggerWith(
			common.LoggerNameSOSCore,
			zap.String(common.LoggerFieldSOSCategory, common.LoggerCategorySOSAlert),
		).Error("Failed to publish change event", zap.Error(err), zap.String("alert_id", ev.AlertID()))
	}
}

type IAlertActionImpl struct {
	sos *SOS
}

func (ia *IAlertActionImpl) CreateAlert(profileID string, lat, lng float64) (*models.SOSAlert, error) {
	return ia.sos.createAlert(profileID, lat, lng)
}

func (ia *IAlertActionImpl) UpdateAlertStatus(alertID string, status models.AlertStatus) error {
	return ia.sos.updateAlertStatus(alertID, status)
}

func (ia *IAlertActionImpl) DeleteAlert(alertID string) error {
	return ia.sos.deleteAlert(alertID)
}

func (s *SOS) GetIAlertAction() IAlertAction {
	return &IAlertActionImpl{sos: s}
}
