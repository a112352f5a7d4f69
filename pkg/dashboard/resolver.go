package dashboard

import (
	"errors"

	"go.uber.org/zap"

	"forestwatch.app/sos-dashboard-service/pkg/common"
	"forestwatch.app/sos-dashboard-service/pkg/models"
	"forestwatch.app/sos-dashboard-service/pkg/sos"
)

var ErrAlreadyResolved = errors.New("alert is already resolved")

// Resolver lets an operator mark one alert resolved. On success it patches
// the store optimistically; the feed's own echo of the same update lands
// later and is idempotent against the store.
type Resolver struct {
	Store    *Store
	Action   sos.IAlertAction
	Notifier *Notifier
}

func (r *Resolver) Resolve(alertID string) error {
	logger := common.GetLoggerWith(
		common.LoggerNameDashboard,
		zap.String(common.LoggerFieldSOSCategory, common.LoggerCategoryDashResolver),
	)

	// fail fast on the displayed state, before any backend call
	if current, ok := r.Store.Get(alertID); ok && current.Status == models.AlertStatusClosed {
		return ErrAlreadyResolved
	}

	if err := r.Action.UpdateAlertStatus(alertID, models.AlertStatusClosed); err != nil {
		logger.Error("Error resolving alert", zap.Error(err), zap.String("alert_id", alertID))
		r.Notifier.Error("Failed to update alert")
		return err
	}

	ts := common.NowTimestamp()
	r.Store.Patch(alertID, AlertPatch{Status: models.AlertStatusClosed, ClosedAt: &ts})

	logger.Info("Alert marked as resolved", zap.String("alert_id", alertID))
	r.Notifier.Success("Alert marked as resolved")
	return nil
}
