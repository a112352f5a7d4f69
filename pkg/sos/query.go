package sos

import (
	"errors"

	"go.uber.org/zap"

	"forestwatch.app/sos-dashboard-service/pkg/common"
	"forestwatch.app/sos-dashboard-service/pkg/models"
)

var ErrAlertNotFound = errors.New("sos alert not found")

const joinedAlertColumns = `sos_alerts.id, sos_alerts.profile_id, sos_alerts.status,
	sos_alerts.lat, sos_alerts.lng, sos_alerts.created_at, sos_alerts.closed_at,
	users.id AS user_id, users.name AS user_name,
	users.last_name AS user_last_name, users.photo_url AS user_photo_url`

// joinedAlertRow is the flat scan target for the sos_alerts/users join.
// User columns are nullable since the join may not match a profile.
type joinedAlertRow struct {
	ID        string
	ProfileID string
	Status    models.AlertStatus
	Lat       float64
	Lng       float64
	CreatedAt string
	ClosedAt  *string

	UserID       *string
	UserName     *string
	UserLastName *string
	UserPhotoURL *string
}

func (r joinedAlertRow) toJoinedAlert() JoinedAlert {
	joined := JoinedAlert{
		Alert: models.SOSAlert{
			ID:        r.ID,
			ProfileID: r.ProfileID,
			Status:    r.Status,
			Lat:       r.Lat,
			Lng:       r.Lng,
			CreatedAt: r.CreatedAt,
			ClosedAt:  r.ClosedAt,
		},
	}
	if r.UserID != nil {
		user := models.UserProfile{
			ID:       *r.UserID,
			PhotoURL: r.UserPhotoURL,
		}
		if r.UserName != nil {
			user.Name = *r.UserName
		}
		if r.UserLastName != nil {
			user.LastName = *r.UserLastName
		}
		joined.Users = []models.UserProfile{user}
	}
	return joined
}

func (s *SOS) fetchAlerts() ([]models.FormattedAlert, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameSOSCore,
		zap.String(common.LoggerFieldSOSCategory, common.LoggerCategorySOSAlert),
	)

	var rows []joinedAlertRow
	err := s.Db.Conn.
		Table("sos_alerts").
		Select(joinedAlertColumns).
		Joins("LEFT JOIN users ON users.id = sos_alerts.profile_id").
		Order("sos_alerts.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		logger.Error("Error fetching SOS alerts", zap.Error(err))
		return nil, err
	}

	return common.Mapper(rows, func(r joinedAlertRow) models.FormattedAlert {
		return FormatAlert(r.toJoinedAlert())
	}), nil
}

func (s *SOS) fetchAlertByID(alertID string) (*models.FormattedAlert, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameSOSCore,
		zap.String(common.LoggerFieldSOSCategory, common.LoggerCategorySOSAlert),
	)

	var rows []joinedAlertRow
	err := s.Db.Conn.
		Table("sos_alerts").
		Select(joinedAlertColumns).
		Joins("LEFT JOIN users ON users.id = sos_alerts.profile_id").
		Where("sos_alerts.id = ?", alertID).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		logger.Error("Error fetching SOS alert", zap.Error(err), zap.String("alert_id", alertID))
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrAlertNotFound
	}

	formatted := FormatAlert(rows[0].toJoinedAlert())
	return &formatted, nil
}

type IAlertQueryImpl struct {
	sos *SOS
}

func (iq *IAlertQueryImpl) FetchAlerts() ([]models.FormattedAlert, error) {
	return iq.sos.fetchAlerts()
}

func (iq *IAlertQueryImpl) FetchAlertByID(alertID string) (*models.FormattedAlert, error) {
	return iq.sos.fetchAlertByID(alertID)
}

func (s *SOS) GetIAlertQuery() IAlertQuery {
	return &IAlertQueryImpl{sos: s}
}
