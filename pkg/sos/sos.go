package sos

import (
	"forestwatch.app/sos-dashboard-service/pkg/db"
	"forestwatch.app/sos-dashboard-service/pkg/feed"
	"forestwatch.app/sos-dashboard-service/pkg/models"
)

type IAlertQuery interface {
	FetchAlerts() ([]models.FormattedAlert, error)
	FetchAlertByID(alertID string) (*models.FormattedAlert, error)
}

type IAlertAction interface {
	CreateAlert(profileID string, lat, lng float64) (*models.SOSAlert, error)
	UpdateAlertStatus(alertID string, status models.AlertStatus) error
	DeleteAlert(alertID string) error
}

type IProfile interface {
	GetProfile(profileID string) (*models.UserProfile, error)
	VerifyCredentials(email, password string) (*models.UserProfile, error)
}

type SOS struct {
	Db   db.DB
	Feed feed.Publisher

	AlertQuery  IAlertQuery
	AlertAction IAlertAction
	Profile     IProfile
}

type ServiceOpts struct {
	AlertQuery  IAlertQuery
	AlertAction IAlertAction
	Profile     IProfile
}

func (s *SOS) WithServices(opts ServiceOpts) *SOS {
	if opts.AlertQuery != nil {
		s.AlertQuery = opts.AlertQuery
	}
	if opts.AlertAction != nil {
		s.AlertAction = opts.AlertAction
	}
	if opts.Profile != nil {
		s.Profile = opts.Profile
	}
	return s
}
