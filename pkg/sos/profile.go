package sos

import (
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"forestwatch.app/sos-dashboard-service/pkg/common"
	"forestwatch.app/sos-dashboard-service/pkg/models"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

func (s *SOS) getProfile(profileID string) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := s.Db.Conn.First(&profile, "id = ?", profileID).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (s *SOS) verifyCredentials(email, password string) (*models.UserProfile, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameSOSCore,
		zap.String(common.LoggerFieldSOSCategory, common.LoggerCategorySOSProfile),
	)

	var profile models.UserProfile
	if err := s.Db.Conn.First(&profile, "email = ?", email).Error; err != nil {
		logger.Info("Login attempt for unknown email", zap.String("email", email))
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(password)); err != nil {
		logger.Info("Login attempt with wrong password", zap.String("email", email))
		return nil, ErrInvalidCredentials
	}

	return &profile, nil
}

// HashPassword produces the bcrypt hash stored in users.password_hash.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

type IProfileImpl struct {
	sos *SOS
}

func (ip *IProfileImpl) GetProfile(profileID string) (*models.UserProfile, error) {
	return ip.sos.getProfile(profileID)
}

func (ip *IProfileImpl) VerifyCredentials(email, password string) (*models.UserProfile, error) {
	return ip.sos.verifyCredentials(email, password)
}

func (s *SOS) GetIProfile() IProfile {
	return &IProfileImpl{sos: s}
}
