package sos

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"forestwatch.app/sos-dashboard-service/pkg/common"
	"forestwatch.app/sos-dashboard-service/pkg/models"
	_ "forestwatch.app/sos-dashboard-service/pkg/testing"
)

func TestVerifyCredentials(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, sosObj, _, _, _ := GetMockSOSWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	profile := seedProfile(t, sosObj, models.RoleAdmin)

	verified, err := sosObj.Profile.VerifyCredentials(profile.Email, testPassword)
	require.NoError(t, err)
	assert.Equal(t, profile.ID, verified.ID)
	assert.Equal(t, models.RoleAdmin, verified.Role)
}

func TestVerifyCredentials_WrongPassword(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, sosObj, _, _, _ := GetMockSOSWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	profile := seedProfile(t, sosObj, models.RoleUser)

	_, err := sosObj.Profile.VerifyCredentials(profile.Email, "not-the-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestVerifyCredentials_UnknownEmail(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, sosObj, _, _, _ := GetMockSOSWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	_, err := sosObj.Profile.VerifyCredentials(uuid.NewString()+"@example.com", testPassword)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestGetProfile(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, sosObj, _, _, _ := GetMockSOSWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	profile := seedProfile(t, sosObj, models.RoleVolunteer)

	loaded, err := sosObj.Profile.GetProfile(profile.ID)
	require.NoError(t, err)
	assert.Equal(t, profile.Email, loaded.Email)
	assert.Equal(t, models.RoleVolunteer, loaded.Role)
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)
	assert.NotEmpty(t, hash)
}
