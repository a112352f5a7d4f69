package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"forestwatch.app/sos-dashboard-service/pkg/models"
)

func testProfile(role models.UserRole) *models.UserProfile {
	return &models.UserProfile{
		ID:       "profile-1",
		Email:    "ana@example.com",
		Name:     "Ana",
		LastName: "Lopez",
		Role:     role,
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := NewService("test-secret", time.Hour)

	token, expiresAt, err := svc.GenerateToken(testProfile(models.RoleAdmin))
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "profile-1", claims.UserID)
	assert.Equal(t, "Ana Lopez", claims.Name)
	assert.Equal(t, models.RoleAdmin, claims.Role)
	assert.Equal(t, "sos-dashboard", claims.Issuer)
}

func TestValidateToken_Expired(t *testing.T) {
	svc := NewService("test-secret", -time.Minute)

	token, _, err := svc.GenerateToken(testProfile(models.RoleAdmin))
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, _, err := NewService("secret-a", time.Hour).GenerateToken(testProfile(models.RoleUser))
	require.NoError(t, err)

	_, err = NewService("secret-b", time.Hour).ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_Garbage(t *testing.T) {
	svc := NewService("test-secret", time.Hour)

	_, err := svc.ValidateToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
