package sos

import (
	"bufio"
	"encoding/json"
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"forestwatch.app/sos-dashboard-service/pkg/common"
	"forestwatch.app/sos-dashboard-service/pkg/db"
	"forestwatch.app/sos-dashboard-service/pkg/models"
	"forestwatch.app/sos-dashboard-service/pkg/sos/mocks"
)

func GetMockSOSWithMemorySqliteDialector(t *testing.T, useMockQuery, useMockAction, useMockProfile bool) (
	*gomock.Controller,
	*SOS,
	*mocks.MockIAlertQuery,
	*mocks.MockIAlertAction,
	*mocks.MockIProfile,
) {
	ctrl := gomock.NewController(t)

	mockQuery := mocks.NewMockIAlertQuery(ctrl)
	mockAction := mocks.NewMockIAlertAction(ctrl)
	mockProfile := mocks.NewMockIProfile(ctrl)
	dialector := db.UseMemorySqliteDialector()
	dbInstance := db.GetInstance(dialector) // ensure migrations
	sosInstance := (&SOS{Db: *dbInstance})

	queryService := sosInstance.GetIAlertQuery()
	if useMockQuery {
		queryService = mockQuery
	}

	actionService := sosInstance.GetIAlertAction()
	if useMockAction {
		actionService = mockAction
	}

	profileService := sosInstance.GetIProfile()
	if useMockProfile {
		profileService = mockProfile
	}

	sosInstance.WithServices(ServiceOpts{
		AlertQuery:  queryService,
		AlertAction: actionService,
		Profile:     profileService,
	})

	return ctrl, sosInstance, mockQuery, mockAction, mockProfile
}

const testPassword = "forest-guard-2024"

func seedProfile(t *testing.T, sosObj *SOS, role models.UserRole) models.UserProfile {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	photo := "https://cdn.example.com/p/" + uuid.NewString() + ".jpg"
	profile := models.UserProfile{
		ID:           uuid.NewString(),
		Name:         "Ana",
		LastName:     "Lopez",
		Email:        uuid.NewString() + "@example.com",
		PasswordHash: string(hash),
		Role:         role,
		PhotoURL:     &photo,
		IsCompleted:  true,
		CreatedAt:    common.NowTimestamp(),
	}
	require.NoError(t, sosObj.Db.Conn.Create(&profile).Error)
	return profile
}

func seedAlert(t *testing.T, sosObj *SOS, profileID string, status models.AlertStatus) models.SOSAlert {
	t.Helper()

	alert := models.SOSAlert{
		ID:        uuid.NewString(),
		ProfileID: profileID,
		Status:    status,
		Lat:       -33.45,
		Lng:       -70.66,
		CreatedAt: common.NowTimestamp(),
	}
	if status != models.AlertStatusOpen {
		ts := common.NowTimestamp()
		alert.ClosedAt = &ts
	}
	require.NoError(t, sosObj.Db.Conn.Create(&alert).Error)
	return alert
}

func ParseLogs(r io.Reader) []any {
	scanner := bufio.NewScanner(r)
	var logs []any

	for scanner.Scan() {
		line := scanner.Text()
		var j any
		if err := json.Unmarshal([]byte(line), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}
