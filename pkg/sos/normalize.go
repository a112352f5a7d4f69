package sos

import (
	"strings"

	"forestwatch.app/sos-dashboard-service/pkg/models"
)

// UnknownUserName is the display fallback when an alert has no related
// reporter profile.
const UnknownUserName = "Unknown User"

// JoinedAlert is an alert row combined with the result of joining the users
// table on profile_id. The join yields a collection of at most one profile;
// Users keeps that shape so the ambiguity is collapsed in exactly one place.
type JoinedAlert struct {
	Alert models.SOSAlert
	Users []models.UserProfile
}

// relatedUser collapses the join field to either nil (absent) or one profile.
func relatedUser(users []models.UserProfile) *models.UserProfile {
	if len(users) == 0 {
		return nil
	}
	return &users[0]
}

// FormatAlert shapes a joined row into the display record the dashboard
// holds. Pure and total: a missing reporter degrades to the sentinel name
// and a nil picture, never an error.
func FormatAlert(row JoinedAlert) models.FormattedAlert {
	name := UnknownUserName
	var picture *string
	if u := relatedUser(row.Users); u != nil {
		name = strings.TrimSpace(u.Name + " " + u.LastName)
		picture = u.PhotoURL
	}

	return models.FormattedAlert{
		ID:             row.Alert.ID,
		Status:         row.Alert.Status,
		Name:           name,
		ProfilePicture: picture,
		Lat:            row.Alert.Lat,
		Lng:            row.Alert.Lng,
		CreatedAt:      row.Alert.CreatedAt,
		ClosedAt:       row.Alert.ClosedAt,
	}
}
