package models

type AlertStatus string

const (
	AlertStatusOpen       AlertStatus = "open"
	AlertStatusClosed     AlertStatus = "closed"
	AlertStatusCancelled  AlertStatus = "cancelled"
	AlertStatusFalseAlarm AlertStatus = "false_alarm"
)

func (s AlertStatus) Valid() bool {
	switch s {
	case AlertStatusOpen, AlertStatusClosed, AlertStatusCancelled, AlertStatusFalseAlarm:
		return true
	}
	return false
}

type UserRole string

const (
	RoleAdmin     UserRole = "admin"
	RoleUser      UserRole = "user"
	RoleVolunteer UserRole = "volunteer"
)

type UserProfile struct {
	ID           string   `gorm:"primaryKey" json:"id"`
	Name         string   `json:"name"`
	LastName     string   `json:"last_name"`
	Email        string   `gorm:"uniqueIndex" json:"email"`
	PasswordHash string   `json:"-"`
	Role         UserRole `gorm:"type:varchar(20);check:role IN ('admin','user','volunteer')" json:"role"`
	PhotoURL     *string  `json:"photo_url"`
	IsCompleted  bool     `json:"is_completed"`
	CreatedAt    string   `json:"created_at"`
}

func (UserProfile) TableName() string { return "users" }

type SOSAlert struct {
	ID        string      `gorm:"primaryKey" json:"id"`
	ProfileID string      `gorm:"index" json:"profile_id"`
	Status    AlertStatus `gorm:"type:varchar(20);check:status IN ('open','closed','cancelled','false_alarm')" json:"status"`
	Lat       float64     `json:"lat"`
	Lng       float64     `json:"lng"`
	CreatedAt string      `json:"created_at"`
	ClosedAt  *string     `json:"closed_at"`

	Profile *UserProfile `gorm:"foreignKey:ProfileID" json:"-"`
}

func (SOSAlert) TableName() string { return "sos_alerts" }

// FormattedAlert is the display record held by the dashboard store,
// an alert row flattened together with its reporter's identity.
type FormattedAlert struct {
	ID             string      `json:"id"`
	Status         AlertStatus `json:"status"`
	Name           string      `json:"name"`
	ProfilePicture *string     `json:"profile_picture"`
	Lat            float64     `json:"lat"`
	Lng            float64     `json:"lng"`
	CreatedAt      string      `json:"created_at"`
	ClosedAt       *string     `json:"closed_at"`
}
