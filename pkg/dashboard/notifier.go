package dashboard

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"forestwatch.app/sos-dashboard-service/pkg/common"
	"forestwatch.app/sos-dashboard-service/pkg/models"
)

// Notifier drives the alarm/banner pipeline. There is a single alarm
// handle: raising a new alert while the alarm is active restarts it from
// zero instead of layering sounds, and dismissing the sticky banner that
// started it stops it.
type Notifier struct {
	mu          sync.Mutex
	events      *Broadcaster
	alarmOn     bool
	alarmBanner string
}

func NewNotifier(events *Broadcaster) *Notifier {
	return &Notifier{events: events}
}

// AlertRaised starts (or restarts) the looping alarm and shows the sticky
// banner naming the reporter.
func (n *Notifier) AlertRaised(alert models.FormattedAlert) {
	logger := common.GetLoggerWith(
		common.LoggerNameDashboard,
		zap.String(common.LoggerFieldSOSCategory, common.LoggerCategoryDashNotifier),
	)

	banner := Banner{
		ID:          uuid.NewString(),
		Level:       BannerLevelSuccess,
		Message:     "New SOS alert received",
		Description: "From " + alert.Name,
		Sticky:      true,
	}

	n.mu.Lock()
	n.alarmOn = true
	n.alarmBanner = banner.ID
	n.mu.Unlock()

	logger.Info("Alarm started", zap.String("alert_id", alert.ID), zap.String("banner_id", banner.ID))

	// started is re-broadcast even when already active so clients restart
	// playback from zero
	n.events.Publish(Event{Kind: EventAlarm, Alarm: AlarmStarted})
	n.events.Publish(Event{Kind: EventBanner, Banner: &banner})
}

// Dismiss acknowledges a banner. Dismissing the banner tied to the alarm
// stops the alarm; an empty id stops it unconditionally.
func (n *Notifier) Dismiss(bannerID string) {
	n.mu.Lock()
	stop := n.alarmOn && (bannerID == "" || bannerID == n.alarmBanner)
	if stop {
		n.alarmOn = false
		n.alarmBanner = ""
	}
	n.mu.Unlock()

	if stop {
		common.GetLoggerWith(
			common.LoggerNameDashboard,
			zap.String(common.LoggerFieldSOSCategory, common.LoggerCategoryDashNotifier),
		).Info("Alarm stopped", zap.String("banner_id", bannerID))
		n.events.Publish(Event{Kind: EventAlarm, Alarm: AlarmStopped})
	}
}

func (n *Notifier) AlarmActive() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.alarmOn
}

// Info shows a short-lived informational banner.
func (n *Notifier) Info(message, description string) {
	n.events.Publish(Event{Kind: EventBanner, Banner: &Banner{
		ID:          uuid.NewString(),
		Level:       BannerLevelInfo,
		Message:     message,
		Description: description,
	}})
}

// Success shows a short-lived success banner.
func (n *Notifier) Success(message string) {
	n.events.Publish(Event{Kind: EventBanner, Banner: &Banner{
		ID:      uuid.NewString(),
		Level:   BannerLevelSuccess,
		Message: message,
	}})
}

// Error shows a short-lived failure banner.
func (n *Notifier) Error(message string) {
	n.events.Publish(Event{Kind: EventBanner, Banner: &Banner{
		ID:      uuid.NewString(),
		Level:   BannerLevelError,
		Message: message,
	}})
}
