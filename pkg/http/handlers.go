package http

import (
	"errors"
	"io"
	"net/http"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"forestwatch.app/sos-dashboard-service/pkg/auth"
	"forestwatch.app/sos-dashboard-service/pkg/common"
	"forestwatch.app/sos-dashboard-service/pkg/dashboard"
	"forestwatch.app/sos-dashboard-service/pkg/models"
	"forestwatch.app/sos-dashboard-service/pkg/sos"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

var loginRequestSchema = z.Struct(z.Shape{
	"email":    z.String().Required(),
	"password": z.String().Required(),
})

func (rs *RestfulServer) Login(c *gin.Context) {
	var req LoginRequest
	if err := loginRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	profile, err := rs.Sos.Profile.VerifyCredentials(req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	token, expiresAt, err := rs.Auth.GenerateToken(profile)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "Bearer",
		"expires_at":   expiresAt,
		"profile": gin.H{
			"id":        profile.ID,
			"name":      profile.Name,
			"last_name": profile.LastName,
			"role":      profile.Role,
			"photo_url": profile.PhotoURL,
		},
	})
}

func (rs *RestfulServer) Logout(c *gin.Context) {
	// sessions are stateless bearer tokens; the client drops the token
	c.JSON(http.StatusOK, gin.H{"success": true})
}

type RaiseAlertRequest struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

var raiseAlertRequestSchema = z.Struct(z.Shape{
	"lat": z.Float64().Required(),
	"lng": z.Float64().Required(),
})

func (rs *RestfulServer) RaiseAlert(c *gin.Context) {
	claims, ok := auth.ClaimsFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing session"})
		return
	}

	if !rs.CheckProfileLimiter(claims.UserID) {
		common.GetLoggerWith(common.LoggerNameRestfulServer).Warn("Alert rate limit exceeded",
			zap.String("profile_id", claims.UserID))
		c.Status(http.StatusTooManyRequests)
		return
	}

	var req RaiseAlertRequest
	if err := raiseAlertRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	alert, err := rs.Sos.AlertAction.CreateAlert(claims.UserID, req.Lat, req.Lng)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to raise alert"})
		return
	}

	c.JSON(http.StatusCreated, alert)
}

func (rs *RestfulServer) ListAlerts(c *gin.Context) {
	c.JSON(http.StatusOK, rs.Dashboard.Store.Snapshot())
}

type UpdateAlertRequest struct {
	AlertId string `json:"alertId"`
	Status  string `json:"status"`
}

var updateAlertRequestSchema = z.Struct(z.Shape{
	"alertId": z.String().Required(),
	"status":  z.String().Required(),
})

func (rs *RestfulServer) UpdateAlert(c *gin.Context) {
	var req UpdateAlertRequest
	if err := updateAlertRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	status := models.AlertStatus(req.Status)
	if !status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	if status == models.AlertStatusClosed {
		// the operator resolution path: precondition on displayed state,
		// then optimistic store patch racing the feed echo
		err := rs.Dashboard.Resolver.Resolve(req.AlertId)
		if errors.Is(err, dashboard.ErrAlreadyResolved) {
			c.JSON(http.StatusConflict, gin.H{"error": "This alert is already resolved"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update alert"})
			return
		}
	} else {
		if err := rs.Sos.AlertAction.UpdateAlertStatus(req.AlertId, status); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update alert"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (rs *RestfulServer) DeleteAlert(c *gin.Context) {
	alertID := c.Param("alert_id")

	if err := rs.Sos.AlertAction.DeleteAlert(alertID); err != nil {
		if errors.Is(err, sos.ErrAlertNotFound) || errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Alert not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete alert"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

type DismissRequest struct {
	BannerID string `json:"banner_id"`
}

func (rs *RestfulServer) DismissNotification(c *gin.Context) {
	var req DismissRequest
	// banner_id is optional; an empty body dismisses the active alarm
	_ = c.ShouldBindJSON(&req)

	rs.Dashboard.Notifier.Dismiss(req.BannerID)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (rs *RestfulServer) Stream(c *gin.Context) {
	ch, cancel := rs.Dashboard.Events.Subscribe()
	defer cancel()

	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	// current state first so a fresh client renders immediately
	c.SSEvent(string(dashboard.EventSnapshot), dashboard.Event{
		Kind:   dashboard.EventSnapshot,
		Alerts: rs.Dashboard.Store.Snapshot(),
	})
	c.Writer.Flush()

	c.Stream(func(w io.Writer) bool {
		select {
		case ev, ok := <-ch:
			if !ok {
				return false
			}
			c.SSEvent(string(ev.Kind), ev)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
