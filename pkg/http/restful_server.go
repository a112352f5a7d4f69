package http

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"forestwatch.app/sos-dashboard-service/pkg/auth"
	"forestwatch.app/sos-dashboard-service/pkg/dashboard"
	"forestwatch.app/sos-dashboard-service/pkg/sos"
)

type RestfulServer struct {
	Server           *gin.Engine
	Sos              *sos.SOS
	Dashboard        *dashboard.Dashboard
	Auth             *auth.Service
	RateLimiterStore *sos.RateLimiterStore
}

func (rs *RestfulServer) GetLimiter(profileID string) *rate.Limiter {
	if rs.RateLimiterStore == nil {
		return nil
	} else {
		return rs.RateLimiterStore.GetLimiter(profileID)
	}
}

func (rs *RestfulServer) CheckProfileLimiter(profileID string) bool {
	limiter := rs.GetLimiter(profileID)
	if limiter == nil {
		return true
	}
	return limiter.Allow()
}

func (rs *RestfulServer) Setup() {
	rs.Server.GET("/healthz", rs.HealthCheck)

	authGroup := rs.Server.Group("/auth")
	{
		authGroup.POST("/login", rs.Login)
		authGroup.POST("/logout", auth.RequireAuth(rs.Auth), rs.Logout)
	}

	api := rs.Server.Group("/api/v1")
	api.Use(auth.RequireAuth(rs.Auth))
	{
		api.POST("/alerts", rs.RaiseAlert)
	}

	dash := rs.Server.Group("/dashboard")
	dash.Use(auth.RequireAuth(rs.Auth), auth.RequireAdmin())
	{
		dash.GET("/alerts", rs.ListAlerts)
		dash.GET("/stream", rs.Stream)
		dash.POST("/api/update-alert", rs.UpdateAlert)
		dash.DELETE("/api/alerts/:alert_id", rs.DeleteAlert)
		dash.POST("/notifications/dismiss", rs.DismissNotification)
	}
}
