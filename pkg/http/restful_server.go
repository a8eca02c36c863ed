package http

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
	"roomtrack.xyz/room-power-service/pkg/tracker"
)

type RestfulServer struct {
	Server           *gin.Engine
	Core             *tracker.Tracker
	OperatorAuth     tracker.IOperatorAuth
	RateLimiterStore *tracker.RateLimiterStore
}

func (rs *RestfulServer) GetLimiter(deviceID string) *rate.Limiter {
	if rs.RateLimiterStore == nil {
		return nil
	} else {
		return rs.RateLimiterStore.GetLimiter(deviceID)
	}
}

func (rs *RestfulServer) CheckDeviceLimiter(deviceID string) bool {
	limiter := rs.GetLimiter(deviceID)
	if limiter == nil {
		return true
	}
	return limiter.Allow()
}

func (rs *RestfulServer) SetLimiter(deviceID string, deviceRate float64, deviceBurst int) {
	if rs.RateLimiterStore == nil {
		return
	}
	rs.RateLimiterStore.SetLimiter(deviceID, rate.Limit(deviceRate), deviceBurst)
}

func (rs *RestfulServer) Setup() {
	rs.Server.GET("/healthz", rs.HealthCheck)

	devices := rs.Server.Group("/devices/:device_id")
	{
		devices.POST("/status", rs.PostStatus)
		devices.POST("/heartbeat", rs.PostHeartbeat)
		devices.GET("/events", rs.GetDeviceEvents)
		devices.POST("/limiter", rs.PostLimiter)
	}

	rooms := rs.Server.Group("/rooms/:room_id")
	{
		rooms.POST("/power", rs.PostRoomPower)
		rooms.POST("/reservations", rs.PostReservation)
		rooms.GET("/reservations", rs.GetReservations)
		rooms.GET("/status", rs.GetRoomStatus)
		rooms.GET("/power-events", rs.GetRoomPowerEvents)
	}

	admin := rs.Server.Group("/admin")
	{
		admin.POST("/rooms", rs.PostRoom)
		admin.POST("/devices", rs.PostDevice)
		admin.PUT("/rooms/:room_id/device", rs.PutRoomDevice)
	}
}
