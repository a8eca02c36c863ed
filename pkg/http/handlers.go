package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"roomtrack.xyz/room-power-service/pkg/models"
	"roomtrack.xyz/room-power-service/pkg/tracker"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
)

// renderError maps the engine's error taxonomy onto HTTP statuses. Anything
// outside the taxonomy is an internal error.
func renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, tracker.ErrInvalidRange):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, tracker.ErrBookingConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, tracker.ErrUnknownRoom), errors.Is(err, tracker.ErrUnknownDevice):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, tracker.ErrCredentialRejected):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, tracker.ErrStoreTimeout):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func roomIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("room_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid room id"})
		return 0, false
	}
	return uint(id), true
}

// checkDeviceAuth verifies the X-API-Key header against the device registry.
func (rs *RestfulServer) checkDeviceAuth(c *gin.Context, deviceID string) bool {
	if err := rs.Core.DeviceAuth.VerifyDevice(deviceID, c.GetHeader("X-API-Key")); err != nil {
		renderError(c, err)
		return false
	}
	return true
}

// checkOperatorAuth resolves the X-Operator-Token header to an operator
// identity for manual commands, bookings and admin calls.
func (rs *RestfulServer) checkOperatorAuth(c *gin.Context) (string, bool) {
	operator, err := rs.OperatorAuth.Authorize(c.GetHeader("X-Operator-Token"))
	if err != nil {
		renderError(c, err)
		return "", false
	}
	return operator, true
}

type StatusRequest struct {
	Occupied            bool     `json:"occupied"`
	MovementIdleSeconds int      `json:"movement_idle_seconds"`
	Temperature         *float64 `json:"temperature"`
	PowerOn             bool     `json:"power_on"`
}

// Booleans and the idle counter deliberately have no Required(): false and
// zero are legitimate report values.
var statusRequestSchema = z.Struct(z.Shape{
	"Occupied":            z.Bool(),
	"MovementIdleSeconds": z.Int(),
	"Temperature":         z.Ptr(z.Float64()),
	"PowerOn":             z.Bool(),
})

func (rs *RestfulServer) PostStatus(c *gin.Context) {
	deviceID := c.Param("device_id")

	if !rs.CheckDeviceLimiter(deviceID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	if !rs.checkDeviceAuth(c, deviceID) {
		return
	}

	var req StatusRequest
	if err := statusRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	directive, err := rs.Core.Ingest.IngestReport(deviceID, &models.StatusReport{
		Occupied:            req.Occupied,
		MovementIdleSeconds: req.MovementIdleSeconds,
		Temperature:         req.Temperature,
		PowerOn:             req.PowerOn,
	}, time.Now())
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"power_on":           directive.PowerOn,
		"reservation_active": directive.ReservationActive,
	})
}

type HeartbeatRequest struct {
	FirmwareVersion string `json:"firmware_version"`
}

var heartbeatRequestSchema = z.Struct(z.Shape{
	"FirmwareVersion": z.String(),
})

func (rs *RestfulServer) PostHeartbeat(c *gin.Context) {
	deviceID := c.Param("device_id")

	if !rs.CheckDeviceLimiter(deviceID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	if !rs.checkDeviceAuth(c, deviceID) {
		return
	}

	var req HeartbeatRequest
	if err := heartbeatRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	if err := rs.Core.Ingest.Heartbeat(deviceID, req.FirmwareVersion, time.Now()); err != nil {
		renderError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

func (rs *RestfulServer) GetDeviceEvents(c *gin.Context) {
	deviceID := c.Param("device_id")

	if !rs.CheckDeviceLimiter(deviceID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	limit := 100
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = parsed
	}

	events, err := rs.Core.Recorder.DeviceStatusHistory(deviceID, limit)
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, events)
}

type PowerRequest struct {
	PowerOn bool `json:"power_on"`
}

var powerRequestSchema = z.Struct(z.Shape{
	"PowerOn": z.Bool(),
})

func (rs *RestfulServer) PostRoomPower(c *gin.Context) {
	roomID, ok := roomIDParam(c)
	if !ok {
		return
	}

	operator, ok := rs.checkOperatorAuth(c)
	if !ok {
		return
	}

	var req PowerRequest
	if err := powerRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	if err := rs.Core.Power.SubmitManualCommand(roomID, req.PowerOn, operator, time.Now()); err != nil {
		renderError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

type ReservationRequest struct {
	OwnerID   string    `json:"owner_id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Title     string    `json:"title"`
	Notes     string    `json:"notes"`
}

var reservationRequestSchema = z.Struct(z.Shape{
	"OwnerID":   z.String().Required(),
	"StartTime": z.Time().Required(),
	"EndTime":   z.Time().Required(),
	"Title":     z.String(),
	"Notes":     z.String(),
})

func (rs *RestfulServer) PostReservation(c *gin.Context) {
	roomID, ok := roomIDParam(c)
	if !ok {
		return
	}

	if _, ok := rs.checkOperatorAuth(c); !ok {
		return
	}

	var req ReservationRequest
	if err := reservationRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	reservation, err := rs.Core.Reservation.Create(req.OwnerID, roomID, req.StartTime, req.EndTime, req.Title, req.Notes)
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, reservation)
}

func (rs *RestfulServer) GetReservations(c *gin.Context) {
	roomID, ok := roomIDParam(c)
	if !ok {
		return
	}

	reservations, err := rs.Core.Reservation.ListRoomReservations(roomID)
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, reservations)
}

func (rs *RestfulServer) GetRoomStatus(c *gin.Context) {
	roomID, ok := roomIDParam(c)
	if !ok {
		return
	}

	state, err := rs.Core.Registry.GetRoomState(roomID, time.Now())
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, state)
}

func (rs *RestfulServer) GetRoomPowerEvents(c *gin.Context) {
	roomID, ok := roomIDParam(c)
	if !ok {
		return
	}

	limit := 100
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = parsed
	}

	events, err := rs.Core.Recorder.RoomPowerHistory(roomID, limit)
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, events)
}

type RoomRequest struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Capacity int    `json:"capacity"`
}

var roomRequestSchema = z.Struct(z.Shape{
	"Name":     z.String().Required(),
	"Location": z.String(),
	"Capacity": z.Int(),
})

func (rs *RestfulServer) PostRoom(c *gin.Context) {
	if _, ok := rs.checkOperatorAuth(c); !ok {
		return
	}

	var req RoomRequest
	if err := roomRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	room := models.Room{
		Name:     req.Name,
		Location: req.Location,
		Capacity: req.Capacity,
		Active:   true,
	}
	if err := rs.Core.Registry.RegisterRoom(&room); err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, room)
}

type DeviceRequest struct {
	DeviceID        string `json:"device_id"`
	Name            string `json:"name"`
	APIKey          string `json:"api_key"`
	MacAddress      string `json:"mac_address"`
	FirmwareVersion string `json:"firmware_version"`
}

var deviceRequestSchema = z.Struct(z.Shape{
	"DeviceID":        z.String().Required(),
	"Name":            z.String(),
	"APIKey":          z.String().Required(),
	"MacAddress":      z.String(),
	"FirmwareVersion": z.String(),
})

func (rs *RestfulServer) PostDevice(c *gin.Context) {
	if _, ok := rs.checkOperatorAuth(c); !ok {
		return
	}

	var req DeviceRequest
	if err := deviceRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	device := models.Device{
		DeviceID:        req.DeviceID,
		Name:            req.Name,
		APIKey:          req.APIKey,
		MacAddress:      req.MacAddress,
		FirmwareVersion: req.FirmwareVersion,
		Active:          true,
	}
	if err := rs.Core.Registry.RegisterDevice(&device); err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, device)
}

type LinkDeviceRequest struct {
	DeviceID string `json:"device_id"`
}

// An empty device_id unlinks the room.
var linkDeviceRequestSchema = z.Struct(z.Shape{
	"DeviceID": z.String(),
})

func (rs *RestfulServer) PutRoomDevice(c *gin.Context) {
	roomID, ok := roomIDParam(c)
	if !ok {
		return
	}

	if _, ok := rs.checkOperatorAuth(c); !ok {
		return
	}

	var req LinkDeviceRequest
	if err := linkDeviceRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	if err := rs.Core.Registry.LinkDevice(roomID, req.DeviceID); err != nil {
		renderError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

type LimiterRequest struct {
	Rate  float64 `json:"rate"`
	Burst int     `json:"burst"`
}

var limiterRequestSchema = z.Struct(z.Shape{
	"rate":  z.Float64().Required(),
	"burst": z.Int().Required(),
})

func (rs *RestfulServer) PostLimiter(c *gin.Context) {
	deviceID := c.Param("device_id")

	if _, ok := rs.checkOperatorAuth(c); !ok {
		return
	}

	var req LimiterRequest
	if err := limiterRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	rs.SetLimiter(deviceID, req.Rate, req.Burst)

	c.Status(http.StatusOK)
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
