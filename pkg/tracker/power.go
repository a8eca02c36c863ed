package tracker

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"roomtrack.xyz/room-power-service/pkg/common"
	"roomtrack.xyz/room-power-service/pkg/models"
)

type DecisionInput struct {
	Occupied          bool
	IdleSeconds       int
	PowerOn           bool
	ReservationActive bool
	Command           *models.ManualCommand
}

// Decide computes the power directive for one report cycle. Rules are
// ordered, first match wins:
//
//  1. an unexpired manual command dictates the power state
//  2. an active reservation forces power on
//  3. an unoccupied, unreserved room that has been idle past the threshold
//     is powered off
//  4. otherwise the current state is kept; occupancy alone never forces
//     power on, it only prevents auto-off
//
// Negative idle seconds come from untrusted devices and are clamped to zero.
func Decide(in DecisionInput, now time.Time, overrideWindow time.Duration, idleThresholdSeconds int) models.Directive {
	directive := models.Directive{
		PowerOn:           in.PowerOn,
		ReservationActive: in.ReservationActive,
	}

	if in.Command != nil && now.Sub(in.Command.IssuedAt) < overrideWindow {
		directive.PowerOn = in.Command.PowerOn
		directive.Changed = in.Command.PowerOn != in.PowerOn
		directive.Reason = models.PowerReasonManual
		return directive
	}

	if in.ReservationActive {
		directive.PowerOn = true
		directive.Changed = !in.PowerOn
		directive.Reason = models.PowerReasonAutoReservation
		return directive
	}

	idle := in.IdleSeconds
	if idle < 0 {
		idle = 0
	}

	if !in.Occupied && idle >= idleThresholdSeconds {
		directive.PowerOn = false
		directive.Changed = in.PowerOn
		directive.Reason = models.PowerReasonAutoIdle
		return directive
	}

	return directive
}

func (t *Tracker) submitManualCommand(roomID uint, powerOn bool, issuer string, now time.Time) error {
	logger := common.GetLoggerWith(
		common.LoggerNameTrackerCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryPower),
	)

	lock := t.locks.GetLock(roomID)
	lock.Lock()
	defer lock.Unlock()

	conn, cancel := t.conn()
	defer cancel()

	var room models.Room
	if err := conn.First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUnknownRoom
		}
		return storeErr(err)
	}

	command := models.ManualCommand{PowerOn: powerOn, Issuer: issuer, IssuedAt: now}
	t.overrides.Set(roomID, command)

	logger.Info("Manual power command accepted",
		zap.Uint("room_id", roomID),
		zap.Bool("power_on", powerOn),
		zap.String("issuer", issuer))

	var snapshot models.RoomSnapshot
	err := conn.First(&snapshot, "room_id = ?", roomID).Error
	haveSnapshot := err == nil
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return storeErr(err)
	}

	// Rooms without a snapshot yet are treated as powered off.
	current := false
	if haveSnapshot {
		current = snapshot.PowerOn
	}
	if current == powerOn {
		return nil
	}

	deviceID := ""
	var device models.Device
	if err := conn.First(&device, "room_id = ?", roomID).Error; err == nil {
		deviceID = device.DeviceID
	}

	if t.Recorder == nil {
		return fmt.Errorf("recorder service not available")
	}
	if err := t.Recorder.AppendPower(&models.PowerEvent{
		DeviceID:  deviceID,
		RoomID:    roomID,
		PowerOn:   powerOn,
		Reason:    models.PowerReasonManual,
		Issuer:    issuer,
		Timestamp: now,
	}); err != nil {
		return storeErr(err)
	}

	snapshot.RoomID = roomID
	snapshot.PowerOn = powerOn
	snapshot.UpdatedAt = now
	if haveSnapshot {
		err = conn.Save(&snapshot).Error
	} else {
		err = conn.Create(&snapshot).Error
	}
	if err != nil {
		return storeErr(err)
	}
	return nil
}

func (t *Tracker) pendingCommand(roomID uint, now time.Time) *models.ManualCommand {
	return t.overrides.Pending(roomID, now)
}

type IPowerImpl struct {
	tracker *Tracker
}

func (ip *IPowerImpl) SubmitManualCommand(roomID uint, powerOn bool, issuer string, now time.Time) error {
	return ip.tracker.submitManualCommand(roomID, powerOn, issuer, now)
}

func (ip *IPowerImpl) PendingCommand(roomID uint, now time.Time) *models.ManualCommand {
	return ip.tracker.pendingCommand(roomID, now)
}

func (t *Tracker) GetIPower() IPower {
	return &IPowerImpl{tracker: t}
}
