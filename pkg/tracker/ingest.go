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

// ingestReport runs one full reconciliation cycle for a device report:
// resolve device, record contact, refresh the room snapshot, evaluate the
// reservation calendar and any pending override, decide power, persist.
// Ledger writes are best-effort: a dropped audit record never withholds the
// directive from the device.
func (t *Tracker) ingestReport(deviceID string, report *models.StatusReport, now time.Time) (*models.Directive, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameTrackerCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryIngest),
	)

	if t.Liveness == nil || t.Reservation == nil || t.Power == nil || t.Recorder == nil {
		return nil, fmt.Errorf("tracker services not available")
	}

	conn, cancel := t.conn()
	defer cancel()

	var device models.Device
	if err := conn.First(&device, "device_id = ?", deviceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnknownDevice
		}
		return nil, storeErr(err)
	}

	if err := t.Liveness.RecordContact(deviceID, now); err != nil {
		return nil, err
	}

	idle := report.MovementIdleSeconds
	if idle < 0 {
		idle = 0
	}

	statusEvent := &models.StatusEvent{
		DeviceID:            deviceID,
		RoomID:              device.RoomID,
		Occupied:            report.Occupied,
		PowerOn:             report.PowerOn,
		MovementIdleSeconds: idle,
		Temperature:         report.Temperature,
		Timestamp:           now,
	}

	if device.RoomID == nil {
		// Unlinked device: acknowledge and ledger the report, nothing to
		// reconcile.
		if err := t.Recorder.AppendStatus(statusEvent); err != nil {
			logger.Warn("Failed to append status event", zap.String("device_id", deviceID), zap.Error(err))
		}
		return &models.Directive{PowerOn: report.PowerOn}, nil
	}
	roomID := *device.RoomID

	lock := t.locks.GetLock(roomID)
	lock.Lock()
	defer lock.Unlock()

	var snapshot models.RoomSnapshot
	err := conn.First(&snapshot, "room_id = ?", roomID).Error
	newSnapshot := false
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// First report for this room seeds the recorded power state.
		snapshot = models.RoomSnapshot{RoomID: roomID, PowerOn: report.PowerOn}
		newSnapshot = true
	} else if err != nil {
		return nil, storeErr(err)
	}

	snapshot.Occupied = report.Occupied
	snapshot.MovementIdleSeconds = idle
	snapshot.Temperature = report.Temperature
	snapshot.UpdatedAt = now

	reserved, err := t.Reservation.HasActiveReservation(roomID, now)
	if err != nil {
		return nil, err
	}

	directive := Decide(DecisionInput{
		Occupied:          snapshot.Occupied,
		IdleSeconds:       idle,
		PowerOn:           snapshot.PowerOn,
		ReservationActive: reserved,
		Command:           t.Power.PendingCommand(roomID, now),
	}, now, t.Cfg.OverrideWindow(), t.Cfg.IdleThresholdSeconds)

	if directive.Changed {
		snapshot.PowerOn = directive.PowerOn
		if err := t.Recorder.AppendPower(&models.PowerEvent{
			DeviceID:  deviceID,
			RoomID:    roomID,
			PowerOn:   directive.PowerOn,
			Reason:    directive.Reason,
			Timestamp: now,
		}); err != nil {
			logger.Warn("Failed to append power event", zap.Uint("room_id", roomID), zap.Error(err))
		}
	}

	if newSnapshot {
		err = conn.Create(&snapshot).Error
	} else {
		err = conn.Save(&snapshot).Error
	}
	if err != nil {
		logger.Warn("Failed to persist room snapshot", zap.Uint("room_id", roomID), zap.Error(err))
	}

	if err := t.Recorder.AppendStatus(statusEvent); err != nil {
		logger.Warn("Failed to append status event", zap.String("device_id", deviceID), zap.Error(err))
	}

	logger.Info("Ingested device report",
		zap.String("device_id", deviceID),
		zap.Uint("room_id", roomID),
		zap.Reflect("directive", directive))

	return &directive, nil
}

func (t *Tracker) heartbeat(deviceID string, firmwareVersion string, now time.Time) error {
	conn, cancel := t.conn()
	defer cancel()

	var device models.Device
	if err := conn.First(&device, "device_id = ?", deviceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUnknownDevice
		}
		return storeErr(err)
	}

	if t.Liveness == nil {
		return fmt.Errorf("liveness service not available")
	}
	if err := t.Liveness.RecordContact(deviceID, now); err != nil {
		return err
	}

	if firmwareVersion != "" && firmwareVersion != device.FirmwareVersion {
		err := conn.Model(&models.Device{}).
			Where("device_id = ?", deviceID).
			Update("firmware_version", firmwareVersion).Error
		if err != nil {
			return storeErr(err)
		}
	}
	return nil
}

type IIngestImpl struct {
	tracker *Tracker
}

func (ii *IIngestImpl) IngestReport(deviceID string, report *models.StatusReport, now time.Time) (*models.Directive, error) {
	return ii.tracker.ingestReport(deviceID, report, now)
}

func (ii *IIngestImpl) Heartbeat(deviceID string, firmwareVersion string, now time.Time) error {
	return ii.tracker.heartbeat(deviceID, firmwareVersion, now)
}

func (t *Tracker) GetIIngest() IIngest {
	return &IIngestImpl{tracker: t}
}
