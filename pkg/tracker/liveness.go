package tracker

import (
	"time"

	"go.uber.org/zap"
	"roomtrack.xyz/room-power-service/pkg/common"
	"roomtrack.xyz/room-power-service/pkg/models"
)

// OnlineAt is the liveness rule: a device is online iff it is
// administratively active and has reported within the window. Devices with
// no recorded contact are always offline.
func OnlineAt(lastSeen *time.Time, active bool, now time.Time, window time.Duration) bool {
	if !active || lastSeen == nil {
		return false
	}
	return now.Sub(*lastSeen) < window
}

func (t *Tracker) recordContact(deviceID string, at time.Time) error {
	logger := common.GetLoggerWith(
		common.LoggerNameTrackerCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryLiveness),
	)

	conn, cancel := t.conn()
	defer cancel()

	// Monotonic: a report carrying an older timestamp must not move
	// last-seen backward, or the device would flap back offline.
	result := conn.Model(&models.Device{}).
		Where("device_id = ?", deviceID).
		Where("last_seen IS NULL OR last_seen < ?", at).
		Update("last_seen", at)
	if result.Error != nil {
		return storeErr(result.Error)
	}

	if result.RowsAffected > 0 {
		logger.Debug("Recorded device contact",
			zap.String("device_id", deviceID), zap.Time("at", at))
	}
	return nil
}

func (t *Tracker) isOnline(deviceID string, now time.Time) bool {
	conn, cancel := t.conn()
	defer cancel()

	var device models.Device
	if err := conn.First(&device, "device_id = ?", deviceID).Error; err != nil {
		return false
	}
	return OnlineAt(device.LastSeen, device.Active, now, t.Cfg.LivenessWindow())
}

type ILivenessImpl struct {
	tracker *Tracker
}

func (il *ILivenessImpl) RecordContact(deviceID string, at time.Time) error {
	return il.tracker.recordContact(deviceID, at)
}

func (il *ILivenessImpl) IsOnline(deviceID string, now time.Time) bool {
	return il.tracker.isOnline(deviceID, now)
}

func (t *Tracker) GetILiveness() ILiveness {
	return &ILivenessImpl{tracker: t}
}
