package tracker

import (
	"time"

	"go.uber.org/zap"
	"roomtrack.xyz/room-power-service/pkg/common"
	"roomtrack.xyz/room-power-service/pkg/models"
)

// RunMaintenanceSweep reclaims expired manual overrides and logs an offline
// census of the active fleet. Scheduled via cron from main; safe to call at
// any time.
func (t *Tracker) RunMaintenanceSweep(now time.Time) {
	logger := common.GetLoggerWith(common.LoggerNameSweep)

	purged := t.overrides.PurgeExpired(now)

	conn, cancel := t.conn()
	defer cancel()

	var devices []models.Device
	if err := conn.Where("active = ?", true).Find(&devices).Error; err != nil {
		logger.Warn("Sweep could not list devices", zap.Error(err))
		return
	}

	offline := common.Reducer(devices, func(acc int, device models.Device) int {
		if !OnlineAt(device.LastSeen, device.Active, now, t.Cfg.LivenessWindow()) {
			return acc + 1
		}
		return acc
	}, 0)

	logger.Info("Maintenance sweep completed",
		zap.Int("purged_overrides", purged),
		zap.Int("offline_devices", offline),
		zap.Int("active_devices", len(devices)))
}
