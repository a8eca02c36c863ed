package tracker

import (
	"go.uber.org/zap"
	"roomtrack.xyz/room-power-service/pkg/common"
	"roomtrack.xyz/room-power-service/pkg/models"
)

// The recorder is append-only. Current state is never reconstructed from
// these ledgers; they exist for audit and trend queries.

func (t *Tracker) appendStatus(event *models.StatusEvent) error {
	conn, cancel := t.conn()
	defer cancel()

	if err := conn.Create(event).Error; err != nil {
		return storeErr(err)
	}
	return nil
}

func (t *Tracker) appendPower(event *models.PowerEvent) error {
	logger := common.GetLoggerWith(
		common.LoggerNameTrackerCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryRecorder),
	)

	conn, cancel := t.conn()
	defer cancel()

	if err := conn.Create(event).Error; err != nil {
		return storeErr(err)
	}

	logger.Info("Power transition recorded", zap.Reflect("event", event))
	return nil
}

func (t *Tracker) deviceStatusHistory(deviceID string, limit int) ([]models.StatusEvent, error) {
	conn, cancel := t.conn()
	defer cancel()

	var events []models.StatusEvent
	err := conn.
		Where("device_id = ?", deviceID).
		Order("timestamp desc, id desc").
		Limit(limit).
		Find(&events).Error
	if err != nil {
		return nil, storeErr(err)
	}
	return events, nil
}

func (t *Tracker) roomPowerHistory(roomID uint, limit int) ([]models.PowerEvent, error) {
	conn, cancel := t.conn()
	defer cancel()

	var events []models.PowerEvent
	err := conn.
		Where("room_id = ?", roomID).
		Order("timestamp desc, id desc").
		Limit(limit).
		Find(&events).Error
	if err != nil {
		return nil, storeErr(err)
	}
	return events, nil
}

type IRecorderImpl struct {
	tracker *Tracker
}

func (ir *IRecorderImpl) AppendStatus(event *models.StatusEvent) error {
	return ir.tracker.appendStatus(event)
}

func (ir *IRecorderImpl) AppendPower(event *models.PowerEvent) error {
	return ir.tracker.appendPower(event)
}

func (ir *IRecorderImpl) DeviceStatusHistory(deviceID string, limit int) ([]models.StatusEvent, error) {
	return ir.tracker.deviceStatusHistory(deviceID, limit)
}

func (ir *IRecorderImpl) RoomPowerHistory(roomID uint, limit int) ([]models.PowerEvent, error) {
	return ir.tracker.roomPowerHistory(roomID, limit)
}

func (t *Tracker) GetIRecorder() IRecorder {
	return &IRecorderImpl{tracker: t}
}
