package tracker

import (
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"roomtrack.xyz/room-power-service/pkg/common"
	"roomtrack.xyz/room-power-service/pkg/models"
)

func (t *Tracker) registerRoom(room *models.Room) error {
	logger := common.GetLoggerWith(
		common.LoggerNameTrackerCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryRegistry),
	)

	conn, cancel := t.conn()
	defer cancel()

	if err := conn.Create(room).Error; err != nil {
		return storeErr(err)
	}

	logger.Info("Room registered", zap.Reflect("room", room))
	return nil
}

func (t *Tracker) registerDevice(device *models.Device) error {
	logger := common.GetLoggerWith(
		common.LoggerNameTrackerCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryRegistry),
	)

	conn, cancel := t.conn()
	defer cancel()

	if err := conn.Create(device).Error; err != nil {
		return storeErr(err)
	}

	logger.Info("Device registered", zap.String("device_id", device.DeviceID))
	return nil
}

// linkDevice points the named device at the room, detaching whatever device
// held the room before. An empty device id just unlinks. Rooms and devices
// only reference each other by identifier; nothing cascades.
func (t *Tracker) linkDevice(roomID uint, deviceID string) error {
	logger := common.GetLoggerWith(
		common.LoggerNameTrackerCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryRegistry),
	)

	conn, cancel := t.conn()
	defer cancel()

	var room models.Room
	if err := conn.First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUnknownRoom
		}
		return storeErr(err)
	}

	err := conn.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Device{}).
			Where("room_id = ?", roomID).
			Update("room_id", nil).Error; err != nil {
			return err
		}
		if deviceID == "" {
			return nil
		}
		result := tx.Model(&models.Device{}).
			Where("device_id = ?", deviceID).
			Update("room_id", roomID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrUnknownDevice
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrUnknownDevice) {
			return ErrUnknownDevice
		}
		return storeErr(err)
	}

	logger.Info("Device link updated", zap.Uint("room_id", roomID), zap.String("device_id", deviceID))
	return nil
}

func (t *Tracker) getRoomState(roomID uint, now time.Time) (*models.RoomState, error) {
	conn, cancel := t.conn()
	defer cancel()

	var room models.Room
	if err := conn.First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnknownRoom
		}
		return nil, storeErr(err)
	}

	state := models.RoomState{Room: room}

	var snapshot models.RoomSnapshot
	err := conn.First(&snapshot, "room_id = ?", roomID).Error
	if err == nil {
		state.Snapshot = &snapshot
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, storeErr(err)
	}

	var device models.Device
	if err := conn.First(&device, "room_id = ?", roomID).Error; err == nil {
		state.DeviceID = device.DeviceID
		if t.Liveness != nil {
			state.DeviceOnline = t.Liveness.IsOnline(device.DeviceID, now)
		}
	}

	if t.Reservation != nil {
		reserved, err := t.Reservation.HasActiveReservation(roomID, now)
		if err != nil {
			return nil, err
		}
		state.ReservationActive = reserved
	}

	return &state, nil
}

type IRegistryImpl struct {
	tracker *Tracker
}

func (ir *IRegistryImpl) RegisterRoom(room *models.Room) error {
	return ir.tracker.registerRoom(room)
}

func (ir *IRegistryImpl) RegisterDevice(device *models.Device) error {
	return ir.tracker.registerDevice(device)
}

func (ir *IRegistryImpl) LinkDevice(roomID uint, deviceID string) error {
	return ir.tracker.linkDevice(roomID, deviceID)
}

func (ir *IRegistryImpl) GetRoomState(roomID uint, now time.Time) (*models.RoomState, error) {
	return ir.tracker.getRoomState(roomID, now)
}

func (t *Tracker) GetIRegistry() IRegistry {
	return &IRegistryImpl{tracker: t}
}
