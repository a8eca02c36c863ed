package tracker

import (
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"roomtrack.xyz/room-power-service/pkg/common"
	"roomtrack.xyz/room-power-service/pkg/models"
)

// Reservations use half-open intervals [start, end): a reservation covers
// its start instant and releases the room exactly at its end instant, so
// back-to-back bookings never conflict.

func (t *Tracker) hasActiveReservation(roomID uint, at time.Time) (bool, error) {
	conn, cancel := t.conn()
	defer cancel()

	var count int64
	err := conn.Model(&models.Reservation{}).
		Where("room_id = ? AND confirmed = ?", roomID, true).
		Where("start_time <= ? AND end_time > ?", at, at).
		Count(&count).Error
	if err != nil {
		return false, storeErr(err)
	}
	return count > 0, nil
}

func (t *Tracker) checkConflict(roomID uint, start, end time.Time) (bool, error) {
	conn, cancel := t.conn()
	defer cancel()

	var count int64
	err := conn.Model(&models.Reservation{}).
		Where("room_id = ? AND confirmed = ?", roomID, true).
		Where("start_time < ? AND end_time > ?", end, start).
		Count(&count).Error
	if err != nil {
		return false, storeErr(err)
	}
	return count > 0, nil
}

func (t *Tracker) createReservation(ownerID string, roomID uint, start, end time.Time, title, notes string) (*models.Reservation, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameTrackerCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryReservation),
	)

	if !start.Before(end) {
		return nil, ErrInvalidRange
	}

	// First writer wins: the conflict check and the insert run as one unit
	// under the room's lock, so overlapping concurrent bookings cannot both
	// pass the check.
	lock := t.locks.GetLock(roomID)
	lock.Lock()
	defer lock.Unlock()

	conn, cancel := t.conn()
	defer cancel()

	var room models.Room
	if err := conn.First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnknownRoom
		}
		return nil, storeErr(err)
	}

	reservation := models.Reservation{
		OwnerID:   ownerID,
		RoomID:    roomID,
		StartTime: start,
		EndTime:   end,
		Confirmed: true,
		Title:     title,
		Notes:     notes,
	}

	err := conn.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Reservation{}).
			Where("room_id = ? AND confirmed = ?", roomID, true).
			Where("start_time < ? AND end_time > ?", end, start).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrBookingConflict
		}
		return tx.Create(&reservation).Error
	})
	if err != nil {
		if errors.Is(err, ErrBookingConflict) {
			return nil, ErrBookingConflict
		}
		return nil, storeErr(err)
	}

	logger.Info("Reservation created", zap.Reflect("reservation", reservation))
	return &reservation, nil
}

func (t *Tracker) listRoomReservations(roomID uint) ([]models.Reservation, error) {
	conn, cancel := t.conn()
	defer cancel()

	var reservations []models.Reservation
	err := conn.
		Where("room_id = ?", roomID).
		Order("start_time asc").
		Find(&reservations).Error
	if err != nil {
		return nil, storeErr(err)
	}
	return reservations, nil
}

type IReservationImpl struct {
	tracker *Tracker
}

func (ir *IReservationImpl) HasActiveReservation(roomID uint, at time.Time) (bool, error) {
	return ir.tracker.hasActiveReservation(roomID, at)
}

func (ir *IReservationImpl) CheckConflict(roomID uint, start, end time.Time) (bool, error) {
	return ir.tracker.checkConflict(roomID, start, end)
}

func (ir *IReservationImpl) Create(ownerID string, roomID uint, start, end time.Time, title, notes string) (*models.Reservation, error) {
	return ir.tracker.createReservation(ownerID, roomID, start, end, title, notes)
}

func (ir *IReservationImpl) ListRoomReservations(roomID uint) ([]models.Reservation, error) {
	return ir.tracker.listRoomReservations(roomID)
}

func (t *Tracker) GetIReservation() IReservation {
	return &IReservationImpl{tracker: t}
}
