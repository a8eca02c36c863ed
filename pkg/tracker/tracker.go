package tracker

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"roomtrack.xyz/room-power-service/pkg/config"
	"roomtrack.xyz/room-power-service/pkg/db"
	"roomtrack.xyz/room-power-service/pkg/models"
)

type ILiveness interface {
	RecordContact(deviceID string, at time.Time) error
	IsOnline(deviceID string, now time.Time) bool
}

type IReservation interface {
	HasActiveReservation(roomID uint, at time.Time) (bool, error)
	CheckConflict(roomID uint, start, end time.Time) (bool, error)
	Create(ownerID string, roomID uint, start, end time.Time, title, notes string) (*models.Reservation, error)
	ListRoomReservations(roomID uint) ([]models.Reservation, error)
}

type IPower interface {
	SubmitManualCommand(roomID uint, powerOn bool, issuer string, now time.Time) error
	PendingCommand(roomID uint, now time.Time) *models.ManualCommand
}

type IRecorder interface {
	AppendStatus(event *models.StatusEvent) error
	AppendPower(event *models.PowerEvent) error
	DeviceStatusHistory(deviceID string, limit int) ([]models.StatusEvent, error)
	RoomPowerHistory(roomID uint, limit int) ([]models.PowerEvent, error)
}

type IIngest interface {
	IngestReport(deviceID string, report *models.StatusReport, now time.Time) (*models.Directive, error)
	Heartbeat(deviceID string, firmwareVersion string, now time.Time) error
}

type IDeviceAuth interface {
	VerifyDevice(deviceID string, apiKey string) error
}

type IRegistry interface {
	RegisterRoom(room *models.Room) error
	RegisterDevice(device *models.Device) error
	LinkDevice(roomID uint, deviceID string) error
	GetRoomState(roomID uint, now time.Time) (*models.RoomState, error)
}

type Tracker struct {
	Db  db.DB
	Cfg *config.Config

	Liveness    ILiveness
	Reservation IReservation
	Power       IPower
	Recorder    IRecorder
	Ingest      IIngest
	DeviceAuth  IDeviceAuth
	Registry    IRegistry

	locks     *RoomLockStore
	overrides *ManualCommandStore
}

func New(dbInstance db.DB, cfg *config.Config) *Tracker {
	return &Tracker{
		Db:        dbInstance,
		Cfg:       cfg,
		locks:     NewRoomLockStore(),
		overrides: NewManualCommandStore(cfg.OverrideWindow()),
	}
}

type ServiceOpts struct {
	Liveness    ILiveness
	Reservation IReservation
	Power       IPower
	Recorder    IRecorder
	Ingest      IIngest
	DeviceAuth  IDeviceAuth
	Registry    IRegistry
}

func (t *Tracker) WithServices(opts ServiceOpts) *Tracker {
	if opts.Liveness != nil {
		t.Liveness = opts.Liveness
	}
	if opts.Reservation != nil {
		t.Reservation = opts.Reservation
	}
	if opts.Power != nil {
		t.Power = opts.Power
	}
	if opts.Recorder != nil {
		t.Recorder = opts.Recorder
	}
	if opts.Ingest != nil {
		t.Ingest = opts.Ingest
	}
	if opts.DeviceAuth != nil {
		t.DeviceAuth = opts.DeviceAuth
	}
	if opts.Registry != nil {
		t.Registry = opts.Registry
	}
	return t
}

// conn returns a store handle whose calls are bounded by the configured
// timeout. Callers must invoke cancel when done with the handle.
func (t *Tracker) conn() (*gorm.DB, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(context.Background(), t.Cfg.StoreTimeout())
	return t.Db.Conn.WithContext(ctx), cancel
}

func storeErr(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrStoreTimeout
	}
	return err
}
