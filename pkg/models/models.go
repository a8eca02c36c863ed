package models

import "time"

type PowerReason string

const (
	PowerReasonManual          PowerReason = "manual"
	PowerReasonAutoIdle        PowerReason = "auto_idle_no_reservation"
	PowerReasonAutoReservation PowerReason = "auto_reservation_start"
)

type Device struct {
	DeviceID        string `gorm:"primaryKey"`
	Name            string
	APIKey          string
	MacAddress      string
	FirmwareVersion string
	Active          bool
	LastSeen        *time.Time
	RoomID          *uint `gorm:"uniqueIndex"`
}

type Room struct {
	ID       uint `gorm:"primaryKey"`
	Name     string
	Location string
	Capacity int
	Active   bool
}

// RoomSnapshot is the single current-state row per room. Occupied, idle
// seconds and temperature come from the latest device report; PowerOn is the
// recorded power state as decided by the engine, not the raw report value.
type RoomSnapshot struct {
	RoomID              uint `gorm:"primaryKey"`
	Occupied            bool
	PowerOn             bool
	MovementIdleSeconds int
	Temperature         *float64
	UpdatedAt           time.Time
}

type Reservation struct {
	ID        uint   `gorm:"primaryKey"`
	OwnerID   string `gorm:"index"`
	RoomID    uint   `gorm:"index"`
	StartTime time.Time
	EndTime   time.Time
	Confirmed bool
	Title     string
	Notes     string
}

type StatusEvent struct {
	ID                  uint   `gorm:"primaryKey"`
	DeviceID            string `gorm:"index"`
	RoomID              *uint  `gorm:"index"`
	Occupied            bool
	PowerOn             bool
	MovementIdleSeconds int
	Temperature         *float64
	Timestamp           time.Time `gorm:"index"`
}

type PowerEvent struct {
	ID        uint   `gorm:"primaryKey"`
	DeviceID  string `gorm:"index"`
	RoomID    uint   `gorm:"index"`
	PowerOn   bool
	Reason    PowerReason `gorm:"type:varchar(30);check:reason IN ('manual','auto_idle_no_reservation','auto_reservation_start')"`
	Issuer    string
	Timestamp time.Time `gorm:"index"`
}

// StatusReport is the payload a device delivers on each report cycle. It is
// not persisted as-is: it feeds the room snapshot and the status ledger.
type StatusReport struct {
	Occupied            bool
	MovementIdleSeconds int
	Temperature         *float64
	PowerOn             bool
}

// ManualCommand is a time-bounded operator override. It expires on its own
// after the configured window; there is no cancellation.
type ManualCommand struct {
	PowerOn  bool
	Issuer   string
	IssuedAt time.Time
}

// Directive is the engine's answer to a single report cycle. Changed is true
// only when the decision moves the recorded power state, in which case Reason
// names the rule that fired.
type Directive struct {
	PowerOn           bool
	ReservationActive bool
	Changed           bool
	Reason            PowerReason
}

// RoomState aggregates what an operator dashboard shows for one room.
type RoomState struct {
	Room              Room
	Snapshot          *RoomSnapshot
	DeviceID          string
	DeviceOnline      bool
	ReservationActive bool
}
