package tracker

import "errors"

var (
	ErrInvalidRange       = errors.New("invalid reservation range: start must be before end")
	ErrBookingConflict    = errors.New("time slot already booked")
	ErrUnknownRoom        = errors.New("unknown room")
	ErrUnknownDevice      = errors.New("unknown device")
	ErrCredentialRejected = errors.New("invalid credentials")
	ErrStoreTimeout       = errors.New("transient store failure")
)
