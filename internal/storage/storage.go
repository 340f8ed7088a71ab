package storage

import "errors"

var (
	ErrSlotNotFound    = errors.New("slot not found")
	ErrSlotUnavailable = errors.New("slot unavailable")
	ErrSlotBooked      = errors.New("slot is booked")
	ErrBookingNotFound = errors.New("booking not found")
)
