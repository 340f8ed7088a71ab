package models

import "time"

type SlotStatus string

const (
	SlotStatusOpen   SlotStatus = "open"
	SlotStatusBooked SlotStatus = "booked"
)

type Slot struct {
	ID        string     `json:"id"`
	HostID    string     `json:"host_id"`
	Date      string     `json:"date"` // YYYY-MM-DD
	Time      string     `json:"time"` // HH:MM
	Status    SlotStatus `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
}

func (s *Slot) IsOpen() bool {
	return s.Status == SlotStatusOpen
}
