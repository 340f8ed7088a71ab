package models

import "time"

type Booking struct {
	ID         string    `json:"id"`
	SlotID     string    `json:"slot_id"`
	VisitorID  string    `json:"visitor_id"`
	HostID     string    `json:"host_id"`
	PaymentRef string    `json:"payment_ref"`
	CreatedAt  time.Time `json:"created_at"`
}
