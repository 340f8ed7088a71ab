package payment

import "context"

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusFailed    Status = "failed"
)

// Reservation is the gateway's record of funds being held for one slot attempt.
type Reservation struct {
	ID           string
	ClientSecret string
}

// Gateway is the external payment collaborator. The coordinator only opens
// reservations and reads their terminal status; their lifecycle belongs to
// the gateway.
//
//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Gateway
type Gateway interface {
	OpenReservation(ctx context.Context, amount int64, currency string, metadata map[string]string) (Reservation, error)
	Status(ctx context.Context, reservationID string) (Status, string, error)
}
