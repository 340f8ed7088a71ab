package payment

import (
	"context"
	"fmt"

	"github.com/omise/omise-go"
	"github.com/omise/omise-go/operations"
)

// OmiseGateway implements Gateway on top of the Omise charge API. A charge
// opened without capture acts as the reservation; its authorize URI plays
// the role of the client secret handed to the UI.
type OmiseGateway struct {
	client *omise.Client
}

func NewOmiseGateway(publicKey, secretKey string) (*OmiseGateway, error) {
	client, err := omise.NewClient(publicKey, secretKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create omise client: %w", err)
	}

	return &OmiseGateway{client: client}, nil
}

func (g *OmiseGateway) OpenReservation(ctx context.Context, amount int64, currency string, metadata map[string]string) (Reservation, error) {
	meta := make(map[string]interface{}, len(metadata))
	for k, v := range metadata {
		meta[k] = v
	}

	charge := &omise.Charge{}
	op := &operations.CreateCharge{
		Amount:      amount,
		Currency:    currency,
		DontCapture: true,
		Metadata:    meta,
	}

	if err := g.client.Do(charge, op); err != nil {
		return Reservation{}, fmt.Errorf("failed to open payment reservation: %w", err)
	}

	return Reservation{
		ID:           charge.ID,
		ClientSecret: charge.AuthorizeURI,
	}, nil
}

func (g *OmiseGateway) Status(ctx context.Context, reservationID string) (Status, string, error) {
	charge := &omise.Charge{}
	op := &operations.RetrieveCharge{ChargeID: reservationID}

	if err := g.client.Do(charge, op); err != nil {
		return "", "", fmt.Errorf("failed to get payment status: %w", err)
	}

	// Omise reports: pending / successful / failed / awaiting_authorize.
	switch string(charge.Status) {
	case "successful":
		return StatusConfirmed, charge.CustomerID, nil
	case "pending", "awaiting_authorize":
		return StatusPending, charge.CustomerID, nil
	default:
		return StatusFailed, charge.CustomerID, nil
	}
}
