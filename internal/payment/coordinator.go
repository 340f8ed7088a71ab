package payment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"meetease/internal/models"
	"meetease/internal/storage"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SlotGetter
type SlotGetter interface {
	Slot(ctx context.Context, id string) (*models.Slot, error)
}

// Coordinator opens payment reservations against the gateway and reads their
// outcome. It never mutates slot state and never runs under a slot lock; the
// pre-flight availability check is advisory only and is re-checked by the
// finalizer.
type Coordinator struct {
	log      *slog.Logger
	gateway  Gateway
	slots    SlotGetter
	amount   int64
	currency string
	timeout  time.Duration
}

func NewCoordinator(log *slog.Logger, gateway Gateway, slots SlotGetter, amount int64, currency string, timeout time.Duration) *Coordinator {
	return &Coordinator{
		log:      log,
		gateway:  gateway,
		slots:    slots,
		amount:   amount,
		currency: currency,
		timeout:  timeout,
	}
}

// CreateReservation opens a payment reservation for the fixed slot price,
// tagging it with the slot and visitor ids for later reconciliation.
func (c *Coordinator) CreateReservation(ctx context.Context, slotID, visitorID string) (Reservation, error) {
	const op = "payment.Coordinator.CreateReservation"

	slot, err := c.slots.Slot(ctx, slotID)
	if err != nil {
		if errors.Is(err, storage.ErrSlotNotFound) {
			return Reservation{}, storage.ErrSlotUnavailable
		}
		return Reservation{}, fmt.Errorf("%s: %w", op, err)
	}

	if !slot.IsOpen() {
		return Reservation{}, storage.ErrSlotUnavailable
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	reservation, err := c.gateway.OpenReservation(ctx, c.amount, c.currency, map[string]string{
		"slot_id":    slotID,
		"visitor_id": visitorID,
	})
	if err != nil {
		return Reservation{}, fmt.Errorf("%s: %w", op, err)
	}

	c.log.Info("payment reservation opened",
		slog.String("reservation_id", reservation.ID),
		slog.String("slot_id", slotID),
	)

	return reservation, nil
}

// Confirm reads the gateway's terminal status for a reservation. It does not
// mutate any local state.
func (c *Coordinator) Confirm(ctx context.Context, reservationID string) (Status, string, error) {
	const op = "payment.Coordinator.Confirm"

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	status, payerRef, err := c.gateway.Status(ctx, reservationID)
	if err != nil {
		return "", "", fmt.Errorf("%s: %w", op, err)
	}

	return status, payerRef, nil
}
