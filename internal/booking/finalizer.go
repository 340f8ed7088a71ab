// Package booking turns a payment-confirmed intent into a persisted Booking
// and flips the slot to booked. The whole check-then-act sequence runs under
// the slot's exclusive lock, so two racing finalize calls can never both
// observe an open slot.
package booking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"meetease/internal/clock"
	"meetease/internal/models"
	"meetease/internal/notifier"
	"meetease/internal/payment"
	"meetease/internal/storage"

	"github.com/google/uuid"
)

// ErrStoreInconsistent means the status flip failed after the booking row was
// already written. The booking then points at a still-open slot, which is
// reconcilable offline; the reverse (a booked slot with no booking) is not.
var ErrStoreInconsistent = errors.New("store inconsistent: booking persisted but slot flip failed")

// ErrPaymentNotConfirmed is returned when payment verification is enabled and
// the gateway does not report the reference as confirmed.
var ErrPaymentNotConfirmed = errors.New("payment not confirmed")

type Store interface {
	Slot(ctx context.Context, id string) (*models.Slot, error)
	TrySetBooked(ctx context.Context, id string) (bool, error)
	SaveBooking(ctx context.Context, booking models.Booking) error
	BookingsByVisitor(ctx context.Context, visitorID string) ([]models.Booking, error)
}

type Locker interface {
	WithSlotLock(slotID string, fn func() error) error
}

type Notifier interface {
	Publish(event notifier.Event)
}

// PaymentVerifier reads the gateway's terminal status for a reference. Only
// consulted when verification is enabled, and always before the slot lock is
// taken so no network call ever runs inside the critical section.
type PaymentVerifier interface {
	Confirm(ctx context.Context, reservationID string) (payment.Status, string, error)
}

type Finalizer struct {
	log      *slog.Logger
	store    Store
	locker   Locker
	hub      Notifier
	clock    clock.Clock
	verifier PaymentVerifier
}

type Option func(*Finalizer)

// WithPaymentVerifier makes Finalize re-check the gateway before committing
// instead of trusting the caller's payment reference.
func WithPaymentVerifier(v PaymentVerifier) Option {
	return func(f *Finalizer) {
		f.verifier = v
	}
}

func New(log *slog.Logger, store Store, locker Locker, hub Notifier, clk clock.Clock, opts ...Option) *Finalizer {
	f := &Finalizer{
		log:    log,
		store:  store,
		locker: locker,
		hub:    hub,
		clock:  clk,
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// Finalize books the slot for the visitor. Exactly one caller per slot can
// ever succeed; losers fail with storage.ErrSlotUnavailable after the status
// re-check and never reach the write path.
func (f *Finalizer) Finalize(ctx context.Context, slotID, visitorID, paymentRef string) (*models.Booking, error) {
	const op = "booking.Finalizer.Finalize"

	log := f.log.With(
		slog.String("op", op),
		slog.String("slot_id", slotID),
	)

	if f.verifier != nil {
		status, _, err := f.verifier.Confirm(ctx, paymentRef)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if status != payment.StatusConfirmed {
			return nil, ErrPaymentNotConfirmed
		}
	}

	// The critical section must run to a terminal outcome once entered,
	// even if the caller abandons the request.
	ctx = context.WithoutCancel(ctx)

	var result *models.Booking

	err := f.locker.WithSlotLock(slotID, func() error {
		slot, err := f.store.Slot(ctx, slotID)
		if err != nil {
			if errors.Is(err, storage.ErrSlotNotFound) {
				return storage.ErrSlotUnavailable
			}
			return fmt.Errorf("%s: %w", op, err)
		}

		if !slot.IsOpen() {
			return storage.ErrSlotUnavailable
		}

		booking := models.Booking{
			ID:         uuid.NewString(),
			SlotID:     slotID,
			VisitorID:  visitorID,
			HostID:     slot.HostID,
			PaymentRef: paymentRef,
			CreatedAt:  f.clock.Now(),
		}

		// Booking first, flip second: a crash between the two leaves an
		// orphan booking on a still-open slot, never a booked slot with
		// no booking.
		if err = f.store.SaveBooking(ctx, booking); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		ok, err := f.store.TrySetBooked(ctx, slotID)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		if !ok {
			log.Error("slot flip failed after booking write",
				slog.String("booking_id", booking.ID))
			return ErrStoreInconsistent
		}

		// Published while the lock is held so events for the same slot
		// reach subscribers in publish order.
		f.hub.Publish(notifier.Event{
			SlotID: slotID,
			Action: notifier.ActionBooked,
		})

		result = &booking

		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info("booking finalized",
		slog.String("booking_id", result.ID),
		slog.String("visitor_id", visitorID),
	)

	return result, nil
}

// MyBookings lists the visitor's bookings, newest first.
func (f *Finalizer) MyBookings(ctx context.Context, visitorID string) ([]models.Booking, error) {
	const op = "booking.Finalizer.MyBookings"

	bookings, err := f.store.BookingsByVisitor(ctx, visitorID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return bookings, nil
}
