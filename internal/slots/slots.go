// Package slots owns the host-facing slot lifecycle: publishing, listing
// and deleting. Deletion runs under the same per-slot lock as booking
// finalization so it can never race a concurrent finalize.
package slots

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"meetease/internal/clock"
	"meetease/internal/models"
	"meetease/internal/notifier"
	"meetease/internal/storage"

	"github.com/google/uuid"
)

var ErrForbidden = errors.New("forbidden")

type Store interface {
	SaveSlot(ctx context.Context, slot models.Slot) error
	Slot(ctx context.Context, id string) (*models.Slot, error)
	OpenSlots(ctx context.Context) ([]models.Slot, error)
	SlotsByHost(ctx context.Context, hostID string) ([]models.Slot, error)
	DeleteSlot(ctx context.Context, id string) error
}

type Locker interface {
	WithSlotLock(slotID string, fn func() error) error
}

type Notifier interface {
	Publish(event notifier.Event)
}

type Service struct {
	log    *slog.Logger
	store  Store
	locker Locker
	hub    Notifier
	clock  clock.Clock
}

func New(log *slog.Logger, store Store, locker Locker, hub Notifier, clk clock.Clock) *Service {
	return &Service{
		log:    log,
		store:  store,
		locker: locker,
		hub:    hub,
		clock:  clk,
	}
}

func (s *Service) Create(ctx context.Context, hostID, date, timeOfDay string) (*models.Slot, error) {
	const op = "slots.Service.Create"

	slot := models.Slot{
		ID:        uuid.NewString(),
		HostID:    hostID,
		Date:      date,
		Time:      timeOfDay,
		Status:    models.SlotStatusOpen,
		CreatedAt: s.clock.Now(),
	}

	if err := s.store.SaveSlot(ctx, slot); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("slot created",
		slog.String("slot_id", slot.ID),
		slog.String("host_id", hostID),
	)

	return &slot, nil
}

func (s *Service) Open(ctx context.Context) ([]models.Slot, error) {
	const op = "slots.Service.Open"

	slots, err := s.store.OpenSlots(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return slots, nil
}

func (s *Service) ByHost(ctx context.Context, hostID string) ([]models.Slot, error) {
	const op = "slots.Service.ByHost"

	slots, err := s.store.SlotsByHost(ctx, hostID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return slots, nil
}

// Delete removes an open slot owned by callerID. It holds the slot's lock so
// a delete can never interleave with a finalize on the same slot. Once the
// lock is held the section runs to completion even if the caller goes away.
func (s *Service) Delete(ctx context.Context, slotID, callerID string) error {
	ctx = context.WithoutCancel(ctx)

	return s.locker.WithSlotLock(slotID, func() error {
		slot, err := s.store.Slot(ctx, slotID)
		if err != nil {
			return err
		}

		if slot.HostID != callerID {
			return ErrForbidden
		}

		if !slot.IsOpen() {
			return storage.ErrSlotBooked
		}

		if err = s.store.DeleteSlot(ctx, slotID); err != nil {
			return err
		}

		s.hub.Publish(notifier.Event{
			SlotID: slotID,
			Action: notifier.ActionDeleted,
		})

		s.log.Info("slot deleted", slog.String("slot_id", slotID))

		return nil
	})
}
