package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"meetease/internal/config"
	"meetease/internal/models"
	"meetease/internal/storage"

	_ "github.com/lib/pq"
)

type Storage struct {
	DB *sql.DB
}

func InitDB(dbCfg *config.Database) (*Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	return &Storage{DB: db}, nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

func (s *Storage) SaveSlot(ctx context.Context, slot models.Slot) error {
	query := `
		INSERT INTO slots (id, host_id, date, time, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := s.DB.ExecContext(ctx, query,
		slot.ID, slot.HostID, slot.Date, slot.Time, slot.Status, slot.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save slot: %w", err)
	}

	return nil
}

func (s *Storage) Slot(ctx context.Context, id string) (*models.Slot, error) {
	query := `
		SELECT id, host_id, date, time, status, created_at
		FROM slots
		WHERE id = $1`

	var slot models.Slot
	err := s.DB.QueryRowContext(ctx, query, id).Scan(
		&slot.ID,
		&slot.HostID,
		&slot.Date,
		&slot.Time,
		&slot.Status,
		&slot.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrSlotNotFound
		}
		return nil, fmt.Errorf("failed to get slot: %w", err)
	}

	return &slot, nil
}

func (s *Storage) OpenSlots(ctx context.Context) ([]models.Slot, error) {
	query := `
		SELECT id, host_id, date, time, status, created_at
		FROM slots
		WHERE status = 'open'
		ORDER BY date, time`

	return s.querySlots(ctx, query)
}

func (s *Storage) SlotsByHost(ctx context.Context, hostID string) ([]models.Slot, error) {
	query := `
		SELECT id, host_id, date, time, status, created_at
		FROM slots
		WHERE host_id = $1
		ORDER BY date, time`

	return s.querySlots(ctx, query, hostID)
}

func (s *Storage) querySlots(ctx context.Context, query string, args ...any) ([]models.Slot, error) {
	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get slots: %w", err)
	}
	defer rows.Close()

	var slots []models.Slot
	for rows.Next() {
		var slot models.Slot
		err = rows.Scan(
			&slot.ID,
			&slot.HostID,
			&slot.Date,
			&slot.Time,
			&slot.Status,
			&slot.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan slot: %w", err)
		}
		slots = append(slots, slot)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating slots: %w", err)
	}

	return slots, nil
}

// TrySetBooked flips the slot to booked only if it is still open.
// It reports false when the current status no longer matches.
func (s *Storage) TrySetBooked(ctx context.Context, id string) (bool, error) {
	query := `
		UPDATE slots
		SET status = 'booked'
		WHERE id = $1 AND status = 'open'`

	result, err := s.DB.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("failed to set slot booked: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to set slot booked: %w", err)
	}

	return affected == 1, nil
}

// DeleteSlot removes an open slot. A booked slot is never deleted.
func (s *Storage) DeleteSlot(ctx context.Context, id string) error {
	query := `
		DELETE FROM slots
		WHERE id = $1 AND status = 'open'`

	result, err := s.DB.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete slot: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete slot: %w", err)
	}

	if affected == 0 {
		slot, err := s.Slot(ctx, id)
		if err != nil {
			return err
		}
		if slot.Status == models.SlotStatusBooked {
			return storage.ErrSlotBooked
		}
		return storage.ErrSlotNotFound
	}

	return nil
}

func (s *Storage) SaveBooking(ctx context.Context, booking models.Booking) error {
	query := `
		INSERT INTO bookings (id, slot_id, visitor_id, host_id, payment_ref, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := s.DB.ExecContext(ctx, query,
		booking.ID, booking.SlotID, booking.VisitorID, booking.HostID,
		booking.PaymentRef, booking.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save booking: %w", err)
	}

	return nil
}

func (s *Storage) BookingsByVisitor(ctx context.Context, visitorID string) ([]models.Booking, error) {
	query := `
		SELECT id, slot_id, visitor_id, host_id, payment_ref, created_at
		FROM bookings
		WHERE visitor_id = $1
		ORDER BY created_at DESC`

	rows, err := s.DB.QueryContext(ctx, query, visitorID)
	if err != nil {
		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}
	defer rows.Close()

	var bookings []models.Booking
	for rows.Next() {
		var booking models.Booking
		err = rows.Scan(
			&booking.ID,
			&booking.SlotID,
			&booking.VisitorID,
			&booking.HostID,
			&booking.PaymentRef,
			&booking.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, booking)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bookings: %w", err)
	}

	return bookings, nil
}

func (s *Storage) SlotHasBooking(ctx context.Context, slotID string) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM bookings
			WHERE slot_id = $1
		)`

	var exists bool
	err := s.DB.QueryRowContext(ctx, query, slotID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check slot booking: %w", err)
	}

	return exists, nil
}
