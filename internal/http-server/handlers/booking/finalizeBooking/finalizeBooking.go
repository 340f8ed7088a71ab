package finalizeBooking

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"meetease/internal/booking"
	"meetease/internal/identity"
	"meetease/internal/lib/api/response"
	"meetease/internal/lib/logger/sl"
	"meetease/internal/models"
	"meetease/internal/storage"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type FinalizeRequest struct {
	SlotID     string `json:"slot_id" validate:"required"`
	PaymentRef string `json:"payment_ref" validate:"required"`
}

type FinalizeResponse struct {
	response.Response
	Booking *models.Booking `json:"booking"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingFinalizer
type BookingFinalizer interface {
	Finalize(ctx context.Context, slotID, visitorID, paymentRef string) (*models.Booking, error)
}

func New(log *slog.Logger, finalizer BookingFinalizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.finalizeBooking.New"

		log = log.With(slog.String("op", op))

		caller, ok := identity.FromContext(r.Context())
		if !ok {
			log.Error("no identity in context")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("unauthenticated"))
			return
		}

		var req FinalizeRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		b, err := finalizer.Finalize(r.Context(), req.SlotID, caller.ID, req.PaymentRef)
		if err != nil {
			switch {
			case errors.Is(err, storage.ErrSlotUnavailable):
				// Expected outcome of losing the race; not a failure.
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("slot unavailable"))
			case errors.Is(err, booking.ErrPaymentNotConfirmed):
				render.Status(r, http.StatusPaymentRequired)
				render.JSON(w, r, response.Error("payment not confirmed"))
			default:
				log.Error("failed to finalize booking", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("booking failed"))
			}
			return
		}

		log.Info("booking finalized",
			slog.String("booking_id", b.ID),
			slog.String("slot_id", b.SlotID),
		)

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, FinalizeResponse{
			Response: response.OK(),
			Booking:  b,
		})
	}
}
