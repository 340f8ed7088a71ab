package createIntent

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"meetease/internal/identity"
	"meetease/internal/lib/api/response"
	"meetease/internal/lib/logger/sl"
	"meetease/internal/payment"
	"meetease/internal/storage"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type IntentRequest struct {
	SlotID string `json:"slot_id" validate:"required"`
}

type IntentResponse struct {
	response.Response
	ReservationID string `json:"reservation_id"`
	ClientSecret  string `json:"client_secret"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ReservationCreator
type ReservationCreator interface {
	CreateReservation(ctx context.Context, slotID, visitorID string) (payment.Reservation, error)
}

func New(log *slog.Logger, payments ReservationCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.createIntent.New"

		log = log.With(slog.String("op", op))

		caller, ok := identity.FromContext(r.Context())
		if !ok {
			log.Error("no identity in context")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("unauthenticated"))
			return
		}

		var req IntentRequest

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

		reservation, err := payments.CreateReservation(r.Context(), req.SlotID, caller.ID)
		if err != nil {
			if errors.Is(err, storage.ErrSlotUnavailable) {
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("slot unavailable"))
				return
			}

			log.Error("failed to open payment reservation", sl.Err(err))
			render.Status(r, http.StatusBadGateway)
			render.JSON(w, r, response.Error("payment init failed"))
			return
		}

		log.Info("payment reservation opened", slog.String("reservation_id", reservation.ID))

		render.JSON(w, r, IntentResponse{
			Response:      response.OK(),
			ReservationID: reservation.ID,
			ClientSecret:  reservation.ClientSecret,
		})
	}
}
