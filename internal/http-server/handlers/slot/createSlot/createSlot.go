package createSlot

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"meetease/internal/identity"
	"meetease/internal/lib/api/response"
	"meetease/internal/lib/logger/sl"
	"meetease/internal/models"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type SlotRequest struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
	Time string `json:"time" validate:"required,datetime=15:04"`
}

type SlotResponse struct {
	response.Response
	Slot *models.Slot `json:"slot"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SlotCreator
type SlotCreator interface {
	Create(ctx context.Context, hostID, date, timeOfDay string) (*models.Slot, error)
}

func New(log *slog.Logger, slots SlotCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.slot.createSlot.New"

		log = log.With(slog.String("op", op))

		caller, ok := identity.FromContext(r.Context())
		if !ok {
			log.Error("no identity in context")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("unauthenticated"))
			return
		}

		var req SlotRequest

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

		slot, err := slots.Create(r.Context(), caller.ID, req.Date, req.Time)
		if err != nil {
			log.Error("failed to create slot", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to create slot"))
			return
		}

		log.Info("slot created", slog.String("slot_id", slot.ID))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, SlotResponse{
			Response: response.OK(),
			Slot:     slot,
		})
	}
}
