package deleteSlot

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"meetease/internal/identity"
	"meetease/internal/lib/api/response"
	"meetease/internal/lib/logger/sl"
	"meetease/internal/slots"
	"meetease/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type DeleteResponse struct {
	response.Response
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SlotDeleter
type SlotDeleter interface {
	Delete(ctx context.Context, slotID, callerID string) error
}

func New(log *slog.Logger, deleter SlotDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.slot.deleteSlot.New"

		log = log.With(slog.String("op", op))

		caller, ok := identity.FromContext(r.Context())
		if !ok {
			log.Error("no identity in context")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("unauthenticated"))
			return
		}

		slotID := chi.URLParam(r, "id")
		if slotID == "" {
			log.Error("slot id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("slot id is required"))
			return
		}

		log = log.With(slog.String("slot_id", slotID))

		err := deleter.Delete(r.Context(), slotID, caller.ID)
		if err != nil {
			switch {
			case errors.Is(err, storage.ErrSlotNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("slot not found"))
			case errors.Is(err, slots.ErrForbidden):
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("not authorized"))
			case errors.Is(err, storage.ErrSlotBooked):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("cannot delete booked slot"))
			default:
				log.Error("failed to delete slot", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to delete slot"))
			}
			return
		}

		log.Info("slot deleted")

		render.JSON(w, r, DeleteResponse{
			Response: response.OK(),
		})
	}
}
