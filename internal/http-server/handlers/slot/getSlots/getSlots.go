package getSlots

import (
	"context"
	"log/slog"
	"net/http"

	"meetease/internal/lib/api/response"
	"meetease/internal/lib/logger/sl"
	"meetease/internal/models"

	"github.com/go-chi/render"
)

type SlotsResponse struct {
	response.Response
	Slots []models.Slot `json:"slots"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SlotLister
type SlotLister interface {
	Open(ctx context.Context) ([]models.Slot, error)
	ByHost(ctx context.Context, hostID string) ([]models.Slot, error)
}

// New lists slots. Without a host_id query parameter visitors see open slots
// only; with one, the host's own slots regardless of status.
func New(log *slog.Logger, slots SlotLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.slot.getSlots.New"

		log = log.With(slog.String("op", op))

		var (
			result []models.Slot
			err    error
		)

		if hostID := r.URL.Query().Get("host_id"); hostID != "" {
			result, err = slots.ByHost(r.Context(), hostID)
		} else {
			result, err = slots.Open(r.Context())
		}

		if err != nil {
			log.Error("failed to list slots", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to list slots"))
			return
		}

		if result == nil {
			result = []models.Slot{}
		}

		render.JSON(w, r, SlotsResponse{
			Response: response.OK(),
			Slots:    result,
		})
	}
}
