package myBookings

import (
	"context"
	"log/slog"
	"net/http"

	"meetease/internal/identity"
	"meetease/internal/lib/api/response"
	"meetease/internal/lib/logger/sl"
	"meetease/internal/models"

	"github.com/go-chi/render"
)

type BookingsResponse struct {
	response.Response
	Bookings []models.Booking `json:"bookings"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingLister
type BookingLister interface {
	MyBookings(ctx context.Context, visitorID string) ([]models.Booking, error)
}

func New(log *slog.Logger, bookings BookingLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.myBookings.New"

		log = log.With(slog.String("op", op))

		caller, ok := identity.FromContext(r.Context())
		if !ok {
			log.Error("no identity in context")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("unauthenticated"))
			return
		}

		result, err := bookings.MyBookings(r.Context(), caller.ID)
		if err != nil {
			log.Error("failed to list bookings", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to list bookings"))
			return
		}

		if result == nil {
			result = []models.Booking{}
		}

		render.JSON(w, r, BookingsResponse{
			Response: response.OK(),
			Bookings: result,
		})
	}
}
