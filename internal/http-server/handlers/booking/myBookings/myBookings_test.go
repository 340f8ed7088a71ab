package myBookings

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"meetease/internal/http-server/handlers/booking/myBookings/mocks"
	"meetease/internal/identity"
	"meetease/internal/lib/logger/handlers/slogdiscard"
	"meetease/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMyBookingsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	visitor := identity.Identity{ID: "visitor-1", Role: identity.RoleVisitor}

	testCases := []struct {
		name           string
		caller         *identity.Identity
		mockSetup      func(m *mocks.BookingLister)
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:   "Success",
			caller: &visitor,
			mockSetup: func(m *mocks.BookingLister) {
				m.On("MyBookings", mock.Anything, "visitor-1").Return([]models.Booking{
					{ID: "booking-1", SlotID: "slot-1", VisitorID: "visitor-1", HostID: "host-1"},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"id":"booking-1"`)
			},
		},
		{
			name:           "No identity",
			caller:         nil,
			mockSetup:      func(m *mocks.BookingLister) {},
			expectedStatus: http.StatusUnauthorized,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"error":"unauthenticated"`)
			},
		},
		{
			name:   "No bookings yet",
			caller: &visitor,
			mockSetup: func(m *mocks.BookingLister) {
				m.On("MyBookings", mock.Anything, "visitor-1").Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"bookings":[]`)
			},
		},
		{
			name:   "Store failure",
			caller: &visitor,
			mockSetup: func(m *mocks.BookingLister) {
				m.On("MyBookings", mock.Anything, "visitor-1").Return(nil, assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockLister := mocks.NewBookingLister(t)
			tc.mockSetup(mockLister)

			handler := New(logger, mockLister)

			req, err := http.NewRequest(http.MethodGet, "/bookings/my", nil)
			require.NoError(t, err)

			if tc.caller != nil {
				req = req.WithContext(identity.ToContext(req.Context(), *tc.caller))
			}

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			tc.checkBody(t, rr.Body.String())
		})
	}
}
