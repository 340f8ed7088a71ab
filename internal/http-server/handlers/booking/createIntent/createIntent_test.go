package createIntent

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"meetease/internal/http-server/handlers/booking/createIntent/mocks"
	"meetease/internal/identity"
	"meetease/internal/lib/logger/handlers/slogdiscard"
	"meetease/internal/payment"
	"meetease/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateIntentHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	visitor := identity.Identity{ID: "visitor-1", Role: identity.RoleVisitor}

	testCases := []struct {
		name           string
		caller         *identity.Identity
		requestBody    string
		mockSetup      func(m *mocks.ReservationCreator)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Success",
			caller:      &visitor,
			requestBody: `{"slot_id": "slot-1"}`,
			mockSetup: func(m *mocks.ReservationCreator) {
				m.On("CreateReservation", mock.Anything, "slot-1", "visitor-1").
					Return(payment.Reservation{ID: "res-1", ClientSecret: "secret"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","reservation_id":"res-1","client_secret":"secret"}`,
		},
		{
			name:           "No identity",
			caller:         nil,
			requestBody:    `{"slot_id": "slot-1"}`,
			mockSetup:      func(m *mocks.ReservationCreator) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"unauthenticated"}`,
		},
		{
			name:           "Missing slot_id",
			caller:         &visitor,
			requestBody:    `{}`,
			mockSetup:      func(m *mocks.ReservationCreator) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "SlotID")
			},
		},
		{
			name:        "Slot unavailable",
			caller:      &visitor,
			requestBody: `{"slot_id": "slot-1"}`,
			mockSetup: func(m *mocks.ReservationCreator) {
				m.On("CreateReservation", mock.Anything, "slot-1", "visitor-1").
					Return(payment.Reservation{}, storage.ErrSlotUnavailable)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"status":"Error","error":"slot unavailable"}`,
		},
		{
			name:        "Gateway failure",
			caller:      &visitor,
			requestBody: `{"slot_id": "slot-1"}`,
			mockSetup: func(m *mocks.ReservationCreator) {
				m.On("CreateReservation", mock.Anything, "slot-1", "visitor-1").
					Return(payment.Reservation{}, assert.AnError)
			},
			expectedStatus: http.StatusBadGateway,
			expectedBody:   `{"status":"Error","error":"payment init failed"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockPayments := mocks.NewReservationCreator(t)
			tc.mockSetup(mockPayments)

			handler := New(logger, mockPayments)

			req, err := http.NewRequest(http.MethodPost, "/bookings/payment-intent",
				bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			if tc.caller != nil {
				req = req.WithContext(identity.ToContext(req.Context(), *tc.caller))
			}

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}
