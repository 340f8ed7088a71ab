package createSlot

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"meetease/internal/http-server/handlers/slot/createSlot/mocks"
	"meetease/internal/identity"
	"meetease/internal/lib/logger/handlers/slogdiscard"
	"meetease/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateSlotHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		caller         *identity.Identity
		requestBody    string
		mockSetup      func(m *mocks.SlotCreator)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Success",
			caller:      &identity.Identity{ID: "host-1", Role: identity.RoleHost},
			requestBody: `{"date": "2024-05-01", "time": "10:00"}`,
			mockSetup: func(m *mocks.SlotCreator) {
				m.On("Create", mock.Anything, "host-1", "2024-05-01", "10:00").
					Return(&models.Slot{
						ID:     "slot-1",
						HostID: "host-1",
						Date:   "2024-05-01",
						Time:   "10:00",
						Status: models.SlotStatusOpen,
					}, nil)
			},
			expectedStatus: http.StatusCreated,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"OK"`)
				assert.Contains(t, body, `"id":"slot-1"`)
			},
		},
		{
			name:           "No identity",
			caller:         nil,
			requestBody:    `{"date": "2024-05-01", "time": "10:00"}`,
			mockSetup:      func(m *mocks.SlotCreator) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"unauthenticated"}`,
		},
		{
			name:           "Invalid JSON",
			caller:         &identity.Identity{ID: "host-1", Role: identity.RoleHost},
			requestBody:    `invalid json`,
			mockSetup:      func(m *mocks.SlotCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
		{
			name:           "Missing date",
			caller:         &identity.Identity{ID: "host-1", Role: identity.RoleHost},
			requestBody:    `{"time": "10:00"}`,
			mockSetup:      func(m *mocks.SlotCreator) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "Date")
			},
		},
		{
			name:           "Malformed time",
			caller:         &identity.Identity{ID: "host-1", Role: identity.RoleHost},
			requestBody:    `{"date": "2024-05-01", "time": "half past ten"}`,
			mockSetup:      func(m *mocks.SlotCreator) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "Time")
			},
		},
		{
			name:        "Store failure",
			caller:      &identity.Identity{ID: "host-1", Role: identity.RoleHost},
			requestBody: `{"date": "2024-05-01", "time": "10:00"}`,
			mockSetup: func(m *mocks.SlotCreator) {
				m.On("Create", mock.Anything, "host-1", "2024-05-01", "10:00").
					Return(nil, assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to create slot"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockCreator := mocks.NewSlotCreator(t)
			tc.mockSetup(mockCreator)

			handler := New(logger, mockCreator)

			req, err := http.NewRequest(http.MethodPost, "/slots", bytes.NewBufferString(tc.requestBody))
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
