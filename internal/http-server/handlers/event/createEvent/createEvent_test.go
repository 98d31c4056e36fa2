package createEvent_test

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ticketBooth/internal/http-server/handlers/event/createEvent"
	"ticketBooth/internal/http-server/handlers/event/createEvent/mocks"
	"ticketBooth/internal/lib/logger/handlers/slogdiscard"
	"ticketBooth/internal/models"
	"ticketBooth/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateEventHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testDate := time.Date(2026, 12, 25, 18, 0, 0, 0, time.UTC)

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(mock *mocks.EventCreator)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Success",
			requestBody: `{"name":"Conf","date":"2026-12-25T18:00:00Z"}`,
			mockSetup: func(mock *mocks.EventCreator) {
				mock.On("CreateEvent", "Conf", testDate).
					Return(&models.Event{ID: 42, Name: "Conf", Date: testDate}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `{"id":42,"name":"Conf","date":"2026-12-25T18:00:00Z"}`,
		},
		{
			name:           "Invalid JSON",
			requestBody:    `invalid json`,
			mockSetup:      func(mock *mocks.EventCreator) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
		{
			name:           "Missing name",
			requestBody:    `{"date":"2026-12-25T18:00:00Z"}`,
			mockSetup:      func(mock *mocks.EventCreator) {},
			expectedStatus: http.StatusUnprocessableEntity,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "Name")
			},
		},
		{
			name:           "Empty name",
			requestBody:    `{"name":"","date":"2026-12-25T18:00:00Z"}`,
			mockSetup:      func(mock *mocks.EventCreator) {},
			expectedStatus: http.StatusUnprocessableEntity,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "Name")
			},
		},
		{
			name:           "Missing date",
			requestBody:    `{"name":"Conf"}`,
			mockSetup:      func(mock *mocks.EventCreator) {},
			expectedStatus: http.StatusUnprocessableEntity,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "Date")
			},
		},
		{
			name:           "Unparsable date",
			requestBody:    `{"name":"Conf","date":"invalid date"}`,
			mockSetup:      func(mock *mocks.EventCreator) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `{"status":"Error","error":"field Date must be a valid timestamp"}`,
		},
		{
			name:        "Name conflict",
			requestBody: `{"name":"Conf","date":"2026-12-25T18:00:00Z"}`,
			mockSetup: func(mock *mocks.EventCreator) {
				mock.On("CreateEvent", "Conf", testDate).
					Return(nil, storage.ErrEventNameTaken)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"status":"Error","error":"event with this name already exists"}`,
		},
		{
			name:        "Internal server error",
			requestBody: `{"name":"Conf","date":"2026-12-25T18:00:00Z"}`,
			mockSetup: func(mock *mocks.EventCreator) {
				mock.On("CreateEvent", "Conf", testDate).
					Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to create event"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockCreator := mocks.NewEventCreator(t)
			tc.mockSetup(mockCreator)

			handler := createEvent.New(logger, mockCreator)

			req, err := http.NewRequest("POST", "/events", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

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
