package updateEvent_test

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ticketBooth/internal/http-server/handlers/event/updateEvent"
	"ticketBooth/internal/http-server/handlers/event/updateEvent/mocks"
	"ticketBooth/internal/lib/logger/handlers/slogdiscard"
	"ticketBooth/internal/models"
	"ticketBooth/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateEventHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testDate := time.Date(2026, 12, 25, 18, 0, 0, 0, time.UTC)

	testCases := []struct {
		name           string
		eventID        string
		requestBody    string
		mockSetup      func(mock *mocks.EventUpdater)
		expectedStatus int
		expectedBody   string
		jsonBody       bool
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Success",
			eventID:     "7",
			requestBody: `{"name":"New Event","date":"2026-12-25T18:00:00Z"}`,
			mockSetup: func(mock *mocks.EventUpdater) {
				mock.On("UpdateEvent", 7, "New Event", testDate).
					Return(&models.Event{ID: 7, Name: "New Event", Date: testDate}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"id":7,"name":"New Event","date":"2026-12-25T18:00:00Z"}`,
			jsonBody:       true,
		},
		{
			name:           "Invalid id",
			eventID:        "a",
			requestBody:    `{"name":"New Event","date":"2026-12-25T18:00:00Z"}`,
			mockSetup:      func(mock *mocks.EventUpdater) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Invalid id.",
		},
		{
			name:           "Invalid body",
			eventID:        "7",
			requestBody:    `{"name":"New Event","date":"invalid date"}`,
			mockSetup:      func(mock *mocks.EventUpdater) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `{"status":"Error","error":"field Date must be a valid timestamp"}`,
			jsonBody:       true,
		},
		{
			name:           "Missing name",
			eventID:        "7",
			requestBody:    `{"date":"2026-12-25T18:00:00Z"}`,
			mockSetup:      func(mock *mocks.EventUpdater) {},
			expectedStatus: http.StatusUnprocessableEntity,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "Name")
			},
		},
		{
			name:        "Event not found",
			eventID:     "777",
			requestBody: `{"name":"New Event","date":"2026-12-25T18:00:00Z"}`,
			mockSetup: func(mock *mocks.EventUpdater) {
				mock.On("UpdateEvent", 777, "New Event", testDate).
					Return(nil, storage.ErrEventNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   "Event with id 777 not found.",
		},
		{
			name:        "Name conflict",
			eventID:     "7",
			requestBody: `{"name":"New Event","date":"2026-12-25T18:00:00Z"}`,
			mockSetup: func(mock *mocks.EventUpdater) {
				mock.On("UpdateEvent", 7, "New Event", testDate).
					Return(nil, storage.ErrEventNameTaken)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"status":"Error","error":"event with this name already exists"}`,
			jsonBody:       true,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockUpdater := mocks.NewEventUpdater(t)
			tc.mockSetup(mockUpdater)

			router := chi.NewRouter()
			router.Put("/events/{id}", updateEvent.New(logger, mockUpdater))

			req, err := http.NewRequest("PUT", fmt.Sprintf("/events/%s", tc.eventID), bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			} else if tc.jsonBody {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String())
			} else {
				assert.Equal(t, tc.expectedBody, rr.Body.String())
			}
		})
	}
}
