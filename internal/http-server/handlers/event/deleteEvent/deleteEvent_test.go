package deleteEvent_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"ticketBooth/internal/http-server/handlers/event/deleteEvent"
	"ticketBooth/internal/http-server/handlers/event/deleteEvent/mocks"
	"ticketBooth/internal/lib/logger/handlers/slogdiscard"
	"ticketBooth/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteEventHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		eventID        string
		mockSetup      func(mock *mocks.EventDeleter)
		expectedStatus int
		expectedBody   string
		jsonBody       bool
	}{
		{
			name:    "Success",
			eventID: "7",
			mockSetup: func(mock *mocks.EventDeleter) {
				mock.On("DeleteEvent", 7).Return(nil)
			},
			expectedStatus: http.StatusNoContent,
			expectedBody:   "",
		},
		{
			name:           "Invalid id",
			eventID:        "a",
			mockSetup:      func(mock *mocks.EventDeleter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Invalid id.",
		},
		{
			name:    "Event not found",
			eventID: "777",
			mockSetup: func(mock *mocks.EventDeleter) {
				mock.On("DeleteEvent", 777).Return(storage.ErrEventNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   "Event with id 777 not found.",
		},
		{
			name:    "Storage failure",
			eventID: "7",
			mockSetup: func(mock *mocks.EventDeleter) {
				mock.On("DeleteEvent", 7).Return(errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to delete event"}`,
			jsonBody:       true,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockDeleter := mocks.NewEventDeleter(t)
			tc.mockSetup(mockDeleter)

			router := chi.NewRouter()
			router.Delete("/events/{id}", deleteEvent.New(logger, mockDeleter))

			req, err := http.NewRequest("DELETE", fmt.Sprintf("/events/%s", tc.eventID), nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.jsonBody {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String())
			} else {
				assert.Equal(t, tc.expectedBody, rr.Body.String())
			}
		})
	}
}
