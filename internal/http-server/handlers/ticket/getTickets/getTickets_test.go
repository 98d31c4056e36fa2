package getTickets_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"ticketBooth/internal/http-server/handlers/ticket/getTickets"
	"ticketBooth/internal/http-server/handlers/ticket/getTickets/mocks"
	"ticketBooth/internal/lib/logger/handlers/slogdiscard"
	"ticketBooth/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTicketsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		eventID        string
		mockSetup      func(mock *mocks.TicketsGetter)
		expectedStatus int
		expectedBody   string
		jsonBody       bool
	}{
		{
			name:    "Success",
			eventID: "7",
			mockSetup: func(mock *mocks.TicketsGetter) {
				mock.On("GetEventTickets", 7).Return([]models.Ticket{
					{ID: 1, Owner: "Al", Code: "X1", Used: false, EventID: 7},
					{ID: 2, Owner: "Bo", Code: "X2", Used: true, EventID: 7},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: `[
				{"id":1,"owner":"Al","code":"X1","used":false,"eventId":7},
				{"id":2,"owner":"Bo","code":"X2","used":true,"eventId":7}
			]`,
			jsonBody: true,
		},
		{
			name:           "Invalid id",
			eventID:        "a",
			mockSetup:      func(mock *mocks.TicketsGetter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Invalid id.",
		},
		{
			name:           "Negative id",
			eventID:        "-1",
			mockSetup:      func(mock *mocks.TicketsGetter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Invalid id.",
		},
		{
			name:    "Nonexistent event yields an empty array",
			eventID: "999999",
			mockSetup: func(mock *mocks.TicketsGetter) {
				mock.On("GetEventTickets", 999999).Return([]models.Ticket{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[]`,
			jsonBody:       true,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockGetter := mocks.NewTicketsGetter(t)
			tc.mockSetup(mockGetter)

			router := chi.NewRouter()
			router.Get("/tickets/{eventId}", getTickets.New(logger, mockGetter))

			req, err := http.NewRequest("GET", fmt.Sprintf("/tickets/%s", tc.eventID), nil)
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
