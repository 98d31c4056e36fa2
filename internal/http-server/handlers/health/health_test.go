package health_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"ticketBooth/internal/http-server/handlers/health"
	"ticketBooth/internal/lib/logger/handlers/slogdiscard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthHandler(t *testing.T) {
	t.Parallel()

	handler := health.New(slogdiscard.NewDiscardLogger())

	req, err := http.NewRequest("GET", "/health", nil)
	require.NoError(t, err)

	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "I'm okay!", rr.Body.String())
}
