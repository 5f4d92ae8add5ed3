package middlewares

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestLoggerAssignsRequestID(t *testing.T) {
	var seen string
	handler := RequestLogger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestID(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/orders", nil))

	require.Len(t, seen, 8)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRequestIDOutsideRequest(t *testing.T) {
	assert.Empty(t, RequestID(context.Background()))
}
