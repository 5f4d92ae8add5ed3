package middlewares

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
)

type contextKey string

const RequestIDKey contextKey = "request_id"

// RequestLogger tags every request with a short id and logs method, path
// and elapsed time once the handler returns.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.New().String()[:8]
		start := time.Now()

		ctx := context.WithValue(r.Context(), RequestIDKey, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))

		log.Printf("RequestLogger: [%s] %s %s (%s)", requestID, r.Method, r.URL.Path, time.Since(start))
	})
}

// RequestID returns the id RequestLogger stored on the context, or an
// empty string outside a request.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}
