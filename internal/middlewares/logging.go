package middlewares

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	requestIDKey    contextKey = "requestID"
	requestIDHeader            = "X-Request-ID"
)

// RequestIDFromContext returns the id assigned by LoggingMiddleware.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// LoggingMiddleware logs one line per request with its outcome. An inbound
// X-Request-ID is kept when it is a UUID, otherwise a new one is generated;
// either way it is echoed on the response.
// 5xx responses log at error level, 4xx at warn.
func LoggingMiddleware(log *zap.SugaredLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := r.Header.Get(requestIDHeader)
			if _, err := uuid.Parse(reqID); err != nil {
				reqID = uuid.New().String()
			}

			start := time.Now()
			rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			r = r.WithContext(context.WithValue(r.Context(), requestIDKey, reqID))
			w.Header().Set(requestIDHeader, reqID)

			next.ServeHTTP(rw, r)

			fields := []any{
				"request_id", reqID,
				"method", r.Method,
				"path", r.URL.Path,
				"remote_addr", r.RemoteAddr,
				"status", rw.statusCode,
				"response_size", rw.size,
				"duration", time.Since(start),
			}

			switch {
			case rw.statusCode >= http.StatusInternalServerError:
				log.Errorw("request failed", fields...)
			case rw.statusCode >= http.StatusBadRequest:
				log.Warnw("request rejected", fields...)
			default:
				log.Infow("request served", fields...)
			}
		})
	}
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
	size       int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	size, err := rw.ResponseWriter.Write(b)
	rw.size += size
	return size, err
}
