package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/token-relay/internal/logger"
	"github.com/rs/zerolog"
)

// withLogging writes one access log line per request. Relay failures (5xx)
// are logged at error level, everything else at info.
func withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		lw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(lw, r)

		accessEvent(logger.FromRequest(r), lw.status).
			Str("uri", r.RequestURI).
			Str("method", r.Method).
			Str("remote_addr", r.RemoteAddr).
			Int("status", lw.status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Msg("request served")
	})
}

func accessEvent(log *logger.Logger, status int) *zerolog.Event {
	if status >= http.StatusInternalServerError {
		return log.Error()
	}
	return log.Info()
}
