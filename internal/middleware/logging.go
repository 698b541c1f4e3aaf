package middleware

import (
	"net"
	"net/http"
	"time"

	reqctx "github.com/paullizer/WildfireRiskManagementAgent/internal/context"
	"github.com/paullizer/WildfireRiskManagementAgent/internal/logging"
)

// RequestLogger writes one structured line per request. Client errors are
// logged at warn, server errors at error.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		lw := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(lw, r)

		log := logging.WithRequest(reqctx.GetRequestID(r.Context()), routePattern(r))
		fields := []interface{}{
			"method", r.Method,
			"path", r.URL.Path,
			"status_code", lw.statusCode,
			"duration_ms", time.Since(start).Milliseconds(),
			"bytes", lw.bytes,
			"client_ip", clientIP(r),
		}

		switch {
		case lw.statusCode >= http.StatusInternalServerError:
			log.Errorw("HTTP request completed", fields...)
		case lw.statusCode >= http.StatusBadRequest:
			log.Warnw("HTTP request completed", fields...)
		default:
			log.Infow("HTTP request completed", fields...)
		}
	})
}

func clientIP(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}
