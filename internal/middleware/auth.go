package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/paullizer/WildfireRiskManagementAgent/internal/common"
	"github.com/paullizer/WildfireRiskManagementAgent/internal/constants"
	reqctx "github.com/paullizer/WildfireRiskManagementAgent/internal/context"
	"github.com/paullizer/WildfireRiskManagementAgent/internal/logging"
	"github.com/paullizer/WildfireRiskManagementAgent/internal/metrics"
)

// APIKeyMiddleware rejects any request whose X-API-Key header does not match
// apiKey. An empty apiKey rejects every request.
func APIKeyMiddleware(apiKey string, metricsReg *metrics.MetricsRegistry) func(http.Handler) http.Handler {
	expected := []byte(apiKey)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			presented := r.Header.Get(constants.HeaderAPIKey)

			if len(expected) == 0 || subtle.ConstantTimeCompare(expected, []byte(presented)) != 1 {
				if metricsReg != nil {
					metricsReg.AuthFailuresTotal.Inc()
				}
				logging.Warn("Rejected request with invalid API key",
					"request_id", reqctx.GetRequestID(r.Context()),
					"method", r.Method,
					"path", r.URL.Path,
					"key_present", presented != "",
				)
				common.RespondError(w, http.StatusUnauthorized, constants.MsgUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
