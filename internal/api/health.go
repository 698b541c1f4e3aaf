package api

import (
	"net/http"

	"github.com/paullizer/WildfireRiskManagementAgent/internal/common"
	"github.com/paullizer/WildfireRiskManagementAgent/internal/constants"
	"github.com/paullizer/WildfireRiskManagementAgent/internal/models/dtos/responses"
)

// HealthCheck handles GET /. It sits behind the API key check like every
// other route.
func (h *Handlers) HealthCheck() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		common.RespondJSON(w, http.StatusOK, responses.HealthResponse{Message: constants.MsgHealthy})
	}
}
