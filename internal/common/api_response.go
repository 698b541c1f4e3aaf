package common

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/paullizer/WildfireRiskManagementAgent/internal/constants"
	"github.com/paullizer/WildfireRiskManagementAgent/internal/logging"
	"github.com/paullizer/WildfireRiskManagementAgent/internal/models/dtos/responses"
)

// RespondJSON writes body as the JSON response with the given status code.
func RespondJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logging.Error("JSON encode failed", "error", err.Error())
	}
}

// RespondError sends a standardized JSON error response.
func RespondError(w http.ResponseWriter, code int, message string) {
	RespondJSON(w, code, responses.APIResponse[any]{
		Status:    string(constants.APIStatusError),
		Timestamp: time.Now().UTC(),
		Error:     message,
	})
}

// FormatTimestamp renders t in the wire timestamp format.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(constants.TimestampLayout)
}
