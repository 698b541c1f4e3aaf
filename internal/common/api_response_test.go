package common

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/paullizer/WildfireRiskManagementAgent/internal/models/dtos/responses"
)

func TestRespondError(t *testing.T) {
	rr := httptest.NewRecorder()
	RespondError(rr, http.StatusNotFound, "Mission not found.")

	if rr.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
	var body responses.APIResponse[any]
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if body.Status != "error" || body.Error != "Mission not found." {
		t.Errorf("Unexpected body: %+v", body)
	}
}

func TestFormatTimestamp(t *testing.T) {
	ts := time.Date(2025, 1, 2, 3, 4, 5, 6000, time.FixedZone("X", 3600))
	if got, want := FormatTimestamp(ts), "2025-01-02T02:04:05.000006Z"; got != want {
		t.Errorf("FormatTimestamp = %s, want %s", got, want)
	}
}
