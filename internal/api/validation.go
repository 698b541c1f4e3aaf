package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/paullizer/WildfireRiskManagementAgent/internal/constants"
	"github.com/paullizer/WildfireRiskManagementAgent/internal/missions"
	"github.com/paullizer/WildfireRiskManagementAgent/internal/models/dtos/requests"
)

const maxBodyBytes = 1 << 20

// ValidationError reports a missing or malformed request field.
type ValidationError struct {
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error { return e.Err }

// decodeFlightPath reads and validates a flight path body. Nothing is returned
// unless every field is valid.
func decodeFlightPath(w http.ResponseWriter, r *http.Request, rejectEmpty bool) (missions.FlightPath, error) {
	var raw json.RawMessage
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&raw)
	switch {
	case errors.Is(err, io.EOF):
		return missions.FlightPath{}, &ValidationError{Message: constants.MsgMissingBody}
	case err != nil:
		return missions.FlightPath{}, &ValidationError{Message: constants.MsgInvalidBody, Err: err}
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return missions.FlightPath{}, &ValidationError{Message: constants.MsgInvalidBody, Err: err}
	}
	if isEmptyPayload(doc) {
		return missions.FlightPath{}, &ValidationError{Message: constants.MsgMissingBody}
	}
	if _, ok := doc.(map[string]any); !ok {
		return missions.FlightPath{}, &ValidationError{Message: constants.MsgInvalidBody}
	}

	// the document is a well-formed object, so any error here is a mistyped field
	var req requests.FlightPathRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return missions.FlightPath{}, &ValidationError{Message: constants.MsgInvalidFields, Err: err}
	}
	return validateFlightPath(req, rejectEmpty)
}

// isEmptyPayload reports whether doc is null, false, zero or an empty
// string, array or object.
func isEmptyPayload(doc any) bool {
	switch v := doc.(type) {
	case nil:
		return true
	case bool:
		return !v
	case float64:
		return v == 0
	case string:
		return v == ""
	case []any:
		return len(v) == 0
	case map[string]any:
		return len(v) == 0
	}
	return false
}

func validateFlightPath(req requests.FlightPathRequest, rejectEmpty bool) (missions.FlightPath, error) {
	if isAbsent(req.Waypoints) || req.Altitude == nil || req.Speed == nil {
		return missions.FlightPath{}, &ValidationError{Message: constants.MsgInvalidFields}
	}
	var raw []json.RawMessage
	if err := json.Unmarshal(req.Waypoints, &raw); err != nil {
		return missions.FlightPath{}, &ValidationError{Message: constants.MsgInvalidFields, Err: err}
	}
	if rejectEmpty && len(raw) == 0 {
		return missions.FlightPath{}, &ValidationError{Message: constants.MsgEmptyWaypoints}
	}

	waypoints := make([]missions.Waypoint, 0, len(raw))
	for _, item := range raw {
		wp, err := parseWaypoint(item)
		if err != nil {
			return missions.FlightPath{}, err
		}
		waypoints = append(waypoints, wp)
	}

	return missions.FlightPath{
		Waypoints: waypoints,
		Altitude:  *req.Altitude,
		Speed:     *req.Speed,
	}, nil
}

func parseWaypoint(item json.RawMessage) (missions.Waypoint, error) {
	if !bytes.HasPrefix(bytes.TrimSpace(item), []byte("{")) {
		return missions.Waypoint{}, &ValidationError{Message: constants.MsgInvalidWaypoint}
	}
	var wp requests.WaypointRequest
	if err := json.Unmarshal(item, &wp); err != nil {
		return missions.Waypoint{}, &ValidationError{Message: constants.MsgInvalidWaypoint, Err: err}
	}
	if wp.Lat == nil || wp.Lon == nil {
		return missions.Waypoint{}, &ValidationError{Message: constants.MsgInvalidWaypoint}
	}
	return missions.Waypoint{Lat: *wp.Lat, Lon: *wp.Lon}, nil
}

func isAbsent(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
