package requests

import "encoding/json"

// FlightPathRequest is the body of submit_mission and update_waypoints.
// Pointer and raw fields distinguish an absent value from a zero or
// mistyped one.
type FlightPathRequest struct {
	Waypoints json.RawMessage `json:"waypoints"`
	Altitude  *float64        `json:"altitude"`
	Speed     *float64        `json:"speed"`
}

type WaypointRequest struct {
	Lat *float64 `json:"lat"`
	Lon *float64 `json:"lon"`
}
