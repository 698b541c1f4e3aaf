package constants

const (
	MsgUnauthorized       = "Unauthorized: Invalid or missing API key."
	MsgMissingBody        = "Missing JSON body."
	MsgInvalidBody        = "Invalid JSON body."
	MsgInvalidFields      = "Invalid or missing fields: waypoints, altitude, speed."
	MsgInvalidWaypoint    = "Each waypoint must be an object with 'lat' and 'lon'."
	MsgEmptyWaypoints     = "At least one waypoint is required."
	MsgMissionNotFound    = "Mission not found."
	MsgNotCompleted       = "Mission not completed yet."
	MsgUpdateNotAllowed   = "Cannot update waypoints after mission has started or completed."
	MsgCancelNotAllowed   = "Cannot cancel a mission that is in progress or completed."
	MsgCompleteNotAllowed = "Cannot complete a mission that has been canceled."
	MsgTooManyRequests    = "Too many requests"
	MsgInternal           = "Internal server error."
)

const (
	MsgHealthy = "Mock Drone API is up and running."
)
