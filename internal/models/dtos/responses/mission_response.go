package responses

// MissionStatusResponse is returned by submit, status, update and cancel.
type MissionStatusResponse struct {
	MissionID   string `json:"mission_id"`
	Status      string `json:"status"`
	SubmittedAt string `json:"submitted_at"`
}

type CoordinatesResponse struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// ImageInfoResponse describes one simulated capture.
type ImageInfoResponse struct {
	ImageID     string              `json:"image_id"`
	URL         string              `json:"url"`
	Timestamp   string              `json:"timestamp"`
	Coordinates CoordinatesResponse `json:"coordinates"`
}

type HealthResponse struct {
	Message string `json:"message"`
}
