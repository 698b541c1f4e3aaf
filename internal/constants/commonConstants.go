package constants

type (
	APIStatus string
)

const (
	APIStatusOk    APIStatus = "ok"
	APIStatusError APIStatus = "error"

	HeaderAPIKey    = "X-API-Key"
	HeaderRequestID = "X-Request-ID"

	// TimestampLayout is ISO-8601 in UTC with microseconds and a Z suffix.
	TimestampLayout = "2006-01-02T15:04:05.000000Z"
)
