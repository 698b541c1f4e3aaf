package api

import (
	"errors"
	"net/http"

	"github.com/paullizer/WildfireRiskManagementAgent/internal/common"
	"github.com/paullizer/WildfireRiskManagementAgent/internal/constants"
	reqctx "github.com/paullizer/WildfireRiskManagementAgent/internal/context"
	"github.com/paullizer/WildfireRiskManagementAgent/internal/logging"
	"github.com/paullizer/WildfireRiskManagementAgent/internal/missions"
	"github.com/paullizer/WildfireRiskManagementAgent/internal/models/dtos/responses"
)

func toStatusResponse(m missions.Mission) responses.MissionStatusResponse {
	return responses.MissionStatusResponse{
		MissionID:   m.ID,
		Status:      m.Status.String(),
		SubmittedAt: common.FormatTimestamp(m.SubmittedAt),
	}
}

// toImageResponses always returns a non-nil slice so it encodes as [].
func toImageResponses(images []missions.ImageInfo) []responses.ImageInfoResponse {
	out := make([]responses.ImageInfoResponse, 0, len(images))
	for _, img := range images {
		out = append(out, responses.ImageInfoResponse{
			ImageID:   img.ImageID,
			URL:       img.URL,
			Timestamp: common.FormatTimestamp(img.Timestamp),
			Coordinates: responses.CoordinatesResponse{
				Lat: img.Coordinates.Lat,
				Lon: img.Coordinates.Lon,
			},
		})
	}
	return out
}

// respondError maps validation and store errors to HTTP responses.
// stateMsg is the message used when the mission is in the wrong state.
func (h *Handlers) respondError(w http.ResponseWriter, r *http.Request, op string, err error, stateMsg string) {
	log := logging.WithRequest(reqctx.GetRequestID(r.Context()), op)

	var validationErr *ValidationError
	switch {
	case errors.As(err, &validationErr):
		log.Debugw("Rejected invalid payload", "error", err.Error())
		common.RespondError(w, http.StatusBadRequest, validationErr.Message)
	case errors.Is(err, missions.ErrNotFound):
		h.countRejection(op, "not_found")
		log.Debugw("Mission not found", "error", err.Error())
		common.RespondError(w, http.StatusNotFound, constants.MsgMissionNotFound)
	case errors.Is(err, missions.ErrInvalidState):
		h.countRejection(op, "invalid_state")
		log.Infow("Mission operation rejected", "error", err.Error())
		common.RespondError(w, http.StatusBadRequest, stateMsg)
	default:
		log.Errorw("Mission operation failed", "error", err.Error())
		common.RespondError(w, http.StatusInternalServerError, constants.MsgInternal)
	}
}

func (h *Handlers) countRejection(op, reason string) {
	if h.deps.Metrics != nil {
		h.deps.Metrics.MissionRejectionsTotal.WithLabelValues(op, reason).Inc()
	}
}
