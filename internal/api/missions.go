package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/paullizer/WildfireRiskManagementAgent/internal/common"
	"github.com/paullizer/WildfireRiskManagementAgent/internal/constants"
	reqctx "github.com/paullizer/WildfireRiskManagementAgent/internal/context"
	"github.com/paullizer/WildfireRiskManagementAgent/internal/logging"
)

const missionIDParam = "mission_id"

// SubmitMission handles POST /drone/submit_mission
func (h *Handlers) SubmitMission() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fp, err := decodeFlightPath(w, r, h.deps.Options.RejectEmptyWaypoints)
		if err != nil {
			h.respondError(w, r, "submit", err, "")
			return
		}

		m, err := h.deps.Store.Create(fp)
		if err != nil {
			h.respondError(w, r, "submit", err, "")
			return
		}

		logging.Info("Mission submitted",
			"request_id", reqctx.GetRequestID(r.Context()),
			"mission_id", m.ID,
			"waypoints", len(fp.Waypoints),
			"altitude", fp.Altitude,
			"speed", fp.Speed,
		)
		common.RespondJSON(w, http.StatusOK, toStatusResponse(m))
	}
}

// GetStatus handles GET /drone/status/{mission_id}
func (h *Handlers) GetStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, err := h.deps.Store.Get(chi.URLParam(r, missionIDParam))
		if err != nil {
			h.respondError(w, r, "status", err, "")
			return
		}
		common.RespondJSON(w, http.StatusOK, toStatusResponse(m))
	}
}

// CompleteMission handles POST /drone/complete_mission/{mission_id}.
// Completing an already completed mission returns the same images again.
func (h *Handlers) CompleteMission() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		missionID := chi.URLParam(r, missionIDParam)

		images, err := h.deps.Store.Complete(missionID)
		if err != nil {
			h.respondError(w, r, "complete", err, constants.MsgCompleteNotAllowed)
			return
		}

		logging.Info("Mission completed",
			"request_id", reqctx.GetRequestID(r.Context()),
			"mission_id", missionID,
			"images", len(images),
		)
		common.RespondJSON(w, http.StatusOK, toImageResponses(images))
	}
}

// GetImages handles GET /drone/images/{mission_id}
func (h *Handlers) GetImages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		images, err := h.deps.Store.ListImages(chi.URLParam(r, missionIDParam))
		if err != nil {
			h.respondError(w, r, "images", err, constants.MsgNotCompleted)
			return
		}
		common.RespondJSON(w, http.StatusOK, toImageResponses(images))
	}
}

// UpdateWaypoints handles PUT /drone/update_waypoints/{mission_id}.
// The body is validated in full before the mission is looked up.
func (h *Handlers) UpdateWaypoints() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		missionID := chi.URLParam(r, missionIDParam)

		fp, err := decodeFlightPath(w, r, h.deps.Options.RejectEmptyWaypoints)
		if err != nil {
			h.respondError(w, r, "update", err, "")
			return
		}

		m, err := h.deps.Store.UpdateFlightPath(missionID, fp)
		if err != nil {
			h.respondError(w, r, "update", err, constants.MsgUpdateNotAllowed)
			return
		}

		logging.Info("Mission waypoints updated",
			"request_id", reqctx.GetRequestID(r.Context()),
			"mission_id", missionID,
			"waypoints", len(fp.Waypoints),
		)
		common.RespondJSON(w, http.StatusOK, toStatusResponse(m))
	}
}

// CancelMission handles DELETE /drone/cancel_mission/{mission_id}
func (h *Handlers) CancelMission() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		missionID := chi.URLParam(r, missionIDParam)

		m, err := h.deps.Store.Cancel(missionID)
		if err != nil {
			h.respondError(w, r, "cancel", err, constants.MsgCancelNotAllowed)
			return
		}

		logging.Info("Mission canceled",
			"request_id", reqctx.GetRequestID(r.Context()),
			"mission_id", missionID,
		)
		common.RespondJSON(w, http.StatusOK, toStatusResponse(m))
	}
}
