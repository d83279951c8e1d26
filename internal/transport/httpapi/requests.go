package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/Avisha2803/resort-booking-agent/internal/core"
	"github.com/Avisha2803/resort-booking-agent/pkg/log"
)

func (s *Server) handleListRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := s.requests.List(r.Context(), listFilterFromQuery(r))
	if err != nil {
		log.FromCtx(r.Context()).Error().Err(err).Msg("listing requests failed")
		writeError(w, http.StatusInternalServerError, "Error fetching requests")
		return
	}
	if requests == nil {
		requests = []core.ServiceRequest{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"requests": requests,
		"count":    len(requests),
	})
}

func (s *Server) handleUpdateRequest(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request id")
		return
	}

	var upd statusUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !core.ValidRequestStatus(upd.Status) {
		writeError(w, http.StatusBadRequest,
			"Invalid status. Must be one of: "+strings.Join(core.RequestStatuses, ", "))
		return
	}

	if err := s.requests.UpdateStatus(r.Context(), id, upd.Status); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Request not found")
			return
		}
		log.FromCtx(r.Context()).Error().Err(err).Int64("request", id).Msg("request status update failed")
		writeError(w, http.StatusInternalServerError, "Error updating request")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Request updated",
		"id":      id,
		"status":  upd.Status,
	})
}
