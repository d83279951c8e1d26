package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/Avisha2803/resort-booking-agent/internal/core"
	"github.com/Avisha2803/resort-booking-agent/internal/providers/tools"
	"github.com/Avisha2803/resort-booking-agent/pkg/log"
)

type chatRequest struct {
	History   []core.Message `json:"history"`
	SessionID string         `json:"session_id"`
}

type chatResponse struct {
	Response  string `json:"response"`
	AgentType string `json:"agent_type,omitempty"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	log.FromCtx(ctx).Info().Str("session", req.SessionID).Msg("chat request")

	reply, persona := s.chat.Chat(ctx, req.History, req.SessionID)
	writeJSON(w, http.StatusOK, chatResponse{
		Response:  reply,
		AgentType: string(persona),
	})
}

func (s *Server) handleMenu(w http.ResponseWriter, r *http.Request) {
	menuText, err := s.invoker.Call(r.Context(), tools.ToolGetMenuItems, `{"compact": false}`)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error fetching menu")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"menu": menuText})
}
