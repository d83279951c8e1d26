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

const defaultListLimit = 100

func listFilterFromQuery(r *http.Request) core.ListFilter {
	q := r.URL.Query()
	filter := core.ListFilter{
		Status:     q.Get("status"),
		RoomNumber: q.Get("room_number"),
		Limit:      defaultListLimit,
	}
	if raw := q.Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			filter.Limit = n
		}
	}
	return filter
}

func (s *Server) handleListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := s.orders.List(r.Context(), listFilterFromQuery(r))
	if err != nil {
		log.FromCtx(r.Context()).Error().Err(err).Msg("listing orders failed")
		writeError(w, http.StatusInternalServerError, "Error fetching orders")
		return
	}
	if orders == nil {
		orders = []core.Order{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"orders": orders,
		"count":  len(orders),
	})
}

type statusUpdate struct {
	Status string `json:"status"`
}

func (s *Server) handleUpdateOrder(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid order id")
		return
	}

	var upd statusUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !core.ValidOrderStatus(upd.Status) {
		writeError(w, http.StatusBadRequest,
			"Invalid status. Must be one of: "+strings.Join(core.OrderStatuses, ", "))
		return
	}

	if err := s.orders.UpdateStatus(r.Context(), id, upd.Status); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Order not found")
			return
		}
		log.FromCtx(r.Context()).Error().Err(err).Int64("order", id).Msg("order status update failed")
		writeError(w, http.StatusInternalServerError, "Error updating order")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Order updated",
		"id":      id,
		"status":  upd.Status,
	})
}
