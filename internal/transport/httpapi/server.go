// Package httpapi exposes the guest chat endpoint and the staff CRUD
// surface over plain net/http.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/Avisha2803/resort-booking-agent/internal/core"
	"github.com/Avisha2803/resort-booking-agent/pkg/log"
)

// ChatService is implemented by the agent manager.
type ChatService interface {
	Chat(ctx context.Context, history []core.Message, sessionID string) (string, core.Persona)
}

type Server struct {
	srv      *http.Server
	chat     ChatService
	invoker  core.ToolInvoker
	menu     core.MenuRepository
	orders   core.OrdersRepository
	requests core.RequestsRepository
}

func NewServer(addr string, chat ChatService, invoker core.ToolInvoker, menu core.MenuRepository, orders core.OrdersRepository, requests core.RequestsRepository) *Server {
	s := &Server{
		chat:     chat,
		invoker:  invoker,
		menu:     menu,
		orders:   orders,
		requests: requests,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /", s.handleRoot)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /chat", s.handleChat)
	mux.HandleFunc("GET /menu", s.handleMenu)
	mux.HandleFunc("GET /orders", s.handleListOrders)
	mux.HandleFunc("PUT /orders/{id}", s.handleUpdateOrder)
	mux.HandleFunc("GET /requests", s.handleListRequests)
	mux.HandleFunc("PUT /requests/{id}", s.handleUpdateRequest)

	s.srv = &http.Server{
		Addr:              addr,
		Handler:           withCORS(mux),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

func (s *Server) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Str("addr", s.srv.Addr).Msg("starting http api")
	if err := s.srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.srv.Shutdown(shutdownCtx)
}

// The chat widget is served from the filesystem, so cross-origin calls are
// expected.
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		writeError(w, http.StatusNotFound, "Not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": core.ResortName + " Agent System",
		"version": core.ResortVersion,
		"endpoints": map[string]string{
			"chat":     "POST /chat",
			"orders":   "GET /orders",
			"requests": "GET /requests",
			"menu":     "GET /menu",
			"health":   "GET /health",
		},
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orderCount, err := s.orders.Count(ctx)
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, "Service unavailable")
		return
	}
	requestCount, err := s.requests.Count(ctx)
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, "Service unavailable")
		return
	}
	menuCount, err := s.menu.Count(ctx)
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, "Service unavailable")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"stats": map[string]int{
			"orders":     orderCount,
			"requests":   requestCount,
			"menu_items": menuCount,
		},
	})
}
