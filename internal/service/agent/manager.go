package agent

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Avisha2803/resort-booking-agent/internal/core"
	"github.com/Avisha2803/resort-booking-agent/internal/service/memory"
	"github.com/Avisha2803/resort-booking-agent/internal/service/router"
	"github.com/Avisha2803/resort-booking-agent/pkg/log"
)

const (
	defaultSessionID = "default"
	welcomeReply     = "Welcome to Eco Resort! How can I help?"
)

// Manager is the single chat entry point used by the transports. It routes
// each message to a persona, caches one agent per (session, persona) pair
// and serializes turns within a session.
type Manager struct {
	ai           core.AIProvider
	invoker      core.ToolInvoker
	mem          *memory.Store
	router       *router.Router
	modelTimeout time.Duration

	mu       sync.Mutex
	agents   map[string]*Agent
	sessions map[string]*sync.Mutex
}

func NewManager(ai core.AIProvider, invoker core.ToolInvoker, mem *memory.Store, rt *router.Router, modelTimeout time.Duration) *Manager {
	return &Manager{
		ai:           ai,
		invoker:      invoker,
		mem:          mem,
		router:       rt,
		modelTimeout: modelTimeout,
		agents:       make(map[string]*Agent),
		sessions:     make(map[string]*sync.Mutex),
	}
}

func (m *Manager) Chat(ctx context.Context, history []core.Message, sessionID string) (string, core.Persona) {
	if sessionID == "" {
		sessionID = defaultSessionID
	}

	if len(history) == 0 {
		m.mem.Record(sessionID, core.RoleAssistant, welcomeReply, nil)
		return welcomeReply, core.PersonaReceptionist
	}

	userText := core.LastUserText(history)
	persona := m.router.Route(userText, sessionID)
	log.FromCtx(ctx).Info().Str("session", sessionID).Str("persona", string(persona)).Msg("routing chat turn")

	ag := m.agentFor(sessionID, persona)

	// Concurrent turns for the same session would race on history and
	// sticky state, so they run one at a time.
	lock := m.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	return ag.ProcessTurn(ctx, history), persona
}

func (m *Manager) agentFor(sessionID string, persona core.Persona) *Agent {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := fmt.Sprintf("%s_%s", sessionID, persona)
	if ag, ok := m.agents[key]; ok {
		return ag
	}

	ag := New(persona, sessionID, m.ai, m.invoker, m.mem, m.modelTimeout)
	m.agents[key] = ag
	return ag
}

func (m *Manager) sessionLock(sessionID string) *sync.Mutex {
	m.mu.Lock()
	defer m.mu.Unlock()

	lock, ok := m.sessions[sessionID]
	if !ok {
		lock = &sync.Mutex{}
		m.sessions[sessionID] = lock
	}
	return lock
}
