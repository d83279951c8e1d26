// Package memory holds per-session conversation state for the lifetime of
// the process: a bounded message history, a free-form context mapping and
// the last persona a session was routed to.
package memory

import (
	"sync"
	"time"

	"github.com/Avisha2803/resort-booking-agent/internal/core"
)

type Entry struct {
	Role      string
	Content   string
	Timestamp time.Time
	Metadata  map[string]any
}

type Store struct {
	mu            sync.Mutex
	window        int
	conversations map[string][]Entry
	contexts      map[string]map[string]any
	personas      map[string]core.Persona
}

// New creates a store keeping at most window messages per session.
func New(window int) *Store {
	if window <= 0 {
		window = 10
	}
	return &Store{
		window:        window,
		conversations: make(map[string][]Entry),
		contexts:      make(map[string]map[string]any),
		personas:      make(map[string]core.Persona),
	}
}

// Record appends a message and evicts the oldest entries beyond the window.
func (s *Store) Record(sessionID, role, content string, metadata map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	history := append(s.conversations[sessionID], Entry{
		Role:      role,
		Content:   content,
		Timestamp: time.Now(),
		Metadata:  metadata,
	})
	if len(history) > s.window {
		history = history[len(history)-s.window:]
	}
	s.conversations[sessionID] = history
}

// History returns the session's messages oldest first.
func (s *Store) History(sessionID string) []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	history := s.conversations[sessionID]
	out := make([]Entry, len(history))
	copy(out, history)
	return out
}

// MergeContext shallow-merges updates into the session context.
func (s *Store) MergeContext(sessionID string, updates map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, ok := s.contexts[sessionID]
	if !ok {
		ctx = make(map[string]any)
		s.contexts[sessionID] = ctx
	}
	for k, v := range updates {
		ctx[k] = v
	}
}

func (s *Store) Context(sessionID string) map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]any, len(s.contexts[sessionID]))
	for k, v := range s.contexts[sessionID] {
		out[k] = v
	}
	return out
}

// Persona returns the sticky persona for the session, if any.
func (s *Store) Persona(sessionID string) (core.Persona, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.personas[sessionID]
	return p, ok
}

func (s *Store) SetPersona(sessionID string, p core.Persona) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.personas[sessionID] = p
}
