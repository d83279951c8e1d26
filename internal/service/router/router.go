// Package router decides which persona answers a guest message. Matching
// is a best-effort keyword heuristic, not a grammar: the lists and their
// ordering are deliberate and load-bearing (Restaurant is always checked
// before RoomService, so a message matching both goes to the Restaurant).
package router

import (
	"strings"

	"github.com/Avisha2803/resort-booking-agent/internal/core"
)

// StickyStore is the slice of conversation memory the router needs.
type StickyStore interface {
	Persona(sessionID string) (core.Persona, bool)
	SetPersona(sessionID string, p core.Persona)
}

// Continuation keywords keep a session on its current persona without
// rescanning the full lists.
var (
	restaurantContinuation = []string{"menu", "order", "food", "eat", "want", "get"}
	serviceContinuation    = []string{"clean", "towel", "service"}
)

var restaurantWords = []string{
	"menu", "food", "order", "restaurant", "eat", "hungry",
	"pizza", "burger", "dosa", "rice", "curry", "meal",
	"puri", "bhaji", "drink", "soft", "plate", "serving",
	"want", "need", "would like", "thirsty",
}

var serviceWords = []string{
	"clean", "towel", "service", "request", "amenity",
	"laundry", "housekeeping", "maintenance", "repair",
}

type Router struct {
	sticky StickyStore
}

func New(sticky StickyStore) *Router {
	return &Router{sticky: sticky}
}

// Route picks a persona for the text and persists it as the session's new
// sticky state. Empty text defaults to the Receptionist and leaves the
// sticky state untouched.
func (r *Router) Route(text, sessionID string) core.Persona {
	if text == "" {
		return core.PersonaReceptionist
	}

	textLower := strings.ToLower(text)

	if current, ok := r.sticky.Persona(sessionID); ok {
		if current == core.PersonaRestaurant && containsAny(textLower, restaurantContinuation) {
			return core.PersonaRestaurant
		}
		if current == core.PersonaRoomService && containsAny(textLower, serviceContinuation) {
			return core.PersonaRoomService
		}
	}

	if containsAny(textLower, restaurantWords) {
		r.sticky.SetPersona(sessionID, core.PersonaRestaurant)
		return core.PersonaRestaurant
	}

	if containsAny(textLower, serviceWords) {
		r.sticky.SetPersona(sessionID, core.PersonaRoomService)
		return core.PersonaRoomService
	}

	r.sticky.SetPersona(sessionID, core.PersonaReceptionist)
	return core.PersonaReceptionist
}

func containsAny(text string, words []string) bool {
	for _, word := range words {
		if strings.Contains(text, word) {
			return true
		}
	}
	return false
}
