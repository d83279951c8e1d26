package agent

import (
	"context"
	"strings"

	"github.com/Avisha2803/resort-booking-agent/internal/core"
	"github.com/Avisha2803/resort-booking-agent/internal/providers/tools"
)

// degradedReply answers without the hosted model. The Restaurant persona
// still serves the real menu from the store.
func (a *Agent) degradedReply(ctx context.Context, userMessage string) string {
	lower := strings.ToLower(userMessage)

	switch a.persona {
	case core.PersonaRestaurant:
		if strings.Contains(lower, "menu") {
			if text, err := a.invoker.Call(ctx, tools.ToolGetMenuItems, `{"compact": false}`); err == nil {
				return text
			}
			return "🍽️ Restaurant menu: Puri Bhaji (₹140), Masala Dosa (₹120), Soft Drink (₹50)"
		}
		if containsAny(lower, "order", "want", "get") {
			return "I can take your order. Please specify items and room number."
		}

	case core.PersonaRoomService:
		if containsAny(lower, "clean", "towel", "service") {
			return "I can help with room service. Please provide your room number and request details."
		}

	default: // Receptionist
		if strings.Contains(lower, "check") && strings.Contains(lower, "in") {
			return "Check-in: 2:00 PM, Check-out: 11:00 AM"
		}
		if strings.Contains(lower, "room") && strings.Contains(lower, "available") {
			return "Rooms available: Deluxe (₹250), Standard (₹150)"
		}
	}

	return fallbackReply
}

func containsAny(text string, words ...string) bool {
	for _, word := range words {
		if strings.Contains(text, word) {
			return true
		}
	}
	return false
}
