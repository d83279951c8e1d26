package router

import (
	"testing"

	"github.com/Avisha2803/resort-booking-agent/internal/core"
	"github.com/Avisha2803/resort-booking-agent/internal/service/memory"
)

func TestRoute(t *testing.T) {
	tests := []struct {
		name string
		text string
		want core.Persona
	}{
		{"menu request", "show me the menu", core.PersonaRestaurant},
		{"hungry guest", "I'm so hungry", core.PersonaRestaurant},
		{"order", "I want to order food", core.PersonaRestaurant},
		{"cleaning", "please clean my room", core.PersonaRoomService},
		{"towels", "I need fresh towels", core.PersonaRoomService},
		{"greeting", "hello there", core.PersonaReceptionist},
		{"rooms", "do you have rooms available", core.PersonaReceptionist},
		{"empty", "", core.PersonaReceptionist},
		// "food" hits the restaurant list before "clean" hits the
		// service list, so the order is what breaks the tie
		{"tie break", "I spilled food, please clean it", core.PersonaRestaurant},
		{"case insensitive", "SHOW ME THE MENU", core.PersonaRestaurant},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(memory.New(10))
			if got := r.Route(tt.text, "s1"); got != tt.want {
				t.Errorf("Route(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestRouteIsDeterministic(t *testing.T) {
	for i := 0; i < 20; i++ {
		r := New(memory.New(10))
		if got := r.Route("I want to eat", "s1"); got != core.PersonaRestaurant {
			t.Fatalf("run %d: got %v", i, got)
		}
	}
}

func TestStickyContinuation(t *testing.T) {
	mem := memory.New(10)
	r := New(mem)

	// First message establishes the restaurant persona
	if got := r.Route("show me the menu", "s1"); got != core.PersonaRestaurant {
		t.Fatalf("setup: got %v", got)
	}

	// "want" and "get" are continuations while the session is sticky
	if got := r.Route("I want the soft drink", "s1"); got != core.PersonaRestaurant {
		t.Errorf("continuation: got %v, want restaurant", got)
	}
	if got := r.Route("can I get two of those", "s1"); got != core.PersonaRestaurant {
		t.Errorf("continuation: got %v, want restaurant", got)
	}
}

func TestStickyDoesNotTrapUnrelatedMessages(t *testing.T) {
	mem := memory.New(10)
	r := New(mem)

	r.Route("show me the menu", "s1")

	// No continuation keyword, full scan applies
	if got := r.Route("please clean my room", "s1"); got != core.PersonaRoomService {
		t.Errorf("got %v, want room service", got)
	}
}

func TestStickyIsPerSession(t *testing.T) {
	mem := memory.New(10)
	r := New(mem)

	r.Route("show me the menu", "s1")

	// "want" alone routes to restaurant via the full list regardless of
	// stickiness, so use a neutral service phrase for the other session
	if got := r.Route("towel please", "s2"); got != core.PersonaRoomService {
		t.Errorf("session s2 leaked sticky state: got %v", got)
	}
}

func TestEmptyTextLeavesStickyUntouched(t *testing.T) {
	mem := memory.New(10)
	r := New(mem)

	r.Route("show me the menu", "s1")
	r.Route("", "s1")

	p, ok := mem.Persona("s1")
	if !ok || p != core.PersonaRestaurant {
		t.Errorf("sticky state changed on empty text: %v ok=%v", p, ok)
	}
}

func TestRouteUpdatesSticky(t *testing.T) {
	mem := memory.New(10)
	r := New(mem)

	r.Route("hello", "s1")
	if p, _ := mem.Persona("s1"); p != core.PersonaReceptionist {
		t.Errorf("expected receptionist sticky, got %v", p)
	}

	r.Route("need a towel", "s1")
	if p, _ := mem.Persona("s1"); p != core.PersonaRoomService {
		t.Errorf("expected room service sticky, got %v", p)
	}
}
