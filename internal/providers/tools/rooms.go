package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode"
)

const checkRoomAvailabilitySchema = `
{
  "type": "object",
  "properties": {
    "room_type": { "type": "string", "description": "deluxe, suite, standard, premium" }
  },
  "required": []
}
`

const getFacilityInfoSchema = `
{
  "type": "object",
  "properties": {
    "facility_name": { "type": "string", "description": "gym, spa, pool, restaurant, checkin, checkout, wifi, parking" }
  },
  "required": ["facility_name"]
}
`

type roomClass struct {
	name   string
	price  float64
	weight float64 // probability the class has a free room right now
}

// Occupancy is simulated, not stored: availability is a weighted coin flip
// per call.
var roomClasses = []roomClass{
	{name: "deluxe", price: 250, weight: 2.0 / 3.0},
	{name: "suite", price: 500, weight: 1.0 / 3.0},
	{name: "standard", price: 150, weight: 1.0},
	{name: "premium", price: 350, weight: 2.0 / 3.0},
}

const roomSummary = `🏨 **Room Availability:**
• Standard: ₹150/night (Available)
• Deluxe: ₹250/night (Available)
• Premium: ₹350/night (Limited)
• Suite: ₹500/night (Full)

Check-in: 2:00 PM, Check-out: 11:00 AM`

func (c *Concierge) CheckRoomAvailability(ctx context.Context, args json.RawMessage) (string, error) {
	var input struct {
		RoomType string `json:"room_type"`
	}
	if err := json.Unmarshal(args, &input); err != nil {
		return "", fmt.Errorf("invalid arguments: %w", err)
	}

	if input.RoomType == "" {
		return roomSummary, nil
	}

	roomType := strings.ToLower(input.RoomType)

	// Free-text type maps by substring containment, standard is the fallback
	matched := roomClasses[2]
	for _, class := range roomClasses {
		if strings.Contains(roomType, class.name) {
			matched = class
			break
		}
	}

	if c.randFloat() < matched.weight {
		return fmt.Sprintf("✅ %s rooms available at ₹%s/night.", capitalize(matched.name), formatPrice(matched.price)), nil
	}
	return fmt.Sprintf("❌ %s rooms are currently full.", capitalize(matched.name)), nil
}

type facility struct {
	key  string
	info string
}

var facilities = []facility{
	{"gym", "🏋️ Gym: 6 AM - 10 PM (Energy-efficient equipment)"},
	{"spa", "💆 Spa: 10 AM - 8 PM (Organic treatments)"},
	{"pool", "🏊 Pool: 7 AM - 9 PM (Saltwater system)"},
	{"restaurant", "🍽️ Restaurant: Breakfast 7-10, Lunch 12-3, Dinner 7-11"},
	{"checkin", "🕐 Check-in: 2:00 PM"},
	{"checkout", "🕚 Check-out: 11:00 AM"},
	{"wifi", "📶 WiFi: Free throughout resort"},
	{"parking", "🅿️ Parking: Free valet, EV charging"},
}

func (c *Concierge) GetFacilityInfo(ctx context.Context, args json.RawMessage) (string, error) {
	var input struct {
		FacilityName string `json:"facility_name"`
	}
	if err := json.Unmarshal(args, &input); err != nil {
		return "", fmt.Errorf("invalid arguments: %w", err)
	}

	name := strings.ToLower(strings.TrimSpace(input.FacilityName))

	for _, f := range facilities {
		if strings.Contains(name, f.key) {
			return f.info, nil
		}
	}

	keys := make([]string, len(facilities))
	for i, f := range facilities {
		keys[i] = f.key
	}
	return fmt.Sprintf("Facilities: %s. Which one?", strings.Join(keys, ", ")), nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
